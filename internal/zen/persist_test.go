package zen

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Aryanp-07/ZenTasks/internal/core/task"
	"github.com/Aryanp-07/ZenTasks/internal/data/kv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingKV captures every Set in order and can block mid-write to
// force snapshots to pile up behind the writer goroutine.
type recordingKV struct {
	kv.KV

	mu      sync.Mutex
	writes  [][]task.Task
	release chan struct{} // nil means writes complete immediately
	started chan struct{}
}

func newRecordingKV() *recordingKV {
	return &recordingKV{KV: kv.NewMemStore()}
}

func (r *recordingKV) Set(ctx context.Context, key string, value any) error {
	if r.started != nil {
		r.started <- struct{}{}
	}
	if r.release != nil {
		<-r.release
	}

	snapshot := append([]task.Task{}, value.([]task.Task)...)
	r.mu.Lock()
	r.writes = append(r.writes, snapshot)
	r.mu.Unlock()

	return r.KV.Set(ctx, key, value)
}

func (r *recordingKV) recorded() [][]task.Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]task.Task{}, r.writes...)
}

func snapshotOf(n int) []task.Task {
	out := make([]task.Task, n)
	for i := range out {
		out[i] = task.Task{ID: string(rune('a' + i)), CreatedAt: time.Unix(int64(100 + i), 0)}
	}
	return out
}

func TestWriter_FlushesLastSnapshotOnClose(t *testing.T) {
	store := newRecordingKV()
	w := newWriter(store, zerolog.Nop())

	for i := 1; i <= 5; i++ {
		w.enqueue(snapshotOf(i))
	}
	w.close()

	writes := store.recorded()
	require.NotEmpty(t, writes)
	assert.Len(t, writes[len(writes)-1], 5, "newest snapshot must be the durable one")
}

func TestWriter_CoalescesPendingSnapshots(t *testing.T) {
	store := newRecordingKV()
	store.release = make(chan struct{})
	store.started = make(chan struct{}, 4)

	w := newWriter(store, zerolog.Nop())

	// First snapshot is picked up by the writer and blocks inside Set.
	w.enqueue(snapshotOf(1))
	<-store.started

	// These queue up behind the blocked write; only the newest may
	// survive.
	w.enqueue(snapshotOf(2))
	w.enqueue(snapshotOf(3))
	w.enqueue(snapshotOf(4))

	close(store.release)
	w.close()

	writes := store.recorded()
	require.Len(t, writes, 2, "intermediate snapshots must be coalesced away")
	assert.Len(t, writes[0], 1)
	assert.Len(t, writes[1], 4)
}

func TestWriter_LogsAndContinuesOnFailure(t *testing.T) {
	store := &failingKV{KV: kv.NewMemStore()}
	w := newWriter(store, zerolog.Nop())

	// Must not panic or block despite every write failing.
	w.enqueue(snapshotOf(1))
	w.enqueue(snapshotOf(2))
	w.close()

	assert.Greater(t, store.failures, 0)
}

type failingKV struct {
	kv.KV
	failures int
}

func (f *failingKV) Set(ctx context.Context, key string, value any) error {
	f.failures++
	return context.DeadlineExceeded
}

func TestService_MutationSurvivesPersistenceFailure(t *testing.T) {
	ctx := context.Background()
	store := &failingKV{KV: kv.NewMemStore()}

	svc := NewTaskService(store, zerolog.Nop())
	defer svc.Close()

	created := svc.Create(ctx, "kept in memory", nil, nil, nil)

	got, ok := svc.Get(created.ID)
	require.True(t, ok, "in-memory state is the source of truth regardless of persistence outcome")
	assert.Equal(t, "kept in memory", got.Title)
}
