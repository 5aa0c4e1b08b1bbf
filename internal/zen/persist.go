package zen

import (
	"context"
	"time"

	"github.com/Aryanp-07/ZenTasks/internal/core/logging"
	"github.com/Aryanp-07/ZenTasks/internal/core/task"
	"github.com/Aryanp-07/ZenTasks/internal/data/kv"
	"github.com/rs/zerolog"
)

// tasksKey is the single KV key holding the serialized task collection.
const tasksKey = "tasks"

const saveTimeout = 5 * time.Second

// writer serializes persistence through a single goroutine so that a
// rapid sequence of mutations cannot produce out-of-order durable
// writes: the queue holds at most one pending snapshot and a newer one
// replaces it, so the last write to complete is always the newest
// state. Failures are logged and never propagated; in-memory state
// stays the source of truth for the running session.
type writer struct {
	store kv.KV
	log   zerolog.Logger
	ch    chan []task.Task
	done  chan struct{}
}

func newWriter(store kv.KV, log zerolog.Logger) *writer {
	w := &writer{
		store: store,
		log:   logging.Component(log, "persist-writer"),
		ch:    make(chan []task.Task, 1),
		done:  make(chan struct{}),
	}
	go w.loop()
	return w
}

// enqueue hands a snapshot to the writer without blocking. If a
// snapshot is already queued and unsent it is discarded in favor of
// the newer one.
func (w *writer) enqueue(snapshot []task.Task) {
	for {
		select {
		case w.ch <- snapshot:
			return
		default:
		}

		// Queue full: drop the stale pending snapshot and retry.
		select {
		case <-w.ch:
		default:
		}
	}
}

func (w *writer) loop() {
	defer close(w.done)

	for snapshot := range w.ch {
		w.save(snapshot)
	}
}

func (w *writer) save(snapshot []task.Task) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := w.store.Set(ctx, tasksKey, snapshot); err != nil {
		w.log.Error().Err(err).Int("tasks", len(snapshot)).Msg("failed to persist tasks")
		return
	}

	w.log.Debug().Int("tasks", len(snapshot)).Msg("persisted tasks")
}

// close flushes any pending snapshot and stops the writer. Must not be
// called concurrently with enqueue.
func (w *writer) close() {
	close(w.ch)
	<-w.done
}
