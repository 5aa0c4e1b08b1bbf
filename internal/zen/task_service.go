package zen

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Aryanp-07/ZenTasks/internal/core/logging"
	"github.com/Aryanp-07/ZenTasks/internal/core/task"
	"github.com/Aryanp-07/ZenTasks/internal/data/kv"
	"github.com/Aryanp-07/ZenTasks/pkg/randid"
	"github.com/rs/zerolog"
)

// idLength is the length of generated task and subtask IDs.
const idLength = 8

// TaskService owns the canonical in-memory task collection. Every
// mutation produces a new collection in display order and hands a
// snapshot to the persistence writer; readers always observe a
// complete past or current state, never a torn intermediate.
//
// Unknown IDs are tolerated as no-ops on every mutation: the id came
// from a rendered list that may be stale, and failing the whole
// operation helps nobody in a single-user tool.
type TaskService struct {
	store  kv.KV
	writer *writer
	log    zerolog.Logger

	mu    sync.RWMutex
	tasks []task.Task

	now   func() time.Time
	newID func() string
}

// NewTaskService creates the task store backed by the given KV store.
// Call Load to prime the collection and Close to flush pending writes.
func NewTaskService(store kv.KV, log zerolog.Logger) *TaskService {
	return &TaskService{
		store:  store,
		writer: newWriter(store, log),
		log:    logging.Component(log, "task-service"),
		tasks:  []task.Task{},
		now:    time.Now,
		newID:  func() string { return randid.Generate(idLength) },
	}
}

// Load reads the persisted collection into memory. A missing key means
// a first run and yields an empty collection; malformed stored data is
// logged and likewise falls back to empty rather than failing startup.
func (s *TaskService) Load(ctx context.Context) {
	var loaded []task.Task
	err := s.store.Get(ctx, tasksKey, &loaded)
	switch {
	case errors.Is(err, kv.ErrNoKey):
		loaded = []task.Task{}
	case err != nil:
		s.log.Error().Err(err).Msg("failed to load tasks, starting empty")
		loaded = []task.Task{}
	case loaded == nil:
		loaded = []task.Task{}
	}

	task.Sort(loaded)

	s.mu.Lock()
	s.tasks = loaded
	s.mu.Unlock()
}

// Close flushes any pending persistence write. Call once, after all
// mutations have completed.
func (s *TaskService) Close() {
	s.writer.close()
}

// Create adds a new task and returns it. The title must already be
// validated non-empty by the caller; the store does not re-check.
func (s *TaskService) Create(ctx context.Context, title string, tags []string, dueDate *time.Time, subtasks []task.Subtask) task.Task {
	t := task.Task{
		ID:        s.newID(),
		Title:     title,
		Tags:      tags,
		DueDate:   dueDate,
		CreatedAt: s.now(),
		Subtasks:  subtasks,
	}

	s.mu.Lock()
	next := append(s.snapshotLocked(), t)
	s.commitLocked(next)
	s.mu.Unlock()

	s.log.Info().Str("id", t.ID).Str("title", title).Msg("task created")
	return t
}

// Update replaces the mutable fields of the task with the given ID.
func (s *TaskService) Update(ctx context.Context, id, title string, tags []string, dueDate *time.Time, subtasks []task.Subtask) {
	s.mutate(id, "update", func(t *task.Task) {
		t.Title = title
		t.Tags = tags
		t.DueDate = dueDate
		t.Subtasks = subtasks
	})
}

// Delete removes the task with the given ID.
func (s *TaskService) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	next := make([]task.Task, 0, len(s.tasks))
	found := false
	for _, t := range s.tasks {
		if t.ID == id {
			found = true
			continue
		}
		next = append(next, t)
	}
	if !found {
		s.mu.Unlock()
		s.log.Debug().Str("id", id).Msg("delete: unknown task id, ignoring")
		return
	}
	s.commitLocked(next)
	s.mu.Unlock()

	s.log.Info().Str("id", id).Msg("task deleted")
}

// ToggleComplete flips the completed flag of the task with the given
// ID, leaving every other field untouched.
func (s *TaskService) ToggleComplete(ctx context.Context, id string) {
	s.mutate(id, "toggle", func(t *task.Task) {
		t.Completed = !t.Completed
	})
}

// ToggleSubtask flips the completed flag of one subtask. The parent
// task's own completed flag is untouched, so top-level display order
// never changes.
func (s *TaskService) ToggleSubtask(ctx context.Context, taskID, subtaskID string) {
	s.mutate(taskID, "toggle subtask", func(t *task.Task) {
		t.Subtasks = task.ToggleSubtask(t.Subtasks, subtaskID)
	})
}

// EditSubtask replaces the title of one subtask.
func (s *TaskService) EditSubtask(ctx context.Context, taskID, subtaskID, title string) {
	s.mutate(taskID, "edit subtask", func(t *task.Task) {
		t.Subtasks = task.EditSubtask(t.Subtasks, subtaskID, title)
	})
}

// DeleteSubtask removes one subtask from its parent task.
func (s *TaskService) DeleteSubtask(ctx context.Context, taskID, subtaskID string) {
	s.mutate(taskID, "delete subtask", func(t *task.Task) {
		t.Subtasks = task.DeleteSubtask(t.Subtasks, subtaskID)
	})
}

// Tasks returns a snapshot of the collection in display order. The
// result is a deep copy; callers may mutate it freely.
func (s *TaskService) Tasks() []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]task.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Get returns the task with the given ID and whether it exists.
func (s *TaskService) Get(id string) (task.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return task.Task{}, false
}

// FilterByTags returns the display-ordered subsequence of tasks whose
// tags intersect the given set. An empty filter returns everything.
// Filtering is a projection; it never touches stored state.
func (s *TaskService) FilterByTags(tags []string) []task.Task {
	return task.FilterByTags(s.Tasks(), tags)
}

// AllTags returns the distinct tags across the collection in
// first-seen order.
func (s *TaskService) AllTags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return task.AllTags(s.tasks)
}

// mutate applies fn to the matching task on a fresh copy of the
// collection, then resorts, swaps, and persists. Unknown IDs leave the
// collection untouched.
func (s *TaskService) mutate(id, op string, fn func(*task.Task)) {
	s.mu.Lock()
	next := s.snapshotLocked()
	found := false
	for i := range next {
		if next[i].ID == id {
			fn(&next[i])
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		s.log.Debug().Str("id", id).Str("op", op).Msg("unknown task id, ignoring")
		return
	}
	s.commitLocked(next)
	s.mu.Unlock()
}

// snapshotLocked returns a shallow copy of the collection slice for
// building the next state. Tasks themselves are value types; slices
// inside them are replaced, never written through.
func (s *TaskService) snapshotLocked() []task.Task {
	return append([]task.Task{}, s.tasks...)
}

// commitLocked installs next as the current collection, restoring
// display order first, and hands a snapshot to the persistence writer.
func (s *TaskService) commitLocked(next []task.Task) {
	task.Sort(next)
	s.tasks = next
	s.writer.enqueue(append([]task.Task{}, next...))
}
