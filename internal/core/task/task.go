// Package task defines the task domain model and its pure collection
// transforms. Nothing in this package performs I/O; persistence and
// presentation live elsewhere.
package task

import (
	"sort"
	"time"
)

// Subtask is a checklist item belonging to exactly one Task. Subtasks
// carry a stable ID assigned at creation so structural edits address
// entries by identity rather than position.
type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Task is a top-level user-managed work item.
type Task struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Tags      []string   `json:"tags,omitempty"`
	Completed bool       `json:"completed"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	Subtasks  []Subtask  `json:"subtasks,omitempty"`
}

// HasTag reports whether the task carries the given tag.
func (t Task) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the task. Slices are copied so the
// caller can mutate the result without aliasing the original.
func (t Task) Clone() Task {
	out := t
	if t.Tags != nil {
		out.Tags = append([]string(nil), t.Tags...)
	}
	if t.Subtasks != nil {
		out.Subtasks = append([]Subtask(nil), t.Subtasks...)
	}
	if t.DueDate != nil {
		due := *t.DueDate
		out.DueDate = &due
	}
	return out
}

// Sort orders tasks into display order: incomplete before completed,
// then newest-created first within each partition. The sort is stable
// so equal CreatedAt entries keep their prior relative order. The slice
// is sorted in place and returned for chaining.
func Sort(tasks []Task) []Task {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return tasks
}

// FilterByTags returns the subsequence of tasks whose tags intersect
// the given set, preserving input order. An empty or nil filter means
// no filtering and returns all tasks.
func FilterByTags(tasks []Task, tags []string) []Task {
	if len(tags) == 0 {
		return tasks
	}

	want := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		want[tag] = struct{}{}
	}

	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		for _, tag := range t.Tags {
			if _, ok := want[tag]; ok {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// AllTags returns the distinct tags across all tasks in first-seen
// order.
func AllTags(tasks []Task) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range tasks {
		for _, tag := range t.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}
