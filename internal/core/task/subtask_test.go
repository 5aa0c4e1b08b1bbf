package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleSubtask(t *testing.T) {
	subtasks := []Subtask{
		{ID: "s1", Title: "one"},
		{ID: "s2", Title: "two"},
	}

	t.Run("flips only the matching entry", func(t *testing.T) {
		got := ToggleSubtask(subtasks, "s2")
		assert.False(t, got[0].Completed)
		assert.True(t, got[1].Completed)
	})

	t.Run("double toggle restores original", func(t *testing.T) {
		got := ToggleSubtask(ToggleSubtask(subtasks, "s1"), "s1")
		assert.Equal(t, subtasks, got)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		assert.Equal(t, subtasks, ToggleSubtask(subtasks, "nope"))
	})

	t.Run("input is not mutated", func(t *testing.T) {
		_ = ToggleSubtask(subtasks, "s1")
		assert.False(t, subtasks[0].Completed)
	})
}

func TestEditSubtask(t *testing.T) {
	subtasks := []Subtask{
		{ID: "s1", Title: "one"},
		{ID: "s2", Title: "two"},
	}

	got := EditSubtask(subtasks, "s1", "renamed")
	assert.Equal(t, "renamed", got[0].Title)
	assert.Equal(t, "two", got[1].Title)
	assert.Equal(t, "one", subtasks[0].Title)

	assert.Equal(t, subtasks, EditSubtask(subtasks, "missing", "x"))
}

func TestDeleteSubtask(t *testing.T) {
	subtasks := []Subtask{
		{ID: "s1", Title: "one"},
		{ID: "s2", Title: "two"},
		{ID: "s3", Title: "three"},
	}

	t.Run("removes the matching entry", func(t *testing.T) {
		got := DeleteSubtask(subtasks, "s2")
		require.Len(t, got, 2)
		assert.Equal(t, "s1", got[0].ID)
		assert.Equal(t, "s3", got[1].ID)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		assert.Equal(t, subtasks, DeleteSubtask(subtasks, "nope"))
	})

	t.Run("delete all", func(t *testing.T) {
		got := DeleteSubtask(DeleteSubtask(DeleteSubtask(subtasks, "s1"), "s2"), "s3")
		assert.Empty(t, got)
	})
}
