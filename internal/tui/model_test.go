package tui

import (
	"context"
	"testing"

	"github.com/Aryanp-07/ZenTasks/internal/core/config"
	"github.com/Aryanp-07/ZenTasks/internal/data/kv"
	"github.com/Aryanp-07/ZenTasks/internal/zen"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (Model, *zen.App) {
	t.Helper()

	tasks := zen.NewTaskService(kv.NewMemStore(), zerolog.Nop())
	t.Cleanup(tasks.Close)

	app := zen.NewApp(tasks, zen.NewBreakdown(nil, zerolog.Nop()), config.Default(t.TempDir()))
	return New(app), app
}

func press(m tea.Model, key rune) tea.Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{key}})
	return next
}

func TestModel_ToggleUnderCursor(t *testing.T) {
	ctx := context.Background()
	model, app := newTestModel(t)

	created := app.Tasks.Create(ctx, "only task", nil, nil, nil)
	model.refresh()

	next, _ := model.Update(tea.KeyMsg{Type: tea.KeySpace})
	_ = next

	got, ok := app.Tasks.Get(created.ID)
	require.True(t, ok)
	assert.True(t, got.Completed)
}

func TestModel_DeleteUnderCursor(t *testing.T) {
	ctx := context.Background()
	model, app := newTestModel(t)

	app.Tasks.Create(ctx, "doomed", nil, nil, nil)
	model.refresh()

	_ = press(model, 'd')

	assert.Empty(t, app.Tasks.Tasks())
}

func TestModel_AddPrompt(t *testing.T) {
	model, app := newTestModel(t)

	next := press(model, 'a')
	m := next.(Model)
	require.Equal(t, modeAdd, m.mode)

	m.input.SetValue("typed task")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	assert.Equal(t, modeBrowse, m.mode)
	tasks := app.Tasks.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "typed task", tasks[0].Title)
}

func TestModel_FilterPrompt(t *testing.T) {
	ctx := context.Background()
	model, app := newTestModel(t)

	app.Tasks.Create(ctx, "home chore", []string{"home"}, nil, nil)
	app.Tasks.Create(ctx, "work item", []string{"work"}, nil, nil)
	model.refresh()

	next := press(model, 'f')
	m := next.(Model)
	require.Equal(t, modeFilter, m.mode)

	m.input.SetValue("work")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	require.Len(t, m.tasks, 1)
	assert.Equal(t, "work item", m.tasks[0].Title)

	// Clearing the filter restores the full list.
	next = press(m, 'f')
	m = next.(Model)
	m.input.SetValue("")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	assert.Len(t, m.tasks, 2)
}

func TestModel_EscapeCancelsPrompt(t *testing.T) {
	model, app := newTestModel(t)

	next := press(model, 'a')
	m := next.(Model)
	m.input.SetValue("discarded")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = next.(Model)

	assert.Equal(t, modeBrowse, m.mode)
	assert.Empty(t, app.Tasks.Tasks())
}

func TestModel_CursorClamps(t *testing.T) {
	ctx := context.Background()
	model, app := newTestModel(t)

	app.Tasks.Create(ctx, "one", nil, nil, nil)
	app.Tasks.Create(ctx, "two", nil, nil, nil)
	model.refresh()

	// Cursor cannot move above the first row.
	next := press(model, 'k')
	m := next.(Model)
	assert.Equal(t, 0, m.cursor)

	// Or below the last.
	next = press(m, 'j')
	m = next.(Model)
	next = press(m, 'j')
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)

	// Deleting the last row pulls the cursor back in range.
	next = press(m, 'd')
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_ViewShowsHeaderAndTasks(t *testing.T) {
	ctx := context.Background()
	model, app := newTestModel(t)

	app.Tasks.Create(ctx, "only task", nil, nil, nil)
	model.refresh()

	view := model.View()
	assert.Contains(t, view, "ZenTasks")
	assert.Contains(t, view, "only task")
}
