// Package tui implements the interactive task list.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Aryanp-07/ZenTasks/internal/core/styles"
	"github.com/Aryanp-07/ZenTasks/internal/core/task"
	"github.com/Aryanp-07/ZenTasks/internal/zen"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputMode tracks which prompt, if any, owns keyboard input.
type inputMode int

const (
	modeBrowse inputMode = iota
	modeAdd
	modeFilter
)

// Model is the bubbletea model for the task list screen.
type Model struct {
	app   *zen.App
	keys  keyMap
	help  help.Model
	input textinput.Model

	tasks  []task.Task
	filter []string
	cursor int
	mode   inputMode
	width  int
}

// New creates the task list model.
func New(app *zen.App) Model {
	input := textinput.New()
	input.CharLimit = 120

	return Model{
		app:   app,
		keys:  defaultKeyMap(),
		help:  help.New(),
		input: input,
		tasks: app.Tasks.Tasks(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updatePrompt(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			m.app.Tasks.ToggleComplete(context.Background(), t.ID)
			m.refresh()
		}

	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selected(); ok {
			m.app.Tasks.Delete(context.Background(), t.ID)
			m.refresh()
		}

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.Placeholder = "Enter task..."
		m.input.SetValue("")
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Filter):
		m.mode = modeFilter
		m.input.Placeholder = "tags, comma-separated (empty clears)"
		m.input.SetValue(strings.Join(m.filter, ","))
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		switch m.mode {
		case modeAdd:
			if value != "" {
				m.app.Tasks.Create(context.Background(), value, nil, nil, nil)
			}
		case modeFilter:
			m.filter = splitTags(value)
		}
		m.mode = modeBrowse
		m.input.Blur()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styles.PrimaryStyle.Render("ZenTasks"))
	if len(m.filter) > 0 {
		b.WriteString(styles.MutedStyle.Render("  filtering: " + strings.Join(m.filter, ", ")))
	}
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(styles.MutedStyle.Render("nothing here, press a to add a task"))
		b.WriteString("\n")
	}

	for i, t := range m.tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = styles.SelectionStyle.Render("> ")
		}
		b.WriteString(cursor + renderTaskLine(t))
		b.WriteString("\n")

		if i == m.cursor {
			for _, st := range t.Subtasks {
				b.WriteString("      " + renderSubtaskLine(st))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	if m.mode != modeBrowse {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	b.WriteString("\n")

	return b.String()
}

// selected returns the task under the cursor.
func (m Model) selected() (task.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return task.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// refresh re-reads the collection through the active filter and clamps
// the cursor.
func (m *Model) refresh() {
	m.tasks = m.app.Tasks.FilterByTags(m.filter)
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func renderTaskLine(t task.Task) string {
	box := "[ ]"
	title := styles.TitleStyle.Render(t.Title)
	if t.Completed {
		box = "[x]"
		title = styles.DoneStyle.Render(t.Title)
	}

	line := box + " " + title
	for _, tag := range t.Tags {
		line += " " + styles.TagStyle.Render("#"+tag)
	}
	if t.DueDate != nil {
		style := styles.MutedStyle
		if !t.Completed && t.DueDate.Before(time.Now()) {
			style = styles.OverdueStyle
		}
		line += " " + style.Render("due "+t.DueDate.Format("2006-01-02"))
	}
	if n := len(t.Subtasks); n > 0 {
		done := 0
		for _, st := range t.Subtasks {
			if st.Completed {
				done++
			}
		}
		line += " " + styles.MutedStyle.Render(fmt.Sprintf("(%d/%d)", done, n))
	}
	return line
}

func renderSubtaskLine(st task.Subtask) string {
	box := "[ ]"
	title := st.Title
	if st.Completed {
		box = "[x]"
		title = styles.DoneStyle.Render(st.Title)
	}
	return styles.MutedStyle.Render(box) + " " + title
}

func splitTags(value string) []string {
	var out []string
	for _, tag := range strings.Split(value, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// Run starts the TUI and blocks until the user quits.
func Run(app *zen.App) error {
	_, err := tea.NewProgram(New(app), tea.WithAltScreen()).Run()
	return err
}
