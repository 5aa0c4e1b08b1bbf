package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/Aryanp-07/ZenTasks/internal/core/styles"
	"github.com/Aryanp-07/ZenTasks/internal/core/task"
	"github.com/Aryanp-07/ZenTasks/internal/zen"
	"github.com/Aryanp-07/ZenTasks/pkg/iojson"
	"github.com/urfave/cli/v3"
)

// ListCmd implements the zentasks list command.
type ListCmd struct {
	flags *Flags
	app   *zen.App

	tags    []string
	asJSON  bool
	withSub bool
}

// NewListCmd creates a new list command.
func NewListCmd(flags *Flags, app *zen.App) *ListCmd {
	return &ListCmd{flags: flags, app: app}
}

// Register adds the list command to the application.
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List tasks in display order",
		UsageText: "zentasks list [--tag <tag>]... [--subtasks] [--json]",
		Description: `Lists tasks: incomplete first, newest first within each group.

--tag filters to tasks carrying at least one of the given tags and may
be repeated. Filtering never changes stored state.

Examples:
  zentasks list
  zentasks list --tag bills --tag work
  zentasks list --json`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        "tag",
				Usage:       "filter by tag (repeatable)",
				Destination: &cmd.tags,
			},
			&cli.BoolFlag{
				Name:        "subtasks",
				Aliases:     []string{"s"},
				Usage:       "show subtasks under each task",
				Destination: &cmd.withSub,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.asJSON,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	tasks := cmd.app.Tasks.FilterByTags(cmd.tags)

	if cmd.asJSON {
		return iojson.Write(tasks)
	}

	if len(tasks) == 0 {
		fmt.Println(styles.MutedStyle.Render("no tasks"))
		return nil
	}

	for _, t := range tasks {
		fmt.Println(renderTask(t))
		if cmd.withSub {
			for _, st := range t.Subtasks {
				fmt.Println(renderSubtask(st))
			}
		}
	}

	return nil
}

func renderTask(t task.Task) string {
	box := "[ ]"
	title := styles.TitleStyle.Render(t.Title)
	if t.Completed {
		box = "[x]"
		title = styles.DoneStyle.Render(t.Title)
	}

	line := fmt.Sprintf("%s %s %s", styles.MutedStyle.Render(t.ID), box, title)

	for _, tag := range t.Tags {
		line += " " + styles.TagStyle.Render("#"+tag)
	}

	if t.DueDate != nil {
		due := t.DueDate.Format("2006-01-02")
		style := styles.MutedStyle
		if !t.Completed && t.DueDate.Before(time.Now()) {
			style = styles.OverdueStyle
		}
		line += " " + style.Render("due "+due)
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

func renderSubtask(st task.Subtask) string {
	box := "[ ]"
	title := st.Title
	if st.Completed {
		box = "[x]"
		title = styles.DoneStyle.Render(st.Title)
	}
	return fmt.Sprintf("    %s %s %s", styles.MutedStyle.Render(st.ID), box, title)
}
