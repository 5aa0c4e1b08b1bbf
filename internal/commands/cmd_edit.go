package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Aryanp-07/ZenTasks/internal/zen"
	"github.com/urfave/cli/v3"
)

// EditCmd implements the zentasks edit command.
type EditCmd struct {
	flags *Flags
	app   *zen.App

	title    string
	tags     string
	due      string
	clearDue bool
}

// NewEditCmd creates a new edit command.
func NewEditCmd(flags *Flags, app *zen.App) *EditCmd {
	return &EditCmd{flags: flags, app: app}
}

// Register adds the edit command to the application.
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Edit a task's title, tags, or due date",
		UsageText: "zentasks edit <task-id> [--title <title>] [--tags a,b] [--due YYYY-MM-DD | --clear-due]",
		Description: `Edits the given task. Only the provided flags change; everything else
is kept, including completion state and subtasks.

Examples:
  zentasks edit k3j9x2pa --title "Pay rent (September)"
  zentasks edit k3j9x2pa --tags bills,home
  zentasks edit k3j9x2pa --clear-due`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "new title",
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "tags",
				Usage:       "new comma-separated tags (replaces existing)",
				Destination: &cmd.tags,
			},
			&cli.StringFlag{
				Name:        "due",
				Usage:       "new due date (YYYY-MM-DD)",
				Destination: &cmd.due,
			},
			&cli.BoolFlag{
				Name:        "clear-due",
				Usage:       "remove the due date",
				Destination: &cmd.clearDue,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *EditCmd) run(ctx context.Context, c *cli.Command) error {
	id := c.Args().First()
	if id == "" {
		return errors.New("task id is required")
	}

	t, ok := cmd.app.Tasks.Get(id)
	if !ok {
		return fmt.Errorf("no task with id %q", id)
	}

	title := t.Title
	if c.IsSet("title") {
		title = strings.TrimSpace(cmd.title)
		if title == "" {
			return errors.New("task title cannot be empty")
		}
	}

	tags := t.Tags
	if c.IsSet("tags") {
		tags = parseTags(cmd.tags)
	}

	due := t.DueDate
	switch {
	case cmd.clearDue:
		due = nil
	case c.IsSet("due"):
		parsed, err := parseDueDate(cmd.due)
		if err != nil {
			return err
		}
		due = parsed
	}

	cmd.app.Tasks.Update(ctx, id, title, tags, due, t.Subtasks)
	fmt.Printf("Updated: %s\n", title)

	return nil
}
