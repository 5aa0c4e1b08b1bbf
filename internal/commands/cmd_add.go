package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Aryanp-07/ZenTasks/internal/core/task"
	"github.com/Aryanp-07/ZenTasks/internal/zen"
	"github.com/Aryanp-07/ZenTasks/pkg/iojson"
	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
)

// AddCmd implements the zentasks add command.
type AddCmd struct {
	flags *Flags
	app   *zen.App

	title     string
	tags      string
	due       string
	breakdown bool
	asJSON    bool
}

// NewAddCmd creates a new add command.
func NewAddCmd(flags *Flags, app *zen.App) *AddCmd {
	return &AddCmd{flags: flags, app: app}
}

// Register adds the add command to the application.
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a new task",
		UsageText: "zentasks add [--title <title>] [--tags a,b] [--due YYYY-MM-DD] [--breakdown] [--json]",
		Description: `Adds a task to the list. Without --title an interactive form is shown.

With --breakdown, subtask suggestions are generated for the new task.
Generation is best effort: if it fails the task is created without
subtasks.

Examples:
  zentasks add --title "Pay rent" --tags bills --due 2026-09-01
  zentasks add --title "Plan the trip" --breakdown
  zentasks add`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "task title",
				Destination: &cmd.title,
			},
			&cli.StringFlag{
				Name:        "tags",
				Usage:       "comma-separated tags",
				Destination: &cmd.tags,
			},
			&cli.StringFlag{
				Name:        "due",
				Usage:       "due date (YYYY-MM-DD)",
				Destination: &cmd.due,
			},
			&cli.BoolFlag{
				Name:        "breakdown",
				Aliases:     []string{"b"},
				Usage:       "generate subtask suggestions",
				Destination: &cmd.breakdown,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output the created task as JSON",
				Destination: &cmd.asJSON,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	// JSON mode is for scripting; never block on the interactive form.
	if cmd.title == "" && !cmd.asJSON {
		if err := cmd.runForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	title := strings.TrimSpace(cmd.title)
	if title == "" {
		if cmd.asJSON {
			return iojson.WriteError("task title is required", nil)
		}
		return errors.New("task title is required")
	}

	due, err := parseDueDate(cmd.due)
	if err != nil {
		if cmd.asJSON {
			return iojson.WriteError(err.Error(), map[string]any{"due": cmd.due})
		}
		return err
	}

	var subtasks []task.Subtask
	if cmd.breakdown {
		subtasks = cmd.app.Breakdown.Suggest(ctx, title)
	}

	created := cmd.app.Tasks.Create(ctx, title, parseTags(cmd.tags), due, subtasks)

	if cmd.asJSON {
		return iojson.Write(created)
	}

	fmt.Printf("Added %s: %s\n", created.ID, created.Title)
	for _, st := range created.Subtasks {
		fmt.Printf("  - %s\n", st.Title)
	}

	return nil
}

func (cmd *AddCmd) runForm() error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Placeholder("Enter task...").
				Validate(validateTitle).
				Value(&cmd.title),
			huh.NewInput().
				Title("Tags").
				Placeholder("comma-separated, optional").
				Value(&cmd.tags),
			huh.NewInput().
				Title("Due date").
				Placeholder("YYYY-MM-DD, optional").
				Validate(validateDueDate).
				Value(&cmd.due),
			huh.NewConfirm().
				Title("Generate subtasks?").
				Value(&cmd.breakdown),
		),
	).Run()
}

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("title is required")
	}
	return nil
}

func validateDueDate(s string) error {
	_, err := parseDueDate(s)
	return err
}
