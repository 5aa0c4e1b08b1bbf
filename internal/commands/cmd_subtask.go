package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Aryanp-07/ZenTasks/internal/core/task"
	"github.com/Aryanp-07/ZenTasks/internal/zen"
	"github.com/Aryanp-07/ZenTasks/pkg/randid"
	"github.com/urfave/cli/v3"
)

// SubtaskCmd implements the zentasks subtask command group.
type SubtaskCmd struct {
	flags *Flags
	app   *zen.App

	editTitle string
	addTitle  string
}

// NewSubtaskCmd creates a new subtask command.
func NewSubtaskCmd(flags *Flags, app *zen.App) *SubtaskCmd {
	return &SubtaskCmd{flags: flags, app: app}
}

// Register adds the subtask command to the application.
func (cmd *SubtaskCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "subtask",
		Aliases:   []string{"st"},
		Usage:     "Manage a task's subtasks",
		UsageText: "zentasks subtask <command> [arguments]",
		Description: `Subtask commands address subtasks by their stable id, shown by
"zentasks list --subtasks".

Examples:
  zentasks subtask add k3j9x2pa --title "Call the landlord"
  zentasks subtask toggle k3j9x2pa f81nshw0
  zentasks subtask gen k3j9x2pa`,
		Commands: []*cli.Command{
			cmd.addCmd(),
			cmd.toggleCmd(),
			cmd.editCmd(),
			cmd.rmCmd(),
			cmd.genCmd(),
		},
	})

	return app
}

func (cmd *SubtaskCmd) addCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a subtask to a task",
		UsageText: "zentasks subtask add <task-id> --title <title>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "subtask title",
				Required:    true,
				Destination: &cmd.addTitle,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			parent, err := cmd.parentTask(c)
			if err != nil {
				return err
			}

			title := strings.TrimSpace(cmd.addTitle)
			if title == "" {
				return errors.New("subtask title cannot be empty")
			}

			subtasks := append(parent.Subtasks, task.Subtask{
				ID:    randid.Generate(8),
				Title: title,
			})
			cmd.app.Tasks.Update(ctx, parent.ID, parent.Title, parent.Tags, parent.DueDate, subtasks)

			fmt.Printf("Added subtask to %s: %s\n", parent.Title, title)
			return nil
		},
	}
}

func (cmd *SubtaskCmd) toggleCmd() *cli.Command {
	return &cli.Command{
		Name:      "toggle",
		Usage:     "Toggle a subtask's completed state",
		UsageText: "zentasks subtask toggle <task-id> <subtask-id>",
		Action: func(ctx context.Context, c *cli.Command) error {
			taskID, subtaskID, err := cmd.subtaskArgs(c)
			if err != nil {
				return err
			}

			cmd.app.Tasks.ToggleSubtask(ctx, taskID, subtaskID)
			return nil
		},
	}
}

func (cmd *SubtaskCmd) editCmd() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Rename a subtask",
		UsageText: "zentasks subtask edit <task-id> <subtask-id> --title <title>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "title",
				Aliases:     []string{"t"},
				Usage:       "new subtask title",
				Required:    true,
				Destination: &cmd.editTitle,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			taskID, subtaskID, err := cmd.subtaskArgs(c)
			if err != nil {
				return err
			}

			title := strings.TrimSpace(cmd.editTitle)
			if title == "" {
				return errors.New("subtask title cannot be empty")
			}

			cmd.app.Tasks.EditSubtask(ctx, taskID, subtaskID, title)
			return nil
		},
	}
}

func (cmd *SubtaskCmd) rmCmd() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "Delete a subtask",
		UsageText: "zentasks subtask rm <task-id> <subtask-id>",
		Action: func(ctx context.Context, c *cli.Command) error {
			taskID, subtaskID, err := cmd.subtaskArgs(c)
			if err != nil {
				return err
			}

			cmd.app.Tasks.DeleteSubtask(ctx, taskID, subtaskID)
			return nil
		},
	}
}

func (cmd *SubtaskCmd) genCmd() *cli.Command {
	return &cli.Command{
		Name:      "gen",
		Usage:     "Generate subtask suggestions for a task",
		UsageText: "zentasks subtask gen <task-id>",
		Description: `Asks the text generator for up to 5 subtasks and appends them to the
task. Best effort: on failure the task is left unchanged.`,
		Action: func(ctx context.Context, c *cli.Command) error {
			parent, err := cmd.parentTask(c)
			if err != nil {
				return err
			}

			suggested := cmd.app.Breakdown.Suggest(ctx, parent.Title)
			if len(suggested) == 0 {
				fmt.Println("no suggestions")
				return nil
			}

			subtasks := append(parent.Subtasks, suggested...)
			cmd.app.Tasks.Update(ctx, parent.ID, parent.Title, parent.Tags, parent.DueDate, subtasks)

			for _, st := range suggested {
				fmt.Printf("  - %s\n", st.Title)
			}
			return nil
		},
	}
}

func (cmd *SubtaskCmd) parentTask(c *cli.Command) (task.Task, error) {
	id := c.Args().First()
	if id == "" {
		return task.Task{}, errors.New("task id is required")
	}

	t, ok := cmd.app.Tasks.Get(id)
	if !ok {
		return task.Task{}, fmt.Errorf("no task with id %q", id)
	}
	return t, nil
}

func (cmd *SubtaskCmd) subtaskArgs(c *cli.Command) (taskID, subtaskID string, err error) {
	t, err := cmd.parentTask(c)
	if err != nil {
		return "", "", err
	}

	subtaskID = c.Args().Get(1)
	if subtaskID == "" {
		return "", "", errors.New("subtask id is required")
	}

	for _, st := range t.Subtasks {
		if st.ID == subtaskID {
			return t.ID, subtaskID, nil
		}
	}
	return "", "", fmt.Errorf("task %q has no subtask %q", t.ID, subtaskID)
}
