package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aryanp-07/ZenTasks/internal/zen"
	"github.com/urfave/cli/v3"
)

// DoneCmd implements the zentasks done command.
type DoneCmd struct {
	flags *Flags
	app   *zen.App
}

// NewDoneCmd creates a new done command.
func NewDoneCmd(flags *Flags, app *zen.App) *DoneCmd {
	return &DoneCmd{flags: flags, app: app}
}

// Register adds the done command to the application.
func (cmd *DoneCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "done",
		Usage:     "Toggle a task's completed state",
		UsageText: "zentasks done <task-id>",
		Description: `Flips the completed flag of the given task. Completing a task moves
it below the incomplete tasks; toggling again moves it back.

Examples:
  zentasks done k3j9x2pa`,
		Action: cmd.run,
	})

	return app
}

func (cmd *DoneCmd) run(ctx context.Context, c *cli.Command) error {
	id := c.Args().First()
	if id == "" {
		return errors.New("task id is required")
	}

	t, ok := cmd.app.Tasks.Get(id)
	if !ok {
		return fmt.Errorf("no task with id %q", id)
	}

	cmd.app.Tasks.ToggleComplete(ctx, id)

	if t.Completed {
		fmt.Printf("Reopened: %s\n", t.Title)
	} else {
		fmt.Printf("Done: %s\n", t.Title)
	}

	return nil
}
