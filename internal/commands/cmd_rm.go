package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aryanp-07/ZenTasks/internal/zen"
	"github.com/urfave/cli/v3"
)

// RmCmd implements the zentasks rm command.
type RmCmd struct {
	flags *Flags
	app   *zen.App
}

// NewRmCmd creates a new rm command.
func NewRmCmd(flags *Flags, app *zen.App) *RmCmd {
	return &RmCmd{flags: flags, app: app}
}

// Register adds the rm command to the application.
func (cmd *RmCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "rm",
		Usage:     "Delete a task",
		UsageText: "zentasks rm <task-id>",
		Action:    cmd.run,
	})

	return app
}

func (cmd *RmCmd) run(ctx context.Context, c *cli.Command) error {
	id := c.Args().First()
	if id == "" {
		return errors.New("task id is required")
	}

	t, ok := cmd.app.Tasks.Get(id)
	if !ok {
		return fmt.Errorf("no task with id %q", id)
	}

	cmd.app.Tasks.Delete(ctx, id)
	fmt.Printf("Deleted: %s\n", t.Title)

	return nil
}
