package commands

import (
	"context"
	"fmt"

	"github.com/Aryanp-07/ZenTasks/internal/tui"
	"github.com/Aryanp-07/ZenTasks/internal/zen"
	"github.com/urfave/cli/v3"
)

// TuiCmd implements the interactive task list, used as the default
// action when no subcommand is given.
type TuiCmd struct {
	flags *Flags
	app   *zen.App
}

// NewTuiCmd creates a new tui command.
func NewTuiCmd(flags *Flags, app *zen.App) *TuiCmd {
	return &TuiCmd{flags: flags, app: app}
}

// Register adds the tui command to the application.
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "tui",
		Usage:     "Open the interactive task list",
		UsageText: "zentasks tui",
		Action:    cmd.Run,
	})

	return app
}

// Run starts the TUI.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	if err := tui.Run(cmd.app); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
