package commands

import (
	"context"
	"fmt"

	"github.com/Aryanp-07/ZenTasks/internal/core/styles"
	"github.com/Aryanp-07/ZenTasks/internal/zen"
	"github.com/Aryanp-07/ZenTasks/pkg/iojson"
	"github.com/urfave/cli/v3"
)

// TagsCmd implements the zentasks tags command.
type TagsCmd struct {
	flags *Flags
	app   *zen.App

	asJSON bool
}

// NewTagsCmd creates a new tags command.
func NewTagsCmd(flags *Flags, app *zen.App) *TagsCmd {
	return &TagsCmd{flags: flags, app: app}
}

// Register adds the tags command to the application.
func (cmd *TagsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "tags",
		Usage:     "List all tags in use",
		UsageText: "zentasks tags [--json]",
		Flags: []cli.Flag{
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

func (cmd *TagsCmd) run(ctx context.Context, c *cli.Command) error {
	tags := cmd.app.Tasks.AllTags()

	if cmd.asJSON {
		return iojson.Write(tags)
	}

	if len(tags) == 0 {
		fmt.Println(styles.MutedStyle.Render("no tags"))
		return nil
	}

	for _, tag := range tags {
		fmt.Println(styles.TagStyle.Render("#" + tag))
	}

	return nil
}
