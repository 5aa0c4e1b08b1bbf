package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/Aryanp-07/ZenTasks/internal/commands"
	"github.com/Aryanp-07/ZenTasks/internal/core/config"
	"github.com/Aryanp-07/ZenTasks/internal/core/styles"
	"github.com/Aryanp-07/ZenTasks/internal/data/kv"
	"github.com/Aryanp-07/ZenTasks/internal/gen"
	"github.com/Aryanp-07/ZenTasks/internal/zen"
	"github.com/Aryanp-07/ZenTasks/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() falls
	// back to runtime/debug.BuildInfo.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		zenApp    = &zen.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "zentasks",
		Usage:     "Personal task manager",
		UsageText: "zentasks [global options] command [command options]",
		Description: `ZenTasks keeps a local task list: tag it, schedule it, break tasks
down into AI-suggested subtasks. Everything is stored on this machine;
there is no server and no account.

Run 'zentasks' with no arguments to open the interactive task list.
Run 'zentasks add' to add a task from the command line.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("ZENTASKS_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/zentasks.log)",
				Sources:     cli.EnvVars("ZENTASKS_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("ZENTASKS_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("ZENTASKS_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Pick up GEMINI_API_KEY and friends from a local .env if
			// present; absence is not an error.
			_ = godotenv.Load()

			// Always log to a file so the TUI never fights with log
			// output on the terminal.
			logFile := flags.LogFile
			if logFile == "" {
				logFile = filepath.Join(flags.DataDir, "zentasks.log")
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			styles.SetTheme(cfg.TUI.Theme)

			store, err := kv.NewFileStore(filepath.Join(cfg.DataDir, "kv"))
			if err != nil {
				return ctx, fmt.Errorf("open kv store: %w", err)
			}

			tasks := zen.NewTaskService(store, logger)
			tasks.Load(ctx)

			var generator gen.Generator
			if cfg.Generator.IsEnabled() {
				generator = gen.NewGeminiClient(cfg.Generator.APIKey(), cfg.Generator.Model)
			}
			breakdown := zen.NewBreakdown(generator, logger)

			// Populate the pre-allocated App struct (commands already
			// hold a pointer to it).
			*zenApp = *zen.NewApp(tasks, breakdown, cfg)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Flush any pending persistence write before exit.
			if zenApp.Tasks != nil {
				zenApp.Tasks.Close()
			}

			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, zenApp)

	app = commands.NewAddCmd(flags, zenApp).Register(app)
	app = commands.NewListCmd(flags, zenApp).Register(app)
	app = commands.NewEditCmd(flags, zenApp).Register(app)
	app = commands.NewDoneCmd(flags, zenApp).Register(app)
	app = commands.NewRmCmd(flags, zenApp).Register(app)
	app = commands.NewTagsCmd(flags, zenApp).Register(app)
	app = commands.NewSubtaskCmd(flags, zenApp).Register(app)
	app = tuiCmd.Register(app)

	// Open the TUI when no subcommand is provided.
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'zentasks --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Println()
		fmt.Println(err.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
