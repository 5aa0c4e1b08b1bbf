package zen

import "github.com/Aryanp-07/ZenTasks/internal/core/config"

// App aggregates the application services handed to the presentation
// layer. Commands hold a pointer to a pre-allocated App that main
// populates once wiring is complete.
type App struct {
	Tasks     *TaskService
	Breakdown *Breakdown
	Config    *config.Config
}

// NewApp bundles the services into an App.
func NewApp(tasks *TaskService, breakdown *Breakdown, cfg *config.Config) *App {
	return &App{
		Tasks:     tasks,
		Breakdown: breakdown,
		Config:    cfg,
	}
}
