package zen

import (
	"context"
	"strings"

	"github.com/Aryanp-07/ZenTasks/internal/core/logging"
	"github.com/Aryanp-07/ZenTasks/internal/core/task"
	"github.com/Aryanp-07/ZenTasks/internal/gen"
	"github.com/Aryanp-07/ZenTasks/pkg/randid"
	"github.com/rs/zerolog"
)

// maxSuggestions caps how many subtasks a single breakdown produces,
// matching the limit stated in the generation prompt.
const maxSuggestions = 5

// Breakdown turns a task title into suggested subtasks via the
// external text generator. The contract is strictly best-effort: a
// failed or disabled generator yields an empty suggestion list, never
// an error, so subtask generation can never block task creation.
type Breakdown struct {
	generator gen.Generator
	log       zerolog.Logger
}

// NewBreakdown creates the suggestion service. generator may be nil to
// disable generation entirely.
func NewBreakdown(generator gen.Generator, log zerolog.Logger) *Breakdown {
	return &Breakdown{
		generator: generator,
		log:       logging.Component(log, "breakdown"),
	}
}

// suggestOutcome carries the raw generation result through the
// swallow-and-log decision point, keeping the degrade-to-empty policy
// explicit and testable instead of an implicit side effect.
type suggestOutcome struct {
	text string
	err  error
}

// Suggest returns up to maxSuggestions incomplete subtasks for the
// given task title. Failures are logged and degrade to nil.
func (b *Breakdown) Suggest(ctx context.Context, title string) []task.Subtask {
	outcome := b.generate(ctx, title)
	if outcome.err != nil {
		b.log.Warn().Err(outcome.err).Str("title", title).Msg("subtask generation failed, continuing without suggestions")
		return nil
	}

	lines := parseSuggestions(outcome.text)
	subtasks := make([]task.Subtask, 0, len(lines))
	for _, line := range lines {
		subtasks = append(subtasks, task.Subtask{
			ID:    randid.Generate(idLength),
			Title: line,
		})
	}

	b.log.Info().Str("title", title).Int("suggestions", len(subtasks)).Msg("generated subtasks")
	return subtasks
}

func (b *Breakdown) generate(ctx context.Context, title string) suggestOutcome {
	if b.generator == nil {
		return suggestOutcome{err: gen.ErrNoAPIKey}
	}

	text, err := b.generator.Generate(ctx, gen.BuildPrompt(title))
	return suggestOutcome{text: text, err: err}
}

// parseSuggestions splits generator output into clean subtask titles:
// one per line, trimmed, blank lines dropped, stray list markers the
// model sometimes emits stripped, capped at maxSuggestions.
func parseSuggestions(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
