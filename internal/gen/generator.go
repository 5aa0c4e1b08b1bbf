// Package gen wraps the external text-generation service used to
// suggest subtasks. The rest of the application only sees the
// Generator interface; the concrete client is an implementation
// detail injected at startup.
package gen

import (
	"context"
	"fmt"
)

// Generator produces a natural-language text response for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// BuildPrompt returns the instruction sent to the generator when
// breaking a task down into subtasks.
func BuildPrompt(title string) string {
	return fmt.Sprintf("Break down the task: %q into actionable subtasks. Maximum 5, short phrases, no numbering, one per line, plaintext.", title)
}
