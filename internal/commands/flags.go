// Package commands implements the zentasks CLI command groups.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Flags holds global flag values shared by all commands.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "zentasks.yml"
	}
	return filepath.Join(dir, "zentasks", "config.yml")
}

// DefaultDataDir returns the default data directory.
func DefaultDataDir() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ".zentasks"
	}
	return filepath.Join(dir, ".zentasks")
}

// parseTags splits comma-separated user input into clean tags:
// trimmed, blanks dropped, order preserved.
func parseTags(input string) []string {
	var out []string
	for _, tag := range strings.Split(input, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		out = append(out, tag)
	}
	return out
}

// dueDateLayouts are the accepted --due formats, tried in order.
var dueDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	time.RFC3339,
}

// parseDueDate parses user due-date input. Empty input means no
// deadline and returns nil.
func parseDueDate(input string) (*time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	for _, layout := range dueDateLayouts {
		if t, err := time.ParseInLocation(layout, input, time.Local); err == nil {
			return &t, nil
		}
	}

	return nil, fmt.Errorf("invalid due date %q (expected YYYY-MM-DD)", input)
}
