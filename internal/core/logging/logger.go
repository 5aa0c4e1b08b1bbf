// Package logging provides helpers for deriving per-component loggers.
package logging

import "github.com/rs/zerolog"

// Component derives a child logger from base with a component
// identifier. Every service tags its log lines this way so a single
// log file stays attributable.
func Component(base zerolog.Logger, name string) zerolog.Logger {
	return base.With().Str("component", name).Logger()
}
