// Package styles provides shared lipgloss styles for CLI and TUI
// output.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

var themes = map[string]Palette{
	"dark": {
		Primary:    lipgloss.Color("#3B82F6"),
		Foreground: lipgloss.Color("#F9FAFB"),
		Muted:      lipgloss.Color("#9CA3AF"),
		Success:    lipgloss.Color("#34D399"),
		Warning:    lipgloss.Color("#FBBF24"),
		Error:      lipgloss.Color("#F87171"),
	},
	"light": {
		Primary:    lipgloss.Color("#2563EB"),
		Foreground: lipgloss.Color("#111827"),
		Muted:      lipgloss.Color("#6B7280"),
		Success:    lipgloss.Color("#059669"),
		Warning:    lipgloss.Color("#D97706"),
		Error:      lipgloss.Color("#DC2626"),
	},
}

var active = themes["dark"]

// SetTheme switches the active palette. Unknown names keep the current
// palette.
func SetTheme(name string) {
	if p, ok := themes[name]; ok {
		active = p
		rebuild()
	}
}

// Styles rebuilt whenever the palette changes.
var (
	TitleStyle     lipgloss.Style
	MutedStyle     lipgloss.Style
	PrimaryStyle   lipgloss.Style
	DoneStyle      lipgloss.Style
	OverdueStyle   lipgloss.Style
	TagStyle       lipgloss.Style
	SelectionStyle lipgloss.Style
)

func rebuild() {
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(active.Foreground)
	MutedStyle = lipgloss.NewStyle().Foreground(active.Muted)
	PrimaryStyle = lipgloss.NewStyle().Foreground(active.Primary)
	DoneStyle = lipgloss.NewStyle().Foreground(active.Muted).Strikethrough(true)
	OverdueStyle = lipgloss.NewStyle().Foreground(active.Error)
	TagStyle = lipgloss.NewStyle().Foreground(active.Primary).Faint(true)
	SelectionStyle = lipgloss.NewStyle().Foreground(active.Primary).Bold(true)
}

func init() {
	rebuild()
}
