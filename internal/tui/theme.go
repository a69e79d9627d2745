package tui

import "github.com/charmbracelet/lipgloss"

// palette is the Dracula palette used across the terminal surface.
var palette = struct {
	Surface, Text, Muted, Faint, Accent string
	Success, Warning, Danger, Info      string
}{
	Surface: "#282A36",
	Text:    "#F8F8F2",
	Muted:   "#6272A4",
	Faint:   "#44475A",
	Accent:  "#BD93F9",
	Success: "#50FA7B",
	Warning: "#FFB86C",
	Danger:  "#FF5555",
	Info:    "#8BE9FD",
}

type styles struct {
	Header  lipgloss.Style
	Logo    lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Focused lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style

	levels map[string]lipgloss.Style
}

func newStyles() styles {
	color := func(hex string) lipgloss.Color { return lipgloss.Color(hex) }
	return styles{
		Header: lipgloss.NewStyle().
			Background(color(palette.Surface)).
			Foreground(color(palette.Text)).
			Padding(0, 1),
		Logo:    lipgloss.NewStyle().Foreground(color(palette.Warning)).Bold(true),
		Label:   lipgloss.NewStyle().Foreground(color(palette.Muted)),
		Value:   lipgloss.NewStyle().Foreground(color(palette.Text)),
		Focused: lipgloss.NewStyle().Foreground(color(palette.Accent)).Bold(true),
		Status:  lipgloss.NewStyle().Foreground(color(palette.Muted)),
		Error:   lipgloss.NewStyle().Foreground(color(palette.Danger)).Bold(true),
		Help:    lipgloss.NewStyle().Foreground(color(palette.Faint)),
		levels: map[string]lipgloss.Style{
			"ERROR":   lipgloss.NewStyle().Foreground(color(palette.Danger)).Bold(true),
			"WARN":    lipgloss.NewStyle().Foreground(color(palette.Warning)).Bold(true),
			"WARNING": lipgloss.NewStyle().Foreground(color(palette.Warning)).Bold(true),
			"INFO":    lipgloss.NewStyle().Foreground(color(palette.Success)),
			"DEBUG":   lipgloss.NewStyle().Foreground(color(palette.Info)),
		},
	}
}
