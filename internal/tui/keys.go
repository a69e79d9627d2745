package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard bindings. Printable keys go to the focused
// input, so every action sits behind a control or navigation key.
type keyMap struct {
	Quit       key.Binding
	NextField  key.Binding
	PrevField  key.Binding
	ToggleCase key.Binding
	NextSource key.Binding
	Refresh    key.Binding
	Clear      key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Top        key.Binding
	Bottom     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		ToggleCase: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "case"),
		),
		NextSource: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "source"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "refresh"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear field"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end"),
		),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.NextField, k.ToggleCase, k.NextSource, k.Refresh, k.Clear, k.Quit}
}
