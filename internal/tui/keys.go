package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	Up        key.Binding
	Down      key.Binding
	Add       key.Binding
	Delete    key.Binding
	Favorite  key.Binding
	ToggleRead key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),
		ToggleRead: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "toggle read"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.NextTab, m.keys.Add, m.keys.Delete, m.keys.Help, m.keys.Quit}
}

// FullHelp implements help.KeyMap
func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.NextTab, m.keys.PrevTab, m.keys.Up, m.keys.Down},
		{m.keys.Add, m.keys.Delete, m.keys.Favorite, m.keys.ToggleRead},
		{m.keys.Help, m.keys.Quit},
	}
}
