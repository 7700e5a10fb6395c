package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit        key.Binding
	Help        key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Today       key.Binding
	MoveEarlier key.Binding
	MoveLater   key.Binding
	StartEarly  key.Binding
	StartLate   key.Binding
	Add         key.Binding
	Edit        key.Binding
	Delete      key.Binding
	Conflicts   key.Binding
	Cancel      key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Today},
		{k.MoveEarlier, k.MoveLater, k.StartEarly, k.StartLate},
		{k.Add, k.Edit, k.Delete, k.Conflicts},
		{k.Cancel, k.Help, k.Quit},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "scroll left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "scroll right"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		MoveEarlier: key.NewBinding(
			key.WithKeys("H", "shift+left"),
			key.WithHelp("H", "move task earlier"),
		),
		MoveLater: key.NewBinding(
			key.WithKeys("L", "shift+right"),
			key.WithHelp("L", "move task later"),
		),
		StartEarly: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "start a day earlier"),
		),
		StartLate: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "start a day later"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add task"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit task"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete task"),
		),
		Conflicts: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "validation report"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
	}
}
