package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Token    key.Binding
	Equal    key.Binding
	Clear    key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Activate key.Binding
	Tape     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Token: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
				".", "+", "-", "*", "/", "(", ")"),
			key.WithHelp("0-9 + - * / ( )", "type"),
		),
		Equal: key.NewBinding(
			key.WithKeys("enter", "="),
			key.WithHelp("enter/=", "evaluate"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "C", "esc", "delete"),
			key.WithHelp("c/esc", "clear"),
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
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Activate: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "press focused"),
		),
		Tape: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tape"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equal, k.Clear, k.Tape, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Token, k.Equal, k.Clear},
		{k.Up, k.Down, k.Left, k.Right, k.Activate},
		{k.Tape, k.Help, k.Quit},
	}
}
