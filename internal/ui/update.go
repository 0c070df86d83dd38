package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gocalc/internal/calc"
)

// Update is the main update function for the calculator's bubbletea loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Token):
			m.press(msg.String())

		case key.Matches(msg, m.keys.Equal):
			m.press(calc.EqualsLabel)

		case key.Matches(msg, m.keys.Clear):
			m.press(calc.ClearLabel)

		case key.Matches(msg, m.keys.Up):
			m.moveFocus(-1, 0)

		case key.Matches(msg, m.keys.Down):
			m.moveFocus(1, 0)

		case key.Matches(msg, m.keys.Left):
			m.moveFocus(0, -1)

		case key.Matches(msg, m.keys.Right):
			m.moveFocus(0, 1)

		case key.Matches(msg, m.keys.Activate):
			m.press(m.Focused().Label)

		case key.Matches(msg, m.keys.Tape):
			m.showTape = !m.showTape

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if b, ok := buttonAt(m.keypad, msg.X, msg.Y); ok {
			m.focusRow, m.focusCol = b.Row, b.Col
			m.press(b.Label)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// press runs the keypad handler bound to token. Tokens without a button,
// such as parentheses typed on the keyboard, are appended directly.
func (m *Model) press(token string) {
	if handler, ok := m.bindings[token]; ok {
		handler()
	} else {
		m.controller.Press(token)
	}
	if token == calc.EqualsLabel {
		m.refreshTape()
	}
}

func (m *Model) refreshTape() {
	m.tapeView.SetContent(m.tape.render(m.theme))
	m.tapeView.GotoBottom()
}

// moveFocus moves keyboard focus by one button. Moving sideways off a
// button that spans several columns jumps past its whole span.
func (m *Model) moveFocus(dRow, dCol int) {
	current := m.Focused()

	row := m.focusRow + dRow
	col := m.focusCol
	switch {
	case dCol < 0:
		col = current.Col - 1
	case dCol > 0:
		col = current.Col + current.Span
	}

	if row < 0 || row >= m.keypad.Rows() || col < 0 || col >= m.keypad.Cols() {
		return
	}
	m.focusRow, m.focusCol = row, col
}
