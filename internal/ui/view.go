package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gocalc/internal/calc"
)

func (m Model) View() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.titleView(),
		m.displayView(),
		m.keypadView(),
	)

	body := left
	if m.showTape {
		tapeBox := m.style.
			Width(tapeWidth).
			Height(tapeHeight).
			Render(m.tapeView.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, " ", tapeBox)
	}

	var sb strings.Builder
	sb.WriteString(body)
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) titleView() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.Operator).
		Width(gridWidth(m.keypad)).
		Render("Simple Calculator")
}

// displayView renders the display field on a single line. Text wider than
// the field is cut from the left so the end of the expression stays visible.
func (m Model) displayView() string {
	inner := gridWidth(m.keypad) - 2
	text := truncateLeft(m.display.text, inner)

	color := m.theme.Display
	if m.display.text == calc.ErrorText {
		color = m.theme.Error
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Muted).
		Foreground(color).
		Bold(true).
		Width(inner).
		Align(lipgloss.Right).
		Render(text)
}

// truncateLeft keeps the widest tail of text that fits in width cells
// together with a leading ellipsis. Runes are never split.
func truncateLeft(text string, width int) string {
	if lipgloss.Width(text) <= width {
		return text
	}
	const ellipsis = "…"
	room := width - lipgloss.Width(ellipsis)
	runes := []rune(text)
	start := len(runes)
	for start > 0 {
		w := lipgloss.Width(string(runes[start-1]))
		if w > room {
			break
		}
		room -= w
		start--
	}
	return ellipsis + string(runes[start:])
}

func (m Model) keypadView() string {
	focused := m.Focused()

	rows := make([]string, 0, m.keypad.Rows())
	for r := 0; r < m.keypad.Rows(); r++ {
		var cells []string
		for _, b := range m.keypad.Row(r) {
			cells = append(cells, m.buttonView(b, b == focused))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) buttonView(b calc.Button, focused bool) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Muted).
		Foreground(m.buttonColor(b.Kind)).
		Width(b.Span*cellWidth - 2).
		Height(cellHeight - 2).
		Align(lipgloss.Center)
	if focused {
		style = style.
			BorderForeground(m.theme.Focus).
			Bold(true).
			Reverse(true)
	}
	return style.Render(b.Label)
}

func (m Model) buttonColor(kind calc.ButtonKind) lipgloss.Color {
	switch kind {
	case calc.KindOperator:
		return m.theme.Operator
	case calc.KindEquals:
		return m.theme.Equals
	case calc.KindClear:
		return m.theme.Clear
	default:
		return m.theme.Digit
	}
}
