package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocalc/internal/calc"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = send(t, m, runes(string(r)))
	}
	return m
}

// click presses the left mouse button in the middle of the button at (row, col).
func click(row, col int) tea.MouseMsg {
	return tea.MouseMsg{
		X:      col*cellWidth + cellWidth/2,
		Y:      gridTop + row*cellHeight + cellHeight/2,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
}

func TestTypingAndEvaluating(t *testing.T) {
	m := NewModel(Options{})

	m = typeText(t, m, "2+3*4")
	assert.Equal(t, "2+3*4", m.Buffer())
	assert.Equal(t, "2+3*4", m.DisplayText())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "14", m.Buffer())
	assert.Equal(t, "14", m.DisplayText())

	m = typeText(t, m, "+1")
	assert.Equal(t, "14+1", m.DisplayText())
	m = typeText(t, m, "=")
	assert.Equal(t, "15", m.DisplayText())

	assert.Equal(t, []TapeEntry{
		{Expression: "2+3*4", Result: "14"},
		{Expression: "14+1", Result: "15"},
	}, m.Tape())
}

func TestParenthesesFromKeyboard(t *testing.T) {
	m := NewModel(Options{})
	m = typeText(t, m, "2*(3+4)=")
	assert.Equal(t, "14", m.DisplayText())
}

func TestErrorAndClear(t *testing.T) {
	m := NewModel(Options{})

	m = typeText(t, m, "5+=")
	assert.Equal(t, calc.ErrorText, m.DisplayText())
	assert.Empty(t, m.Buffer())
	require.Len(t, m.Tape(), 1)
	assert.True(t, m.Tape()[0].Failed)

	m = typeText(t, m, "7")
	assert.Equal(t, "7", m.DisplayText())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.DisplayText())
	assert.Empty(t, m.Buffer())

	m = typeText(t, m, "9c")
	assert.Empty(t, m.DisplayText())
}

func TestMouseClicks(t *testing.T) {
	m := NewModel(Options{})

	// 7 + 8 =
	m = send(t, m,
		click(0, 0),
		click(3, 2),
		click(0, 1),
		click(3, 3),
	)
	assert.Equal(t, "15", m.DisplayText())
	assert.Equal(t, calc.EqualsLabel, m.Focused().Label)

	// anywhere on the full-width clear button
	m = send(t, m, click(4, 3))
	assert.Empty(t, m.DisplayText())
	assert.Equal(t, calc.ClearLabel, m.Focused().Label)
}

func TestMouseIgnoresOtherEvents(t *testing.T) {
	m := NewModel(Options{})

	release := click(0, 0)
	release.Action = tea.MouseActionRelease
	right := click(0, 0)
	right.Button = tea.MouseButtonRight
	outside := tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	m = send(t, m, release, right, outside)
	assert.Empty(t, m.Buffer())
}

func TestFocusNavigation(t *testing.T) {
	m := NewModel(Options{})
	assert.Equal(t, "7", m.Focused().Label)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "7", m.Focused().Label)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "5", m.Focused().Label)

	m = send(t, m, runes(" "))
	assert.Equal(t, "5", m.DisplayText())

	m = send(t, m, runes("j"), runes("j"), runes("j"))
	assert.Equal(t, calc.ClearLabel, m.Focused().Label)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, calc.ClearLabel, m.Focused().Label)

	m = send(t, m, runes("k"))
	assert.Equal(t, ".", m.Focused().Label)
}

func TestQuit(t *testing.T) {
	m := NewModel(Options{})

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestToggles(t *testing.T) {
	m := NewModel(Options{ShowTape: true})
	assert.True(t, m.showTape)

	m = send(t, m, runes("t"), runes("?"))
	assert.False(t, m.showTape)
	assert.True(t, m.help.ShowAll)
}

func TestButtonAt(t *testing.T) {
	k := calc.NewKeypad()

	tests := []struct {
		x, y  int
		label string
		ok    bool
	}{
		{0, gridTop, "7", true},
		{cellWidth - 1, gridTop + cellHeight - 1, "7", true},
		{cellWidth, gridTop, "8", true},
		{3 * cellWidth, gridTop + 3*cellHeight, "=", true},
		{gridWidth(k) - 1, gridTop + 4*cellHeight + 1, "C", true},
		{0, gridTop - 1, "", false},
		{gridWidth(k), gridTop, "", false},
		{0, gridTop + 5*cellHeight, "", false},
		{-1, gridTop, "", false},
	}
	for _, tt := range tests {
		b, ok := buttonAt(k, tt.x, tt.y)
		assert.Equal(t, tt.ok, ok, "(%d,%d)", tt.x, tt.y)
		assert.Equal(t, tt.label, b.Label, "(%d,%d)", tt.x, tt.y)
	}
}

func TestViewGeometry(t *testing.T) {
	m := NewModel(Options{})
	m = typeText(t, m, "12+7")

	lines := strings.Split(m.View(), "\n")
	require.Greater(t, len(lines), gridTop+5*cellHeight)
	assert.Contains(t, lines[0], "Simple Calculator")
	assert.Contains(t, lines[titleHeight+1], "12+7")
	// label row of the first keypad row
	assert.Contains(t, lines[gridTop+1], "7")
	assert.Contains(t, lines[gridTop+1], "/")
	assert.Contains(t, lines[gridTop+4*cellHeight+1], "C")
}

func TestDisplayTruncatesLongInput(t *testing.T) {
	m := NewModel(Options{})
	m = typeText(t, m, strings.Repeat("1", 40)+"+2")

	view := m.displayView()
	assert.Len(t, strings.Split(view, "\n"), displayHeight)
	assert.Contains(t, view, "…")
	assert.Contains(t, view, "1+2")
}

func TestDisplayTruncatesWideRunes(t *testing.T) {
	m := NewModel(Options{})
	for i := 0; i < 40; i++ {
		m.press("é")
		m.press("界")
	}

	view := m.displayView()
	assert.True(t, utf8.ValidString(view))
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), gridWidth(m.keypad))
	}
	tail := truncateLeft(m.DisplayText(), gridWidth(m.keypad)-2)
	assert.True(t, strings.HasPrefix(tail, "…"))
	assert.True(t, strings.HasSuffix(tail, "é界"))
	assert.LessOrEqual(t, lipgloss.Width(tail), gridWidth(m.keypad)-2)
}

func TestTruncateLeft(t *testing.T) {
	assert.Equal(t, "12+7", truncateLeft("12+7", 10))
	assert.Equal(t, "…567", truncateLeft("1234567", 4))
	assert.Equal(t, "…界", truncateLeft("é界界", 4))
}

func TestTapeBounded(t *testing.T) {
	tp := &tape{}
	for i := 0; i < maxTapeEntries+5; i++ {
		tp.add(TapeEntry{Expression: "1", Result: "1"})
	}
	assert.Len(t, tp.entries, maxTapeEntries)
	assert.Contains(t, (&tape{}).render(DefaultTheme()), "No calculations yet")
}

func TestQuitBeforeStart(t *testing.T) {
	assert.NotPanics(t, func() { New(Options{}).Quit() })
}

func TestThemeNames(t *testing.T) {
	assert.Equal(t, []string{"default", "dracula", "monokai", "nord", "solarized"}, ThemeNames())
}
