package ui

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gocalc/internal/calc"
	"gocalc/internal/eval"
)

const (
	tapeWidth  = 24
	tapeHeight = gridTop + 5*cellHeight - 2
)

// Options configures a Model.
type Options struct {
	Theme     Theme
	Precision uint32
	ShowTape  bool
	Logger    *slog.Logger
}

// displayField is the single text field of the window. The controller writes
// it; the view renders it.
type displayField struct {
	text string
}

func (d *displayField) SetText(text string) {
	d.text = text
}

type Model struct {
	controller *calc.Controller
	keypad     *calc.Keypad
	bindings   map[string]func()
	display    *displayField
	tape       *tape
	tapeView   viewport.Model
	showTape   bool
	help       help.Model
	keys       keyMap
	theme      Theme
	style      lipgloss.Style
	logger     *slog.Logger
	focusRow   int
	focusCol   int
	width      int
	height     int
}

func (m Model) Init() tea.Cmd {
	return nil
}

func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Theme == (Theme{}) {
		opts.Theme = DefaultTheme()
	}

	display := &displayField{}
	controller := calc.New(eval.New(opts.Precision), display)
	keypad := calc.NewKeypad()
	history := &tape{}

	bindings := keypad.Bindings(controller, func(expr string, err error) {
		if err != nil {
			logger.Debug("evaluation failed", "expr", expr, "error", err)
			history.add(TapeEntry{Expression: expr, Result: calc.ErrorText, Failed: true})
			return
		}
		logger.Info("evaluated", "expr", expr, "result", controller.Buffer())
		history.add(TapeEntry{Expression: expr, Result: controller.Buffer()})
	})

	style := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(opts.Theme.Muted)

	m := Model{
		controller: controller,
		keypad:     keypad,
		bindings:   bindings,
		display:    display,
		tape:       history,
		tapeView:   viewport.New(tapeWidth, tapeHeight),
		showTape:   opts.ShowTape,
		help:       help.New(),
		keys:       newKeyMap(),
		theme:      opts.Theme,
		style:      style,
		logger:     logger,
	}
	m.refreshTape()
	return m
}

// Buffer returns the controller's current expression.
func (m Model) Buffer() string {
	return m.controller.Buffer()
}

// DisplayText returns what the display field currently shows.
func (m Model) DisplayText() string {
	return m.display.text
}

// Tape returns the evaluations made so far, oldest first.
func (m Model) Tape() []TapeEntry {
	out := make([]TapeEntry, len(m.tape.entries))
	copy(out, m.tape.entries)
	return out
}

// Focused returns the keypad button that has keyboard focus.
func (m Model) Focused() calc.Button {
	b, _ := m.keypad.At(m.focusRow, m.focusCol)
	return b
}
