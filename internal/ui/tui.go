package ui

import tea "github.com/charmbracelet/bubbletea"

// TUI wraps our Bubble Tea program.
type TUI struct {
	program *tea.Program
	opts    Options
}

// New returns a new TUI handle
func New(opts Options) *TUI {
	return &TUI{opts: opts}
}

// Quit stops a running program. It does nothing before Start.
func (t *TUI) Quit() {
	if t.program != nil {
		t.program.Quit()
	}
}

// Start runs the TUI main loop
func (t *TUI) Start() error {
	p := tea.NewProgram(NewModel(t.opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	t.program = p
	_, err := p.Run()
	return err
}
