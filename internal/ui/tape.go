package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// maxTapeEntries bounds the evaluation history kept by the window.
const maxTapeEntries = 100

// TapeEntry records one evaluation.
type TapeEntry struct {
	Expression string
	Result     string
	Failed     bool
}

type tape struct {
	entries []TapeEntry
}

func (t *tape) add(e TapeEntry) {
	t.entries = append(t.entries, e)
	if len(t.entries) > maxTapeEntries {
		t.entries = t.entries[len(t.entries)-maxTapeEntries:]
	}
}

func (t *tape) render(theme Theme) string {
	if len(t.entries) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Muted).Render("No calculations yet")
	}

	exprStyle := lipgloss.NewStyle().Foreground(theme.Muted)
	resultStyle := lipgloss.NewStyle().Foreground(theme.Display).Bold(true)
	errorStyle := lipgloss.NewStyle().Foreground(theme.Error)

	var sb strings.Builder
	for i, e := range t.entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		expr := e.Expression
		if expr == "" {
			expr = "(empty)"
		}
		sb.WriteString(exprStyle.Render(expr))
		sb.WriteString("\n")
		if e.Failed {
			sb.WriteString(errorStyle.Render(fmt.Sprintf("= %s", e.Result)))
		} else {
			sb.WriteString(resultStyle.Render(fmt.Sprintf("= %s", e.Result)))
		}
	}
	return sb.String()
}
