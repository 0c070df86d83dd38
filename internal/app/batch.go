package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"gocalc/internal/calc"
	"gocalc/internal/eval"
)

// maxBatchLine is the longest input line batch mode accepts.
const maxBatchLine = 16 << 20

// lineDisplay keeps the last text written by the controller.
type lineDisplay struct {
	text string
}

func (d *lineDisplay) SetText(text string) {
	d.text = text
}

// RunBatch replays every input line as key presses and prints the display
// once the line is done. The buffer carries over between lines, so a line
// "+1=" continues from the previous result.
func (a *App) RunBatch(r io.Reader, w io.Writer) error {
	display := &lineDisplay{}
	controller := calc.New(eval.New(a.cfg.Precision), display)
	bindings := calc.NewKeypad().Bindings(controller, func(expr string, err error) {
		if err != nil {
			a.logger.Debug("evaluation failed", "expr", expr, "error", err)
			return
		}
		a.logger.Info("evaluated", "expr", expr, "result", controller.Buffer())
	})

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxBatchLine)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		for _, ch := range line {
			if unicode.IsSpace(ch) {
				continue
			}
			token := string(ch)
			if token == "c" {
				token = calc.ClearLabel
			}
			if handler, ok := bindings[token]; ok {
				handler()
			} else {
				controller.Press(token)
			}
		}
		if _, err := fmt.Fprintln(w, display.text); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// EvalArgs evaluates each expression on its own and prints one line per
// expression. It returns an error if any of them failed.
func (a *App) EvalArgs(exprs []string, w io.Writer) error {
	e := eval.New(a.cfg.Precision)
	failed := 0
	for _, expr := range exprs {
		v, err := e.Evaluate(expr)
		if err != nil {
			a.logger.Debug("evaluation failed", "expr", expr, "error", err)
			failed++
			fmt.Fprintln(w, calc.ErrorText)
			continue
		}
		fmt.Fprintln(w, v.String())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(exprs))
	}
	return nil
}
