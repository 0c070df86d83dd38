// Package calc holds the calculator state: an expression buffer that grows
// with every key press, is evaluated on demand and is mirrored to a display.
package calc

import (
	"gocalc/internal/eval"
)

// ErrorText is shown on the display when an evaluation fails.
const ErrorText = "Error"

// Evaluator turns an expression into a value or fails.
type Evaluator interface {
	Evaluate(expr string) (eval.Value, error)
}

// Display receives the text to show after every change.
type Display interface {
	SetText(text string)
}

// Controller owns the expression buffer. It is not safe for concurrent use;
// callers drive it from a single event loop.
type Controller struct {
	evaluator Evaluator
	display   Display
	buffer    string
}

func New(evaluator Evaluator, display Display) *Controller {
	c := &Controller{
		evaluator: evaluator,
		display:   display,
	}
	c.display.SetText("")
	return c
}

// Buffer returns the expression accumulated so far.
func (c *Controller) Buffer() string {
	return c.buffer
}

// Press appends token to the buffer. Nothing is validated until Equal.
func (c *Controller) Press(token string) {
	c.buffer += token
	c.display.SetText(c.buffer)
}

// Equal evaluates the buffer. On success the result replaces the buffer so
// input can continue from it. On failure the display shows ErrorText, the
// buffer is emptied and the evaluator's error is returned.
func (c *Controller) Equal() error {
	v, err := c.evaluator.Evaluate(c.buffer)
	if err != nil {
		c.buffer = ""
		c.display.SetText(ErrorText)
		return err
	}
	c.buffer = v.String()
	c.display.SetText(c.buffer)
	return nil
}

// Clear empties the buffer and the display.
func (c *Controller) Clear() {
	c.buffer = ""
	c.display.SetText("")
}
