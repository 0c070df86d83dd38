package calc

// ButtonKind groups buttons by what they do and how they are styled.
type ButtonKind int

const (
	KindDigit ButtonKind = iota
	KindOperator
	KindEquals
	KindClear
)

// Button is one key of the keypad. Span is the number of columns it covers.
type Button struct {
	Label string
	Row   int
	Col   int
	Span  int
	Kind  ButtonKind
}

// Keypad is the fixed 4x5 button grid.
type Keypad struct {
	buttons []Button
	cols    int
	rows    int
}

const (
	EqualsLabel = "="
	ClearLabel  = "C"
)

// NewKeypad returns the standard layout:
//
//	7 8 9 /
//	4 5 6 *
//	1 2 3 -
//	0 . + =
//	   C
func NewKeypad() *Keypad {
	layout := [][]string{
		{"7", "8", "9", "/"},
		{"4", "5", "6", "*"},
		{"1", "2", "3", "-"},
		{"0", ".", "+", EqualsLabel},
	}

	k := &Keypad{cols: 4}
	for row, labels := range layout {
		for col, label := range labels {
			k.buttons = append(k.buttons, Button{
				Label: label,
				Row:   row,
				Col:   col,
				Span:  1,
				Kind:  kindOf(label),
			})
		}
	}
	k.buttons = append(k.buttons, Button{
		Label: ClearLabel,
		Row:   len(layout),
		Col:   0,
		Span:  k.cols,
		Kind:  KindClear,
	})
	k.rows = len(layout) + 1
	return k
}

func kindOf(label string) ButtonKind {
	switch label {
	case EqualsLabel:
		return KindEquals
	case ClearLabel:
		return KindClear
	case "+", "-", "*", "/":
		return KindOperator
	default:
		return KindDigit
	}
}

func (k *Keypad) Rows() int { return k.rows }
func (k *Keypad) Cols() int { return k.cols }

// Buttons returns the buttons in row-major order.
func (k *Keypad) Buttons() []Button {
	out := make([]Button, len(k.buttons))
	copy(out, k.buttons)
	return out
}

// Row returns the buttons on row r, left to right.
func (k *Keypad) Row(r int) []Button {
	var out []Button
	for _, b := range k.buttons {
		if b.Row == r {
			out = append(out, b)
		}
	}
	return out
}

// At returns the button covering the cell (row, col).
func (k *Keypad) At(row, col int) (Button, bool) {
	for _, b := range k.buttons {
		if b.Row == row && col >= b.Col && col < b.Col+b.Span {
			return b, true
		}
	}
	return Button{}, false
}

// EqualFunc observes an evaluation: the expression that was submitted and
// the evaluator's error, if any.
type EqualFunc func(expr string, err error)

// Bindings maps every button label to the controller operation it
// triggers. Each handler is bound to its own label value. onEqual may be nil.
func (k *Keypad) Bindings(c *Controller, onEqual EqualFunc) map[string]func() {
	bindings := make(map[string]func(), len(k.buttons))
	for _, b := range k.buttons {
		switch b.Kind {
		case KindEquals:
			bindings[b.Label] = func() {
				expr := c.Buffer()
				err := c.Equal()
				if onEqual != nil {
					onEqual(expr, err)
				}
			}
		case KindClear:
			bindings[b.Label] = c.Clear
		default:
			bindings[b.Label] = pressHandler(c, b.Label)
		}
	}
	return bindings
}

func pressHandler(c *Controller, token string) func() {
	return func() { c.Press(token) }
}
