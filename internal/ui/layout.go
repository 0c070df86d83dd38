package ui

import "gocalc/internal/calc"

// Screen geometry of the left column. The view renders exactly these sizes so
// mouse coordinates can be mapped back to buttons.
const (
	titleHeight   = 1
	displayHeight = 3 // one line of text inside a border
	cellWidth     = 7 // 5 columns of label plus the border
	cellHeight    = 3
	gridTop       = titleHeight + displayHeight
)

func gridWidth(k *calc.Keypad) int {
	return k.Cols() * cellWidth
}

// buttonAt maps a terminal cell to the keypad button drawn there.
func buttonAt(k *calc.Keypad, x, y int) (calc.Button, bool) {
	if x < 0 || y < gridTop || x >= gridWidth(k) {
		return calc.Button{}, false
	}
	row := (y - gridTop) / cellHeight
	col := x / cellWidth
	if row >= k.Rows() {
		return calc.Button{}, false
	}
	return k.At(row, col)
}
