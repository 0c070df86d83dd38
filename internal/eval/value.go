package eval

import (
	"github.com/cockroachdb/apd/v3"
)

// Value is the result of an evaluation.
type Value struct {
	d apd.Decimal
}

// ValueOf returns the integer n as a Value.
func ValueOf(n int64) Value {
	var v Value
	v.d.SetInt64(n)
	return v
}

// Decimal returns a copy of the underlying decimal.
func (v Value) Decimal() *apd.Decimal {
	return new(apd.Decimal).Set(&v.d)
}

// String formats the value in plain positional notation with trailing
// zeros removed: "14", "3.5", "-0.25". Zero is always "0".
func (v Value) String() string {
	var d apd.Decimal
	d.Reduce(&v.d)
	if d.IsZero() {
		return "0"
	}
	return d.Text('f')
}
