// Package eval evaluates arithmetic expressions made of decimal numbers,
// the four basic operators, unary sign and parentheses. Any other input is
// rejected with an error; nothing is ever executed.
package eval

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// DefaultPrecision is the number of significant digits kept by results (decimal128).
const DefaultPrecision = 34

// MaxPrecision bounds the digits a non-terminating division may produce.
const MaxPrecision = 1000

// Evaluator parses and evaluates expressions in a single pass.
type Evaluator struct {
	ctx *apd.Context
}

// New returns an Evaluator rounding results to precision significant
// digits. A zero precision selects DefaultPrecision; values above
// MaxPrecision are capped.
func New(precision uint32) *Evaluator {
	if precision == 0 {
		precision = DefaultPrecision
	}
	if precision > MaxPrecision {
		precision = MaxPrecision
	}
	return &Evaluator{ctx: apd.BaseContext.WithPrecision(precision)}
}

// Evaluate returns the value of expr. Every error matches ErrInvalid.
func (e *Evaluator) Evaluate(expr string) (Value, error) {
	p := &parser{ctx: e.ctx, lex: lexer{input: expr}}
	if err := p.advance(); err != nil {
		return Value{}, err
	}
	if p.tok.kind == tokEOF {
		return Value{}, syntaxErrorf(0, "empty expression")
	}

	d, err := p.expr()
	if err != nil {
		return Value{}, err
	}
	if p.tok.kind != tokEOF {
		return Value{}, syntaxErrorf(p.tok.pos, "unexpected %s", p.tok.kind)
	}

	var v Value
	v.d.Set(d)
	return v, nil
}

type parser struct {
	ctx *apd.Context
	lex lexer
	tok token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// expr = term { ("+" | "-") term }
func (p *parser) expr() (*apd.Decimal, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokPlus || p.tok.kind == tokMinus {
		op := p.tok.kind
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		if op == tokPlus {
			_, err = p.ctx.Add(left, left, right)
		} else {
			_, err = p.ctx.Sub(left, left, right)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrArithmetic, err)
		}
	}
	return left, nil
}

// term = unary { ("*" | "/") unary }
func (p *parser) term() (*apd.Decimal, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokStar || p.tok.kind == tokSlash {
		op := p.tok.kind
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		if op == tokStar {
			if _, err := p.ctx.Mul(left, left, right); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrArithmetic, err)
			}
			continue
		}
		if right.IsZero() {
			return nil, ErrDivisionByZero
		}
		if _, err := p.ctx.Quo(left, left, right); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrArithmetic, err)
		}
	}
	return left, nil
}

// unary = ("+" | "-") unary | primary
func (p *parser) unary() (*apd.Decimal, error) {
	switch p.tok.kind {
	case tokPlus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.unary()
	case tokMinus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		d, err := p.unary()
		if err != nil {
			return nil, err
		}
		d.Neg(d)
		return d, nil
	}
	return p.primary()
}

// primary = number | "(" expr ")"
func (p *parser) primary() (*apd.Decimal, error) {
	switch p.tok.kind {
	case tokNumber:
		d, _, err := apd.NewFromString(p.tok.text)
		if err != nil {
			return nil, syntaxErrorf(p.tok.pos, "malformed number %q", p.tok.text)
		}
		if _, err := p.ctx.Round(d, d); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrArithmetic, err)
		}
		return d, p.advance()

	case tokLParen:
		open := p.tok.pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.kind == tokRParen {
			return nil, syntaxErrorf(p.tok.pos, "empty parentheses")
		}
		d, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, syntaxErrorf(p.tok.pos, "missing ')' for '(' at %d", open)
		}
		return d, p.advance()

	case tokEOF:
		return nil, syntaxErrorf(p.tok.pos, "unexpected end of input")
	default:
		return nil, syntaxErrorf(p.tok.pos, "unexpected %s", p.tok.kind)
	}
}
