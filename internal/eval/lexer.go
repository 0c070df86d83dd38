package eval

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokLParen
	tokRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number"
	case tokPlus:
		return "'+'"
	case tokMinus:
		return "'-'"
	case tokStar:
		return "'*'"
	case tokSlash:
		return "'/'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	default:
		return "unknown"
	}
}

type token struct {
	kind tokenKind
	text string
	pos  int
}

var operators = map[byte]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'(': tokLParen,
	')': tokRParen,
}

// lexer splits an expression into tokens. Only ASCII digits, '.', the four
// operators, parentheses and spaces are accepted.
type lexer struct {
	input string
	pos   int
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return token{kind: tokEOF, pos: l.pos}, nil
	}

	ch := l.input[l.pos]
	if kind, ok := operators[ch]; ok {
		tok := token{kind: kind, text: string(ch), pos: l.pos}
		l.pos++
		return tok, nil
	}
	if isDigit(ch) || ch == '.' {
		return l.number()
	}
	return token{}, syntaxErrorf(l.pos, "unexpected character %q", rune(ch))
}

func (l *lexer) number() (token, error) {
	start := l.pos
	digits := 0
	dots := 0
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		switch {
		case isDigit(ch):
			digits++
		case ch == '.':
			dots++
			if dots > 1 {
				return token{}, syntaxErrorf(l.pos, "malformed number %q", l.input[start:l.pos+1])
			}
		default:
			return l.finishNumber(start, digits)
		}
		l.pos++
	}
	return l.finishNumber(start, digits)
}

func (l *lexer) finishNumber(start, digits int) (token, error) {
	text := l.input[start:l.pos]
	if digits == 0 {
		return token{}, syntaxErrorf(start, "malformed number %q", text)
	}
	// ".5" and "5." are accepted; normalise so the decimal parser sees digits on both sides.
	if text[0] == '.' {
		text = "0" + text
	}
	if text[len(text)-1] == '.' {
		text += "0"
	}
	return token{kind: tokNumber, text: text, pos: start}, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
