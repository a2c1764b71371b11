package parser

import "github.com/proplog/proplog/expr"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokConst
	tokVar
	tokLParen
	tokRParen
	tokOp
)

type token struct {
	kind   tokenKind
	offset int
	bval   bool
	name   string
	opKind expr.Kind
}

type lexer struct {
	src string
	pos int
}

func newLexer(src string) *lexer { return &lexer{src: src} }

func isAlnum(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isIdentByte(b byte) bool {
	return isAlnum(b) || b == '_'
}

// next returns the token at the current position and advances past it,
// or a *Error if the bytes there do not form any recognized token.
func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && (l.src[l.pos] == ' ' || l.src[l.pos] == '\t') {
		l.pos++
	}
	start := l.pos
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, offset: start}, nil
	}
	c := l.src[l.pos]
	switch {
	case c == '(':
		l.pos++
		return token{kind: tokLParen, offset: start}, nil
	case c == ')':
		l.pos++
		return token{kind: tokRParen, offset: start}, nil
	case c == '~':
		l.pos++
		return token{kind: tokOp, offset: start, opKind: expr.Not}, nil
	case c == '&':
		l.pos++
		return token{kind: tokOp, offset: start, opKind: expr.And}, nil
	case c == '|':
		l.pos++
		return token{kind: tokOp, offset: start, opKind: expr.Or}, nil
	case c == '^':
		l.pos++
		return token{kind: tokOp, offset: start, opKind: expr.Xor}, nil
	case c == '>':
		l.pos++
		return token{kind: tokOp, offset: start, opKind: expr.Impl}, nil
	case c == '=':
		l.pos++
		return token{kind: tokOp, offset: start, opKind: expr.Eqv}, nil
	case c == '-':
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '>' {
			l.pos += 2
			return token{kind: tokOp, offset: start, opKind: expr.Impl}, nil
		}
		return token{}, &Error{Message: "Unrecognized token", Offset: start}
	case c == '<':
		if l.pos+2 < len(l.src) && l.src[l.pos+1] == '-' && l.src[l.pos+2] == '>' {
			l.pos += 3
			return token{kind: tokOp, offset: start, opKind: expr.Eqv}, nil
		}
		return token{}, &Error{Message: "Unrecognized token", Offset: start}
	case c == '\\':
		if l.pos+1 < len(l.src) && (l.src[l.pos+1] == 'T' || l.src[l.pos+1] == 'F') {
			v := l.src[l.pos+1] == 'T'
			l.pos += 2
			return token{kind: tokConst, offset: start, bval: v}, nil
		}
		return token{}, &Error{Message: "Unrecognized token", Offset: start}
	case c == '[':
		l.pos++
		nameStart := l.pos
		for l.pos < len(l.src) && l.src[l.pos] != ']' {
			l.pos++
		}
		if l.pos >= len(l.src) {
			return token{}, &Error{Message: "Unterminated bracketed variable name", Offset: start}
		}
		name := l.src[nameStart:l.pos]
		l.pos++
		return token{kind: tokVar, offset: start, name: name}, nil
	case isAlnum(c):
		for l.pos < len(l.src) && isIdentByte(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tokVar, offset: start, name: l.src[start:l.pos]}, nil
	default:
		return token{}, &Error{Message: "Unrecognized token", Offset: start}
	}
}
