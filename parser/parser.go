// Package parser turns ASCII infix formula text into an expr.Expression,
// resolving variable names against a *domain.Domain as it goes. Parsing
// follows the classic shunting-yard algorithm: an output stack of
// completed subexpressions and an operator stack, reduced under a
// two-state expect-a-term/expect-an-infix-operator discipline. All
// binary operators parse right-associative; unary Not binds tighter
// than every binary operator.
package parser

import (
	"github.com/proplog/proplog/domain"
	"github.com/proplog/proplog/expr"
)

type expectState int

const (
	expectTerm expectState = iota
	expectInfix
)

type opEntry struct {
	isParen bool
	kind    expr.Kind
	offset  int
}

type state struct {
	dom    *domain.Domain
	output []expr.Expression
	ops    []opEntry
	expect expectState
}

// Parse parses src as an infix propositional formula, resolving every
// variable it mentions against dom (autovivifying new ones, subject to
// dom's freeze state). On success it returns the single well-formed
// Expression described by src. On failure it returns a *Error naming
// the violated rule and the byte offset where it was detected.
func Parse(dom *domain.Domain, src string) (expr.Expression, error) {
	st := &state{dom: dom}
	lx := newLexer(src)
	for {
		tok, err := lx.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokEOF {
			return st.finish(tok.offset)
		}
		if err := st.feed(tok); err != nil {
			return nil, err
		}
	}
}

func (st *state) feed(tok token) error {
	switch tok.kind {
	case tokConst:
		if st.expect != expectTerm {
			return &Error{Message: "Unrecognized token", Offset: tok.offset}
		}
		st.output = append(st.output, expr.Expression{expr.ConstNode(tok.bval)})
		st.expect = expectInfix
		return nil
	case tokVar:
		if st.expect != expectTerm {
			return &Error{Message: "Unrecognized token", Offset: tok.offset}
		}
		ref, err := st.dom.Resolve(tok.name)
		if err != nil {
			return err
		}
		st.output = append(st.output, expr.Expression{expr.VarNode(st.dom.Pack(ref))})
		st.expect = expectInfix
		return nil
	case tokLParen:
		if st.expect != expectTerm {
			return &Error{Message: "Unrecognized token", Offset: tok.offset}
		}
		st.ops = append(st.ops, opEntry{isParen: true, offset: tok.offset})
		return nil
	case tokRParen:
		if st.expect == expectTerm {
			return &Error{Message: "Term expected when encountering closing parenthesis", Offset: tok.offset}
		}
		for {
			if len(st.ops) == 0 {
				return &Error{Message: "Missing opening parenthesis", Offset: tok.offset}
			}
			top := st.ops[len(st.ops)-1]
			st.ops = st.ops[:len(st.ops)-1]
			if top.isParen {
				break
			}
			if err := st.reduce(top.kind); err != nil {
				return err
			}
		}
		st.expect = expectInfix
		return nil
	case tokOp:
		return st.feedOp(tok)
	}
	return &Error{Message: "Unrecognized token", Offset: tok.offset}
}

func (st *state) feedOp(tok token) error {
	if tok.opKind == expr.Not {
		if st.expect != expectTerm {
			return &Error{Message: "Unrecognized token", Offset: tok.offset}
		}
		st.ops = append(st.ops, opEntry{kind: expr.Not, offset: tok.offset})
		return nil
	}
	// Binary operator: only legal while expecting an infix operator.
	if st.expect != expectInfix {
		return &Error{Message: "Unrecognized token", Offset: tok.offset}
	}
	for len(st.ops) > 0 {
		top := st.ops[len(st.ops)-1]
		if top.isParen || top.kind.Precedence() <= tok.opKind.Precedence() {
			break
		}
		st.ops = st.ops[:len(st.ops)-1]
		if err := st.reduce(top.kind); err != nil {
			return err
		}
	}
	st.ops = append(st.ops, opEntry{kind: tok.opKind, offset: tok.offset})
	st.expect = expectTerm
	return nil
}

func (st *state) reduce(k expr.Kind) error {
	switch k.Arity() {
	case 1:
		n := len(st.output)
		a := st.output[n-1]
		out := make(expr.Expression, 0, 1+len(a))
		out = append(out, expr.OpNode(k))
		out = append(out, a...)
		st.output[n-1] = out
	case 2:
		n := len(st.output)
		a, b := st.output[n-2], st.output[n-1]
		out := make(expr.Expression, 0, 1+len(a)+len(b))
		out = append(out, expr.OpNode(k))
		out = append(out, a...)
		out = append(out, b...)
		st.output = st.output[:n-2]
		st.output = append(st.output, out)
	}
	return nil
}

func (st *state) finish(eofOffset int) (expr.Expression, error) {
	if st.expect == expectTerm {
		return nil, &Error{Message: "Term expected but EOF reached", Offset: eofOffset}
	}
	for len(st.ops) > 0 {
		top := st.ops[len(st.ops)-1]
		st.ops = st.ops[:len(st.ops)-1]
		if top.isParen {
			return nil, &Error{Message: "Missing closing parenthesis", Offset: eofOffset}
		}
		if err := st.reduce(top.kind); err != nil {
			return nil, err
		}
	}
	switch len(st.output) {
	case 0:
		return nil, &Error{Message: "No operands left after reduction", Offset: eofOffset}
	case 1:
		return st.output[0], nil
	default:
		return nil, &Error{Message: "Excess operands after reduction", Offset: eofOffset}
	}
}
