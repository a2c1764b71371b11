// Package formula binds an expr.Expression to the *domain.Domain its
// variables live in, and implements the operations defined over that
// pair: algebraic composition by the six connectives, strict and
// short-circuit evaluation, constant-folding simplification under a
// partial assignment, and the three stringification formats.
package formula

import (
	"fmt"

	"github.com/proplog/proplog/domain"
	"github.com/proplog/proplog/expr"
)

// Formula pairs an expr.Expression with the Domain its Var nodes were
// resolved against. Connectives refuse to combine Formulas whose
// Domains differ.
type Formula struct {
	Expr expr.Expression
	Dom  *domain.Domain
}

// DomainMismatchError is returned by the binary connectives when their
// operands were built against different Domains.
type DomainMismatchError struct {
	Op  string
	LHS *domain.Domain
	RHS *domain.Domain
}

func (e *DomainMismatchError) Error() string {
	return fmt.Sprintf("formula: %s: operands belong to different domains (%v vs %v)", e.Op, e.LHS, e.RHS)
}

// UndefinedVariableError is returned by Eval when it visits a variable
// the given Assignment has no binding for.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("formula: variable %q is not bound in the assignment", e.Name)
}

// Const returns the constant Formula b, bound to dom (constants carry
// no variables, but every Formula still names the Domain it would
// combine within).
func Const(dom *domain.Domain, b bool) *Formula {
	return &Formula{Expr: expr.Expression{expr.ConstNode(b)}, Dom: dom}
}

// Var returns the Formula consisting of a single variable reference,
// resolving name against dom.
func Var(dom *domain.Domain, name string) (*Formula, error) {
	ref, err := dom.Resolve(name)
	if err != nil {
		return nil, err
	}
	return &Formula{Expr: expr.Expression{expr.VarNode(dom.Pack(ref))}, Dom: dom}, nil
}

// FromExpression wraps an already-built Expression as a Formula bound
// to dom. Callers are responsible for e being well-formed and every
// Var node's VarNr resolving within dom.
func FromExpression(dom *domain.Domain, e expr.Expression) *Formula {
	return &Formula{Expr: e, Dom: dom}
}

// Vars returns f's distinct variable references, ordered by VarNr.
func (f *Formula) Vars() []domain.Ref {
	nrs := f.Expr.Vars()
	out := make([]domain.Ref, len(nrs))
	for i, nr := range nrs {
		ref, _ := f.Dom.Lookup(nr)
		out[i] = ref
	}
	return out
}

// Prefix renders f in polish (operator-first) notation.
func (f *Formula) Prefix() string { return expr.Prefix(f.Expr, f.Dom) }

// Postfix renders f in reverse-polish (operator-last) notation.
func (f *Formula) Postfix() string { return expr.Postfix(f.Expr, f.Dom) }

// Infix renders f with infix operators, parenthesizing lower-precedence
// operands.
func (f *Formula) Infix() string { return expr.Infix(f.Expr, f.Dom) }

func (f *Formula) String() string { return f.Infix() }
