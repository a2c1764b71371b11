package formula

import "github.com/proplog/proplog/expr"

// Not returns the negation of f.
func Not(f *Formula) *Formula {
	out := make(expr.Expression, 0, 1+len(f.Expr))
	out = append(out, expr.OpNode(expr.Not))
	out = append(out, f.Expr...)
	return &Formula{Expr: out, Dom: f.Dom}
}

func combine(kind expr.Kind, op string, f, g *Formula) (*Formula, error) {
	if f.Dom != g.Dom {
		return nil, &DomainMismatchError{Op: op, LHS: f.Dom, RHS: g.Dom}
	}
	out := make(expr.Expression, 0, 1+len(f.Expr)+len(g.Expr))
	out = append(out, expr.OpNode(kind))
	out = append(out, f.Expr...)
	out = append(out, g.Expr...)
	return &Formula{Expr: out, Dom: f.Dom}, nil
}

// And returns the conjunction of f and g. It fails with
// DomainMismatchError if they were built against different Domains.
func And(f, g *Formula) (*Formula, error) { return combine(expr.And, "And", f, g) }

// Or returns the disjunction of f and g.
func Or(f, g *Formula) (*Formula, error) { return combine(expr.Or, "Or", f, g) }

// Impl returns the implication f -> g.
func Impl(f, g *Formula) (*Formula, error) { return combine(expr.Impl, "Impl", f, g) }

// Eqv returns the equivalence f <-> g.
func Eqv(f, g *Formula) (*Formula, error) { return combine(expr.Eqv, "Eqv", f, g) }

// Xor returns the exclusive-or of f and g.
func Xor(f, g *Formula) (*Formula, error) { return combine(expr.Xor, "Xor", f, g) }
