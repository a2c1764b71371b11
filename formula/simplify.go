package formula

import (
	"github.com/proplog/proplog/assign"
	"github.com/proplog/proplog/domain"
	"github.com/proplog/proplog/expr"
)

// Simplify returns a new Formula obtained from f by constant-folding
// under partial: every Var bound in partial is replaced by its Const
// value, and the usual Boolean identities (one case per connective in
// simplifyCursor) collapse the result wherever they apply. partial may be
// nil, in which case Simplify still canonicalizes negation chains and
// any constants already present in f. Simplify never fails: any
// variable not bound in partial is left as-is.
func Simplify(f *Formula, partial *assign.Assignment) *Formula {
	return &Formula{Expr: simplifyCursor(f.Expr.Root(), f.Dom, partial), Dom: f.Dom}
}

func isConst(e expr.Expression) bool { return e[0].Kind == expr.Const }

func constExpr(b bool) expr.Expression { return expr.Expression{expr.ConstNode(b)} }

func prepend(op expr.Node, parts ...expr.Expression) expr.Expression {
	total := 1
	for _, p := range parts {
		total += len(p)
	}
	out := make(expr.Expression, 0, total)
	out = append(out, op)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// notOf applies the Not reduction table to an already-simplified
// operand: Not Const -> Const; Not Not x -> x (this is what
// canonicalizes arbitrarily long Not chains to parity 0 or 1, since
// every level of recursion collapses one adjacent pair); otherwise
// wraps a fresh Not node.
func notOf(a expr.Expression) expr.Expression {
	if isConst(a) {
		return constExpr(!a[0].Bool)
	}
	if a[0].Kind == expr.Not {
		return a[1:]
	}
	return prepend(expr.OpNode(expr.Not), a)
}

func simplifyCursor(c expr.Cursor, dom *domain.Domain, partial *assign.Assignment) expr.Expression {
	n := c.Node()
	switch n.Kind {
	case expr.Const:
		return expr.Expression{n}
	case expr.Var:
		if partial != nil {
			ref, _ := dom.Lookup(n.VarNr)
			if val, ok := partial.Get(ref); ok {
				return constExpr(val)
			}
		}
		return expr.Expression{n}
	case expr.Not:
		ops := c.Operands()
		return notOf(simplifyCursor(ops[0], dom, partial))
	}

	ops := c.Operands()
	a := simplifyCursor(ops[0], dom, partial)
	b := simplifyCursor(ops[1], dom, partial)

	switch n.Kind {
	case expr.And:
		if isConst(a) {
			if a[0].Bool {
				return b
			}
			return constExpr(false)
		}
		if isConst(b) {
			if b[0].Bool {
				return a
			}
			return constExpr(false)
		}
		return prepend(expr.OpNode(expr.And), a, b)
	case expr.Or:
		if isConst(a) {
			if a[0].Bool {
				return constExpr(true)
			}
			return b
		}
		if isConst(b) {
			if b[0].Bool {
				return constExpr(true)
			}
			return a
		}
		return prepend(expr.OpNode(expr.Or), a, b)
	case expr.Impl:
		if isConst(a) {
			if a[0].Bool {
				return b
			}
			return constExpr(true)
		}
		if isConst(b) {
			if b[0].Bool {
				return constExpr(true)
			}
			return notOf(a)
		}
		return prepend(expr.OpNode(expr.Impl), a, b)
	case expr.Eqv:
		if isConst(a) {
			if a[0].Bool {
				return b
			}
			return notOf(b)
		}
		if isConst(b) {
			if b[0].Bool {
				return a
			}
			return notOf(a)
		}
		return prepend(expr.OpNode(expr.Eqv), a, b)
	case expr.Xor:
		if isConst(a) {
			if a[0].Bool {
				return notOf(b)
			}
			return b
		}
		if isConst(b) {
			if b[0].Bool {
				return notOf(a)
			}
			return a
		}
		return prepend(expr.OpNode(expr.Xor), a, b)
	default:
		panic("formula: invalid kind in Simplify")
	}
}
