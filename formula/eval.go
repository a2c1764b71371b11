package formula

import (
	"github.com/proplog/proplog/assign"
	"github.com/proplog/proplog/domain"
	"github.com/proplog/proplog/expr"
)

type task struct {
	combine bool
	kind    expr.Kind
	cursor  expr.Cursor
}

// Eval evaluates f under assignment using the strict, array-walking
// algorithm: an iterative postorder traversal of the node array
// driven by a Bool stack. Every variable the walk visits must be
// bound in assignment, or Eval fails with UndefinedVariableError —
// there is no short-circuiting here, unlike EvalShortCircuit.
func (f *Formula) Eval(assignment *assign.Assignment) (bool, error) {
	var tasks []task
	var vals []bool
	tasks = append(tasks, task{cursor: f.Expr.Root()})
	for len(tasks) > 0 {
		t := tasks[len(tasks)-1]
		tasks = tasks[:len(tasks)-1]
		if t.combine {
			switch t.kind.Arity() {
			case 1:
				b := vals[len(vals)-1]
				vals = vals[:len(vals)-1]
				vals = append(vals, !b)
			case 2:
				b := vals[len(vals)-1]
				a := vals[len(vals)-2]
				vals = vals[:len(vals)-2]
				vals = append(vals, applyBinary(t.kind, a, b))
			}
			continue
		}
		n := t.cursor.Node()
		switch n.Kind {
		case expr.Const:
			vals = append(vals, n.Bool)
		case expr.Var:
			ref, _ := f.Dom.Lookup(n.VarNr)
			v, ok := assignment.Get(ref)
			if !ok {
				return false, &UndefinedVariableError{Name: f.Dom.NameForVarNr(n.VarNr)}
			}
			vals = append(vals, v)
		default:
			ops := t.cursor.Operands()
			tasks = append(tasks, task{combine: true, kind: n.Kind})
			for i := len(ops) - 1; i >= 0; i-- {
				tasks = append(tasks, task{cursor: ops[i]})
			}
		}
	}
	return vals[0], nil
}

func applyBinary(k expr.Kind, a, b bool) bool {
	switch k {
	case expr.And:
		return a && b
	case expr.Or:
		return a || b
	case expr.Impl:
		return !a || b
	case expr.Eqv:
		return a == b
	case expr.Xor:
		return a != b
	default:
		panic("formula: invalid binary kind in Eval")
	}
}

// EvalShortCircuit evaluates f recursively, short-circuiting And, Or,
// and Impl the way Go's && || do: the right operand of a short-
// circuited connective is never visited, so it may reference a
// variable assignment has no binding for and still succeed. Eqv and
// Xor cannot short-circuit (both operands determine the result) but
// still recurse so that a nested And/Or/Impl within them can.
func (f *Formula) EvalShortCircuit(assignment *assign.Assignment) (bool, error) {
	return evalShort(f.Expr.Root(), f.Dom, assignment)
}

func evalShort(c expr.Cursor, dom *domain.Domain, assignment *assign.Assignment) (bool, error) {
	n := c.Node()
	switch n.Kind {
	case expr.Const:
		return n.Bool, nil
	case expr.Var:
		ref, _ := dom.Lookup(n.VarNr)
		v, ok := assignment.Get(ref)
		if !ok {
			return false, &UndefinedVariableError{Name: dom.NameForVarNr(n.VarNr)}
		}
		return v, nil
	}
	ops := c.Operands()
	switch n.Kind {
	case expr.Not:
		v, err := evalShort(ops[0], dom, assignment)
		return !v, err
	case expr.And:
		v0, err := evalShort(ops[0], dom, assignment)
		if err != nil || !v0 {
			return false, err
		}
		return evalShort(ops[1], dom, assignment)
	case expr.Or:
		v0, err := evalShort(ops[0], dom, assignment)
		if err != nil || v0 {
			return v0, err
		}
		return evalShort(ops[1], dom, assignment)
	case expr.Impl:
		v0, err := evalShort(ops[0], dom, assignment)
		if err != nil {
			return false, err
		}
		if !v0 {
			return true, nil
		}
		return evalShort(ops[1], dom, assignment)
	case expr.Eqv:
		v0, err := evalShort(ops[0], dom, assignment)
		if err != nil {
			return false, err
		}
		v1, err := evalShort(ops[1], dom, assignment)
		if err != nil {
			return false, err
		}
		return v0 == v1, nil
	case expr.Xor:
		v0, err := evalShort(ops[0], dom, assignment)
		if err != nil {
			return false, err
		}
		v1, err := evalShort(ops[1], dom, assignment)
		if err != nil {
			return false, err
		}
		return v0 != v1, nil
	default:
		panic("formula: invalid kind in EvalShortCircuit")
	}
}
