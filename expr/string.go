package expr

import (
	"strings"

	"github.com/proplog/proplog/domain"
)

// VarResolver maps a Var node's VarNr payload back to its textual
// name. *domain.Domain satisfies this via its NameForVarNr method.
type VarResolver interface {
	NameForVarNr(nr domain.VarNr) string
}

// Prefix renders e as a space-joined preorder walk: constants as
// \T/\F, variables as their bracketed name, operators as their symbol.
func Prefix(e Expression, res VarResolver) string {
	var sb strings.Builder
	prefixRec(e.Root(), res, &sb)
	return sb.String()
}

func prefixRec(c Cursor, res VarResolver, sb *strings.Builder) {
	n := c.Node()
	if sb.Len() > 0 {
		sb.WriteByte(' ')
	}
	switch n.Kind {
	case Const:
		if n.Bool {
			sb.WriteString(`\T`)
		} else {
			sb.WriteString(`\F`)
		}
	case Var:
		sb.WriteByte('[')
		sb.WriteString(res.NameForVarNr(n.VarNr))
		sb.WriteByte(']')
	default:
		sb.WriteString(n.Kind.Symbol())
	}
	for _, op := range c.Operands() {
		prefixRec(op, res, sb)
	}
}

// Postfix renders e as a space-joined reverse-polish walk, built
// bottom-up via an explicit string stack: leaves push their rendering,
// a unary node pops one operand and appends " op", a binary node pops
// two and appends " op".
func Postfix(e Expression, res VarResolver) string {
	var stack []string
	postfixRec(e.Root(), res, &stack)
	if len(stack) != 1 {
		panic("expr: malformed expression in Postfix")
	}
	return stack[0]
}

func postfixRec(c Cursor, res VarResolver, stack *[]string) {
	n := c.Node()
	switch n.Kind {
	case Const:
		if n.Bool {
			*stack = append(*stack, `\T`)
		} else {
			*stack = append(*stack, `\F`)
		}
		return
	case Var:
		*stack = append(*stack, "["+res.NameForVarNr(n.VarNr)+"]")
		return
	}
	for _, op := range c.Operands() {
		postfixRec(op, res, stack)
	}
	switch n.Kind.Arity() {
	case 1:
		top := len(*stack) - 1
		(*stack)[top] = (*stack)[top] + " " + n.Kind.Symbol()
	case 2:
		top := len(*stack) - 1
		a, b := (*stack)[top-1], (*stack)[top]
		*stack = (*stack)[:top-1]
		*stack = append(*stack, a+" "+b+" "+n.Kind.Symbol())
	}
}

// Infix renders e built bottom-up, parenthesizing an operand whose
// precedence is strictly less than its parent operator's precedence.
func Infix(e Expression, res VarResolver) string {
	return infixRec(e.Root(), res)
}

func infixRec(c Cursor, res VarResolver) string {
	n := c.Node()
	switch n.Kind {
	case Const:
		if n.Bool {
			return `\T`
		}
		return `\F`
	case Var:
		return "[" + res.NameForVarNr(n.VarNr) + "]"
	}
	ops := c.Operands()
	parts := make([]string, len(ops))
	for i, op := range ops {
		s := infixRec(op, res)
		if op.Node().Kind.Precedence() < n.Kind.Precedence() {
			s = "(" + s + ")"
		}
		parts[i] = s
	}
	switch n.Kind.Arity() {
	case 1:
		return n.Kind.Symbol() + parts[0]
	case 2:
		return parts[0] + " " + n.Kind.Symbol() + " " + parts[1]
	}
	panic("expr: invalid arity in Infix")
}
