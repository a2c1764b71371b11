// Package expr implements the polish-notation array representation of a
// propositional formula's abstract syntax tree: a single preorder slice
// of Node, with a cursor type that walks subtrees using a running
// balance counter rather than pointers or recursion. It has no notion
// of a variable Domain beyond the bare VarNr carried in Var nodes;
// packages built on top (formula, parser, cnf, tseitin) pair an
// Expression with a *domain.Domain.
package expr

import (
	"fmt"
	"sort"

	"github.com/proplog/proplog/domain"
)

// Node is one entry of an Expression's preorder array. Exactly one of
// Bool (for Const) or VarNr (for Var) is meaningful; operator nodes use
// neither field.
type Node struct {
	Kind  Kind
	Bool  bool
	VarNr domain.VarNr
}

// ConstNode returns a leaf Node holding the constant b.
func ConstNode(b bool) Node { return Node{Kind: Const, Bool: b} }

// VarNode returns a leaf Node referencing variable nr.
func VarNode(nr domain.VarNr) Node { return Node{Kind: Var, VarNr: nr} }

// OpNode returns an operator Node of the given Kind (which must have
// arity 1 or 2).
func OpNode(k Kind) Node { return Node{Kind: k} }

// Expression is a well-formed formula AST stored as a single preorder
// (polish-notation) array. The invariant maintained by every
// constructor in this package and in package formula is that the sum
// of (arity-1) over the array equals -1, i.e. the array describes
// exactly one tree rooted at index 0.
type Expression []Node

// Len returns the number of nodes in e.
func (e Expression) Len() int { return len(e) }

// Root returns a Cursor over the whole expression.
func (e Expression) Root() Cursor {
	return newCursor(e, 0)
}

// Clone returns an independent copy of e.
func (e Expression) Clone() Expression {
	out := make(Expression, len(e))
	copy(out, e)
	return out
}

// Vars returns the distinct VarNr referenced anywhere in e, ascending.
func (e Expression) Vars() []domain.VarNr {
	seen := make(map[domain.VarNr]bool)
	var out []domain.VarNr
	for _, n := range e {
		if n.Kind == Var && !seen[n.VarNr] {
			seen[n.VarNr] = true
			out = append(out, n.VarNr)
		}
	}
	// Insertion order above is document order, not numeric order; sort
	// for the canonical VarNr-ascending order the rest of the package
	// relies on (truthtable/CNF enumeration order, see their docs).
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (n Node) validate() {
	if n.Kind.Arity() < 0 || n.Kind.Arity() > 2 {
		panic(fmt.Sprintf("expr: invalid node kind %v", n.Kind))
	}
}
