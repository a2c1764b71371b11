// Package clause implements Clause, a sign-carrying VarMap with
// disjunction semantics: a Clause is satisfied by an Assignment iff at
// least one of its variables is bound in the Assignment to the same
// value the Clause requires of it. This is the building block CNF
// producers (package cnf, package tseitin) emit and package dimacs
// reads and writes.
package clause

import (
	"github.com/proplog/proplog/assign"
	"github.com/proplog/proplog/domain"
)

// Literal names a variable and the value that would satisfy it.
type Literal struct {
	Var domain.Ref
	Val bool
}

// Clause is a disjunction of Literals, stored as a VarMap: each
// variable maps to the value that satisfies it.
type Clause struct {
	vm *assign.VarMap
}

// New returns a Clause over the given literals, in the order given.
// Repeating a variable keeps only its last value, matching VarMap.Set.
func New(lits ...Literal) *Clause {
	vm := assign.NewVarMap()
	for _, l := range lits {
		vm.Set(l.Var, l.Val)
	}
	return &Clause{vm: vm}
}

// FromVarMap wraps vm directly as a Clause. vm is taken by reference.
func FromVarMap(vm *assign.VarMap) *Clause {
	return &Clause{vm: vm}
}

// FromAssignment builds a Clause whose literals mirror a's bindings
// (or their negation, if negate is true), in a's variable order. The
// CNF producer uses negate=true to turn an unsatisfying Assignment
// into the clause that forbids it.
func FromAssignment(a *assign.Assignment, negate bool) *Clause {
	vm := assign.NewVarMap()
	for i := 0; i < a.Len(); i++ {
		ref, val := a.At(i)
		if negate {
			val = !val
		}
		vm.Set(ref, val)
	}
	return &Clause{vm: vm}
}

// Len returns the number of literals in c.
func (c *Clause) Len() int { return c.vm.Len() }

// Vars returns c's variables in literal order.
func (c *Clause) Vars() []domain.Ref { return c.vm.Vars() }

// Get returns the value that satisfies ref in c, and whether ref
// appears in c at all.
func (c *Clause) Get(ref domain.Ref) (bool, bool) { return c.vm.Get(ref) }

// Literals returns c's literals in order.
func (c *Clause) Literals() []Literal {
	out := make([]Literal, c.vm.Len())
	for i := range out {
		ref, val := c.vm.At(i)
		out[i] = Literal{Var: ref, Val: val}
	}
	return out
}

// Eval reports whether c is satisfied by a: true iff some variable
// present in c has, in a, the value c requires of it. The empty clause
// is never satisfied.
func (c *Clause) Eval(a *assign.Assignment) bool {
	for i := 0; i < c.vm.Len(); i++ {
		ref, want := c.vm.At(i)
		if got, ok := a.Get(ref); ok && got == want {
			return true
		}
	}
	return false
}

// Negate returns a new Clause with every literal's sign flipped,
// preserving variable order.
func (c *Clause) Negate() *Clause {
	vm := assign.NewVarMap()
	for i := 0; i < c.vm.Len(); i++ {
		ref, val := c.vm.At(i)
		vm.Set(ref, !val)
	}
	return &Clause{vm: vm}
}
