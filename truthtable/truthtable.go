// Package truthtable enumerates every assignment over a formula's
// variables and the formula's value under each one, as a lazy
// stream.Stream so callers can stop early without paying for rows
// they never look at.
package truthtable

import (
	"github.com/proplog/proplog/assign"
	"github.com/proplog/proplog/formula"
	"github.com/proplog/proplog/stream"
)

// Row is one step of the enumeration: an assignment over f's
// variables and f's value under it.
type Row struct {
	Assignment *assign.Assignment
	Value      bool
}

// producer drives Assignment.Increment to walk every assignment over
// vars(f) in VarNr order, evaluating f at each step. It stops the
// instant the counter overflows back to all-false.
type producer struct {
	f     *formula.Formula
	a     *assign.Assignment
	done  bool
	first bool
}

func newProducer(f *formula.Formula) *producer {
	refs := f.Vars()
	return &producer{f: f, a: assign.FromVars(refs), first: true}
}

func (p *producer) Valid() bool { return !p.done }

func (p *producer) Next() bool {
	p.a.Increment()
	if p.a.Overflow() {
		p.done = true
		return false
	}
	return true
}

func (p *producer) Value() Row {
	v, err := p.f.Eval(p.a)
	if err != nil {
		panic(err)
	}
	return Row{Assignment: p.a.Clone(), Value: v}
}

// Of returns the Stream of (assignment, value) rows for f, in
// canonical VarNr-ascending order. A formula with no variables yields
// exactly one row, the empty assignment; a formula with k variables
// yields 2^k rows.
func Of(f *formula.Formula) *stream.Stream[Row] {
	return stream.New[Row](newProducer(f))
}
