// Package cnf converts a Formula to Conjunctive Normal Form by the
// truth-table method: flatten the top-level And spine into a sequence
// of non-And subtrees, then for each subtree emit the clause
// forbidding every assignment that does not satisfy it. Concatenating
// those clauses across subtrees is a CNF equivalent to the original
// formula (not merely equisatisfiable — see package tseitin for the
// equisatisfiable, linear-size alternative).
package cnf

import (
	"github.com/proplog/proplog/clause"
	"github.com/proplog/proplog/expr"
	"github.com/proplog/proplog/formula"
	"github.com/proplog/proplog/stream"
	"github.com/proplog/proplog/truthtable"
)

// flatten pushes f's root into a queue and, while the queue's front is
// an And node, pops it and pushes its two operands onto the back of
// the queue. What remains is the sequence of maximal non-And subtrees
// whose conjunction is f, in breadth-first discovery order.
func flatten(f *formula.Formula) []*formula.Formula {
	queue := []expr.Cursor{f.Expr.Root()}
	var out []*formula.Formula
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c.Node().Kind == expr.And {
			ops := c.Operands()
			queue = append(queue, ops[0], ops[1])
			continue
		}
		out = append(out, formula.FromExpression(f.Dom, c.Materialize()))
	}
	return out
}

// producer walks the flattened subtrees in order and, within each,
// the subtree's truthtable in canonical order, surfacing the negated
// clause of every unsatisfying row it finds.
type producer struct {
	subtrees []*formula.Formula
	si       int
	tt       *stream.Stream[truthtable.Row]
	cur      *clause.Clause
	ok       bool
}

func newProducer(f *formula.Formula) *producer {
	p := &producer{subtrees: flatten(f)}
	p.advance()
	return p
}

func (p *producer) Valid() bool          { return p.ok }
func (p *producer) Value() *clause.Clause { return p.cur }
func (p *producer) Next() bool           { return p.advance() }

func (p *producer) advance() bool {
	for {
		if p.tt == nil {
			if p.si >= len(p.subtrees) {
				p.ok = false
				return false
			}
			p.tt = truthtable.Of(p.subtrees[p.si])
			p.si++
			if !p.tt.Valid() {
				p.tt = nil
				continue
			}
		} else if !p.tt.Next() {
			p.tt = nil
			continue
		}
		row := p.tt.Value()
		if !row.Value {
			p.cur = clause.FromAssignment(row.Assignment, true)
			p.ok = true
			return true
		}
	}
}

// Of returns the Stream of clauses forming a CNF of f, in subtree-
// discovery order and, within a subtree, truthtable enumeration
// order. A tautology (e.g. \T, or any And-spine of tautologies)
// yields zero clauses; an unsatisfiable subtree with no variables
// (\F) yields the empty clause.
func Of(f *formula.Formula) *stream.Stream[*clause.Clause] {
	return stream.New[*clause.Clause](newProducer(f))
}
