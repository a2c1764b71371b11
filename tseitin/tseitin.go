// Package tseitin implements the Tseitin transform: a structural CNF
// that introduces one fresh Boolean variable per distinct subformula
// (subtrees equal under structural equality share a variable) and is
// equisatisfiable with, and linear in the size of, the source
// formula. Unlike package cnf's truth-table method, clause count here
// grows with the formula's size rather than its largest subtree's
// truth table.
package tseitin

import (
	"encoding/binary"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/proplog/proplog/assign"
	"github.com/proplog/proplog/clause"
	"github.com/proplog/proplog/domain"
	"github.com/proplog/proplog/expr"
	"github.com/proplog/proplog/formula"
	"github.com/proplog/proplog/stream"
)

// Option configures a Build call. The zero value of every option is
// inert, off by default.
type Option func(*buildConfig)

type buildConfig struct {
	log *zap.Logger
}

// WithLogger makes Build emit one Debug line per freshly discovered
// subformula and a final Info line with the entry/clause counts. A nil
// logger (the default) disables tracing entirely; core callers that
// never pass this option pay nothing.
func WithLogger(log *zap.Logger) Option {
	return func(c *buildConfig) { c.log = log }
}

// subEntry records one distinct subformula discovered during the
// transform: its materialized Expression (in the source Domain's
// VarNr space), its Kind, its fresh variable in the auxiliary Domain,
// and the structural keys of its direct operands (looked up in byKey
// once every entry has been discovered).
type subEntry struct {
	expr        expr.Expression
	kind        expr.Kind
	auxRef      domain.Ref
	operandKeys []string
}

// Transform is the result of applying the Tseitin construction to one
// Formula: an auxiliary Domain holding one variable per distinct
// subformula, and the CNF clauses relating each to its operands.
type Transform struct {
	Source *domain.Domain
	Aux    *domain.Domain
	Root   domain.Ref

	entries []*subEntry
	byKey   map[string]*subEntry
	clauses []*clause.Clause
}

// key returns a structural-equality key for e: two subtrees with the
// same sequence of (Kind, Bool, VarNr) are the same subformula, and
// must share one fresh variable, regardless of where in the array
// they're materialized from. Keying by this instead of by pointer
// identity is deliberate: every Materialize call returns a fresh copy,
// so equal subtrees never share an address.
func key(e expr.Expression) string {
	var sb strings.Builder
	var buf [8]byte
	for _, n := range e {
		sb.WriteByte(byte(n.Kind))
		if n.Bool {
			sb.WriteByte(1)
		} else {
			sb.WriteByte(0)
		}
		binary.BigEndian.PutUint64(buf[:], uint64(n.VarNr))
		sb.Write(buf[:])
	}
	return sb.String()
}

// Build runs the Tseitin transform over f: a breadth-first discovery
// of every distinct subtree, a fresh Aux variable per distinct one
// (named "Tseitin[<source infix of the subtree>]"), the per-connective
// clause templates relating each subtree's variable to its operands',
// and a leading unit clause forcing the root variable true.
func Build(f *formula.Formula, opts ...Option) *Transform {
	cfg := &buildConfig{}
	for _, o := range opts {
		o(cfg)
	}
	t := &Transform{
		Source: f.Dom,
		Aux:    domain.New(),
		byKey:  make(map[string]*subEntry),
	}
	queue := []expr.Cursor{f.Expr.Root()}
	first := true
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		e := c.Materialize()
		k := key(e)
		entry, seen := t.byKey[k]
		if !seen {
			name := fmt.Sprintf("Tseitin[%s]", expr.Infix(e, f.Dom))
			ref, _ := t.Aux.Resolve(name)
			entry = &subEntry{expr: e, kind: c.Node().Kind, auxRef: ref}
			ops := c.Operands()
			entry.operandKeys = make([]string, len(ops))
			for i, op := range ops {
				opExpr := op.Materialize()
				entry.operandKeys[i] = key(opExpr)
				queue = append(queue, op)
			}
			t.byKey[k] = entry
			t.entries = append(t.entries, entry)
			if cfg.log != nil {
				cfg.log.Debug("tseitin: discovered subformula", zap.String("name", name), zap.String("kind", c.Node().Kind.String()))
			}
		}
		if first {
			t.Root = entry.auxRef
			first = false
		}
	}
	t.buildClauses()
	if cfg.log != nil {
		cfg.log.Info("tseitin: build complete", zap.Int("entries", len(t.entries)), zap.Int("clauses", len(t.clauses)))
	}
	return t
}

func lit(ref domain.Ref, val bool) clause.Literal { return clause.Literal{Var: ref, Val: val} }

func (t *Transform) refOf(k string) domain.Ref { return t.byKey[k].auxRef }

func (t *Transform) buildClauses() {
	t.clauses = append(t.clauses, clause.New(lit(t.Root, true)))
	for _, e := range t.entries {
		c := e.auxRef
		switch e.kind {
		case expr.Const:
			t.clauses = append(t.clauses, clause.New(lit(c, e.expr[0].Bool)))
		case expr.Var:
			// No clause: the fresh variable is only ever related back
			// to the source variable through Lift and Project.
		case expr.Not:
			a := t.refOf(e.operandKeys[0])
			t.clauses = append(t.clauses,
				clause.New(lit(a, false), lit(c, false)),
				clause.New(lit(a, true), lit(c, true)),
			)
		case expr.And:
			a, b := t.refOf(e.operandKeys[0]), t.refOf(e.operandKeys[1])
			t.clauses = append(t.clauses,
				clause.New(lit(a, false), lit(b, false), lit(c, true)),
				clause.New(lit(a, true), lit(c, false)),
				clause.New(lit(b, true), lit(c, false)),
			)
		case expr.Or:
			a, b := t.refOf(e.operandKeys[0]), t.refOf(e.operandKeys[1])
			t.clauses = append(t.clauses,
				clause.New(lit(a, true), lit(b, true), lit(c, false)),
				clause.New(lit(a, false), lit(c, true)),
				clause.New(lit(b, false), lit(c, true)),
			)
		case expr.Impl:
			a, b := t.refOf(e.operandKeys[0]), t.refOf(e.operandKeys[1])
			if a != b {
				t.clauses = append(t.clauses, clause.New(lit(a, false), lit(b, true), lit(c, false)))
			}
			t.clauses = append(t.clauses,
				clause.New(lit(a, true), lit(c, true)),
				clause.New(lit(b, false), lit(c, true)),
			)
		case expr.Eqv:
			a, b := t.refOf(e.operandKeys[0]), t.refOf(e.operandKeys[1])
			t.clauses = append(t.clauses,
				clause.New(lit(a, false), lit(b, false), lit(c, true)),
				clause.New(lit(a, true), lit(b, true), lit(c, true)),
			)
			if a != b {
				t.clauses = append(t.clauses,
					clause.New(lit(a, true), lit(b, false), lit(c, false)),
					clause.New(lit(a, false), lit(b, true), lit(c, false)),
				)
			}
		case expr.Xor:
			a, b := t.refOf(e.operandKeys[0]), t.refOf(e.operandKeys[1])
			t.clauses = append(t.clauses,
				clause.New(lit(a, false), lit(b, false), lit(c, false)),
				clause.New(lit(a, true), lit(b, true), lit(c, false)),
			)
			if a != b {
				t.clauses = append(t.clauses,
					clause.New(lit(a, true), lit(b, false), lit(c, true)),
					clause.New(lit(a, false), lit(b, true), lit(c, true)),
				)
			}
		}
	}
}

// Clauses returns the Tseitin CNF as a Stream, unit clause first, then
// every subtree's clauses in discovery order.
func (t *Transform) Clauses() *stream.Stream[*clause.Clause] {
	return stream.FromSlice(t.clauses)
}

// Lift evaluates every distinct subtree discovered during Build
// against a (an Assignment over vars(f)) and returns the
// corresponding Assignment over Aux: the fresh variable for each
// subtree is bound to that subtree's value under a.
func (t *Transform) Lift(a *assign.Assignment) (*assign.Assignment, error) {
	refs := make([]domain.Ref, len(t.entries))
	for i, e := range t.entries {
		refs[i] = e.auxRef
	}
	out := assign.FromVars(refs)
	for _, e := range t.entries {
		sub := formula.FromExpression(t.Source, e.expr)
		v, err := sub.Eval(a)
		if err != nil {
			return nil, err
		}
		out.Set(e.auxRef, v)
	}
	return out, nil
}

// Project extracts an Assignment over the source Domain's variables
// from an Assignment over Aux, by copying, for every subtree that is
// itself a bare Var, its fresh variable's value back onto the
// variable it names.
func (t *Transform) Project(a *assign.Assignment) *assign.Assignment {
	var refs []domain.Ref
	for _, e := range t.entries {
		if e.kind == expr.Var {
			ref, _ := t.Source.Lookup(e.expr[0].VarNr)
			refs = append(refs, ref)
		}
	}
	out := assign.FromVars(refs)
	for _, e := range t.entries {
		if e.kind != expr.Var {
			continue
		}
		ref, _ := t.Source.Lookup(e.expr[0].VarNr)
		v, _ := a.Get(e.auxRef)
		out.Set(ref, v)
	}
	return out
}
