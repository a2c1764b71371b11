package cnf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proplog/proplog/assign"
	"github.com/proplog/proplog/domain"
	"github.com/proplog/proplog/formula"
)

func TestCNFAgreesWithEvalOnEveryAssignment(t *testing.T) {
	d := domain.New()
	x, _ := formula.Var(d, "x")
	y, _ := formula.Var(d, "y")
	z, _ := formula.Var(d, "z")
	xy, err := formula.Impl(x, y)
	require.NoError(t, err)
	f, err := formula.Or(xy, z)
	require.NoError(t, err)

	clauses := Of(f).Collect()
	refs := []domain.Ref{}
	for _, r := range f.Vars() {
		refs = append(refs, r)
	}
	a := assign.FromVars(refs)
	for i := 0; i < 8; i++ {
		want, err := f.Eval(a)
		require.NoError(t, err)

		got := true
		for _, c := range clauses {
			got = got && c.Eval(a)
		}
		require.Equal(t, want, got, "assignment %v", a)
		a.Increment()
	}
}

func TestTautologyYieldsNoClauses(t *testing.T) {
	d := domain.New()
	f := formula.Const(d, true)
	require.Empty(t, Of(f).Collect())
}

func TestContradictionYieldsEmptyClause(t *testing.T) {
	d := domain.New()
	f := formula.Const(d, false)
	clauses := Of(f).Collect()
	require.Len(t, clauses, 1)
	require.Equal(t, 0, clauses[0].Len())
}

func TestAndSpineFlattensIntoMultipleSubtrees(t *testing.T) {
	d := domain.New()
	x, _ := formula.Var(d, "x")
	y, _ := formula.Var(d, "y")
	z, _ := formula.Var(d, "z")
	xy, err := formula.And(x, y)
	require.NoError(t, err)
	f, err := formula.And(xy, z)
	require.NoError(t, err)

	require.Len(t, flatten(f), 3)
}
