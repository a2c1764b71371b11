package formula

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proplog/proplog/assign"
	"github.com/proplog/proplog/domain"
)

func TestUniqueSmallExactlyOneTrue(t *testing.T) {
	d := domain.New()
	f, err := Unique(d, "a", "b", "c")
	require.NoError(t, err)

	refs := make([]domain.Ref, 3)
	for i, n := range []string{"a", "b", "c"} {
		refs[i], _ = d.Resolve(n)
	}
	a := assign.FromVars(refs)
	for i := 0; i < 8; i++ {
		got, err := f.Eval(a)
		require.NoError(t, err)

		trues := 0
		for _, r := range refs {
			v, _ := a.Get(r)
			if v {
				trues++
			}
		}
		require.Equal(t, trues == 1, got, "assignment %v", a)
		a.Increment()
	}
}

func TestUniqueSingleVariableIsItself(t *testing.T) {
	d := domain.New()
	f, err := Unique(d, "a")
	require.NoError(t, err)
	require.Equal(t, "[a]", f.Infix())
}

func TestUniqueLargeFallsBackToGrid(t *testing.T) {
	d := domain.New()
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
	f, err := Unique(d, names...)
	require.NoError(t, err)

	// The grid encoding introduces fresh row/column variables beyond the
	// 9 named ones.
	require.Greater(t, d.Size(), len(names))
	require.Contains(t, f.Vars(), mustResolve(t, d, "a"))
}

func mustResolve(t *testing.T, d *domain.Domain, name string) domain.Ref {
	t.Helper()
	r, err := d.Resolve(name)
	require.NoError(t, err)
	return r
}
