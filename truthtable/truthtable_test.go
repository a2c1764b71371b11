package truthtable

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proplog/proplog/domain"
	"github.com/proplog/proplog/formula"
)

func TestEnumeratesAllRowsInOrder(t *testing.T) {
	d := domain.New()
	x, _ := formula.Var(d, "x")
	y, _ := formula.Var(d, "y")
	f, err := formula.And(x, y)
	require.NoError(t, err)

	rows := Of(f).Collect()
	require.Len(t, rows, 4)

	want := []bool{false, false, false, true}
	for i, row := range rows {
		require.Equal(t, want[i], row.Value, "row %d", i)
	}
}

func TestZeroVariableFormulaYieldsOneRow(t *testing.T) {
	d := domain.New()
	f := formula.Const(d, true)

	rows := Of(f).Collect()
	require.Len(t, rows, 1)
	require.True(t, rows[0].Value)
	require.Equal(t, 0, rows[0].Assignment.Len())
}

func TestRowCountIsTwoToTheNumberOfVars(t *testing.T) {
	d := domain.New()
	names := []string{"a", "b", "c"}
	vars := make([]*formula.Formula, len(names))
	for i, n := range names {
		vars[i], _ = formula.Var(d, n)
	}
	f := vars[0]
	var err error
	for i := 1; i < len(vars); i++ {
		f, err = formula.And(f, vars[i])
		require.NoError(t, err)
	}
	rows := Of(f).Collect()
	require.Len(t, rows, 8)
}
