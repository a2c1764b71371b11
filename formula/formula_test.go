package formula

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proplog/proplog/domain"
)

func TestVarResolvesAgainstDomain(t *testing.T) {
	d := domain.New()
	f, err := Var(d, "x")
	require.NoError(t, err)
	require.Equal(t, 1, d.Size())
	require.Equal(t, "[x]", f.Prefix())
}

func TestVarsOrderedByVarNr(t *testing.T) {
	d := domain.New()
	x, _ := Var(d, "x")
	y, _ := Var(d, "y")
	f, err := And(x, y)
	require.NoError(t, err)

	vars := f.Vars()
	require.Len(t, vars, 2)
	require.Equal(t, domain.VarNr(1), d.Pack(vars[0]))
	require.Equal(t, domain.VarNr(2), d.Pack(vars[1]))
}

func TestFromExpressionRoundTripsInfix(t *testing.T) {
	d := domain.New()
	x, _ := Var(d, "x")
	y, _ := Var(d, "y")
	f, err := Impl(x, y)
	require.NoError(t, err)
	require.Equal(t, "[x] > [y]", f.Infix())
	require.Equal(t, f.Infix(), f.String())
}

func TestConstIgnoresDomainButCarriesIt(t *testing.T) {
	d := domain.New()
	f := Const(d, true)
	require.Same(t, d, f.Dom)
	require.Equal(t, 0, d.Size())
}
