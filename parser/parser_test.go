package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proplog/proplog/domain"
	"github.com/proplog/proplog/expr"
)

func mustParse(t *testing.T, dom *domain.Domain, src string) expr.Expression {
	t.Helper()
	e, err := Parse(dom, src)
	require.NoError(t, err, "parsing %q", src)
	return e
}

func TestNotBindsTighterThanAnd(t *testing.T) {
	dom := domain.New()
	e := mustParse(t, dom, "~a&b")
	require.Equal(t, "[a] ~ [b] &", expr.Postfix(e, dom))
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	dom := domain.New()
	e := mustParse(t, dom, "~(a&b)")
	require.Equal(t, "[a] [b] & ~", expr.Postfix(e, dom))
}

func TestBinaryOperatorsAreRightAssociative(t *testing.T) {
	dom := domain.New()
	e := mustParse(t, dom, "a & b & c")
	require.Equal(t, "[a] [b] [c] & &", expr.Postfix(e, dom))
}

func TestUnrecognizedTokenOffset(t *testing.T) {
	dom := domain.New()
	_, err := Parse(dom, "~a + b")
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "Unrecognized token", pe.Message)
	require.Equal(t, 3, pe.Offset)
}

func TestEmptyInputFailsAtEOF(t *testing.T) {
	dom := domain.New()
	_, err := Parse(dom, "")
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "Term expected but EOF reached", pe.Message)
	require.Equal(t, 0, pe.Offset)
}

func TestLoneClosingParenFailsAtOffsetZero(t *testing.T) {
	dom := domain.New()
	_, err := Parse(dom, ")")
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "Term expected when encountering closing parenthesis", pe.Message)
	require.Equal(t, 0, pe.Offset)
}

func TestTrailingBinaryOperatorFailsAtEOF(t *testing.T) {
	dom := domain.New()
	_, err := Parse(dom, "a&b&c&")
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "Term expected but EOF reached", pe.Message)
	require.Equal(t, len("a&b&c&"), pe.Offset)
}

func TestUnmatchedOpeningParenFailsAtEOF(t *testing.T) {
	dom := domain.New()
	_, err := Parse(dom, "(a&b")
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "Missing closing parenthesis", pe.Message)
}

func TestUnmatchedClosingParenFails(t *testing.T) {
	dom := domain.New()
	_, err := Parse(dom, "a&b)")
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "Missing opening parenthesis", pe.Message)
}

func TestArrowAndFatArrowSpellings(t *testing.T) {
	dom := domain.New()
	arrow := mustParse(t, dom, "a->b")
	gt := mustParse(t, dom, "a>b")
	require.Equal(t, expr.Postfix(arrow, dom), expr.Postfix(gt, dom))

	dom2 := domain.New()
	fatArrow := mustParse(t, dom2, "a<->b")
	eq := mustParse(t, dom2, "a=b")
	require.Equal(t, expr.Postfix(fatArrow, dom2), expr.Postfix(eq, dom2))
}

func TestVariableUniverseMatchesResolveOrder(t *testing.T) {
	dom := domain.New()
	e := mustParse(t, dom, "(ab&3 | x&a34) -> (\\T ^ x) -> (y = x) <-> (ab | cd ^ a34)")
	require.Len(t, e.Vars(), 6)
	want := "= > | & [ab] [3] & [x] [a34] > ^ \\T [x] = [y] [x] ^ | [ab] [cd] [a34]"
	require.Equal(t, want, expr.Prefix(e, dom))
}

func TestBracketedVariableNameAllowsArbitraryAscii(t *testing.T) {
	dom := domain.New()
	e := mustParse(t, dom, "[12|47] & [a b]")
	require.Equal(t, "[12|47] [a b] &", expr.Postfix(e, dom))
}

func TestConstants(t *testing.T) {
	dom := domain.New()
	e := mustParse(t, dom, "\\T & \\F")
	require.Equal(t, `\T \F &`, expr.Postfix(e, dom))
}

// TestInfixRoundTripsThroughReparse checks that parsing a formula's own
// Infix() rendering reproduces the same tree: Infix() always brackets
// variable names, and the lexer accepts a bracketed name as a single
// token (see TestBracketedVariableNameAllowsArbitraryAscii), so
// re-parsing it should yield an identical Postfix().
func TestInfixRoundTripsThroughReparse(t *testing.T) {
	dom := domain.New()
	e := mustParse(t, dom, "(ab&3 | x&a34) -> (\\T ^ x) -> (y = x) <-> (ab | cd ^ a34)")
	wantPostfix := expr.Postfix(e, dom)

	dom2 := domain.New()
	e2 := mustParse(t, dom2, expr.Infix(e, dom))
	require.Equal(t, wantPostfix, expr.Postfix(e2, dom2))
}
