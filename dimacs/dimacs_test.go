package dimacs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/proplog/proplog/clause"
	"github.com/proplog/proplog/domain"
	"github.com/proplog/proplog/stream"
)

func TestReadSkipsCommentsAndProblemLine(t *testing.T) {
	d := domain.New()
	input := "c a sample cnf\np cnf 3 2\n1 -2 0\n2 3 0\n"
	clauses, err := Read(d, strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, clauses, 2)
	require.Equal(t, 2, clauses[0].Len())
	require.Equal(t, 2, clauses[1].Len())
}

func TestReadAccumulatesMultiLineClause(t *testing.T) {
	d := domain.New()
	input := "p cnf 3 1\n1 -2\n3 0\n"
	clauses, err := Read(d, strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, clauses, 1)
	require.Equal(t, 3, clauses[0].Len())
}

func TestReadAutovivifiesVariables(t *testing.T) {
	d := domain.New()
	_, err := Read(d, strings.NewReader("p cnf 5 1\n5 0\n"))
	require.NoError(t, err)
	require.Equal(t, 5, d.Size())
}

func TestReadFailsOnUnterminatedClause(t *testing.T) {
	d := domain.New()
	_, err := Read(d, strings.NewReader("1 2"))
	require.ErrorIs(t, err, ErrUnterminatedClause)
}

func TestWriteRoundTripsThroughRead(t *testing.T) {
	d := domain.New()
	a, _ := d.Resolve("a")
	b, _ := d.Resolve("b")
	c1 := clause.New(clause.Literal{Var: a, Val: true}, clause.Literal{Var: b, Val: false})
	c2 := clause.New(clause.Literal{Var: b, Val: true})

	s := stream.FromSlice([]*clause.Clause{c1, c2})
	var buf strings.Builder
	require.NoError(t, Write(&buf, d, NameComments(d), s, d.Size(), 2))

	got := buf.String()
	require.Contains(t, got, "c a=1\n")
	require.Contains(t, got, "c b=2\n")
	require.Contains(t, got, "p cnf 2 2\n")
	require.Contains(t, got, "1 -2 0\n")
	require.Contains(t, got, "2 0\n")

	d2 := domain.New()
	clauses, err := Read(d2, strings.NewReader(got))
	require.NoError(t, err)
	require.Len(t, clauses, 2)
}

func TestReadAndWriteWithLoggerTraceClauses(t *testing.T) {
	d := domain.New()
	log := zap.NewNop()
	clauses, err := Read(d, strings.NewReader("p cnf 2 1\n1 -2 0\n"), WithLogger(log))
	require.NoError(t, err)
	require.Len(t, clauses, 1)

	s := stream.FromSlice(clauses)
	var buf strings.Builder
	require.NoError(t, Write(&buf, d, nil, s, d.Size(), len(clauses), WithLogger(log)))
	require.Contains(t, buf.String(), "1 -2 0\n")
}

func TestWriteComputesCountsWhenNotProvided(t *testing.T) {
	d := domain.New()
	a, _ := d.Resolve("a")
	c1 := clause.New(clause.Literal{Var: a, Val: true})

	s := stream.FromSlice([]*clause.Clause{c1})
	var buf strings.Builder
	require.NoError(t, Write(&buf, d, nil, s, -1, -1))
	require.Contains(t, buf.String(), "p cnf 1 1\n")
}
