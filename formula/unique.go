package formula

import (
	"fmt"
	"math"
	"strings"

	"github.com/proplog/proplog/domain"
)

// Unique returns a Formula requiring exactly one of the named
// variables to be true. It is not one of the six primitive
// connectives: it lowers to nested And/Or/Not/Eqv. Up to four variables
// it uses pairwise exclusions over the named variables alone; above
// that it adds fresh auxiliary row/column variables, tied to their
// members with Eqv, which keeps the clause count near-linear instead
// of quadratic.
func Unique(dom *domain.Domain, names ...string) (*Formula, error) {
	vars := make([]*Formula, len(names))
	for i, n := range names {
		v, err := Var(dom, n)
		if err != nil {
			return nil, err
		}
		vars[i] = v
	}
	return uniqueRec(dom, vars)
}

// uniqueSmall is suitable for a small number of variables (typically
// <= 4): one clause saying at least one is true, plus a pairwise
// clause for every pair saying not both are true.
func uniqueSmall(vars []*Formula) (*Formula, error) {
	result := vars[0]
	var err error
	for i := 1; i < len(vars); i++ {
		if result, err = Or(result, vars[i]); err != nil {
			return nil, err
		}
	}
	for i := 0; i < len(vars)-1; i++ {
		for j := i + 1; j < len(vars); j++ {
			pair, err := Or(Not(vars[i]), Not(vars[j]))
			if err != nil {
				return nil, err
			}
			if result, err = And(result, pair); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

func uniqueRec(dom *domain.Domain, vars []*Formula) (*Formula, error) {
	if len(vars) <= 4 {
		return uniqueSmall(vars)
	}
	sqrt := math.Sqrt(float64(len(vars)))
	nbLines := int(sqrt + 0.5)
	nbCols := int(math.Ceil(sqrt))

	allNames := make([]string, len(vars))
	for i := range vars {
		allNames[i] = dom.NameForVarNr(vars[i].Expr[0].VarNr)
	}
	fullName := strings.Join(allNames, "-")

	lines := make([]*Formula, nbLines)
	linesOf := make([][]*Formula, nbLines)
	for i := range lines {
		v, err := Var(dom, fmt.Sprintf("Unique[line-%d-%s]", i, fullName))
		if err != nil {
			return nil, err
		}
		lines[i] = v
	}
	cols := make([]*Formula, nbCols)
	colsOf := make([][]*Formula, nbCols)
	for i := range cols {
		v, err := Var(dom, fmt.Sprintf("Unique[col-%d-%s]", i, fullName))
		if err != nil {
			return nil, err
		}
		cols[i] = v
	}
	for i, v := range vars {
		linesOf[i/nbCols] = append(linesOf[i/nbCols], v)
		colsOf[i%nbCols] = append(colsOf[i%nbCols], v)
	}

	var parts []*Formula
	for i := range lines {
		disj, err := orAll(linesOf[i])
		if err != nil {
			return nil, err
		}
		eq, err := Eqv(lines[i], disj)
		if err != nil {
			return nil, err
		}
		parts = append(parts, eq)
	}
	for i := range cols {
		disj, err := orAll(colsOf[i])
		if err != nil {
			return nil, err
		}
		eq, err := Eqv(cols[i], disj)
		if err != nil {
			return nil, err
		}
		parts = append(parts, eq)
	}
	linesUnique, err := uniqueRec(dom, lines)
	if err != nil {
		return nil, err
	}
	colsUnique, err := uniqueRec(dom, cols)
	if err != nil {
		return nil, err
	}
	parts = append(parts, linesUnique, colsUnique)
	return andAll(parts)
}

func orAll(fs []*Formula) (*Formula, error) {
	result := fs[0]
	var err error
	for i := 1; i < len(fs); i++ {
		if result, err = Or(result, fs[i]); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func andAll(fs []*Formula) (*Formula, error) {
	result := fs[0]
	var err error
	for i := 1; i < len(fs); i++ {
		if result, err = And(result, fs[i]); err != nil {
			return nil, err
		}
	}
	return result, nil
}
