package main

import (
	"strings"

	"github.com/fatih/color"

	"github.com/proplog/proplog/clause"
	"github.com/proplog/proplog/domain"
)

var (
	posStyle = color.New(color.FgGreen)
	negStyle = color.New(color.FgRed)
)

// renderClause prints c as a disjunction, one literal per variable
// name looked up in dom, negated literals red and positive ones
// green — the same red/green colors the table command uses for F/T.
func renderClause(dom *domain.Domain, c *clause.Clause) string {
	lits := c.Literals()
	if len(lits) == 0 {
		return negStyle.Sprint("(empty clause — unsatisfiable)")
	}
	parts := make([]string, len(lits))
	for i, l := range lits {
		name := dom.Name(l.Var)
		if l.Val {
			parts[i] = posStyle.Sprint(name)
		} else {
			parts[i] = negStyle.Sprint("~" + name)
		}
	}
	return "(" + strings.Join(parts, " | ") + ")"
}
