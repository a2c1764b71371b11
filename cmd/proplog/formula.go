package main

import (
	"fmt"

	"github.com/proplog/proplog/domain"
	"github.com/proplog/proplog/formula"
	"github.com/proplog/proplog/parser"
)

// parseArg parses src against a fresh Domain, wrapping a *parser.Error
// with the byte offset it names so cobra's error output points at the
// exact character the grammar rejected.
func parseArg(src string) (*formula.Formula, *domain.Domain, error) {
	dom := domain.New()
	e, err := parser.Parse(dom, src)
	if err != nil {
		if perr, ok := err.(*parser.Error); ok {
			return nil, nil, fmt.Errorf("could not parse %q: %w (at byte %d)", src, perr, perr.Offset)
		}
		return nil, nil, fmt.Errorf("could not parse %q: %w", src, err)
	}
	return formula.FromExpression(dom, e), dom, nil
}
