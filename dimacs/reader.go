// Package dimacs reads and writes the DIMACS CNF text format: a
// header of comment lines and one problem line, followed by clauses
// encoded as whitespace-separated signed integers terminated by 0.
package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/proplog/proplog/clause"
	"github.com/proplog/proplog/domain"
)

// ErrUnterminatedClause is returned by Read when the input ends with
// literals accumulated but no terminating 0.
var ErrUnterminatedClause = errors.New("dimacs: clause not terminated by 0")

// Option configures a Read or Write call.
type Option func(*ioConfig)

type ioConfig struct {
	log *zap.Logger
}

// WithLogger makes Read emit a Debug line per parsed clause and Write
// emit one Debug line with the number of clauses written. A nil logger (the default)
// disables tracing entirely.
func WithLogger(log *zap.Logger) Option {
	return func(c *ioConfig) { c.log = log }
}

// Read parses DIMACS CNF text from r, resolving every literal's VarNr
// against dom (autovivifying variables the problem line never
// declared, named by their decimal VarNr like any other
// Domain.Unpack call). Lines starting with "c" are comments, the line
// starting with "p cnf" is consumed without validating its counts
// against what actually follows, and every other non-empty line
// contributes integers to the clause currently being accumulated.
// A clause may span multiple lines; accumulation ends at the first 0.
func Read(dom *domain.Domain, r io.Reader, opts ...Option) ([]*clause.Clause, error) {
	cfg := &ioConfig{}
	for _, o := range opts {
		o(cfg)
	}
	var clauses []*clause.Clause
	var lits []clause.Literal

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p cnf") {
			continue
		}
		for _, tok := range strings.Fields(line) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("dimacs: invalid literal %q: %w", tok, err)
			}
			if n == 0 {
				clauses = append(clauses, clause.New(lits...))
				if cfg.log != nil {
					cfg.log.Debug("dimacs: parsed clause", zap.Int("literals", len(lits)))
				}
				lits = lits[:0]
				continue
			}
			abs := n
			if abs < 0 {
				abs = -abs
			}
			ref, err := dom.Unpack(domain.VarNr(abs))
			if err != nil {
				return nil, err
			}
			lits = append(lits, clause.Literal{Var: ref, Val: n > 0})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lits) > 0 {
		return nil, ErrUnterminatedClause
	}
	return clauses, nil
}
