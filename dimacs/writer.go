package dimacs

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/proplog/proplog/clause"
	"github.com/proplog/proplog/domain"
	"github.com/proplog/proplog/stream"
)

// NameComments returns one "name=idx" line per variable known to dom,
// in VarNr order, suitable as part of the comments passed to Write —
// lets a later reader recover the original names.
func NameComments(dom *domain.Domain) []string {
	refs := dom.List()
	out := make([]string, len(refs))
	for i, ref := range refs {
		out[i] = fmt.Sprintf("%s=%d", dom.Name(ref), dom.Pack(ref))
	}
	return out
}

// Write emits DIMACS CNF text to w: one "c <comment>" line per entry
// in comments, then the problem line "p cnf <nbVar> <nbClauses>", then
// one line per clause, each a space-separated list of signed VarNrs
// (negative for a false literal) terminated by 0. If either nbVar or
// nbClauses is negative, Write enables caching on clauses, drains it
// once to compute both counts, then rewinds and replays it to emit
// the clause lines.
func Write(w io.Writer, dom *domain.Domain, comments []string, clauses *stream.Stream[*clause.Clause], nbVar, nbClauses int, opts ...Option) error {
	cfg := &ioConfig{}
	for _, o := range opts {
		o(cfg)
	}
	if nbVar < 0 || nbClauses < 0 {
		nbVar, nbClauses = 0, 0
		clauses.EnableCache()
		clauses.Each(func(c *clause.Clause) bool {
			nbClauses++
			for _, ref := range c.Vars() {
				if v := int(dom.Pack(ref)); v > nbVar {
					nbVar = v
				}
			}
			return true
		})
		if nbClauses > 0 && !clauses.Rewind() {
			return fmt.Errorf("dimacs: could not rewind clause stream after counting pass")
		}
	}

	for _, line := range comments {
		if _, err := fmt.Fprintf(w, "c %s\n", line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", nbVar, nbClauses); err != nil {
		return err
	}

	var writeErr error
	n := 0
	clauses.Each(func(c *clause.Clause) bool {
		if _, err := io.WriteString(w, clauseLine(dom, c)); err != nil {
			writeErr = err
			return false
		}
		n++
		return true
	})
	if cfg.log != nil {
		cfg.log.Debug("dimacs: wrote clauses", zap.Int("count", n))
	}
	return writeErr
}

func clauseLine(dom *domain.Domain, c *clause.Clause) string {
	lits := c.Literals()
	parts := make([]string, len(lits)+1)
	for i, l := range lits {
		n := int(dom.Pack(l.Var))
		if !l.Val {
			n = -n
		}
		parts[i] = strconv.Itoa(n)
	}
	parts[len(lits)] = "0"
	return strings.Join(parts, " ") + "\n"
}
