package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/proplog/proplog/clause"
	"github.com/proplog/proplog/cnf"
)

func newCNFCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cnf <formula>",
		Short: "Convert a formula to CNF by the truth-table method",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, dom, err := parseArg(args[0])
			if err != nil {
				return err
			}
			n := 0
			cnf.Of(f).Each(func(c *clause.Clause) bool {
				n++
				fmt.Println(renderClause(dom, c))
				return true
			})
			log.Debug("converted to CNF", zap.Int("clauses", n))
			return nil
		},
	}
}
