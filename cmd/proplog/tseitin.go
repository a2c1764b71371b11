package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/proplog/proplog/tseitin"
)

func newTseitinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tseitin <formula>",
		Short: "Convert a formula to an equisatisfiable CNF by the Tseitin transform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, _, err := parseArg(args[0])
			if err != nil {
				return err
			}
			tr := tseitin.Build(f, tseitin.WithLogger(log))
			fmt.Println(color.New(color.Bold).Sprintf("Root variable: %s", tr.Aux.Name(tr.Root)))
			clauses := tr.Clauses().Collect()
			for _, c := range clauses {
				fmt.Println(renderClause(tr.Aux, c))
			}
			log.Debug("tseitin transform complete", zap.Int("clauses", len(clauses)))
			return nil
		},
	}
}
