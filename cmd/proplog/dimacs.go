package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/proplog/proplog/cnf"
	"github.com/proplog/proplog/dimacs"
	"github.com/proplog/proplog/tseitin"
)

func newDimacsCmd() *cobra.Command {
	var useTseitin bool
	cmd := &cobra.Command{
		Use:   "dimacs <formula>",
		Short: "Convert a formula to DIMACS CNF text on stdout",
		Long: `Converts a formula to a CNF (by the truth-table method, or --tseitin for
the Tseitin transform) and writes it as DIMACS CNF text to stdout, with
one "c name=idx" comment per named variable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, dom, err := parseArg(args[0])
			if err != nil {
				return err
			}
			if useTseitin {
				tr := tseitin.Build(f, tseitin.WithLogger(log))
				s := tr.Clauses()
				return dimacs.Write(os.Stdout, tr.Aux, dimacs.NameComments(tr.Aux), s, -1, -1, dimacs.WithLogger(log))
			}
			s := cnf.Of(f)
			return dimacs.Write(os.Stdout, dom, dimacs.NameComments(dom), s, -1, -1, dimacs.WithLogger(log))
		},
	}
	cmd.Flags().BoolVar(&useTseitin, "tseitin", false, "use the Tseitin transform instead of the truth-table method")
	return cmd
}
