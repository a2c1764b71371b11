package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/proplog/proplog/internal/telemetry"
)

var (
	verbose bool
	noColor bool
	log     *zap.Logger
)

// NewRootCmd builds the proplog command tree: parse, table, cnf,
// tseitin, and dimacs, each a thin collaborator over the core
// packages. Every subcommand that takes a formula argument resolves
// it through parseArg in this package, so every one of them shares the
// same grammar and error reporting.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "proplog",
		Short: "Propositional-calculus toolkit: parse, evaluate, and convert formulas",
		Long: `proplog parses infix propositional formulas and runs them through the
core library's operations: truth-table enumeration, CNF conversion by
truth table or by the Tseitin transform, and DIMACS CNF read/write.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = telemetry.New(verbose)
			if noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
				color.NoColor = true
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				_ = log.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable structured debug tracing")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized output even on a terminal")

	root.AddCommand(newParseCmd())
	root.AddCommand(newTableCmd())
	root.AddCommand(newCNFCmd())
	root.AddCommand(newTseitinCmd())
	root.AddCommand(newDimacsCmd())
	return root
}
