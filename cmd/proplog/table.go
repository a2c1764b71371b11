package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/proplog/proplog/truthtable"
)

var (
	trueStyle  = color.New(color.FgGreen, color.Bold)
	falseStyle = color.New(color.FgRed, color.Bold)
)

func colorBool(b bool) string {
	if b {
		return trueStyle.Sprint("T")
	}
	return falseStyle.Sprint("F")
}

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table <formula>",
		Short: "Enumerate the truth table of a formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, dom, err := parseArg(args[0])
			if err != nil {
				return err
			}
			vars := f.Vars()
			names := make([]string, len(vars))
			for i, ref := range vars {
				names[i] = dom.Name(ref)
			}
			fmt.Println(strings.Join(names, "\t") + "\t| result")

			rows := 0
			truthtable.Of(f).Each(func(row truthtable.Row) bool {
				rows++
				cells := make([]string, len(vars))
				for i, ref := range vars {
					v, _ := row.Assignment.Get(ref)
					cells[i] = colorBool(v)
				}
				fmt.Println(strings.Join(cells, "\t") + "\t| " + colorBool(row.Value))
				return true
			})
			log.Debug("enumerated truth table", zap.Int("rows", rows), zap.Int("vars", len(vars)))
			return nil
		},
	}
}
