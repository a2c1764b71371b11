package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <formula>",
		Short: "Parse an infix formula and print its prefix, postfix, and infix forms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, dom, err := parseArg(args[0])
			if err != nil {
				return err
			}
			log.Debug("parsed formula", zap.Stringer("domain", dom))
			bold := color.New(color.Bold)
			bold.Println("Prefix: ")
			fmt.Println(f.Prefix())
			bold.Println("Postfix:")
			fmt.Println(f.Postfix())
			bold.Println("Infix:  ")
			fmt.Println(f.Infix())
			return nil
		},
	}
}
