package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/growth-calculator/internal/output"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and their aliases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Formats:")
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintf(w, "  %-13s (.%s)\n", name, output.ExtensionFor(output.GetFormatterByName(name)))
			}
			fmt.Fprintln(w, "Aliases:")
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(w, "  %-13s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
			fmt.Fprintln(w, "\nExample: growth compare scenarios.yaml --format html")
		},
	}
}
