package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gofhir/contentvalidator/objective"
)

func newObjectivesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "objectives",
		Short: "List objectives that require the baseline checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tCRITERION\tSETTING\tTITLE")
			for _, code := range objective.Codes() {
				o, _ := objective.Lookup(code)
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", o.Code, o.Criterion, o.Setting, o.Title)
			}
			return tw.Flush()
		},
	}
}
