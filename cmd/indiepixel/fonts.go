package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newFontsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "List the available fonts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tFAMILY\tLINE HEIGHT")
			for _, name := range a.fonts.Names() {
				f, err := a.fonts.Face(name)
				if err != nil {
					return err
				}
				family := f.Family()
				if family == "" {
					family = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\n", name, family, f.LineHeight())
			}
			return tw.Flush()
		},
	}
}
