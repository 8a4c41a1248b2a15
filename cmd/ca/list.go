package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cellsim/internal/core"
)

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered sims and their resolved parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range core.Names() {
				snap, _ := core.Describe(name, c.cfg.SimOptions(name, nil))
				fmt.Fprintf(tw, "%s\n", name)
				for _, g := range snap.Groups {
					if g.Summary != "" {
						fmt.Fprintf(tw, "  %s\n", g.Summary)
					}
					for _, p := range g.Params {
						fmt.Fprintf(tw, "  %s\t%s\t%s\n", p.Key, p.Value, p.Description)
					}
				}
			}
			return tw.Flush()
		},
	}
}
