package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cellsim/internal/sims/seating"
	pcore "cellsim/pkg/core"
)

func (c *cli) genCmd() *cobra.Command {
	var (
		w, h            int
		seed            int64
		floor, occupied float64
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print a random seating layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := seating.Generate(pcore.NewRNG(seed), h, w, floor, occupied)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), l)
			return err
		},
	}
	cmd.Flags().IntVar(&w, "w", 10, "columns")
	cmd.Flags().IntVar(&h, "h", 10, "rows")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed")
	cmd.Flags().Float64Var(&floor, "floor", 0.2, "probability of a floor tile")
	cmd.Flags().Float64Var(&occupied, "occupied", 0, "probability that a seat starts occupied")
	return cmd
}
