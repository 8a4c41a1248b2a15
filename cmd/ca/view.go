//go:build ebiten

package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"cellsim/internal/app"
	"cellsim/internal/core"
)

func (c *cli) viewCmd() *cobra.Command {
	var set map[string]string
	cmd := &cobra.Command{
		Use:   "view <sim> [file]",
		Short: "Open a window stepping a grid-backed sim",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}
			sim, err := core.New(args[0], c.cfg.SimOptions(args[0], set), input)
			if err != nil {
				return fmt.Errorf("build %s: %w", args[0], err)
			}
			game, err := app.New(sim, c.cfg.View.Scale)
			if err != nil {
				return err
			}
			w, h := game.Layout(0, 0)
			ebiten.SetWindowTitle("cellsim - " + sim.Name())
			ebiten.SetTPS(max(c.cfg.View.TPS, 1))
			ebiten.SetWindowSize(w, h)
			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringToStringVar(&set, "set", nil, "sim option as key=value (repeatable)")
	return cmd
}
