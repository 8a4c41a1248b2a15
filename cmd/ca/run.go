package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cellsim/internal/core"
)

func (c *cli) runCmd() *cobra.Command {
	var (
		set   map[string]string
		trace bool
		tps   int
	)
	cmd := &cobra.Command{
		Use:   "run <sim> [file]",
		Short: "Run a sim until its policy terminates and print the summary count",
		Example: `  ca run seating seats.txt
  ca run seating --set mode=visible < seats.txt
  ca run cubes --set dims=4 --set generations=6 seed.txt`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}
			sim, err := core.New(args[0], c.cfg.SimOptions(args[0], set), input)
			if err != nil {
				return fmt.Errorf("build %s: %w", args[0], err)
			}
			if !cmd.Flags().Changed("tps") {
				tps = c.cfg.View.TPS
			}
			return c.run(cmd, sim, trace, tps)
		},
	}
	cmd.Flags().StringToStringVar(&set, "set", nil, "sim option as key=value (repeatable)")
	cmd.Flags().BoolVar(&trace, "trace", false, "print every generation")
	cmd.Flags().IntVar(&tps, "tps", 0, "generations per second while tracing (default from config, 0 = unpaced)")
	return cmd
}

func (c *cli) run(cmd *cobra.Command, sim core.Sim, trace bool, tps int) error {
	out := cmd.OutOrStdout()
	pace := core.NewFixedStep(tps)
	show := func() {
		if s, ok := sim.(fmt.Stringer); ok && trace {
			pace.Wait()
			fmt.Fprintf(out, "generation %d:\n%s\n", sim.Generation(), s)
		}
	}

	show()
	for !sim.Done() {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		sim.Step()
		show()
	}
	c.logger.Debug("sim finished",
		zap.String("sim", sim.Name()),
		zap.Int("generations", sim.Generation()),
		zap.Int("count", sim.Count()))
	fmt.Fprintln(out, sim.Count())
	return nil
}
