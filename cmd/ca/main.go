package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cellsim/internal/config"
	"cellsim/internal/core"
	"cellsim/internal/logging"
	_ "cellsim/internal/sims/seating"
	_ "cellsim/pkg/sims/life"
)

// cli carries state shared by every subcommand.
type cli struct {
	configPath string
	verbose    bool
	jsonLogs   bool
	workers    int

	cfg      *config.Config
	logger   *zap.Logger
	teardown func()
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "ca",
		Short: "Run cellular automata to a fixpoint or for a fixed number of generations",
		Long: `ca evolves cellular automata built from a text seed.

Registered automata:
  seating  bounded seat layout ('#' occupied, 'L' empty, '.' floor) run to a fixpoint
  cubes    Conway's Game of Life on an unbounded D-dimensional lattice`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.teardown != nil {
				c.teardown()
			}
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&c.jsonLogs, "json-logs", false, "emit JSON logs")
	root.PersistentFlags().IntVar(&c.workers, "workers", 0, "goroutines per generation (0 = config or GOMAXPROCS)")

	root.AddCommand(c.runCmd(), c.listCmd(), c.genCmd(), c.viewCmd())
	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.workers > 0 {
		cfg.Workers = c.workers
	}
	if c.verbose {
		cfg.Logging.Level = "debug"
	}
	if c.jsonLogs {
		cfg.Logging.JSON = true
	}
	logger, teardown, err := logging.Install(logging.Options{Level: cfg.Logging.Level, JSON: cfg.Logging.JSON})
	if err != nil {
		return err
	}
	c.cfg, c.logger, c.teardown = cfg, logger, teardown
	return nil
}

// readInput loads the seed rows from the named file, or stdin when args is
// empty or "-".
func readInput(cmd *cobra.Command, args []string) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	return core.ReadLines(r)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
