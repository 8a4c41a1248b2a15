package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"cellsim/internal/core"
	"cellsim/internal/logging"
	_ "cellsim/internal/sims/seating"
	_ "cellsim/pkg/sims/life"
)

type scenario struct {
	sim  string
	opts map[string]string
}

func (s scenario) String() string {
	keys := make([]string, 0, len(s.opts))
	for k := range s.opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+s.opts[k])
	}
	return s.sim + " " + strings.Join(parts, " ")
}

type scenarioResult struct {
	scenario    scenario
	generations int
	count       int
	elapsed     time.Duration
	err         error
}

func main() {
	input := flag.String("input", "", "seed file (defaults to stdin)")
	dimsFlag := flag.String("dims", "3,4", "comma separated lattice dimensions for cubes")
	generations := flag.Int("generations", 6, "generations per cubes scenario")
	seatingFlag := flag.Bool("seating", true, "also run both seating modes")
	workers := flag.Int("workers", runtime.NumCPU(), "number of scenarios run concurrently")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := "info"
	if *verbose {
		level = "debug"
	}
	logger, teardown, err := logging.Install(logging.Options{Level: level})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer teardown()

	var r io.Reader = os.Stdin
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			logger.Fatal("open input", zap.Error(err))
		}
		defer f.Close()
		r = f
	}
	lines, err := core.ReadLines(r)
	if err != nil {
		logger.Fatal("read input", zap.Error(err))
	}

	sets, err := scenarios(*dimsFlag, *generations, *seatingFlag)
	if err != nil {
		logger.Fatal("bad flags", zap.Error(err))
	}

	fmt.Printf("Sweeping %d scenarios (%d workers)\n", len(sets), *workers)
	start := time.Now()
	all := sweep(sets, lines, *workers)
	elapsed := time.Since(start)

	failed := 0
	for _, res := range all {
		if res.err != nil {
			failed++
			fmt.Printf("%-40s error: %v\n", res.scenario, res.err)
			continue
		}
		fmt.Printf("%-40s gens=%-4d count=%-8d %v\n", res.scenario, res.generations, res.count, res.elapsed.Round(time.Microsecond))
	}
	fmt.Printf("Completed in %v\n", elapsed.Round(time.Millisecond))
	if failed > 0 {
		os.Exit(1)
	}
}

func scenarios(dims string, generations int, seating bool) ([]scenario, error) {
	var sets []scenario
	for _, field := range strings.Split(dims, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		d, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("dims: %q is not an integer", field)
		}
		sets = append(sets, scenario{sim: "cubes", opts: map[string]string{
			"dims":        strconv.Itoa(d),
			"generations": strconv.Itoa(generations),
			"workers":     "1",
		}})
	}
	if seating {
		for _, mode := range []string{"adjacent", "visible"} {
			sets = append(sets, scenario{sim: "seating", opts: map[string]string{"mode": mode, "workers": "1"}})
		}
	}
	return sets, nil
}

// sweep runs every scenario on a pool of workers and returns the results in
// scenario order.
func sweep(sets []scenario, lines []string, workers int) []scenarioResult {
	if workers < 1 {
		workers = 1
	}
	type job struct {
		idx int
		s   scenario
	}
	type indexed struct {
		idx int
		res scenarioResult
	}
	jobs := make(chan job)
	results := make(chan indexed)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- indexed{idx: j.idx, res: runScenario(j.s, lines)}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i, s := range sets {
			jobs <- job{idx: i, s: s}
		}
		close(jobs)
	}()

	all := make([]scenarioResult, len(sets))
	for r := range results {
		all[r.idx] = r.res
	}
	return all
}

func runScenario(s scenario, lines []string) scenarioResult {
	res := scenarioResult{scenario: s}
	start := time.Now()
	sim, err := core.New(s.sim, s.opts, lines)
	if err != nil {
		res.err = err
		return res
	}
	for !sim.Done() {
		sim.Step()
	}
	res.generations = sim.Generation()
	res.count = sim.Count()
	res.elapsed = time.Since(start)
	zap.L().Debug("scenario finished", zap.Stringer("scenario", s), zap.Int("count", res.count))
	return res
}
