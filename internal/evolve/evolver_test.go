package evolve

import (
	"context"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	pcore "cellsim/pkg/core"
)

// line is a bounded one-dimensional store used to exercise the engine.
type line struct {
	cells    []uint8
	reversed bool
}

func (l *line) At(i int) (uint8, bool) {
	if i < 0 || i >= len(l.cells) {
		return 0, false
	}
	return l.cells[i], true
}

func (l *line) Candidates() []int {
	keys := make([]int, len(l.cells))
	for i := range keys {
		keys[i] = i
	}
	if l.reversed {
		slices.Reverse(keys)
	}
	return keys
}

func (l *line) Apply(keys []int, states []uint8) Store[int, uint8] {
	next := &line{cells: make([]uint8, len(l.cells)), reversed: l.reversed}
	for i, k := range keys {
		next.cells[k] = states[i]
	}
	return next
}

func (l *line) Count() int {
	n := 0
	for _, c := range l.cells {
		n += int(c)
	}
	return n
}

type pair struct{}

func (pair) Count(snap Snapshot[int, uint8], k int) int {
	n := 0
	for _, d := range []int{-1, 1} {
		if s, ok := snap.At(k + d); ok && s == 1 {
			n++
		}
	}
	return n
}

// spread switches a cell on once any neighbour is on.
type spread struct{}

func (spread) Next(cur uint8, n int) uint8 {
	if cur == 1 || n > 0 {
		return 1
	}
	return 0
}

// xor is elementary rule 90 and never settles on random input.
type xor struct{}

func (xor) Next(_ uint8, n int) uint8 { return uint8(n % 2) }

func quiet[K comparable, S comparable]() Option[K, S] { return WithLogger[K, S](zap.NewNop()) }

func randomLine(seed int64, n int) *line {
	cells := make([]uint8, n)
	pcore.FillBinary(pcore.NewRNG(seed).Source(), cells)
	return &line{cells: cells}
}

func TestFixpointPolicy(t *testing.T) {
	ev := New[int, uint8](pair{}, spread{}, quiet[int, uint8]())
	start := &line{cells: []uint8{1, 0, 0, 0, 0}}

	res, err := ev.Run(context.Background(), start, Fixpoint{})
	require.NoError(t, err)

	assert.Equal(t, 5, res.Generations, "four spreading generations plus one quiet one")
	assert.Equal(t, 0, res.Changed)
	assert.Equal(t, 5, res.Count)
	assert.Equal(t, []uint8{1, 0, 0, 0, 0}, start.cells, "initial store must not be mutated")

	store := res.Store
	for i := 0; i < 10; i++ {
		var changed int
		store, changed = ev.Step(store)
		require.Zero(t, changed, "fixpoint must be stable at step %d", i)
	}
}

func TestFixedIterationsPolicy(t *testing.T) {
	ev := New[int, uint8](pair{}, spread{}, quiet[int, uint8]())

	res, err := ev.Run(context.Background(), &line{cells: []uint8{0, 0, 1, 0, 0, 0, 0}}, FixedIterations{N: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Generations)
	assert.Equal(t, 5, res.Count)

	res, err = ev.Run(context.Background(), &line{cells: []uint8{1, 1}}, FixedIterations{N: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Generations)
	assert.Equal(t, -1, res.Changed)
	assert.Equal(t, 2, res.Count)
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ev := New[int, uint8](pair{}, xor{}, quiet[int, uint8]())
	res, err := ev.Run(ctx, randomLine(3, 64), FixedIterations{N: 10})
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Generations)
}

func TestStepIsDeterministicAndOrderIndependent(t *testing.T) {
	defer goleak.VerifyNone(t)

	const size = 5000
	run := func(workers int, reversed bool) []uint8 {
		start := randomLine(42, size)
		start.reversed = reversed
		ev := New[int, uint8](pair{}, xor{}, WithWorkers[int, uint8](workers), quiet[int, uint8]())
		res, err := ev.Run(context.Background(), start, FixedIterations{N: 25})
		require.NoError(t, err)
		return res.Store.(*line).cells
	}

	want := run(1, false)
	cases := []struct {
		name     string
		workers  int
		reversed bool
	}{
		{"repeat", 1, false},
		{"reversed", 1, true},
		{"parallel", 8, false},
		{"parallel reversed", 8, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(want, run(tc.workers, tc.reversed)); diff != "" {
				t.Fatalf("generation differs (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunnerLifecycle(t *testing.T) {
	var seen []int
	ev := New[int, uint8](pair{}, spread{}, quiet[int, uint8](),
		WithObserver[int, uint8](func(gen, _ int, _ Store[int, uint8]) { seen = append(seen, gen) }))
	r := NewRunner[int, uint8]("line", ev, &line{cells: []uint8{0, 1, 0}}, Fixpoint{})

	assert.Equal(t, "line", r.Name())
	assert.False(t, r.Done())
	assert.Equal(t, -1, r.Changed())

	assert.Equal(t, 2, r.Step())
	assert.Equal(t, 3, r.Count())
	assert.False(t, r.Done())
	assert.Equal(t, 0, r.Step())
	assert.True(t, r.Done())
	assert.Equal(t, 0, r.Step(), "terminated runner must not advance")
	assert.Equal(t, 2, r.Generation())
	assert.Equal(t, []int{1, 2}, seen)

	r.Reset()
	assert.Equal(t, 0, r.Generation())
	assert.Equal(t, 1, r.Count())
	assert.False(t, r.Done())
}
