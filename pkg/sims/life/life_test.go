package life

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cellsim/internal/core"
	"cellsim/internal/evolve"
)

var glider = []string{
	".#.",
	"..#",
	"###",
}

func quiet() evolve.Option[core.Coord, State] {
	return evolve.WithLogger[core.Coord, State](zap.NewNop())
}

func run(t *testing.T, dims, generations, workers int) *Sim {
	t.Helper()
	seed, err := FromLines(glider, dims)
	require.NoError(t, err)
	sim, err := New(Config{Dims: dims, Generations: generations, Workers: workers}, seed, quiet())
	require.NoError(t, err)
	for !sim.Done() {
		sim.Step()
	}
	return sim
}

func TestBlinkerOscillation(t *testing.T) {
	horizontal, err := NewSpace(2, core.C(2, 1), core.C(2, 2), core.C(2, 3))
	require.NoError(t, err)
	nb, err := NewNeighbors(2)
	require.NoError(t, err)
	ev := evolve.New[core.Coord, State](nb, Rule{}, quiet())

	next, changed := ev.Step(horizontal)
	assert.Equal(t, 4, changed)
	assert.Equal(t, []core.Coord{core.C(1, 2), core.C(2, 2), core.C(3, 2)}, next.(*Space).Active())

	back, _ := ev.Step(next)
	assert.Equal(t, horizontal.Active(), back.(*Space).Active())
}

func TestCubeScenarios(t *testing.T) {
	cases := []struct {
		name              string
		dims, generations int
		want              int
	}{
		{"3d one generation", 3, 1, 11},
		{"4d one generation", 4, 1, 29},
		{"3d six generations", 3, 6, 112},
		{"4d six generations", 4, 6, 848},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sim := run(t, tc.dims, tc.generations, 0)
			assert.Equal(t, tc.want, sim.Count())
			assert.Equal(t, tc.generations, sim.Generation())
		})
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	seq := run(t, 4, 4, 1).Space().Active()
	par := run(t, 4, 4, 8).Space().Active()
	if diff := cmp.Diff(seq, par, cmp.Comparer(func(a, b core.Coord) bool { return a == b })); diff != "" {
		t.Fatalf("parallel evaluation diverged (-seq +par):\n%s", diff)
	}
}

func TestNeighbors(t *testing.T) {
	for d, want := range map[int]int{2: 8, 3: 26, 4: 80} {
		nb, err := NewNeighbors(d)
		require.NoError(t, err)
		assert.Equal(t, want, nb.Size())
	}
	_, err := NewNeighbors(0)
	assert.ErrorIs(t, err, core.ErrConfig)

	s, err := FromLines(glider, 3)
	require.NoError(t, err)
	nb, _ := NewNeighbors(3)
	assert.Equal(t, 1, nb.Count(s, core.C(0, 0, 0)))
	assert.Equal(t, 5, nb.Count(s, core.C(1, 1, 0)))
	assert.Equal(t, 5, nb.Count(s, core.C(1, 1, 1)))
}

func TestRule(t *testing.T) {
	for n := 0; n <= 26; n++ {
		assert.Equal(t, n == 2 || n == 3, Rule{}.Next(Active, n) == Active, "active with %d", n)
		assert.Equal(t, n == 3, Rule{}.Next(Inactive, n) == Active, "inactive with %d", n)
	}
}

func TestCandidatesIncludeInactiveNeighbours(t *testing.T) {
	s, err := NewSpace(3, core.C(0, 0, 0))
	require.NoError(t, err)
	cands := s.Candidates()
	assert.Len(t, cands, 27)
	assert.Equal(t, core.C(-1, -1, -1), cands[0])
	assert.Equal(t, core.C(1, 1, 1), cands[len(cands)-1])

	empty, err := NewSpace(3)
	require.NoError(t, err)
	assert.Empty(t, empty.Candidates())
}

func TestNewSpaceValidation(t *testing.T) {
	s, err := NewSpace(2, core.C(1, 1), core.C(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count(), "duplicates collapse")

	_, err = NewSpace(3, core.C(0, 0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrConfig))

	_, err = NewSpace(0)
	assert.ErrorIs(t, err, core.ErrConfig)

	_, err = FromLines(glider, 1)
	assert.ErrorIs(t, err, core.ErrConfig)
	_, err = FromLines([]string{"", ""}, 3)
	assert.ErrorIs(t, err, core.ErrConfig)

	seed, err := FromLines(glider, 3)
	require.NoError(t, err)
	_, err = New(Config{Dims: 4, Generations: 6}, seed)
	assert.ErrorIs(t, err, core.ErrConfig)
}

func TestParseAndRender(t *testing.T) {
	s, err := Parse(strings.NewReader(".#.\n..#\n###\n\n"), 3)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Count())
	assert.True(t, s.Contains(core.C(2, 0, 0)))
	assert.Equal(t, "z=0\n.#.\n..#\n###\n", s.String())

	s4, err := FromLines(glider, 4)
	require.NoError(t, err)
	assert.Equal(t, "z=0, w=0\n.#.\n..#\n###\n", s4.String())

	s2, err := NewSpace(2, core.C(-1, 0), core.C(0, 1))
	require.NoError(t, err)
	assert.Equal(t, "#.\n.#\n", s2.String())

	lo, hi, ok := s2.Bounds()
	require.True(t, ok)
	assert.Equal(t, []int{-1, 0}, lo)
	assert.Equal(t, []int{0, 1}, hi)
}

func TestRunAndRegistry(t *testing.T) {
	seed, err := FromLines(glider, 3)
	require.NoError(t, err)
	nb, _ := NewNeighbors(3)
	res, err := evolve.New[core.Coord, State](nb, Rule{}, quiet()).
		Run(context.Background(), seed, evolve.FixedIterations{N: 6})
	require.NoError(t, err)
	assert.Equal(t, 112, res.Count)
	assert.Equal(t, 5, seed.Count(), "seed must be left untouched")

	sim, err := core.New(Name, map[string]string{"dims": "4", "generations": "1"}, glider)
	require.NoError(t, err)
	for !sim.Done() {
		sim.Step()
	}
	assert.Equal(t, 29, sim.Count())

	_, err = core.New(Name, map[string]string{"dims": "1"}, glider)
	assert.ErrorIs(t, err, core.ErrConfig)
}
