package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"cellsim/internal/core"
)

func TestSweepCubes(t *testing.T) {
	defer goleak.VerifyNone(t)

	sets, err := scenarios("3, 4", 6, false)
	require.NoError(t, err)
	require.Len(t, sets, 2)

	results := sweep(sets, []string{".#.", "..#", "###"}, 4)
	require.Len(t, results, 2)
	for _, r := range results {
		require.NoError(t, r.err)
		assert.Equal(t, 6, r.generations)
	}
	assert.Equal(t, 112, results[0].count)
	assert.Equal(t, 848, results[1].count)
	assert.Equal(t, "cubes dims=3 generations=6 workers=1", results[0].scenario.String())
}

func TestSweepReportsConfigErrors(t *testing.T) {
	sets, err := scenarios("", 1, true)
	require.NoError(t, err)
	require.Len(t, sets, 2)

	// Ragged rows are not a valid seating layout.
	results := sweep(sets, []string{"#.", "###"}, 2)
	for _, r := range results {
		assert.ErrorIs(t, r.err, core.ErrConfig)
	}

	_, err = scenarios("3,x", 1, false)
	assert.Error(t, err)
}
