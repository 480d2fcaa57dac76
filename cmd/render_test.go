package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/outbreak-sim/outbreak-sim/sim"
)

func TestDrawMap_MarksEntities(t *testing.T) {
	// GIVEN one zombie, one creature and empty cells
	out := DrawMap(3,
		[]sim.Position{{X: 0, Y: 0}},
		[]sim.Position{{X: 2, Y: 1}},
		"Test Map:",
	)

	assert.Contains(t, out, "Test Map:")
	assert.Contains(t, out, " Z")
	assert.Contains(t, out, " C")
	assert.Contains(t, out, "·")
	assert.Contains(t, out, "Legend:")
}

func TestDrawMap_StackedZombies(t *testing.T) {
	// GIVEN two zombies sharing a cell
	out := DrawMap(2,
		[]sim.Position{{X: 1, Y: 1}, {X: 1, Y: 1}},
		nil,
		"",
	)

	// THEN the cell shows the count
	assert.Contains(t, out, "Z2")
}

func TestDrawMap_ZombieOnCreature(t *testing.T) {
	out := DrawMap(2,
		[]sim.Position{{X: 0, Y: 0}},
		[]sim.Position{{X: 0, Y: 0}},
		"",
	)
	assert.Contains(t, out, "ZC")
}

func TestDrawResult_UsesFinalPositions(t *testing.T) {
	// GIVEN a finished run
	world, err := sim.NewWorld(4)
	require.NoError(t, err)
	moves, err := sim.ParseMoves("R")
	require.NoError(t, err)
	s := sim.NewSimulation(world, sim.Position{X: 0, Y: 0}, []sim.Position{{X: 3, Y: 3}}, moves, nil)
	result, err := s.Run()
	require.NoError(t, err)

	out := DrawResult(4, result)
	require.True(t, strings.HasPrefix(out, "Final State:"))
	assert.Contains(t, out, " Z")
	assert.Contains(t, out, " C")
}
