package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/outbreak-sim/outbreak-sim/sim"
)

func interactiveConfig(t *testing.T) sim.Config {
	t.Helper()
	cfg, err := sim.ParseConfig(4, "0,0", "1,0 2,0", "")
	require.NoError(t, err)
	return cfg
}

func TestGameState_Step_MovesEveryZombie(t *testing.T) {
	// GIVEN a fresh interactive game
	g, err := newGameState(interactiveConfig(t))
	require.NoError(t, err)

	// WHEN the player steps right onto a creature
	g.step(sim.Right)

	// THEN the zombie moved and the infected creature joined in place
	require.Len(t, g.zombies, 2)
	assert.Equal(t, sim.Position{X: 1, Y: 0}, g.zombies[0])
	assert.Equal(t, sim.Position{X: 1, Y: 0}, g.zombies[1])
	assert.Len(t, g.creatures, 1)
	assert.Contains(t, g.message, "infected 1 creature")
}

func TestGameState_Step_AllZombiesShareDirection(t *testing.T) {
	g, err := newGameState(interactiveConfig(t))
	require.NoError(t, err)

	// two steps right: the pack sweeps over both creatures
	g.step(sim.Right)
	g.step(sim.Right)

	require.Len(t, g.zombies, 3)
	assert.Empty(t, g.creatures)
	assert.Equal(t, []sim.Direction{sim.Right, sim.Right}, g.history)
}

func TestGameState_Step_WrapsAtEdges(t *testing.T) {
	cfg, err := sim.ParseConfig(4, "3,0", "", "")
	require.NoError(t, err)
	g, err := newGameState(cfg)
	require.NoError(t, err)

	g.step(sim.Right)

	assert.Equal(t, sim.Position{X: 0, Y: 0}, g.zombies[0])
}

func TestGameState_Render_ShowsVictoryBanner(t *testing.T) {
	g, err := newGameState(interactiveConfig(t))
	require.NoError(t, err)

	g.step(sim.Right)
	g.step(sim.Right)

	assert.Contains(t, g.render(), "ALL CREATURES INFECTED")
}

func TestGameState_Summary(t *testing.T) {
	g, err := newGameState(interactiveConfig(t))
	require.NoError(t, err)
	g.step(sim.Right)
	g.step(sim.Down)

	out := g.summary()
	assert.Contains(t, out, "Total moves: 2")
	assert.Contains(t, out, "Move sequence: RD")
}
