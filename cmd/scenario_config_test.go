package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/outbreak-sim/outbreak-sim/sim"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGetScenarioConfig_LoadsNamedScenario(t *testing.T) {
	// GIVEN a presets file with the canonical example
	path := writeScenarioFile(t, `
scenarios:
  example:
    size: 4
    zombie: "3,1"
    creatures: "0,1 1,2 1,1"
    moves: "RDRU"
`)

	// WHEN the example scenario is loaded
	cfg, err := GetScenarioConfig(path, "example")
	require.NoError(t, err)

	// THEN the parsed config matches the preset
	assert.Equal(t, 4, cfg.WorldSize)
	assert.Equal(t, sim.Position{X: 3, Y: 1}, cfg.ZombieStart)
	assert.Len(t, cfg.CreaturePositions, 3)
	assert.Equal(t, []sim.Direction{sim.Right, sim.Down, sim.Right, sim.Up}, cfg.Moves)
}

func TestGetScenarioConfig_UnknownScenario(t *testing.T) {
	path := writeScenarioFile(t, `
scenarios:
  example:
    size: 4
    zombie: "0,0"
    creatures: ""
    moves: "R"
`)

	_, err := GetScenarioConfig(path, "missing")
	assert.ErrorContains(t, err, "not found")
}

func TestGetScenarioConfig_InvalidPresetValues(t *testing.T) {
	// GIVEN a preset with an illegal movement character
	path := writeScenarioFile(t, `
scenarios:
  broken:
    size: 4
    zombie: "0,0"
    creatures: ""
    moves: "RXD"
`)

	// THEN loading fails with a configuration error
	_, err := GetScenarioConfig(path, "broken")
	assert.ErrorIs(t, err, sim.ErrConfiguration)
}

func TestGetScenarioConfig_MissingFile(t *testing.T) {
	_, err := GetScenarioConfig(filepath.Join(t.TempDir(), "absent.yaml"), "example")
	assert.Error(t, err)
}
