package cmd

import (
	"fmt"
	"strings"

	sim "github.com/outbreak-sim/outbreak-sim/sim"
)

// gameState tracks the live world for interactive play. Unlike the
// batch engine, every zombie steps once per keypress, all in the same
// direction, and infections add zombies on the spot.
type gameState struct {
	world     *sim.World
	size      int
	zombies   []sim.Position
	creatures map[sim.Position]bool
	history   []sim.Direction
	message   string
}

func newGameState(cfg sim.Config) (*gameState, error) {
	world, err := sim.NewWorld(cfg.WorldSize)
	if err != nil {
		return nil, err
	}
	g := &gameState{
		world:     world,
		size:      cfg.WorldSize,
		zombies:   []sim.Position{cfg.ZombieStart},
		creatures: make(map[sim.Position]bool),
	}
	for _, p := range cfg.CreaturePositions {
		g.creatures[p] = true
	}
	return g, nil
}

// step moves every zombie one cell in d and resolves infections.
// When two zombies land on the same creature the first one gets it.
func (g *gameState) step(d sim.Direction) {
	g.history = append(g.history, d)

	moved := make([]sim.Position, 0, len(g.zombies))
	var infected []sim.Position
	for _, p := range g.zombies {
		next := g.world.Move(p, d)
		moved = append(moved, next)
		if g.creatures[next] {
			delete(g.creatures, next)
			infected = append(infected, next)
		}
	}
	g.zombies = append(moved, infected...)

	g.message = fmt.Sprintf("Moved %s", d.Name())
	if len(infected) > 0 {
		g.message += fmt.Sprintf(" - infected %d creature(s)!", len(infected))
	}
}

func (g *gameState) creaturePositions() []sim.Position {
	positions := make([]sim.Position, 0, len(g.creatures))
	for p := range g.creatures {
		positions = append(positions, p)
	}
	return positions
}

// render builds the full interactive screen as text.
func (g *gameState) render() string {
	var lines []string
	lines = append(lines, strings.Repeat("=", 45))
	lines = append(lines, "  ZOMBIE OUTBREAK - Interactive Mode")
	lines = append(lines, strings.Repeat("=", 45))
	lines = append(lines, "")
	lines = append(lines, "  Controls: W=Up  A=Left  S=Down  D=Right")
	lines = append(lines, "            Q=Quit  R=Reset")
	lines = append(lines, "")
	lines = append(lines, DrawMap(g.size, g.zombies, g.creaturePositions(), ""))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  Zombies: %d  |  Creatures: %d", len(g.zombies), len(g.creatures)))

	recent := g.history
	if len(recent) > 20 {
		recent = recent[len(recent)-20:]
	}
	moves := make([]string, 0, len(recent))
	for _, d := range recent {
		moves = append(moves, d.String())
	}
	display := strings.Join(moves, "")
	if display == "" {
		display = "(none)"
	}
	lines = append(lines, fmt.Sprintf("  Moves: %s", display))

	if g.message != "" {
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("  >> %s", g.message))
	}
	if len(g.creatures) == 0 {
		lines = append(lines, "")
		lines = append(lines, "  *** ALL CREATURES INFECTED! ***")
	}

	return strings.Join(lines, "\n")
}

// summary is shown on stdout after the interactive session ends.
func (g *gameState) summary() string {
	moves := make([]string, 0, len(g.history))
	for _, d := range g.history {
		moves = append(moves, d.String())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Total moves: %d\n", len(g.history))
	fmt.Fprintf(&sb, "Move sequence: %s\n", strings.Join(moves, ""))
	fmt.Fprintf(&sb, "Final zombies: %d\n", len(g.zombies))
	fmt.Fprintf(&sb, "Surviving creatures: %d", len(g.creatures))
	return sb.String()
}
