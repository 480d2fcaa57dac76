package cmd

import (
	"fmt"
	"strings"

	sim "github.com/outbreak-sim/outbreak-sim/sim"
)

// DrawMap renders an ASCII view of the world.
//
// Legend:
//
//	Z  = zombie (Zn when n share a cell)
//	C  = creature
//	·  = empty cell
func DrawMap(size int, zombiePositions []sim.Position, creaturePositions []sim.Position, title string) string {
	zombieCounts := make(map[sim.Position]int)
	for _, p := range zombiePositions {
		zombieCounts[p]++
	}
	creatureSet := make(map[sim.Position]bool)
	for _, p := range creaturePositions {
		creatureSet[p] = true
	}

	var lines []string
	if title != "" {
		lines = append(lines, title)
	}

	var header strings.Builder
	header.WriteString("   ")
	for x := 0; x < size; x++ {
		header.WriteString(fmt.Sprintf("%2d ", x))
	}
	lines = append(lines, strings.TrimRight(header.String(), " "))

	lines = append(lines, "  ┌"+strings.Repeat("───", size)+"┐")

	for y := 0; y < size; y++ {
		cells := make([]string, 0, size)
		for x := 0; x < size; x++ {
			p := sim.Position{X: x, Y: y}
			zombies := zombieCounts[p]
			creature := creatureSet[p]

			var cell string
			switch {
			case zombies > 0 && creature:
				cell = "ZC"
			case zombies > 1:
				cell = fmt.Sprintf("Z%d", zombies)
			case zombies == 1:
				cell = " Z"
			case creature:
				cell = " C"
			default:
				cell = " ·"
			}
			cells = append(cells, cell)
		}
		lines = append(lines, fmt.Sprintf("%2d │", y)+strings.Join(cells, " ")+" │")
	}

	lines = append(lines, "  └"+strings.Repeat("───", size)+"┘")
	lines = append(lines, "")
	lines = append(lines, "  Legend: Z=Zombie  C=Creature  ·=Empty")

	return strings.Join(lines, "\n")
}

// DrawResult renders the final state of a finished run.
func DrawResult(size int, result *sim.Result) string {
	zombies := make([]sim.Position, 0, len(result.Zombies))
	for _, z := range result.Zombies {
		zombies = append(zombies, z.Position)
	}
	creatures := make([]sim.Position, 0, len(result.SurvivingCreatures))
	for _, c := range result.SurvivingCreatures {
		creatures = append(creatures, c.Position())
	}
	return DrawMap(size, zombies, creatures, "Final State:")
}
