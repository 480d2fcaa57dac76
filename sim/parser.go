// Input parsing utilities for simulation configuration.

package sim

import (
	"fmt"
	"regexp"
	"strconv"
)

// coordPattern accepts "x,y", "(x,y)" and "(x, y)" forms.
var coordPattern = regexp.MustCompile(`\(?\s*(\d+)\s*,\s*(\d+)\s*\)?`)

// ParsePosition parses a single coordinate from text.
func ParsePosition(text string) (Position, error) {
	m := coordPattern.FindStringSubmatch(text)
	if m == nil {
		return Position{}, fmt.Errorf("%w: cannot parse position from %q", ErrConfiguration, text)
	}
	x, _ := strconv.Atoi(m[1])
	y, _ := strconv.Atoi(m[2])
	return Position{X: x, Y: y}, nil
}

// ParsePositions extracts every coordinate found in text, in order.
// Lists may be separated by whitespace or semicolons; text without
// coordinates yields an empty list.
func ParsePositions(text string) []Position {
	matches := coordPattern.FindAllStringSubmatch(text, -1)
	positions := make([]Position, 0, len(matches))
	for _, m := range matches {
		x, _ := strconv.Atoi(m[1])
		y, _ := strconv.Atoi(m[2])
		positions = append(positions, Position{X: x, Y: y})
	}
	return positions
}

// ParseConfig assembles a validated Config from raw text inputs.
// Any failure aborts the whole parse before a simulation is built.
func ParseConfig(size int, zombie string, creatures string, moves string) (Config, error) {
	if size < 1 {
		return Config{}, fmt.Errorf("%w: world size must be at least 1, got %d", ErrConfiguration, size)
	}
	start, err := ParsePosition(zombie)
	if err != nil {
		return Config{}, err
	}
	sequence, err := ParseMoves(moves)
	if err != nil {
		return Config{}, err
	}
	return Config{
		WorldSize:         size,
		ZombieStart:       start,
		CreaturePositions: ParsePositions(creatures),
		Moves:             sequence,
	}, nil
}
