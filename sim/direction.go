package sim

import (
	"fmt"
	"unicode"
)

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta returns the (dx, dy) unit vector for the direction.
// Up decreases y and Down increases it, matching a top-left origin.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	default:
		return "R"
	}
}

// Name returns the direction spelled out, for user-facing messages.
func (d Direction) Name() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Right"
	}
}

// ParseMoves converts a movement string into a direction sequence.
// Parsing is case-insensitive and skips whitespace; any other rune
// fails the whole parse before any simulation step runs.
func ParseMoves(s string) ([]Direction, error) {
	moves := make([]Direction, 0, len(s))
	for _, r := range s {
		switch unicode.ToUpper(r) {
		case 'U':
			moves = append(moves, Up)
		case 'D':
			moves = append(moves, Down)
		case 'L':
			moves = append(moves, Left)
		case 'R':
			moves = append(moves, Right)
		default:
			if unicode.IsSpace(r) {
				continue
			}
			return nil, fmt.Errorf("%w: invalid movement character %q", ErrConfiguration, r)
		}
	}
	return moves, nil
}
