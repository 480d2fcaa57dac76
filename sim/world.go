package sim

import "fmt"

// Position is an immutable 2D coordinate on the grid. It is comparable
// and used as a map key; wrapping onto the grid is the world's job,
// not the coordinate's.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// World is the toroidal grid the outbreak takes place on. Moving past
// one edge wraps to the opposite edge. Immutable after construction.
type World struct {
	size int
}

// NewWorld creates an NxN world. Sizes below 1 are rejected.
func NewWorld(size int) (*World, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: world size must be at least 1, got %d", ErrConfiguration, size)
	}
	return &World{size: size}, nil
}

// Size returns the world's edge length.
func (w *World) Size() int {
	return w.size
}

// Wrap maps a position onto [0,size) in both axes using floored
// modulo, so negative coordinates wrap to the far edge
// (e.g. size 4: (-1,0) wraps to (3,0)).
func (w *World) Wrap(p Position) Position {
	return Position{
		X: ((p.X % w.size) + w.size) % w.size,
		Y: ((p.Y % w.size) + w.size) % w.size,
	}
}

// Move applies the direction's unit delta to p and wraps the result.
func (w *World) Move(p Position, d Direction) Position {
	dx, dy := d.Delta()
	return w.Wrap(Position{X: p.X + dx, Y: p.Y + dy})
}
