package sim

// Config groups the validated inputs for one simulation run.
type Config struct {
	WorldSize         int         // N for an NxN toroidal world (must be >= 1)
	ZombieStart       Position    // seed zombie spawn position
	CreaturePositions []Position  // creature placements, order preserved
	Moves             []Direction // shared movement sequence
}
