package sim

import "errors"

// ErrConfiguration marks invalid simulation input: a bad world size,
// unparseable coordinate text, or an illegal movement character.
// All construction and parse errors wrap it so callers can test with
// errors.Is.
var ErrConfiguration = errors.New("invalid configuration")

// ErrSimulationDone is returned by Run when the turn queue has already
// been drained. A Simulation instance is single-use.
var ErrSimulationDone = errors.New("simulation already ran")
