package sim

import "fmt"

// Zombie is a mobile entity. It executes the shared movement sequence
// on its turn and converts creatures it lands on. Zombies are created
// once, mutated in place, and never removed from the roster.
type Zombie struct {
	ID       int
	Position Position
	HasMoved bool
}

// MoveTo overwrites the zombie's position. The caller guarantees the
// position is already wrapped onto the grid.
func (z *Zombie) MoveTo(p Position) {
	z.Position = p
}

func (z *Zombie) String() string {
	return fmt.Sprintf("zombie %d", z.ID)
}

// CreatureBehavior customizes how a creature reacts to the outbreak.
// The default behavior is always infectable with no-op hooks; supply
// an alternate implementation to model immunity or side effects.
type CreatureBehavior interface {
	// CanBeInfected reports whether the creature can be converted.
	CanBeInfected() bool
	// OnZombieNearby fires when a zombie steps onto an adjacent cell.
	OnZombieNearby(zombiePos Position)
	// OnInfected fires just before the creature is marked dead.
	OnInfected()
}

// BasicBehavior is the default creature behavior: paralyzed with fear,
// never reacts, always infectable.
type BasicBehavior struct{}

func (BasicBehavior) CanBeInfected() bool     { return true }
func (BasicBehavior) OnZombieNearby(Position) {}
func (BasicBehavior) OnInfected()             {}

// Creature is a stationary entity that can be converted into a zombie
// exactly once. Its position never changes after placement.
type Creature struct {
	position Position
	alive    bool
	behavior CreatureBehavior
}

// NewCreature places a creature with the default behavior.
func NewCreature(p Position) *Creature {
	return NewCreatureWithBehavior(p, BasicBehavior{})
}

// NewCreatureWithBehavior places a creature with a custom behavior.
// A nil behavior falls back to the default.
func NewCreatureWithBehavior(p Position, b CreatureBehavior) *Creature {
	if b == nil {
		b = BasicBehavior{}
	}
	return &Creature{position: p, alive: true, behavior: b}
}

// Position returns where the creature was placed.
func (c *Creature) Position() Position {
	return c.position
}

// Alive reports whether the creature has not been infected yet.
func (c *Creature) Alive() bool {
	return c.alive
}

// Infect attempts to convert the creature. This is the single gate for
// consumption: it returns false when the creature is already dead or
// its behavior declines, otherwise it fires OnInfected, marks the
// creature dead and returns true. A dead creature can never be
// infected again.
func (c *Creature) Infect() bool {
	if !c.alive || !c.behavior.CanBeInfected() {
		return false
	}
	c.behavior.OnInfected()
	c.alive = false
	return true
}

// NotifyZombieNearby forwards a proximity notification to the
// creature's behavior.
func (c *Creature) NotifyZombieNearby(zombiePos Position) {
	c.behavior.OnZombieNearby(zombiePos)
}
