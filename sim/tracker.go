package sim

// EntityTracker owns every zombie and creature in a run and indexes
// living creatures by position for O(1) infection lookup. The index
// only ever holds live creatures: once a creature dies it is removed,
// so a second zombie arriving at the same cell simply misses.
type EntityTracker struct {
	zombies   []*Zombie
	creatures []*Creature
	byPos     map[Position]*Creature
}

// NewEntityTracker creates an empty tracker.
func NewEntityTracker() *EntityTracker {
	return &EntityTracker{byPos: make(map[Position]*Creature)}
}

// AddCreature registers a creature and indexes its position.
func (t *EntityTracker) AddCreature(c *Creature) {
	t.creatures = append(t.creatures, c)
	t.byPos[c.Position()] = c
}

// CreatureAt returns the living creature at p, if any.
func (t *EntityTracker) CreatureAt(p Position) *Creature {
	if c, ok := t.byPos[p]; ok && c.Alive() {
		return c
	}
	return nil
}

// RemoveCreatureAt infects and removes the creature at p. It returns
// nil both when the cell is empty and when Infect declines, covering
// dead and immune creatures alike.
func (t *EntityTracker) RemoveCreatureAt(p Position) *Creature {
	c, ok := t.byPos[p]
	if !ok || !c.Infect() {
		return nil
	}
	delete(t.byPos, p)
	return c
}

// CreateZombieAt allocates the next sequential zombie ID and appends
// the new zombie to the roster.
func (t *EntityTracker) CreateZombieAt(p Position) *Zombie {
	z := &Zombie{ID: len(t.zombies), Position: p}
	t.zombies = append(t.zombies, z)
	return z
}

// Zombies returns the full roster in creation order.
func (t *EntityTracker) Zombies() []*Zombie {
	return t.zombies
}

// ZombieCount returns the roster size.
func (t *EntityTracker) ZombieCount() int {
	return len(t.zombies)
}

// LivingCreatures returns the surviving creatures in their original
// placement order.
func (t *EntityTracker) LivingCreatures() []*Creature {
	living := make([]*Creature, 0, len(t.creatures))
	for _, c := range t.creatures {
		if c.Alive() {
			living = append(living, c)
		}
	}
	return living
}
