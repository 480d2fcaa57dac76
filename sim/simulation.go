package sim

import "github.com/sirupsen/logrus"

// Simulation runs the outbreak on a toroidal world. Zombies take
// turns in infection order: each one executes the full shared
// movement sequence before the next queued zombie moves, and every
// infected creature joins the back of the queue as a new zombie.
//
// A Simulation owns its queue and tracker exclusively for the
// duration of one run; it is not safe to mutate entities from outside
// while Run is in progress, and there is no need to: Run executes to
// completion without yielding.
type Simulation struct {
	world    *World
	moves    []Direction
	entities *EntityTracker
	queue    *TurnQueue
	handler  EventHandler
	metrics  *Metrics
	done     bool
}

// NewSimulation seeds the run with one zombie and places a creature
// with the default behavior at every listed position, in order.
// A creature sharing the seed zombie's cell is not infected by the
// coincidence; only an explicit move step infects. handler may be
// nil, in which case events are discarded.
func NewSimulation(world *World, zombieStart Position, creaturePositions []Position, moves []Direction, handler EventHandler) *Simulation {
	s := &Simulation{
		world:    world,
		moves:    moves,
		entities: NewEntityTracker(),
		queue:    &TurnQueue{},
		handler:  handler,
		metrics:  NewMetrics(),
	}
	first := s.entities.CreateZombieAt(zombieStart)
	s.queue.Enqueue(first)
	for _, p := range creaturePositions {
		s.entities.AddCreature(NewCreature(p))
	}
	return s
}

// NewSimulationFromConfig builds the world and the simulation from a
// validated configuration.
func NewSimulationFromConfig(cfg Config, handler EventHandler) (*Simulation, error) {
	world, err := NewWorld(cfg.WorldSize)
	if err != nil {
		return nil, err
	}
	return NewSimulation(world, cfg.ZombieStart, cfg.CreaturePositions, cfg.Moves, handler), nil
}

// PlaceCreature adds a custom-behavior creature before the run starts.
// Intended for immune or reactive creature variants; the standard
// constructor path places default creatures.
func (s *Simulation) PlaceCreature(c *Creature) {
	s.entities.AddCreature(c)
}

// Metrics returns the run counters.
func (s *Simulation) Metrics() *Metrics {
	return s.metrics
}

func (s *Simulation) emit(ev Event) {
	if s.handler != nil {
		s.handler(ev)
	}
}

var proximityOrder = [...]Direction{Up, Down, Left, Right}

// processZombie executes the shared movement sequence for one zombie.
func (s *Simulation) processZombie(z *Zombie) {
	for _, d := range s.moves {
		newPos := s.world.Move(z.Position, d)
		z.MoveTo(newPos)
		s.metrics.Moves++
		s.emit(ZombieMoved{ZombieID: z.ID, NewPosition: newPos})

		// warn creatures on adjacent cells before the infection check
		for _, nd := range proximityOrder {
			if c := s.entities.CreatureAt(s.world.Move(newPos, nd)); c != nil {
				c.NotifyZombieNearby(newPos)
			}
		}

		if c := s.entities.RemoveCreatureAt(newPos); c != nil {
			spawned := s.entities.CreateZombieAt(newPos)
			s.queue.Enqueue(spawned)
			s.metrics.Infections++
			s.emit(CreatureInfected{ZombieID: z.ID, Position: newPos, NewZombieID: spawned.ID})
		}
	}
	z.HasMoved = true
}

// Run drains the turn queue and returns the final snapshot: the full
// zombie roster in creation order and the creatures still alive in
// placement order. Every dequeue either ends a branch or enqueues at
// most one zombie per infected creature, and the live-creature count
// only decreases, so the queue always drains.
//
// A Simulation is single-use: a second call returns ErrSimulationDone.
func (s *Simulation) Run() (*Result, error) {
	if s.done {
		return nil, ErrSimulationDone
	}
	for s.queue.Len() > 0 {
		z := s.queue.Dequeue()
		logrus.Debugf("[turn] %s starts its movement sequence at %s", z, z.Position)
		s.processZombie(z)
	}
	s.done = true

	result := &Result{
		Zombies:            s.entities.Zombies(),
		SurvivingCreatures: s.entities.LivingCreatures(),
	}
	s.metrics.TotalZombies = s.entities.ZombieCount()
	s.metrics.Survivors = len(result.SurvivingCreatures)
	logrus.Debugf("[done] %d zombies, %d surviving creatures", s.metrics.TotalZombies, s.metrics.Survivors)
	return result, nil
}
