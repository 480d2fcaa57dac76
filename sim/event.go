package sim

import "github.com/sirupsen/logrus"

// Event is a notification emitted by the simulation while it runs.
// Events are immutable value records delivered synchronously, in
// emission order, to a single optional handler.
type Event interface {
	event()
}

// ZombieMoved is emitted after every movement step, including steps
// that leave the position unchanged on a 1x1 world.
type ZombieMoved struct {
	ZombieID    int      // the zombie that moved
	NewPosition Position // its position after the step
}

// CreatureInfected is emitted when a movement step lands on a living
// creature and converts it.
type CreatureInfected struct {
	ZombieID    int      // the zombie whose move caused the infection
	Position    Position // where the infection happened
	NewZombieID int      // the zombie the creature turned into
}

func (ZombieMoved) event()      {}
func (CreatureInfected) event() {}

// EventHandler consumes simulation events. The engine never recovers
// a handler panic: it propagates out of Run, leaving the simulation
// state as of the failed step.
type EventHandler func(Event)

// LogrusHandler returns an EventHandler that logs every event at Info
// level.
func LogrusHandler() EventHandler {
	return func(ev Event) {
		switch e := ev.(type) {
		case ZombieMoved:
			logrus.Infof("zombie %d moved to %s", e.ZombieID, e.NewPosition)
		case CreatureInfected:
			logrus.Infof("zombie %d infected creature at %s", e.ZombieID, e.Position)
		}
	}
}
