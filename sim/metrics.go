// Tracks run-wide counters for final reporting.

package sim

import "fmt"

// Metrics aggregates statistics about a simulation run for final
// reporting. Useful for evaluating outbreak behavior and debugging.
type Metrics struct {
	Moves        int // movement steps executed across all zombies
	Infections   int // creatures converted into zombies
	TotalZombies int // roster size when the queue drained
	Survivors    int // creatures still alive at the end
}

// NewMetrics creates zeroed counters.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Movement steps      : %d\n", m.Moves)
	fmt.Printf("Infections          : %d\n", m.Infections)
	fmt.Printf("Total zombies       : %d\n", m.TotalZombies)
	fmt.Printf("Surviving creatures : %d\n", m.Survivors)
}
