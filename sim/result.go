package sim

import "strings"

// Result is the final snapshot of a run, built exactly once when the
// turn queue drains and never mutated afterwards.
type Result struct {
	Zombies            []*Zombie   // full roster, creation order
	SurvivingCreatures []*Creature // still alive, placement order
}

// FormatOutput renders the canonical two-line summary.
func (r *Result) FormatOutput() string {
	var sb strings.Builder

	sb.WriteString("zombies' positions:")
	if len(r.Zombies) == 0 {
		sb.WriteString(" none")
	} else {
		for _, z := range r.Zombies {
			sb.WriteString(" ")
			sb.WriteString(z.Position.String())
		}
	}

	sb.WriteString("\ncreatures' positions:")
	if len(r.SurvivingCreatures) == 0 {
		sb.WriteString(" none")
	} else {
		for _, c := range r.SurvivingCreatures {
			sb.WriteString(" ")
			sb.WriteString(c.Position().String())
		}
	}

	return sb.String()
}
