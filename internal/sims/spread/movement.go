package spread

import "blight/internal/core"

// Movement relocates hosts from one cell to another at a scheduled step.
// Movement lists are expected to be sorted by Step ascending.
type Movement struct {
	RowFrom, ColFrom int
	RowTo, ColTo     int
	Hosts            int
	Step             int
}

// ApplyMovements processes every movement scheduled for the given step,
// scanning forward from cursor and stopping (without consuming) at the
// first entry scheduled later. The returned cursor resumes the scan on the
// next step.
//
// Requests for more hosts than the source holds are clipped to what is
// available. When the source has both infected and susceptible hosts, the
// infected share is a Poisson draw around movable * infected/total,
// clipped to availability; this mirrors the original scheme and is an
// approximation, not a provably unbiased split.
func (s *Simulation) ApplyMovements(infected, susceptible, totalPlants *core.IntGrid, step, cursor int, movements []Movement) int {
	rng := s.rng.Source()
	for index := cursor; index < len(movements); index++ {
		m := movements[index]
		if m.Step != step {
			return index
		}

		movable := m.Hosts
		if avail := totalPlants.At(m.RowFrom, m.ColFrom); movable > avail {
			movable = avail
		}

		infectedHere := infected.At(m.RowFrom, m.ColFrom)
		susceptibleHere := susceptible.At(m.RowFrom, m.ColFrom)

		infectedMoved := 0
		susceptibleMoved := 0
		switch {
		case infectedHere > 0 && susceptibleHere > 0:
			ratio := float64(infectedHere) / float64(totalPlants.At(m.RowFrom, m.ColFrom))
			mean := float64(movable) * ratio
			if mean > 0 {
				infectedMoved = poisson(rng, mean)
			}
			if infectedMoved > infectedHere {
				infectedMoved = infectedHere
			}
			if infectedMoved > movable {
				infectedMoved = movable
			}
			susceptibleMoved = movable - infectedMoved
			if susceptibleMoved > susceptibleHere {
				susceptibleMoved = susceptibleHere
			}
			// If susceptible availability capped the remainder, the
			// shortfall can only come from infected hosts.
			if leftover := movable - infectedMoved - susceptibleMoved; leftover > 0 {
				extra := infectedHere - infectedMoved
				if extra > leftover {
					extra = leftover
				}
				infectedMoved += extra
			}
		case infectedHere > 0:
			infectedMoved = movable
		case susceptibleHere > 0:
			susceptibleMoved = movable
		default:
			// Nothing to move.
			continue
		}

		moved := infectedMoved + susceptibleMoved
		infected.Add(m.RowFrom, m.ColFrom, -infectedMoved)
		susceptible.Add(m.RowFrom, m.ColFrom, -susceptibleMoved)
		totalPlants.Add(m.RowFrom, m.ColFrom, -moved)
		infected.Add(m.RowTo, m.ColTo, infectedMoved)
		susceptible.Add(m.RowTo, m.ColTo, susceptibleMoved)
		totalPlants.Add(m.RowTo, m.ColTo, moved)
	}
	return len(movements)
}
