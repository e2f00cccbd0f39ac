package spread

import (
	"fmt"

	"blight/internal/core"
)

// Point is a (row, col) pair, possibly outside the grid. Dispersers that
// leave the modeled area are reported as Points for caller-level accounting.
type Point struct {
	Row, Col int
}

// Simulation drives the spread mechanics over caller-owned grids. The
// timing of events (steps, years) is handled outside of it.
//
// One Simulation owns one seeded random stream; every stochastic operation
// draws from that stream in a fixed order, so a run is reproducible for a
// given seed and independent from any other instance.
type Simulation struct {
	rows, cols    int
	model         ModelType
	latencyPeriod int
	rng           *core.RNG
}

// NewSimulation creates a simulation over a rows x cols domain and seeds
// its random stream. The model variant is validated here; an unknown value
// is an error, not a default.
func NewSimulation(seed int64, rows, cols int, model ModelType, latencyPeriod int) (*Simulation, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", rows, cols)
	}
	if model > ModelSEID {
		return nil, fmt.Errorf("unknown model type value %d", model)
	}
	if latencyPeriod < 0 {
		return nil, fmt.Errorf("latency period must be non-negative, got %d", latencyPeriod)
	}
	if model.HasLatent() && latencyPeriod == 0 {
		return nil, fmt.Errorf("model %s requires a latency period of at least 1", model)
	}
	return &Simulation{
		rows:          rows,
		cols:          cols,
		model:         model,
		latencyPeriod: latencyPeriod,
		rng:           core.NewRNG(seed),
	}, nil
}

// Model returns the configured model variant.
func (s *Simulation) Model() ModelType { return s.model }

// RNG exposes the simulation's random stream for callers that need to
// interleave their own draws (e.g. outbreak seeding) deterministically.
func (s *Simulation) RNG() *core.RNG { return s.rng }

// Remove applies lethal-temperature removal: wherever temperature is below
// the threshold, hosts in infected (and exposed and diseased, for variants
// that have them) move back to susceptible and those compartments zero out.
// exposed and diseased may be nil for variants without those stages.
func (s *Simulation) Remove(infected, susceptible *core.IntGrid, exposed *ExposedCohorts, diseased *core.IntGrid, temperature *core.FloatGrid, lethalTemperature float64) {
	for i := 0; i < s.rows; i++ {
		for j := 0; j < s.cols; j++ {
			if temperature.At(i, j) >= lethalTemperature {
				continue
			}
			susceptible.Add(i, j, infected.At(i, j))
			infected.Set(i, j, 0)
			if s.model.HasLatent() && exposed != nil {
				for k := 0; k < exposed.Len(); k++ {
					cohort := exposed.Cohort(k)
					susceptible.Add(i, j, cohort.At(i, j))
					cohort.Set(i, j, 0)
				}
			}
			if s.model.HasDiseased() && diseased != nil {
				susceptible.Add(i, j, diseased.At(i, j))
				diseased.Set(i, j, 0)
			}
		}
	}
}

// Generate fills dispersers with the propagules produced at each cell. One
// Poisson draw is made per infectious host unit and the draws are summed;
// that per-unit sampling is deliberate, since it has a different variance
// than one draw from a pooled mean. The mean is the reproductive rate,
// scaled by the weather coefficient at the cell when weather is enabled.
func (s *Simulation) Generate(dispersers, infected *core.IntGrid, weather bool, weatherCoefficient *core.FloatGrid, reproductiveRate float64) {
	rng := s.rng.Source()
	for i := 0; i < s.rows; i++ {
		for j := 0; j < s.cols; j++ {
			hosts := infected.At(i, j)
			if hosts <= 0 {
				dispersers.Set(i, j, 0)
				continue
			}
			lambda := reproductiveRate
			if weather {
				lambda = reproductiveRate * weatherCoefficient.At(i, j)
			}
			fromCell := 0
			for k := 0; k < hosts; k++ {
				fromCell += poisson(rng, lambda)
			}
			dispersers.Set(i, j, fromCell)
		}
	}
}

// Disperse sends every generated propagule through the kernel and applies
// the establishment test at its target. Out-of-bounds targets are appended
// to outside and never touch grid state. Establishment probability is
// susceptible/total at the target (zero when total is zero), scaled by the
// weather coefficient at the source cell when weather is enabled. An
// established disperser moves one host from susceptible into target, and
// for non-latent models also into the current mortality cohort; latent
// models credit the cohort later, at latency advance.
func (s *Simulation) Disperse(dispersers, susceptible, target, mortalityCohort, totalPlants *core.IntGrid, outside *[]Point, weather bool, weatherCoefficient *core.FloatGrid, kernel DispersalKernel) {
	rng := s.rng.Source()
	for i := 0; i < s.rows; i++ {
		for j := 0; j < s.cols; j++ {
			count := dispersers.At(i, j)
			for k := 0; k < count; k++ {
				row, col := kernel.Next(rng, i, j)
				if !susceptible.In(row, col) {
					*outside = append(*outside, Point{Row: row, Col: col})
					continue
				}
				if susceptible.At(row, col) <= 0 {
					continue
				}
				probability := 0.0
				if total := totalPlants.At(row, col); total > 0 {
					probability = float64(susceptible.At(row, col)) / float64(total)
				}
				if weather {
					probability *= weatherCoefficient.At(i, j)
				}
				if rng.Float64() < probability {
					target.Add(row, col, 1)
					susceptible.Add(row, col, -1)
					if !s.model.HasLatent() {
						mortalityCohort.Add(row, col, 1)
					}
				}
			}
		}
	}
}

// Infect advances latency: once the cohort ring holds latencyPeriod+1
// cohorts, the oldest cohort's hosts move into infected and into the
// current mortality cohort, the slot is zeroed and the ring rotates. For
// models without a latent stage this is a no-op.
func (s *Simulation) Infect(exposed *ExposedCohorts, infected, mortalityCohort *core.IntGrid) {
	if !s.model.HasLatent() {
		return
	}
	if exposed == nil || exposed.Len() < s.latencyPeriod+1 {
		return
	}
	oldest := exposed.Oldest()
	infected.AddGrid(oldest)
	mortalityCohort.AddGrid(oldest)
	oldest.Zero()
	exposed.Rotate()
}

// DisperseAndInfect sequences dispersal and the latency advance for one
// step. Non-latent models disperse straight into infected; latent models
// disperse into the newest exposed cohort and then advance latency.
func (s *Simulation) DisperseAndInfect(dispersers, susceptible *core.IntGrid, exposed *ExposedCohorts, infected, mortalityCohort, totalPlants *core.IntGrid, outside *[]Point, weather bool, weatherCoefficient *core.FloatGrid, kernel DispersalKernel) {
	target := infected
	if s.model.HasLatent() {
		target = exposed.Newest()
	}
	s.Disperse(dispersers, susceptible, target, mortalityCohort, totalPlants, outside, weather, weatherCoefficient, kernel)
	if s.model.HasLatent() {
		s.Infect(exposed, infected, mortalityCohort)
	}
}
