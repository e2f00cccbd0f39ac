package spread

import (
	"math"
	"sort"

	"blight/internal/core"
)

// Totals summarizes the compartment state of the whole grid at one step.
type Totals struct {
	Step        int
	Susceptible int
	Exposed     int
	Infected    int
	Diseased    int
	Dead        int
	Outside     int
}

// World wires the spread engine to a self-contained scenario: it owns the
// compartment grids, the weather and temperature fields, the movement
// schedule and the year accounting, and advances everything one step at a
// time.
type World struct {
	cfg Config

	rows, cols int

	sim    *Simulation
	kernel *RadialKernel

	susceptible *core.IntGrid
	infected    *core.IntGrid
	diseased    *core.IntGrid
	totalPlants *core.IntGrid
	dispersers  *core.IntGrid
	exposed     *ExposedCohorts

	mortality *MortalityTracker
	dead      *core.IntGrid

	weatherCoefficient *core.FloatGrid
	temperature        *core.FloatGrid

	movements  []Movement
	moveCursor int

	outside []Point

	step    int
	display []uint8
}

// NewWorld returns a spread world configured from the provided options.
// Configuration errors (unknown variants, non-positive resolution,
// negative rates) are reported here, before any stepping happens.
func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		cfg:  cfg,
		rows: cfg.Rows,
		cols: cfg.Cols,
	}
	w.susceptible = core.NewIntGrid(cfg.Rows, cfg.Cols)
	w.infected = core.NewIntGrid(cfg.Rows, cfg.Cols)
	w.diseased = core.NewIntGrid(cfg.Rows, cfg.Cols)
	w.totalPlants = core.NewIntGrid(cfg.Rows, cfg.Cols)
	w.dispersers = core.NewIntGrid(cfg.Rows, cfg.Cols)
	w.dead = core.NewIntGrid(cfg.Rows, cfg.Cols)
	w.weatherCoefficient = core.NewFloatGrid(cfg.Rows, cfg.Cols)
	w.temperature = core.NewFloatGrid(cfg.Rows, cfg.Cols)
	w.display = make([]uint8, cfg.Rows*cfg.Cols)
	if err := w.rebuild(cfg.Seed); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *World) rebuild(seed int64) error {
	p := w.cfg.Params
	sim, err := NewSimulation(seed, w.rows, w.cols, p.Model, p.LatencyPeriod)
	if err != nil {
		return err
	}
	kernel, err := NewRadialKernel(p.Kernel, p.DistanceScale, p.LongDistanceScale,
		p.ShortDistanceFraction, p.WindDirection, p.WindKappa, w.cfg.EWRes, w.cfg.NSRes)
	if err != nil {
		return err
	}
	tracker, err := NewMortalityTracker(p.MortalityRate, p.FirstMortalityYear, w.rows, w.cols)
	if err != nil {
		return err
	}
	w.sim = sim
	w.kernel = kernel
	w.mortality = tracker
	if p.Model.HasLatent() {
		w.exposed = NewExposedCohorts(p.LatencyPeriod, w.rows, w.cols)
	} else {
		w.exposed = nil
	}
	return nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "spread" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cols, H: w.rows} }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Susceptible exposes the susceptible compartment.
func (w *World) Susceptible() *core.IntGrid { return w.susceptible }

// Infected exposes the infected compartment.
func (w *World) Infected() *core.IntGrid { return w.infected }

// TotalPlants exposes the host totals.
func (w *World) TotalPlants() *core.IntGrid { return w.totalPlants }

// WeatherCoefficient exposes the per-cell weather multiplier.
func (w *World) WeatherCoefficient() *core.FloatGrid { return w.weatherCoefficient }

// Temperature exposes the temperature field used for lethal removal.
func (w *World) Temperature() *core.FloatGrid { return w.temperature }

// OutsideDispersers returns the dispersers that left the grid so far.
func (w *World) OutsideDispersers() []Point { return w.outside }

// SetMovements installs the host relocation schedule. The list is sorted
// by step so the per-step scan can stop early.
func (w *World) SetMovements(movements []Movement) {
	sorted := append([]Movement(nil), movements...)
	sort.SliceStable(sorted, func(a, b int) bool { return sorted[a].Step < sorted[b].Step })
	w.movements = sorted
	w.moveCursor = 0
}

// Reset prepares the initial world using deterministic randomness. A seed
// of zero falls back to the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	if err := w.rebuild(effective); err != nil {
		// Config was validated at construction; rebuilding cannot fail.
		panic(err)
	}

	p := w.cfg.Params
	w.totalPlants.Fill(p.HostDensity)
	w.susceptible.Fill(p.HostDensity)
	w.infected.Zero()
	w.diseased.Zero()
	w.dispersers.Zero()
	w.dead.Zero()
	w.outside = nil
	w.moveCursor = 0
	w.step = 0

	w.buildWeatherField()
	w.buildTemperatureField()
	w.seedOutbreaks()
	w.rebuildDisplay()
}

// seedOutbreaks converts a few random cells' susceptible hosts into the
// initial infections, drawing placement from the simulation stream so the
// whole run replays from one seed.
func (w *World) seedOutbreaks() {
	p := w.cfg.Params
	rng := w.sim.RNG()
	for n := 0; n < p.InitialOutbreaks; n++ {
		i := rng.IntN(w.rows)
		j := rng.IntN(w.cols)
		count := p.InitialInfected
		if avail := w.susceptible.At(i, j); count > avail {
			count = avail
		}
		w.susceptible.Add(i, j, -count)
		w.infected.Add(i, j, count)
		w.mortality.Current().Add(i, j, count)
	}
}

// buildWeatherField synthesizes a smooth west-east suitability gradient in
// [0, 1]. Scenario drivers overwrite it with measured coefficients.
func (w *World) buildWeatherField() {
	for i := 0; i < w.rows; i++ {
		for j := 0; j < w.cols; j++ {
			v := 0.5 + 0.5*math.Sin(float64(j)/float64(w.cols)*math.Pi)
			w.weatherCoefficient.Set(i, j, v)
		}
	}
}

// buildTemperatureField synthesizes a north-south winter gradient spanning
// the lethal threshold, so removal bites in the colder half of the domain.
func (w *World) buildTemperatureField() {
	lethal := w.cfg.Params.LethalTemperature
	for i := 0; i < w.rows; i++ {
		t := lethal - 5 + 10*float64(i)/float64(w.rows)
		for j := 0; j < w.cols; j++ {
			w.temperature.Set(i, j, t)
		}
	}
}

// Year returns the simulation year of the current step.
func (w *World) Year() int { return w.step / w.cfg.Params.StepsPerYear }

// StepIndex returns the number of completed steps.
func (w *World) StepIndex() int { return w.step }

// Step advances the world by one step: lethal removal (in the configured
// winter step), propagule generation, dispersal with latency advance,
// mortality at year boundaries, then scheduled movements. The order is
// fixed; it determines which random draws belong to which event.
func (w *World) Step() {
	p := w.cfg.Params
	stepInYear := w.step % p.StepsPerYear

	if p.LethalStep >= 0 && stepInYear == p.LethalStep {
		w.sim.Remove(w.infected, w.susceptible, w.exposed, w.diseased, w.temperature, p.LethalTemperature)
	}

	w.sim.Generate(w.dispersers, w.infected, p.UseWeather, w.weatherCoefficient, p.ReproductiveRate)
	w.sim.DisperseAndInfect(w.dispersers, w.susceptible, w.exposed, w.infected,
		w.mortality.Current(), w.totalPlants, &w.outside, p.UseWeather, w.weatherCoefficient, w.kernel)

	if stepInYear == p.StepsPerYear-1 {
		year := w.Year()
		w.mortality.Apply(year, w.infected, w.dead)
		w.mortality.AdvanceYear(year + 1)
	}

	w.moveCursor = w.sim.ApplyMovements(w.infected, w.susceptible, w.totalPlants, w.step, w.moveCursor, w.movements)

	w.step++
	w.rebuildDisplay()
}

// Totals sums the compartments across the grid.
func (w *World) Totals() Totals {
	t := Totals{
		Step:        w.step,
		Susceptible: w.susceptible.Sum(),
		Infected:    w.infected.Sum(),
		Diseased:    w.diseased.Sum(),
		Dead:        w.dead.Sum(),
		Outside:     len(w.outside),
	}
	if w.exposed != nil {
		t.Exposed = w.exposed.Sum()
	}
	return t
}

func init() {
	core.Register("spread", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		w, err := NewWorld(c)
		if err != nil {
			// FromMap only emits validated values.
			panic(err)
		}
		return w
	})
}
