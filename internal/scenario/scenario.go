// Package scenario loads spread scenarios from YAML files and turns them
// into validated world configurations plus movement schedules and output
// settings.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"blight/internal/sims/spread"
)

// MovementSpec is one scheduled host relocation in a scenario file.
type MovementSpec struct {
	RowFrom int `yaml:"row_from"`
	ColFrom int `yaml:"col_from"`
	RowTo   int `yaml:"row_to"`
	ColTo   int `yaml:"col_to"`
	Hosts   int `yaml:"hosts"`
	Step    int `yaml:"step"`
}

// OutputSpec names the artifacts a run should produce. Empty paths skip
// the corresponding output.
type OutputSpec struct {
	Stats      string `yaml:"stats"` // CSV of per-step totals
	Chart      string `yaml:"chart"` // PNG time series
	Video      string `yaml:"video"` // MJPEG animation
	FrameScale int    `yaml:"frame_scale"`
	FPS        int    `yaml:"fps"`
}

// Scenario is the YAML shape of one simulation setup.
type Scenario struct {
	Name string `yaml:"name"`
	Seed int64  `yaml:"seed"`

	Rows  int     `yaml:"rows"`
	Cols  int     `yaml:"cols"`
	EWRes float64 `yaml:"ew_resolution"`
	NSRes float64 `yaml:"ns_resolution"`

	Model         string `yaml:"model"`
	LatencyPeriod int    `yaml:"latency_period"`

	ReproductiveRate float64 `yaml:"reproductive_rate"`

	Kernel                string  `yaml:"kernel"`
	DistanceScale         float64 `yaml:"distance_scale"`
	LongDistanceScale     float64 `yaml:"long_distance_scale"`
	ShortDistanceFraction float64 `yaml:"short_distance_fraction"`
	WindDirection         float64 `yaml:"wind_direction"`
	WindKappa             float64 `yaml:"wind_kappa"`

	UseWeather bool `yaml:"use_weather"`

	LethalTemperature float64 `yaml:"lethal_temperature"`
	LethalStep        int     `yaml:"lethal_step"`

	MortalityRate      float64 `yaml:"mortality_rate"`
	FirstMortalityYear int     `yaml:"first_mortality_year"`

	StepsPerYear int `yaml:"steps_per_year"`

	HostDensity      int `yaml:"host_density"`
	InitialOutbreaks int `yaml:"initial_outbreaks"`
	InitialInfected  int `yaml:"initial_infected"`

	Steps int `yaml:"steps"`

	Movements []MovementSpec `yaml:"movements"`
	Output    OutputSpec     `yaml:"output"`
}

// Default returns a scenario mirroring spread.DefaultConfig with a one
// year run and no outputs.
func Default() *Scenario {
	base := spread.DefaultConfig()
	p := base.Params
	return &Scenario{
		Name:                  "default",
		Seed:                  base.Seed,
		Rows:                  base.Rows,
		Cols:                  base.Cols,
		EWRes:                 base.EWRes,
		NSRes:                 base.NSRes,
		Model:                 p.Model.String(),
		LatencyPeriod:         p.LatencyPeriod,
		ReproductiveRate:      p.ReproductiveRate,
		Kernel:                p.Kernel.String(),
		DistanceScale:         p.DistanceScale,
		LongDistanceScale:     p.LongDistanceScale,
		ShortDistanceFraction: p.ShortDistanceFraction,
		WindDirection:         p.WindDirection,
		WindKappa:             p.WindKappa,
		UseWeather:            p.UseWeather,
		LethalTemperature:     p.LethalTemperature,
		LethalStep:            p.LethalStep,
		MortalityRate:         p.MortalityRate,
		FirstMortalityYear:    p.FirstMortalityYear,
		StepsPerYear:          p.StepsPerYear,
		HostDensity:           p.HostDensity,
		InitialOutbreaks:      p.InitialOutbreaks,
		InitialInfected:       p.InitialInfected,
		Steps:                 p.StepsPerYear,
		Output: OutputSpec{
			FrameScale: 2,
			FPS:        10,
		},
	}
}

// Load reads and validates a scenario file. Fields absent from the file
// keep their defaults.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if _, _, err := s.Build(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Build converts the scenario into a validated spread config and movement
// list. Unknown model or kernel names are reported here.
func (s *Scenario) Build() (spread.Config, []spread.Movement, error) {
	var cfg spread.Config

	model, err := spread.ModelTypeFromString(s.Model)
	if err != nil {
		return cfg, nil, err
	}
	kernel, err := spread.KernelTypeFromString(s.Kernel)
	if err != nil {
		return cfg, nil, err
	}

	cfg = spread.Config{
		Rows:  s.Rows,
		Cols:  s.Cols,
		EWRes: s.EWRes,
		NSRes: s.NSRes,
		Seed:  s.Seed,
		Params: spread.Params{
			Model:                 model,
			LatencyPeriod:         s.LatencyPeriod,
			ReproductiveRate:      s.ReproductiveRate,
			Kernel:                kernel,
			DistanceScale:         s.DistanceScale,
			LongDistanceScale:     s.LongDistanceScale,
			ShortDistanceFraction: s.ShortDistanceFraction,
			WindDirection:         s.WindDirection,
			WindKappa:             s.WindKappa,
			UseWeather:            s.UseWeather,
			LethalTemperature:     s.LethalTemperature,
			LethalStep:            s.LethalStep,
			MortalityRate:         s.MortalityRate,
			FirstMortalityYear:    s.FirstMortalityYear,
			StepsPerYear:          s.StepsPerYear,
			HostDensity:           s.HostDensity,
			InitialOutbreaks:      s.InitialOutbreaks,
			InitialInfected:       s.InitialInfected,
		},
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	if s.Steps <= 0 {
		return cfg, nil, fmt.Errorf("steps must be positive, got %d", s.Steps)
	}

	movements := make([]spread.Movement, 0, len(s.Movements))
	for i, m := range s.Movements {
		if m.RowFrom < 0 || m.RowFrom >= s.Rows || m.ColFrom < 0 || m.ColFrom >= s.Cols ||
			m.RowTo < 0 || m.RowTo >= s.Rows || m.ColTo < 0 || m.ColTo >= s.Cols {
			return cfg, nil, fmt.Errorf("movement %d references a cell outside the %dx%d grid", i, s.Rows, s.Cols)
		}
		if m.Hosts < 0 || m.Step < 0 {
			return cfg, nil, fmt.Errorf("movement %d has negative hosts or step", i)
		}
		movements = append(movements, spread.Movement{
			RowFrom: m.RowFrom,
			ColFrom: m.ColFrom,
			RowTo:   m.RowTo,
			ColTo:   m.ColTo,
			Hosts:   m.Hosts,
			Step:    m.Step,
		})
	}

	return cfg, movements, nil
}

// World constructs a ready-to-run world from the scenario.
func (s *Scenario) World() (*spread.World, error) {
	cfg, movements, err := s.Build()
	if err != nil {
		return nil, err
	}
	w, err := spread.NewWorld(cfg)
	if err != nil {
		return nil, err
	}
	w.Reset(0)
	w.SetMovements(movements)
	return w, nil
}
