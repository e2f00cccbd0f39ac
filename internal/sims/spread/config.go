package spread

import (
	"fmt"
	"strconv"
)

// ModelType selects which epidemiological compartments exist and in what
// order hosts move through them.
type ModelType uint8

const (
	// ModelSI is the two-compartment susceptible-infected model.
	ModelSI ModelType = iota
	// ModelSEI adds a latent (exposed) stage between S and I.
	ModelSEI
	// ModelSID adds a diseased compartment to the SI model.
	ModelSID
	// ModelSEID carries both the latent and the diseased stage.
	ModelSEID
)

// ModelTypeFromString maps a model name to its enum value. Unrecognized
// names are an error, never a silent default.
func ModelTypeFromString(text string) (ModelType, error) {
	switch text {
	case "SI", "susceptible-infected":
		return ModelSI, nil
	case "SEI", "susceptible-exposed-infected":
		return ModelSEI, nil
	case "SID", "susceptible-infected-diseased":
		return ModelSID, nil
	case "SEID", "susceptible-exposed-infected-diseased":
		return ModelSEID, nil
	}
	return 0, fmt.Errorf("unknown model type %q", text)
}

// HasLatent reports whether the model carries an exposed stage.
func (m ModelType) HasLatent() bool { return m == ModelSEI || m == ModelSEID }

// HasDiseased reports whether the model carries a diseased compartment.
func (m ModelType) HasDiseased() bool { return m == ModelSID || m == ModelSEID }

func (m ModelType) String() string {
	switch m {
	case ModelSI:
		return "SI"
	case ModelSEI:
		return "SEI"
	case ModelSID:
		return "SID"
	case ModelSEID:
		return "SEID"
	}
	return "unknown"
}

// KernelType selects the distance-sampling strategy of the dispersal kernel.
type KernelType uint8

const (
	// KernelCauchy draws distances from a single heavy-tailed Cauchy.
	KernelCauchy KernelType = iota
	// KernelCauchyMixture mixes a short-scale and a long-scale Cauchy,
	// choosing per propagule with a configured short-distance fraction.
	KernelCauchyMixture
)

// KernelTypeFromString maps a kernel name to its enum value.
func KernelTypeFromString(text string) (KernelType, error) {
	switch text {
	case "cauchy":
		return KernelCauchy, nil
	case "cauchy-mixture", "double-cauchy":
		return KernelCauchyMixture, nil
	}
	return 0, fmt.Errorf("unknown kernel type %q", text)
}

func (k KernelType) String() string {
	switch k {
	case KernelCauchy:
		return "cauchy"
	case KernelCauchyMixture:
		return "cauchy-mixture"
	}
	return "unknown"
}

// Params holds the tunable rates and kernel settings of the spread world.
type Params struct {
	Model         ModelType
	LatencyPeriod int

	ReproductiveRate float64

	Kernel                KernelType
	DistanceScale         float64
	LongDistanceScale     float64
	ShortDistanceFraction float64
	WindDirection         float64 // mean wind direction, degrees
	WindKappa             float64 // concentration; 0 means no wind bias

	UseWeather bool

	LethalTemperature float64
	LethalStep        int // step within the year when removal applies; -1 disables

	MortalityRate      float64
	FirstMortalityYear int // -1 disables mortality

	StepsPerYear int

	HostDensity      int
	InitialOutbreaks int
	InitialInfected  int
}

// Config controls the spread world dimensions and parameters.
type Config struct {
	Rows int
	Cols int

	// Cell resolution in map units; both must be positive.
	EWRes float64
	NSRes float64

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows:  256,
		Cols:  256,
		EWRes: 1,
		NSRes: 1,
		Seed:  1337,
		Params: Params{
			Model:                 ModelSI,
			LatencyPeriod:         0,
			ReproductiveRate:      2.0,
			Kernel:                KernelCauchy,
			DistanceScale:         1.5,
			LongDistanceScale:     10,
			ShortDistanceFraction: 0.9,
			WindDirection:         0,
			WindKappa:             0,
			UseWeather:            false,
			LethalTemperature:     -15,
			LethalStep:            -1,
			MortalityRate:         0.25,
			FirstMortalityYear:    -1,
			StepsPerYear:          12,
			HostDensity:           10,
			InitialOutbreaks:      3,
			InitialInfected:       5,
		},
	}
}

// Validate reports the first configuration error, if any.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Rows, c.Cols)
	}
	if c.EWRes <= 0 || c.NSRes <= 0 {
		return fmt.Errorf("cell resolution must be positive, got ew=%g ns=%g", c.EWRes, c.NSRes)
	}
	p := c.Params
	if p.Model > ModelSEID {
		return fmt.Errorf("unknown model type value %d", p.Model)
	}
	if p.Kernel > KernelCauchyMixture {
		return fmt.Errorf("unknown kernel type value %d", p.Kernel)
	}
	if p.LatencyPeriod < 0 {
		return fmt.Errorf("latency period must be non-negative, got %d", p.LatencyPeriod)
	}
	if p.Model.HasLatent() && p.LatencyPeriod == 0 {
		return fmt.Errorf("model %s requires a latency period of at least 1", p.Model)
	}
	if p.ReproductiveRate < 0 {
		return fmt.Errorf("reproductive rate must be non-negative, got %g", p.ReproductiveRate)
	}
	if p.DistanceScale <= 0 {
		return fmt.Errorf("distance scale must be positive, got %g", p.DistanceScale)
	}
	if p.Kernel == KernelCauchyMixture {
		if p.LongDistanceScale <= 0 {
			return fmt.Errorf("long distance scale must be positive, got %g", p.LongDistanceScale)
		}
		if p.ShortDistanceFraction < 0 || p.ShortDistanceFraction > 1 {
			return fmt.Errorf("short distance fraction must be in [0,1], got %g", p.ShortDistanceFraction)
		}
	}
	if p.WindKappa < 0 {
		return fmt.Errorf("wind concentration must be non-negative, got %g", p.WindKappa)
	}
	if p.MortalityRate < 0 || p.MortalityRate > 1 {
		return fmt.Errorf("mortality rate must be in [0,1], got %g", p.MortalityRate)
	}
	if p.StepsPerYear <= 0 {
		return fmt.Errorf("steps per year must be positive, got %d", p.StepsPerYear)
	}
	if p.HostDensity < 0 || p.InitialOutbreaks < 0 || p.InitialInfected < 0 {
		return fmt.Errorf("host counts must be non-negative")
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Invalid values are ignored in favor of the defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["model"]; ok {
		if parsed, err := ModelTypeFromString(v); err == nil {
			c.Params.Model = parsed
		}
	}
	if v, ok := cfg["kernel"]; ok {
		if parsed, err := KernelTypeFromString(v); err == nil {
			c.Params.Kernel = parsed
		}
	}
	if v, ok := cfg["latency_period"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.LatencyPeriod = parsed
		}
	}
	if v, ok := cfg["reproductive_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.ReproductiveRate = parsed
		}
	}
	if v, ok := cfg["distance_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.DistanceScale = parsed
		}
	}
	if v, ok := cfg["wind_kappa"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.WindKappa = parsed
		}
	}
	if v, ok := cfg["wind_direction"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.WindDirection = parsed
		}
	}
	if v, ok := cfg["host_density"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.HostDensity = parsed
		}
	}
	if v, ok := cfg["outbreaks"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.InitialOutbreaks = parsed
		}
	}
	if v, ok := cfg["initial_infected"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.InitialInfected = parsed
		}
	}
	if c.Params.InitialInfected > c.Params.HostDensity {
		c.Params.InitialInfected = c.Params.HostDensity
	}
	if c.Params.Model.HasLatent() && c.Params.LatencyPeriod == 0 {
		c.Params.LatencyPeriod = 1
	}
	return c
}
