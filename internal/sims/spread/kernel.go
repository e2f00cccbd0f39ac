package spread

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// DispersalKernel samples a target cell for one propagule leaving the
// source cell. The returned coordinates may lie outside the grid; callers
// are expected to treat that as an escaped disperser, not an error.
type DispersalKernel interface {
	Next(rng *rand.Rand, row, col int) (int, int)
}

// RadialKernel draws a distance and a direction independently and converts
// the resulting displacement to a cell offset using the grid resolution.
type RadialKernel struct {
	kind KernelType

	scale         float64
	longScale     float64
	shortFraction float64

	windMean float64 // radians
	kappa    float64

	ewRes float64
	nsRes float64
}

// NewRadialKernel validates the kernel parameters once at construction.
// windDirection is the mean wind direction in degrees; kappa of zero turns
// the direction draw into a uniform one.
func NewRadialKernel(kind KernelType, scale, longScale, shortFraction, windDirection, kappa, ewRes, nsRes float64) (*RadialKernel, error) {
	if kind > KernelCauchyMixture {
		return nil, fmt.Errorf("unknown kernel type value %d", kind)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("distance scale must be positive, got %g", scale)
	}
	if kind == KernelCauchyMixture {
		if longScale <= 0 {
			return nil, fmt.Errorf("long distance scale must be positive, got %g", longScale)
		}
		if shortFraction < 0 || shortFraction > 1 {
			return nil, fmt.Errorf("short distance fraction must be in [0,1], got %g", shortFraction)
		}
	}
	if kappa < 0 {
		return nil, fmt.Errorf("wind concentration must be non-negative, got %g", kappa)
	}
	if ewRes <= 0 || nsRes <= 0 {
		return nil, fmt.Errorf("cell resolution must be positive, got ew=%g ns=%g", ewRes, nsRes)
	}
	return &RadialKernel{
		kind:          kind,
		scale:         scale,
		longScale:     longScale,
		shortFraction: shortFraction,
		windMean:      windDirection * math.Pi / 180,
		kappa:         kappa,
		ewRes:         ewRes,
		nsRes:         nsRes,
	}, nil
}

// Next samples one (distance, direction) pair and maps it to a target cell.
func (k *RadialKernel) Next(rng *rand.Rand, row, col int) (int, int) {
	var distance float64
	switch k.kind {
	case KernelCauchy:
		distance = math.Abs(cauchy(rng, k.scale))
	case KernelCauchyMixture:
		// Bernoulli choice first, then the magnitude of the chosen draw.
		scale := k.longScale
		if rng.Float64() < k.shortFraction {
			scale = k.scale
		}
		distance = math.Abs(cauchy(rng, scale))
	}

	theta := vonMises(rng, k.windMean, k.kappa)

	row -= int(math.Round(distance * math.Cos(theta) / k.nsRes))
	col += int(math.Round(distance * math.Sin(theta) / k.ewRes))
	return row, col
}
