package spread

import (
	"math"
	"math/rand/v2"
)

const twoPi = 2 * math.Pi

// poisson draws from a Poisson distribution with the given mean using
// Knuth's product method. Large means are split in half recursively so the
// exp(-lambda) bound stays representable; the sum of two Poissons is again
// Poisson, so the split does not change the distribution.
func poisson(rng *rand.Rand, lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	if lambda > 30 {
		half := lambda / 2
		return poisson(rng, half) + poisson(rng, lambda-half)
	}
	limit := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= rng.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}

// cauchy draws from a Cauchy distribution centered at zero with the given
// scale parameter.
func cauchy(rng *rand.Rand, scale float64) float64 {
	return scale * math.Tan(math.Pi*(rng.Float64()-0.5))
}

// vonMises draws an angle in [0, 2pi) from a von Mises distribution with
// mean direction mu (radians) and concentration kappa, using the
// Best-Fisher rejection procedure: two uniforms per attempt test a
// candidate against the acceptance bound, a third uniform picks the sign of
// the accepted angle relative to mu. kappa of zero degenerates to the
// uniform distribution on the circle.
func vonMises(rng *rand.Rand, mu, kappa float64) float64 {
	if kappa <= 0 {
		return twoPi * rng.Float64()
	}

	tau := 1 + math.Sqrt(1+4*kappa*kappa)
	rho := (tau - math.Sqrt(2*tau)) / (2 * kappa)
	r := (1 + rho*rho) / (2 * rho)

	var f float64
	for {
		u1 := rng.Float64()
		z := math.Cos(math.Pi * u1)
		f = (1 + r*z) / (r + z)
		c := kappa * (r - f)
		u2 := rng.Float64()
		if c*(2-c)-u2 > 0 {
			break
		}
		if math.Log(c/u2)+1-c >= 0 {
			break
		}
	}

	theta := math.Acos(f)
	if rng.Float64() <= 0.5 {
		theta = -theta
	}
	theta += mu

	theta = math.Mod(theta, twoPi)
	if theta < 0 {
		theta += twoPi
	}
	return theta
}
