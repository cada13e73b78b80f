package neuron

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Initializer produces starting values for weights and biases.
// gonum's distuv distributions satisfy it.
type Initializer interface {
	Rand() float64
}

// Uniform returns the (-1, 1) distribution used to initialise parameters,
// driven by a PCG source seeded with seed.
func Uniform(seed uint64) distuv.Uniform {
	return distuv.Uniform{Min: -1, Max: 1, Src: rand.NewSource(seed)}
}

// Draw samples rng. For a distuv.Uniform with Min < Max it redraws the
// lower bound so values stay inside the open interval. A single-point
// range returns its only value.
func Draw(rng Initializer) float64 {
	lo, open := lowerBound(rng)
	for {
		v := rng.Rand()
		if !open || v != lo {
			return v
		}
	}
}

// lowerBound reports the endpoint Draw must reject, if any.
func lowerBound(rng Initializer) (float64, bool) {
	switch u := rng.(type) {
	case distuv.Uniform:
		return u.Min, u.Min < u.Max
	case *distuv.Uniform:
		return u.Min, u.Min < u.Max
	}
	return 0, false
}
