package montecarlo

import (
	"math"
	"math/rand/v2"
)

// Source supplies uniform pseudo-random values in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// seedMixer decorrelates the two PCG words derived from a single seed.
const seedMixer = 0x9e3779b97f4a7c15

// NewSource returns a seeded generator. Equal seeds produce equal sequences.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^seedMixer))
}

// StandardNormal draws one standard normal value from two uniform draws
// using the Box-Muller transform. Zero uniforms are redrawn so the log is
// always finite.
func StandardNormal(src Source) float64 {
	u := src.Float64()
	for u == 0 {
		u = src.Float64()
	}
	v := src.Float64()
	for v == 0 {
		v = src.Float64()
	}
	return math.Sqrt(-2.0*math.Log(u)) * math.Cos(2.0*math.Pi*v)
}

// NormalSample draws one value from N(mean, standardDeviation²).
func NormalSample(src Source, mean, standardDeviation float64) float64 {
	return mean + standardDeviation*StandardNormal(src)
}
