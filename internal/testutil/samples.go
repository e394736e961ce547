package testutil

import (
	"math"

	"github.com/MichaelTJones/pcg"
)

// DeterministicSine generates a sine of freqBins cycles over length samples.
func DeterministicSine(freqBins float64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqBins / float64(length)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Coords returns n reproducible coordinates spread over [-span, span).
// Values are multiples of 1/64 so that shifting them by small integers is
// exact in float32.
func Coords(seed uint64, n int, span float32) []float32 {
	rng := pcg.NewPCG32()
	rng.Seed(seed, 1)
	steps := uint32(2 * span * 64)
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(rng.Bounded(steps))/64 - span
	}
	return out
}
