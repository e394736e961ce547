package analysis

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Stats summarizes a sampled signal.
type Stats struct {
	Count   int
	Min     float64
	Max     float64
	Mean    float64
	RMS     float64
	PeakBin int     // strongest non-DC spectrum bin
	Bins    int     // spectrum length, N/2+1
	LowBand float64 // LowBandFraction over the lowest eighth of the bins
}

// Summarize computes amplitude and spectral statistics of samples.
func Summarize(samples []float64) (Stats, error) {
	if len(samples) == 0 {
		return Stats{}, ErrEmptyInput
	}

	power, err := PowerSpectrum(samples)
	if err != nil {
		return Stats{}, err
	}

	s := Stats{
		Count:   len(samples),
		Min:     samples[0],
		Max:     samples[0],
		PeakBin: PeakBin(power),
		Bins:    len(power),
		LowBand: LowBandFraction(power, len(power)/8+1),
	}
	for _, v := range samples[1:] {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	n := float64(len(samples))
	s.Mean = vecmath.Sum(samples) / n
	s.RMS = math.Sqrt(vecmath.DotProduct(samples, samples) / n)
	return s, nil
}

// SampleLine evaluates src at n points spaced step apart, starting at 0.
func SampleLine(src func(float32) float32, n int, step float32) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(src(float32(i) * step))
	}
	return out
}
