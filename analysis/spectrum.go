package analysis

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// hann returns periodic Hann coefficients of the given length.
func hann(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}
	return out
}

func nextPowerOf2(n int) int {
	p := 2
	for p < n {
		p <<= 1
	}
	return p
}

// PowerSpectrum returns the one-sided power spectrum |X[k]|^2 of samples
// after a Hann window, for k in [0, N/2]. N is len(samples) rounded up to a
// power of two (at least 2); the tail is zero-padded.
func PowerSpectrum(samples []float64) ([]float64, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}

	windowed := make([]float64, len(samples))
	copy(windowed, samples)
	vecmath.MulBlockInPlace(windowed, hann(len(samples)))

	size := nextPowerOf2(len(samples))
	in := make([]complex128, size)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("%w: size %d: %w", ErrFFTPlan, size, err)
	}
	spec := make([]complex128, size)
	if err := plan.Forward(spec, in); err != nil {
		return nil, fmt.Errorf("%w: forward: %w", ErrFFTPlan, err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range re {
		re[k] = real(spec[k])
		im[k] = imag(spec[k])
	}

	out := make([]float64, bins)
	vecmath.Power(out, re, im)
	return out, nil
}

// PeakBin returns the index of the largest value in power, ignoring bin 0.
// It returns 0 when power has fewer than two bins.
func PeakBin(power []float64) int {
	peak := 0
	for k := 1; k < len(power); k++ {
		if peak == 0 || power[k] > power[peak] {
			peak = k
		}
	}
	return peak
}

// LowBandFraction returns the share of non-DC energy held in bins
// [1, cutoff). It returns 0 when there is no such energy.
func LowBandFraction(power []float64, cutoff int) float64 {
	if len(power) < 2 {
		return 0
	}
	cutoff = max(1, min(cutoff, len(power)))

	total := vecmath.Sum(power[1:])
	if total <= 0 {
		return 0
	}
	return vecmath.Sum(power[1:cutoff]) / total
}
