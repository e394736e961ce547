package noise

import "github.com/chewxy/math32"

// octaves sums layer(freq) over n octaves. freq starts at 1 and doubles each
// octave; each layer is scaled by 1/freq. With ridged set, the absolute value
// of every scaled layer is summed instead.
//
// span is the largest coordinate magnitude. Once |coord|*freq reaches 2^24
// every coordinate is an integer and the layer is exactly zero, so the sum
// stops when freq or span*freq leaves the float32 range instead of feeding
// Inf and NaN into it.
func octaves(n int, ridged bool, span float32, layer func(octave int, freq float32) float32) float32 {
	mustOctaves(n)

	var res float32
	freq := float32(1)
	for i := 0; i < n; i++ {
		if math32.IsInf(freq, 1) || math32.IsInf(span*freq, 1) {
			break
		}
		v := layer(i, freq) / freq
		if ridged {
			v = math32.Abs(v)
		}
		res += v
		freq *= 2
	}
	return res
}

// maxAbs returns the largest magnitude among coords.
func maxAbs(coords ...float32) float32 {
	var m float32
	for _, c := range coords {
		m = math32.Max(m, math32.Abs(c))
	}
	return m
}

// OctavePeriod returns period doubled once per octave, as used by the
// periodic fractal sums. Once a period reaches the lattice size every larger
// multiple wraps identically, so doubling stops there.
func OctavePeriod(period, octave int) int {
	for i := 0; i < octave && period < tableSize; i++ {
		period *= 2
	}
	return period
}

// Fbm1 sums n octaves of 1D noise. It panics if n < 1.
func (t *Table) Fbm1(x float32, n int) float32 {
	return octaves(n, false, maxAbs(x), func(_ int, f float32) float32 {
		return t.Noise1(x * f)
	})
}

// Fbm2 sums n octaves of 2D noise. It panics if n < 1.
func (t *Table) Fbm2(x, y float32, n int) float32 {
	return octaves(n, false, maxAbs(x, y), func(_ int, f float32) float32 {
		return t.Noise2(x*f, y*f)
	})
}

// Fbm3 sums n octaves of 3D noise. It panics if n < 1.
func (t *Table) Fbm3(x, y, z float32, n int) float32 {
	return octaves(n, false, maxAbs(x, y, z), func(_ int, f float32) float32 {
		return t.Noise3(x*f, y*f, z*f)
	})
}

// Fbm4 sums n octaves of 4D noise. It panics if n < 1.
func (t *Table) Fbm4(x, y, z, w float32, n int) float32 {
	return octaves(n, false, maxAbs(x, y, z, w), func(_ int, f float32) float32 {
		return t.Noise4(x*f, y*f, z*f, w*f)
	})
}

// Turbulence1 sums the magnitudes of n octaves of 1D noise. The result is
// never negative. It panics if n < 1.
func (t *Table) Turbulence1(x float32, n int) float32 {
	return octaves(n, true, maxAbs(x), func(_ int, f float32) float32 {
		return t.Noise1(x * f)
	})
}

// Turbulence2 is the 2D form of Turbulence1.
func (t *Table) Turbulence2(x, y float32, n int) float32 {
	return octaves(n, true, maxAbs(x, y), func(_ int, f float32) float32 {
		return t.Noise2(x*f, y*f)
	})
}

// Turbulence3 is the 3D form of Turbulence1.
func (t *Table) Turbulence3(x, y, z float32, n int) float32 {
	return octaves(n, true, maxAbs(x, y, z), func(_ int, f float32) float32 {
		return t.Noise3(x*f, y*f, z*f)
	})
}

// Turbulence4 is the 4D form of Turbulence1.
func (t *Table) Turbulence4(x, y, z, w float32, n int) float32 {
	return octaves(n, true, maxAbs(x, y, z, w), func(_ int, f float32) float32 {
		return t.Noise4(x*f, y*f, z*f, w*f)
	})
}

// PFbm1 sums n octaves of periodic 1D noise, doubling the period along with
// the frequency so that every octave tiles over the same interval.
// It panics if n < 1 or period < 1.
func (t *Table) PFbm1(x float32, period, n int) float32 {
	mustPeriod(period)
	return octaves(n, false, maxAbs(x), func(o int, f float32) float32 {
		return t.PNoise1(x*f, OctavePeriod(period, o))
	})
}

// PFbm2 is the 2D form of PFbm1.
func (t *Table) PFbm2(x, y float32, perX, perY, n int) float32 {
	mustPeriod(perX)
	mustPeriod(perY)
	return octaves(n, false, maxAbs(x, y), func(o int, f float32) float32 {
		return t.PNoise2(x*f, y*f, OctavePeriod(perX, o), OctavePeriod(perY, o))
	})
}

// PFbm3 is the 3D form of PFbm1.
func (t *Table) PFbm3(x, y, z float32, perX, perY, perZ, n int) float32 {
	mustPeriod(perX)
	mustPeriod(perY)
	mustPeriod(perZ)
	return octaves(n, false, maxAbs(x, y, z), func(o int, f float32) float32 {
		return t.PNoise3(x*f, y*f, z*f,
			OctavePeriod(perX, o), OctavePeriod(perY, o), OctavePeriod(perZ, o))
	})
}

// PFbm4 is the 4D form of PFbm1.
func (t *Table) PFbm4(x, y, z, w float32, perX, perY, perZ, perW, n int) float32 {
	mustPeriod(perX)
	mustPeriod(perY)
	mustPeriod(perZ)
	mustPeriod(perW)
	return octaves(n, false, maxAbs(x, y, z, w), func(o int, f float32) float32 {
		return t.PNoise4(x*f, y*f, z*f, w*f,
			OctavePeriod(perX, o), OctavePeriod(perY, o), OctavePeriod(perZ, o), OctavePeriod(perW, o))
	})
}

// PTurbulence1 sums the magnitudes of n octaves of periodic 1D noise.
// It panics if n < 1 or period < 1.
func (t *Table) PTurbulence1(x float32, period, n int) float32 {
	mustPeriod(period)
	return octaves(n, true, maxAbs(x), func(o int, f float32) float32 {
		return t.PNoise1(x*f, OctavePeriod(period, o))
	})
}

// PTurbulence2 is the 2D form of PTurbulence1.
func (t *Table) PTurbulence2(x, y float32, perX, perY, n int) float32 {
	mustPeriod(perX)
	mustPeriod(perY)
	return octaves(n, true, maxAbs(x, y), func(o int, f float32) float32 {
		return t.PNoise2(x*f, y*f, OctavePeriod(perX, o), OctavePeriod(perY, o))
	})
}

// PTurbulence3 is the 3D form of PTurbulence1.
func (t *Table) PTurbulence3(x, y, z float32, perX, perY, perZ, n int) float32 {
	mustPeriod(perX)
	mustPeriod(perY)
	mustPeriod(perZ)
	return octaves(n, true, maxAbs(x, y, z), func(o int, f float32) float32 {
		return t.PNoise3(x*f, y*f, z*f,
			OctavePeriod(perX, o), OctavePeriod(perY, o), OctavePeriod(perZ, o))
	})
}

// PTurbulence4 is the 4D form of PTurbulence1.
func (t *Table) PTurbulence4(x, y, z, w float32, perX, perY, perZ, perW, n int) float32 {
	mustPeriod(perX)
	mustPeriod(perY)
	mustPeriod(perZ)
	mustPeriod(perW)
	return octaves(n, true, maxAbs(x, y, z, w), func(o int, f float32) float32 {
		return t.PNoise4(x*f, y*f, z*f, w*f,
			OctavePeriod(perX, o), OctavePeriod(perY, o), OctavePeriod(perZ, o), OctavePeriod(perW, o))
	})
}
