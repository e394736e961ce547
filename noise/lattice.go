package noise

import "math"

// Cell locates a coordinate on one lattice axis: the indices of the two
// neighbouring lattice points and the signed offsets from each of them.
type Cell struct {
	Low, High         int
	FracLow, FracHigh float32
}

// setup maps coord onto the 256-point lattice. The bias keeps the common
// domain non-negative; floor keeps the mapping continuous below it as well.
func setup(coord float32) Cell {
	t := float64(coord) + latticeBias
	it := math.Floor(t)
	low := int(it) & tableMask
	frac := float32(t - it)
	return Cell{
		Low:      low,
		High:     (low + 1) & tableMask,
		FracLow:  frac,
		FracHigh: frac - 1,
	}
}

// setupPeriodic is setup with both indices reduced modulo period.
// It panics if period < 1.
func setupPeriodic(coord float32, period int) Cell {
	mustPeriod(period)
	c := setup(coord)
	c.Low %= period
	c.High = ((c.Low + 1) & tableMask) % period
	return c
}

// Locate returns the lattice cell containing coord.
func Locate(coord float32) Cell {
	return setup(coord)
}

// LocatePeriodic returns the lattice cell containing coord on a lattice that
// repeats every period points. It panics if period < 1.
func LocatePeriodic(coord float32, period int) Cell {
	return setupPeriodic(coord, period)
}
