package noise

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOctaves = errors.New("noise: octaves must be >= 1")
	ErrInvalidPeriod  = errors.New("noise: period must be >= 1")
	ErrAliasedPeriod  = errors.New("noise: period does not divide the lattice size")
	ErrTableSize      = errors.New("noise: lattice tables must hold 256 entries")
	ErrNotPermutation = errors.New("noise: entries are not a permutation of 0..255")
	ErrGradientRange  = errors.New("noise: 1D gradients must lie in [-1, 1]")
)

// CheckOctaves reports whether n is a usable octave count.
func CheckOctaves(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidOctaves, n)
	}
	return nil
}

// CheckPeriod reports whether p is a usable period. Periods below 1 are
// rejected with ErrInvalidPeriod. Periods that neither divide 256 nor are a
// multiple of it produce visible seams and return ErrAliasedPeriod.
func CheckPeriod(p int) error {
	if p < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPeriod, p)
	}
	if tableSize%p != 0 && p%tableSize != 0 {
		return fmt.Errorf("%w: %d", ErrAliasedPeriod, p)
	}
	return nil
}

func mustOctaves(n int) {
	if n < 1 {
		panic(fmt.Errorf("%w: %d", ErrInvalidOctaves, n))
	}
}

func mustPeriod(p int) {
	if p < 1 {
		panic(fmt.Errorf("%w: %d", ErrInvalidPeriod, p))
	}
}
