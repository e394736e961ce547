package noise

import "sync"

var (
	// defaultTable is the process-wide table behind the package-level functions.
	defaultTable *Table

	// defaultOnce ensures defaultTable is built exactly once, thread-safely.
	defaultOnce sync.Once
)

// Default returns the process-wide table, building it on the first call.
//
// Construction runs once; concurrent first calls block until it completes and
// all observe the same table.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable()
	})
	return defaultTable
}

// Init builds the default table now instead of on the first noise call.
func Init() {
	Default()
}

// Noise1 evaluates Default().Noise1.
func Noise1(x float32) float32 { return Default().Noise1(x) }

// Noise2 evaluates Default().Noise2.
func Noise2(x, y float32) float32 { return Default().Noise2(x, y) }

// Noise3 evaluates Default().Noise3.
func Noise3(x, y, z float32) float32 { return Default().Noise3(x, y, z) }

// Noise4 evaluates Default().Noise4.
func Noise4(x, y, z, w float32) float32 { return Default().Noise4(x, y, z, w) }

// PNoise1 evaluates Default().PNoise1.
func PNoise1(x float32, period int) float32 { return Default().PNoise1(x, period) }

// PNoise2 evaluates Default().PNoise2.
func PNoise2(x, y float32, perX, perY int) float32 {
	return Default().PNoise2(x, y, perX, perY)
}

// PNoise3 evaluates Default().PNoise3.
func PNoise3(x, y, z float32, perX, perY, perZ int) float32 {
	return Default().PNoise3(x, y, z, perX, perY, perZ)
}

// PNoise4 evaluates Default().PNoise4.
func PNoise4(x, y, z, w float32, perX, perY, perZ, perW int) float32 {
	return Default().PNoise4(x, y, z, w, perX, perY, perZ, perW)
}

// Fbm1 evaluates Default().Fbm1.
func Fbm1(x float32, octaves int) float32 { return Default().Fbm1(x, octaves) }

// Fbm2 evaluates Default().Fbm2.
func Fbm2(x, y float32, octaves int) float32 { return Default().Fbm2(x, y, octaves) }

// Fbm3 evaluates Default().Fbm3.
func Fbm3(x, y, z float32, octaves int) float32 { return Default().Fbm3(x, y, z, octaves) }

// Fbm4 evaluates Default().Fbm4.
func Fbm4(x, y, z, w float32, octaves int) float32 {
	return Default().Fbm4(x, y, z, w, octaves)
}

// Turbulence1 evaluates Default().Turbulence1.
func Turbulence1(x float32, octaves int) float32 { return Default().Turbulence1(x, octaves) }

// Turbulence2 evaluates Default().Turbulence2.
func Turbulence2(x, y float32, octaves int) float32 {
	return Default().Turbulence2(x, y, octaves)
}

// Turbulence3 evaluates Default().Turbulence3.
func Turbulence3(x, y, z float32, octaves int) float32 {
	return Default().Turbulence3(x, y, z, octaves)
}

// Turbulence4 evaluates Default().Turbulence4.
func Turbulence4(x, y, z, w float32, octaves int) float32 {
	return Default().Turbulence4(x, y, z, w, octaves)
}

// PFbm1 evaluates Default().PFbm1.
func PFbm1(x float32, period, octaves int) float32 {
	return Default().PFbm1(x, period, octaves)
}

// PFbm2 evaluates Default().PFbm2.
func PFbm2(x, y float32, perX, perY, octaves int) float32 {
	return Default().PFbm2(x, y, perX, perY, octaves)
}

// PFbm3 evaluates Default().PFbm3.
func PFbm3(x, y, z float32, perX, perY, perZ, octaves int) float32 {
	return Default().PFbm3(x, y, z, perX, perY, perZ, octaves)
}

// PFbm4 evaluates Default().PFbm4.
func PFbm4(x, y, z, w float32, perX, perY, perZ, perW, octaves int) float32 {
	return Default().PFbm4(x, y, z, w, perX, perY, perZ, perW, octaves)
}

// PTurbulence1 evaluates Default().PTurbulence1.
func PTurbulence1(x float32, period, octaves int) float32 {
	return Default().PTurbulence1(x, period, octaves)
}

// PTurbulence2 evaluates Default().PTurbulence2.
func PTurbulence2(x, y float32, perX, perY, octaves int) float32 {
	return Default().PTurbulence2(x, y, perX, perY, octaves)
}

// PTurbulence3 evaluates Default().PTurbulence3.
func PTurbulence3(x, y, z float32, perX, perY, perZ, octaves int) float32 {
	return Default().PTurbulence3(x, y, z, perX, perY, perZ, octaves)
}

// PTurbulence4 evaluates Default().PTurbulence4.
func PTurbulence4(x, y, z, w float32, perX, perY, perZ, perW, octaves int) float32 {
	return Default().PTurbulence4(x, y, z, w, perX, perY, perZ, perW, octaves)
}
