// Package field renders 2D noise sources onto rasters.
//
// A [Renderer] samples a [Source] on a regular grid, optionally summing
// several octaves (fBm or turbulence), and returns the samples row-major.
// Rows of each octave are evaluated in parallel; sources must therefore be
// safe for concurrent use, which holds for every source in this package.
//
// Tileable output: with a [TiledPerlin] source whose periods divide 256, a
// raster whose width spans exactly PerX lattice units (see [WithScale]) and
// whose height spans PerY units repeats seamlessly in both directions.
package field
