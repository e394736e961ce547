// Package analysis measures sampled noise: windowed power spectra, decibel
// conversion and summary statistics. It is used to check that fractal sums
// shift energy the way their octave weights predict.
package analysis
