// Package noise implements Perlin-style gradient noise over a pseudo-random
// lattice, in one to four dimensions, with tileable (periodic) variants and
// fractal sums built on top.
//
// A [Table] owns the permutation and the gradient sets. Tables are immutable
// once built and safe for concurrent use. [NewTable] builds an independent
// table from a seed; [Default] returns a process-wide table that is built on
// first use. The package-level functions ([Noise2], [Fbm3], ...) evaluate
// against the default table.
//
// Evaluators return exactly zero at integer lattice points and are typically,
// but not strictly, within [-1, 1].
//
// Periodic variants wrap lattice indices modulo a caller-supplied period. The
// result tiles exactly only when the period divides 256 (or is a multiple of
// it); other periods alias. Use [CheckPeriod] to validate periods that come
// from user input.
package noise
