// Package interp provides the scalar blending curves used by lattice noise.
//
// Available helpers:
//
//   - [Lerp]:       linear interpolation between two values
//   - [SCurve]:     cubic Hermite ease t²(3-2t), zero slope at 0 and 1
//   - [Bilerp]:     nested blend of four corner values, x axis first
//   - [Trilerp]:    nested blend of eight corner values, x axis first
//   - [Smoothstep]: SCurve applied to x remapped from [a,b]
//   - [Bezier]:     cubic Bernstein blend of four control values
//
// All helpers are generic over float32 and float64.
package interp
