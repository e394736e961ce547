package interp

import "golang.org/x/exp/constraints"

// Lerp returns a + (b-a)*t.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// SCurve maps t in [0,1] onto [0,1] with zero first derivative at both ends.
// A lattice field blended with it has continuous first derivatives across
// cell boundaries.
func SCurve[T constraints.Float](t T) T {
	return t * t * (3 - 2*t)
}

// Bilerp blends four corner values. The corner suffix is (x, y): c10 lies one
// step along x from c00. tx and ty are used as given; apply SCurve first when
// smooth blending is wanted.
func Bilerp[T constraints.Float](c00, c10, c01, c11, tx, ty T) T {
	a := Lerp(c00, c10, tx)
	b := Lerp(c01, c11, tx)
	return Lerp(a, b, ty)
}

// Trilerp blends eight corner values, suffix (x, y, z). The z=0 slice and the
// z=1 slice are each reduced with Bilerp and then blended by tz.
func Trilerp[T constraints.Float](c000, c100, c010, c110, c001, c101, c011, c111, tx, ty, tz T) T {
	near := Bilerp(c000, c100, c010, c110, tx, ty)
	far := Bilerp(c001, c101, c011, c111, tx, ty)
	return Lerp(near, far, tz)
}

// Smoothstep returns 0 for x < a, 1 for x >= b and SCurve of the normalized
// position in between.
func Smoothstep[T constraints.Float](a, b, x T) T {
	if x < a {
		return 0
	}
	if x >= b {
		return 1
	}
	return SCurve((x - a) / (b - a))
}

// Bezier evaluates the cubic Bernstein polynomial with control values a..d at t.
func Bezier[T constraints.Float](a, b, c, d, t T) T {
	omt := 1 - t
	omt3 := omt * omt * omt
	t3 := t * t * t
	f := 3 * t * omt
	return a*omt3 + b*f*omt + c*f*t + d*t3
}
