package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Reflect mirrors v about the plane with unit normal n.
func Reflect(v, n mgl32.Vec3) mgl32.Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Refract bends the unit vector v through a surface with unit normal n,
// where ior is the ratio of the incident to the transmitted index. On total
// internal reflection the reflected vector is returned instead.
func Refract(v, n mgl32.Vec3, ior float32) mgl32.Vec3 {
	cos := n.Dot(v)
	k := 1 - ior*ior*(1-cos*cos)
	if k < 0 {
		return Reflect(v, n)
	}
	return v.Mul(ior).Sub(n.Mul(ior*cos + math32.Sqrt(k)))
}

// RefractBetween refracts v passing from a medium of index from into one of
// index to.
func RefractBetween(v, n mgl32.Vec3, from, to float32) mgl32.Vec3 {
	return Refract(v, n, from/to)
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * 180 / math32.Pi
}
