package geom

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrSingular is returned when a view-projection matrix has no inverse.
var ErrSingular = errors.New("geom: view-projection matrix is singular")

// Ray is a half-line starting at Origin. Dir is not required to be unit
// length.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// NewRay returns a ray from origin along dir.
func NewRay(origin, dir mgl32.Vec3) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// At returns the point Origin + t*Dir.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Transform applies m to the ray. The origin is transformed as a point and
// the direction by the upper 3x3 part of m only, so translation does not
// affect it.
func (r Ray) Transform(m mgl32.Mat4) Ray {
	return Ray{
		Origin: m.Mul4x1(r.Origin.Vec4(1)).Vec3(),
		Dir:    m.Mat3().Mul3x1(r.Dir),
	}
}

// Reflect returns the ray with its direction mirrored about n.
func (r Ray) Reflect(n mgl32.Vec3) Ray {
	return Ray{Origin: r.Origin, Dir: Reflect(r.Dir, n)}
}

// Refract returns the ray with its direction bent by Refract.
func (r Ray) Refract(n mgl32.Vec3, ior float32) Ray {
	return Ray{Origin: r.Origin, Dir: Refract(r.Dir, n, ior)}
}

// RefractBetween returns the ray with its direction bent by RefractBetween.
func (r Ray) RefractBetween(n mgl32.Vec3, from, to float32) Ray {
	return Ray{Origin: r.Origin, Dir: RefractBetween(r.Dir, n, from, to)}
}

// Unproject maps a screen position with components in [0, 1] (z = 0 at the
// near plane, z = 1 at the far plane) back to world space.
func Unproject(normScreen mgl32.Vec3, invViewProj mgl32.Mat4) mgl32.Vec3 {
	ndc := mgl32.Vec4{
		2*normScreen.X() - 1,
		2*normScreen.Y() - 1,
		2*normScreen.Z() - 1,
		1,
	}
	out := invViewProj.Mul4x1(ndc)
	return out.Vec3().Mul(1 / out.W())
}

// MousePickRay returns the ray from the near plane to the far plane through
// the normalized screen position (nx, ny). The direction spans the full
// near-to-far distance.
func MousePickRay(nx, ny float32, view, proj mgl32.Mat4) (Ray, error) {
	viewProj := proj.Mul4(view)
	if viewProj.Det() == 0 {
		return Ray{}, ErrSingular
	}
	inv := viewProj.Inv()

	near := Unproject(mgl32.Vec3{nx, ny, 0}, inv)
	far := Unproject(mgl32.Vec3{nx, ny, 1}, inv)
	return Ray{Origin: near, Dir: far.Sub(near)}, nil
}
