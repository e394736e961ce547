package geom

import (
	"github.com/MichaelTJones/pcg"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const samplerStream = 0xda3e39cb94b95bdb

// Sampler draws random points. A Sampler is not safe for concurrent use.
type Sampler struct {
	rng *pcg.PCG32
}

// NewSampler returns a sampler whose sequence is fixed by seed.
func NewSampler(seed uint64) *Sampler {
	rng := pcg.NewPCG32()
	rng.Seed(seed, samplerStream)
	return &Sampler{rng: rng}
}

// float returns a uniform value in [0, 1].
func (s *Sampler) float() float32 {
	return float32(s.rng.Random()) / (1<<32 - 1)
}

// DiscRand returns a point uniformly distributed over the disc of radius rad.
func (s *Sampler) DiscRand(rad float32) mgl32.Vec2 {
	theta := 2 * math32.Pi * s.float()
	r := math32.Sqrt(s.float()) * rad
	return mgl32.Vec2{math32.Cos(theta) * r, math32.Sin(theta) * r}
}

// SphereRand returns a point uniformly distributed over the surface of the
// sphere of radius rad.
func (s *Sampler) SphereRand(rad float32) mgl32.Vec3 {
	theta := 2 * math32.Pi * s.float()
	phi := math32.Acos(2*s.float() - 1)

	sinPhi := math32.Sin(phi)
	return mgl32.Vec3{
		rad * math32.Cos(theta) * sinPhi,
		rad * math32.Sin(theta) * sinPhi,
		rad * math32.Cos(phi),
	}
}
