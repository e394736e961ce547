package geom

import (
	"testing"

	"github.com/jtsiomb/gph-math/internal/testutil"
)

func TestDiscRandInsideDisc(t *testing.T) {
	s := NewSampler(1)
	var sumX, sumY float32
	const n = 4000
	for i := 0; i < n; i++ {
		p := s.DiscRand(2)
		if p.Len() > 2+1e-5 {
			t.Fatalf("sample %d = %v outside radius 2", i, p)
		}
		sumX += p.X()
		sumY += p.Y()
	}
	testutil.RequireNear32(t, "mean x", sumX/n, 0, 0.1)
	testutil.RequireNear32(t, "mean y", sumY/n, 0, 0.1)
}

func TestSphereRandOnSurface(t *testing.T) {
	s := NewSampler(9)
	var above int
	const n = 4000
	for i := 0; i < n; i++ {
		p := s.SphereRand(3)
		testutil.RequireNear32(t, "radius", p.Len(), 3, 1e-4)
		if p.Z() > 0 {
			above++
		}
	}
	if above < n*4/10 || above > n*6/10 {
		t.Fatalf("%d of %d samples above the equator", above, n)
	}
}

func TestSamplerDeterministic(t *testing.T) {
	a, b := NewSampler(42), NewSampler(42)
	for i := 0; i < 16; i++ {
		if a.SphereRand(1) != b.SphereRand(1) {
			t.Fatalf("samplers with the same seed diverged at %d", i)
		}
	}
	if NewSampler(1).DiscRand(1) == NewSampler(2).DiscRand(1) {
		t.Fatal("different seeds produced the same first sample")
	}
}
