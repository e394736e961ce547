package noise

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/jtsiomb/gph-math/interp"
)

// Noise1 evaluates 1D gradient noise at x.
func (t *Table) Noise1(x float32) float32 {
	return t.eval1(setup(x))
}

// Noise2 evaluates 2D gradient noise at (x, y).
func (t *Table) Noise2(x, y float32) float32 {
	return t.eval2(setup(x), setup(y))
}

// Noise3 evaluates 3D gradient noise at (x, y, z).
func (t *Table) Noise3(x, y, z float32) float32 {
	return t.eval3(setup(x), setup(y), setup(z))
}

// Noise4 evaluates 4D gradient noise at (x, y, z, w).
func (t *Table) Noise4(x, y, z, w float32) float32 {
	return t.eval4(setup(x), setup(y), setup(z), setup(w))
}

func (t *Table) eval1(cx Cell) float32 {
	u := cx.FracLow * t.grad1[t.perm[cx.Low]]
	v := cx.FracHigh * t.grad1[t.perm[cx.High]]
	return interp.Lerp(u, v, interp.SCurve(cx.FracLow))
}

func (t *Table) eval2(cx, cy Cell) float32 {
	i := t.perm[cx.Low]
	j := t.perm[cx.High]

	b00 := t.perm[i+cy.Low]
	b10 := t.perm[j+cy.Low]
	b01 := t.perm[i+cy.High]
	b11 := t.perm[j+cy.High]

	sx := interp.SCurve(cx.FracLow)
	sy := interp.SCurve(cy.FracLow)

	return interp.Bilerp(
		t.grad2[b00].Dot(mgl32.Vec2{cx.FracLow, cy.FracLow}),
		t.grad2[b10].Dot(mgl32.Vec2{cx.FracHigh, cy.FracLow}),
		t.grad2[b01].Dot(mgl32.Vec2{cx.FracLow, cy.FracHigh}),
		t.grad2[b11].Dot(mgl32.Vec2{cx.FracHigh, cy.FracHigh}),
		sx, sy,
	)
}

func (t *Table) eval3(cx, cy, cz Cell) float32 {
	i := t.perm[cx.Low]
	j := t.perm[cx.High]

	b00 := t.perm[i+cy.Low]
	b10 := t.perm[j+cy.Low]
	b01 := t.perm[i+cy.High]
	b11 := t.perm[j+cy.High]

	far := cz.High
	if t.legacy3D {
		far = cz.Low
	}

	sx := interp.SCurve(cx.FracLow)
	sy := interp.SCurve(cy.FracLow)
	sz := interp.SCurve(cz.FracLow)

	return interp.Trilerp(
		t.grad3[b00+cz.Low].Dot(mgl32.Vec3{cx.FracLow, cy.FracLow, cz.FracLow}),
		t.grad3[b10+cz.Low].Dot(mgl32.Vec3{cx.FracHigh, cy.FracLow, cz.FracLow}),
		t.grad3[b01+cz.Low].Dot(mgl32.Vec3{cx.FracLow, cy.FracHigh, cz.FracLow}),
		t.grad3[b11+cz.Low].Dot(mgl32.Vec3{cx.FracHigh, cy.FracHigh, cz.FracLow}),
		t.grad3[b00+far].Dot(mgl32.Vec3{cx.FracLow, cy.FracLow, cz.FracHigh}),
		t.grad3[b10+far].Dot(mgl32.Vec3{cx.FracHigh, cy.FracLow, cz.FracHigh}),
		t.grad3[b01+far].Dot(mgl32.Vec3{cx.FracLow, cy.FracHigh, cz.FracHigh}),
		t.grad3[b11+far].Dot(mgl32.Vec3{cx.FracHigh, cy.FracHigh, cz.FracHigh}),
		sx, sy, sz,
	)
}

// eval4 adds a third hashing level for z; w offsets the final gradient index
// the same way z does in three dimensions.
func (t *Table) eval4(cx, cy, cz, cw Cell) float32 {
	i := t.perm[cx.Low]
	j := t.perm[cx.High]

	b00 := t.perm[i+cy.Low]
	b10 := t.perm[j+cy.Low]
	b01 := t.perm[i+cy.High]
	b11 := t.perm[j+cy.High]

	sx := interp.SCurve(cx.FracLow)
	sy := interp.SCurve(cy.FracLow)
	sz := interp.SCurve(cz.FracLow)
	sw := interp.SCurve(cw.FracLow)

	c000 := t.perm[b00+cz.Low]
	c100 := t.perm[b10+cz.Low]
	c010 := t.perm[b01+cz.Low]
	c110 := t.perm[b11+cz.Low]
	c001 := t.perm[b00+cz.High]
	c101 := t.perm[b10+cz.High]
	c011 := t.perm[b01+cz.High]
	c111 := t.perm[b11+cz.High]

	// slice interpolates the xyz cube at one w lattice value.
	slice := func(bw int, rw float32) float32 {
		return interp.Trilerp(
			t.grad4[c000+bw].Dot(mgl32.Vec4{cx.FracLow, cy.FracLow, cz.FracLow, rw}),
			t.grad4[c100+bw].Dot(mgl32.Vec4{cx.FracHigh, cy.FracLow, cz.FracLow, rw}),
			t.grad4[c010+bw].Dot(mgl32.Vec4{cx.FracLow, cy.FracHigh, cz.FracLow, rw}),
			t.grad4[c110+bw].Dot(mgl32.Vec4{cx.FracHigh, cy.FracHigh, cz.FracLow, rw}),
			t.grad4[c001+bw].Dot(mgl32.Vec4{cx.FracLow, cy.FracLow, cz.FracHigh, rw}),
			t.grad4[c101+bw].Dot(mgl32.Vec4{cx.FracHigh, cy.FracLow, cz.FracHigh, rw}),
			t.grad4[c011+bw].Dot(mgl32.Vec4{cx.FracLow, cy.FracHigh, cz.FracHigh, rw}),
			t.grad4[c111+bw].Dot(mgl32.Vec4{cx.FracHigh, cy.FracHigh, cz.FracHigh, rw}),
			sx, sy, sz,
		)
	}

	return interp.Lerp(slice(cw.Low, cw.FracLow), slice(cw.High, cw.FracHigh), sw)
}
