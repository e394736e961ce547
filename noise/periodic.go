package noise

// PNoise1 evaluates 1D noise on a lattice that repeats every period units.
// It panics if period < 1.
func (t *Table) PNoise1(x float32, period int) float32 {
	return t.eval1(setupPeriodic(x, period))
}

// PNoise2 evaluates 2D noise that repeats every perX units along x and perY
// units along y. It panics if either period is < 1.
func (t *Table) PNoise2(x, y float32, perX, perY int) float32 {
	return t.eval2(setupPeriodic(x, perX), setupPeriodic(y, perY))
}

// PNoise3 evaluates tileable 3D noise. It panics if any period is < 1.
func (t *Table) PNoise3(x, y, z float32, perX, perY, perZ int) float32 {
	return t.eval3(setupPeriodic(x, perX), setupPeriodic(y, perY), setupPeriodic(z, perZ))
}

// PNoise4 evaluates tileable 4D noise. It panics if any period is < 1.
func (t *Table) PNoise4(x, y, z, w float32, perX, perY, perZ, perW int) float32 {
	return t.eval4(
		setupPeriodic(x, perX),
		setupPeriodic(y, perY),
		setupPeriodic(z, perZ),
		setupPeriodic(w, perW),
	)
}
