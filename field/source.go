package field

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/jtsiomb/gph-math/noise"
)

// Source is a 2D scalar noise function.
type Source interface {
	Eval2(x, y float32) float32
}

// Octaver is implemented by sources whose parameters change per octave.
// Renderers call Octave(i) to obtain the source for octave i (0-based).
type Octaver interface {
	Source
	Octave(i int) Source
}

// checker is implemented by sources that are unusable when built as struct
// literals instead of through their constructors.
type checker interface {
	check() error
}

// Perlin samples a gradient-noise table.
type Perlin struct {
	Table *noise.Table
}

// NewPerlin wraps t. A nil table selects noise.Default().
func NewPerlin(t *noise.Table) Perlin {
	if t == nil {
		t = noise.Default()
	}
	return Perlin{Table: t}
}

func (p Perlin) check() error {
	if p.Table == nil {
		return ErrNilTable
	}
	return nil
}

// Eval2 returns Table.Noise2(x, y).
func (p Perlin) Eval2(x, y float32) float32 {
	return p.Table.Noise2(x, y)
}

// TiledPerlin samples a gradient-noise table that repeats every PerX units
// along x and PerY units along y.
type TiledPerlin struct {
	Table      *noise.Table
	PerX, PerY int
}

// NewTiledPerlin wraps t with the given periods. Periods that would alias are
// rejected. A nil table selects noise.Default().
func NewTiledPerlin(t *noise.Table, perX, perY int) (TiledPerlin, error) {
	if err := noise.CheckPeriod(perX); err != nil {
		return TiledPerlin{}, fmt.Errorf("field: x period: %w", err)
	}
	if err := noise.CheckPeriod(perY); err != nil {
		return TiledPerlin{}, fmt.Errorf("field: y period: %w", err)
	}
	if t == nil {
		t = noise.Default()
	}
	return TiledPerlin{Table: t, PerX: perX, PerY: perY}, nil
}

func (p TiledPerlin) check() error {
	if p.Table == nil {
		return ErrNilTable
	}
	if err := noise.CheckPeriod(p.PerX); err != nil {
		return fmt.Errorf("field: x period: %w", err)
	}
	if err := noise.CheckPeriod(p.PerY); err != nil {
		return fmt.Errorf("field: y period: %w", err)
	}
	return nil
}

// Eval2 returns Table.PNoise2(x, y, PerX, PerY).
func (p TiledPerlin) Eval2(x, y float32) float32 {
	return p.Table.PNoise2(x, y, p.PerX, p.PerY)
}

// Octave returns the source for octave i, with both periods doubled i times
// to follow the doubled frequency.
func (p TiledPerlin) Octave(i int) Source {
	return TiledPerlin{
		Table: p.Table,
		PerX:  noise.OctavePeriod(p.PerX, i),
		PerY:  noise.OctavePeriod(p.PerY, i),
	}
}

// OpenSimplex samples Kurt Spencer's OpenSimplex noise. Unlike Perlin it is
// not zero on integer lattice points.
type OpenSimplex struct {
	noise opensimplex.Noise32
}

// NewOpenSimplex builds an OpenSimplex source from seed.
func NewOpenSimplex(seed int64) *OpenSimplex {
	return &OpenSimplex{noise: opensimplex.New32(seed)}
}

func (o *OpenSimplex) check() error {
	if o == nil || o.noise == nil {
		return ErrNilSource
	}
	return nil
}

// Eval2 returns the OpenSimplex value at (x, y).
func (o *OpenSimplex) Eval2(x, y float32) float32 {
	return o.noise.Eval2(x, y)
}
