package field

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/cwbudde/algo-vecmath"
	"github.com/dgravesa/go-parallel/parallel"

	"github.com/jtsiomb/gph-math/noise"
)

// Renderer samples noise sources onto a raster.
type Renderer struct {
	cfg Config
}

// NewRenderer creates a renderer from options applied over DefaultConfig.
// The configuration is validated by Render.
func NewRenderer(opts ...Option) *Renderer {
	return &Renderer{cfg: ApplyOptions(opts...)}
}

// Config returns the renderer configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Step returns the lattice distance between neighbouring samples.
func (r *Renderer) Step() float32 {
	return r.cfg.Scale / float32(r.cfg.Width)
}

func (r *Renderer) validate(src Source) error {
	if src == nil {
		return ErrNilSource
	}
	if r.cfg.Width <= 0 || r.cfg.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, r.cfg.Width, r.cfg.Height)
	}
	if !(r.cfg.Scale > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, r.cfg.Scale)
	}
	if r.cfg.Mode != ModeNoise {
		if err := noise.CheckOctaves(r.cfg.Octaves); err != nil {
			return fmt.Errorf("field: %w", err)
		}
	}
	if c, ok := src.(checker); ok {
		return c.check()
	}
	return nil
}

// span returns the largest coordinate magnitude sampled at frequency 1.
func (r *Renderer) span() float32 {
	step := r.Step()
	x1 := r.cfg.OriginX + float32(r.cfg.Width-1)*step
	y1 := r.cfg.OriginY + float32(r.cfg.Height-1)*step
	return math32.Max(
		math32.Max(math32.Abs(r.cfg.OriginX), math32.Abs(x1)),
		math32.Max(math32.Abs(r.cfg.OriginY), math32.Abs(y1)),
	)
}

// Render samples src over the configured raster and returns Width*Height
// values, row-major. In ModeFbm and ModeTurbulence octave i is sampled at
// frequency 2^i and weighted by 2^-i. Octaves whose sample positions would
// leave the float32 range are skipped; for lattice sources they are zero.
func (r *Renderer) Render(src Source) ([]float64, error) {
	if err := r.validate(src); err != nil {
		return nil, err
	}

	n := r.cfg.Width * r.cfg.Height
	if r.cfg.Mode == ModeNoise {
		out := make([]float64, n)
		r.sample(out, src, 1, false)
		return out, nil
	}

	out := make([]float64, n)
	layer := make([]float64, n)
	scaled := make([]float64, n)
	ridged := r.cfg.Mode == ModeTurbulence

	span := r.span()
	freq := float32(1)
	for i := 0; i < r.cfg.Octaves; i++ {
		if math32.IsInf(freq, 1) || math32.IsInf(span*freq, 1) {
			break
		}
		s := src
		if o, ok := src.(Octaver); ok {
			s = o.Octave(i)
		}
		r.sample(layer, s, freq, ridged)
		vecmath.ScaleBlock(scaled, layer, 1/float64(freq))
		vecmath.AddBlockInPlace(out, scaled)
		freq *= 2
	}
	return out, nil
}

// sample fills dst with src evaluated at freq times each sample position.
func (r *Renderer) sample(dst []float64, src Source, freq float32, ridged bool) {
	w := r.cfg.Width
	step := r.Step()
	parallel.For(r.cfg.Height, func(row, _ int) {
		y := (r.cfg.OriginY + float32(row)*step) * freq
		line := dst[row*w : (row+1)*w]
		for col := range line {
			x := (r.cfg.OriginX + float32(col)*step) * freq
			v := src.Eval2(x, y)
			if ridged {
				v = math32.Abs(v)
			}
			line[col] = float64(v)
		}
	})
}
