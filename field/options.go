package field

// Mode selects how octaves are combined.
type Mode int

const (
	// ModeNoise renders a single octave.
	ModeNoise Mode = iota
	// ModeFbm sums octaves with amplitude 1/frequency.
	ModeFbm
	// ModeTurbulence sums the magnitudes of the fBm octaves.
	ModeTurbulence
)

// String returns the flag-style name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNoise:
		return "noise"
	case ModeFbm:
		return "fbm"
	case ModeTurbulence:
		return "turbulence"
	default:
		return "unknown"
	}
}

// ParseMode maps a name produced by Mode.String back to the mode.
func ParseMode(s string) (Mode, bool) {
	for _, m := range []Mode{ModeNoise, ModeFbm, ModeTurbulence} {
		if m.String() == s {
			return m, true
		}
	}
	return ModeNoise, false
}

// Config holds raster sampling settings.
type Config struct {
	Width, Height    int
	Scale            float32 // lattice units spanned by the raster width
	OriginX, OriginY float32
	Octaves          int
	Mode             Mode
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a 256x256 single-octave raster spanning 8 lattice units.
func DefaultConfig() Config {
	return Config{
		Width:   256,
		Height:  256,
		Scale:   8,
		Octaves: 1,
		Mode:    ModeNoise,
	}
}

// WithSize sets the raster dimensions in samples.
func WithSize(width, height int) Option {
	return func(cfg *Config) {
		cfg.Width = width
		cfg.Height = height
	}
}

// WithScale sets how many lattice units the raster width spans. Samples are
// square, so the height spans scale*height/width units.
func WithScale(scale float32) Option {
	return func(cfg *Config) {
		cfg.Scale = scale
	}
}

// WithOrigin sets the lattice coordinate of the first sample.
func WithOrigin(x, y float32) Option {
	return func(cfg *Config) {
		cfg.OriginX = x
		cfg.OriginY = y
	}
}

// WithOctaves sets the octave count used by ModeFbm and ModeTurbulence.
func WithOctaves(n int) Option {
	return func(cfg *Config) {
		cfg.Octaves = n
	}
}

// WithMode selects how octaves are combined.
func WithMode(m Mode) Option {
	return func(cfg *Config) {
		cfg.Mode = m
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
