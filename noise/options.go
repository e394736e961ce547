package noise

// defaultSeed seeds the table returned by Default.
const defaultSeed = 1

// defaultStream selects the PCG stream when WithStream is not given.
const defaultStream = 0xda3e39cb94b95bdb

type config struct {
	seed     uint64
	stream   uint64
	legacy3D bool
}

// Option configures table construction.
type Option func(*config)

func defaultConfig() config {
	return config{
		seed:   defaultSeed,
		stream: defaultStream,
	}
}

// WithSeed sets the PCG state seed. Equal seeds build identical tables.
func WithSeed(seed uint64) Option {
	return func(cfg *config) {
		cfg.seed = seed
	}
}

// WithStream selects the PCG stream. Tables built with the same seed on
// different streams are unrelated.
func WithStream(stream uint64) Option {
	return func(cfg *config) {
		cfg.stream = stream
	}
}

// WithLegacy3D makes Noise3 and PNoise3 index both z slices of a cell with
// the near slice's lattice value. This reproduces fields generated by the
// older evaluator bit for bit; new code should not use it.
func WithLegacy3D() Option {
	return func(cfg *config) {
		cfg.legacy3D = true
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
