package diskplot

// Config controls the sampling and output size of the figures.
type Config struct {
	// Points is the number of grid samples per curve.
	Points int
	// RMin and RMax bound the radius grid in gravitational radii.
	RMin, RMax float64
	// Width and Height of saved images in inches.
	Width, Height float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns 1000 log-spaced radii on [1, 1000] and a 6x4 inch
// canvas.
func DefaultConfig() Config {
	return Config{
		Points: 1000,
		RMin:   1,
		RMax:   1000,
		Width:  6,
		Height: 4,
	}
}

// WithPoints sets the number of samples per curve.
func WithPoints(n int) Option {
	return func(cfg *Config) {
		if n > 1 {
			cfg.Points = n
		}
	}
}

// WithRange sets the radius range. It is ignored unless 0 < rmin < rmax.
func WithRange(rmin, rmax float64) Option {
	return func(cfg *Config) {
		if rmin > 0 && rmax > rmin {
			cfg.RMin = rmin
			cfg.RMax = rmax
		}
	}
}

// WithSize sets the image size in inches.
func WithSize(width, height float64) Option {
	return func(cfg *Config) {
		if width > 0 && height > 0 {
			cfg.Width = width
			cfg.Height = height
		}
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
