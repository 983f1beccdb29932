package flux

// Config describes the black hole and accretion flow of a disk profile.
type Config struct {
	// Mass of the black hole in solar masses.
	Mass float64
	// AccretionRate in units of the Eddington rate L_Edd / (eta c^2).
	AccretionRate float64
	// Spin is the dimensionless Kerr parameter a*.
	Spin float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a 10 solar mass Schwarzschild hole accreting at a
// tenth of the Eddington rate.
func DefaultConfig() Config {
	return Config{
		Mass:          10,
		AccretionRate: 0.1,
		Spin:          0,
	}
}

// WithMass sets the black hole mass in solar masses. It is validated by
// NewProfile.
func WithMass(mass float64) Option {
	return func(cfg *Config) {
		cfg.Mass = mass
	}
}

// WithAccretionRate sets the accretion rate in Eddington units. It is
// validated by NewProfile.
func WithAccretionRate(mdot float64) Option {
	return func(cfg *Config) {
		cfg.AccretionRate = mdot
	}
}

// WithSpin sets the Kerr spin parameter. It is validated by NewProfile.
func WithSpin(spin float64) Option {
	return func(cfg *Config) {
		cfg.Spin = spin
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
