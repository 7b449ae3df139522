// Package pipeline wires gate, gamma2, gamma1, hybrid, splittree, eug,
// embed, ucemit and ucvalidate together into the end-to-end compiler: parse
// a gate list, normalize it to fanout 2, build its Γ₂ graph, split it
// recursively (2-way, 4-way, or hybrid), embed the split tree, and emit a
// validated circuit/programming file pair.
package pipeline

// Config is the compiler's explicit configuration, threaded through every
// constructor rather than held as package-level mutable state — this
// replaces the legacy CLI's compile-time #define config.
type Config struct {
	// Version selects the split strategy: 0 = hybrid (oracle picks 2-way
	// or 4-way per recursion level), 2 = pure 2-way, 4 = pure 4-way,
	// -2 = pure 4-way, split exactly as 4 is.
	Version int

	// Zhao enables Zhao's block-size optimisation in the hybrid oracle's
	// cost table (§4.5). Only the oracle reads it, and Run builds the
	// oracle only when Version is 0; under the other versions it has no
	// effect.
	Zhao bool

	// RandomSeed seeds the `-random N` smoke-test generator; unused
	// otherwise.
	RandomSeed int64
}

// Hybrid reports whether this configuration consults the hybrid oracle at
// every recursion level rather than using a single fixed split strategy.
func (c Config) Hybrid() bool {
	return c.Version == 0
}

// FourWay reports whether the root-level split is 4-way (quartering)
// rather than 2-way (halving).
func (c Config) FourWay() bool {
	return c.Version == 4 || c.Version == -2
}

// Option mutates a Config before a pipeline run, mirroring the host
// library's BuilderOption/GraphOption functional-option pattern.
type Option func(*Config)

// WithVersion sets the split-strategy version (0, 2, 4, or -2).
func WithVersion(v int) Option {
	return func(c *Config) { c.Version = v }
}

// WithZhao enables Zhao's block-size optimisation.
func WithZhao(zhao bool) Option {
	return func(c *Config) { c.Zhao = zhao }
}

// WithRandomSeed sets the deterministic seed for `-random N` generation.
func WithRandomSeed(seed int64) Option {
	return func(c *Config) { c.RandomSeed = seed }
}

// NewConfig returns the default Config (Version 0: hybrid, no Zhao
// optimisation, seed 0) with opts applied in order.
func NewConfig(opts ...Option) Config {
	cfg := Config{Version: 0}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
