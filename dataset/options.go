package dataset

import (
	"math/rand"
	"time"
)

// Option customizes dataset construction by mutating a config instance
// before any sampling begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config aggregates all generation knobs. It is resolved once per call and
// passed by value; there is no package-level state between calls.
type config struct {
	// RNG for uniform draws; nil until resolved in newConfig.
	rng *rand.Rand
}

// WithRand provides an explicit RNG for generation.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("dataset: WithRand(nil)")
	}
	return func(c *config) {
		// Attach the RNG; callers decide the seed policy.
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(c *config) {
		// Seeded source → reproducible draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// newConfig applies options in order (later overrides earlier) and resolves
// the RNG. When no RNG was supplied, a clock-seeded generator is created and
// owned by this call alone — successive generations never share hidden state.
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
