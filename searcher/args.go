package searcher

import "stonehenge/game"

type Option func(c *config)

type config struct {
	metrics  MetricsCollector
	evaluate game.Evaluate
	seed     uint64
}

func newConfig(options []Option) config {
	c := config{ // Default values
		metrics:  NewNoMetricsCollector(),
		evaluate: game.EstimateOutcome,
		seed:     1,
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

func WithMetrics(collector MetricsCollector) Option {
	return func(c *config) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

// WithEvaluationFn replaces the heuristic used by the rough outcome strategy.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}
