package assembly

import "go.uber.org/zap"

// Option customizes Build.
type Option func(*buildConfig)

type buildConfig struct {
	log          *zap.Logger
	warnOverlaps bool
}

func newConfig(opts ...Option) buildConfig {
	cfg := buildConfig{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger sets the logger for stage progress. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("assembly: WithLogger(nil)")
	}

	return func(c *buildConfig) { c.log = l }
}

// WithOverlapWarnings logs each position a later rule overwrites.
func WithOverlapWarnings() Option {
	return func(c *buildConfig) { c.warnOverlaps = true }
}
