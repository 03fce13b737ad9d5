// SPDX-License-Identifier: MIT

package edges

import (
	"github.com/katalvlaran/lvledge/levels"
	"go.uber.org/zap"
)

// Option customizes an Extractor. Constructors panic on meaningless values;
// the extractor itself never panics.
type Option func(*config)

// config is the resolved extractor configuration.
type config struct {
	policy   IntPointPolicy
	runtOpts levels.Options
	log      *zap.Logger
}

// newConfig applies opts over the defaults in order (last wins).
func newConfig(opts ...Option) config {
	cfg := config{
		policy:   Nearest,
		runtOpts: levels.DefaultOptions(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIntPointPolicy selects how intermediate points are chosen.
// Panics on an unknown policy.
func WithIntPointPolicy(p IntPointPolicy) Option {
	if !p.valid() {
		panic("edges: WithIntPointPolicy(unknown policy)")
	}
	return func(c *config) {
		c.policy = p
	}
}

// WithLogger routes state-machine decisions to l at Debug level.
// A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = zap.NewNop()
		}
		c.log = l
	}
}

// WithRuntLevelOptions overrides the levels.Options used to recompute local
// state levels inside a runt bracket. The default is levels.DefaultOptions().
func WithRuntLevelOptions(o levels.Options) Option {
	return func(c *config) {
		c.runtOpts = o
	}
}
