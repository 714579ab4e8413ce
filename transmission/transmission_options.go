package transmission

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/spacemeshos/bits/config"
)

type option struct {
	parallelism uint
	maxDepth    uint
	logger      *zap.Logger
}

func applyOpts(options ...OptionFunc) (*option, error) {
	opts := &option{
		parallelism: config.DefaultParallelism,
		maxDepth:    config.DefaultMaxDepth,
		logger:      zap.NewNop(),
	}
	for _, opt := range options {
		if err := opt(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

type OptionFunc func(*option) error

// WithConfig applies the processing parameters of cfg.
func WithConfig(cfg *config.Config) OptionFunc {
	return func(o *option) error {
		if err := WithParallelism(cfg.Parallelism)(o); err != nil {
			return err
		}
		return WithMaxDepth(cfg.MaxDepth)(o)
	}
}

// WithParallelism sets how many transmissions are processed concurrently.
func WithParallelism(n uint) OptionFunc {
	return func(o *option) error {
		if n == 0 {
			return fmt.Errorf("invalid `parallelism`; expected: > 0, given: %d", n)
		}
		o.parallelism = n
		return nil
	}
}

// WithMaxDepth sets the deepest packet nesting accepted.
func WithMaxDepth(depth uint) OptionFunc {
	return func(o *option) error {
		if depth == 0 {
			return fmt.Errorf("invalid `maxDepth`; expected: > 0, given: %d", depth)
		}
		o.maxDepth = depth
		return nil
	}
}

func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) error {
		o.logger = logger
		return nil
	}
}
