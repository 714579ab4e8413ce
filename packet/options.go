package packet

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultMaxDepth bounds the nesting of sub-packets accepted by Decode.
const DefaultMaxDepth = 256

type option struct {
	maxDepth uint
	logger   *zap.Logger
}

func applyOpts(options ...OptionFunc) (*option, error) {
	opts := &option{
		maxDepth: DefaultMaxDepth,
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if err := opt(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

type OptionFunc func(*option) error

// WithMaxDepth sets the deepest sub-packet nesting Decode accepts.
// The outermost packet is at depth 1.
func WithMaxDepth(depth uint) OptionFunc {
	return func(o *option) error {
		if depth == 0 {
			return fmt.Errorf("invalid `maxDepth`; expected: > 0, given: %d", depth)
		}
		o.maxDepth = depth
		return nil
	}
}

// WithLogger sets the logger used to trace decoded packets.
func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) error {
		o.logger = logger
		return nil
	}
}
