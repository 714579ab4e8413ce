// Package transmission decodes and evaluates batches of independent
// transmissions.
package transmission

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spacemeshos/bits/evaluating"
	"github.com/spacemeshos/bits/packet"
)

const labelSize = 20

// Result holds the outcome of processing one transmission.
type Result struct {
	Index int
	Input string

	// Packet is nil when decoding failed.
	Packet packet.Packet

	// Bits is the number of bits used by the outermost packet.
	Bits     uint
	Versions uint64
	Value    uint64

	DecodeErr error
	EvalErr   error
}

// Label returns the input, shortened for display.
func (r *Result) Label() string {
	if len(r.Input) <= labelSize {
		return r.Input
	}
	return r.Input[:labelSize] + "..."
}

// Err returns the first failure of the transmission, if any.
func (r *Result) Err() error {
	if r.DecodeErr != nil {
		return fmt.Errorf("decode: %w", r.DecodeErr)
	}
	if r.EvalErr != nil {
		return fmt.Errorf("evaluate: %w", r.EvalErr)
	}
	return nil
}

// Process decodes, sums the versions of and evaluates every transmission.
// A transmission failing to decode or evaluate only marks its own Result;
// Process itself fails only if ctx is done. Results keep the input order.
func Process(ctx context.Context, lines []string, opts ...OptionFunc) ([]Result, error) {
	options, err := applyOpts(opts...)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(lines))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(int(options.parallelism))

	for i, line := range lines {
		i, line := i, line
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			results[i] = process(i, line, options)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func process(index int, line string, options *option) Result {
	res := Result{Index: index, Input: line}
	logger := options.logger.With(zap.Int("transmission", index))

	p, n, err := packet.DecodeHex(line,
		packet.WithMaxDepth(options.maxDepth),
		packet.WithLogger(logger),
	)
	if err != nil {
		logger.Warn("failed to decode transmission", zap.String("input", res.Label()), zap.Error(err))
		res.DecodeErr = err
		return res
	}
	res.Packet = p
	res.Bits = n
	res.Versions = packet.SumVersions(p)

	res.Value, res.EvalErr = evaluating.Evaluate(p, evaluating.WithLogger(logger))
	if res.EvalErr != nil {
		logger.Warn("failed to evaluate transmission", zap.String("input", res.Label()), zap.Error(res.EvalErr))
	}
	return res
}
