// Package evaluating reduces a decoded packet tree to a single value.
package evaluating

import (
	"fmt"
	"math/bits"

	"go.uber.org/zap"

	"github.com/spacemeshos/bits/packet"
	"github.com/spacemeshos/bits/shared"
)

// Evaluate computes the value of the expression rooted at p.
// Sub-packets are evaluated before their operator, and the first error
// stops the evaluation.
func Evaluate(p packet.Packet, opts ...OptionFunc) (uint64, error) {
	options := applyOpts(opts...)
	return evaluate(p, options.logger)
}

func evaluate(p packet.Packet, logger *zap.Logger) (uint64, error) {
	switch p := p.(type) {
	case *packet.Literal:
		return p.Value, nil
	case *packet.Operator:
		if !p.Code.Valid() {
			return 0, fmt.Errorf("%w: code %d", shared.ErrInvalidOperator, uint8(p.Code))
		}

		values := make([]uint64, len(p.Children))
		for i, c := range p.Children {
			v, err := evaluate(c, logger)
			if err != nil {
				return 0, err
			}
			values[i] = v
		}

		res, err := reduce(p.Code, values)
		if err != nil {
			return 0, err
		}
		logger.Debug("packet evaluated",
			zap.Stringer("op", p.Code),
			zap.Uint64s("operands", values),
			zap.Uint64("result", res),
		)
		return res, nil
	default:
		return 0, fmt.Errorf("unexpected packet type %T", p)
	}
}

func reduce(code packet.OperatorCode, values []uint64) (uint64, error) {
	switch code {
	case packet.Sum:
		var sum uint64
		for _, v := range values {
			var carry uint64
			sum, carry = bits.Add64(sum, v, 0)
			if carry != 0 {
				return 0, fmt.Errorf("%w: sum of %v", shared.ErrOverflow, values)
			}
		}
		return sum, nil

	case packet.Product:
		product := uint64(1)
		for _, v := range values {
			hi, lo := bits.Mul64(product, v)
			if hi != 0 {
				return 0, fmt.Errorf("%w: product of %v", shared.ErrOverflow, values)
			}
			product = lo
		}
		return product, nil

	case packet.Minimum, packet.Maximum:
		if len(values) == 0 {
			return 0, fmt.Errorf("%w: %v", shared.ErrEmptyChildren, code)
		}
		res := values[0]
		for _, v := range values[1:] {
			if (code == packet.Minimum && v < res) || (code == packet.Maximum && v > res) {
				res = v
			}
		}
		return res, nil

	case packet.GreaterThan, packet.LessThan, packet.Equal:
		if len(values) != 2 {
			return 0, fmt.Errorf("%w: %v expects 2 sub-packets, given: %d", shared.ErrArityMismatch, code, len(values))
		}
		var ok bool
		switch code {
		case packet.GreaterThan:
			ok = values[0] > values[1]
		case packet.LessThan:
			ok = values[0] < values[1]
		default:
			ok = values[0] == values[1]
		}
		if ok {
			return 1, nil
		}
		return 0, nil

	default:
		return 0, fmt.Errorf("%w: code %d", shared.ErrInvalidOperator, uint8(code))
	}
}
