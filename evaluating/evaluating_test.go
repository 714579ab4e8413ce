package evaluating_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/spacemeshos/bits/evaluating"
	"github.com/spacemeshos/bits/packet"
	"github.com/spacemeshos/bits/shared"
)

func lit(v uint64) packet.Packet {
	return &packet.Literal{Value: v}
}

func op(code packet.OperatorCode, children ...packet.Packet) packet.Packet {
	return &packet.Operator{Code: code, LengthType: packet.Count, Children: children}
}

func TestEvaluate_Examples(t *testing.T) {
	tests := []struct {
		input    string
		expected uint64
	}{
		{"C200B40A82", 3},
		{"04005AC33890", 54},
		{"880086C3E88112", 7},
		{"CE00C43D881120", 9},
		{"D8005AC2A8F0", 1},
		{"F600BC2D8F", 0},
		{"9C005AC2F8F0", 0},
		{"9C0141080250320F1802104A08", 1},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			p, _, err := packet.DecodeHex(tc.input)
			require.NoError(t, err)

			v, err := evaluating.Evaluate(p, evaluating.WithLogger(zaptest.NewLogger(t)))
			require.NoError(t, err)
			require.Equal(t, tc.expected, v)
		})
	}
}

func TestEvaluate_Operators(t *testing.T) {
	r := require.New(t)

	tests := []struct {
		p        packet.Packet
		expected uint64
	}{
		{lit(42), 42},
		{op(packet.Sum), 0},
		{op(packet.Product), 1},
		{op(packet.Sum, lit(1), lit(2), lit(3)), 6},
		{op(packet.Product, lit(2), lit(3), lit(7)), 42},
		{op(packet.Product, lit(math.MaxUint64), lit(0)), 0},
		{op(packet.Minimum, lit(9)), 9},
		{op(packet.Maximum, lit(3), lit(11), lit(5)), 11},
		{op(packet.GreaterThan, lit(3), lit(2)), 1},
		{op(packet.GreaterThan, lit(2), lit(2)), 0},
		{op(packet.LessThan, lit(2), lit(3)), 1},
		{op(packet.Equal, op(packet.Sum, lit(1), lit(3)), op(packet.Product, lit(2), lit(2))), 1},
		{op(packet.Sum, lit(math.MaxUint64-1), lit(1)), math.MaxUint64},
	}

	for _, tc := range tests {
		v, err := evaluating.Evaluate(tc.p)
		r.NoError(err, tc.p.String())
		r.Equal(tc.expected, v, tc.p.String())
	}
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		name string
		p    packet.Packet
		err  error
	}{
		{"empty minimum", op(packet.Minimum), shared.ErrEmptyChildren},
		{"empty maximum", op(packet.Maximum), shared.ErrEmptyChildren},
		{"comparison with one operand", op(packet.GreaterThan, lit(1)), shared.ErrArityMismatch},
		{"comparison with three operands", op(packet.Equal, lit(1), lit(1), lit(1)), shared.ErrArityMismatch},
		{"literal type as operator", op(4, lit(1)), shared.ErrInvalidOperator},
		{"out of range code", op(12, lit(1)), shared.ErrInvalidOperator},
		{"sum overflow", op(packet.Sum, lit(math.MaxUint64), lit(1)), shared.ErrOverflow},
		{"product overflow", op(packet.Product, lit(1<<32), lit(1<<32)), shared.ErrOverflow},
		{"nested failure", op(packet.Sum, lit(1), op(packet.Maximum)), shared.ErrEmptyChildren},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := evaluating.Evaluate(tc.p)
			require.ErrorIs(t, err, tc.err)
			require.Zero(t, v)
		})
	}
}

func TestEvaluate_FirstErrorWins(t *testing.T) {
	p := op(packet.Sum, op(packet.LessThan, lit(1)), op(4))

	_, err := evaluating.Evaluate(p)
	require.ErrorIs(t, err, shared.ErrArityMismatch)
	require.NotErrorIs(t, err, shared.ErrInvalidOperator)
}
