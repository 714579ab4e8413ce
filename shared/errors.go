package shared

import (
	"errors"
	"fmt"
)

// Decoding errors.
var (
	ErrInvalidHex           = errors.New("invalid hex")
	ErrTruncated            = errors.New("truncated transmission")
	ErrUnknownLengthTypeBit = errors.New("unknown length type bit")
	ErrTooDeep              = errors.New("packet nesting too deep")
	ErrLiteralOverflow      = errors.New("literal exceeds 64 bits")
	ErrLengthMismatch       = errors.New("sub-packets do not match declared length")
)

// Evaluation errors.
var (
	ErrEmptyChildren   = errors.New("operator has no sub-packets")
	ErrArityMismatch   = errors.New("operator arity mismatch")
	ErrInvalidOperator = errors.New("invalid operator")
	ErrOverflow        = errors.New("uint64 overflow")
)

// DecodeError reports the bit offset and the field being read when decoding
// a transmission failed.
type DecodeError struct {
	Offset uint
	Field  string
	Err    error
}

func (err *DecodeError) Error() string {
	return fmt.Sprintf("decode `%v` at bit %v: %v", err.Field, err.Offset, err.Err)
}

func (err *DecodeError) Unwrap() error {
	return err.Err
}

