package bitstream

import (
	"encoding/hex"
	"fmt"

	"github.com/spacemeshos/bits/shared"
)

// Reader reads bits from an in-memory buffer, MSB first.
// The cursor only moves forward.
type Reader struct {
	data []byte
	size uint
	pos  uint
}

// NewReader returns a new instance of Reader over all bits of data.
func NewReader(data []byte) *Reader {
	return &Reader{
		data: data,
		size: uint(len(data)) * 8,
	}
}

// NewHexReader returns a Reader over the bits of a hexadecimal transmission.
// Only upper-case digits are accepted, and the length must be even.
func NewHexReader(s string) (*Reader, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty transmission", shared.ErrInvalidHex)
	}
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", shared.ErrInvalidHex, len(s))
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return nil, fmt.Errorf("%w: character %q at offset %d", shared.ErrInvalidHex, c, i)
		}
	}

	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidHex, err)
	}
	return NewReader(data), nil
}

// ReadBits reads the next numBits from the stream as an unsigned Big-Endian
// integer. The cursor is left untouched on failure.
func (r *Reader) ReadBits(numBits uint) (uint64, error) {
	if numBits > MaxReadBits {
		return 0, fmt.Errorf("invalid `numBits`; expected: <= %d, given: %d", MaxReadBits, numBits)
	}
	if numBits > r.Remaining() {
		return 0, shared.ErrTruncated
	}

	var val uint64
	for numBits > 0 {
		// Take as many bits as possible from the current byte.
		offset := r.pos % 8
		take := 8 - offset
		if take > numBits {
			take = numBits
		}

		byt := r.data[r.pos/8]
		chunk := uint64(byt>>(8-offset-take)) & (1<<take - 1)
		val = val<<take | chunk

		r.pos += take
		numBits -= take
	}

	return val, nil
}

// ReadBit reads the next single bit from the stream.
func (r *Reader) ReadBit() (Bit, error) {
	v, err := r.ReadBits(1)
	if err != nil {
		return Zero, err
	}
	return v == 1, nil
}

// Position returns the number of bits consumed so far.
func (r *Reader) Position() uint {
	return r.pos
}

// Len returns the total number of bits in the stream.
func (r *Reader) Len() uint {
	return r.size
}

// Remaining returns the number of bits not yet consumed.
func (r *Reader) Remaining() uint {
	return r.size - r.pos
}
