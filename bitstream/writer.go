package bitstream

import (
	"fmt"
	"io"
)

// Writer writes bits to an io.Writer, MSB first.
type Writer struct {
	stream    io.Writer
	pending   [1]byte
	alignment uint8
	written   uint
}

// NewWriter returns a new instance of Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{stream: w}
}

// WriteBit writes a single bit to the stream.
func (w *Writer) WriteBit(bit Bit) error {
	if bit {
		w.pending[0] |= 1 << (7 - w.alignment)
	}

	w.alignment++
	w.written++

	if w.alignment == 8 {
		if n, err := w.stream.Write(w.pending[:]); n != 1 || err != nil {
			if err == nil {
				err = io.ErrShortWrite
			}
			return err
		}
		w.pending[0] = 0
		w.alignment = 0
	}

	return nil
}

// WriteUint64BE writes the numBits LS bits of val, most-significant first.
func (w *Writer) WriteUint64BE(val uint64, numBits uint) error {
	if numBits > MaxReadBits {
		return fmt.Errorf("invalid `numBits`; expected: <= %d, given: %d", MaxReadBits, numBits)
	}
	if numBits < 64 && val>>numBits != 0 {
		return fmt.Errorf("value %d does not fit in %d bits", val, numBits)
	}

	for i := numBits; i > 0; i-- {
		if err := w.WriteBit((val>>(i-1))&1 == 1); err != nil {
			return err
		}
	}

	return nil
}

// Flush flushes the currently pending byte to the stream by filling it with bit.
// Padding bits are not counted by Position.
func (w *Writer) Flush(bit Bit) error {
	written := w.written
	for w.alignment != 0 {
		if err := w.WriteBit(bit); err != nil {
			return err
		}
	}
	w.written = written

	return nil
}

// Position returns the number of bits written so far, excluding padding.
func (w *Writer) Position() uint {
	return w.written
}
