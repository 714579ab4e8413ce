// Package bitstream provides bit-granularity access to transmissions,
// following the MSB pattern, where most-significant bits are read/written first.
package bitstream

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)

// MaxReadBits is the widest value a single ReadBits call can return.
const MaxReadBits = 64
