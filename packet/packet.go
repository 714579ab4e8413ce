// Package packet decodes BITS transmissions into packet trees.
//
// A transmission is a hierarchy of packets. Every packet starts with a 3-bit
// version and a 3-bit type ID. Type 4 is a literal value; every other type
// is an operator over one or more sub-packets.
package packet

import "fmt"

const (
	versionBits     = 3
	typeIDBits      = 3
	lengthTypeBits  = 1
	totalLengthBits = 15
	countBits       = 11
	groupBits       = 5
	groupValueBits  = 4

	literalTypeID = 4
)

// Packet is either a *Literal or an *Operator.
type Packet interface {
	fmt.Stringer

	// PacketVersion returns the 3-bit version field of the packet.
	PacketVersion() uint8

	isPacket()
}

// Literal is a terminal numeric value.
type Literal struct {
	Version uint8
	Value   uint64

	// Groups is the number of 5-bit groups the value was encoded with on
	// the wire. Zero means the minimal encoding.
	Groups int
}

func (l *Literal) PacketVersion() uint8 { return l.Version }
func (*Literal) isPacket() {}

func (l *Literal) String() string { return Format(l) }

// LengthType selects how an operator frames its sub-packets.
type LengthType uint8

const (
	// TotalLength frames sub-packets by their total length in bits.
	TotalLength LengthType = 0
	// Count frames sub-packets by their number.
	Count LengthType = 1
)

// Operator combines the values of its sub-packets.
type Operator struct {
	Version    uint8
	Code       OperatorCode
	LengthType LengthType
	Children   []Packet
}

func (o *Operator) PacketVersion() uint8 { return o.Version }
func (*Operator) isPacket() {}

func (o *Operator) String() string { return Format(o) }

// OperatorCode is the type ID of an operator packet.
type OperatorCode uint8

const (
	Sum         OperatorCode = 0
	Product     OperatorCode = 1
	Minimum     OperatorCode = 2
	Maximum     OperatorCode = 3
	GreaterThan OperatorCode = 5
	LessThan    OperatorCode = 6
	Equal       OperatorCode = 7
)

// Valid reports whether c maps to a known operator.
func (c OperatorCode) Valid() bool {
	switch c {
	case Sum, Product, Minimum, Maximum, GreaterThan, LessThan, Equal:
		return true
	}
	return false
}

func (c OperatorCode) String() string {
	switch c {
	case Sum:
		return "+"
	case Product:
		return "*"
	case Minimum:
		return "min"
	case Maximum:
		return "max"
	case GreaterThan:
		return ">"
	case LessThan:
		return "<"
	case Equal:
		return "=="
	default:
		return fmt.Sprintf("invalid(%d)", uint8(c))
	}
}
