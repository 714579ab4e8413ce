package packet

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spacemeshos/bits/bitstream"
	"github.com/spacemeshos/bits/shared"
)

const (
	maxVersion     = 1<<versionBits - 1
	maxTotalLength = 1<<totalLengthBits - 1
	maxCount       = 1<<countBits - 1
)

// BitLen returns the number of bits p occupies when encoded.
func BitLen(p Packet) uint {
	switch p := p.(type) {
	case *Literal:
		return versionBits + typeIDBits + uint(literalGroups(p))*groupBits
	case *Operator:
		n := uint(versionBits + typeIDBits + lengthTypeBits)
		if p.LengthType == Count {
			n += countBits
		} else {
			n += totalLengthBits
		}
		return n + childrenBitLen(p)
	default:
		panic(fmt.Sprintf("unexpected packet type %T", p))
	}
}

func childrenBitLen(op *Operator) uint {
	var n uint
	for _, c := range op.Children {
		n += BitLen(c)
	}
	return n
}

// literalGroups returns the number of 5-bit groups used to encode l.
func literalGroups(l *Literal) int {
	groups := 1
	for v := l.Value >> groupValueBits; v > 0; v >>= groupValueBits {
		groups++
	}
	if l.Groups > groups {
		return l.Groups
	}
	return groups
}

// EncodeHex encodes p as an upper-case hexadecimal transmission, padded with
// zero bits to a whole number of bytes.
func EncodeHex(p Packet) (string, error) {
	buf := bytes.NewBuffer(nil)
	w := bitstream.NewWriter(buf)
	if err := Encode(w, p); err != nil {
		return "", err
	}
	if err := w.Flush(bitstream.Zero); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf.Bytes())), nil
}

// Encode writes p, including all of its sub-packets, to w.
func Encode(w *bitstream.Writer, p Packet) error {
	if p.PacketVersion() > maxVersion {
		return fmt.Errorf("invalid `version`; expected: <= %d, given: %d", maxVersion, p.PacketVersion())
	}
	if err := w.WriteUint64BE(uint64(p.PacketVersion()), versionBits); err != nil {
		return err
	}

	switch p := p.(type) {
	case *Literal:
		return encodeLiteral(w, p)
	case *Operator:
		return encodeOperator(w, p)
	default:
		return fmt.Errorf("unexpected packet type %T", p)
	}
}

func encodeLiteral(w *bitstream.Writer, l *Literal) error {
	if err := w.WriteUint64BE(literalTypeID, typeIDBits); err != nil {
		return err
	}

	for i := literalGroups(l) - 1; i >= 0; i-- {
		group := l.Value >> (uint(i) * groupValueBits) & (1<<groupValueBits - 1)
		if i > 0 {
			group |= 1 << groupValueBits
		}
		if err := w.WriteUint64BE(group, groupBits); err != nil {
			return err
		}
	}
	return nil
}

func encodeOperator(w *bitstream.Writer, op *Operator) error {
	if op.Code == literalTypeID || op.Code > 1<<typeIDBits-1 {
		return fmt.Errorf("%w: code %d cannot be encoded", shared.ErrInvalidOperator, op.Code)
	}
	if op.LengthType != TotalLength && op.LengthType != Count {
		return fmt.Errorf("%w: %d", shared.ErrUnknownLengthTypeBit, op.LengthType)
	}
	if err := w.WriteUint64BE(uint64(op.Code), typeIDBits); err != nil {
		return err
	}
	if err := w.WriteUint64BE(uint64(op.LengthType), lengthTypeBits); err != nil {
		return err
	}

	switch op.LengthType {
	case TotalLength:
		n := childrenBitLen(op)
		if n > maxTotalLength {
			return fmt.Errorf("sub-packets total length %d exceeds %d bits", n, maxTotalLength)
		}
		if err := w.WriteUint64BE(uint64(n), totalLengthBits); err != nil {
			return err
		}
	case Count:
		if len(op.Children) > maxCount {
			return fmt.Errorf("sub-packets count %d exceeds %d", len(op.Children), maxCount)
		}
		if err := w.WriteUint64BE(uint64(len(op.Children)), countBits); err != nil {
			return err
		}
	}

	for _, c := range op.Children {
		if err := Encode(w, c); err != nil {
			return err
		}
	}
	return nil
}
