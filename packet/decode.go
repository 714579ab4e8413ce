package packet

import (
	"go.uber.org/zap"

	"github.com/spacemeshos/bits/bitstream"
	"github.com/spacemeshos/bits/shared"
)

// DecodeHex decodes the outermost packet of a hexadecimal transmission.
// It returns the packet and the number of bits it occupies; any bits left
// after it are padding and are ignored.
func DecodeHex(s string, opts ...OptionFunc) (Packet, uint, error) {
	r, err := bitstream.NewHexReader(s)
	if err != nil {
		return nil, 0, err
	}
	return Decode(r, opts...)
}

// Decode reads one packet, including all of its sub-packets, from r.
// It returns the packet and the number of bits consumed by it.
func Decode(r *bitstream.Reader, opts ...OptionFunc) (Packet, uint, error) {
	options, err := applyOpts(opts...)
	if err != nil {
		return nil, 0, err
	}

	d := &decoder{r: r, opts: options}
	p, n, err := d.decode(1)
	if err != nil {
		return nil, 0, err
	}

	options.logger.Debug("transmission decoded",
		zap.Uint("bits", n),
		zap.Uint("padding", r.Remaining()),
	)
	return p, n, nil
}

type decoder struct {
	r    *bitstream.Reader
	opts *option
}

func (d *decoder) read(numBits uint, field string) (uint64, error) {
	offset := d.r.Position()
	v, err := d.r.ReadBits(numBits)
	if err != nil {
		return 0, &shared.DecodeError{Offset: offset, Field: field, Err: err}
	}
	return v, nil
}

func (d *decoder) decode(depth uint) (Packet, uint, error) {
	start := d.r.Position()
	if depth > d.opts.maxDepth {
		return nil, 0, &shared.DecodeError{Offset: start, Field: "packet", Err: shared.ErrTooDeep}
	}

	version, err := d.read(versionBits, "version")
	if err != nil {
		return nil, 0, err
	}
	typeID, err := d.read(typeIDBits, "type id")
	if err != nil {
		return nil, 0, err
	}

	var p Packet
	if typeID == literalTypeID {
		p, err = d.literal(uint8(version))
	} else {
		p, err = d.operator(uint8(version), OperatorCode(typeID), depth)
	}
	if err != nil {
		return nil, 0, err
	}

	n := d.r.Position() - start
	d.opts.logger.Debug("packet decoded",
		zap.Uint("offset", start),
		zap.Uint("bits", n),
		zap.Uint64("version", version),
		zap.Uint64("type", typeID),
		zap.Uint("depth", depth),
	)
	return p, n, nil
}

func (d *decoder) literal(version uint8) (*Literal, error) {
	var value uint64
	var groups int
	for {
		offset := d.r.Position()
		group, err := d.read(groupBits, "literal group")
		if err != nil {
			return nil, err
		}

		// The value is about to lose its most-significant bits.
		if value>>(64-groupValueBits) != 0 {
			return nil, &shared.DecodeError{Offset: offset, Field: "literal group", Err: shared.ErrLiteralOverflow}
		}
		value = value<<groupValueBits | group&(1<<groupValueBits-1)
		groups++

		if group>>groupValueBits == 0 {
			break
		}
	}

	return &Literal{Version: version, Value: value, Groups: groups}, nil
}

func (d *decoder) operator(version uint8, code OperatorCode, depth uint) (*Operator, error) {
	lengthType, err := d.read(lengthTypeBits, "length type")
	if err != nil {
		return nil, err
	}

	op := &Operator{Version: version, Code: code, LengthType: LengthType(lengthType)}
	switch op.LengthType {
	case TotalLength:
		length, err := d.read(totalLengthBits, "total length")
		if err != nil {
			return nil, err
		}
		if uint(length) > d.r.Remaining() {
			return nil, &shared.DecodeError{Offset: d.r.Position(), Field: "sub-packets", Err: shared.ErrTruncated}
		}

		var consumed uint
		for consumed < uint(length) {
			offset := d.r.Position()
			child, n, err := d.decode(depth + 1)
			if err != nil {
				return nil, err
			}
			consumed += n
			if consumed > uint(length) {
				return nil, &shared.DecodeError{Offset: offset, Field: "sub-packets", Err: shared.ErrLengthMismatch}
			}
			op.Children = append(op.Children, child)
		}

	case Count:
		count, err := d.read(countBits, "sub-packet count")
		if err != nil {
			return nil, err
		}

		op.Children = make([]Packet, 0, count)
		for i := uint64(0); i < count; i++ {
			child, _, err := d.decode(depth + 1)
			if err != nil {
				return nil, err
			}
			op.Children = append(op.Children, child)
		}

	default:
		return nil, &shared.DecodeError{Offset: d.r.Position() - lengthTypeBits, Field: "length type", Err: shared.ErrUnknownLengthTypeBit}
	}

	return op, nil
}
