package packet

// SumVersions adds the version of p to the versions of all its descendants.
func SumVersions(p Packet) uint64 {
	sum := uint64(p.PacketVersion())
	if op, ok := p.(*Operator); ok {
		for _, c := range op.Children {
			sum += SumVersions(c)
		}
	}
	return sum
}

// Versions lists the versions in the hierarchy of p, sub-packets first.
func Versions(p Packet) []uint8 {
	var versions []uint8
	if op, ok := p.(*Operator); ok {
		for _, c := range op.Children {
			versions = append(versions, Versions(c)...)
		}
	}
	return append(versions, p.PacketVersion())
}
