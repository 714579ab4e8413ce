package packet

import (
	"fmt"
	"strings"
)

const indent = "  "

// Format renders p as an indented, multi-line tree.
func Format(p Packet) string {
	return strings.Join(Lines(p, 0), "\n")
}

// Lines renders p as a tree, one line per output row. Nested packets are
// indented relative to level.
func Lines(p Packet, level int) []string {
	switch p := p.(type) {
	case *Literal:
		return []string{fmt.Sprintf("{Ver: %d, Type: Literal, Value: %d}", p.Version, p.Value)}

	case *Operator:
		lines := []string{fmt.Sprintf("{Ver: %d, Type: Operator(%v), Packets: [", p.Version, p.Code)}
		prefix := strings.Repeat(indent, level+1)
		for _, c := range p.Children {
			child := Lines(c, level+1)
			child[0] = prefix + child[0]
			child[len(child)-1] += ","
			lines = append(lines, child...)
		}
		return append(lines, strings.Repeat(indent, level)+"]}")

	default:
		return []string{fmt.Sprintf("{Unknown: %T}", p)}
	}
}
