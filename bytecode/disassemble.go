package bytecode

import (
	"fmt"
	"strings"

	"ledctrl/ir"
)

// Disassemble renders a raw-byte listing of data: one line per instruction,
// offset-prefixed, using Definitions purely for field widths/names — unlike
// Decode, this never constructs ir nodes, so it can make partial progress on
// truncated or malformed input rather than failing outright, which is what
// makes it useful as a CLI diagnostic.
func Disassemble(data []byte) string {
	var b strings.Builder
	pos := 0
	for pos < len(data) {
		code := ir.CommandCode(data[pos])
		def, known := Definitions[code]
		if !known {
			fmt.Fprintf(&b, "%04d  %02X  ??? unknown opcode\n", pos, byte(code))
			pos++
			continue
		}
		start := pos
		pos++
		args := make([]string, 0, len(def.Fields))
		truncated := false
		for _, field := range def.Fields {
			switch field {
			case FieldByte, FieldChannelMask, FieldChannelValues:
				if pos >= len(data) {
					truncated = true
					break
				}
				args = append(args, fmt.Sprintf("%d", data[pos]))
				pos++
			case FieldColor:
				if pos+3 > len(data) {
					truncated = true
					break
				}
				args = append(args, fmt.Sprintf("(%d,%d,%d)", data[pos], data[pos+1], data[pos+2]))
				pos += 3
			case FieldVaruint:
				v, n, ok := ir.DecodeVaruint(data[pos:])
				if !ok {
					truncated = true
					break
				}
				args = append(args, fmt.Sprintf("%d", v))
				pos += n
			}
			if truncated {
				break
			}
		}
		fmt.Fprintf(&b, "%04d  %02X  %-12s %s\n", start, byte(code), def.Name, strings.Join(args, " "))
		if truncated {
			fmt.Fprintf(&b, "%04d  ... truncated\n", pos)
			break
		}
	}
	return b.String()
}
