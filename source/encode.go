package source

import "ledctrl/ir"

// Encode renders a program in its canonical textual source form, the
// inverse of Parse. It is a thin package-level wrapper so callers that
// import source for parsing don't also need to import ir just to encode.
func Encode(program *ir.StatementSequence) string {
	return program.EncodeSource()
}
