// Package bytecode implements the binary codec: a
// decoder from a byte stream to an ir.StatementSequence, and the disassembly
// table used by the CLI. Encoding itself is per-node (ir.Node.EncodeBinary);
// this package is where bytes become nodes, the reverse direction.
package bytecode

import "ledctrl/ir"

// FieldKind describes the shape of one operand field of a command, used by
// the disassembler to label instruction bytes without re-decoding them into
// a full ir.Node.
type FieldKind int

const (
	FieldByte FieldKind = iota
	FieldVaruint
	FieldColor
	FieldChannelMask
	FieldChannelValues
)

// Definition pairs a human-readable opcode name with the list of its
// operand field kinds, covering the full LED command set's mixed
// byte/varuint/color operand shapes.
type Definition struct {
	Name   string
	Fields []FieldKind
}

// Definitions is the single source of truth for disassembly labels; actual
// decoding dispatch lives in decode.go and constructs concrete ir.Statement
// values directly; keeping a driver table here (rather than inlining field
// iteration there) mirrors a common decoupling between opcode table and
// definitions/Get/MakeInstruction split.
var Definitions = map[ir.CommandCode]Definition{
	ir.CodeEnd:                      {Name: "END", Fields: nil},
	ir.CodeNop:                      {Name: "NOP", Fields: nil},
	ir.CodeSleep:                    {Name: "SLEEP", Fields: []FieldKind{FieldVaruint}},
	ir.CodeWaitUntil:                {Name: "WAIT_UNTIL", Fields: []FieldKind{FieldVaruint}},
	ir.CodeSetColor:                 {Name: "SET_COLOR", Fields: []FieldKind{FieldColor, FieldVaruint}},
	ir.CodeSetGray:                  {Name: "SET_GRAY", Fields: []FieldKind{FieldByte, FieldVaruint}},
	ir.CodeSetBlack:                 {Name: "SET_BLACK", Fields: []FieldKind{FieldVaruint}},
	ir.CodeSetWhite:                 {Name: "SET_WHITE", Fields: []FieldKind{FieldVaruint}},
	ir.CodeFadeToColor:              {Name: "FADE_TO_COLOR", Fields: []FieldKind{FieldColor, FieldVaruint}},
	ir.CodeFadeToGray:               {Name: "FADE_TO_GRAY", Fields: []FieldKind{FieldByte, FieldVaruint}},
	ir.CodeFadeToBlack:              {Name: "FADE_TO_BLACK", Fields: []FieldKind{FieldVaruint}},
	ir.CodeFadeToWhite:              {Name: "FADE_TO_WHITE", Fields: []FieldKind{FieldVaruint}},
	ir.CodeLoopBegin:                {Name: "LOOP_BEGIN", Fields: []FieldKind{FieldByte}},
	ir.CodeLoopEnd:                  {Name: "LOOP_END", Fields: nil},
	ir.CodeResetTimer:               {Name: "RESET_TIMER", Fields: nil},
	ir.CodeSetColorFromChannels:     {Name: "SET_COLOR_FROM_CHANNELS", Fields: []FieldKind{FieldByte, FieldByte, FieldByte, FieldVaruint}},
	ir.CodeFadeToColorFromChannels:  {Name: "FADE_TO_COLOR_FROM_CHANNELS", Fields: []FieldKind{FieldByte, FieldByte, FieldByte, FieldVaruint}},
	ir.CodeJump:                     {Name: "JUMP", Fields: []FieldKind{FieldVaruint}},
	ir.CodeTriggeredJump:            {Name: "TRIGGERED_JUMP", Fields: []FieldKind{FieldVaruint}},
	ir.CodeSetPyro:                  {Name: "SET_PYRO", Fields: []FieldKind{FieldChannelMask}},
	ir.CodeSetPyroAll:               {Name: "SET_PYRO_ALL", Fields: []FieldKind{FieldChannelValues}},
}
