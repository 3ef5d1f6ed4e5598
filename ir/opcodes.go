// Package ir defines the intermediate representation for ledctrl light-show
// programs: literal value types, statement/command nodes, loop blocks, and
// comments. Every node knows its own encoded length, how to encode itself to
// the wire bytecode, how to render itself in the textual source form, and how
// to compare itself for semantic equivalence with another node of the same
// variant.
package ir

// CommandCode identifies the wire opcode of a command node. The table below
// is the single source of truth for the binary codec (package bytecode).
// The source encoder and parser spell command names themselves and do not
// consult it.
type CommandCode byte

const (
	CodeEnd         CommandCode = 0x00
	CodeNop         CommandCode = 0x01
	CodeSleep       CommandCode = 0x02
	CodeWaitUntil   CommandCode = 0x03
	CodeSetColor    CommandCode = 0x04
	CodeSetGray     CommandCode = 0x05
	CodeSetBlack    CommandCode = 0x06
	CodeSetWhite    CommandCode = 0x07
	CodeFadeToColor CommandCode = 0x08
	CodeFadeToGray  CommandCode = 0x09
	CodeFadeToBlack CommandCode = 0x0A
	CodeFadeToWhite CommandCode = 0x0B
	CodeLoopBegin   CommandCode = 0x0C
	CodeLoopEnd     CommandCode = 0x0D
	CodeResetTimer  CommandCode = 0x0E
	// 0x0F is intentionally unassigned; the gap is preserved from the wire
	// format table rather than renumbered.
	CodeSetColorFromChannels    CommandCode = 0x10
	CodeFadeToColorFromChannels CommandCode = 0x11
	CodeJump                    CommandCode = 0x12
	CodeTriggeredJump           CommandCode = 0x13
	CodeSetPyro                 CommandCode = 0x14
	CodeSetPyroAll              CommandCode = 0x15
)

// commandNames backs CommandCode.String; it is not consulted by the binary
// codec, which dispatches on CommandCode directly, nor by the source form
// (where a JumpCommand is spelled "jump_to", not "jump").
var commandNames = map[CommandCode]string{
	CodeEnd:                     "end",
	CodeNop:                     "nop",
	CodeSleep:                   "sleep",
	CodeWaitUntil:               "wait_until",
	CodeSetColor:                "set_color",
	CodeSetGray:                 "set_gray",
	CodeSetBlack:                "set_black",
	CodeSetWhite:                "set_white",
	CodeFadeToColor:             "fade_to_color",
	CodeFadeToGray:              "fade_to_gray",
	CodeFadeToBlack:             "fade_to_black",
	CodeFadeToWhite:             "fade_to_white",
	CodeResetTimer:              "reset_timer",
	CodeSetColorFromChannels:    "set_color_from_channels",
	CodeFadeToColorFromChannels: "fade_to_color_from_channels",
	CodeJump:                    "jump",
	CodeTriggeredJump:           "triggered_jump",
	CodeSetPyro:                 "set_pyro",
	CodeSetPyroAll:              "set_pyro_all",
}

func (c CommandCode) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown_command"
}
