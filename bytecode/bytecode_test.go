package bytecode

import (
	"strings"
	"testing"

	"ledctrl/ir"
)

func mustDuration(frames int64) ir.Duration {
	d, err := ir.NewDurationFromFrames(frames)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	color := ir.MustColor(10, 20, 30)
	program := ir.NewStatementSequence(
		ir.SetColorCommand{Color: color, Duration: mustDuration(50)},
		ir.LoopBlock{
			Iterations: 3,
			Body:       ir.NewStatementSequence(ir.SleepCommand{Duration: mustDuration(10)}),
		},
		ir.SetPyroCommand{Mask: ir.DecodeChannelMask(0x81)},
		ir.EndCommand{},
	)

	encoded, err := Encode(program)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !program.Equivalent(decoded) {
		t.Errorf("round-trip mismatch:\n  in:  %+v\n  out: %+v", program, decoded)
	}
}

func TestDecodeStopsAtEndCommand(t *testing.T) {
	encoded, err := Encode(ir.NewStatementSequence(ir.EndCommand{}))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	trailing := append(encoded, 0xFF, 0xFF)
	decoded, err := Decode(trailing)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(decoded.Statements) != 1 {
		t.Errorf("expected trailing garbage after END to be ignored, got %d statements", len(decoded.Statements))
	}
}

func TestDecodeTruncatedInputErrors(t *testing.T) {
	if _, err := Decode([]byte{byte(ir.CodeSetColor), 1, 2}); err == nil {
		t.Error("expected an error decoding a truncated SetColorCommand")
	}
}

func TestDecodeUnknownOpcodeErrors(t *testing.T) {
	if _, err := Decode([]byte{0xFE}); err == nil {
		t.Error("expected an error decoding an unknown opcode")
	}
}

func TestEncodeUnresolvedMarkerErrors(t *testing.T) {
	program := ir.NewStatementSequence(ir.LabelMarker{Name: "loop_start"})
	if _, err := Encode(program); err == nil {
		t.Error("expected an error encoding an unresolved marker")
	}
}

func TestDisassembleListsKnownOpcodes(t *testing.T) {
	encoded, err := Encode(ir.NewStatementSequence(
		ir.SleepCommand{Duration: mustDuration(5)},
		ir.EndCommand{},
	))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	listing := Disassemble(encoded)
	if !strings.Contains(listing, "SLEEP") {
		t.Errorf("disassembly missing SLEEP opcode: %q", listing)
	}
	if !strings.Contains(listing, "END") {
		t.Errorf("disassembly missing END opcode: %q", listing)
	}
}

func TestDisassembleUnknownOpcodeDoesNotPanic(t *testing.T) {
	listing := Disassemble([]byte{0xFE, 0x01})
	if !strings.Contains(listing, "unknown opcode") {
		t.Errorf("expected unknown-opcode marker in listing: %q", listing)
	}
}
