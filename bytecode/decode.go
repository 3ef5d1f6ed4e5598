package bytecode

import (
	"ledctrl/cerrors"
	"ledctrl/ir"
)

// Decode parses a complete top-level program: statements until either the
// byte stream is exhausted or an EndCommand is decoded. Trailing bytes after
// an EndCommand are ignored ("the decoder tolerates raw
// trailing garbage only inasmuch as END makes continuation meaningless").
func Decode(data []byte) (*ir.StatementSequence, error) {
	seq, _, err := decodeSequence(data)
	return seq, err
}

// decodeSequence decodes statements from the front of data until data is
// exhausted, an EndCommand is decoded, or a LOOP_END sentinel byte is
// peeked (and left unconsumed, for the enclosing LoopBlock decoder to
// consume). It returns the sequence and the number of bytes consumed.
func decodeSequence(data []byte) (*ir.StatementSequence, int, error) {
	var statements []ir.Statement
	pos := 0
	for pos < len(data) {
		if ir.CommandCode(data[pos]) == ir.CodeLoopEnd {
			break
		}
		stmt, consumed, err := decodeStatement(data[pos:])
		if err != nil {
			return nil, pos, err
		}
		statements = append(statements, stmt)
		pos += consumed
		if _, isEnd := stmt.(ir.EndCommand); isEnd {
			break
		}
	}
	return ir.NewStatementSequence(statements...), pos, nil
}

func decodeStatement(data []byte) (ir.Statement, int, error) {
	if len(data) == 0 {
		return nil, 0, cerrors.BytecodeParserEOFError{NodeClass: "Statement"}
	}
	code := ir.CommandCode(data[0])
	switch code {
	case ir.CodeEnd:
		return ir.EndCommand{}, 1, nil
	case ir.CodeNop:
		return ir.NopCommand{}, 1, nil
	case ir.CodeSleep:
		d, n, err := readDuration(data[1:], "SleepCommand")
		return ir.SleepCommand{Duration: d}, 1 + n, err
	case ir.CodeWaitUntil:
		v, n, err := readVaruint(data[1:], "WaitUntilCommand")
		return ir.WaitUntilCommand{Timestamp: v}, 1 + n, err
	case ir.CodeSetColor:
		return decodeColorAndDuration(data, "SetColorCommand", func(c *ir.RGBColor, d ir.Duration) ir.Statement {
			return ir.SetColorCommand{Color: c, Duration: d}
		})
	case ir.CodeSetGray:
		return decodeByteAndDuration(data, "SetGrayCommand", func(b ir.UnsignedByte, d ir.Duration) ir.Statement {
			return ir.SetGrayCommand{Value: b, Duration: d}
		})
	case ir.CodeSetBlack:
		d, n, err := readDuration(data[1:], "SetBlackCommand")
		return ir.SetBlackCommand{Duration: d}, 1 + n, err
	case ir.CodeSetWhite:
		d, n, err := readDuration(data[1:], "SetWhiteCommand")
		return ir.SetWhiteCommand{Duration: d}, 1 + n, err
	case ir.CodeFadeToColor:
		return decodeColorAndDuration(data, "FadeToColorCommand", func(c *ir.RGBColor, d ir.Duration) ir.Statement {
			return ir.FadeToColorCommand{Color: c, Duration: d}
		})
	case ir.CodeFadeToGray:
		return decodeByteAndDuration(data, "FadeToGrayCommand", func(b ir.UnsignedByte, d ir.Duration) ir.Statement {
			return ir.FadeToGrayCommand{Value: b, Duration: d}
		})
	case ir.CodeFadeToBlack:
		d, n, err := readDuration(data[1:], "FadeToBlackCommand")
		return ir.FadeToBlackCommand{Duration: d}, 1 + n, err
	case ir.CodeFadeToWhite:
		d, n, err := readDuration(data[1:], "FadeToWhiteCommand")
		return ir.FadeToWhiteCommand{Duration: d}, 1 + n, err
	case ir.CodeLoopBegin:
		return decodeLoopBlock(data)
	case ir.CodeResetTimer:
		return ir.ResetTimerCommand{}, 1, nil
	case ir.CodeSetColorFromChannels:
		return decodeThreeChannelsAndDuration(data, "SetColorFromChannelsCommand", func(r, g, b ir.UnsignedByte, d ir.Duration) ir.Statement {
			return ir.SetColorFromChannelsCommand{RCh: r, GCh: g, BCh: b, Duration: d}
		})
	case ir.CodeFadeToColorFromChannels:
		return decodeThreeChannelsAndDuration(data, "FadeToColorFromChannelsCommand", func(r, g, b ir.UnsignedByte, d ir.Duration) ir.Statement {
			return ir.FadeToColorFromChannelsCommand{RCh: r, GCh: g, BCh: b, Duration: d}
		})
	case ir.CodeJump:
		v, n, err := readVaruint(data[1:], "JumpCommand")
		return ir.JumpCommand{Address: v}, 1 + n, err
	case ir.CodeTriggeredJump:
		v, n, err := readVaruint(data[1:], "TriggeredJumpCommand")
		return ir.TriggeredJumpCommand{Address: v}, 1 + n, err
	case ir.CodeSetPyro:
		if len(data) < 2 {
			return nil, 0, cerrors.BytecodeParserEOFError{NodeClass: "SetPyroCommand"}
		}
		return ir.SetPyroCommand{Mask: ir.DecodeChannelMask(data[1])}, 2, nil
	case ir.CodeSetPyroAll:
		if len(data) < 2 {
			return nil, 0, cerrors.BytecodeParserEOFError{NodeClass: "SetPyroAllCommand"}
		}
		return ir.SetPyroAllCommand{Values: ir.DecodeChannelValues(data[1])}, 2, nil
	default:
		return nil, 0, cerrors.BytecodeParserError{NodeClass: "Statement", Reason: "unknown opcode byte"}
	}
}

func decodeLoopBlock(data []byte) (ir.Statement, int, error) {
	if len(data) < 2 {
		return nil, 0, cerrors.BytecodeParserEOFError{NodeClass: "LoopBlock"}
	}
	iterations, err := ir.NewUnsignedByte(int(data[1]))
	if err != nil {
		return nil, 0, cerrors.BytecodeParserError{NodeClass: "LoopBlock", Reason: err.Error()}
	}
	if iterations == 0 {
		return nil, 0, cerrors.BytecodeParserError{NodeClass: "LoopBlock", Reason: "zero iteration count"}
	}
	body, consumed, err := decodeSequence(data[2:])
	if err != nil {
		return nil, 0, err
	}
	pos := 2 + consumed
	if pos >= len(data) || ir.CommandCode(data[pos]) != ir.CodeLoopEnd {
		return nil, 0, cerrors.BytecodeParserEOFError{NodeClass: "LoopBlock"}
	}
	pos++
	return ir.LoopBlock{Iterations: iterations, Body: body}, pos, nil
}

func decodeColorAndDuration(data []byte, nodeClass string, build func(*ir.RGBColor, ir.Duration) ir.Statement) (ir.Statement, int, error) {
	if len(data) < 4 {
		return nil, 0, cerrors.BytecodeParserEOFError{NodeClass: nodeClass}
	}
	color := ir.InternRGBColor(ir.UnsignedByte(data[1]), ir.UnsignedByte(data[2]), ir.UnsignedByte(data[3]))
	d, n, err := readDuration(data[4:], nodeClass)
	return build(color, d), 4 + n, err
}

func decodeByteAndDuration(data []byte, nodeClass string, build func(ir.UnsignedByte, ir.Duration) ir.Statement) (ir.Statement, int, error) {
	if len(data) < 2 {
		return nil, 0, cerrors.BytecodeParserEOFError{NodeClass: nodeClass}
	}
	d, n, err := readDuration(data[2:], nodeClass)
	return build(ir.UnsignedByte(data[1]), d), 2 + n, err
}

func decodeThreeChannelsAndDuration(data []byte, nodeClass string, build func(r, g, b ir.UnsignedByte, d ir.Duration) ir.Statement) (ir.Statement, int, error) {
	if len(data) < 4 {
		return nil, 0, cerrors.BytecodeParserEOFError{NodeClass: nodeClass}
	}
	d, n, err := readDuration(data[4:], nodeClass)
	return build(ir.UnsignedByte(data[1]), ir.UnsignedByte(data[2]), ir.UnsignedByte(data[3]), d), 4 + n, err
}

func readVaruint(data []byte, nodeClass string) (ir.Varuint, int, error) {
	v, n, ok := ir.DecodeVaruint(data)
	if !ok {
		return 0, 0, cerrors.BytecodeParserEOFError{NodeClass: nodeClass}
	}
	return ir.Varuint(v), n, nil
}

func readDuration(data []byte, nodeClass string) (ir.Duration, int, error) {
	v, n, err := readVaruint(data, nodeClass)
	return ir.Duration(v), n, err
}
