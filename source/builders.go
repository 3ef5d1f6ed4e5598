package source

import (
	"fmt"

	"ledctrl/ir"
	"ledctrl/token"
)

// commandBuilders maps a command name as it appears in textual source to a
// function that converts its parenthesized argument tokens into the
// ir.Statement it denotes. The argument shapes mirror what each command's
// EncodeSource produces, so Parse(stmt.EncodeSource()) round-trips.
var commandBuilders = map[string]func([]token.Token) (ir.Statement, error){
	"end":        fixedArity(0, func(a []token.Token) (ir.Statement, error) { return ir.EndCommand{}, nil }),
	"nop":        fixedArity(0, func(a []token.Token) (ir.Statement, error) { return ir.NopCommand{}, nil }),
	"reset_timer": fixedArity(0, func(a []token.Token) (ir.Statement, error) { return ir.ResetTimerCommand{}, nil }),

	"sleep": fixedArity(1, func(a []token.Token) (ir.Statement, error) {
		d, err := toDuration(a[0])
		if err != nil {
			return nil, err
		}
		return ir.SleepCommand{Duration: d}, nil
	}),

	"wait_until": fixedArity(1, func(a []token.Token) (ir.Statement, error) {
		v, err := toVaruint(a[0])
		if err != nil {
			return nil, err
		}
		return ir.WaitUntilCommand{Timestamp: v}, nil
	}),

	"set_color": fixedArity(4, func(a []token.Token) (ir.Statement, error) {
		color, err := colorFromArgs(a[0], a[1], a[2])
		if err != nil {
			return nil, err
		}
		d, err := toDuration(a[3])
		if err != nil {
			return nil, err
		}
		return ir.SetColorCommand{Color: color, Duration: d}, nil
	}),

	"set_gray": fixedArity(2, func(a []token.Token) (ir.Statement, error) {
		v, err := toUnsignedByte(a[0])
		if err != nil {
			return nil, err
		}
		d, err := toDuration(a[1])
		if err != nil {
			return nil, err
		}
		return ir.SetGrayCommand{Value: v, Duration: d}, nil
	}),

	"set_black": fixedArity(1, func(a []token.Token) (ir.Statement, error) {
		d, err := toDuration(a[0])
		if err != nil {
			return nil, err
		}
		return ir.SetBlackCommand{Duration: d}, nil
	}),

	"set_white": fixedArity(1, func(a []token.Token) (ir.Statement, error) {
		d, err := toDuration(a[0])
		if err != nil {
			return nil, err
		}
		return ir.SetWhiteCommand{Duration: d}, nil
	}),

	"fade_to_color": fixedArity(4, func(a []token.Token) (ir.Statement, error) {
		color, err := colorFromArgs(a[0], a[1], a[2])
		if err != nil {
			return nil, err
		}
		d, err := toDuration(a[3])
		if err != nil {
			return nil, err
		}
		return ir.FadeToColorCommand{Color: color, Duration: d}, nil
	}),

	"fade_to_gray": fixedArity(2, func(a []token.Token) (ir.Statement, error) {
		v, err := toUnsignedByte(a[0])
		if err != nil {
			return nil, err
		}
		d, err := toDuration(a[1])
		if err != nil {
			return nil, err
		}
		return ir.FadeToGrayCommand{Value: v, Duration: d}, nil
	}),

	"fade_to_black": fixedArity(1, func(a []token.Token) (ir.Statement, error) {
		d, err := toDuration(a[0])
		if err != nil {
			return nil, err
		}
		return ir.FadeToBlackCommand{Duration: d}, nil
	}),

	"fade_to_white": fixedArity(1, func(a []token.Token) (ir.Statement, error) {
		d, err := toDuration(a[0])
		if err != nil {
			return nil, err
		}
		return ir.FadeToWhiteCommand{Duration: d}, nil
	}),

	"set_color_from_channels": fixedArity(4, func(a []token.Token) (ir.Statement, error) {
		r, g, b, d, err := channelTriple(a)
		if err != nil {
			return nil, err
		}
		return ir.SetColorFromChannelsCommand{RCh: r, GCh: g, BCh: b, Duration: d}, nil
	}),

	"fade_to_color_from_channels": fixedArity(4, func(a []token.Token) (ir.Statement, error) {
		r, g, b, d, err := channelTriple(a)
		if err != nil {
			return nil, err
		}
		return ir.FadeToColorFromChannelsCommand{RCh: r, GCh: g, BCh: b, Duration: d}, nil
	}),

	"jump_to": fixedArity(1, func(a []token.Token) (ir.Statement, error) {
		v, err := toVaruint(a[0])
		if err != nil {
			return nil, err
		}
		return ir.JumpCommand{Address: v}, nil
	}),

	"triggered_jump": fixedArity(1, func(a []token.Token) (ir.Statement, error) {
		v, err := toVaruint(a[0])
		if err != nil {
			return nil, err
		}
		return ir.TriggeredJumpCommand{Address: v}, nil
	}),

	"set_pyro": fixedArity(1, func(a []token.Token) (ir.Statement, error) {
		b, err := parseHexByte(a[0])
		if err != nil {
			return nil, err
		}
		return ir.SetPyroCommand{Mask: ir.DecodeChannelMask(b)}, nil
	}),

	"set_pyro_all": fixedArity(1, func(a []token.Token) (ir.Statement, error) {
		b, err := parseHexByte(a[0])
		if err != nil {
			return nil, err
		}
		return ir.SetPyroAllCommand{Values: ir.DecodeChannelValues(b)}, nil
	}),

	"label": fixedArity(1, func(a []token.Token) (ir.Statement, error) {
		return ir.LabelMarker{Name: a[0].Lexeme}, nil
	}),

	"jump": fixedArity(1, func(a []token.Token) (ir.Statement, error) {
		return ir.JumpMarker{Label: a[0].Lexeme}, nil
	}),
}

func fixedArity(n int, build func([]token.Token) (ir.Statement, error)) func([]token.Token) (ir.Statement, error) {
	return func(args []token.Token) (ir.Statement, error) {
		if len(args) != n {
			return nil, fmt.Errorf("💥 expected %d argument(s), got %d", n, len(args))
		}
		return build(args)
	}
}

func colorFromArgs(r, g, b token.Token) (*ir.RGBColor, error) {
	rb, err := toUnsignedByte(r)
	if err != nil {
		return nil, err
	}
	gb, err := toUnsignedByte(g)
	if err != nil {
		return nil, err
	}
	bb, err := toUnsignedByte(b)
	if err != nil {
		return nil, err
	}
	return ir.InternRGBColor(rb, gb, bb), nil
}

func channelTriple(a []token.Token) (r, g, b ir.UnsignedByte, d ir.Duration, err error) {
	if r, err = toUnsignedByte(a[0]); err != nil {
		return
	}
	if g, err = toUnsignedByte(a[1]); err != nil {
		return
	}
	if b, err = toUnsignedByte(a[2]); err != nil {
		return
	}
	d, err = toDuration(a[3])
	return
}
