package ir

// The functions below are thin test-fixture sugar for building ASTs tersely,
// one constructor per command (set_color, fade_to_color, sleep, ...). They
// carry no runtime behavior
// beyond constructing struct literals and validating their arguments; they
// are not a script front-end (that remains out of scope).

func MustColor(r, g, b int) *RGBColor {
	c, err := NewRGBColor(r, g, b)
	if err != nil {
		panic(err)
	}
	return c
}

func MustDuration(frames int) Duration {
	d, err := NewDurationFromFrames(int64(frames))
	if err != nil {
		panic(err)
	}
	return d
}

func SetColor(r, g, b, frames int) SetColorCommand {
	return SetColorCommand{Color: MustColor(r, g, b), Duration: MustDuration(frames)}
}

func FadeToColor(r, g, b, frames int) FadeToColorCommand {
	return FadeToColorCommand{Color: MustColor(r, g, b), Duration: MustDuration(frames)}
}

func Sleep(frames int) SleepCommand {
	return SleepCommand{Duration: MustDuration(frames)}
}

func SetGray(value, frames int) SetGrayCommand {
	v, err := NewUnsignedByte(value)
	if err != nil {
		panic(err)
	}
	return SetGrayCommand{Value: v, Duration: MustDuration(frames)}
}

func SetBlack(frames int) SetBlackCommand { return SetBlackCommand{Duration: MustDuration(frames)} }
func SetWhite(frames int) SetWhiteCommand { return SetWhiteCommand{Duration: MustDuration(frames)} }

func Loop(iterations int, statements ...Statement) LoopBlock {
	it, err := NewUnsignedByte(iterations)
	if err != nil {
		panic(err)
	}
	return LoopBlock{Iterations: it, Body: NewStatementSequence(statements...)}
}
