package ir

import "fmt"

// EndCommand terminates interpretation of the enclosing sequence.
type EndCommand struct{}

func (EndCommand) isStatement()                   {}
func (EndCommand) EncodedLength() int             { return 1 }
func (EndCommand) EncodeBinary() ([]byte, error)  { return []byte{byte(CodeEnd)}, nil }
func (EndCommand) EncodeSource() string           { return "end()" }
func (EndCommand) Equivalent(other Statement) bool {
	_, ok := other.(EndCommand)
	return ok
}

// NopCommand has no effect; it exists purely as an explicit decode target
// resolving the NopCommand from-bytecode-path open
// question.
type NopCommand struct{}

func (NopCommand) isStatement()                  {}
func (NopCommand) EncodedLength() int            { return 1 }
func (NopCommand) EncodeBinary() ([]byte, error) { return []byte{byte(CodeNop)}, nil }
func (NopCommand) EncodeSource() string          { return "nop()" }
func (NopCommand) Equivalent(other Statement) bool {
	_, ok := other.(NopCommand)
	return ok
}

// SleepCommand advances the clock by Duration without changing color.
type SleepCommand struct {
	Duration Duration
}

func (SleepCommand) isStatement()       {}
func (c SleepCommand) EncodedLength() int { return 1 + c.Duration.EncodedLen() }
func (c SleepCommand) EncodeBinary() ([]byte, error) {
	return append([]byte{byte(CodeSleep)}, c.Duration.Encode()...), nil
}
func (c SleepCommand) EncodeSource() string { return fmt.Sprintf("sleep(%s)", c.Duration) }
func (c SleepCommand) Equivalent(other Statement) bool {
	o, ok := other.(SleepCommand)
	return ok && o.Duration == c.Duration
}

// WaitUntilCommand sets the clock to max(clock, Timestamp).
type WaitUntilCommand struct {
	Timestamp Varuint
}

func (WaitUntilCommand) isStatement()       {}
func (c WaitUntilCommand) EncodedLength() int { return 1 + c.Timestamp.EncodedLen() }
func (c WaitUntilCommand) EncodeBinary() ([]byte, error) {
	return append([]byte{byte(CodeWaitUntil)}, c.Timestamp.Encode()...), nil
}
func (c WaitUntilCommand) EncodeSource() string { return fmt.Sprintf("wait_until(%s)", c.Timestamp) }
func (c WaitUntilCommand) Equivalent(other Statement) bool {
	o, ok := other.(WaitUntilCommand)
	return ok && o.Timestamp == c.Timestamp
}

// SetColorCommand sets the strip to Color immediately, then holds for Duration.
type SetColorCommand struct {
	Color    *RGBColor
	Duration Duration
}

func (SetColorCommand) isStatement() {}
func (c SetColorCommand) EncodedLength() int {
	return 1 + c.Color.EncodedLen() + c.Duration.EncodedLen()
}
func (c SetColorCommand) EncodeBinary() ([]byte, error) {
	out := []byte{byte(CodeSetColor)}
	out = append(out, c.Color.Encode()...)
	return append(out, c.Duration.Encode()...), nil
}
func (c SetColorCommand) EncodeSource() string {
	return fmt.Sprintf("set_color(%s, %s)", c.Color, c.Duration)
}
func (c SetColorCommand) Equivalent(other Statement) bool {
	o, ok := other.(SetColorCommand)
	return ok && o.Color.Equals(c.Color) && o.Duration == c.Duration
}

// SetGrayCommand sets the strip to gray(Value), then holds for Duration.
type SetGrayCommand struct {
	Value    UnsignedByte
	Duration Duration
}

func (SetGrayCommand) isStatement() {}
func (c SetGrayCommand) EncodedLength() int {
	return 1 + c.Value.EncodedLen() + c.Duration.EncodedLen()
}
func (c SetGrayCommand) EncodeBinary() ([]byte, error) {
	out := []byte{byte(CodeSetGray)}
	out = append(out, c.Value.Encode()...)
	return append(out, c.Duration.Encode()...), nil
}
func (c SetGrayCommand) EncodeSource() string {
	return fmt.Sprintf("set_gray(%s, %s)", c.Value, c.Duration)
}
func (c SetGrayCommand) Equivalent(other Statement) bool {
	o, ok := other.(SetGrayCommand)
	return ok && o.Value == c.Value && o.Duration == c.Duration
}

// SetBlackCommand sets the strip to black, then holds for Duration.
type SetBlackCommand struct {
	Duration Duration
}

func (SetBlackCommand) isStatement()         {}
func (c SetBlackCommand) EncodedLength() int { return 1 + c.Duration.EncodedLen() }
func (c SetBlackCommand) EncodeBinary() ([]byte, error) {
	return append([]byte{byte(CodeSetBlack)}, c.Duration.Encode()...), nil
}
func (c SetBlackCommand) EncodeSource() string { return fmt.Sprintf("set_black(%s)", c.Duration) }
func (c SetBlackCommand) Equivalent(other Statement) bool {
	o, ok := other.(SetBlackCommand)
	return ok && o.Duration == c.Duration
}

// SetWhiteCommand sets the strip to white, then holds for Duration.
type SetWhiteCommand struct {
	Duration Duration
}

func (SetWhiteCommand) isStatement()         {}
func (c SetWhiteCommand) EncodedLength() int { return 1 + c.Duration.EncodedLen() }
func (c SetWhiteCommand) EncodeBinary() ([]byte, error) {
	return append([]byte{byte(CodeSetWhite)}, c.Duration.Encode()...), nil
}
func (c SetWhiteCommand) EncodeSource() string { return fmt.Sprintf("set_white(%s)", c.Duration) }
func (c SetWhiteCommand) Equivalent(other Statement) bool {
	o, ok := other.(SetWhiteCommand)
	return ok && o.Duration == c.Duration
}

// FadeToColorCommand fades the strip linearly to Color over Duration.
type FadeToColorCommand struct {
	Color    *RGBColor
	Duration Duration
}

func (FadeToColorCommand) isStatement() {}
func (c FadeToColorCommand) EncodedLength() int {
	return 1 + c.Color.EncodedLen() + c.Duration.EncodedLen()
}
func (c FadeToColorCommand) EncodeBinary() ([]byte, error) {
	out := []byte{byte(CodeFadeToColor)}
	out = append(out, c.Color.Encode()...)
	return append(out, c.Duration.Encode()...), nil
}
func (c FadeToColorCommand) EncodeSource() string {
	return fmt.Sprintf("fade_to_color(%s, %s)", c.Color, c.Duration)
}
func (c FadeToColorCommand) Equivalent(other Statement) bool {
	o, ok := other.(FadeToColorCommand)
	return ok && o.Color.Equals(c.Color) && o.Duration == c.Duration
}

// FadeToGrayCommand fades the strip linearly to gray(Value) over Duration.
type FadeToGrayCommand struct {
	Value    UnsignedByte
	Duration Duration
}

func (FadeToGrayCommand) isStatement() {}
func (c FadeToGrayCommand) EncodedLength() int {
	return 1 + c.Value.EncodedLen() + c.Duration.EncodedLen()
}
func (c FadeToGrayCommand) EncodeBinary() ([]byte, error) {
	out := []byte{byte(CodeFadeToGray)}
	out = append(out, c.Value.Encode()...)
	return append(out, c.Duration.Encode()...), nil
}
func (c FadeToGrayCommand) EncodeSource() string {
	return fmt.Sprintf("fade_to_gray(%s, %s)", c.Value, c.Duration)
}
func (c FadeToGrayCommand) Equivalent(other Statement) bool {
	o, ok := other.(FadeToGrayCommand)
	return ok && o.Value == c.Value && o.Duration == c.Duration
}

// FadeToBlackCommand fades the strip linearly to black over Duration.
type FadeToBlackCommand struct {
	Duration Duration
}

func (FadeToBlackCommand) isStatement()         {}
func (c FadeToBlackCommand) EncodedLength() int { return 1 + c.Duration.EncodedLen() }
func (c FadeToBlackCommand) EncodeBinary() ([]byte, error) {
	return append([]byte{byte(CodeFadeToBlack)}, c.Duration.Encode()...), nil
}
func (c FadeToBlackCommand) EncodeSource() string { return fmt.Sprintf("fade_to_black(%s)", c.Duration) }
func (c FadeToBlackCommand) Equivalent(other Statement) bool {
	o, ok := other.(FadeToBlackCommand)
	return ok && o.Duration == c.Duration
}

// FadeToWhiteCommand fades the strip linearly to white over Duration.
type FadeToWhiteCommand struct {
	Duration Duration
}

func (FadeToWhiteCommand) isStatement()         {}
func (c FadeToWhiteCommand) EncodedLength() int { return 1 + c.Duration.EncodedLen() }
func (c FadeToWhiteCommand) EncodeBinary() ([]byte, error) {
	return append([]byte{byte(CodeFadeToWhite)}, c.Duration.Encode()...), nil
}
func (c FadeToWhiteCommand) EncodeSource() string { return fmt.Sprintf("fade_to_white(%s)", c.Duration) }
func (c FadeToWhiteCommand) Equivalent(other Statement) bool {
	o, ok := other.(FadeToWhiteCommand)
	return ok && o.Duration == c.Duration
}

// ResetTimerCommand is a wire-format marker command carried over from the
// original bytecode table. The interpreter does not act on it; it is decoded
// and re-encoded like any other statement but otherwise treated as a no-op.
type ResetTimerCommand struct{}

func (ResetTimerCommand) isStatement()         {}
func (ResetTimerCommand) EncodedLength() int   { return 1 }
func (ResetTimerCommand) EncodeBinary() ([]byte, error) {
	return []byte{byte(CodeResetTimer)}, nil
}
func (ResetTimerCommand) EncodeSource() string { return "reset_timer()" }
func (ResetTimerCommand) Equivalent(other Statement) bool {
	_, ok := other.(ResetTimerCommand)
	return ok
}

// SetColorFromChannelsCommand sets the strip's color from three analog
// channel indices rather than literal byte values.
type SetColorFromChannelsCommand struct {
	RCh, GCh, BCh UnsignedByte
	Duration      Duration
}

func (SetColorFromChannelsCommand) isStatement() {}
func (c SetColorFromChannelsCommand) EncodedLength() int {
	return 1 + 3 + c.Duration.EncodedLen()
}
func (c SetColorFromChannelsCommand) EncodeBinary() ([]byte, error) {
	out := []byte{byte(CodeSetColorFromChannels), byte(c.RCh), byte(c.GCh), byte(c.BCh)}
	return append(out, c.Duration.Encode()...), nil
}
func (c SetColorFromChannelsCommand) EncodeSource() string {
	return fmt.Sprintf("set_color_from_channels(%s, %s, %s, %s)", c.RCh, c.GCh, c.BCh, c.Duration)
}
func (c SetColorFromChannelsCommand) Equivalent(other Statement) bool {
	o, ok := other.(SetColorFromChannelsCommand)
	return ok && o.RCh == c.RCh && o.GCh == c.GCh && o.BCh == c.BCh && o.Duration == c.Duration
}

// FadeToColorFromChannelsCommand fades the strip's color from three analog
// channel indices rather than literal byte values.
type FadeToColorFromChannelsCommand struct {
	RCh, GCh, BCh UnsignedByte
	Duration      Duration
}

func (FadeToColorFromChannelsCommand) isStatement() {}
func (c FadeToColorFromChannelsCommand) EncodedLength() int {
	return 1 + 3 + c.Duration.EncodedLen()
}
func (c FadeToColorFromChannelsCommand) EncodeBinary() ([]byte, error) {
	out := []byte{byte(CodeFadeToColorFromChannels), byte(c.RCh), byte(c.GCh), byte(c.BCh)}
	return append(out, c.Duration.Encode()...), nil
}
func (c FadeToColorFromChannelsCommand) EncodeSource() string {
	return fmt.Sprintf("fade_to_color_from_channels(%s, %s, %s, %s)", c.RCh, c.GCh, c.BCh, c.Duration)
}
func (c FadeToColorFromChannelsCommand) Equivalent(other Statement) bool {
	o, ok := other.(FadeToColorFromChannelsCommand)
	return ok && o.RCh == c.RCh && o.GCh == c.GCh && o.BCh == c.BCh && o.Duration == c.Duration
}

// JumpCommand is a resolved forward reference: an absolute byte address to
// continue execution at. No pass in this repository emits one (see
// LabelMarker/JumpMarker); it exists so the codec and interpreter have a
// defined target shape once a label-resolving pass is added.
type JumpCommand struct {
	Address Varuint
}

func (JumpCommand) isStatement()       {}
func (c JumpCommand) EncodedLength() int { return 1 + c.Address.EncodedLen() }
func (c JumpCommand) EncodeBinary() ([]byte, error) {
	return append([]byte{byte(CodeJump)}, c.Address.Encode()...), nil
}
func (c JumpCommand) EncodeSource() string { return fmt.Sprintf("jump_to(%s)", c.Address) }
func (c JumpCommand) Equivalent(other Statement) bool {
	o, ok := other.(JumpCommand)
	return ok && o.Address == c.Address
}

// TriggeredJumpCommand is the reserved 0x13 opcode.
// It round-trips through the codec but the interpreter does not act on it.
type TriggeredJumpCommand struct {
	Address Varuint
}

func (TriggeredJumpCommand) isStatement()       {}
func (c TriggeredJumpCommand) EncodedLength() int { return 1 + c.Address.EncodedLen() }
func (c TriggeredJumpCommand) EncodeBinary() ([]byte, error) {
	return append([]byte{byte(CodeTriggeredJump)}, c.Address.Encode()...), nil
}
func (c TriggeredJumpCommand) EncodeSource() string {
	return fmt.Sprintf("triggered_jump(%s)", c.Address)
}
func (c TriggeredJumpCommand) Equivalent(other Statement) bool {
	o, ok := other.(TriggeredJumpCommand)
	return ok && o.Address == c.Address
}

// SetPyroCommand enables or disables a subset of the 7 pyro channels.
type SetPyroCommand struct {
	Mask ChannelMask
}

func (SetPyroCommand) isStatement()         {}
func (c SetPyroCommand) EncodedLength() int { return 1 + c.Mask.EncodedLen() }
func (c SetPyroCommand) EncodeBinary() ([]byte, error) {
	return append([]byte{byte(CodeSetPyro)}, c.Mask.Encode()...), nil
}
func (c SetPyroCommand) EncodeSource() string { return fmt.Sprintf("set_pyro(%s)", c.Mask) }
func (c SetPyroCommand) Equivalent(other Statement) bool {
	o, ok := other.(SetPyroCommand)
	return ok && o.Mask == c.Mask
}

// SetPyroAllCommand sets all 7 pyro channels' values in one instruction.
type SetPyroAllCommand struct {
	Values ChannelValues
}

func (SetPyroAllCommand) isStatement()         {}
func (c SetPyroAllCommand) EncodedLength() int { return 1 + c.Values.EncodedLen() }
func (c SetPyroAllCommand) EncodeBinary() ([]byte, error) {
	return append([]byte{byte(CodeSetPyroAll)}, c.Values.Encode()...), nil
}
func (c SetPyroAllCommand) EncodeSource() string { return fmt.Sprintf("set_pyro_all(%s)", c.Values) }
func (c SetPyroAllCommand) Equivalent(other Statement) bool {
	o, ok := other.(SetPyroAllCommand)
	return ok && o.Values == c.Values
}
