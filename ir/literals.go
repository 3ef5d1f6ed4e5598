package ir

import (
	"fmt"
	"math/big"
	"sync"
)

// UnsignedByte is an integer literal in [0, 255], encoded as a single byte.
type UnsignedByte uint8

// NewUnsignedByte validates v and returns an UnsignedByte, or an error if v
// falls outside [0, 255].
func NewUnsignedByte(v int) (UnsignedByte, error) {
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("💥 unsigned byte out of range: %d (must be in [0, 255])", v)
	}
	return UnsignedByte(v), nil
}

func (b UnsignedByte) Encode() []byte   { return []byte{byte(b)} }
func (b UnsignedByte) EncodedLen() int  { return 1 }
func (b UnsignedByte) Value() int       { return int(b) }
func (b UnsignedByte) String() string   { return fmt.Sprintf("%d", int(b)) }

// Varuint is an unsigned integer literal capped at 2**28, encoded as LEB128.
type Varuint uint32

// NewVaruint validates v and returns a Varuint, or an error if v is negative
// or at/above MaxVaruint.
func NewVaruint(v int64) (Varuint, error) {
	if v < 0 || v >= MaxVaruint {
		return 0, ErrVaruintOutOfRange{Value: v}
	}
	return Varuint(v), nil
}

func (v Varuint) Encode() []byte  { return EncodeVaruintTo(nil, uint32(v)) }
func (v Varuint) EncodedLen() int { return VaruintEncodedLen(uint32(v)) }
func (v Varuint) Value() int      { return int(v) }
func (v Varuint) String() string  { return fmt.Sprintf("%d", uint32(v)) }

// FPS is the fixed frame rate (frames per second) that Duration values are
// expressed in; fixed at 50.
const FPS = 50

// Duration is a Varuint conceptually measured in frames at FPS. It is its
// own type (not a plain alias of Varuint) so that seconds-based construction
// goes through exact decimal arithmetic. Its source form (String) is the
// bare frame count, with no unit suffix.
type Duration Varuint

// NewDurationFromFrames validates a frame count and returns a Duration.
func NewDurationFromFrames(frames int64) (Duration, error) {
	v, err := NewVaruint(frames)
	if err != nil {
		return 0, err
	}
	return Duration(v), nil
}

// NewDurationFromSecondsText converts a decimal literal (as it appeared in
// source text, e.g. "0.2") to a Duration using exact rational arithmetic:
// frames = seconds * FPS computed over big.Rat, never via a float64
// multiply. warn, if non-nil, is called with a diagnostic message when the
// result is not an exact integer number of frames (the fractional part is
// then truncated towards zero).
func NewDurationFromSecondsText(secondsText string, warn func(string)) (Duration, error) {
	seconds, ok := new(big.Rat).SetString(secondsText)
	if !ok {
		return 0, fmt.Errorf("💥 invalid duration literal: %q", secondsText)
	}
	return newDurationFromRationalSeconds(seconds, secondsText, warn)
}

// NewDurationFromSeconds converts a float64 seconds value to a Duration. It
// is provided for callers that only have a float in hand (e.g. a value
// computed at runtime rather than parsed from source text); prefer
// NewDurationFromSecondsText when the original decimal text is available,
// since a float64 may already have lost the exactness that rational
// arithmetic over the source text would have preserved.
func NewDurationFromSeconds(seconds float64, warn func(string)) (Duration, error) {
	rat := new(big.Rat).SetFloat64(seconds)
	if rat == nil {
		return 0, fmt.Errorf("💥 invalid duration: %v", seconds)
	}
	return newDurationFromRationalSeconds(rat, fmt.Sprintf("%v", seconds), warn)
}

func newDurationFromRationalSeconds(seconds *big.Rat, originalText string, warn func(string)) (Duration, error) {
	frames := new(big.Rat).Mul(seconds, big.NewRat(FPS, 1))
	num, den := frames.Num(), frames.Denom()
	quotient := new(big.Int).Quo(num, den)
	if !frames.IsInt() && warn != nil {
		warn(fmt.Sprintf("duration %s seconds is not an exact multiple of 1/%d s; rounding down to %s frames", originalText, FPS, quotient.String()))
	}
	if !quotient.IsInt64() {
		return 0, fmt.Errorf("💥 duration %s seconds overflows the frame counter", originalText)
	}
	return NewDurationFromFrames(quotient.Int64())
}

func (d Duration) Encode() []byte    { return Varuint(d).Encode() }
func (d Duration) EncodedLen() int   { return Varuint(d).EncodedLen() }
func (d Duration) Frames() int       { return int(d) }
func (d Duration) Seconds() float64  { return float64(d) / FPS }
func (d Duration) String() string    { return fmt.Sprintf("%d", uint32(d)) }

// RGBColor is an interned (r, g, b) triple. Interning is observable only
// through pointer identity, never through value semantics: callers must
// always compare colors with Equals, never with ==.
type RGBColor struct {
	R, G, B UnsignedByte
}

var (
	colorInternMu    sync.Mutex
	colorInternTable = map[[3]byte]*RGBColor{}
)

// InternRGBColor returns the shared *RGBColor for the given components,
// allocating and caching it on first use. Safe for concurrent use: every
// lookup and insert holds colorInternMu. The table is only ever grown; an
// interned color is never replaced or mutated.
func InternRGBColor(r, g, b UnsignedByte) *RGBColor {
	key := [3]byte{byte(r), byte(g), byte(b)}
	colorInternMu.Lock()
	defer colorInternMu.Unlock()
	if c, ok := colorInternTable[key]; ok {
		return c
	}
	c := &RGBColor{R: r, G: g, B: b}
	colorInternTable[key] = c
	return c
}

// NewRGBColor validates and interns a color from raw int components.
func NewRGBColor(r, g, b int) (*RGBColor, error) {
	rb, err := NewUnsignedByte(r)
	if err != nil {
		return nil, err
	}
	gb, err := NewUnsignedByte(g)
	if err != nil {
		return nil, err
	}
	bb, err := NewUnsignedByte(b)
	if err != nil {
		return nil, err
	}
	return InternRGBColor(rb, gb, bb), nil
}

func (c *RGBColor) Encode() []byte  { return []byte{byte(c.R), byte(c.G), byte(c.B)} }
func (c *RGBColor) EncodedLen() int { return 3 }
func (c *RGBColor) String() string  { return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B) }

// Equals compares two colors by value, not by identity.
func (c *RGBColor) Equals(other *RGBColor) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

func (c *RGBColor) IsBlack() bool { return c.R == 0 && c.G == 0 && c.B == 0 }
func (c *RGBColor) IsWhite() bool { return c.R == 255 && c.G == 255 && c.B == 255 }
func (c *RGBColor) IsGray() bool  { return c.R == c.G && c.G == c.B }

// MixWith linearly interpolates between c and other by ratio (0 = c, 1 =
// other), rounding each channel to the nearest integer and returning a
// freshly interned color.
func (c *RGBColor) MixWith(other *RGBColor, ratio float64) *RGBColor {
	if ratio <= 0 {
		return c
	}
	if ratio >= 1 {
		return other
	}
	mix := func(a, b UnsignedByte) UnsignedByte {
		v := float64(a)*(1-ratio) + float64(b)*ratio
		return UnsignedByte(int(v + 0.5))
	}
	return InternRGBColor(mix(c.R, other.R), mix(c.G, other.G), mix(c.B, other.B))
}

// ChannelMask selects up to 7 pyro channels (indices 0..6) plus an enable
// flag carried in bit 7, encoded as a single byte.
type ChannelMask struct {
	Enable   bool
	Channels [7]bool
}

// NewChannelMask builds a ChannelMask from a list of channel indices.
func NewChannelMask(enable bool, channels ...int) (ChannelMask, error) {
	var m ChannelMask
	m.Enable = enable
	for _, ch := range channels {
		if ch < 0 || ch > 6 {
			return ChannelMask{}, fmt.Errorf("💥 pyro channel index out of range: %d (must be in [0, 6])", ch)
		}
		m.Channels[ch] = true
	}
	return m, nil
}

func (m ChannelMask) Encode() []byte {
	var b byte
	if m.Enable {
		b |= 0x80
	}
	for i, set := range m.Channels {
		if set {
			b |= 1 << uint(i)
		}
	}
	return []byte{b}
}

func (m ChannelMask) EncodedLen() int { return 1 }

// String renders the mask as the hex byte it encodes to, so it round-trips
// through the textual source form as a single parseable literal.
func (m ChannelMask) String() string {
	return fmt.Sprintf("0x%02X", m.Encode()[0])
}

// ChannelValues sets up to 7 pyro channels to a 0/1 value, bit 7 always 0.
type ChannelValues struct {
	Channels [7]bool
}

func NewChannelValues(channels ...int) (ChannelValues, error) {
	var v ChannelValues
	for _, ch := range channels {
		if ch < 0 || ch > 6 {
			return ChannelValues{}, fmt.Errorf("💥 pyro channel index out of range: %d (must be in [0, 6])", ch)
		}
		v.Channels[ch] = true
	}
	return v, nil
}

func (v ChannelValues) Encode() []byte {
	var b byte
	for i, set := range v.Channels {
		if set {
			b |= 1 << uint(i)
		}
	}
	return []byte{b & 0x7f}
}

func (v ChannelValues) EncodedLen() int { return 1 }

// String renders the value set as the hex byte it encodes to, so it
// round-trips through the textual source form as a single parseable literal.
func (v ChannelValues) String() string {
	return fmt.Sprintf("0x%02X", v.Encode()[0])
}

// DecodeChannelMask/DecodeChannelValues are used by package bytecode; kept
// here beside the types they decode rather than in bytecode itself.

func DecodeChannelMask(b byte) ChannelMask {
	var m ChannelMask
	m.Enable = b&0x80 != 0
	for i := 0; i < 7; i++ {
		m.Channels[i] = b&(1<<uint(i)) != 0
	}
	return m
}

func DecodeChannelValues(b byte) ChannelValues {
	var v ChannelValues
	for i := 0; i < 7; i++ {
		v.Channels[i] = b&(1<<uint(i)) != 0
	}
	return v
}
