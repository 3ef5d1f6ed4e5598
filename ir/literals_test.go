package ir

import "testing"

func TestNewUnsignedByteRange(t *testing.T) {
	if _, err := NewUnsignedByte(-1); err == nil {
		t.Error("expected error for -1")
	}
	if _, err := NewUnsignedByte(256); err == nil {
		t.Error("expected error for 256")
	}
	b, err := NewUnsignedByte(255)
	if err != nil || b.Value() != 255 {
		t.Errorf("NewUnsignedByte(255) = %v, %v", b, err)
	}
}

func TestNewVaruintRange(t *testing.T) {
	if _, err := NewVaruint(-1); err == nil {
		t.Error("expected error for -1")
	}
	if _, err := NewVaruint(MaxVaruint); err == nil {
		t.Error("expected error at MaxVaruint")
	}
	v, err := NewVaruint(MaxVaruint - 1)
	if err != nil || v.Value() != MaxVaruint-1 {
		t.Errorf("NewVaruint(MaxVaruint-1) = %v, %v", v, err)
	}
}

func TestDurationFromSecondsTextExact(t *testing.T) {
	var warned string
	d, err := NewDurationFromSecondsText("1.0", func(msg string) { warned = msg })
	if err != nil {
		t.Fatalf("NewDurationFromSecondsText() error = %v", err)
	}
	if d.Frames() != FPS {
		t.Errorf("Frames() = %d, want %d", d.Frames(), FPS)
	}
	if warned != "" {
		t.Errorf("unexpected warning for an exact duration: %q", warned)
	}
}

func TestDurationFromSecondsTextInexactWarns(t *testing.T) {
	var warned bool
	d, err := NewDurationFromSecondsText("0.001", func(string) { warned = true })
	if err != nil {
		t.Fatalf("NewDurationFromSecondsText() error = %v", err)
	}
	if !warned {
		t.Error("expected a warning for an inexact duration")
	}
	if d.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0 (truncated towards zero)", d.Frames())
	}
}

func TestInternRGBColorIdentity(t *testing.T) {
	a, err := NewRGBColor(10, 20, 30)
	if err != nil {
		t.Fatalf("NewRGBColor() error = %v", err)
	}
	b, err := NewRGBColor(10, 20, 30)
	if err != nil {
		t.Fatalf("NewRGBColor() error = %v", err)
	}
	if a != b {
		t.Error("expected the same components to intern to the same pointer")
	}
	if !a.Equals(b) {
		t.Error("Equals() should hold for interned colors")
	}
}

func TestRGBColorPredicates(t *testing.T) {
	black := MustColor(0, 0, 0)
	white := MustColor(255, 255, 255)
	gray := MustColor(7, 7, 7)
	if !black.IsBlack() || black.IsWhite() {
		t.Error("black predicate mismatch")
	}
	if !white.IsWhite() || white.IsBlack() {
		t.Error("white predicate mismatch")
	}
	if !gray.IsGray() {
		t.Error("gray predicate mismatch")
	}
}

func TestRGBColorMixWith(t *testing.T) {
	start := MustColor(0, 0, 0)
	end := MustColor(100, 200, 255)
	mid := start.MixWith(end, 0.5)
	if mid.R.Value() != 50 || mid.G.Value() != 100 {
		t.Errorf("MixWith(0.5) = %v", mid)
	}
	if start.MixWith(end, 0) != start {
		t.Error("ratio 0 should return start unchanged")
	}
	if start.MixWith(end, 1) != end {
		t.Error("ratio 1 should return end unchanged")
	}
}

func TestChannelMaskRoundTrip(t *testing.T) {
	m, err := NewChannelMask(true, 0, 2, 6)
	if err != nil {
		t.Fatalf("NewChannelMask() error = %v", err)
	}
	encoded := m.Encode()
	decoded := DecodeChannelMask(encoded[0])
	if decoded != m {
		t.Errorf("round-trip mismatch: %+v != %+v", decoded, m)
	}
	if _, err := NewChannelMask(false, 7); err == nil {
		t.Error("expected error for out-of-range channel index")
	}
}

func TestChannelValuesRoundTrip(t *testing.T) {
	v, err := NewChannelValues(1, 3, 5)
	if err != nil {
		t.Fatalf("NewChannelValues() error = %v", err)
	}
	encoded := v.Encode()
	if encoded[0]&0x80 != 0 {
		t.Error("bit 7 must always be clear")
	}
	decoded := DecodeChannelValues(encoded[0])
	if decoded != v {
		t.Errorf("round-trip mismatch: %+v != %+v", decoded, v)
	}
}

func TestChannelMaskStringIsParseableHex(t *testing.T) {
	m, _ := NewChannelMask(true, 1)
	s := m.String()
	if len(s) != 4 || s[:2] != "0x" {
		t.Errorf("String() = %q, want a 2-digit 0x-prefixed hex literal", s)
	}
}
