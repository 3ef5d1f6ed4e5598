package ir

import "testing"

func mustDuration(frames int64) Duration {
	d, err := NewDurationFromFrames(frames)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLoopBlockZeroIterationsEncodesEmpty(t *testing.T) {
	body := NewStatementSequence(SleepCommand{Duration: mustDuration(5)})
	loop := LoopBlock{Iterations: 0, Body: body}
	if loop.EncodedLength() != 0 {
		t.Errorf("EncodedLength() = %d, want 0", loop.EncodedLength())
	}
	encoded, err := loop.EncodeBinary()
	if err != nil || len(encoded) != 0 {
		t.Errorf("EncodeBinary() = %v, %v, want empty/nil", encoded, err)
	}
	if loop.EncodeSource() != "" {
		t.Errorf("EncodeSource() = %q, want empty", loop.EncodeSource())
	}
}

func TestLoopBlockSingleIterationInlinesBody(t *testing.T) {
	body := NewStatementSequence(SleepCommand{Duration: mustDuration(5)})
	loop := LoopBlock{Iterations: 1, Body: body}
	bodyEncoded, _ := body.EncodeBinary()
	loopEncoded, _ := loop.EncodeBinary()
	if string(loopEncoded) != string(bodyEncoded) {
		t.Errorf("single-iteration loop should encode identically to its body")
	}
	if loop.EncodeSource() != body.EncodeSource() {
		t.Errorf("single-iteration loop source should equal its body's source")
	}
}

func TestLoopBlockMultipleIterationsWraps(t *testing.T) {
	body := NewStatementSequence(EndCommand{})
	loop := LoopBlock{Iterations: 3, Body: body}
	encoded, err := loop.EncodeBinary()
	if err != nil {
		t.Fatalf("EncodeBinary() error = %v", err)
	}
	want := []byte{byte(CodeLoopBegin), 3, byte(CodeEnd), byte(CodeLoopEnd)}
	if string(encoded) != string(want) {
		t.Errorf("EncodeBinary() = %v, want %v", encoded, want)
	}
	src := loop.EncodeSource()
	if src != "with loop(iterations=3):\n    end()" {
		t.Errorf("EncodeSource() = %q", src)
	}
}

func TestStatementSequenceEquivalent(t *testing.T) {
	a := NewStatementSequence(EndCommand{}, SleepCommand{Duration: mustDuration(1)})
	b := NewStatementSequence(EndCommand{}, SleepCommand{Duration: mustDuration(1)})
	c := NewStatementSequence(EndCommand{}, SleepCommand{Duration: mustDuration(2)})
	if !a.Equivalent(b) {
		t.Error("identical sequences should be equivalent")
	}
	if a.Equivalent(c) {
		t.Error("sequences differing in a duration should not be equivalent")
	}
}

func TestMarkerEncodeBinaryRejected(t *testing.T) {
	label := LabelMarker{Name: "loop_start"}
	if _, err := label.EncodeBinary(); err == nil {
		t.Error("expected an error encoding an unresolved LabelMarker")
	}
	jump := JumpMarker{Label: "loop_start"}
	if _, err := jump.EncodeBinary(); err == nil {
		t.Error("expected an error encoding an unresolved JumpMarker")
	}
}

func TestCommentRoundTripsThroughBannerOnly(t *testing.T) {
	c := Comment{Text: "section one"}
	if c.EncodedLength() != 0 {
		t.Error("comments must contribute nothing to the binary encoding")
	}
	encoded, err := c.EncodeBinary()
	if err != nil || encoded != nil {
		t.Errorf("EncodeBinary() = %v, %v, want nil, nil", encoded, err)
	}
	src := c.EncodeSource()
	want := "# ----------------------------------------\n# section one\n# ----------------------------------------"
	if src != want {
		t.Errorf("EncodeSource() = %q, want %q", src, want)
	}
}
