package interpreter

import (
	"testing"

	"ledctrl/ir"
)

func TestPlayerColorAtReturnsSetColors(t *testing.T) {
	program := ir.NewStatementSequence(
		ir.SetColor(255, 0, 0, 10),
		ir.SetColor(0, 255, 0, 10),
		ir.EndCommand{},
	)
	p := NewPlayer(program)
	defer p.Close()

	color, ok := p.ColorAt(0.001)
	if !ok || !color.Equals(ir.MustColor(255, 0, 0)) {
		t.Errorf("ColorAt(0.001) = %v, %v, want red", color, ok)
	}

	color, ok = p.ColorAt(1000)
	if !ok || !color.Equals(ir.MustColor(0, 255, 0)) {
		t.Errorf("ColorAt(1000) = %v, %v, want green (last known color)", color, ok)
	}
}

func TestPlayerColorAtInterpolatesWithinFade(t *testing.T) {
	program := ir.NewStatementSequence(
		ir.SetColor(0, 0, 0, 1),
		ir.FadeToColor(255, 255, 255, int(ir.FPS)),
		ir.EndCommand{},
	)
	p := NewPlayer(program)
	defer p.Close()

	midTimestamp := (1.0 + float64(ir.FPS)/2) / ir.FPS
	color, ok := p.ColorAt(midTimestamp)
	if !ok {
		t.Fatal("ColorAt returned ok=false")
	}
	if color.R == 0 || color.R == 255 {
		t.Errorf("mid-fade color R = %d, want strictly between 0 and 255", color.R)
	}
}

func TestPlayerColorAtSupportsRewind(t *testing.T) {
	program := ir.NewStatementSequence(
		ir.SetColor(10, 10, 10, 5),
		ir.SetColor(20, 20, 20, 5),
		ir.EndCommand{},
	)
	p := NewPlayer(program)
	defer p.Close()

	if _, ok := p.ColorAt(1000); !ok {
		t.Fatal("forward ColorAt failed")
	}
	color, ok := p.ColorAt(0)
	if !ok || !color.Equals(ir.MustColor(10, 10, 10)) {
		t.Errorf("rewound ColorAt(0) = %v, %v, want the first color", color, ok)
	}
}

func TestPlayerCloseIsIdempotent(t *testing.T) {
	program := ir.NewStatementSequence(ir.SetColor(1, 2, 3, 1), ir.EndCommand{})
	p := NewPlayer(program)
	p.Close()
	p.Close()
}
