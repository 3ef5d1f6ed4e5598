package optimiser

import (
	"testing"

	"ledctrl/ir"
)

func seqOf(statements ...ir.Statement) *ir.StatementSequence {
	return ir.NewStatementSequence(statements...)
}

func TestCommandMergerCollapsesSleepRun(t *testing.T) {
	program := seqOf(ir.Sleep(10), ir.Sleep(5), ir.Sleep(1))
	changed := (CommandMerger{}).Optimise(program)
	if !changed {
		t.Fatal("expected a change")
	}
	if len(program.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(program.Statements))
	}
	sleep, ok := program.Statements[0].(ir.SleepCommand)
	if !ok {
		t.Fatalf("statement is %T, want SleepCommand", program.Statements[0])
	}
	if sleep.Duration.Frames() != 16 {
		t.Errorf("merged duration = %d frames, want 16", sleep.Duration.Frames())
	}
}

func TestCommandMergerCollapsesSameColorRun(t *testing.T) {
	program := seqOf(ir.SetColor(10, 20, 30, 4), ir.SetColor(10, 20, 30, 6))
	changed := (CommandMerger{}).Optimise(program)
	if !changed {
		t.Fatal("expected a change")
	}
	if len(program.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(program.Statements))
	}
	set, ok := program.Statements[0].(ir.SetColorCommand)
	if !ok {
		t.Fatalf("statement is %T, want SetColorCommand", program.Statements[0])
	}
	if set.Duration.Frames() != 10 {
		t.Errorf("merged duration = %d frames, want 10", set.Duration.Frames())
	}
}

func TestCommandMergerLeavesDifferentColorsAlone(t *testing.T) {
	program := seqOf(ir.SetColor(10, 20, 30, 4), ir.SetColor(40, 50, 60, 6))
	changed := (CommandMerger{}).Optimise(program)
	if changed {
		t.Error("expected no change when colors differ")
	}
	if len(program.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(program.Statements))
	}
}

func TestCommandMergerFoldsFadeFollowedBySleepIntoSleep(t *testing.T) {
	program := seqOf(ir.FadeToColor(10, 20, 30, 4), ir.Sleep(2), ir.Sleep(4))
	changed := (CommandMerger{}).Optimise(program)
	if !changed {
		t.Fatal("expected a change")
	}
	if len(program.Statements) != 2 {
		t.Fatalf("got %d statements, want 2 (fade, sleep)", len(program.Statements))
	}
	if _, ok := program.Statements[0].(ir.FadeToColorCommand); !ok {
		t.Errorf("statement 0 is %T, want FadeToColorCommand", program.Statements[0])
	}
	sleep, ok := program.Statements[1].(ir.SleepCommand)
	if !ok {
		t.Fatalf("statement 1 is %T, want SleepCommand", program.Statements[1])
	}
	if sleep.Duration.Frames() != 6 {
		t.Errorf("merged sleep = %d frames, want 6", sleep.Duration.Frames())
	}
}

func TestColorCommandShortenerSetColorToWhiteBlackGray(t *testing.T) {
	cases := []struct {
		name string
		in   ir.SetColorCommand
		want ir.Statement
	}{
		{"white", ir.SetColor(255, 255, 255, 1), ir.SetWhiteCommand{Duration: ir.MustDuration(1)}},
		{"black", ir.SetColor(0, 0, 0, 1), ir.SetBlackCommand{Duration: ir.MustDuration(1)}},
		{"gray", ir.SetColor(128, 128, 128, 1), ir.SetGray(128, 1)},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			program := seqOf(tt.in)
			if !(ColorCommandShortener{}).Optimise(program) {
				t.Fatal("expected a change")
			}
			if !program.Statements[0].Equivalent(tt.want) {
				t.Errorf("got %+v, want %+v", program.Statements[0], tt.want)
			}
		})
	}
}

func TestColorCommandShortenerLeavesNonGrayColorAlone(t *testing.T) {
	program := seqOf(ir.SetColor(10, 20, 30, 1))
	if (ColorCommandShortener{}).Optimise(program) {
		t.Error("expected no change for a non-gray color")
	}
}

func TestColorCommandShortenerSetGrayExtremesToWhiteBlack(t *testing.T) {
	program := seqOf(ir.SetGray(255, 1), ir.SetGray(0, 1))
	if !(ColorCommandShortener{}).Optimise(program) {
		t.Fatal("expected a change")
	}
	if _, ok := program.Statements[0].(ir.SetWhiteCommand); !ok {
		t.Errorf("statement 0 is %T, want SetWhiteCommand", program.Statements[0])
	}
	if _, ok := program.Statements[1].(ir.SetBlackCommand); !ok {
		t.Errorf("statement 1 is %T, want SetBlackCommand", program.Statements[1])
	}
}

func TestColorCommandShortenerFadeVariants(t *testing.T) {
	program := seqOf(ir.FadeToColor(255, 255, 255, 1), ir.FadeToColor(0, 0, 0, 1))
	if !(ColorCommandShortener{}).Optimise(program) {
		t.Fatal("expected a change")
	}
	if _, ok := program.Statements[0].(ir.FadeToWhiteCommand); !ok {
		t.Errorf("statement 0 is %T, want FadeToWhiteCommand", program.Statements[0])
	}
	if _, ok := program.Statements[1].(ir.FadeToBlackCommand); !ok {
		t.Errorf("statement 1 is %T, want FadeToBlackCommand", program.Statements[1])
	}
}

func TestLoopDetectorCollapsesRepeatedRun(t *testing.T) {
	program := seqOf(ir.Sleep(5), ir.Sleep(5), ir.Sleep(5))
	if !(LoopDetector{}).Optimise(program) {
		t.Fatal("expected a change")
	}
	if len(program.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(program.Statements))
	}
	loop, ok := program.Statements[0].(ir.LoopBlock)
	if !ok {
		t.Fatalf("statement is %T, want LoopBlock", program.Statements[0])
	}
	if loop.Iterations.Value() != 3 {
		t.Errorf("iterations = %d, want 3", loop.Iterations.Value())
	}
	if len(loop.Body.Statements) != 1 {
		t.Fatalf("loop body has %d statements, want 1", len(loop.Body.Statements))
	}
}

func TestLoopDetectorLeavesNonRepeatingRunAlone(t *testing.T) {
	program := seqOf(ir.Sleep(1), ir.Sleep(2), ir.Sleep(3))
	if (LoopDetector{}).Optimise(program) {
		t.Error("expected no change when nothing repeats")
	}
}

func TestLoopDetectorRecursesIntoNestedLoopBodies(t *testing.T) {
	inner := seqOf(ir.Sleep(5), ir.Sleep(5))
	program := seqOf(ir.LoopBlock{Iterations: mustByteT(1), Body: inner})
	if !(LoopDetector{}).Optimise(program) {
		t.Fatal("expected a change inside the nested loop body")
	}
	outer, ok := program.Statements[0].(ir.LoopBlock)
	if !ok {
		t.Fatalf("statement is %T, want LoopBlock", program.Statements[0])
	}
	if len(outer.Body.Statements) != 1 {
		t.Fatalf("outer loop body has %d statements, want 1 (collapsed)", len(outer.Body.Statements))
	}
}

func mustByteT(v int) ir.UnsignedByte {
	b, err := ir.NewUnsignedByte(v)
	if err != nil {
		panic(err)
	}
	return b
}

func TestNullASTOptimiserNeverChanges(t *testing.T) {
	program := seqOf(ir.Sleep(1), ir.Sleep(1))
	if (NullASTOptimiser{}).Optimise(program) {
		t.Error("NullASTOptimiser must never report a change")
	}
}

func TestCompositeASTOptimiserIteratesToFixedPoint(t *testing.T) {
	program := seqOf(
		ir.SetColor(255, 255, 255, 1), ir.SetColor(255, 255, 255, 1), ir.SetColor(255, 255, 255, 1),
	)
	composite := NewComposite(&CommandMerger{}, &ColorCommandShortener{}, &LoopDetector{})
	if !composite.Optimise(program) {
		t.Fatal("expected a change")
	}
	if len(program.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(program.Statements))
	}
	white, ok := program.Statements[0].(ir.SetWhiteCommand)
	if !ok {
		t.Fatalf("final statement is %T, want SetWhiteCommand (merged then shortened)", program.Statements[0])
	}
	if white.Duration.Frames() != 3 {
		t.Errorf("merged duration = %d frames, want 3", white.Duration.Frames())
	}
}

func TestForLevelSelectsExpectedPasses(t *testing.T) {
	if _, ok := ForLevel(0).(NullASTOptimiser); !ok {
		t.Errorf("ForLevel(0) = %T, want NullASTOptimiser", ForLevel(0))
	}

	level1, ok := ForLevel(1).(*CompositeASTOptimiser)
	if !ok {
		t.Fatalf("ForLevel(1) = %T, want *CompositeASTOptimiser", ForLevel(1))
	}
	if len(level1.passes) != 2 {
		t.Errorf("ForLevel(1) has %d passes, want 2", len(level1.passes))
	}

	level2, ok := ForLevel(2).(*CompositeASTOptimiser)
	if !ok {
		t.Fatalf("ForLevel(2) = %T, want *CompositeASTOptimiser", ForLevel(2))
	}
	if len(level2.passes) != 3 {
		t.Errorf("ForLevel(2) has %d passes, want 3", len(level2.passes))
	}
	if _, ok := level2.passes[2].(*LoopDetector); !ok {
		t.Errorf("ForLevel(2)'s third pass is %T, want *LoopDetector", level2.passes[2])
	}
}
