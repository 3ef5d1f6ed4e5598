// Package interpreter walks a compiled program and produces the sequence of
// observable LED-strip states it describes.
package interpreter

import (
	"errors"
	"fmt"

	"ledctrl/ir"
)

// Color is the value carried by an ExecutorState: the same interned
// *ir.RGBColor used throughout the IR, so mixing and equality stay
// consistent with the rest of the tree.
type Color = *ir.RGBColor

// ExecutorState is the executor's mutable state at one point in time.
type ExecutorState struct {
	Timestamp float64
	Color     Color
	IsFade    bool
}

func initialState() ExecutorState {
	return ExecutorState{Color: ir.InternRGBColor(0, 0, 0)}
}

func (s *ExecutorState) advanceByFrames(frames int) {
	s.Timestamp += float64(frames) / ir.FPS
}

// StateFunc is a push-style lazy sequence of ExecutorStates: calling it
// invokes yield once per state, stopping early if yield returns false.
type StateFunc func(yield func(ExecutorState) bool)

// errStopExecution unwinds the walk once an EndCommand is reached or the
// caller's yield has asked to stop; Walk swallows it and returns normally.
var errStopExecution = errors.New("end of program reached")

// Executor walks statements, maintaining one mutable ExecutorState across
// the walk and yielding a copy of it at every observable change.
type Executor struct {
	state ExecutorState
	err   error
}

// NewExecutor returns an Executor with its virtual strip set to black at
// timestamp zero.
func NewExecutor() *Executor {
	return &Executor{state: initialState()}
}

// Walk returns the lazy sequence of states produced by executing program.
// Err reports any internal failure once the returned StateFunc has run to
// completion (or stopped early); a well-formed program never sets it.
func (e *Executor) Walk(program *ir.StatementSequence) StateFunc {
	return func(yield func(ExecutorState) bool) {
		if err := e.executeSequence(program, yield); err != nil && !errors.Is(err, errStopExecution) {
			e.err = err
		}
	}
}

// Err returns the internal error recorded by the most recent Walk, if any.
func (e *Executor) Err() error { return e.err }

func (e *Executor) executeSequence(seq *ir.StatementSequence, yield func(ExecutorState) bool) error {
	for _, stmt := range seq.Statements {
		if err := e.execute(stmt, yield); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) execute(stmt ir.Statement, yield func(ExecutorState) bool) error {
	switch n := stmt.(type) {
	case ir.EndCommand:
		return errStopExecution

	case ir.NopCommand, ir.SetPyroCommand, ir.SetPyroAllCommand, ir.Comment,
		ir.ResetTimerCommand, ir.JumpCommand, ir.TriggeredJumpCommand,
		ir.LabelMarker, ir.JumpMarker, ir.SetColorFromChannelsCommand,
		ir.FadeToColorFromChannelsCommand:
		return nil

	case ir.SleepCommand:
		e.state.advanceByFrames(n.Duration.Frames())
		e.state.IsFade = false
		return e.emit(yield)

	case ir.WaitUntilCommand:
		target := float64(n.Timestamp.Value())
		if target > e.state.Timestamp {
			e.state.Timestamp = target
		}
		e.state.IsFade = false
		return e.emit(yield)

	case ir.SetBlackCommand:
		return e.setColor(ir.InternRGBColor(0, 0, 0), n.Duration, yield)
	case ir.SetWhiteCommand:
		return e.setColor(ir.InternRGBColor(255, 255, 255), n.Duration, yield)
	case ir.SetGrayCommand:
		return e.setColor(ir.InternRGBColor(n.Value, n.Value, n.Value), n.Duration, yield)
	case ir.SetColorCommand:
		return e.setColor(n.Color, n.Duration, yield)

	case ir.FadeToBlackCommand:
		return e.fadeTo(ir.InternRGBColor(0, 0, 0), n.Duration, yield)
	case ir.FadeToWhiteCommand:
		return e.fadeTo(ir.InternRGBColor(255, 255, 255), n.Duration, yield)
	case ir.FadeToGrayCommand:
		return e.fadeTo(ir.InternRGBColor(n.Value, n.Value, n.Value), n.Duration, yield)
	case ir.FadeToColorCommand:
		return e.fadeTo(n.Color, n.Duration, yield)

	case ir.LoopBlock:
		return e.executeLoop(n, yield)

	default:
		return fmt.Errorf("🤖 executor: cannot execute %T", stmt)
	}
}

func (e *Executor) executeLoop(loop ir.LoopBlock, yield func(ExecutorState) bool) error {
	if loop.Iterations == 0 {
		for {
			if err := e.executeSequence(loop.Body, yield); err != nil {
				return err
			}
		}
	}
	for i := 0; i < loop.Iterations.Value(); i++ {
		if err := e.executeSequence(loop.Body, yield); err != nil {
			return err
		}
	}
	return nil
}

// emit hands the current state to yield, reporting errStopExecution if the
// caller asked to stop.
func (e *Executor) emit(yield func(ExecutorState) bool) error {
	if !yield(e.state) {
		return errStopExecution
	}
	return nil
}

func (e *Executor) setColor(color Color, d ir.Duration, yield func(ExecutorState) bool) error {
	e.state.Color = color
	e.state.IsFade = false
	if err := e.emit(yield); err != nil {
		return err
	}
	e.state.advanceByFrames(d.Frames())
	return nil
}

func (e *Executor) fadeTo(color Color, d ir.Duration, yield func(ExecutorState) bool) error {
	if !e.state.IsFade {
		if err := e.emit(yield); err != nil {
			return err
		}
		e.state.IsFade = true
	}
	e.state.advanceByFrames(d.Frames())
	e.state.Color = color
	return e.emit(yield)
}
