// Package plan implements the stage-based orchestration the facade compiler
// drives: an ordered list of Stages run in sequence, with support for a
// stage's completion hooks to append further stages at runtime.
package plan

import (
	"fmt"
	"os"
)

// Stage is one step of a compilation plan.
type Stage interface {
	Run(env *ExecutionEnvironment) error
	ShouldRun() bool
}

// outputStage is satisfied by a Stage that produces a result worth
// collecting when the stage has been marked as an output of the plan.
type outputStage interface {
	Output() any
}

// Logger is the ambient diagnostic surface stages see through their
// ExecutionEnvironment. No structured-logging library appears anywhere in
// the reference corpus, so this stays on the standard library; see
// DESIGN.md.
type Logger interface {
	Warnf(format string, args ...any)
}

// stderrLogger is the default Logger, writing to os.Stderr with the
// teacher's short glyph-prefixed diagnostic style.
type stderrLogger struct{}

func (stderrLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[warn] "+format+"\n", args...)
}

// ExecutionEnvironment is passed to every Stage.Run call.
type ExecutionEnvironment struct {
	Logger Logger
}

// NewExecutionEnvironment returns an environment with the default
// stderr-backed Logger.
func NewExecutionEnvironment() *ExecutionEnvironment {
	return &ExecutionEnvironment{Logger: stderrLogger{}}
}

// Plan owns an ordered list of Stages and the subset marked as producing an
// output. Executing it walks the steps in order, re-reading the step count
// after every run so a stage's "done" hook may append new stages.
type Plan struct {
	steps     []Stage
	isOutput  map[Stage]bool
	outputs   []Stage
	doneHooks map[Stage][]func(any)
}

// NewPlan returns an empty Plan.
func NewPlan() *Plan {
	return &Plan{
		isOutput:  map[Stage]bool{},
		doneHooks: map[Stage][]func(any){},
	}
}

// Continuation is returned from AddStep/InsertStep to let the caller attach
// completion hooks or mark the step as an output without holding a separate
// reference to the plan.
type Continuation struct {
	plan *Plan
	step Stage
}

// AddStep appends step to the end of the plan.
func (p *Plan) AddStep(step Stage) *Continuation {
	p.steps = append(p.steps, step)
	return &Continuation{plan: p, step: step}
}

// InsertStep inserts step immediately before or after an existing step.
// Exactly one of before/after must be non-nil.
func (p *Plan) InsertStep(step Stage, before, after Stage) (*Continuation, error) {
	if (before == nil) == (after == nil) {
		return nil, fmt.Errorf("🤖 plan: exactly one of before/after must be set")
	}
	anchor := before
	offset := 0
	if anchor == nil {
		anchor = after
		offset = 1
	}
	index := -1
	for i, s := range p.steps {
		if s == anchor {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, fmt.Errorf("🤖 plan: anchor step is not part of the plan")
	}
	index += offset
	p.steps = append(p.steps, nil)
	copy(p.steps[index+1:], p.steps[index:])
	p.steps[index] = step
	return &Continuation{plan: p, step: step}, nil
}

// AndWhenDone registers fn to run with the stage's output (nil if the stage
// has none) once the stage finishes executing.
func (c *Continuation) AndWhenDone(fn func(output any)) *Continuation {
	c.plan.doneHooks[c.step] = append(c.plan.doneHooks[c.step], fn)
	return c
}

// MarkAsOutput flags the step's output for inclusion in Execute's result
// slice, in the order steps are first marked.
func (c *Continuation) MarkAsOutput() *Continuation {
	if !c.plan.isOutput[c.step] {
		c.plan.isOutput[c.step] = true
		c.plan.outputs = append(c.plan.outputs, c.step)
	}
	return c
}

// Execute runs the plan's steps in order. A step runs when force is true,
// when the step is marked as an output, or when its ShouldRun reports true.
// The step count is re-read after every run, so a "done" hook may append
// further steps to the plan and have them picked up before Execute returns.
// The result holds one entry per output step, in the order they were
// marked, drawn from the step's Output method (nil if it has none).
func (p *Plan) Execute(env *ExecutionEnvironment, force bool) ([]any, error) {
	if env == nil {
		env = NewExecutionEnvironment()
	}
	for index := 0; index < len(p.steps); index++ {
		step := p.steps[index]
		if !force && !p.isOutput[step] && !step.ShouldRun() {
			continue
		}
		if err := step.Run(env); err != nil {
			return nil, err
		}
		for _, hook := range p.doneHooks[step] {
			hook(stepOutput(step))
		}
	}
	results := make([]any, len(p.outputs))
	for i, step := range p.outputs {
		results[i] = stepOutput(step)
	}
	return results, nil
}

func stepOutput(step Stage) any {
	if o, ok := step.(outputStage); ok {
		return o.Output()
	}
	return nil
}
