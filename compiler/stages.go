package compiler

import (
	"ledctrl/bytecode"
	"ledctrl/container"
	"ledctrl/ir"
	"ledctrl/optimiser"
	"ledctrl/plan"
	"ledctrl/source"
)

// parseStage decodes raw input bytes into an ir.StatementSequence according
// to Format. It is always run (ShouldRun is unconditional): the facade has
// nothing useful to do without a parsed program.
type parseStage struct {
	format Format
	raw    []byte
	result *ir.StatementSequence
}

func (s *parseStage) ShouldRun() bool { return true }

func (s *parseStage) Run(env *plan.ExecutionEnvironment) error {
	var (
		seq *ir.StatementSequence
		err error
	)
	switch s.format {
	case FormatSource:
		seq, err = source.Parse(string(s.raw))
	case FormatBinary:
		seq, err = bytecode.Decode(s.raw)
	case FormatJSON, FormatAST:
		var payload []byte
		if payload, err = container.Decode(s.raw); err == nil {
			seq, err = bytecode.Decode(payload)
		}
	default:
		return cerrorsUnsupported(s.format)
	}
	if err != nil {
		return err
	}
	s.result = seq
	return nil
}

func (s *parseStage) Output() any { return s.result }

// optimiseStage runs optimiser.ForLevel(level) to a fixed point over the
// program produced by a prior parseStage.
type optimiseStage struct {
	level  int
	input  func() *ir.StatementSequence
	result *ir.StatementSequence
}

func (s *optimiseStage) ShouldRun() bool { return true }

func (s *optimiseStage) Run(env *plan.ExecutionEnvironment) error {
	program := s.input()
	optimiser.ForLevel(s.level).Optimise(program)
	s.result = program
	return nil
}

func (s *optimiseStage) Output() any { return s.result }

// emitStage encodes a program in Format, producing the facade's final
// bytes for one requested output.
type emitStage struct {
	format Format
	input  func() *ir.StatementSequence
	result []byte
}

func (s *emitStage) ShouldRun() bool { return true }

func (s *emitStage) Run(env *plan.ExecutionEnvironment) error {
	program := s.input()
	switch s.format {
	case FormatSource:
		s.result = []byte(source.Encode(program))
		return nil
	case FormatBinary:
		raw, err := bytecode.Encode(program)
		if err != nil {
			return err
		}
		s.result = raw
		return nil
	case FormatJSON, FormatAST:
		raw, err := bytecode.Encode(program)
		if err != nil {
			return err
		}
		enveloped, err := container.Encode(raw)
		if err != nil {
			return err
		}
		s.result = enveloped
		return nil
	default:
		return cerrorsUnsupported(s.format)
	}
}

func (s *emitStage) Output() any { return s.result }
