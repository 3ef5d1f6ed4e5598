package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"ledctrl/bytecode"
	"ledctrl/compiler"
	"ledctrl/container"
	"ledctrl/interpreter"
	"ledctrl/ir"
	"ledctrl/source"
)

// runCmd walks a program's interpreter and prints every observable state
// change to stdout as "<timestamp>s -> r,g,b", followed by " (fade)" for a
// fade.
type runCmd struct {
	hintFmt string
	unroll  bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "Execute a light-show program and print its timeline" }
func (*runCmd) Usage() string {
	return `run [-format hint] [-unroll] <file>:
  Decode <file> and print the sequence of color changes it produces.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.hintFmt, "format", "", "explicit input format, overriding extension autodetection")
	f.BoolVar(&c.unroll, "unroll", false, "expand fades into one event per frame")
}

func (c *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		return fail("no input file provided")
	}
	inputPath := args[0]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fail("reading %s: %v", inputPath, err)
	}

	var format compiler.Format
	if c.hintFmt != "" {
		format, err = compiler.ParseFormatHint(c.hintFmt)
	} else {
		format, err = compiler.DetectInputFormat(inputPath)
	}
	if err != nil {
		return fail("%v", err)
	}

	program, err := parseProgram(data, format)
	if err != nil {
		return fail("%v", err)
	}

	exec := interpreter.NewExecutor()
	states := exec.Walk(program)
	if c.unroll {
		states = interpreter.Unroll(states)
	}
	states(func(s interpreter.ExecutorState) bool {
		printState(s)
		return true
	})
	if err := exec.Err(); err != nil {
		return fail("%v", err)
	}
	return subcommands.ExitSuccess
}

func printState(s interpreter.ExecutorState) {
	suffix := ""
	if s.IsFade {
		suffix = " (fade)"
	}
	fmt.Fprintf(os.Stdout, "%7.3fs -> %d,%d,%d%s\n", s.Timestamp, s.Color.R, s.Color.G, s.Color.B, suffix)
}

func parseProgram(data []byte, format compiler.Format) (*ir.StatementSequence, error) {
	switch format {
	case compiler.FormatSource:
		return source.Parse(string(data))
	case compiler.FormatBinary:
		return bytecode.Decode(data)
	case compiler.FormatJSON, compiler.FormatAST:
		raw, err := container.Decode(data)
		if err != nil {
			return nil, err
		}
		return bytecode.Decode(raw)
	default:
		return nil, fmt.Errorf("💥 unsupported input format: %s", format)
	}
}
