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
	"ledctrl/source"
)

// disassembleCmd prints the human-readable opcode listing for a program,
// regardless of which format it's stored in on disk.
type disassembleCmd struct {
	hintFmt string
}

func (*disassembleCmd) Name() string     { return "disassemble" }
func (*disassembleCmd) Synopsis() string { return "Print the opcode listing for a program" }
func (*disassembleCmd) Usage() string {
	return `disassemble [-format hint] <file>:
  Decode <file> to bytecode and print its disassembly.
`
}

func (c *disassembleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.hintFmt, "format", "", "explicit input format, overriding extension autodetection")
}

func (c *disassembleCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		return fail("no input file provided")
	}
	inputPath := args[0]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fail("reading %s: %v", inputPath, err)
	}

	format := compiler.FormatUnknown
	if c.hintFmt != "" {
		format, err = compiler.ParseFormatHint(c.hintFmt)
	} else {
		format, err = compiler.DetectInputFormat(inputPath)
	}
	if err != nil {
		return fail("%v", err)
	}

	raw, err := toRawBytecode(data, format)
	if err != nil {
		return fail("%v", err)
	}
	fmt.Fprint(os.Stdout, bytecode.Disassemble(raw))
	return subcommands.ExitSuccess
}

func toRawBytecode(data []byte, format compiler.Format) ([]byte, error) {
	switch format {
	case compiler.FormatBinary:
		return data, nil
	case compiler.FormatJSON, compiler.FormatAST:
		return container.Decode(data)
	case compiler.FormatSource:
		program, err := source.Parse(string(data))
		if err != nil {
			return nil, err
		}
		return bytecode.Encode(program)
	default:
		return nil, fmt.Errorf("💥 unsupported format for disassembly: %s", format)
	}
}
