package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"

	"ledctrl/compiler"
	"ledctrl/config"
)

// compileCmd drives the facade compiler (ledctrl/compiler) end to end:
// autodetect or override the input format, optimise at the requested level,
// and emit one file per requested output format.
type compileCmd struct {
	level   int
	to      string
	output  string
	hintFmt string
}

func (*compileCmd) Name() string     { return "compile" }
func (*compileCmd) Synopsis() string { return "Compile a light-show program between formats" }
func (*compileCmd) Usage() string {
	return `compile [-level N] [-to format[,format...]] [-format hint] [-o path] <file>:
  Parse <file>, optimise it, and emit the requested output format(s).
`
}

func (c *compileCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.level, "level", -1, "optimisation level (0, 1, 2); defaults to config")
	f.StringVar(&c.to, "to", "", "comma-separated output formats (source,binary,json,ast); defaults to config")
	f.StringVar(&c.hintFmt, "format", "", "explicit input format, overriding extension autodetection")
	f.StringVar(&c.output, "o", "", "output path (base name, extension added per format)")
}

func (c *compileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		return fail("no input file provided")
	}
	inputPath := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fail("loading config: %v", err)
	}

	opts := compiler.Options{OptimisationLevel: cfg.OptimisationLevel}
	if c.level >= 0 {
		opts.OptimisationLevel = c.level
	}
	if c.hintFmt != "" {
		format, err := compiler.ParseFormatHint(c.hintFmt)
		if err != nil {
			return fail("%v", err)
		}
		opts.InputFormat = format
	}

	outputs, err := resolveOutputFormats(c.to, cfg.DefaultFormat)
	if err != nil {
		return fail("%v", err)
	}
	opts.OutputFormats = outputs

	results, err := compiler.CompileFile(inputPath, opts)
	if err != nil {
		return fail("%v", err)
	}

	for _, result := range results {
		path := outputPath(c.output, inputPath, result.Format)
		if err := os.WriteFile(path, result.Data, 0o644); err != nil {
			return fail("writing %s: %v", path, err)
		}
		fmt.Fprintf(os.Stdout, "wrote %s (%s)\n", path, result.Format)
	}
	return subcommands.ExitSuccess
}

func resolveOutputFormats(flagValue, fallback string) ([]compiler.Format, error) {
	text := flagValue
	if text == "" {
		text = fallback
	}
	var formats []compiler.Format
	for _, name := range strings.Split(text, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		format, err := compiler.ParseFormatHint(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, format)
	}
	return formats, nil
}

func extensionFor(format compiler.Format) string {
	switch format {
	case compiler.FormatSource:
		return ".led"
	case compiler.FormatJSON:
		return ".json"
	case compiler.FormatAST:
		return ".ast"
	default:
		return ".bin"
	}
}

func outputPath(base, inputPath string, format compiler.Format) string {
	if base != "" {
		return base + extensionFor(format)
	}
	stem := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return stem + extensionFor(format)
}
