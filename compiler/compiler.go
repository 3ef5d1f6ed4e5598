package compiler

import (
	"os"

	"ledctrl/cerrors"
	"ledctrl/ir"
	"ledctrl/plan"
)

func cerrorsUnsupported(f Format) error {
	return cerrors.UnsupportedInputFormatError{Format: f.String()}
}

// Options configures a single Compile call.
type Options struct {
	// InputFormat is the format of the input bytes; if FormatUnknown,
	// Compile derives it from Filename's extension.
	InputFormat Format
	// Filename is used for format autodetection and in error messages; it
	// need not refer to a real path.
	Filename string
	// OutputFormats lists every representation to emit; each entry is one
	// pipeline output, in the order requested.
	OutputFormats []Format
	// OptimisationLevel selects the pass set: 0 none, 1 shortening+merging,
	// 2 adds loop detection. The zero value means level 0; the CLI's default
	// of 2 comes from config.Default.
	OptimisationLevel int
	// Logger receives non-fatal diagnostics (duration-rounding warnings and
	// the like); if nil, ExecutionEnvironment's stderr default is used.
	Logger plan.Logger
}

// Result is one Compile output: the format it was encoded in and the bytes.
type Result struct {
	Format Format
	Data   []byte
}

// Compile parses input according to opts (or its filename's extension),
// optimises it, and emits every format in opts.OutputFormats. It returns one
// Result per requested output format, in the order requested, since a
// single input may yield multiple outputs in some configurations.
func Compile(input []byte, opts Options) ([]Result, error) {
	format := opts.InputFormat
	if format == FormatUnknown {
		detected, err := DetectInputFormat(opts.Filename)
		if err != nil {
			return nil, err
		}
		format = detected
	}

	p := plan.NewPlan()
	parse := &parseStage{format: format, raw: input}
	p.AddStep(parse)

	optimise := &optimiseStage{
		level: opts.OptimisationLevel,
		input: func() *ir.StatementSequence { return parse.result },
	}
	p.AddStep(optimise)

	outputs := opts.OutputFormats
	if len(outputs) == 0 {
		outputs = []Format{FormatBinary}
	}
	emitStages := make([]*emitStage, len(outputs))
	for i, f := range outputs {
		stage := &emitStage{format: f, input: func() *ir.StatementSequence { return optimise.result }}
		emitStages[i] = stage
		p.AddStep(stage).MarkAsOutput()
	}

	env := plan.NewExecutionEnvironment()
	if opts.Logger != nil {
		env.Logger = opts.Logger
	}
	if _, err := p.Execute(env, true); err != nil {
		return nil, err
	}

	results := make([]Result, len(emitStages))
	for i, stage := range emitStages {
		results[i] = Result{Format: outputs[i], Data: stage.result}
	}
	return results, nil
}

// CompileFile reads path, autodetects its input format from the extension
// (unless opts.InputFormat is set), and compiles it.
func CompileFile(path string, opts Options) ([]Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if opts.Filename == "" {
		opts.Filename = path
	}
	return Compile(data, opts)
}
