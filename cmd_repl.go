package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"ledctrl/interpreter"
	"ledctrl/source"
)

// replCmd is an interactive line-editing session (github.com/chzyer/readline
// for history and prompt handling) that accepts one program per blank-line
// -terminated block, parses it, and prints the color timeline it produces.
type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Start an interactive ledctrl session" }
func (*replCmd) Usage() string {
	return `repl:
  Enter one or more statements, end the block with a blank line, "exit" to quit.
`
}

func (*replCmd) SetFlags(f *flag.FlagSet) {}

func (*replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Fprintln(os.Stdout, "ledctrl interactive session — blank line runs the block, \"exit\" quits")

	rl, err := readline.New(">>> ")
	if err != nil {
		return fail("starting readline: %v", err)
	}
	defer rl.Close()

	var block strings.Builder
	for {
		rl.SetPrompt(">>> ")
		if block.Len() > 0 {
			rl.SetPrompt("... ")
		}
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return subcommands.ExitSuccess
		}
		if err != nil {
			return fail("reading input: %v", err)
		}

		if strings.TrimSpace(line) == "exit" && block.Len() == 0 {
			return subcommands.ExitSuccess
		}

		if strings.TrimSpace(line) == "" {
			if block.Len() == 0 {
				continue
			}
			runBlock(block.String())
			block.Reset()
			continue
		}

		block.WriteString(line)
		block.WriteString("\n")
	}
}

func runBlock(text string) {
	program, err := source.Parse(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return
	}
	exec := interpreter.NewExecutor()
	exec.Walk(program)(func(s interpreter.ExecutorState) bool {
		printState(s)
		return true
	})
	if err := exec.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
}
