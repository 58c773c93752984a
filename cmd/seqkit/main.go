// Command seqkit runs any of the seqkit algorithms on a JSON payload.
//
// Usage:
//
//	seqkit list
//	seqkit run min-window --input '{"s":"ADOBECODEBANC","t":"ABC"}'
//	seqkit run kth-stream --file payload.json
//	echo '{"nums":[1,2,1]}' | seqkit run next-greater-circular --file -
//
// The result is written to stdout as {"result": ...}. Errors are logged to
// stderr and the process exits with status 1.
package main

import (
	"os"

	"github.com/alexflint/go-arg"
)

// Args defines the command-line arguments with subcommands.
type Args struct {
	List    *ListCmd `arg:"subcommand:list" help:"list registered solvers"`
	Run     *RunCmd  `arg:"subcommand:run" help:"run a solver on a JSON payload"`
	Verbose bool     `arg:"-v,--verbose" help:"enable debug logging"`
}

// ListCmd prints the registered solvers.
type ListCmd struct{}

// RunCmd runs one solver.
type RunCmd struct {
	Name  string `arg:"positional,required" help:"solver name, see 'seqkit list'"`
	Input string `arg:"-i,--input" help:"JSON payload"`
	File  string `arg:"-f,--file" help:"read the JSON payload from a file, '-' for stdin"`
}

func main() {
	var args Args
	parser := arg.MustParse(&args)

	if args.List == nil && args.Run == nil {
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, args.Verbose)
	app := &App{
		Registry: NewRegistry(),
		Logger:   logger,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}
	if err := app.Run(args); err != nil {
		logger.Error("seqkit failed", "err", err)
		os.Exit(1)
	}
}
