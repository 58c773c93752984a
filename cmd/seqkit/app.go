package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/tidwall/gjson"
)

var (
	// ErrNoPayload is returned when neither --input nor --file was given.
	ErrNoPayload = errors.New("seqkit: no payload, use --input or --file")

	// ErrBothPayloads is returned when --input and --file are combined.
	ErrBothPayloads = errors.New("seqkit: --input and --file are mutually exclusive")

	// ErrInvalidJSON is returned when the payload does not parse.
	ErrInvalidJSON = errors.New("seqkit: payload is not valid JSON")
)

// App wires the registry to the process streams.
type App struct {
	Registry *Registry
	Logger   *slog.Logger
	Stdin    io.Reader
	Stdout   io.Writer
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Run dispatches to the selected subcommand.
func (a *App) Run(args Args) error {
	switch {
	case args.List != nil:
		return a.list()
	case args.Run != nil:
		return a.run(*args.Run)
	default:
		return fmt.Errorf("no subcommand specified, use 'list' or 'run'")
	}
}

func (a *App) list() error {
	for _, name := range a.Registry.Names() {
		s, _ := a.Registry.Lookup(name)
		if _, err := fmt.Fprintf(a.Stdout, "%-24s %s\n", s.Name, s.Help); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) run(cmd RunCmd) error {
	solver, err := a.Registry.Lookup(cmd.Name)
	if err != nil {
		return err
	}

	payload, err := a.payload(cmd)
	if err != nil {
		return err
	}
	if !gjson.Valid(payload) {
		return ErrInvalidJSON
	}

	a.Logger.Debug("running solver", "name", solver.Name, "bytes", len(payload))
	start := time.Now()
	result, err := solver.Run(gjson.Parse(payload))
	if err != nil {
		return fmt.Errorf("%s: %w", solver.Name, err)
	}
	a.Logger.Debug("solver finished", "name", solver.Name, "elapsed", time.Since(start))

	enc := json.NewEncoder(a.Stdout)

	return enc.Encode(struct {
		Result any `json:"result"`
	}{Result: result})
}

// payload returns the JSON text selected by --input or --file.
func (a *App) payload(cmd RunCmd) (string, error) {
	switch {
	case cmd.Input != "" && cmd.File != "":
		return "", ErrBothPayloads
	case cmd.Input != "":
		return cmd.Input, nil
	case cmd.File == "-":
		b, err := io.ReadAll(a.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}

		return string(b), nil
	case cmd.File != "":
		b, err := os.ReadFile(cmd.File)
		if err != nil {
			return "", fmt.Errorf("read payload: %w", err)
		}

		return string(b), nil
	default:
		return "", ErrNoPayload
	}
}
