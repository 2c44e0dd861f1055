package cli

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/circuit"
	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/compiler"
	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/config"
	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/demo"
	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/render"
	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/runlog"
	"github.com/Santosh-Reddy1310/HQAI-Chatbot/internal/sim"
)

// app bundles the wired collaborators a command needs: the orchestrator
// over the simulation engine, the optional run log, and the output
// formatter. Built fresh per command invocation.
type app struct {
	cfg       config.Config
	engine    *sim.Engine
	orch      *demo.Orchestrator
	runs      *runlog.Store // nil when the run log is disabled
	out       *OutputFormatter
	newSource func() sim.Source
}

// newApp loads configuration and wires the stack. Logging goes to the
// command's stderr so JSON output on stdout stays parseable.
func newApp(opts *RootOptions, cmd *cobra.Command) (*app, error) {
	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(handler))

	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "load config", err)
		}
		cfg = loaded
	}

	engine, err := sim.New(sim.WithMaxQubits(cfg.Defaults.MaxQubits))
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "configure engine", err)
	}

	encoding, err := demo.ParseEncoding(cfg.Defaults.Encoding)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "configure encoding", err)
	}

	newSource := func() sim.Source { return sim.NewSource() }
	if opts.Seed != 0 {
		seed := opts.Seed
		newSource = func() sim.Source { return sim.NewSeededSource(seed) }
	}

	orch, err := demo.New(engine, demo.UUIDv7Generator{},
		demo.WithDefaultShots(cfg.Defaults.Shots),
		demo.WithDefaultEncoding(encoding),
		demo.WithSourceFactory(newSource),
	)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "configure orchestrator", err)
	}

	a := &app{
		cfg:       cfg,
		engine:    engine,
		orch:      orch,
		newSource: newSource,
		out: &OutputFormatter{
			Format:  opts.Format,
			Writer:  cmd.OutOrStdout(),
			Verbose: opts.Verbose,
		},
	}

	if cfg.RunLog.Path != "" {
		runs, err := runlog.Open(cfg.RunLog.Path)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "open run log", err)
		}
		a.runs = runs
	}

	return a, nil
}

// Close releases the run log connection, when one is open.
func (a *app) Close() error {
	if a.runs == nil {
		return nil
	}
	return a.runs.Close()
}

// record persists a run summary. History is best effort: a failed write
// is logged, never turned into a command failure.
func (a *app) record(ctx context.Context, runToken, operation string, summary map[string]any) {
	if a.runs == nil {
		return
	}
	if _, err := a.runs.Write(ctx, runToken, operation, summary); err != nil {
		slog.Warn("run log write failed", "operation", operation, "error", err)
	}
}

// diagram renders the circuit for text display, and writes it to the
// configured render directory when one is set.
func (a *app) diagram(c *circuit.Circuit) string {
	d := render.Diagram(c)
	if a.cfg.Render.Dir != "" {
		path, err := render.WriteDiagram(a.cfg.Render.Dir, c)
		if err != nil {
			slog.Warn("diagram write failed", "error", err)
		} else {
			slog.Debug("diagram written", "path", path)
		}
	}
	return d
}

// asExitError maps domain errors to exit codes: caller mistakes exit 2,
// operation failures exit 1.
func asExitError(err error) error {
	if circuit.IsValidationError(err) || compiler.IsCompileError(err) {
		return WrapExitError(ExitCommandError, "invalid input", err)
	}
	return WrapExitError(ExitFailure, "operation failed", err)
}

// formatCounts renders measurement counts sorted by bitstring, with the
// share of shots each outcome took.
func formatCounts(counts map[string]int, shots int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s  %5d  (%.1f%%)\n", k, counts[k], 100*float64(counts[k])/float64(shots))
	}
	return strings.TrimRight(b.String(), "\n")
}
