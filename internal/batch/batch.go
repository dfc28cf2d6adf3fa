// Package batch runs several independent compilations concurrently. Each
// unit gets its own session.Session (own arena, intern table, and
// diagnostic context, per spec §5's isolation rule) so no state crosses
// between units; golang.org/x/sync/errgroup fans the work out and joins it
// back into an order-preserving slice of results.
package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"kermlc/internal/diag"
	"kermlc/internal/session"
)

// Unit names one file or in-memory source to compile.
type Unit struct {
	// Name labels the unit in Result and is used as the virtual file name
	// when Content is set. When Path is set instead, Name defaults to
	// Path.
	Name string
	// Path, when non-empty, is loaded from disk. Otherwise Content is
	// compiled directly as virtual source.
	Path    string
	Content []byte
}

// Result is one Unit's outcome. Err is set only when loading the unit's
// source failed (a missing file, an I/O error); diagnostics produced
// during compilation live in Diags regardless of Err.
type Result struct {
	Unit  Unit
	Diags []diag.Diagnostic
	Err   error
}

// Options configures every session a Run spawns. MaxConcurrency caps how
// many units compile at once; zero means errgroup's own unbounded default.
type Options struct {
	Session        session.Options
	MaxConcurrency int
}

// Run compiles every unit concurrently, each in its own Session, and
// returns one Result per unit in the same order as units. Run itself
// never fails: a per-unit error is recorded on that unit's Result rather
// than aborting the batch, so a caller always gets a complete report. The
// returned error is non-nil only if ctx was canceled before the batch
// finished.
func Run(ctx context.Context, units []Unit, opts Options) ([]Result, error) {
	results := make([]Result, len(units))

	g, ctx := errgroup.WithContext(ctx)
	if opts.MaxConcurrency > 0 {
		g.SetLimit(opts.MaxConcurrency)
	}

	for i, unit := range units {
		i, unit := i, unit
		g.Go(func() error {
			results[i] = runUnit(ctx, unit, opts.Session)
			return ctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("batch: %w", err)
	}
	return results, nil
}

func runUnit(ctx context.Context, unit Unit, sessOpts session.Options) Result {
	if unit.Name == "" {
		unit.Name = unit.Path
	}
	if err := ctx.Err(); err != nil {
		return Result{Unit: unit, Err: err}
	}

	s := session.New(sessOpts)

	var err error
	switch {
	case unit.Path != "":
		_, err = s.CompileFile(unit.Path)
	default:
		name := unit.Name
		if name == "" {
			name = "<batch>"
		}
		s.CompileSource(name, unit.Content)
	}

	if err != nil {
		return Result{Unit: unit, Err: fmt.Errorf("batch: %s: %w", unitLabel(unit), err)}
	}
	return Result{Unit: unit, Diags: s.Diags.Items()}
}

func unitLabel(unit Unit) string {
	if unit.Path != "" {
		return unit.Path
	}
	if unit.Name != "" {
		return unit.Name
	}
	return "<batch>"
}

// Summary aggregates per-unit results into the counts spec §7's exit-code
// rule checks.
type Summary struct {
	Units       int
	Failed      int // units whose load/I-O step errored
	WithErrors  int // units that compiled but reported diagnostic errors
	ErrorCount  int
	WarnCount   int
}

// Summarize walks results and tallies Summary's counters.
func Summarize(results []Result) Summary {
	var s Summary
	s.Units = len(results)
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
			continue
		}
		var hasError bool
		for _, d := range r.Diags {
			switch d.Severity {
			case diag.SevError, diag.SevFatal:
				s.ErrorCount++
				hasError = true
			case diag.SevWarning:
				s.WarnCount++
			}
		}
		if hasError {
			s.WithErrors++
		}
	}
	return s
}
