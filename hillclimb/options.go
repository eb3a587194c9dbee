package hillclimb

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/gridgraph"
)

// Strategy selects how ShortestPathFromAnyLowPoint covers its candidates.
type Strategy int

const (
	// PerSource runs one independent A* search per candidate start.
	PerSource Strategy = iota
	// ReverseSweep runs a single breadth-first sweep from the end over
	// reversed moves and stops at the first elevation-0 cell.
	ReverseSweep
)

// String returns the name used in configuration files and flags.
func (s Strategy) String() string {
	switch s {
	case PerSource:
		return "per-source"
	case ReverseSweep:
		return "reverse"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy is the inverse of Strategy.String.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "per-source":
		return PerSource, nil
	case "reverse":
		return ReverseSweep, nil
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, s)
}

// ParseHeuristic maps "manhattan" (default) or "zero" to a heuristic.
func ParseHeuristic(s string) (astar.Heuristic[gridgraph.Position], error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "manhattan":
		return Manhattan, nil
	case "zero", "bfs":
		return ZeroHeuristic, nil
	}
	return nil, fmt.Errorf("%w: unknown heuristic %q", ErrOptionViolation, s)
}

// Options holds the tunables shared by every operation in this package.
//
// Ctx       – cancellation for every search.
// Heuristic – remaining-cost estimate; Manhattan by default.
// Workers   – goroutines used by PerSource; runtime.NumCPU() by default.
// Strategy  – PerSource (default) or ReverseSweep.
// Logger    – receives debug output; discards everything by default.
type Options struct {
	Ctx       context.Context
	Heuristic astar.Heuristic[gridgraph.Position]
	Workers   int
	Strategy  Strategy
	Logger    logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// Option is a functional option for this package.
type Option func(*Options)

// DefaultOptions returns Manhattan, PerSource, NumCPU workers and a silent logger.
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)
	return Options{
		Ctx:       context.Background(),
		Heuristic: Manhattan,
		Workers:   runtime.NumCPU(),
		Strategy:  PerSource,
		Logger:    silent,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic overrides the search heuristic. nil is treated as ZeroHeuristic.
func WithHeuristic(h astar.Heuristic[gridgraph.Position]) Option {
	return func(o *Options) {
		if h == nil {
			h = ZeroHeuristic
		}
		o.Heuristic = h
	}
}

// WithWorkers bounds the PerSource fan-out. n must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithStrategy selects the multi-source strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != PerSource && s != ReverseSweep {
			o.err = fmt.Errorf("%w: unknown strategy %v", ErrOptionViolation, s)
			return
		}
		o.Strategy = s
	}
}

// WithLogger routes debug output to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
