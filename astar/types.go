package astar

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Search.
var (
	// ErrPathNotFound indicates the frontier emptied without reaching the goal.
	ErrPathNotFound = errors.New("astar: no path to goal")

	// ErrNilSuccessors indicates that Search was called without a SuccessorFunc.
	ErrNilSuccessors = errors.New("astar: successor function is nil")

	// ErrNegativeCost indicates a successor reported a negative step cost.
	ErrNegativeCost = errors.New("astar: negative step cost encountered")

	// ErrBadMaxCost indicates WithMaxCost was given a negative cap.
	ErrBadMaxCost = errors.New("astar: MaxCost must be non-negative")
)

// Successor is a node reachable in one step, with the cost of that step.
type Successor[N comparable] struct {
	Node N
	Cost int64
}

// SuccessorFunc returns the nodes reachable from n in one step.
type SuccessorFunc[N comparable] func(n N) []Successor[N]

// Heuristic estimates the remaining cost from a node to the goal.
// It must never overestimate for Search to return optimal costs.
type Heuristic[N comparable] func(from, goal N) int64

// Zero is the trivial heuristic. Searching with it is uniform-cost search.
func Zero[N comparable](_, _ N) int64 { return 0 }

// Result holds the outcome of a successful search.
//
//   - Cost: accumulated cost of the optimal path.
//   - Path: start..goal inclusive, only populated with WithReturnPath.
//   - Expanded: number of nodes finalized before the goal was popped.
type Result[N comparable] struct {
	Cost     int64
	Path     []N
	Expanded int
}

// Options configures Search.
//
// Ctx         – cancellation, checked once per expansion.
// ReturnPath  – record predecessors and fill Result.Path.
// MaxCost     – entries whose accumulated cost exceeds the cap are not expanded.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	Ctx        context.Context
	ReturnPath bool
	MaxCost    int64

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with no cap, no path recording and a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		MaxCost: math.MaxInt64,
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

// WithReturnPath enables predecessor tracking so Result.Path is filled.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost stops expanding nodes whose accumulated cost exceeds max.
// A negative value is recorded and surfaced as ErrBadMaxCost by Search.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxCost, max)
			return
		}
		o.MaxCost = max
	}
}
