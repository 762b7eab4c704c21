// Package clique options and result record.
package clique

import (
	"context"
	"runtime"
	"time"
)

// Option configures MaxClique via functional arguments.
type Option func(*Options)

// Options holds the tunables of the parametric search.
type Options struct {
	// Ctx allows cancellation between candidate rounds. Workers are not
	// preempted mid-round; see the package doc for the cancellation model.
	Ctx context.Context

	// Threads is the worker count per candidate round. Values < 1 select
	// runtime.NumCPU().
	Threads int

	// OnCandidate, if set, is invoked before every candidate round with
	// the current bounds and the candidate about to be probed. Intended
	// for tests and progress diagnostics.
	OnCandidate func(lb, ub, c int)
}

// DefaultOptions returns the baseline configuration: background context,
// one worker per logical CPU, no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Threads:     runtime.NumCPU(),
		OnCandidate: func(int, int, int) {},
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

// WithThreads caps the number of worker goroutines per candidate round.
func WithThreads(n int) Option {
	return func(o *Options) { o.Threads = n }
}

// WithCandidateHook registers a callback observed before each round.
func WithCandidateHook(fn func(lb, ub, c int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCandidate = fn
		}
	}
}

// Result reports the clique number together with the degeneracy facts
// and timings the run produced.
type Result struct {
	// Size is ω(G).
	Size int

	// Degeneracy is d, and LowerBound the clique lower bound the
	// degeneracy ordering produced before any search ran.
	Degeneracy int
	LowerBound int

	// Threads is the worker count actually used.
	Threads int

	// DegeneracyTime covers the ordering and bound computation;
	// TotalTime the whole call.
	DegeneracyTime time.Duration
	TotalTime      time.Duration
}
