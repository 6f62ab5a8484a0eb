package zzre

import "io"

// MatchOption functions optionally alter how MatchContext and MultiMatch
// operate.
type MatchOption = func(*matchConfig)

type matchConfig struct {
	traceLogger io.Writer
	stepLimit   int
	goroutines  int
}

// WithTraceLogs logs each step of the backtracking search to the provided
// writer: one line per entity application, and one per candidate end offset
// tried. MultiMatch serialises writes from its goroutines, so out doesn't
// need to be safe for concurrent use. Disabled by default.
func WithTraceLogs(out io.Writer) MatchOption {
	return func(cfg *matchConfig) {
		cfg.traceLogger = out
	}
}

// WithStepLimit bounds the number of entity applications a single match may
// perform, after which matching stops with ErrStepLimit. Backtracking is
// exponential for some patterns, so set this when patterns or texts come
// from untrusted sources. Zero (the default) means unbounded.
func WithStepLimit(n int) MatchOption {
	return func(cfg *matchConfig) {
		cfg.stepLimit = n
	}
}

// GoroutineLimit sets the number of worker goroutines MultiMatch uses.
// Zero or negative (the default) uses one goroutine per pattern.
func GoroutineLimit(n int) MatchOption {
	return func(cfg *matchConfig) {
		cfg.goroutines = n
	}
}
