package zzre

import (
	"context"
	"errors"
	"io"
	"sync"
)

// MultiMatch is like [Pattern.MatchContext], but matches one text against
// multiple patterns simultaneously, calling f for each pattern that matches.
// Patterns that cannot match because the text lacks one of their literal
// runs are skipped before any backtracking happens. The remaining patterns
// are matched in parallel.
// You should either make sure that the callback f is safe to call concurrently
// from multiple goroutines, or set GoroutineLimit to 1.
// The first error returned by f or by a match (e.g. ErrStepLimit) stops all
// the workers, and is returned.
func MultiMatch(ctx context.Context, patterns []*Pattern, text string, f func(*Pattern) error, opts ...MatchOption) error {
	if f == nil {
		return errors.New("nil callback in arg to MultiMatch")
	}

	cfg := &matchConfig{}
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(cfg)
	}

	if cfg.traceLogger != nil {
		cfg.traceLogger = &syncWriter{w: cfg.traceLogger}
	}

	candidates := prefilter(patterns, text)
	if len(candidates) == 0 {
		return nil
	}

	// Spin up this many worker goroutines.
	if cfg.goroutines <= 0 || cfg.goroutines > len(candidates) {
		cfg.goroutines = len(candidates)
	}
	workCh := make(chan *Pattern)
	wctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)
	var wg sync.WaitGroup
	for i := 0; i < cfg.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := multimatchWorker(wctx, cfg, text, f, workCh); err != nil {
				cancel(err)
			}
		}()
	}

	// Feed work to the workers
feed:
	for _, p := range candidates {
		select {
		case <-wctx.Done():
			break feed

		case workCh <- p:
			// work has been fed
		}
	}
	close(workCh)

	wg.Wait()
	return context.Cause(wctx)
}

func multimatchWorker(ctx context.Context, cfg *matchConfig, text string, f func(*Pattern) error, workCh <-chan *Pattern) error {
	for {
		var p *Pattern

		select {
		case work, open := <-workCh:
			if !open {
				return nil
			}
			p = work

		case <-ctx.Done():
			return context.Cause(ctx)
		}

		ok, err := p.matchWith(ctx, text, cfg)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := f(p); err != nil {
			return err
		}
	}
}

// syncWriter serialises writes to w.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
