package zzre

import (
	"context"
	"errors"
	"fmt"
)

// ErrStepLimit is returned when a match gives up after the number of steps
// set with WithStepLimit.
var ErrStepLimit = errors.New("zzre: step limit exceeded")

// Match reports if the pattern matches the text.
func (p *Pattern) Match(text string) bool {
	m := matcher{ents: p.entities, text: text}
	ok, _ := m.match(0, 0)
	return ok
}

// MatchContext is like Match, but stops early with an error when ctx is
// cancelled or the step limit is reached.
func (p *Pattern) MatchContext(ctx context.Context, text string, opts ...MatchOption) (bool, error) {
	cfg := &matchConfig{}
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(cfg)
	}
	return p.matchWith(ctx, text, cfg)
}

func (p *Pattern) matchWith(ctx context.Context, text string, cfg *matchConfig) (bool, error) {
	m := matcher{
		ctx:  ctx,
		cfg:  cfg,
		ents: p.entities,
		text: text,
	}
	m.logf("matching %q against %q\n", p.source, text)
	ok, err := m.match(0, 0)
	m.logf("result %v after %d steps\n", ok, m.steps)
	return ok, err
}

// matcher holds the state of one depth-first search. Cursors into ents and
// text replace slicing either of them.
type matcher struct {
	ctx   context.Context // nil for plain Match
	cfg   *matchConfig    // nil for plain Match
	ents  []entity
	text  string
	steps int
}

// match reports whether ents[ei:] matches text[off:].
//
// Running out of text doesn't fail outright: the entity is still applied to
// the empty remainder. Literals and wildcards yield nothing there, but an
// optional repetition yields 0, so ^a*$ matches "" (and a.? matches "a").
func (m *matcher) match(ei, off int) (bool, error) {
	if ei == len(m.ents) {
		// Everything matched. Leftover text is fine; $ was already
		// enforced by the entity that carried it.
		return true, nil
	}
	if err := m.step(); err != nil {
		return false, err
	}

	e := m.ents[ei]
	ends := e.apply(m.text[off:])
	m.logf("entity %d %v (%v) at offset %d: ends %v\n", ei, e, e.Mode, off, ends)

	for _, end := range ends {
		m.logf("entity %d trying end %d\n", ei, off+end)
		ok, err := m.match(ei+1, off+end)
		if ok || err != nil {
			return ok, err
		}
	}
	return false, nil
}

func (m *matcher) step() error {
	m.steps++
	if m.cfg != nil && m.cfg.stepLimit > 0 && m.steps > m.cfg.stepLimit {
		return ErrStepLimit
	}
	if m.ctx != nil {
		if err := context.Cause(m.ctx); err != nil {
			return err
		}
	}
	return nil
}

func (m *matcher) logf(f string, v ...any) {
	if m.cfg == nil || m.cfg.traceLogger == nil {
		return
	}
	fmt.Fprintf(m.cfg.traceLogger, f, v...)
}
