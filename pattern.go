package zzre

import (
	"fmt"
	"io"
)

// Pattern is a compiled pattern. It is immutable, so it can be matched from
// multiple goroutines at once.
type Pattern struct {
	source   string
	cfg      compileConfig
	entities []entity
}

// Compile converts a pattern into a sequence of match entities. Compile
// never fails: symbols that don't make sense where they appear are dropped.
func Compile(pattern string, opts ...CompileOption) *Pattern {
	cfg := defaultCompileConfig
	for _, o := range opts {
		o(&cfg)
	}
	return &Pattern{
		source:   pattern,
		cfg:      cfg,
		entities: compile(pattern, &cfg),
	}
}

// String returns the source text of the pattern.
func (p *Pattern) String() string { return p.source }

// WriteDot writes a digraph representing the compiled entities to the
// writer (in GraphViz syntax). Solid edges consume text, dashed edges
// don't. A dotted loop on the first state marks an unanchored start.
func (p *Pattern) WriteDot(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph {\n\trankdir=LR;"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "\tinitial [label=\"\", style=invis];"); err != nil {
		return err
	}

	n := len(p.entities)
	for i := 0; i <= n; i++ {
		shape := "circle"
		if i == n {
			shape = "doublecircle"
		}
		if _, err := fmt.Fprintf(w, "\tstate_%d [label=\"\", shape=%s];\n", i, shape); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "\tinitial -> state_0;"); err != nil {
		return err
	}

	if n > 0 && p.entities[0].Mode == modeSearch {
		if _, err := fmt.Fprintln(w, "\tstate_0 -> state_0 [label=\"skip\", style=dotted];"); err != nil {
			return err
		}
	}

	for i, e := range p.entities {
		if e.Kind != kindRepeat {
			if _, err := fmt.Fprintf(w, "\tstate_%d -> state_%d [label=%q];\n", i, i+1, e.String()); err != nil {
				return err
			}
			continue
		}

		// Repetitions get an intermediate state, with a dashed edge back
		// for another occurrence, and a dashed edge around for zero.
		if _, err := fmt.Fprintf(w, "\trep_%d [label=\"\", shape=point];\n", i); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\tstate_%d -> rep_%d [label=%q];\n", i, i, e.Sub.String()); err != nil {
			return err
		}
		label := ""
		if e.Last {
			label = "$"
		}
		if _, err := fmt.Fprintf(w, "\trep_%d -> state_%d [label=%q, style=dashed];\n", i, i+1, label); err != nil {
			return err
		}
		if e.Max != 1 {
			if _, err := fmt.Fprintf(w, "\trep_%d -> state_%d [label=\"\", style=dashed];\n", i, i); err != nil {
				return err
			}
		}
		if e.Min == 0 {
			if _, err := fmt.Fprintf(w, "\tstate_%d -> state_%d [label=%q, style=dashed];\n", i, i+1, label); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return err
	}
	return nil
}

// longestLiteral returns the longest text that every match of p must
// contain, or "" if there is none.
func (p *Pattern) longestLiteral() string {
	var best string
	for _, e := range p.entities {
		if e.mandatory() && len(e.Lit) > len(best) {
			best = e.Lit
		}
	}
	return best
}
