package zzre

import (
	"fmt"
	"strconv"
	"strings"
)

// mode controls which start offsets an entity tries.
type mode int

const (
	// modeSearch tries every start offset within the remaining text.
	modeSearch mode = iota

	// modeMatch only tries offset 0, i.e. the entity must continue the
	// match contiguously.
	modeMatch
)

func (m mode) String() string {
	if m == modeSearch {
		return "search"
	}
	return "match"
}

// entityKind distinguishes the entity variants.
type entityKind int

const (
	kindLiteral  entityKind = iota // a run of plain characters
	kindWildcard                   // .
	kindEscaped                    // \X
	kindRepeat                     // Sub repeated between Min and Max times
)

// entity is one compiled unit of a pattern. Entities are built once by
// Compile and never modified afterwards.
type entity struct {
	Kind entityKind

	// Mode is modeSearch only for the first entity of an unanchored
	// pattern.
	Mode mode

	// Last requires the entity to end exactly at the end of the remaining
	// text ($).
	Last bool

	// Lit is the text matched by kindLiteral and kindEscaped.
	Lit string

	// Sub, Min and Max describe a kindRepeat. Max == 0 means unbounded.
	Sub      *entity
	Min, Max int
}

func literalEnt(lit string, m mode) entity {
	return entity{Kind: kindLiteral, Mode: m, Lit: lit}
}

func escapedEnt(c byte, m mode) entity {
	return entity{Kind: kindEscaped, Mode: m, Lit: string(c)}
}

func wildcardEnt(m mode) entity {
	return entity{Kind: kindWildcard, Mode: m}
}

// repeatEnt wraps sub. The repetition takes over the position (and so the
// mode) of the entity it wraps.
func repeatEnt(sub entity, min, max int) entity {
	return entity{Kind: kindRepeat, Mode: sub.Mode, Sub: &sub, Min: min, Max: max}
}

// asLast returns a copy of e that must end at the end of the text.
func (e entity) asLast() entity {
	e.Last = true
	return e
}

// apply returns, in ascending order, every offset into text at which e
// could finish matching. An empty result means e cannot match here.
func (e entity) apply(text string) []int {
	var ends []int
	switch e.Kind {
	case kindLiteral, kindEscaped:
		ends = e.applyLiteral(text)
	case kindWildcard:
		ends = e.applyWildcard(text)
	case kindRepeat:
		ends = e.applyRepeat(text)
	default:
		panic(fmt.Sprintf("zzre: unknown entity kind %d", e.Kind))
	}

	// Filter out anything that is out of range, or doesn't reach the end
	// when it has to.
	out := ends[:0]
	for _, i := range ends {
		if i < 0 || i > len(text) {
			continue
		}
		if e.Last && i != len(text) {
			continue
		}
		out = append(out, i)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (e entity) applyLiteral(text string) []int {
	n := len(e.Lit)
	last := 0
	if e.Mode == modeSearch {
		last = len(text) - n
	}
	var ends []int
	for i := 0; i <= last; i++ {
		if strings.HasPrefix(text[i:], e.Lit) {
			ends = append(ends, i+n)
		}
	}
	return ends
}

func (e entity) applyWildcard(text string) []int {
	switch {
	case len(text) == 0:
		return nil

	case e.Mode == modeMatch:
		return []int{1}

	case e.Last:
		// Searching, and has to swallow everything.
		return []int{len(text)}
	}

	// Searching: the wildcard stretches over any non-empty prefix.
	ends := make([]int, len(text))
	for i := range ends {
		ends[i] = i + 1
	}
	return ends
}

// applyRepeat consumes occurrences of Sub greedily, always committing to
// the first end offset Sub reports. It doesn't backtrack into other
// offsets of Sub.
func (e entity) applyRepeat(text string) []int {
	var ends []int
	if e.Min == 0 {
		ends = append(ends, 0)
	}
	off, count := 0, 0
	for (e.Max == 0 || count < e.Max) && off < len(text) {
		subEnds := e.Sub.apply(text[off:])
		if len(subEnds) == 0 {
			break
		}
		step := subEnds[0]
		if step == 0 {
			// A nested optional repetition can match nothing forever.
			break
		}
		off += step
		count++
		if count >= e.Min {
			ends = append(ends, off)
		}
	}
	return ends
}

// String formats the entity roughly as it would appear in a pattern.
func (e entity) String() string {
	var s string
	switch e.Kind {
	case kindLiteral:
		s = strconv.Quote(e.Lit)
	case kindWildcard:
		s = "."
	case kindEscaped:
		s = `\` + e.Lit
	case kindRepeat:
		s = "(" + e.Sub.String() + ")"
		switch {
		case e.Min == 0 && e.Max == 1:
			s += "?"
		case e.Min == 0 && e.Max == 0:
			s += "*"
		case e.Min == 1 && e.Max == 0:
			s += "+"
		case e.Max == 0:
			s += fmt.Sprintf("{%d,}", e.Min)
		default:
			s += fmt.Sprintf("{%d,%d}", e.Min, e.Max)
		}
	}
	if e.Last {
		s += "$"
	}
	return s
}

// mandatory reports whether every match of a pattern must contain e's text
// verbatim.
func (e entity) mandatory() bool {
	return e.Kind == kindLiteral || e.Kind == kindEscaped
}
