package zzre

import "strings"

// compile turns a pattern into a sequence of entities in a single pass.
//
// Only the first entity of a pattern without a leading ^ searches; every
// other entity has to continue the match contiguously. Trailing \,
// quantifiers with nothing to repeat, and $ with nothing before it are
// ignored.
func compile(pattern string, cfg *compileConfig) []entity {
	var ents []entity

	// Plain characters accumulate into one literal run. The run keeps the
	// mode that was current at its first character.
	var lit strings.Builder
	litMode := modeSearch
	flush := func() {
		if lit.Len() == 0 {
			return
		}
		ents = append(ents, literalEnt(lit.String(), litMode))
		lit.Reset()
	}

	m := modeSearch

loop:
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		sym := classify(c, cfg)
		if sym != symLiteral {
			flush()
		}

		switch sym {
		case symLiteral:
			if lit.Len() == 0 {
				litMode = m
			}
			lit.WriteByte(c)

		case symEscape:
			if i+1 < len(pattern) {
				i++
				ents = append(ents, escapedEnt(pattern[i], m))
			}

		case symStart:
			// Compiles to nothing. Its only effect is the mode change
			// below, so whatever follows won't search.

		case symWildcard:
			ents = append(ents, wildcardEnt(m))

		case symEnd:
			if len(ents) == 0 {
				break
			}
			ents[len(ents)-1] = ents[len(ents)-1].asLast()
			// Anything after $ is ignored.
			break loop

		case symQuestion, symStar, symPlus:
			if len(ents) == 0 {
				break
			}
			min, max := repeatRange(sym)
			ents[len(ents)-1] = repeatEnt(ents[len(ents)-1], min, max)
		}

		m = modeMatch
	}
	flush()

	return ents
}
