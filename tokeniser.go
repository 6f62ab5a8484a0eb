package zzre

// symbol is the role a single pattern byte plays.
type symbol int

const (
	symLiteral  symbol = iota // not any of the below
	symEscape                 // \
	symStart                  // ^
	symEnd                    // $
	symWildcard               // .
	symQuestion               // ?
	symStar                   // *
	symPlus                   // +
)

// classify decides what c means, given which special symbols are enabled.
// Disabled symbols are plain literals.
func classify(c byte, cfg *compileConfig) symbol {
	switch c {
	case '\\':
		if cfg.allowEscaping {
			return symEscape
		}
	case '^':
		if cfg.allowAnchors {
			return symStart
		}
	case '$':
		if cfg.allowAnchors {
			return symEnd
		}
	case '.':
		if cfg.allowWildcard {
			return symWildcard
		}
	case '?':
		if cfg.allowQuestion {
			return symQuestion
		}
	case '*':
		if cfg.allowStar {
			return symStar
		}
	case '+':
		if cfg.allowPlus {
			return symPlus
		}
	}
	return symLiteral
}

// repeatRange returns the occurrence range for a quantifier symbol.
// A max of 0 is unbounded.
func repeatRange(s symbol) (min, max int) {
	switch s {
	case symQuestion:
		return 0, 1
	case symStar:
		return 0, 0
	case symPlus:
		return 1, 0
	}
	return 1, 1
}
