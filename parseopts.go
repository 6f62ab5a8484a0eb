package zzre

var defaultCompileConfig = compileConfig{
	allowEscaping: true,
	allowWildcard: true,
	allowAnchors:  true,
	allowQuestion: true,
	allowStar:     true,
	allowPlus:     true,
}

type compileConfig struct {
	allowEscaping bool
	allowWildcard bool
	allowAnchors  bool
	allowQuestion bool
	allowStar     bool
	allowPlus     bool
}

// CompileOption functions optionally alter how patterns are compiled.
type CompileOption = func(*compileConfig)

// AllowEscaping changes how \ is compiled. If disabled, \ is treated as a
// literal which does not escape the next character. Enabled by default.
func AllowEscaping(enable bool) CompileOption {
	return func(o *compileConfig) {
		o.allowEscaping = enable
	}
}

// AllowWildcard changes how . is compiled. If disabled, . is treated as a
// literal. Enabled by default.
func AllowWildcard(enable bool) CompileOption {
	return func(o *compileConfig) {
		o.allowWildcard = enable
	}
}

// AllowAnchors changes how ^ and $ are compiled. If disabled, both are
// treated as literals, and the pattern can match anywhere in the text.
// Enabled by default.
func AllowAnchors(enable bool) CompileOption {
	return func(o *compileConfig) {
		o.allowAnchors = enable
	}
}

// AllowQuestion changes how ? is compiled. If disabled, ? is treated as a
// literal. Enabled by default.
func AllowQuestion(enable bool) CompileOption {
	return func(o *compileConfig) {
		o.allowQuestion = enable
	}
}

// AllowStar changes how * is compiled. If disabled, * is treated as a
// literal. Enabled by default.
func AllowStar(enable bool) CompileOption {
	return func(o *compileConfig) {
		o.allowStar = enable
	}
}

// AllowPlus changes how + is compiled. If disabled, + is treated as a
// literal. Enabled by default.
func AllowPlus(enable bool) CompileOption {
	return func(o *compileConfig) {
		o.allowPlus = enable
	}
}
