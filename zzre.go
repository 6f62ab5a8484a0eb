// Package zzre implements a small backtracking pattern matcher.
//
// Patterns use a compact syntax: plain characters match themselves, \X
// matches X literally, . matches any single byte, ^ and $ anchor the match
// to the start and end of the text, and ?, * and + repeat the previous
// entity 0-1, 0+ and 1+ times. Malformed patterns are never rejected;
// stray symbols are dropped or ignored instead.
package zzre

// Match compiles the pattern and reports whether it matches text.
func Match(pattern, text string) bool {
	return Compile(pattern).Match(text)
}
