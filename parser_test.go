package zzre

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompile(t *testing.T) {
	search := func(s string) entity { return literalEnt(s, modeSearch) }
	match := func(s string) entity { return literalEnt(s, modeMatch) }

	tests := []struct {
		pattern string
		opts    []CompileOption
		want    []entity
	}{
		{
			pattern: "",
			want:    nil,
		},
		{
			pattern: "abc",
			want:    []entity{search("abc")},
		},
		{
			pattern: "^abc",
			want:    []entity{match("abc")},
		},
		{
			pattern: "a.c",
			want:    []entity{search("a"), wildcardEnt(modeMatch), match("c")},
		},
		{
			pattern: "^a.c$",
			want:    []entity{match("a"), wildcardEnt(modeMatch), match("c").asLast()},
		},
		{
			pattern: `\.`,
			want:    []entity{escapedEnt('.', modeSearch)},
		},
		{
			// Trailing backslash is dropped.
			pattern: `ab\`,
			want:    []entity{search("ab")},
		},
		{
			pattern: `ab\cd`,
			want:    []entity{search("ab"), escapedEnt('c', modeMatch), match("d")},
		},
		{
			pattern: "a*b",
			want:    []entity{repeatEnt(search("a"), 0, 0), match("b")},
		},
		{
			// The quantifier repeats the whole literal run.
			pattern: "ab+",
			want:    []entity{repeatEnt(search("ab"), 1, 0)},
		},
		{
			pattern: "x.?",
			want:    []entity{search("x"), repeatEnt(wildcardEnt(modeMatch), 0, 1)},
		},
		{
			// Nothing to repeat, but it still uses up the search.
			pattern: "*a",
			want:    []entity{match("a")},
		},
		{
			pattern: "$a",
			want:    []entity{match("a")},
		},
		{
			// Everything after $ is ignored.
			pattern: "a$bc",
			want:    []entity{search("a").asLast()},
		},
		{
			pattern: "a?$",
			want:    []entity{repeatEnt(search("a"), 0, 1).asLast()},
		},
		{
			pattern: `^\^x`,
			want:    []entity{escapedEnt('^', modeMatch), match("x")},
		},
		{
			pattern: "a**",
			want:    []entity{repeatEnt(repeatEnt(search("a"), 0, 0), 0, 0)},
		},
		{
			pattern: "a*b",
			opts:    []CompileOption{AllowStar(false)},
			want:    []entity{search("a*b")},
		},
		{
			pattern: "^a$",
			opts:    []CompileOption{AllowAnchors(false)},
			want:    []entity{search("^a$")},
		},
		{
			pattern: `a\.`,
			opts:    []CompileOption{AllowEscaping(false)},
			want:    []entity{search(`a\`), wildcardEnt(modeMatch)},
		},
		{
			pattern: "a.?+",
			opts:    []CompileOption{AllowWildcard(false), AllowQuestion(false), AllowPlus(false)},
			want:    []entity{search("a.?+")},
		},
	}

	for _, test := range tests {
		got := Compile(test.pattern, test.opts...)
		if diff := cmp.Diff(got.entities, test.want); diff != "" {
			t.Errorf("Compile(%q) entities diff (-got +want):\n%s", test.pattern, diff)
		}
	}
}

func TestCompileIsPure(t *testing.T) {
	patterns := []string{"", "abc", "^a.c$", "a*b", `x\+y+z?$`, "^.*$"}
	for _, pattern := range patterns {
		a, b := Compile(pattern), Compile(pattern)
		if diff := cmp.Diff(a.entities, b.entities); diff != "" {
			t.Errorf("Compile(%q) twice diff (-first +second):\n%s", pattern, diff)
		}
	}
}
