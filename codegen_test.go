package zzre

import (
	"bytes"
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

func TestWriteGo(t *testing.T) {
	var buf bytes.Buffer
	p := Compile("^hel+o", AllowStar(false))
	if err := p.WriteGo(&buf, "greet", "IsGreeting"); err != nil {
		t.Fatalf("(%q).WriteGo(&buf, greet, IsGreeting) = %v", p, err)
	}
	src := buf.String()

	if _, err := parser.ParseFile(token.NewFileSet(), "greeting.go", src, parser.ParseComments); err != nil {
		t.Fatalf("generated code doesn't parse: %v\n%s", err, src)
	}

	for _, want := range []string{
		"// Code generated by zzregen. DO NOT EDIT.",
		"package greet",
		`"github.com/DrJosh9000/zzre"`,
		`zzre.Compile("^hel+o", zzre.AllowStar(false))`,
		"func IsGreeting(text string) bool",
		"return patternIsGreeting.Match(text)",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("generated code missing %q:\n%s", want, src)
		}
	}
}

func TestWriteGo_InvalidNames(t *testing.T) {
	p := Compile("a")
	tests := []struct{ pkg, name string }{
		{"", "Match"},
		{"main", "not valid"},
		{"1pkg", "Match"},
	}
	for _, test := range tests {
		var buf bytes.Buffer
		if err := p.WriteGo(&buf, test.pkg, test.name); err == nil {
			t.Errorf("(%q).WriteGo(&buf, %q, %q) = nil, want error", p, test.pkg, test.name)
		}
	}
}
