package zzre

import (
	"fmt"
	"go/token"
	"io"

	"github.com/dave/jennifer/jen"
)

const importPath = "github.com/DrJosh9000/zzre"

// WriteGo writes a Go source file for package pkg that declares
//
//	func name(text string) bool
//
// reporting whether text matches the pattern. The pattern is compiled once,
// when the generated package is initialised, with the same compile options
// as p.
func (p *Pattern) WriteGo(w io.Writer, pkg, name string) error {
	if !token.IsIdentifier(pkg) {
		return fmt.Errorf("invalid package name %q", pkg)
	}
	if !token.IsIdentifier(name) {
		return fmt.Errorf("invalid function name %q", name)
	}

	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by zzregen. DO NOT EDIT.")

	varName := "pattern" + name
	f.Commentf("%s is %q, which compiles to:", varName, p.source)
	for i, e := range p.entities {
		f.Commentf("  %d: %v (%v)", i, e, e.Mode)
	}
	f.Var().Id(varName).Op("=").Qual(importPath, "Compile").Call(p.optionArgs()...)

	f.Commentf("%s reports whether text matches %q.", name, p.source)
	f.Func().Id(name).Params(jen.Id("text").String()).Bool().Block(
		jen.Return(jen.Id(varName).Dot("Match").Call(jen.Id("text"))),
	)

	if err := f.Render(w); err != nil {
		return fmt.Errorf("rendering generated code: %w", err)
	}
	return nil
}

// optionArgs returns the arguments for a Compile call reproducing p.
func (p *Pattern) optionArgs() []jen.Code {
	args := []jen.Code{jen.Lit(p.source)}
	toggles := []struct {
		enabled bool
		option  string
	}{
		{p.cfg.allowEscaping, "AllowEscaping"},
		{p.cfg.allowWildcard, "AllowWildcard"},
		{p.cfg.allowAnchors, "AllowAnchors"},
		{p.cfg.allowQuestion, "AllowQuestion"},
		{p.cfg.allowStar, "AllowStar"},
		{p.cfg.allowPlus, "AllowPlus"},
	}
	for _, d := range toggles {
		if d.enabled {
			continue
		}
		args = append(args, jen.Qual(importPath, d.option).Call(jen.False()))
	}
	return args
}
