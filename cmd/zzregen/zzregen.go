// The zzregen command generates a Go source file containing a matcher
// function for a pattern.
//
// Example:
//
//	$ zzregen -pkg greet -name IsGreeting -o greeting.go '^hel+o'
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/DrJosh9000/zzre"
)

var (
	pkg    = flag.String("pkg", "main", "package name for the generated file")
	name   = flag.String("name", "Match", "name of the generated function")
	output = flag.String("o", "", "output file (default stdout)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] pattern\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := generate(flag.Arg(0), *pkg, *name, *output); err != nil {
		fmt.Fprintf(os.Stderr, "zzregen: %v\n", err)
		os.Exit(1)
	}
}

// generate writes the generated code for pattern to output, or to stdout if
// output is empty.
func generate(pattern, pkg, name, output string) error {
	p := zzre.Compile(pattern)

	if output == "" {
		return p.WriteGo(os.Stdout, pkg, name)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := p.WriteGo(f, pkg, name); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
