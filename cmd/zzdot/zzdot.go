// The zzdot command writes the compiled form of a pattern as a GraphViz
// digraph.
//
// Example:
//
//	$ zzdot '^a.c$' | dot -Tsvg > pattern.svg
package main

import (
	"fmt"
	"os"

	"github.com/DrJosh9000/zzre"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s pattern\n", os.Args[0])
		os.Exit(1)
	}

	p := zzre.Compile(os.Args[1])

	if err := p.WriteDot(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't write Dot output: %v\n", err)
		os.Exit(1)
	}
}
