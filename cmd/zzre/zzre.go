// The zzre command matches patterns against texts. Each input line has the
// form pattern|text, and the result is printed as true or false.
//
// Example:
//
//	$ echo 'a*b|aaab' | zzre
//	true
//	$ zzre -e '^a.c$|abcd'
//	false
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DrJosh9000/zzre"
)

var (
	expr  = flag.String("e", "", "match this pattern|text line instead of reading stdin")
	steps = flag.Int("steps", 0, "maximum steps per match (0 = unbounded)")
	trace = flag.Bool("trace", false, "write matcher trace logs to stderr")
)

func main() {
	flag.Parse()

	opts := []zzre.MatchOption{zzre.WithStepLimit(*steps)}
	if *trace {
		opts = append(opts, zzre.WithTraceLogs(os.Stderr))
	}

	in := io.Reader(os.Stdin)
	if *expr != "" {
		in = strings.NewReader(*expr)
	}

	if err := run(context.Background(), in, os.Stdout, opts...); err != nil {
		fmt.Fprintf(os.Stderr, "zzre: %v\n", err)
		os.Exit(1)
	}
}

// run matches each line of in, writing one result per line to out.
func run(ctx context.Context, in io.Reader, out io.Writer, opts ...zzre.MatchOption) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		ok, err := matchLine(ctx, sc.Text(), opts...)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, ok); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func matchLine(ctx context.Context, line string, opts ...zzre.MatchOption) (bool, error) {
	pattern, text, found := strings.Cut(line, "|")
	if !found {
		return false, fmt.Errorf("line %q is missing the | between pattern and text", line)
	}
	ok, err := zzre.Compile(pattern).MatchContext(ctx, text, opts...)
	if err != nil {
		return false, fmt.Errorf("matching %q against %q: %w", pattern, text, err)
	}
	return ok, nil
}
