/*
Command trisolve solves a triangle from the command line.

Usage:

	trisolve [flags] angleA angleB angleC sideA sideB sideC

Unknown values are given as '?'. Angles are in degrees. Example:

	trisolve -solution=second 30 ? ? 4 7 ?

Flags:

	-solution none|first|second   solution for the ambiguous SSA case
	-trace error|info|debug       trace level, default from $TRISOLVE_TRACE
	-version                      print the version and exit

Exit code 1 signals malformed arguments, exit code 2 a triangle which
could not be solved uniquely.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/trigon/triangle"
)

const version = "v0.1.0"

var errBadArgs = errors.New("bad arguments")

// tracer writes to trace with key 'trigon'
func tracer() tracing.Trace {
	return tracing.Select("trigon")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("trisolve", flag.ContinueOnError)
	flags.SetOutput(stderr)
	solution := flags.String("solution", "none", "solution for the ambiguous SSA case: none, first or second")
	level := flags.String("trace", envOr("TRISOLVE_TRACE", "error"), "trace level: error, info or debug")
	showVersion := flags.Bool("version", false, "print the version and exit")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if *showVersion {
		fmt.Fprintf(stdout, "trisolve %s\n", version)
		return 0
	}
	if err := setTraceLevel(*level); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	choice, err := parseSolution(*solution)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	t, err := parseTriangle(flags.Args())
	if err != nil {
		fmt.Fprintln(stderr, err)
		flags.Usage()
		return 1
	}
	result := triangle.Finalize(t, choice)
	fmt.Fprint(stdout, format(result))
	if result.Code != triangle.Success {
		return 2
	}
	return 0
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func setTraceLevel(level string) error {
	switch strings.ToLower(level) {
	case "error":
		tracer().SetTraceLevel(tracing.LevelError)
	case "info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	default:
		return fmt.Errorf("%w: unknown trace level %q", errBadArgs, level)
	}
	return nil
}

func parseSolution(s string) (triangle.AmbiguousCaseSolution, error) {
	switch strings.ToLower(s) {
	case "none", "0":
		return triangle.NoSolution, nil
	case "first", "1":
		return triangle.FirstSolution, nil
	case "second", "2":
		return triangle.SecondSolution, nil
	}
	return triangle.NoSolution, fmt.Errorf("%w: unknown solution %q", errBadArgs, s)
}

// parseTriangle reads angles A, B, C followed by sides a, b, c.
func parseTriangle(args []string) (triangle.Triangle, error) {
	t := triangle.Null()
	if len(args) != 6 {
		return t, fmt.Errorf("%w: expected 6 values, got %d", errBadArgs, len(args))
	}
	for i, arg := range args {
		if arg == "?" {
			continue
		}
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return t, fmt.Errorf("%w: value #%d: %v", errBadArgs, i+1, err)
		}
		if v := triangle.Vertex(i % 3); i < 3 {
			t = t.WithAngle(v, x)
		} else {
			t = t.WithSide(v, x)
		}
	}
	return t, nil
}

func format(result triangle.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)\n", result.Code, result.Case)
	value := func(x float64, ok bool) string {
		if !ok {
			return "?"
		}
		return strconv.FormatFloat(x, 'f', 6, 64)
	}
	for v := triangle.A; v <= triangle.C; v++ {
		fmt.Fprintf(&sb, "  angle%s: %s\n", v, value(result.Triangle.Angle(v)))
	}
	for v := triangle.A; v <= triangle.C; v++ {
		fmt.Fprintf(&sb, "  side%s:  %s\n", v, value(result.Triangle.Side(v)))
	}
	return sb.String()
}
