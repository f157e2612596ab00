package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gregLibert/bit-tools/pkg/check"
	"github.com/gregLibert/bit-tools/pkg/suite"
)

// Environment switches for the pass/fail colouring.
const (
	colorEnvVar   = "BITS_COLOR"
	noColorEnvVar = "NO_COLOR"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Getenv))
}

// run executes the self-test and returns the process exit status:
// 0 once every group ran (whatever the verdicts), 1 on a usage error or an
// abort requested with -e.
func run(args []string, stdout io.Writer, getenv func(string) string) int {
	prog := "bitcheck"
	if len(args) > 0 {
		prog = args[0]
		args = args[1:]
	}

	opts, err := parseArgs(prog, args, stdout)
	if err != nil {
		return 1
	}
	opts.Color = colorEnabled(getenv)

	runner := check.NewRunner(stdout, opts)
	sum, err := runner.Run(suite.All())
	if err != nil {
		if errors.Is(err, check.ErrAborted) {
			if expr, ok := abortedAt(sum); ok {
				log.Printf("Aborted on %s", expr)
			}
		} else {
			log.Printf("Error: %v", err)
		}
		return 1
	}
	return 0
}

// abortedAt returns the call that stopped an exit-on-fail run: the failing
// last result of the aborted group's trace.
func abortedAt(sum check.Summary) (string, bool) {
	for _, trace := range sum.Traces {
		if last := trace.Last(); last != nil && !last.Passed {
			return last.Assertion.Expr, true
		}
	}
	return "", false
}

// parseArgs reads -h, -v and -e. Any other flag, a "--" terminator, a
// "-flag=value" form or a positional argument prints usage and returns an error.
func parseArgs(prog string, args []string, stdout io.Writer) (check.Options, error) {
	var opts check.Options
	var help bool

	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&help, "h", false, "print help info and exit")
	fs.BoolVar(&opts.Verbose, "v", false, "print info about each failing test")
	fs.BoolVar(&opts.ExitOnFail, "e", false, "exit after failed test")

	for _, arg := range args {
		if arg == "--" {
			fmt.Fprintln(stdout, "bad arguments")
			usage(stdout, prog)
			return opts, errors.New("unexpected argument: --")
		}
		// Only bare short options exist; "-v=true" and "--v" are not options.
		if strings.HasPrefix(arg, "-") && (strings.Contains(arg, "=") || strings.HasPrefix(arg, "--")) {
			usage(stdout, prog)
			return opts, fmt.Errorf("invalid option: %s", arg)
		}
	}

	if err := fs.Parse(splitClusters(args)); err != nil {
		usage(stdout, prog)
		return opts, err
	}
	if help {
		usage(stdout, prog)
		return opts, flag.ErrHelp
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(stdout, "bad arguments")
		usage(stdout, prog)
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return opts, nil
}

// splitClusters expands grouped short options ("-ve") into separate flags
// ("-v", "-e"). Groups containing anything other than h, v or e are left for
// the flag package to reject.
func splitClusters(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if len(arg) > 2 && arg[0] == '-' && arg[1] != '-' && strings.Trim(arg[1:], "hve") == "" {
			for _, r := range arg[1:] {
				out = append(out, "-"+string(r))
			}
			continue
		}
		out = append(out, arg)
	}
	return out
}

func usage(w io.Writer, prog string) {
	fmt.Fprintf(w, "usage: %s [-h] [-v] [-e]\n", prog)
	fmt.Fprintln(w, "       -h print help info and exit")
	fmt.Fprintln(w, "       -v print info about each failing test")
	fmt.Fprintln(w, "       -e exit after failed test")
}

// colorEnabled decides whether verdicts get ANSI colours. BITS_COLOR, when it
// parses as a boolean, wins; otherwise any NO_COLOR value turns colour off.
func colorEnabled(getenv func(string) string) bool {
	if value := strings.TrimSpace(getenv(colorEnvVar)); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
		log.Printf("Warning: ignoring %s=%q: %v", colorEnvVar, value, err)
	}
	return getenv(noColorEnvVar) == ""
}
