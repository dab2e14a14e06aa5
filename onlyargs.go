// Package onlyargs is the runtime side of an obsessively small
// command-line argument parsing library. It holds the error type, the
// value conversion helpers, and the entry points shared by every parser
// that the onlyargsgen tool generates.
//
// The package contains no parsing logic of its own: a generated parser is
// a plain function over a token slice, and onlyargs only supplies what
// those functions have in common.
package onlyargs

import (
	"fmt"
	"os"
)

// App holds the process-wide identity constants baked into generated help
// and version text. The values are fixed at generation time and treated as
// opaque by everything else.
type App struct {
	Name        string
	Version     string
	Description string
}

// Outcome reports how a parse attempt concluded.
type Outcome int

const (
	// OutcomeParsed means parsing ran to completion; inspect the error to
	// tell success from failure.
	OutcomeParsed Outcome = iota

	// OutcomeHelp means a --help or -h token was seen. The parser stops
	// immediately and the caller is expected to print the help text and
	// exit with status 0.
	OutcomeHelp

	// OutcomeVersion means a --version or -V token was seen, with the same
	// contract as OutcomeHelp.
	OutcomeVersion
)

// ParseFunc is the contract implemented by generated parsers: consume a
// finite token slice and produce either a populated config, a help/version
// outcome, or a *CliError.
type ParseFunc[T any] func(argv []string) (*T, Outcome, error)

// Parse constructs T from the process argument list, excluding the
// program's own invocation path.
func Parse[T any](parse ParseFunc[T]) (*T, Outcome, error) {
	return parse(os.Args[1:])
}

// exit is swapped out by tests.
var exit = os.Exit

// Run is like Parse but resolves the help and version outcomes itself:
// the corresponding text is written to standard error and the process
// exits with status 0. Parse errors are returned for the caller to report.
func Run[T any](parse ParseFunc[T], help, version string) (*T, error) {
	cfg, outcome, err := parse(os.Args[1:])
	switch outcome {
	case OutcomeHelp:
		fmt.Fprintln(os.Stderr, help)
		exit(0)
	case OutcomeVersion:
		fmt.Fprintln(os.Stderr, version)
		exit(0)
	}
	return cfg, err
}
