package onlyargs

import "fmt"

// ErrorKind identifies the failure reported by a CliError.
type ErrorKind int

const (
	// MissingValue reports an argument that requires a value when none followed it.
	MissingValue ErrorKind = iota

	// MissingRequired reports a required argument that was never provided.
	MissingRequired

	// ParseBoolError reports a value that failed to parse as a bool.
	ParseBoolError

	// ParseCharError reports a value that failed to parse as a single character.
	ParseCharError

	// ParseFloatError reports a value that failed to parse as a floating-point number.
	ParseFloatError

	// ParseIntError reports a value that failed to parse as an integer.
	ParseIntError

	// ParseStrError reports a value that was not valid UTF-8 where text was required.
	ParseStrError

	// Unknown reports a token that matched no declared argument.
	Unknown
)

// CliError is the failure type returned by argument parsers. It carries the
// long name of the offending argument and, where relevant, the raw input
// token and the underlying conversion failure.
//
// Generated parsers only produce the MissingValue, MissingRequired,
// ParseFloatError, ParseIntError, ParseStrError, and Unknown kinds. The
// ParseBoolError and ParseCharError kinds exist for hand-written parsers
// that implement the same contract.
type CliError struct {
	Kind  ErrorKind
	Arg   string // long argument name, e.g. "--width"
	Token string // offending raw token
	Err   error  // underlying conversion failure
}

func (e *CliError) Error() string {
	switch e.Kind {
	case MissingValue:
		return fmt.Sprintf("Missing value for argument `%s`", e.Arg)
	case MissingRequired:
		return fmt.Sprintf("Missing required argument `%s`", e.Arg)
	case ParseBoolError:
		return fmt.Sprintf("Bool parsing error for argument `%s`: value=%q", e.Arg, e.Token)
	case ParseCharError:
		return fmt.Sprintf("Char parsing error for argument `%s`: value=%q", e.Arg, e.Token)
	case ParseFloatError:
		return fmt.Sprintf("Float parsing error for argument `%s`: value=%q", e.Arg, e.Token)
	case ParseIntError:
		return fmt.Sprintf("Int parsing error for argument `%s`: value=%q", e.Arg, e.Token)
	case ParseStrError:
		return fmt.Sprintf("String parsing error for argument `%s`: value=%q", e.Arg, e.Token)
	case Unknown:
		return fmt.Sprintf("Unknown argument: %q", e.Token)
	}
	return fmt.Sprintf("argument error for `%s`", e.Arg)
}

func (e *CliError) Unwrap() error { return e.Err }

// NewMissingValue reports that arg consumed no following token.
func NewMissingValue(arg string) *CliError {
	return &CliError{Kind: MissingValue, Arg: arg}
}

// NewMissingRequired reports that arg ended the parse unset or empty.
func NewMissingRequired(arg string) *CliError {
	return &CliError{Kind: MissingRequired, Arg: arg}
}

// NewParseBoolError wraps a failed bool conversion of token for arg.
func NewParseBoolError(arg, token string, err error) *CliError {
	return &CliError{Kind: ParseBoolError, Arg: arg, Token: token, Err: err}
}

// NewParseCharError wraps a failed character conversion of token for arg.
func NewParseCharError(arg, token string, err error) *CliError {
	return &CliError{Kind: ParseCharError, Arg: arg, Token: token, Err: err}
}

// NewParseFloatError wraps a failed float conversion of token for arg.
func NewParseFloatError(arg, token string, err error) *CliError {
	return &CliError{Kind: ParseFloatError, Arg: arg, Token: token, Err: err}
}

// NewParseIntError wraps a failed integer conversion of token for arg.
func NewParseIntError(arg, token string, err error) *CliError {
	return &CliError{Kind: ParseIntError, Arg: arg, Token: token, Err: err}
}

// NewParseStrError reports that token was not valid UTF-8 text.
func NewParseStrError(arg, token string) *CliError {
	return &CliError{Kind: ParseStrError, Arg: arg, Token: token}
}

// NewUnknown reports a token that matched nothing in the schema.
func NewUnknown(token string) *CliError {
	return &CliError{Kind: Unknown, Token: token}
}
