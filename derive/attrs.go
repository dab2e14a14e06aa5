package derive

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// directivePrefix introduces machine-readable metadata inside doc
// comments, following the Go directive comment convention. Every other
// doc line is help text.
const directivePrefix = "onlyargs:"

// fieldAttrs is the metadata extracted from one field's doc comment.
type fieldAttrs struct {
	doc        []string
	deflt      string // default literal as written
	long       bool
	short      rune
	required   bool
	positional bool
}

// parseFieldAttrs walks a field's comment lines once, splitting them into
// help text and directives. Lines are raw comment text, without the
// leading comment markers.
func parseFieldAttrs(lines []string) (*fieldAttrs, error) {
	a := &fieldAttrs{}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, directivePrefix) {
			a.doc = append(a.doc, trimDocLine(line))
			continue
		}

		name, arg, _ := strings.Cut(strings.TrimPrefix(trimmed, directivePrefix), " ")
		arg = strings.TrimSpace(arg)
		switch name {
		case "long":
			if arg != "" {
				return nil, fmt.Errorf("onlyargs:long takes no argument, got %q", arg)
			}
			a.long = true
		case "required":
			if arg != "" {
				return nil, fmt.Errorf("onlyargs:required takes no argument, got %q", arg)
			}
			a.required = true
		case "positional":
			if arg != "" {
				return nil, fmt.Errorf("onlyargs:positional takes no argument, got %q", arg)
			}
			a.positional = true
		case "short":
			r, err := parseShortLiteral(arg)
			if err != nil {
				return nil, err
			}
			a.short = r
		case "default":
			lit, err := parseDefaultLiteral(arg)
			if err != nil {
				return nil, err
			}
			a.deflt = lit
		default:
			return nil, fmt.Errorf("unknown directive onlyargs:%s", name)
		}
	}
	return a, nil
}

// trimDocLine strips the single space that separates a comment marker
// from its text, plus trailing whitespace. Deeper indentation survives so
// doc comments can carry intentional formatting.
func trimDocLine(line string) string {
	line = strings.TrimPrefix(line, " ")
	return strings.TrimRight(line, " \t")
}

// parseShortLiteral accepts exactly one ASCII letter, optionally quoted
// as a character literal ('c').
func parseShortLiteral(arg string) (rune, error) {
	if len(arg) >= 3 && strings.HasPrefix(arg, "'") && strings.HasSuffix(arg, "'") {
		arg = arg[1 : len(arg)-1]
	}
	if len(arg) != 1 {
		return 0, fmt.Errorf("onlyargs:short requires a single character, got %q", arg)
	}
	r := rune(arg[0])
	if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
		return 0, fmt.Errorf("onlyargs:short requires an ASCII letter, got %q", arg)
	}
	return r, nil
}

// parseDefaultLiteral accepts a single literal token: a quoted string, a
// number, or a bare true/false identifier. The literal is kept as written
// and spliced verbatim into the generated initializer.
func parseDefaultLiteral(arg string) (string, error) {
	if arg == "" {
		return "", errors.New("onlyargs:default requires a literal value")
	}
	if arg == "true" || arg == "false" {
		return arg, nil
	}
	if strings.HasPrefix(arg, `"`) {
		if _, err := strconv.Unquote(arg); err != nil {
			return "", fmt.Errorf("onlyargs:default: invalid string literal %s", arg)
		}
		return arg, nil
	}
	if len(strings.Fields(arg)) != 1 {
		return "", fmt.Errorf("onlyargs:default takes a single literal value, got %q", arg)
	}
	if _, err := strconv.ParseFloat(arg, 64); err != nil {
		return "", fmt.Errorf("onlyargs:default: invalid literal %q", arg)
	}
	return arg, nil
}
