package derive

import (
	"fmt"
	"strings"

	"github.com/parasyte/onlyargs"
)

const (
	// 1 hyphen + 1 short char + 1 trailing space.
	shortPad = 3
	// 2 leading spaces + 2 hyphens + 2 trailing spaces.
	longPad = 6
)

// RenderHelp produces the complete help text for a schema. The output is
// deterministic: the same schema and app metadata always render the same
// bytes, and the argument names appearing in it are exactly the schema's
// declared names.
func RenderHelp(app onlyargs.App, s *ArgumentSchema) string {
	var b strings.Builder

	b.WriteString(app.Name)
	b.WriteString(" v")
	b.WriteString(app.Version)
	b.WriteString("\n")
	b.WriteString(app.Description)
	b.WriteString("\n")

	if len(s.Doc) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(s.Doc, "\n"))
		b.WriteString("\n")
	}

	b.WriteString("\nUsage:\n  ")
	b.WriteString(app.Name)
	b.WriteString(" [flags] [options]")
	if s.Positional != nil {
		fmt.Fprintf(&b, " [%s...]", s.Positional.ArgName())
	}

	b.WriteString("\n\nFlags:\n")
	width := maxWidth(s.Flags)
	for _, f := range s.Flags {
		b.WriteString(entryLine(f, width))
	}

	b.WriteString("\nOptions:\n")
	width = maxWidth(s.Options)
	for _, f := range s.Options {
		b.WriteString(entryLine(f, width))
	}

	if p := s.Positional; p != nil {
		fmt.Fprintf(&b, "\n%s:\n  %s", p.ArgName(), strings.Join(p.Doc, "\n  "))
	}
	b.WriteString("\n")

	return b.String()
}

// RenderVersion produces the version text: program name and version on a
// single line.
func RenderVersion(app onlyargs.App) string {
	return app.Name + " v" + app.Version + "\n"
}

// entryLine renders one flag or option line, right-padding the name and
// type columns to the section width so help text lines up. Continuation
// doc lines are indented to the help column.
func entryLine(f *FieldSpec, width int) string {
	name := f.ArgName()
	ty := f.Value.Suffix()
	pad := strings.Repeat(" ", width+longPad)
	help := strings.Join(f.Doc, "\n"+pad)

	w := width - len(name)
	if f.Short != 0 {
		w -= shortPad
		return fmt.Sprintf("  -%c --%s%-*s  %s\n", f.Short, name, w, ty, help)
	}
	return fmt.Sprintf("  --%s%-*s  %s\n", name, w, ty, help)
}

// maxWidth computes the widest name column in a section: short-name
// padding plus long name plus the type suffix. Sections are aligned
// independently of each other.
func maxWidth(specs []*FieldSpec) int {
	width := 0
	for _, f := range specs {
		n := len(f.ArgName()) + len(f.Value.Suffix())
		if f.Short != 0 {
			n += shortPad
		}
		width = max(width, n)
	}
	return width
}
