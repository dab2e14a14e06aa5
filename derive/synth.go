package derive

import (
	"fmt"
	"strings"

	"github.com/parasyte/onlyargs"
)

// templateData is the view handed to the args template. The per-field
// work happens here: every initializer, matcher arm, validation check,
// and constructor entry is precomputed as a plain code string, and the
// template stays a file skeleton.
type templateData struct {
	Package  string
	Type     string
	Help     string
	Version  string
	Inits    []string // parser state variables
	Matchers []string // case arms of the token switch
	Tail     []string // end-of-input validation
	Ctor     []string // struct literal entries
}

// failReturn aborts the generated parse with the error held in err.
const failReturn = "return nil, onlyargs.OutcomeParsed, err"

func buildTemplateData(app onlyargs.App, pkg string, s *ArgumentSchema) *templateData {
	d := &templateData{
		Package: pkg,
		Type:    s.Type,
		Help:    RenderHelp(app, s),
		Version: RenderVersion(app),
	}

	for _, f := range s.Flags {
		if !f.Output {
			// The built-in help/version flags are matched by fixed arms in
			// the template and never reach the output struct.
			continue
		}
		d.Inits = append(d.Inits, fmt.Sprintf("%s := false", varName(f)))
		d.Matchers = append(d.Matchers, fmt.Sprintf("case %s:\n\t\t\t%s = true", caseList(f), varName(f)))
		d.Ctor = append(d.Ctor, fmt.Sprintf("%s: %s,", f.Name, varName(f)))
	}

	for _, f := range s.Options {
		d.Inits = append(d.Inits, optionInit(f))
		d.Matchers = append(d.Matchers, optionMatcher(f))
		if f.Mandatory() {
			d.Tail = append(d.Tail, requiredCheck(f))
		}
		d.Ctor = append(d.Ctor, ctorEntry(f))
	}

	d.Matchers = append(d.Matchers, trailerMatchers(s.Positional)...)

	if p := s.Positional; p != nil {
		d.Inits = append(d.Inits, fmt.Sprintf("var %s []%s", varName(p), elemType(p)))
		if p.Mandatory() {
			d.Tail = append(d.Tail, requiredCheck(p))
		}
		d.Ctor = append(d.Ctor, fmt.Sprintf("%s: %s,", p.Name, varName(p)))
	}

	return d
}

// varName is the parser-local accumulator for a field. The v prefix keeps
// generated locals clear of the loop variables.
func varName(f *FieldSpec) string { return "v" + f.Name }

// caseList renders the case expression matching a field's spellings.
func caseList(f *FieldSpec) string {
	cases := fmt.Sprintf("%q", f.LongName())
	if f.Short != 0 {
		cases += fmt.Sprintf(", %q", f.ShortName())
	}
	return cases
}

// elemType is the Go type of a single value of the field: the scalar type
// with any pointer or slice wrapper stripped, qualified with the runtime
// package where the runtime owns the type.
func elemType(f *FieldSpec) string {
	switch f.Value {
	case ValuePath:
		return "onlyargs.Path"
	case ValueRawText:
		return "onlyargs.RawString"
	}
	return strings.TrimPrefix(strings.TrimPrefix(f.GoType, "*"), "[]")
}

// converts reports whether the field's value conversion can fail. Path
// and raw-string values pass through byte for byte.
func converts(f *FieldSpec) bool {
	switch f.Value {
	case ValuePath, ValueRawText:
		return false
	}
	return true
}

// convExpr renders the runtime conversion call for one raw token.
func convExpr(f *FieldSpec, name, src string) string {
	switch f.Value {
	case ValueInt:
		if f.Unsigned {
			return fmt.Sprintf("onlyargs.ParseUintValue[%s](%q, %s, %d)", elemType(f), name, src, f.Bits)
		}
		return fmt.Sprintf("onlyargs.ParseIntValue[%s](%q, %s, %d)", elemType(f), name, src, f.Bits)
	case ValueFloat:
		return fmt.Sprintf("onlyargs.ParseFloatValue[%s](%q, %s, %d)", elemType(f), name, src, f.Bits)
	}
	return fmt.Sprintf("onlyargs.ParseStringValue(%q, %s)", name, src)
}

// store renders the statement committing a converted value held in expr.
func store(f *FieldSpec, expr string) string {
	v := varName(f)
	switch {
	case f.Kind == KindMulti || f.Kind == KindPositional:
		return fmt.Sprintf("%s = append(%s, %s)", v, v, expr)
	case f.Kind == KindRequired && f.Default != "":
		return fmt.Sprintf("%s = %s", v, expr)
	}
	return fmt.Sprintf("%s = &%s", v, expr)
}

// optionInit renders the initial parser state for a valued option:
// seeded with the default literal when one exists, otherwise nil/empty.
func optionInit(f *FieldSpec) string {
	switch {
	case f.Default != "":
		return fmt.Sprintf("%s := %s(%s)", varName(f), elemType(f), f.Default)
	case f.Kind == KindMulti:
		return fmt.Sprintf("var %s []%s", varName(f), elemType(f))
	}
	return fmt.Sprintf("var %s *%s", varName(f), elemType(f))
}

// optionMatcher renders the case arm for a valued option: consume exactly
// the next token, convert it, and commit the result.
func optionMatcher(f *FieldSpec) string {
	var b strings.Builder
	fmt.Fprintf(&b, "case %s:\n", caseList(f))
	fmt.Fprintf(&b, "\t\t\tif i+1 >= len(argv) {\n")
	fmt.Fprintf(&b, "\t\t\t\treturn nil, onlyargs.OutcomeParsed, onlyargs.NewMissingValue(%q)\n", f.LongName())
	fmt.Fprintf(&b, "\t\t\t}\n")
	fmt.Fprintf(&b, "\t\t\ti++\n")

	if converts(f) {
		fmt.Fprintf(&b, "\t\t\tv, err := %s\n", convExpr(f, f.LongName(), "argv[i]"))
		fmt.Fprintf(&b, "\t\t\tif err != nil {\n\t\t\t\t%s\n\t\t\t}\n", failReturn)
		fmt.Fprintf(&b, "\t\t\t%s", store(f, "v"))
		return b.String()
	}

	raw := fmt.Sprintf("%s(argv[i])", elemType(f))
	if f.Kind == KindMulti || (f.Kind == KindRequired && f.Default != "") {
		fmt.Fprintf(&b, "\t\t\t%s", store(f, raw))
		return b.String()
	}
	fmt.Fprintf(&b, "\t\t\tv := %s\n", raw)
	fmt.Fprintf(&b, "\t\t\t%s", store(f, "v"))
	return b.String()
}

// trailerMatchers renders the two arms closing the token switch: the "--"
// sentinel and the unmatched-token fallthrough. Their behavior depends
// entirely on whether a positional sink exists.
func trailerMatchers(p *FieldSpec) []string {
	if p == nil {
		return []string{
			"case \"--\":\n\t\t\ti = len(argv)",
			"default:\n\t\t\treturn nil, onlyargs.OutcomeParsed, onlyargs.NewUnknown(arg)",
		}
	}

	var batch, fall strings.Builder
	batch.WriteString("case \"--\":\n")
	batch.WriteString("\t\t\tfor _, raw := range argv[i+1:] {\n")
	fall.WriteString("default:\n")

	if converts(p) {
		fmt.Fprintf(&batch, "\t\t\t\tv, err := %s\n", convExpr(p, p.LongName(), "raw"))
		fmt.Fprintf(&batch, "\t\t\t\tif err != nil {\n\t\t\t\t\t%s\n\t\t\t\t}\n", failReturn)
		fmt.Fprintf(&batch, "\t\t\t\t%s\n", store(p, "v"))

		fmt.Fprintf(&fall, "\t\t\tv, err := %s\n", convExpr(p, p.LongName(), "arg"))
		fmt.Fprintf(&fall, "\t\t\tif err != nil {\n\t\t\t\t%s\n\t\t\t}\n", failReturn)
		fmt.Fprintf(&fall, "\t\t\t%s", store(p, "v"))
	} else {
		fmt.Fprintf(&batch, "\t\t\t\t%s\n", store(p, fmt.Sprintf("%s(raw)", elemType(p))))
		fmt.Fprintf(&fall, "\t\t\t%s", store(p, fmt.Sprintf("%s(arg)", elemType(p))))
	}
	batch.WriteString("\t\t\t}\n")
	batch.WriteString("\t\t\ti = len(argv)")

	return []string{batch.String(), fall.String()}
}

// requiredCheck renders the end-of-input validation for a mandatory field.
func requiredCheck(f *FieldSpec) string {
	cond := fmt.Sprintf("%s == nil", varName(f))
	if f.Kind == KindMulti || f.Kind == KindPositional {
		cond = fmt.Sprintf("len(%s) == 0", varName(f))
	}
	return fmt.Sprintf("if %s {\n\t\treturn nil, onlyargs.OutcomeParsed, onlyargs.NewMissingRequired(%q)\n\t}", cond, f.LongName())
}

// ctorEntry renders the struct literal entry handing a parser local to
// the output struct.
func ctorEntry(f *FieldSpec) string {
	switch {
	case f.Kind == KindRequired && f.Default == "":
		return fmt.Sprintf("%s: *%s,", f.Name, varName(f))
	}
	return fmt.Sprintf("%s: %s,", f.Name, varName(f))
}
