// Package derive turns annotated Go struct definitions into generated
// command-line parsers for the onlyargs runtime.
//
// The pipeline is: scan source files for structs marked //onlyargs:derive,
// classify each field by its type spelling, interpret the field's comment
// directives, assemble an immutable ArgumentSchema, and render the parser
// and its help text through an embedded template.
package derive

import "go/token"

// ArgKind classifies how a field participates in parsing.
type ArgKind int

const (
	// KindFlag is a boolean argument that takes no value.
	KindFlag ArgKind = iota

	// KindRequired is a scalar option that must be provided unless it
	// carries a default literal.
	KindRequired

	// KindOptional is a scalar option that may be omitted; the struct field
	// is a pointer, nil when unset.
	KindOptional

	// KindMulti is a repeatable option accumulating into a slice.
	KindMulti

	// KindPositional is the single sink collecting unmatched tokens.
	KindPositional
)

// ValueKind describes how an option's value token is converted and which
// type column is shown for it in help text.
type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueInt
	ValueFloat
	ValueText
	ValueRawText
	ValuePath
)

// Suffix returns the help-column type label, including its leading space.
// Flags have no label.
func (v ValueKind) Suffix() string {
	switch v {
	case ValueInt:
		return " INTEGER"
	case ValueFloat:
		return " FLOAT"
	case ValueText, ValueRawText:
		return " STRING"
	case ValuePath:
		return " PATH"
	}
	return ""
}

// FieldSpec describes one argument derived from a struct field.
type FieldSpec struct {
	Name     string // Go field identifier
	GoType   string // field type as written, e.g. "[]int32"
	Kind     ArgKind
	Value    ValueKind
	Short    rune     // 0 when no short name is assigned
	Doc      []string // help lines, already trimmed
	Default  string   // default literal as written, empty when absent
	Required bool     // required marker on multi-value and positional fields
	Output   bool     // false for the built-in help/version flags
	Bits     int      // numeric bit size; 0 means platform-sized
	Unsigned bool
	Pos      token.Position
}

// ArgName is the long argument spelling without the leading hyphens:
// the field identifier in kebab-case, lowercased.
func (f *FieldSpec) ArgName() string { return kebabCase(f.Name) }

// LongName is the full --long spelling.
func (f *FieldSpec) LongName() string { return "--" + f.ArgName() }

// ShortName is the -c spelling, or "" when no short name is assigned.
func (f *FieldSpec) ShortName() string {
	if f.Short == 0 {
		return ""
	}
	return "-" + string(f.Short)
}

// Mandatory reports whether end-of-input validation rejects this field
// when it was never set: required scalars without a default, and
// multi-value or positional fields carrying the required marker.
func (f *FieldSpec) Mandatory() bool {
	switch f.Kind {
	case KindRequired:
		return f.Default == ""
	case KindMulti, KindPositional:
		return f.Required
	}
	return false
}

// ArgumentSchema is the classified form of one marked struct: the built-in
// and declared flags in order, the valued options in order, and at most
// one positional sink. Built once by BuildSchema and never mutated after.
type ArgumentSchema struct {
	Type       string   // struct type name
	Doc        []string // struct-level doc lines
	Flags      []*FieldSpec
	Options    []*FieldSpec
	Positional *FieldSpec
}
