package derive

import (
	"fmt"
	"strings"
)

// Classification is the result of mapping a type spelling to its argument
// kind, value conversion, and numeric width.
type Classification struct {
	Kind     ArgKind
	Value    ValueKind
	Bits     int // 0 means platform-sized
	Unsigned bool
}

type scalar struct {
	value    ValueKind
	bits     int
	unsigned bool
}

// Recognized primitive type spellings. Classification happens on type
// expressions as written in source, with no type checker behind it, so the
// qualified and unqualified spellings of the runtime types both appear.
var scalars = map[string]scalar{
	"int":   {value: ValueInt},
	"int8":  {value: ValueInt, bits: 8},
	"int16": {value: ValueInt, bits: 16},
	"int32": {value: ValueInt, bits: 32},
	"int64": {value: ValueInt, bits: 64},

	"uint":   {value: ValueInt, unsigned: true},
	"uint8":  {value: ValueInt, bits: 8, unsigned: true},
	"uint16": {value: ValueInt, bits: 16, unsigned: true},
	"uint32": {value: ValueInt, bits: 32, unsigned: true},
	"uint64": {value: ValueInt, bits: 64, unsigned: true},

	"float32": {value: ValueFloat, bits: 32},
	"float64": {value: ValueFloat, bits: 64},

	"string": {value: ValueText},

	"onlyargs.Path":      {value: ValuePath},
	"Path":               {value: ValuePath},
	"onlyargs.RawString": {value: ValueRawText},
	"RawString":          {value: ValueRawText},
}

const expectedTypes = "bool, string, Path, RawString, integer, or float"

// Classify maps a field's type spelling to its argument classification.
// Exactly one wrapper is recognized: a pointer makes a scalar optional and
// a slice makes it multi-value. Any spelling outside the allow-list is an
// error; a recognized wrapper around an unrecognized inner type never
// degrades to a partial match.
func Classify(goType string) (Classification, error) {
	if goType == "bool" {
		return Classification{Kind: KindFlag, Value: ValueNone}, nil
	}

	switch {
	case strings.HasPrefix(goType, "*"):
		sc, ok := scalars[goType[1:]]
		if !ok {
			return Classification{}, fmt.Errorf("unsupported optional type %s: expected a pointer to %s", goType, expectedTypes)
		}
		return Classification{Kind: KindOptional, Value: sc.value, Bits: sc.bits, Unsigned: sc.unsigned}, nil

	case strings.HasPrefix(goType, "[]"):
		sc, ok := scalars[goType[2:]]
		if !ok {
			return Classification{}, fmt.Errorf("unsupported slice type %s: expected a slice of %s", goType, expectedTypes)
		}
		return Classification{Kind: KindMulti, Value: sc.value, Bits: sc.bits, Unsigned: sc.unsigned}, nil
	}

	sc, ok := scalars[goType]
	if !ok {
		return Classification{}, fmt.Errorf("unsupported type %s: expected %s", goType, expectedTypes)
	}
	return Classification{Kind: KindRequired, Value: sc.value, Bits: sc.bits, Unsigned: sc.unsigned}, nil
}
