package derive

import "fmt"

// builtinFlags are prepended to every schema. They are matched before any
// declared argument and never populate the output struct: the generated
// parser reports them through the parse outcome instead.
func builtinFlags() []*FieldSpec {
	return []*FieldSpec{
		{Name: "help", Short: 'h', Kind: KindFlag, Doc: []string{"Show this help message."}},
		{Name: "version", Short: 'V', Kind: KindFlag, Doc: []string{"Show the application version."}},
	}
}

// BuildSchema derives the argument schema for one marked struct. Fields
// are processed in declaration order; the built-in help and version flags
// claim their names first. Any directive/type conflict, duplicate name,
// or second positional sink aborts with a SchemaError naming the field.
func BuildSchema(st *StructDecl) (*ArgumentSchema, error) {
	s := &ArgumentSchema{
		Type:  st.Name,
		Doc:   st.Doc,
		Flags: builtinFlags(),
	}

	shorts := make(map[rune]*FieldSpec)
	longs := make(map[string]*FieldSpec)
	for _, f := range s.Flags {
		shorts[f.Short] = f
		longs[f.ArgName()] = f
	}

	for _, fd := range st.Fields {
		attrs, err := parseFieldAttrs(fd.Doc)
		if err != nil {
			return nil, schemaErrWrap(fd, err)
		}
		cls, err := Classify(fd.Type)
		if err != nil {
			return nil, schemaErrWrap(fd, err)
		}

		spec := &FieldSpec{
			Name:     fd.Name,
			GoType:   fd.Type,
			Kind:     cls.Kind,
			Value:    cls.Value,
			Bits:     cls.Bits,
			Unsigned: cls.Unsigned,
			Doc:      attrs.doc,
			Output:   true,
			Pos:      fd.Pos,
		}

		if attrs.positional {
			if spec.Kind != KindMulti {
				return nil, schemaErr(fd, "onlyargs:positional can only be used on slice fields")
			}
			spec.Kind = KindPositional
		}
		if attrs.required {
			if spec.Kind != KindMulti && spec.Kind != KindPositional {
				return nil, schemaErr(fd, "onlyargs:required can only be used on slice fields")
			}
			spec.Required = true
		}
		if attrs.deflt != "" {
			if spec.Kind != KindRequired {
				return nil, schemaErr(fd, "onlyargs:default can only be used on plain scalar fields")
			}
			spec.Default = attrs.deflt
		}

		// The positional sink is never matched by name, so it takes part
		// in neither short inference nor name deduplication.
		if spec.Kind != KindPositional {
			if !attrs.long {
				if attrs.short != 0 {
					spec.Short = attrs.short
				} else {
					spec.Short = inferShort(fd.Name)
				}
			}

			if other, ok := longs[spec.ArgName()]; ok {
				if !other.Output {
					return nil, schemaErr(fd, "argument name %s is reserved", spec.LongName())
				}
				return nil, schemaErr(fd, "argument name %s is already used by field %s", spec.LongName(), other.Name)
			}
			longs[spec.ArgName()] = spec

			if spec.Short != 0 {
				if other, ok := shorts[spec.Short]; ok {
					return nil, schemaErr(fd, "only one short arg is allowed: `-%c` is already used by field %s", spec.Short, other.Name)
				}
				shorts[spec.Short] = spec
			}
		}

		switch spec.Kind {
		case KindFlag:
			s.Flags = append(s.Flags, spec)
		case KindPositional:
			if s.Positional != nil {
				return nil, schemaErr(fd, "positional arguments can only be specified once; field %s is already the positional sink", s.Positional.Name)
			}
			s.Positional = spec
		default:
			s.Options = append(s.Options, spec)
		}
	}

	for _, opt := range s.Options {
		appendDocSuffix(opt)
	}
	if s.Positional != nil {
		appendDocSuffix(s.Positional)
	}

	return s, nil
}

// appendDocSuffix tags the last help line of a valued argument with its
// default literal or a required marker. Never both, and nothing for
// naturally-optional fields.
func appendDocSuffix(f *FieldSpec) {
	var suffix string
	switch {
	case f.Default != "":
		suffix = fmt.Sprintf("[default: %s]", f.Default)
	case f.Mandatory():
		suffix = "[required]"
	default:
		return
	}

	if len(f.Doc) == 0 || f.Doc[len(f.Doc)-1] == "" {
		f.Doc = append(f.Doc, suffix)
		return
	}
	f.Doc[len(f.Doc)-1] += " " + suffix
}
