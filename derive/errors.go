package derive

import (
	"errors"
	"fmt"
	"go/token"
)

// SchemaError is a definition-time failure: a field whose type spelling or
// directive combination cannot be turned into an argument spec, or a
// struct-level conflict such as a duplicate short name. It pinpoints the
// offending field so generation aborts with an actionable location.
type SchemaError struct {
	Pos   token.Position
	Field string
	Err   error
}

func (e *SchemaError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: field %s: %v", e.Pos, e.Field, e.Err)
	}
	return fmt.Sprintf("field %s: %v", e.Field, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

func schemaErr(fd *FieldDecl, format string, args ...any) error {
	return &SchemaError{Pos: fd.Pos, Field: fd.Name, Err: fmt.Errorf(format, args...)}
}

func schemaErrWrap(fd *FieldDecl, err error) error {
	var se *SchemaError
	if errors.As(err, &se) {
		return err
	}
	return &SchemaError{Pos: fd.Pos, Field: fd.Name, Err: err}
}
