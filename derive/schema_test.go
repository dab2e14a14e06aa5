package derive

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func fd(name, typ string, doc ...string) *FieldDecl {
	return &FieldDecl{Name: name, Type: typ, Doc: doc}
}

func TestBuildSchema(t *testing.T) {
	st := &StructDecl{
		Name: "Args",
		Doc:  []string{"Does things."},
		Fields: []*FieldDecl{
			fd("Username", "string", " Your username."),
			fd("Width", "int32", " Set the width.", "onlyargs:default 42"),
			fd("Output", "*onlyargs.Path", " Output file path."),
			fd("Numbers", "[]int32", " Numbers to sum.", "onlyargs:required"),
			fd("Verbose", "bool", " Enable verbose output."),
			fd("Rest", "[]string", " Everything else.", "onlyargs:positional"),
		},
	}

	s, err := BuildSchema(st)
	if err != nil {
		t.Fatalf("BuildSchema() error = %v", err)
	}

	if s.Type != "Args" {
		t.Errorf("Type = %q, want Args", s.Type)
	}
	if diff := cmp.Diff([]string{"Does things."}, s.Doc); diff != "" {
		t.Errorf("Doc mismatch (-want +got):\n%s", diff)
	}

	var flags []string
	for _, f := range s.Flags {
		flags = append(flags, f.ArgName())
	}
	if diff := cmp.Diff([]string{"help", "version", "verbose"}, flags); diff != "" {
		t.Errorf("flag order mismatch (-want +got):\n%s", diff)
	}
	if s.Flags[0].Output || s.Flags[1].Output {
		t.Error("built-in flags must not be marked for output")
	}
	if !s.Flags[2].Output {
		t.Error("declared flag must be marked for output")
	}

	var opts []string
	for _, f := range s.Options {
		opts = append(opts, f.ArgName())
	}
	if diff := cmp.Diff([]string{"username", "width", "numbers"}, opts); diff != "" {
		t.Errorf("option order mismatch (-want +got):\n%s", diff)
	}

	if s.Positional == nil || s.Positional.Name != "Rest" {
		t.Fatalf("Positional = %+v, want field Rest", s.Positional)
	}
	if s.Positional.Short != 0 {
		t.Error("positional sink must not get a short name")
	}
	if s.Positional.Kind != KindPositional {
		t.Errorf("positional Kind = %v", s.Positional.Kind)
	}

	// Doc suffixes land on the last help line.
	if got := s.Options[0].Doc; got[len(got)-1] != "Your username. [required]" {
		t.Errorf("username doc = %q", got)
	}
	if got := s.Options[1].Doc; got[len(got)-1] != "Set the width. [default: 42]" {
		t.Errorf("width doc = %q", got)
	}
	if got := s.Options[2].Doc; got[len(got)-1] != "Numbers to sum. [required]" {
		t.Errorf("numbers doc = %q", got)
	}
	// Optional fields get neither marker.
	if got := strings.Join(s.Flags[2].Doc, "\n"); strings.Contains(got, "[") {
		t.Errorf("verbose doc = %q", got)
	}
}

func TestBuildSchemaShortNames(t *testing.T) {
	st := &StructDecl{
		Name: "Args",
		Fields: []*FieldDecl{
			fd("Width", "int32", " First come."),
			fd("Wrap", "bool", " Loses the inferred short.", "onlyargs:short r"),
			fd("Quiet", "bool", " Opts out entirely.", "onlyargs:long"),
		},
	}

	s, err := BuildSchema(st)
	if err != nil {
		t.Fatalf("BuildSchema() error = %v", err)
	}
	if got := s.Options[0].Short; got != 'w' {
		t.Errorf("Width short = %q, want w", got)
	}
	if got := s.Flags[2].Short; got != 'r' {
		t.Errorf("Wrap short = %q, want r", got)
	}
	if got := s.Flags[3].Short; got != 0 {
		t.Errorf("Quiet short = %q, want none", got)
	}
}

func TestBuildSchemaConflicts(t *testing.T) {
	tests := []struct {
		name   string
		fields []*FieldDecl
		msg    string
	}{
		{
			name: "short collision",
			fields: []*FieldDecl{
				fd("Width", "int32", " w"),
				fd("Wrap", "bool", " also w"),
			},
			msg: "only one short arg is allowed: `-w` is already used by field Width",
		},
		{
			name: "builtin short collision",
			fields: []*FieldDecl{
				fd("Host", "string", " clashes with --help's -h"),
			},
			msg: "only one short arg is allowed: `-h` is already used by field help",
		},
		{
			name: "long collision",
			fields: []*FieldDecl{
				fd("HTTPServer", "string", " first", "onlyargs:long"),
				fd("HttpServer", "string", " same kebab name", "onlyargs:long"),
			},
			msg: "argument name --http-server is already used by field HTTPServer",
		},
		{
			name: "reserved builtin name",
			fields: []*FieldDecl{
				fd("Version", "string", " clashes", "onlyargs:long"),
			},
			msg: "argument name --version is reserved",
		},
		{
			name: "second positional",
			fields: []*FieldDecl{
				fd("Rest", "[]string", "onlyargs:positional"),
				fd("More", "[]string", "onlyargs:positional"),
			},
			msg: "positional arguments can only be specified once; field Rest is already the positional sink",
		},
		{
			name: "positional on scalar",
			fields: []*FieldDecl{
				fd("Rest", "string", "onlyargs:positional"),
			},
			msg: "onlyargs:positional can only be used on slice fields",
		},
		{
			name: "required on scalar",
			fields: []*FieldDecl{
				fd("Username", "string", "onlyargs:required"),
			},
			msg: "onlyargs:required can only be used on slice fields",
		},
		{
			name: "default on pointer",
			fields: []*FieldDecl{
				fd("Width", "*int32", "onlyargs:default 42"),
			},
			msg: "onlyargs:default can only be used on plain scalar fields",
		},
		{
			name: "default on flag",
			fields: []*FieldDecl{
				fd("Verbose", "bool", "onlyargs:default true"),
			},
			msg: "onlyargs:default can only be used on plain scalar fields",
		},
		{
			name: "unsupported type",
			fields: []*FieldDecl{
				fd("Timeout", "time.Duration", " nope"),
			},
			msg: "unsupported type time.Duration",
		},
		{
			name: "bad directive",
			fields: []*FieldDecl{
				fd("Width", "int32", "onlyargs:default forty"),
			},
			msg: "invalid literal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildSchema(&StructDecl{Name: "Args", Fields: tt.fields})
			if err == nil {
				t.Fatal("BuildSchema() succeeded, want error")
			}
			var se *SchemaError
			if !errors.As(err, &se) {
				t.Fatalf("error = %T, want *SchemaError", err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not contain %q", err, tt.msg)
			}
		})
	}
}
