package derive

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"path"
	"strings"
)

// deriveMarker opts a struct type into parser generation. It must appear
// as a directive comment in the type's doc comment.
const deriveMarker = "onlyargs:derive"

// StructDecl is a marked struct as found in source, before any schema
// rules have been applied.
type StructDecl struct {
	Name    string
	Package string
	Dir     string // directory relative to the scan root, "." at the root
	File    string
	Doc     []string // help text lines, directives stripped
	Fields  []*FieldDecl
	Pos     token.Position
}

// FieldDecl is one struct field: its name, the type expression as
// written, and its raw comment lines.
type FieldDecl struct {
	Name string
	Type string
	Doc  []string
	Pos  token.Position
}

// ScanStructs walks every Go source file under root looking for structs
// carrying the derive marker. Test files and previously generated files
// are skipped. Results come back in walk order, so repeated runs over the
// same tree see the same sequence.
func ScanStructs(fsys fs.FS, root string) ([]*StructDecl, error) {
	var structs []*StructDecl
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); p != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "testdata") {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(p, ".go") || strings.HasSuffix(p, "_test.go") || strings.HasSuffix(p, "_onlyargs.go") {
			return nil
		}

		found, err := scanFile(fsys, root, p)
		if err != nil {
			return err
		}
		structs = append(structs, found...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return structs, nil
}

func scanFile(fsys fs.FS, root, p string) ([]*StructDecl, error) {
	src, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, err
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, p, src, parser.SkipObjectResolution|parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", p, err)
	}

	dir := path.Dir(p)
	if rel := strings.TrimPrefix(dir, root); rel != dir {
		dir = strings.TrimPrefix(rel, "/")
		if dir == "" {
			dir = "."
		}
	}

	var structs []*StructDecl
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}

			doc := ts.Doc
			if doc == nil {
				doc = gd.Doc
			}
			lines, marked := splitStructDoc(doc)
			if !marked {
				continue
			}

			sd, err := buildStructDecl(fset, ts, st, lines)
			if err != nil {
				return nil, err
			}
			sd.Package = f.Name.Name
			sd.Dir = dir
			sd.File = p
			structs = append(structs, sd)
		}
	}
	return structs, nil
}

// splitStructDoc separates a type's doc comment into help text and the
// derive marker. Comment groups are walked line by line because the ast
// Text helper strips directive comments.
func splitStructDoc(doc *ast.CommentGroup) (lines []string, marked bool) {
	for _, line := range commentLines(doc) {
		trimmed := strings.TrimSpace(line)
		if trimmed == deriveMarker {
			marked = true
			continue
		}
		lines = append(lines, trimDocLine(line))
	}
	if !marked {
		return nil, false
	}
	// The conventional blank line separating the help text from the
	// directive is not help content.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	return lines, true
}

func buildStructDecl(fset *token.FileSet, ts *ast.TypeSpec, st *ast.StructType, doc []string) (*StructDecl, error) {
	for _, line := range doc {
		if strings.HasPrefix(strings.TrimSpace(line), directivePrefix) {
			return nil, fmt.Errorf("%s: struct %s: only the derive directive is valid on a struct, got %q",
				fset.Position(ts.Pos()), ts.Name.Name, strings.TrimSpace(line))
		}
	}

	decl := &StructDecl{
		Name: ts.Name.Name,
		Doc:  doc,
		Pos:  fset.Position(ts.Pos()),
	}

	for _, fld := range st.Fields.List {
		if len(fld.Names) == 0 {
			return nil, fmt.Errorf("%s: struct %s: embedded fields are not supported",
				fset.Position(fld.Pos()), ts.Name.Name)
		}
		ty, err := typeString(fld.Type)
		if err != nil {
			return nil, fmt.Errorf("%s: struct %s: %w", fset.Position(fld.Pos()), ts.Name.Name, err)
		}

		var lines []string
		lines = append(lines, commentLines(fld.Doc)...)
		lines = append(lines, commentLines(fld.Comment)...)

		for _, name := range fld.Names {
			decl.Fields = append(decl.Fields, &FieldDecl{
				Name: name.Name,
				Type: ty,
				Doc:  lines,
				Pos:  fset.Position(name.Pos()),
			})
		}
	}
	return decl, nil
}

// commentLines returns the raw text of every line comment in a group,
// with the comment marker stripped and nothing else touched.
func commentLines(cg *ast.CommentGroup) []string {
	if cg == nil {
		return nil
	}
	var lines []string
	for _, c := range cg.List {
		if strings.HasPrefix(c.Text, "//") {
			lines = append(lines, strings.TrimPrefix(c.Text, "//"))
		}
	}
	return lines
}

// typeString renders the subset of type expressions the classifier
// understands back to source form.
func typeString(expr ast.Expr) (string, error) {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name, nil
	case *ast.SelectorExpr:
		pkg, ok := t.X.(*ast.Ident)
		if !ok {
			return "", fmt.Errorf("unsupported type expression")
		}
		return pkg.Name + "." + t.Sel.Name, nil
	case *ast.StarExpr:
		inner, err := typeString(t.X)
		if err != nil {
			return "", err
		}
		return "*" + inner, nil
	case *ast.ArrayType:
		if t.Len != nil {
			return "", fmt.Errorf("array types are not supported, use a slice")
		}
		inner, err := typeString(t.Elt)
		if err != nil {
			return "", err
		}
		return "[]" + inner, nil
	}
	return "", fmt.Errorf("unsupported type expression")
}
