package derive

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"text/template"

	"golang.org/x/mod/modfile"

	"github.com/parasyte/onlyargs"
)

//go:embed templates/*.gotmpl
var templateFS embed.FS

// FileWriter abstracts the output side of generation so tests can capture
// generated files without touching the disk.
type FileWriter interface {
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// OSFileWriter writes generated files to the local filesystem.
type OSFileWriter struct{}

func (OSFileWriter) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (OSFileWriter) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// CollectingFileWriter collects generated files in memory, keyed by path.
type CollectingFileWriter struct {
	Files map[string][]byte
}

func NewCollectingFileWriter() *CollectingFileWriter {
	return &CollectingFileWriter{Files: map[string][]byte{}}
}

func (*CollectingFileWriter) MkdirAll(string, os.FileMode) error { return nil }

func (w *CollectingFileWriter) WriteFile(name string, data []byte, _ os.FileMode) error {
	w.Files[filepath.ToSlash(name)] = data
	return nil
}

// Generate scans dir for marked structs and writes one parser file next
// to each of them. Missing app metadata is filled in from the module:
// the name defaults to the final element of the module path and the
// version to 0.0.0.
func Generate(dir string, app onlyargs.App) error {
	return GenerateWithFS(os.DirFS(dir), OSFileWriter{}, dir, app)
}

// GenerateWithFS is Generate over an explicit source filesystem and
// output writer. The scan starts at the root of fsys; outDir prefixes
// every written path.
func GenerateWithFS(fsys fs.FS, fw FileWriter, outDir string, app onlyargs.App) error {
	tmpl, err := template.ParseFS(templateFS, "templates/*.gotmpl")
	if err != nil {
		return fmt.Errorf("parsing templates: %w", err)
	}

	if app.Name == "" {
		app.Name = moduleName(fsys)
	}
	if app.Name == "" {
		return fmt.Errorf("no application name: pass one or add a go.mod")
	}
	if app.Version == "" {
		app.Version = "0.0.0"
	}

	structs, err := ScanStructs(fsys, ".")
	if err != nil {
		return err
	}
	if len(structs) == 0 {
		return fmt.Errorf("no structs marked with %s found", deriveMarker)
	}

	for _, st := range structs {
		schema, err := BuildSchema(st)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, "args", buildTemplateData(app, st.Package, schema)); err != nil {
			return fmt.Errorf("rendering parser for %s: %w", st.Name, err)
		}
		src, err := format.Source(buf.Bytes())
		if err != nil {
			return fmt.Errorf("formatting parser for %s: %w\n%s", st.Name, err, buf.Bytes())
		}

		p := filepath.Join(outDir, filepath.FromSlash(st.Dir), snakeCase(st.Name)+"_onlyargs.go")
		if err := fw.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
		if err := fw.WriteFile(p, src, 0o644); err != nil {
			return err
		}
		fmt.Printf("Generated %s\n", p)
	}
	return nil
}

// moduleName reads the module path out of go.mod at the filesystem root
// and returns its final element, or "" when there is no usable go.mod.
func moduleName(fsys fs.FS) string {
	data, err := fs.ReadFile(fsys, "go.mod")
	if err != nil {
		return ""
	}
	mp := modfile.ModulePath(data)
	if mp == "" {
		return ""
	}
	return path.Base(mp)
}
