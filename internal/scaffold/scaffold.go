package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/velen-dev/velen/internal/entity"
	"github.com/velen-dev/velen/internal/extras"
)

// declarationTemplate renders `&[<name>]: <type> {<extras>` followed by a
// newline and the closing brace.
const declarationTemplate = `&[{{.Name}}]: {{.Type}} {{"{"}}{{.Extras}}` + "\n}"

// TemplateData holds the three interpolation points of a declaration.
type TemplateData struct {
	Name   string
	Type   string
	Extras string
}

// Result holds the outcome of emitting one declaration.
type Result struct {
	Path  string
	Kind  entity.Kind
	Bytes int
}

// Emitter renders records with a pre-compiled template and writes them.
type Emitter struct {
	tmpl *template.Template
}

// MustTemplate compiles the declaration template. A failure here is a
// programming error, so it panics.
func MustTemplate() *template.Template {
	return template.Must(template.New("velen").Parse(declarationTemplate))
}

// New creates an Emitter around a compiled declaration template.
func New(tmpl *template.Template) *Emitter {
	return &Emitter{tmpl: tmpl}
}

// NewTemplateData builds the template input for r.
func NewTemplateData(r entity.Record) *TemplateData {
	return &TemplateData{
		Name:   r.RecordName(),
		Type:   r.TypeName(),
		Extras: extras.Serialize(r),
	}
}

// Render returns the full declaration text for r.
func (e *Emitter) Render(r entity.Record) (string, error) {
	var buf bytes.Buffer
	if err := e.tmpl.Execute(&buf, NewTemplateData(r)); err != nil {
		return "", fmt.Errorf("rendering %s %q: %w", r.Kind(), r.RecordName(), err)
	}
	return buf.String(), nil
}

// NormalizeDir prefixes dir with "./" unless it already starts with it, and
// makes it end with exactly one "/".
func NormalizeDir(dir string) string {
	if !strings.HasPrefix(dir, "./") {
		dir = "./" + dir
	}
	return strings.TrimRight(dir, "/") + "/"
}

// ResolvePath returns ./<dir>/<name>.<ext> for r.
func ResolvePath(r entity.Record) string {
	return NormalizeDir(r.Dir()) + r.RecordName() + "." + r.Kind().Extension()
}

// Emit renders r and writes it, creating the output directory when missing
// and truncating any existing file.
func (e *Emitter) Emit(r entity.Record) (*Result, error) {
	content, err := e.Render(r)
	if err != nil {
		return nil, err
	}

	dir := NormalizeDir(r.Dir())
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &WriteError{Op: "mkdir", Path: dir, Err: err}
		}
	}

	outPath := ResolvePath(r)
	f, err := os.Create(outPath)
	if err != nil {
		return nil, &WriteError{Op: "create", Path: outPath, Err: err}
	}

	n, err := f.WriteString(content)
	if err != nil {
		f.Close()
		return nil, &WriteError{Op: "write", Path: outPath, Err: err}
	}
	if err := f.Close(); err != nil {
		return nil, &WriteError{Op: "write", Path: outPath, Err: err}
	}

	return &Result{
		Path:  outPath,
		Kind:  r.Kind(),
		Bytes: n,
	}, nil
}
