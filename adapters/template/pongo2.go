package reporttemplate

import (
	"bytes"
	"embed"
	"io"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/agronomiq/soilreport/report"
)

//go:embed templates/*.html
var builtinTemplates embed.FS

// Pongo2Executor executes Django-style templates through pongo2 and satisfies
// report.TemplateExecutor. Template names resolve to "<name>.html" files in
// the configured filesystem; compiled templates are cached by the set.
type Pongo2Executor struct {
	set *pongo2.TemplateSet
}

// NewPongo2Executor creates an executor over an arbitrary template filesystem.
func NewPongo2Executor(fsys fs.FS) *Pongo2Executor {
	return &Pongo2Executor{set: pongo2.NewSet("soilreport", fsLoader{fsys: fsys})}
}

// NewBuiltinExecutor creates an executor over the embedded report templates.
func NewBuiltinExecutor() *Pongo2Executor {
	sub, err := fs.Sub(builtinTemplates, "templates")
	if err != nil {
		// embed guarantees the directory exists
		panic(err)
	}
	return NewPongo2Executor(sub)
}

// ExecuteTemplate renders the named template with the provided data context.
func (e *Pongo2Executor) ExecuteTemplate(w io.Writer, name string, data any) error {
	if e == nil || e.set == nil {
		return report.NewError(report.KindValidation, "template executor requires a template set", nil)
	}

	tpl, err := e.set.FromCache(templateFilename(name))
	if err != nil {
		return report.NewError(report.KindNotFound, "template "+name+" not found", err)
	}
	return tpl.ExecuteWriter(templateContext(data), w)
}

func templateFilename(name string) string {
	if strings.Contains(name, ".") {
		return name
	}
	return name + ".html"
}

// fsLoader adapts an fs.FS to pongo2's TemplateLoader.
type fsLoader struct {
	fsys fs.FS
}

func (l fsLoader) Abs(base, name string) string {
	return name
}

func (l fsLoader) Get(path string) (io.Reader, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

func templateContext(data any) pongo2.Context {
	switch d := data.(type) {
	case nil:
		return pongo2.Context{}
	case pongo2.Context:
		return d
	case map[string]any:
		return pongo2.Context(d)
	case report.TemplateData:
		return pongo2.Context{"metrics": d}
	default:
		return pongo2.Context{"data": d}
	}
}
