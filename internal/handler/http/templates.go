package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templatesFS embed.FS

// templateManager renders the page and its partials.
type templateManager struct {
	templates *template.Template
}

func newTemplateManager() (*templateManager, error) {
	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &templateManager{templates: tmpl}, nil
}

func (tm *templateManager) Render(w io.Writer, name string, data any) error {
	return tm.templates.ExecuteTemplate(w, name, data)
}

// RenderBytes renders into a buffer so a failed render never leaves a
// half-written response.
func (tm *templateManager) RenderBytes(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tm.Render(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
