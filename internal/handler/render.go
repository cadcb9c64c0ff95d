package handler

import (
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"
)

// TemplateRenderer adapts html/template to echo's Renderer interface.
// Every template receives a "CurrentYear" value for the footer.
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses all templates matching the glob. The add
// and sub helpers drive the pagination links.
func NewTemplateRenderer(glob string) (*TemplateRenderer, error) {
	funcs := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}
	t, err := template.New("").Funcs(funcs).ParseGlob(glob)
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{templates: t}, nil
}

// Render executes the named template with the given data.
func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	if m, ok := data.(map[string]any); ok {
		if _, set := m["CurrentYear"]; !set {
			m["CurrentYear"] = time.Now().Year()
		}
	}
	return r.templates.ExecuteTemplate(w, name, data)
}
