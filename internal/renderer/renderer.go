// Package renderer provides the echo.Renderer for the HTML pages.
package renderer

import (
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed views/*.html
var views embed.FS

// TemplateRenderer implements echo.Renderer
type TemplateRenderer struct {
	Templates map[string]*template.Template
}

// New creates a new TemplateRenderer with pre-parsed embedded templates
func New() *TemplateRenderer {
	return &TemplateRenderer{
		Templates: map[string]*template.Template{
			"listing": template.Must(template.ParseFS(views, "views/listing.html")),
		},
	}
}

// Render renders a template document
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := t.Templates[name]
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Template not found: "+name)
	}
	return tmpl.Execute(w, data)
}
