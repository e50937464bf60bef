// Package web renders the server-side HTML pages. Templates are
// embedded in the binary and parsed once at startup; the Renderer
// plugs into Echo so handlers call c.Render with a template name and a
// Page value.
package web

import (
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"datetime": formatDateTime,
}

// Page is the envelope passed to every template: a title for the
// header, an optional one-shot flash message, and the page's own
// read-model under Data.
type Page struct {
	Title string
	Flash string
	Data  any
}

// Renderer implements echo.Renderer over the embedded template set.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates. It panics on a malformed
// template, which is a build defect rather than a runtime condition.
func NewRenderer() *Renderer {
	t := template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))
	return &Renderer{templates: t}
}

// Render executes the named template into w.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// formatDateTime renders an instant the way the listing pages display
// start times.
func formatDateTime(t time.Time) string {
	return t.Format("Mon Jan 2, 2006 3:04PM")
}
