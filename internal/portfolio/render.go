package portfolio

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names
const (
	TemplatePage     = "page"
	TemplateNav      = "nav"
	TemplateProjects = "projects"
)

// Renderer maps a Page to HTML. It holds no state besides the parsed templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("portfolio").
		Funcs(template.FuncMap{
			"sections": Sections,
		}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Template exposes the parsed set, e.g. for gin's SetHTMLTemplate
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

// RenderPage writes the whole document
func (r *Renderer) RenderPage(w io.Writer, p Page) error {
	return r.tmpl.ExecuteTemplate(w, TemplatePage, p)
}

// RenderProjects writes the project gallery: spinner, empty state or cards
func (r *Renderer) RenderProjects(w io.Writer, p Page) error {
	return r.tmpl.ExecuteTemplate(w, TemplateProjects, p)
}

// RenderNav writes the nav bar with the active section highlighted
func (r *Renderer) RenderNav(w io.Writer, p Page) error {
	return r.tmpl.ExecuteTemplate(w, TemplateNav, p)
}
