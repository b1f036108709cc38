// Package view renders the blog's HTML pages from embedded templates.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/blog-system/internal/core/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed public
var publicFS embed.FS

const layoutFile = "templates/layout.html"

// Page is the payload every template receives.
type Page struct {
	Title   string
	User    domain.Identity
	Posts   []*domain.Post
	Post    *domain.Post
	Content string
	Error   string
	Success string
}

// Renderer implements echo.Renderer. Each page is parsed together with the
// layout once, at construction.
type Renderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

func funcs() template.FuncMap {
	return template.FuncMap{
		"markdown": RenderMarkdown,
		"excerpt": func(s string) string {
			return Excerpt(s, ExcerptLength)
		},
		"date": func(t time.Time) string {
			return t.Format("January 2, 2006")
		},
	}
}

func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, f := range files {
		if f == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(f), ".html")
		t, err := template.New(name).Funcs(funcs()).ParseFS(templatesFS, layoutFile, f)
		if err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes the named page inside the layout.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// PublicFS exposes the embedded static assets rooted at public/.
func PublicFS() fs.FS {
	sub, err := fs.Sub(publicFS, "public")
	if err != nil {
		panic(err)
	}
	return sub
}
