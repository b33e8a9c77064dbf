package ui

import (
	"embed"
	"fmt"
	"html"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var templateFS embed.FS

// BlankScreen is the page rendered for paths outside the route table: the
// shell with nothing in the content region.
const BlankScreen = "blank"

// Renderer executes screen templates inside the shared layout. It satisfies
// echo.Renderer.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded layout once and clones it per screen.
func NewRenderer() (*Renderer, error) {
	base, err := template.New("base").Funcs(Funcs()).ParseFS(templateFS,
		"templates/layout.html",
		"templates/components.html",
	)
	if err != nil {
		return nil, fmt.Errorf("parse layout templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template)}

	blank, err := base.Clone()
	if err != nil {
		return nil, fmt.Errorf("clone layout: %w", err)
	}
	r.pages[BlankScreen] = blank

	files, err := fs.Glob(templateFS, "templates/screens/*.html")
	if err != nil {
		return nil, fmt.Errorf("list screen templates: %w", err)
	}
	for _, f := range files {
		name := strings.TrimSuffix(path.Base(f), ".html")
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templateFS, f); err != nil {
			return nil, fmt.Errorf("parse screen %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Has reports whether a screen template exists.
func (r *Renderer) Has(screen string) bool {
	_, ok := r.pages[screen]
	return ok
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown screen template %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"icon":  Icon,
		"coord": Coord,
		"badge": BadgeClass,
		"pct": func(v int) string {
			return fmt.Sprintf("%d%%", v)
		},
		"width": func(v int) template.CSS {
			if v < 0 {
				v = 0
			}
			if v > 100 {
				v = 100
			}
			return template.CSS(fmt.Sprintf("width: %d%%", v))
		},
	}
}

// Icon renders a lucide placeholder element. An empty name renders nothing.
func Icon(name, class string) template.HTML {
	if name == "" {
		return ""
	}
	return template.HTML(fmt.Sprintf(`<i data-lucide="%s" class="%s"></i>`,
		html.EscapeString(name), html.EscapeString(class)))
}
