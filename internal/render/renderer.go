package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{
	"index",
	"signup",
	"admin_dashboard",
	"doctor_dashboard",
	"patient_dashboard",
	"patient_appointments",
	"booking",
}

var funcs = template.FuncMap{"dict": dict}

// dict builds a map from alternating keys and values so a partial can take several
// arguments.
func dict(pairs ...interface{}) (map[string]interface{}, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]interface{}, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

// Renderer renders pages inside the shared layout and bare fragments for partial
// updates. It implements echo.Renderer.
type Renderer struct {
	pages     map[string]*template.Template
	fragments *template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

// New parses the embedded templates.
func New() (*Renderer, error) {
	fragments, err := template.New("fragments").Funcs(funcs).ParseFS(templateFS, "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("parse partials: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/partials.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages, fragments: fragments}, nil
}

// Render implements echo.Renderer. Page names render the full layout; fragment names
// ("doctor_cards", "patient_rows") render only that block.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	if t, ok := r.pages[name]; ok {
		return t.ExecuteTemplate(w, "layout", data)
	}
	if r.fragments.Lookup(name) != nil {
		return r.fragments.ExecuteTemplate(w, name, data)
	}
	return fmt.Errorf("render: unknown template %q", name)
}
