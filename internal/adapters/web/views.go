package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/Stalyer/six-cities/internal/contextkeys"
	"github.com/Stalyer/six-cities/internal/core/port"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	pageMain      = "main"
	pageFavorites = "favorites"
	pageProperty  = "property"
	pageLogin     = "login"
	pageNotFound  = "not_found"
	pageLoading   = "loading"
)

var pageNames = []string{pageMain, pageFavorites, pageProperty, pageLogin, pageNotFound, pageLoading}

var templateFuncs = template.FuncMap{
	"card": func(variant string, c cardView) map[string]interface{} {
		return map[string]interface{}{"Variant": variant, "Card": c}
	},
	"mapOf": func(variant string, m mapView) map[string]interface{} {
		return map[string]interface{}{"Variant": variant, "Map": m}
	},
}

// Views - набор страниц, каждая собрана из общего layout и своего content.
type Views struct {
	pages map[string]*template.Template
}

func NewViews() (*Views, error) {
	base, err := template.New("layout").Funcs(templateFuncs).
		ParseFS(templatesFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templatesFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("failed to parse page %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Views{pages: pages}, nil
}

// Render собирает страницу в буфер, чтобы ошибка шаблона не оставила полуотправленный ответ.
func (v *Views) Render(w http.ResponseWriter, r *http.Request, status int, name string, data pageView) {
	logger := contextkeys.LoggerFromContext(r.Context())

	t, ok := v.pages[name]
	if !ok {
		logger.Error("Unknown page", nil, port.Fields{"page": name})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.Error("Failed to render page", err, port.Fields{"page": name})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
