package api

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
)

//go:embed templates static
var webFS embed.FS

// webHandler serves the public HTML pages and static assets.
type webHandler struct {
	templates *template.Template
}

func newWebHandler() webHandler {
	return webHandler{
		templates: template.Must(template.ParseFS(webFS, "templates/*.html")),
	}
}

func (h webHandler) page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := h.templates.ExecuteTemplate(w, name, nil); err != nil {
			log.Error().Err(err).Str("template", name).Msg("failed to render page")
		}
	}
}

func (h webHandler) static() http.Handler {
	return http.FileServer(http.FS(webFS))
}
