package web

import (
	"html/template"
	"net/http"
	"path/filepath"

	"github.com/dinogen/dinogen/internal/config"
)

type Handler struct {
	tmpl *template.Template
}

func NewHandler(webDir string) (*Handler, error) {
	tmpl, err := template.ParseGlob(filepath.Join(webDir, "templates", "*.html"))
	if err != nil {
		return nil, err
	}
	return &Handler{tmpl: tmpl}, nil
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.tmpl.ExecuteTemplate(w, "index.html", nil); err != nil {
		log.WithError(err).Error("Failed to render index page")
	}
}
