package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dinogen/dinogen/internal/game"
	"github.com/dinogen/dinogen/internal/middlewares"
	"github.com/dinogen/dinogen/internal/web"
)

type RouterConfig struct {
	GameHandler *game.Handler
	WebHandler  *web.Handler
	StaticDir   string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/games", game.Routes(cfg.GameHandler))
	})

	r.Get("/", cfg.WebHandler.Index)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	return r
}
