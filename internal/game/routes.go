package game

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dinogen/dinogen/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreateGame)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Get("/current", h.GetCurrent)
		r.Delete("/current", h.Abandon)
		r.Post("/current/start", h.StartRound)
		r.Post("/current/answer", h.SubmitAnswer)
		r.Post("/current/next", h.NextRound)
		r.Post("/current/retry", h.RetryRound)
	})

	return r
}
