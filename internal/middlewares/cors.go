package middlewares

import (
	"net/http"
	"os"
)

// CorsMiddleware allows the configured front-end origin to call the API with
// cookies. With no ALLOWED_ORIGIN set only same-origin requests are served,
// which is the default deployment (the server hosts the page itself).
func CorsMiddleware(next http.Handler) http.Handler {
	allowed := os.Getenv("ALLOWED_ORIGIN")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && origin == allowed {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
