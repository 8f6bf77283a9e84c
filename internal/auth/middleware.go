package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/dinogen/dinogen/internal/config"
)

type contextKey string

const sessionClaimsKey contextKey = "sessionClaims"

// AuthMiddleware reads the session cookie, validates the token and stores the
// claims in the request context. Requests without a valid session are
// rejected before reaching a handler.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := config.WithContext(r.Context())

		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		claims, err := ValidateSessionToken(cookie.Value)
		if err != nil {
			log.WithError(err).Warn("Rejected invalid session token")
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), sessionClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetSessionClaimsFromContext(ctx context.Context) (*SessionClaims, error) {
	claims, ok := ctx.Value(sessionClaimsKey).(*SessionClaims)
	if !ok || claims == nil {
		return nil, errors.New("no session claims in context")
	}
	return claims, nil
}
