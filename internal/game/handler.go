package game

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dinogen/dinogen/internal/auth"
	"github.com/dinogen/dinogen/internal/config"
)

type Handler struct {
	service   Service
	cookieTTL time.Duration
}

func NewHandler(s Service, cookieTTL time.Duration) *Handler {
	return &Handler{service: s, cookieTTL: cookieTTL}
}

// CreateGame starts a fresh session and binds the browser to it through the
// session cookie. The game itself stays idle until the start endpoint.
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	sess, err := h.service.CreateSession(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to create game session")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	token, err := auth.GenerateSessionToken(sess.ID.String(), h.cookieTTL)
	if err != nil {
		log.WithError(err).Error("Failed to generate session token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	auth.SetSessionCookie(w, token, h.cookieTTL)

	snapshot, err := h.service.Current(r.Context(), sess.ID.String())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, snapshot)
}

func (h *Handler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	snapshot, err := h.service.Current(r.Context(), sessionID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, snapshot)
}

func (h *Handler) StartRound(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	snapshot, err := h.service.Start(r.Context(), sessionID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, snapshot)
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body for answer")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Choice) == "" {
		http.Error(w, "choice is required", http.StatusBadRequest)
		return
	}

	snapshot, err := h.service.SubmitAnswer(r.Context(), sessionID, req.Choice)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, snapshot)
}

func (h *Handler) NextRound(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	snapshot, err := h.service.Advance(r.Context(), sessionID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, snapshot)
}

func (h *Handler) RetryRound(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	snapshot, err := h.service.Retry(r.Context(), sessionID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, snapshot)
}

func (h *Handler) Abandon(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	if err := h.service.Abandon(r.Context(), sessionID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	auth.ClearSessionCookie(w)
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "game session abandoned",
	})
}

func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, err := auth.GetSessionClaimsFromContext(r.Context())
	if err != nil {
		config.WithContext(r.Context()).Warn("No session claims on request")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return claims.SessionID, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := config.WithContext(r.Context())

	switch {
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "game session not found", http.StatusNotFound)
	case errors.Is(err, ErrRateLimited):
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	case errors.Is(err, ErrInvalidChoice):
		http.Error(w, "invalid choice", http.StatusBadRequest)
	default:
		log.WithError(err).Error("Game operation failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
