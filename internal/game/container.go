package game

import (
	"github.com/dinogen/dinogen/internal/config"
	"github.com/dinogen/dinogen/internal/generation"
)

type GameContainer struct {
	Handler *Handler
	Repo    SessionRepository
}

func NewGameContainer(cfg *config.Config, generator generation.Service) *GameContainer {
	repo := NewMemoryRepository()
	service := NewService(repo, generator, cfg)
	handler := NewHandler(service, cfg.SessionTTL)

	return &GameContainer{
		Handler: handler,
		Repo:    repo,
	}
}
