package container

import (
	"context"
	"log"

	"github.com/dinogen/dinogen/internal/auth"
	"github.com/dinogen/dinogen/internal/config"
	"github.com/dinogen/dinogen/internal/game"
	"github.com/dinogen/dinogen/internal/generation"
	"github.com/dinogen/dinogen/internal/web"
)

type Container struct {
	Config              *config.Config
	GenerationContainer *generation.GenerationContainer
	GameContainer       *game.GameContainer
	WebContainer        *web.WebContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	cfg := config.Load()

	generationContainer, err := generation.NewGenerationContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to build generation service: %v", err)
	}

	gameContainer := game.NewGameContainer(cfg, generationContainer.Service)

	webContainer, err := web.NewWebContainer(cfg)
	if err != nil {
		log.Fatalf("failed to load web templates: %v", err)
	}

	go gameContainer.Repo.Sweep(context.Background(), cfg.SweepInterval, cfg.SessionTTL)

	return &Container{
		Config:              cfg,
		GenerationContainer: generationContainer,
		GameContainer:       gameContainer,
		WebContainer:        webContainer,
	}
}
