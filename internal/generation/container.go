package generation

import (
	"context"

	"github.com/dinogen/dinogen/internal/config"
)

type GenerationContainer struct {
	Service Service
}

func NewGenerationContainer(ctx context.Context, cfg *config.Config) (*GenerationContainer, error) {
	provider, err := NewGeminiProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	service := NewService(provider)

	return &GenerationContainer{
		Service: service,
	}, nil
}
