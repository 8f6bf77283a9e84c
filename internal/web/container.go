package web

import (
	"path/filepath"

	"github.com/dinogen/dinogen/internal/config"
)

type WebContainer struct {
	Handler   *Handler
	StaticDir string
}

func NewWebContainer(cfg *config.Config) (*WebContainer, error) {
	handler, err := NewHandler(cfg.WebDir)
	if err != nil {
		return nil, err
	}

	return &WebContainer{
		Handler:   handler,
		StaticDir: filepath.Join(cfg.WebDir, "static"),
	}, nil
}
