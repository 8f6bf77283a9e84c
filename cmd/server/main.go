package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/dinogen/dinogen/internal/container"
	"github.com/dinogen/dinogen/internal/router"
)

func main() {
	_ = godotenv.Load()

	c := container.New()

	r := router.New(router.RouterConfig{
		GameHandler: c.GameContainer.Handler,
		WebHandler:  c.WebContainer.Handler,
		StaticDir:   c.WebContainer.StaticDir,
	})

	srv := &http.Server{
		Addr:    ":" + c.Config.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.Infof("DinoGen server listening on :%s", c.Config.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Graceful shutdown failed")
	}
}
