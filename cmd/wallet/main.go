package main

import (
	"context"
	"errors"
	"os"

	"github.com/fsdevblog/groph-wallet/internal/app"
	"github.com/fsdevblog/groph-wallet/internal/config"
	"github.com/fsdevblog/groph-wallet/internal/logger"
)

func main() {
	l := logger.New(os.Stdout)
	conf, err := config.LoadConfig()
	if err != nil {
		l.WithError(err).Fatal("loading config")
	}

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		l.WithError(err).Fatal("app stopped")
	}
}
