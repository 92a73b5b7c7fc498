package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-device-keeper/internal/app"
	"github.com/MKhiriev/go-device-keeper/internal/config"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build)

	log := logger.NewLogger("device-keeper")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	daemon, err := app.NewDaemon(ctx, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating daemon")
	}
	defer daemon.Close()

	if err = daemon.Run(ctx); err != nil {
		log.Err(err).Msg("daemon stopped with error")
	}
}
