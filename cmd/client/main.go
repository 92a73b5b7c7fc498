package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-device-keeper/internal/adapter"
	"github.com/MKhiriev/go-device-keeper/internal/client"
	"github.com/MKhiriev/go-device-keeper/internal/config"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/internal/service"
	"github.com/MKhiriev/go-device-keeper/internal/tui"
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

	log := logger.NewClientLogger("device-keeper-console")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	deviceClient, err := adapter.NewHTTPDeviceManagerClient(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create device manager client")
	}

	services, err := service.NewClientServices(deviceClient, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
