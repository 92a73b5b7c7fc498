package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-device-keeper/internal/config"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/internal/service"
	"github.com/MKhiriev/go-device-keeper/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workers config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || services.RefreshJob == nil {
		return nil, errors.New("nil client services")
	}
	if ui == nil {
		return nil, errors.New("nil ui")
	}
	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		logger:   log,
	}, nil
}

// Run keeps the trusted device list fresh in the background while the
// console is open. Quitting the console is not an error.
func (a *App) Run(ctx context.Context) error {
	a.services.RefreshJob.Start(ctx, a.workers.RefreshInterval)
	defer a.services.RefreshJob.Stop()

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		return nil
	case errors.Is(err, context.Canceled) && ctx.Err() != nil:
		a.logger.Info().Msg("console stopped by signal")
		return nil
	default:
		a.logger.Err(err).Str("func", "*App.Run").Msg("console exited with error")
		return fmt.Errorf("run console: %w", err)
	}
}
