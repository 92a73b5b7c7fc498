package http

import (
	"github.com/MKhiriev/go-device-keeper/internal/config"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/internal/service"
)

type Handler struct {
	devices service.DeviceManagerService
	events  EventSource
	bus     BusEvents
	limiter *ownerLimiter
	version string

	logger *logger.Logger
}

// NewHandler builds the service API handler. bus receives the daemon
// webhooks. A non-positive cfg.RateLimit disables the per-owner limiter.
func NewHandler(services *service.Services, bus BusEvents, cfg config.Server, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	var events EventSource
	if services.Events != nil {
		events = services.Events
	}

	return &Handler{
		devices: services.DeviceManager,
		events:  events,
		bus:     bus,
		limiter: newOwnerLimiter(cfg.RateLimit, cfg.RateBurst),
		version: version,
		logger:  logger,
	}
}
