package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/internal/service"
)

// DeviceManagerService is the health service name of the device manager.
// The empty name reports the daemon as a whole.
const DeviceManagerService = "devicekeeper.DeviceManager"

// probeOwner is the owner id the health probe calls the service with.
const probeOwner = "device-keeper-health"

// Handler is the root gRPC transport handler. It serves the standard gRPC
// health protocol, with the device manager status driven by [Handler.Probe].
type Handler struct {
	devices service.DeviceManagerService
	health  *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Every service starts NOT_SERVING until
// the first successful probe.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(DeviceManagerService, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Handler{
		devices: services.DeviceManager,
		health:  hs,
		logger:  logger,
	}
}

// Register installs the health service on srv.
func (h *Handler) Register(srv grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(srv, h.health)
}

// Probe asks the device manager for the local device, which needs the bus
// daemon, and publishes the outcome as the serving status.
func (h *Handler) Probe(ctx context.Context, timeout time.Duration) bool {
	if h.devices == nil {
		return false
	}

	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if _, err := h.devices.GetLocalDeviceInfo(probeCtx, probeOwner); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.Probe").Msg("device manager probe failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(DeviceManagerService, status)
	return status == healthpb.HealthCheckResponse_SERVING
}

// Shutdown sets every service to NOT_SERVING and ignores later probes.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
