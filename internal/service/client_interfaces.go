package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_client_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-device-keeper/models"
)

// ClientDeviceService is the console's view of the device manager. Every
// call acts on behalf of the owner the underlying client was built for.
type ClientDeviceService interface {
	// OwnerID returns the owner the console acts as.
	OwnerID() string

	// TrustedDevices returns the devices the local node trusts.
	TrustedDevices(ctx context.Context) ([]models.DeviceInfo, error)

	// LocalDevice returns the identity of the node the service runs on.
	LocalDevice(ctx context.Context) (models.LocalDeviceInfo, error)

	// StartDiscovery starts an active discovery for capability and returns
	// the subscribe id it was started with. An empty capability uses
	// [DefaultCapability].
	StartDiscovery(ctx context.Context, capability string) (uint16, error)

	// StopDiscovery stops the discovery started by the last StartDiscovery.
	// It is a no-op when nothing is running.
	StopDiscovery(ctx context.Context) error

	// Authenticate starts PIN pairing with a discovered device.
	Authenticate(ctx context.Context, deviceID string) error

	// VerifyPin submits the PIN shown on the peer. pin must be six digits.
	VerifyPin(ctx context.Context, pin string) error

	// Unauthenticate removes the trust relationship with deviceID.
	Unauthenticate(ctx context.Context, deviceID string) error

	// Events opens the owner's event stream. The channel is closed when ctx
	// is done or the service ends the stream.
	Events(ctx context.Context) (<-chan ClientEvent, error)
}

// ClientRefreshJob periodically reloads the trusted device list and hands
// every result to the console.
type ClientRefreshJob interface {
	// Start launches the background refresh. It reloads every interval,
	// defaulting to 30 seconds if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and blocks until it has exited.
	Stop()

	// Updates returns the channel refresh results are delivered on. A result
	// the reader has not taken yet is replaced by the newer one.
	Updates() <-chan DeviceListUpdate
}
