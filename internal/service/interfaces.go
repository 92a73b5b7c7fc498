package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-device-keeper/models"
)

// DeviceManagerService is the public surface of the control plane. Every
// method rejects an empty owner id with [models.ErrInvalidParameter].
type DeviceManagerService interface {
	StartDeviceDiscovery(ctx context.Context, req models.StartDiscoveryRequest) error
	StopDeviceDiscovery(ctx context.Context, req models.StopDiscoveryRequest) error
	PublishDeviceDiscovery(ctx context.Context, req models.PublishRequest) error
	UnpublishDeviceDiscovery(ctx context.Context, req models.UnpublishRequest) error

	AuthenticateDevice(ctx context.Context, req models.AuthenticateRequest) error
	UnauthenticateDevice(ctx context.Context, req models.UnauthenticateRequest) error
	VerifyAuthentication(ctx context.Context, req models.VerifyAuthRequest) error

	RegisterDevStateCallback(ctx context.Context, req models.StateCallbackRequest) error
	UnregisterDevStateCallback(ctx context.Context, ownerID string) error

	ImportCredential(ctx context.Context, req models.CredentialPayloadRequest) error
	DeleteCredential(ctx context.Context, req models.CredentialPayloadRequest) error
	// RequestCredential returns the register info as JSON.
	RequestCredential(ctx context.Context, req models.CredentialPayloadRequest) (string, error)
	RegisterCredentialCallback(ctx context.Context, ownerID string) error
	UnregisterCredentialCallback(ctx context.Context, ownerID string) error

	GetTrustedDeviceList(ctx context.Context, ownerID string) ([]models.DeviceInfo, error)
	GetLocalDeviceInfo(ctx context.Context, ownerID string) (models.LocalDeviceInfo, error)
	GetUdidByNetworkID(ctx context.Context, ownerID, networkID string) (string, error)
	GetUuidByNetworkID(ctx context.Context, ownerID, networkID string) (string, error)

	NotifyEvent(ctx context.Context, req models.NotifyEventRequest) error
}

// DeviceManagerServiceWrapper decorates a DeviceManagerService.
type DeviceManagerServiceWrapper interface {
	Wrap(DeviceManagerService) DeviceManagerService
}

// Discoverer owns the discovery admission slot.
type Discoverer interface {
	Start(ctx context.Context, ownerID string, info models.SubscribeInfo, filterExpr string) error
	Stop(ctx context.Context, ownerID string, subscribeID uint16) error
}

// Publisher owns the publish admission slot.
type Publisher interface {
	Start(ctx context.Context, ownerID string, info models.PublishInfo) error
	Stop(ctx context.Context, ownerID string, publishID int32) error
}

// Authenticator runs PIN pairing sessions.
type Authenticator interface {
	AuthenticateDevice(ctx context.Context, ownerID string, authType int, deviceID, extra string) error
	VerifyAuthentication(ctx context.Context, ownerID, authParam string) error
	UnauthenticateDevice(ctx context.Context, ownerID, deviceID string) error
}

// StateRegistry tracks device presence listeners and ready events.
type StateRegistry interface {
	RegisterDevStateCallback(ownerID, extra string) error
	UnregisterDevStateCallback(ownerID string) error
	OnDBReady(deviceID string) error
}

// CredentialHandler runs credential imports and deletions.
type CredentialHandler interface {
	ImportCredential(ctx context.Context, ownerID, credentialInfo string) error
	DeleteCredential(ctx context.Context, ownerID, deleteInfo string) error
	RequestCredential(ctx context.Context, reqJSON string) (string, error)
	RegisterCredentialCallback(ownerID string) error
	UnregisterCredentialCallback(ownerID string) error
}

// DeviceDirectory answers device identity lookups.
type DeviceDirectory interface {
	GetTrustedDeviceList(ctx context.Context) ([]models.DeviceInfo, error)
	GetLocalDeviceInfo(ctx context.Context) (models.LocalDeviceInfo, error)
	GetUdidByNetworkID(ctx context.Context, networkID string) (string, error)
	GetUuidByNetworkID(ctx context.Context, networkID string) (string, error)
}
