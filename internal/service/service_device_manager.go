package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/models"
)

type deviceManagerService struct {
	discovery   Discoverer
	publish     Publisher
	auth        Authenticator
	states      StateRegistry
	credentials CredentialHandler
	devices     DeviceDirectory

	logger *logger.Logger
}

// NewDeviceManagerService routes each call to the component that owns it.
// Owner validation lives in [NewDeviceManagerValidationService].
func NewDeviceManagerService(components Components, logger *logger.Logger) DeviceManagerService {
	return &deviceManagerService{
		discovery:   components.Discovery,
		publish:     components.Publish,
		auth:        components.Auth,
		states:      components.States,
		credentials: components.Credentials,
		devices:     components.Devices,
		logger:      logger,
	}
}

func (s *deviceManagerService) StartDeviceDiscovery(ctx context.Context, req models.StartDiscoveryRequest) error {
	if err := s.discovery.Start(ctx, req.OwnerID, req.SubscribeInfo, req.Filter); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*deviceManagerService.StartDeviceDiscovery").
			Str("owner_id", req.OwnerID).
			Uint16("subscribe_id", req.SubscribeInfo.SubscribeID).
			Msg("start discovery failed")
		return fmt.Errorf("start discovery: %w", err)
	}
	return nil
}

func (s *deviceManagerService) StopDeviceDiscovery(ctx context.Context, req models.StopDiscoveryRequest) error {
	if err := s.discovery.Stop(ctx, req.OwnerID, req.SubscribeID); err != nil {
		return fmt.Errorf("stop discovery: %w", err)
	}
	return nil
}

func (s *deviceManagerService) PublishDeviceDiscovery(ctx context.Context, req models.PublishRequest) error {
	if err := s.publish.Start(ctx, req.OwnerID, req.PublishInfo); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*deviceManagerService.PublishDeviceDiscovery").
			Str("owner_id", req.OwnerID).
			Int32("publish_id", req.PublishInfo.PublishID).
			Msg("publish failed")
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

func (s *deviceManagerService) UnpublishDeviceDiscovery(ctx context.Context, req models.UnpublishRequest) error {
	if err := s.publish.Stop(ctx, req.OwnerID, req.PublishID); err != nil {
		return fmt.Errorf("unpublish: %w", err)
	}
	return nil
}

func (s *deviceManagerService) AuthenticateDevice(ctx context.Context, req models.AuthenticateRequest) error {
	if err := s.auth.AuthenticateDevice(ctx, req.OwnerID, req.AuthType, req.DeviceID, req.Extra); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*deviceManagerService.AuthenticateDevice").
			Str("owner_id", req.OwnerID).
			Str("device_id", req.DeviceID).
			Msg("authenticate device failed")
		return fmt.Errorf("authenticate device: %w", err)
	}
	return nil
}

func (s *deviceManagerService) UnauthenticateDevice(ctx context.Context, req models.UnauthenticateRequest) error {
	if err := s.auth.UnauthenticateDevice(ctx, req.OwnerID, req.DeviceID); err != nil {
		return fmt.Errorf("unauthenticate device: %w", err)
	}
	return nil
}

func (s *deviceManagerService) VerifyAuthentication(ctx context.Context, req models.VerifyAuthRequest) error {
	if err := s.auth.VerifyAuthentication(ctx, req.OwnerID, req.AuthParam); err != nil {
		return fmt.Errorf("verify authentication: %w", err)
	}
	return nil
}

func (s *deviceManagerService) RegisterDevStateCallback(_ context.Context, req models.StateCallbackRequest) error {
	return s.states.RegisterDevStateCallback(req.OwnerID, req.Extra)
}

func (s *deviceManagerService) UnregisterDevStateCallback(_ context.Context, ownerID string) error {
	return s.states.UnregisterDevStateCallback(ownerID)
}

func (s *deviceManagerService) ImportCredential(ctx context.Context, req models.CredentialPayloadRequest) error {
	if err := s.credentials.ImportCredential(ctx, req.OwnerID, req.Payload); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*deviceManagerService.ImportCredential").
			Str("owner_id", req.OwnerID).
			Msg("import credential failed")
		return fmt.Errorf("import credential: %w", err)
	}
	return nil
}

func (s *deviceManagerService) DeleteCredential(ctx context.Context, req models.CredentialPayloadRequest) error {
	if err := s.credentials.DeleteCredential(ctx, req.OwnerID, req.Payload); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}

func (s *deviceManagerService) RequestCredential(ctx context.Context, req models.CredentialPayloadRequest) (string, error) {
	info, err := s.credentials.RequestCredential(ctx, req.Payload)
	if err != nil {
		return "", fmt.Errorf("request credential: %w", err)
	}
	return info, nil
}

func (s *deviceManagerService) RegisterCredentialCallback(_ context.Context, ownerID string) error {
	return s.credentials.RegisterCredentialCallback(ownerID)
}

func (s *deviceManagerService) UnregisterCredentialCallback(_ context.Context, ownerID string) error {
	return s.credentials.UnregisterCredentialCallback(ownerID)
}

func (s *deviceManagerService) GetTrustedDeviceList(ctx context.Context, _ string) ([]models.DeviceInfo, error) {
	devices, err := s.devices.GetTrustedDeviceList(ctx)
	if err != nil {
		return nil, fmt.Errorf("trusted devices: %w", err)
	}
	return devices, nil
}

func (s *deviceManagerService) GetLocalDeviceInfo(ctx context.Context, _ string) (models.LocalDeviceInfo, error) {
	local, err := s.devices.GetLocalDeviceInfo(ctx)
	if err != nil {
		return models.LocalDeviceInfo{}, fmt.Errorf("local device: %w", err)
	}
	return local, nil
}

func (s *deviceManagerService) GetUdidByNetworkID(ctx context.Context, _, networkID string) (string, error) {
	return s.devices.GetUdidByNetworkID(ctx, networkID)
}

func (s *deviceManagerService) GetUuidByNetworkID(ctx context.Context, _, networkID string) (string, error) {
	return s.devices.GetUuidByNetworkID(ctx, networkID)
}

// readyEvent is the event body of [models.NotifyEventDeviceReady].
type readyEvent struct {
	Extra struct {
		DeviceID string `json:"deviceId"`
	} `json:"extra"`
}

// NotifyEvent accepts only [models.NotifyEventDeviceReady]; the device it
// names is queued for the presence ready notification.
func (s *deviceManagerService) NotifyEvent(ctx context.Context, req models.NotifyEventRequest) error {
	if req.EventID != models.NotifyEventDeviceReady {
		return fmt.Errorf("%w: %w: %d", models.ErrInvalidParameter, ErrUnknownEvent, req.EventID)
	}

	var ev readyEvent
	if err := json.Unmarshal([]byte(req.Event), &ev); err != nil {
		return fmt.Errorf("%w: %w: %w", models.ErrInvalidParameter, ErrMalformedPayload, err)
	}
	if ev.Extra.DeviceID == "" {
		return fmt.Errorf("%w: %w: no device id", models.ErrInvalidParameter, ErrMalformedPayload)
	}

	if err := s.states.OnDBReady(ev.Extra.DeviceID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*deviceManagerService.NotifyEvent").
			Str("device_id", ev.Extra.DeviceID).
			Msg("queue ready event failed")
		return fmt.Errorf("notify event: %w", err)
	}
	return nil
}
