package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-device-keeper/internal/validators"
	"github.com/MKhiriev/go-device-keeper/models"
)

// DeviceManagerValidationService rejects malformed requests before they
// reach the wrapped service.
type DeviceManagerValidationService struct {
	inner     DeviceManagerService
	validator validators.Validator
}

func NewDeviceManagerValidationService() DeviceManagerServiceWrapper {
	return &DeviceManagerValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *DeviceManagerValidationService) Wrap(inner DeviceManagerService) DeviceManagerService {
	v.inner = inner
	return v
}

// check validates req and reports failures as invalid parameters.
func (v *DeviceManagerValidationService) check(ctx context.Context, req any, fields ...string) error {
	if err := v.validator.Validate(ctx, req, fields...); err != nil {
		return fmt.Errorf("%w: %w", models.ErrInvalidParameter, err)
	}
	return nil
}

func (v *DeviceManagerValidationService) StartDeviceDiscovery(ctx context.Context, req models.StartDiscoveryRequest) error {
	if err := v.check(ctx, req); err != nil {
		return err
	}
	return v.inner.StartDeviceDiscovery(ctx, req)
}

func (v *DeviceManagerValidationService) StopDeviceDiscovery(ctx context.Context, req models.StopDiscoveryRequest) error {
	if err := v.check(ctx, req); err != nil {
		return err
	}
	return v.inner.StopDeviceDiscovery(ctx, req)
}

func (v *DeviceManagerValidationService) PublishDeviceDiscovery(ctx context.Context, req models.PublishRequest) error {
	if err := v.check(ctx, req); err != nil {
		return err
	}
	return v.inner.PublishDeviceDiscovery(ctx, req)
}

func (v *DeviceManagerValidationService) UnpublishDeviceDiscovery(ctx context.Context, req models.UnpublishRequest) error {
	if err := v.check(ctx, req); err != nil {
		return err
	}
	return v.inner.UnpublishDeviceDiscovery(ctx, req)
}

func (v *DeviceManagerValidationService) AuthenticateDevice(ctx context.Context, req models.AuthenticateRequest) error {
	if err := v.check(ctx, req); err != nil {
		return err
	}
	return v.inner.AuthenticateDevice(ctx, req)
}

func (v *DeviceManagerValidationService) UnauthenticateDevice(ctx context.Context, req models.UnauthenticateRequest) error {
	if err := v.check(ctx, req); err != nil {
		return err
	}
	return v.inner.UnauthenticateDevice(ctx, req)
}

func (v *DeviceManagerValidationService) VerifyAuthentication(ctx context.Context, req models.VerifyAuthRequest) error {
	if err := v.check(ctx, req); err != nil {
		return err
	}
	return v.inner.VerifyAuthentication(ctx, req)
}

func (v *DeviceManagerValidationService) RegisterDevStateCallback(ctx context.Context, req models.StateCallbackRequest) error {
	if err := v.check(ctx, req); err != nil {
		return err
	}
	return v.inner.RegisterDevStateCallback(ctx, req)
}

func (v *DeviceManagerValidationService) UnregisterDevStateCallback(ctx context.Context, ownerID string) error {
	if err := v.check(ctx, models.OwnerRequest{OwnerID: ownerID}); err != nil {
		return err
	}
	return v.inner.UnregisterDevStateCallback(ctx, ownerID)
}

func (v *DeviceManagerValidationService) ImportCredential(ctx context.Context, req models.CredentialPayloadRequest) error {
	if err := v.check(ctx, req); err != nil {
		return err
	}
	return v.inner.ImportCredential(ctx, req)
}

func (v *DeviceManagerValidationService) DeleteCredential(ctx context.Context, req models.CredentialPayloadRequest) error {
	if err := v.check(ctx, req); err != nil {
		return err
	}
	return v.inner.DeleteCredential(ctx, req)
}

func (v *DeviceManagerValidationService) RequestCredential(ctx context.Context, req models.CredentialPayloadRequest) (string, error) {
	if err := v.check(ctx, req); err != nil {
		return "", err
	}
	return v.inner.RequestCredential(ctx, req)
}

func (v *DeviceManagerValidationService) RegisterCredentialCallback(ctx context.Context, ownerID string) error {
	if err := v.check(ctx, models.OwnerRequest{OwnerID: ownerID}); err != nil {
		return err
	}
	return v.inner.RegisterCredentialCallback(ctx, ownerID)
}

func (v *DeviceManagerValidationService) UnregisterCredentialCallback(ctx context.Context, ownerID string) error {
	if err := v.check(ctx, models.OwnerRequest{OwnerID: ownerID}); err != nil {
		return err
	}
	return v.inner.UnregisterCredentialCallback(ctx, ownerID)
}

func (v *DeviceManagerValidationService) GetTrustedDeviceList(ctx context.Context, ownerID string) ([]models.DeviceInfo, error) {
	if err := v.check(ctx, models.OwnerRequest{OwnerID: ownerID}); err != nil {
		return nil, err
	}
	return v.inner.GetTrustedDeviceList(ctx, ownerID)
}

func (v *DeviceManagerValidationService) GetLocalDeviceInfo(ctx context.Context, ownerID string) (models.LocalDeviceInfo, error) {
	if err := v.check(ctx, models.OwnerRequest{OwnerID: ownerID}); err != nil {
		return models.LocalDeviceInfo{}, err
	}
	return v.inner.GetLocalDeviceInfo(ctx, ownerID)
}

func (v *DeviceManagerValidationService) GetUdidByNetworkID(ctx context.Context, ownerID, networkID string) (string, error) {
	if err := v.check(ctx, models.OwnerRequest{OwnerID: ownerID}); err != nil {
		return "", err
	}
	if networkID == "" {
		return "", fmt.Errorf("%w: network id is required", models.ErrInvalidParameter)
	}
	return v.inner.GetUdidByNetworkID(ctx, ownerID, networkID)
}

func (v *DeviceManagerValidationService) GetUuidByNetworkID(ctx context.Context, ownerID, networkID string) (string, error) {
	if err := v.check(ctx, models.OwnerRequest{OwnerID: ownerID}); err != nil {
		return "", err
	}
	if networkID == "" {
		return "", fmt.Errorf("%w: network id is required", models.ErrInvalidParameter)
	}
	return v.inner.GetUuidByNetworkID(ctx, ownerID, networkID)
}

func (v *DeviceManagerValidationService) NotifyEvent(ctx context.Context, req models.NotifyEventRequest) error {
	if err := v.check(ctx, req); err != nil {
		return err
	}
	return v.inner.NotifyEvent(ctx, req)
}
