package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-device-keeper/internal/adapter"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/models"
)

// DefaultCapability is the discovery capability the console looks for.
const DefaultCapability = "osdCapability"

// pinLength is the number of digits of a pairing PIN.
const pinLength = 6

// ClientEvent is a decoded entry of the owner's event stream. Exactly one of
// the payload fields is set, matching Type.
type ClientEvent struct {
	Type        string
	DeviceState *models.DeviceStateEvent
	Discovery   *models.DiscoveryEvent
	Auth        *models.AuthResult
	Credential  *models.CredentialResult
}

// DeviceListUpdate is one result of the refresh job.
type DeviceListUpdate struct {
	Devices []models.DeviceInfo
	Err     error
}

type clientDeviceService struct {
	client adapter.DeviceManagerClient

	mu          sync.Mutex
	nextSubID   uint16
	activeSubID uint16
	discovering bool

	logger *logger.Logger
}

// NewClientDeviceService constructs a [ClientDeviceService] over client.
func NewClientDeviceService(client adapter.DeviceManagerClient, log *logger.Logger) ClientDeviceService {
	return &clientDeviceService{
		client: client,
		logger: log.WithComponent("client-devices"),
	}
}

func (s *clientDeviceService) OwnerID() string {
	return s.client.OwnerID()
}

func (s *clientDeviceService) TrustedDevices(ctx context.Context) ([]models.DeviceInfo, error) {
	devices, err := s.client.TrustedDevices(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return devices, nil
}

func (s *clientDeviceService) LocalDevice(ctx context.Context) (models.LocalDeviceInfo, error) {
	local, err := s.client.LocalDevice(ctx)
	if err != nil {
		return models.LocalDeviceInfo{}, mapAdapterError(err)
	}
	return local, nil
}

func (s *clientDeviceService) StartDiscovery(ctx context.Context, capability string) (uint16, error) {
	if capability == "" {
		capability = DefaultCapability
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.discovering {
		return 0, ErrDiscoveryRunning
	}

	s.nextSubID++
	info := models.SubscribeInfo{
		SubscribeID: s.nextSubID,
		Mode:        models.DiscoverModeActive,
		Medium:      models.MediumAuto,
		Freq:        models.FreqHigh,
		Capability:  capability,
	}
	if err := s.client.StartDiscovery(ctx, info, ""); err != nil {
		s.logger.Err(err).
			Str("func", "*clientDeviceService.StartDiscovery").
			Uint16("subscribe_id", info.SubscribeID).
			Msg("start discovery failed")
		return 0, mapAdapterError(err)
	}

	s.activeSubID = info.SubscribeID
	s.discovering = true
	return info.SubscribeID, nil
}

func (s *clientDeviceService) StopDiscovery(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.discovering {
		return nil
	}
	if err := s.client.StopDiscovery(ctx, s.activeSubID); err != nil {
		return mapAdapterError(err)
	}
	s.discovering = false
	return nil
}

func (s *clientDeviceService) Authenticate(ctx context.Context, deviceID string) error {
	if deviceID == "" {
		return ErrNoDeviceSelected
	}
	if err := s.client.Authenticate(ctx, deviceID, models.AuthTypePin, ""); err != nil {
		s.logger.Err(err).
			Str("func", "*clientDeviceService.Authenticate").
			Str("device_id", deviceID).
			Msg("authenticate failed")
		return mapAdapterError(err)
	}
	return nil
}

func (s *clientDeviceService) VerifyPin(ctx context.Context, pin string) error {
	if len(pin) != pinLength {
		return ErrInvalidPinFormat
	}
	code, err := strconv.Atoi(pin)
	if err != nil || code < 0 {
		return ErrInvalidPinFormat
	}
	return mapAdapterError(s.client.VerifyPin(ctx, code))
}

func (s *clientDeviceService) Unauthenticate(ctx context.Context, deviceID string) error {
	if deviceID == "" {
		return ErrNoDeviceSelected
	}
	return mapAdapterError(s.client.Unauthenticate(ctx, deviceID))
}

func (s *clientDeviceService) Events(ctx context.Context) (<-chan ClientEvent, error) {
	stream, err := s.client.Events(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	out := make(chan ClientEvent, cap(stream))
	go func() {
		defer close(out)
		for raw := range stream {
			ev, err := decodeStreamEvent(raw)
			if err != nil {
				s.logger.Warn().Err(err).
					Str("func", "*clientDeviceService.Events").
					Str("type", raw.Type).
					Msg("skipping undecodable event")
				continue
			}
			// a discovery that ended on the service side frees the slot
			if ev.Discovery != nil && ev.Discovery.Kind == models.EventDiscoveryStopped {
				s.discoveryEnded(ev.Discovery.SubscribeID)
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (s *clientDeviceService) discoveryEnded(subscribeID uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.discovering && s.activeSubID == subscribeID {
		s.discovering = false
	}
}

func decodeStreamEvent(raw models.StreamEvent) (ClientEvent, error) {
	ev := ClientEvent{Type: raw.Type}

	var target any
	switch raw.Type {
	case models.EventTypeDeviceState:
		ev.DeviceState = new(models.DeviceStateEvent)
		target = ev.DeviceState
	case models.EventTypeDiscovery:
		ev.Discovery = new(models.DiscoveryEvent)
		target = ev.Discovery
	case models.EventTypeAuthResult:
		ev.Auth = new(models.AuthResult)
		target = ev.Auth
	case models.EventTypeCredential:
		ev.Credential = new(models.CredentialResult)
		target = ev.Credential
	default:
		return ClientEvent{}, fmt.Errorf("%w: %q", ErrUnknownEventType, raw.Type)
	}

	if err := json.Unmarshal(raw.Payload, target); err != nil {
		return ClientEvent{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return ev, nil
}
