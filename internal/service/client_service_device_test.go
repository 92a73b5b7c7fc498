// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-device-keeper/internal/adapter"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/internal/mock"
	"github.com/MKhiriev/go-device-keeper/internal/service"
	"github.com/MKhiriev/go-device-keeper/models"
)

func newClientDevices(t *testing.T) (service.ClientDeviceService, *mock.MockDeviceManagerClient) {
	t.Helper()
	client := mock.NewMockDeviceManagerClient(gomock.NewController(t))
	return service.NewClientDeviceService(client, logger.Nop()), client
}

// ── NewClientServices ────────────────────────────────────────────────────────

func TestNewClientServices(t *testing.T) {
	_, err := service.NewClientServices(nil, logger.Nop())
	assert.Error(t, err)

	client := mock.NewMockDeviceManagerClient(gomock.NewController(t))
	svcs, err := service.NewClientServices(client, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, svcs.Devices)
	assert.NotNil(t, svcs.RefreshJob)
}

// ── Discovery ────────────────────────────────────────────────────────────────

func TestClientDeviceService_Discovery(t *testing.T) {
	svc, client := newClientDevices(t)
	ctx := context.Background()

	client.EXPECT().
		StartDiscovery(ctx, gomock.Any(), "").
		DoAndReturn(func(_ context.Context, info models.SubscribeInfo, _ string) error {
			assert.Equal(t, service.DefaultCapability, info.Capability)
			assert.Equal(t, models.DiscoverModeActive, info.Mode)
			return nil
		})

	id, err := svc.StartDiscovery(ctx, "")
	require.NoError(t, err)
	assert.NotZero(t, id)

	_, err = svc.StartDiscovery(ctx, "")
	assert.ErrorIs(t, err, service.ErrDiscoveryRunning)

	client.EXPECT().StopDiscovery(ctx, id).Return(nil)
	require.NoError(t, svc.StopDiscovery(ctx))

	// nothing running: no call
	require.NoError(t, svc.StopDiscovery(ctx))
}

func TestClientDeviceService_StartDiscovery_NewIDEachTime(t *testing.T) {
	svc, client := newClientDevices(t)
	ctx := context.Background()

	var ids []uint16
	client.EXPECT().StartDiscovery(ctx, gomock.Any(), "").
		DoAndReturn(func(_ context.Context, info models.SubscribeInfo, _ string) error {
			ids = append(ids, info.SubscribeID)
			return nil
		}).Times(2)
	client.EXPECT().StopDiscovery(ctx, gomock.Any()).Return(nil)

	_, err := svc.StartDiscovery(ctx, "cap")
	require.NoError(t, err)
	require.NoError(t, svc.StopDiscovery(ctx))
	_, err = svc.StartDiscovery(ctx, "cap")
	require.NoError(t, err)

	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestClientDeviceService_StartDiscovery_Failure(t *testing.T) {
	svc, client := newClientDevices(t)
	ctx := context.Background()

	client.EXPECT().StartDiscovery(ctx, gomock.Any(), "").
		Return(fmt.Errorf("%w: %w", adapter.ErrConflict, models.ErrAlreadyInProgress))

	_, err := svc.StartDiscovery(ctx, "")
	assert.ErrorIs(t, err, service.ErrPairingBusy)
	assert.ErrorIs(t, err, models.ErrAlreadyInProgress)

	// the failed start left no discovery behind
	require.NoError(t, svc.StopDiscovery(ctx))
}

// ── Pairing ──────────────────────────────────────────────────────────────────

func TestClientDeviceService_Authenticate(t *testing.T) {
	svc, client := newClientDevices(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Authenticate(ctx, ""), service.ErrNoDeviceSelected)

	client.EXPECT().Authenticate(ctx, "udid-peer", models.AuthTypePin, "").Return(nil)
	assert.NoError(t, svc.Authenticate(ctx, "udid-peer"))

	client.EXPECT().Authenticate(ctx, "udid-gone", models.AuthTypePin, "").
		Return(fmt.Errorf("%w: %w", adapter.ErrNotFound, models.ErrNotFound))
	assert.ErrorIs(t, svc.Authenticate(ctx, "udid-gone"), service.ErrDeviceNotFound)
}

func TestClientDeviceService_VerifyPin(t *testing.T) {
	tests := []struct {
		name    string
		pin     string
		call    bool
		callErr error
		wantErr error
	}{
		{name: "ok", pin: "012345", call: true},
		{name: "too short", pin: "1234", wantErr: service.ErrInvalidPinFormat},
		{name: "not digits", pin: "12a456", wantErr: service.ErrInvalidPinFormat},
		{name: "signed", pin: "-12345", wantErr: service.ErrInvalidPinFormat},
		{
			name:    "mismatch",
			pin:     "999999",
			call:    true,
			callErr: fmt.Errorf("%w: %w", adapter.ErrUnauthorized, models.ErrPinMismatch),
			wantErr: service.ErrWrongPin,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, client := newClientDevices(t)
			if tt.call {
				client.EXPECT().VerifyPin(gomock.Any(), gomock.Any()).Return(tt.callErr)
			}

			err := svc.VerifyPin(context.Background(), tt.pin)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientDeviceService_VerifyPin_LeadingZero(t *testing.T) {
	svc, client := newClientDevices(t)
	client.EXPECT().VerifyPin(gomock.Any(), 12345).Return(nil)
	assert.NoError(t, svc.VerifyPin(context.Background(), "012345"))
}

func TestClientDeviceService_Unauthenticate(t *testing.T) {
	svc, client := newClientDevices(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Unauthenticate(ctx, ""), service.ErrNoDeviceSelected)

	client.EXPECT().Unauthenticate(ctx, "udid-peer").Return(adapter.ErrTooManyRequests)
	assert.ErrorIs(t, svc.Unauthenticate(ctx, "udid-peer"), service.ErrRateLimited)
}

// ── Devices ──────────────────────────────────────────────────────────────────

func TestClientDeviceService_Devices(t *testing.T) {
	svc, client := newClientDevices(t)
	ctx := context.Background()

	client.EXPECT().OwnerID().Return("console")
	assert.Equal(t, "console", svc.OwnerID())

	client.EXPECT().TrustedDevices(ctx).Return([]models.DeviceInfo{{DeviceID: "a"}}, nil)
	devices, err := svc.TrustedDevices(ctx)
	require.NoError(t, err)
	assert.Len(t, devices, 1)

	client.EXPECT().LocalDevice(ctx).Return(models.LocalDeviceInfo{}, adapter.ErrBadGateway)
	_, err = svc.LocalDevice(ctx)
	assert.ErrorIs(t, err, service.ErrServiceUnavailable)
}

// ── Events ───────────────────────────────────────────────────────────────────

func streamEvent(t *testing.T, typ string, payload any) models.StreamEvent {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return models.StreamEvent{Type: typ, OwnerID: "console", Payload: raw}
}

func TestClientDeviceService_Events(t *testing.T) {
	svc, client := newClientDevices(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := make(chan models.StreamEvent, 8)
	stream <- streamEvent(t, models.EventTypeDiscovery, models.DiscoveryEvent{
		Kind:   models.EventDeviceFound,
		Device: &models.DeviceInfo{DeviceID: "udid-peer"},
	})
	stream <- models.StreamEvent{Type: "unknown", Payload: json.RawMessage(`{}`)}
	stream <- models.StreamEvent{Type: models.EventTypeAuthResult, Payload: json.RawMessage(`[1,2]`)}
	stream <- streamEvent(t, models.EventTypeAuthResult, models.AuthResult{DeviceID: "udid-peer", PinCode: 123456})
	stream <- streamEvent(t, models.EventTypeDeviceState, models.DeviceStateEvent{State: models.DeviceStateOnline})
	stream <- streamEvent(t, models.EventTypeCredential, models.CredentialResult{Action: 1})
	close(stream)

	client.EXPECT().Events(ctx).Return((<-chan models.StreamEvent)(stream), nil)

	events, err := svc.Events(ctx)
	require.NoError(t, err)

	var got []service.ClientEvent
	for ev := range events {
		got = append(got, ev)
	}
	require.Len(t, got, 4, "undecodable events are skipped")

	require.NotNil(t, got[0].Discovery)
	assert.Equal(t, "udid-peer", got[0].Discovery.Device.DeviceID)
	require.NotNil(t, got[1].Auth)
	assert.Equal(t, 123456, got[1].Auth.PinCode)
	require.NotNil(t, got[2].DeviceState)
	assert.Equal(t, models.DeviceStateOnline, got[2].DeviceState.State)
	require.NotNil(t, got[3].Credential)
}

func TestClientDeviceService_Events_DiscoveryStoppedFreesSlot(t *testing.T) {
	svc, client := newClientDevices(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var subID uint16
	client.EXPECT().StartDiscovery(gomock.Any(), gomock.Any(), "").
		DoAndReturn(func(_ context.Context, info models.SubscribeInfo, _ string) error {
			subID = info.SubscribeID
			return nil
		}).Times(2)

	_, err := svc.StartDiscovery(ctx, "")
	require.NoError(t, err)

	stream := make(chan models.StreamEvent, 1)
	stream <- streamEvent(t, models.EventTypeDiscovery, models.DiscoveryEvent{
		Kind:        models.EventDiscoveryStopped,
		SubscribeID: subID,
	})
	close(stream)
	client.EXPECT().Events(ctx).Return((<-chan models.StreamEvent)(stream), nil)

	events, err := svc.Events(ctx)
	require.NoError(t, err)
	for range events {
	}

	_, err = svc.StartDiscovery(ctx, "")
	assert.NoError(t, err)
}

func TestClientDeviceService_Events_OpenFails(t *testing.T) {
	svc, client := newClientDevices(t)
	client.EXPECT().Events(gomock.Any()).Return(nil, adapter.ErrStreamClosed)

	_, err := svc.Events(context.Background())
	assert.ErrorIs(t, err, service.ErrServiceUnavailable)
}
