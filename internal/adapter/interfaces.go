// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound clients of go-device-keeper.
//
// The daemon side talks to the device bus daemon ([NewHTTPBusTransport]) and
// keeps the trust-group registry in SQL ([NewLocalGroupManager]). The
// terminal client reaches the daemon's service API through
// [NewHTTPDeviceManagerClient].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError. When the reply carries a result code, the matching
// models error is wrapped too, so callers can test for both with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-device-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// DeviceManagerClient is the service API as the terminal client uses it.
// Every call is made on behalf of one owner fixed at construction.
type DeviceManagerClient interface {
	OwnerID() string

	TrustedDevices(ctx context.Context) ([]models.DeviceInfo, error)
	LocalDevice(ctx context.Context) (models.LocalDeviceInfo, error)

	StartDiscovery(ctx context.Context, info models.SubscribeInfo, filter string) error
	StopDiscovery(ctx context.Context, subscribeID uint16) error

	Authenticate(ctx context.Context, deviceID string, authType int, extra string) error
	VerifyPin(ctx context.Context, pinCode int) error
	Unauthenticate(ctx context.Context, deviceID string) error

	RegisterStateCallback(ctx context.Context, extra string) error
	UnregisterStateCallback(ctx context.Context) error

	// Events streams the owner's events until ctx is done or the server
	// ends the stream. The channel is closed in both cases.
	Events(ctx context.Context) (<-chan models.StreamEvent, error)
}
