// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presence

//go:generate mockgen -source=interfaces.go -destination=../mock/presence_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-device-keeper/models"
)

// Resolver maps the transport's session-local network id to stable ids.
type Resolver interface {
	GetUdidByNetworkID(ctx context.Context, networkID string) (string, error)
	GetUuidByNetworkID(ctx context.Context, networkID string) (string, error)
}

// GroupCleaner revokes the trust of a device that stayed offline too long.
type GroupCleaner interface {
	DeleteTimeOutGroup(ctx context.Context, deviceID string) (int, error)
}

// Notifier delivers a state event to one registered owner.
type Notifier interface {
	NotifyDeviceState(ev models.DeviceStateEvent)
}
