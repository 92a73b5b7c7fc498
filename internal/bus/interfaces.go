// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bus

//go:generate mockgen -source=interfaces.go -destination=../mock/bus_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-device-keeper/models"
)

// Transport is the device bus: discovery, publish, identity lookups and the
// sessions pairing messages travel over. Calls return once the request has
// been accepted; outcomes arrive later as events on the Connector.
type Transport interface {
	StartDiscovery(ctx context.Context, pkgName string, info models.SubscribeInfo) error
	StopDiscovery(ctx context.Context, pkgName string, subscribeID uint16) error
	PublishDiscovery(ctx context.Context, pkgName string, info models.PublishInfo) error
	StopPublish(ctx context.Context, pkgName string, publishID int32) error

	GetUdidByNetworkID(ctx context.Context, networkID string) (string, error)
	GetUuidByNetworkID(ctx context.Context, networkID string) (string, error)
	GetTrustedDevices(ctx context.Context) ([]models.NodeBasicInfo, error)
	GetLocalDevice(ctx context.Context) (models.LocalDeviceInfo, error)

	OpenAuthSession(ctx context.Context, deviceID string, addr models.ConnectAddr) (int64, error)
	CloseAuthSession(ctx context.Context, sessionID int64) error
	SendSessionMessage(ctx context.Context, sessionID int64, data string) error
}

// StateHandler receives device online, offline and change events.
type StateHandler interface {
	HandleDeviceOnline(info models.DeviceInfo)
	HandleDeviceOffline(info models.DeviceInfo)
	HandleDeviceChanged(info models.DeviceInfo)
}

// DiscoveryHandler receives the events of a running discovery.
type DiscoveryHandler interface {
	OnDeviceFound(device models.DiscoveredDevice)
	OnDiscoverySuccess(subscribeID uint16)
	OnDiscoveryFailed(subscribeID uint16, reason int)
}

// PublishHandler receives publish results.
type PublishHandler interface {
	OnPublishResult(publishID int32, code int)
}

// SessionHandler receives auth session events.
type SessionHandler interface {
	OnSessionOpened(sessionID int64, side, result int)
	OnSessionClosed(sessionID int64)
	OnDataReceived(sessionID int64, data string)
}
