// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package discovery

//go:generate mockgen -source=interfaces.go -destination=../mock/discovery_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-device-keeper/models"
)

// Bus is the part of the device bus transport the admission managers drive.
type Bus interface {
	StartDiscovery(ctx context.Context, pkgName string, info models.SubscribeInfo) error
	StopDiscovery(ctx context.Context, pkgName string, subscribeID uint16) error
	PublishDiscovery(ctx context.Context, pkgName string, info models.PublishInfo) error
	StopPublish(ctx context.Context, pkgName string, publishID int32) error
}

// Listener receives the events addressed to the slot owner.
type Listener interface {
	OnDiscoveryEvent(ev models.DiscoveryEvent)
}
