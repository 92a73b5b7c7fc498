// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pairing

//go:generate mockgen -source=interfaces.go -destination=../mock/pairing_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-device-keeper/models"
)

// SessionBus is the part of the bus connector a pairing session talks
// through.
type SessionBus interface {
	HaveDeviceInMap(deviceID string) bool
	OpenAuthSession(ctx context.Context, deviceID string) (int64, error)
	CloseAuthSession(ctx context.Context, sessionID int64) error
	SendSessionMessage(ctx context.Context, sessionID int64, data string) error
}

// Groups is the PIN-style slice of the trust-group connector.
type Groups interface {
	CreateGroupByName(ctx context.Context, requestID int64, groupName string) (string, error)
	AddMember(ctx context.Context, requestID int64, groupID, deviceID, pinCode, connectInfo string) error
	DeleteGroup(ctx context.Context, groupID string) error
	GetRelatedGroups(ctx context.Context, deviceID string) ([]models.GroupInfo, error)
	GetSyncGroupList(groups []models.GroupInfo) []string
	SyncGroups(ctx context.Context, deviceID string, remoteGroupIDs []string) error
}

// AuthListener receives pairing results for both roles.
type AuthListener interface {
	OnAuthResult(result models.AuthResult)
}
