// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credential

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-device-keeper/models"
)

// CredentialGroups is the credential-style slice of the trust-group
// connector.
type CredentialGroups interface {
	CreateGroup(ctx context.Context, requestID int64, groupType models.GroupType, userID, credential string) error
	DeleteGroupByUser(ctx context.Context, requestID int64, userID string, groupType models.GroupType) error
	AddMultiMembers(ctx context.Context, groupType models.GroupType, userID string, devices []models.GroupMember) error
	DelMultiMembers(ctx context.Context, groupType models.GroupType, userID string, devices []models.GroupMember) error
	GetRegisterInfo(ctx context.Context, params models.RequestCredentialParams) (models.RegisterInfo, error)
}

// CredentialListener receives the outcome of credential imports and
// deletes.
type CredentialListener interface {
	OnCredentialResult(result models.CredentialResult)
}
