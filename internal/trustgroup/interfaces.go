// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package trustgroup

//go:generate mockgen -source=interfaces.go -destination=../mock/trustgroup_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-device-keeper/models"
)

// Callback receives the outcome of async group subsystem calls. requestID is
// the id passed to the call that produced the outcome.
type Callback interface {
	OnFinish(requestID int64, op models.GroupOperation, payload string)
	OnError(requestID int64, op models.GroupOperation, code int, payload string)
}

// GroupManager is the async trust-group subsystem.
//
// CreateGroup, DeleteGroup, AddMember and DeleteMember return once the call
// is accepted and report the outcome later through the registered Callback.
// Every other method is synchronous.
type GroupManager interface {
	RegisterCallback(cb Callback)

	CreateGroup(ctx context.Context, requestID int64, params models.CreateGroupParams) error
	DeleteGroup(ctx context.Context, requestID int64, groupID string) error
	AddMember(ctx context.Context, requestID int64, params models.AddMemberParams) error
	DeleteMember(ctx context.Context, requestID int64, groupID, deviceID string) error

	AddMultiMembers(ctx context.Context, params models.MultiMembersParams) error
	DelMultiMembers(ctx context.Context, params models.MultiMembersParams) error

	GetGroupInfo(ctx context.Context, query models.GroupQuery) ([]models.GroupInfo, error)
	GetRelatedGroups(ctx context.Context, deviceID string) ([]models.GroupInfo, error)
	IsDeviceInGroup(ctx context.Context, groupID, deviceID string) (bool, error)
	GetRegisterInfo(ctx context.Context, params models.RequestCredentialParams) (models.RegisterInfo, error)
}

// ResultListener receives credential-style create and disband outcomes.
type ResultListener interface {
	OnGroupResult(result models.GroupResult)
}

// PairingObserver receives PIN-style group events.
type PairingObserver interface {
	OnGroupCreated(requestID int64, code int, payload string)
	OnMemberJoin(requestID int64, code int)
}
