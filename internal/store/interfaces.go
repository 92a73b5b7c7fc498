package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-device-keeper/models"
)

// GroupRepository persists trust groups.
type GroupRepository interface {
	CreateGroup(ctx context.Context, group models.GroupInfo) error
	// DeleteGroup removes the group with its members and credentials.
	DeleteGroup(ctx context.Context, groupID string) error
	GetGroup(ctx context.Context, groupID string) (models.GroupInfo, error)
	FindGroups(ctx context.Context, query models.GroupQuery) ([]models.GroupInfo, error)
	// FindRelatedGroups returns the groups deviceID is a member of.
	FindRelatedGroups(ctx context.Context, deviceID string) ([]models.GroupInfo, error)
}

// MemberRepository persists group membership.
type MemberRepository interface {
	// AddMembers inserts all members or none.
	AddMembers(ctx context.Context, members []models.GroupMember) error
	// DeleteMembers removes the devices from the group. Unknown devices are
	// ignored.
	DeleteMembers(ctx context.Context, groupID string, deviceIDs []string) (int64, error)
	IsMember(ctx context.Context, groupID, deviceID string) (bool, error)
	ListMembers(ctx context.Context, groupID string) ([]models.GroupMember, error)
}

// CredentialRepository persists credentials bound to groups.
type CredentialRepository interface {
	SaveCredential(ctx context.Context, credential models.StoredCredential) error
	ListCredentials(ctx context.Context, groupID string) ([]models.StoredCredential, error)
	DeleteCredentials(ctx context.Context, groupID, peerDeviceID string) error
}
