// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GroupType distinguishes how members of a trust group are related.
type GroupType int

const (
	GroupTypeInvalid          GroupType = -1
	GroupTypeAll              GroupType = 0
	GroupTypeIdenticalAccount GroupType = 1
	GroupTypePeerToPeer       GroupType = 256
	GroupTypeAcrossAccount    GroupType = 1282
)

func (t GroupType) String() string {
	switch t {
	case GroupTypeAll:
		return "all"
	case GroupTypeIdenticalAccount:
		return "identical_account"
	case GroupTypePeerToPeer:
		return "peer_to_peer"
	case GroupTypeAcrossAccount:
		return "across_account"
	default:
		return "invalid"
	}
}

// Concrete reports whether t names a single kind of group a member can
// belong to.
func (t GroupType) Concrete() bool {
	switch t {
	case GroupTypeIdenticalAccount, GroupTypePeerToPeer, GroupTypeAcrossAccount:
		return true
	default:
		return false
	}
}

// GroupVisibility controls who may see a group.
type GroupVisibility int

const (
	GroupVisibilityPrivate GroupVisibility = 0
	GroupVisibilityPublic  GroupVisibility = -1
)

// GroupOperation identifies which async trust-group call a callback reports.
type GroupOperation int

const (
	OpGroupCreate  GroupOperation = 0
	OpGroupDisband GroupOperation = 1
	OpMemberInvite GroupOperation = 2
	OpMemberJoin   GroupOperation = 3
	OpMemberDelete GroupOperation = 4
)

func (o GroupOperation) String() string {
	switch o {
	case OpGroupCreate:
		return "group_create"
	case OpGroupDisband:
		return "group_disband"
	case OpMemberInvite:
		return "member_invite"
	case OpMemberJoin:
		return "member_join"
	case OpMemberDelete:
		return "member_delete"
	default:
		return "unknown"
	}
}

// NetworkStyle selects which completion path a trust-group operation uses.
type NetworkStyle int

const (
	// PinCodeNetwork is interactive pairing confirmed by a PIN code.
	PinCodeNetwork NetworkStyle = 0
	// CredentialNetwork is pairing backed by pre-provisioned credentials.
	CredentialNetwork NetworkStyle = 1
)

func (s NetworkStyle) String() string {
	if s == CredentialNetwork {
		return "credential"
	}
	return "pin_code"
}

// GroupInfo describes one trust group known to the group subsystem.
type GroupInfo struct {
	GroupName       string          `json:"groupName" db:"group_name"`
	GroupID         string          `json:"groupId" db:"group_id"`
	GroupOwner      string          `json:"groupOwner" db:"group_owner"`
	GroupType       GroupType       `json:"groupType" db:"group_type"`
	GroupVisibility GroupVisibility `json:"groupVisibility" db:"group_visibility"`
	UserID          string          `json:"userId" db:"user_id"`
}

// GroupQuery filters [GroupInfo] lookups. Zero fields match everything.
type GroupQuery struct {
	GroupID    string    `json:"groupId,omitempty"`
	GroupName  string    `json:"groupName,omitempty"`
	GroupOwner string    `json:"groupOwner,omitempty"`
	GroupType  GroupType `json:"groupType,omitempty"`
	UserID     string    `json:"userId,omitempty"`
}

// GroupMember is a device that joined a group.
type GroupMember struct {
	GroupID  string `json:"groupId" db:"group_id"`
	DeviceID string `json:"deviceId" db:"device_id"`
	UserID   string `json:"userId,omitempty" db:"user_id"`

	// Credential holds the member's public key material for credential
	// networks. Empty for PIN pairing.
	Credential string `json:"credential,omitempty" db:"credential"`
}

// CreateGroupParams is passed to the async group subsystem.
type CreateGroupParams struct {
	GroupName       string          `json:"groupName"`
	GroupType       GroupType       `json:"groupType"`
	GroupVisibility GroupVisibility `json:"groupVisibility"`
	UserID          string          `json:"userId,omitempty"`
	DeviceID        string          `json:"deviceId"`
	Credential      string          `json:"credential,omitempty"`
	ExpireTime      int             `json:"expireTime,omitempty"`
}

// AddMemberParams is passed to the async group subsystem.
type AddMemberParams struct {
	GroupID     string    `json:"groupId"`
	GroupType   GroupType `json:"groupType"`
	DeviceID    string    `json:"deviceId"`
	PinCode     string    `json:"pinCode,omitempty"`
	ConnectInfo string    `json:"connectParams,omitempty"`
	IsAdmin     bool      `json:"isAdmin"`
}

// MultiMembersParams adds or removes several credential members at once.
type MultiMembersParams struct {
	GroupType GroupType     `json:"groupType"`
	UserID    string        `json:"userId"`
	Devices   []GroupMember `json:"deviceList"`
}

// GroupResult is delivered to the credential result listener for
// credential-style create and disband operations.
type GroupResult struct {
	RequestID int64          `json:"requestId"`
	Operation GroupOperation `json:"operationCode"`
	Code      int            `json:"code"`
	Payload   string         `json:"payload"`
}
