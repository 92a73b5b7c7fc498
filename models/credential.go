// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credential process types.
const (
	ProcessTypeLocal  = 1
	ProcessTypeRemote = 2
)

// Credential auth types.
const (
	CredentialAuthSameAccount  = 1
	CredentialAuthCrossAccount = 2
)

// Credential kinds.
const (
	CredentialTypeSymmetric  = 1
	CredentialTypeAsymmetric = 2
)

// CredentialData is one credential entry of an import or delete request.
type CredentialData struct {
	CredentialType  int    `json:"credentialType"`
	CredentialID    string `json:"credentialId"`
	ServerPk        string `json:"serverPk,omitempty"`
	PkInfoSignature string `json:"pkInfoSignature,omitempty"`
	PkInfo          string `json:"pkInfo,omitempty"`
	AuthCode        string `json:"authCode,omitempty"`
	PeerDeviceID    string `json:"peerDeviceId"`
}

// CredentialRequest is the parsed payload of ImportCredential and
// DeleteCredential.
type CredentialRequest struct {
	ProcessType    int              `json:"processType"`
	AuthType       int              `json:"authType"`
	UserID         string           `json:"userId"`
	DeviceID       string           `json:"deviceId,omitempty"`
	PeerUserID     string           `json:"peerUserId,omitempty"`
	CredentialData []CredentialData `json:"credentialData"`
}

// RequestCredentialParams is the parsed payload of RequestCredential.
type RequestCredentialParams struct {
	UserID  string `json:"userId"`
	Version string `json:"version"`
}

// RegisterInfo is returned by RequestCredential. CertChain is produced by
// the key-attestation service over the device public key claims.
type RegisterInfo struct {
	Version   string   `json:"version"`
	UserID    string   `json:"userId"`
	DeviceID  string   `json:"deviceId"`
	DevicePk  string   `json:"devicePk"`
	CertChain []string `json:"certChain"`
}

// StoredCredential is a credential persisted by the local group registry.
type StoredCredential struct {
	CredentialID   string `json:"credentialId" db:"credential_id"`
	GroupID        string `json:"groupId" db:"group_id"`
	UserID         string `json:"userId" db:"user_id"`
	PeerDeviceID   string `json:"peerDeviceId" db:"peer_device_id"`
	CredentialType int    `json:"credentialType" db:"credential_type"`
	PkInfo         string `json:"pkInfo,omitempty" db:"pk_info"`
	SealedAuthCode []byte `json:"-" db:"sealed_auth_code"`
}

// CredentialResult is delivered to the owner registered for credential
// callbacks.
type CredentialResult struct {
	OwnerID string `json:"ownerId"`
	Action  int    `json:"action"`
	Result  string `json:"result"`
}
