// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Result is the body of every service API response.
type Result struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

// StartDiscoveryRequest is the body of POST /api/discovery/start.
type StartDiscoveryRequest struct {
	OwnerID       string        `json:"ownerId"`
	SubscribeInfo SubscribeInfo `json:"subscribeInfo"`
	Filter        string        `json:"filterOptions,omitempty"`
}

// StopDiscoveryRequest is the body of POST /api/discovery/stop.
type StopDiscoveryRequest struct {
	OwnerID     string `json:"ownerId"`
	SubscribeID uint16 `json:"subscribeId"`
}

// PublishRequest is the body of POST /api/publish/start.
type PublishRequest struct {
	OwnerID     string      `json:"ownerId"`
	PublishInfo PublishInfo `json:"publishInfo"`
}

// UnpublishRequest is the body of POST /api/publish/stop.
type UnpublishRequest struct {
	OwnerID   string `json:"ownerId"`
	PublishID int32  `json:"publishId"`
}

// UnauthenticateRequest is the body of POST /api/auth/unauthenticate.
type UnauthenticateRequest struct {
	OwnerID  string `json:"ownerId"`
	DeviceID string `json:"deviceId"`
}

// VerifyAuthRequest is the body of POST /api/auth/verify.
type VerifyAuthRequest struct {
	OwnerID   string `json:"ownerId"`
	AuthParam string `json:"authParam"`
}

// StateCallbackRequest is the body of the state callback endpoints.
type StateCallbackRequest struct {
	OwnerID string `json:"ownerId"`
	Extra   string `json:"extra,omitempty"`
}

// CredentialPayloadRequest is the body of the credential endpoints.
type CredentialPayloadRequest struct {
	OwnerID string `json:"ownerId"`
	Payload string `json:"payload"`
}

// NotifyEventRequest is the body of POST /api/events/notify.
type NotifyEventRequest struct {
	OwnerID string `json:"ownerId"`
	EventID int    `json:"eventId"`
	Event   string `json:"event"`
}

// NotifyEventDeviceReady is the only event id accepted by NotifyEvent.
const NotifyEventDeviceReady = 1

// Event is one entry of the per-owner event stream.
type Event struct {
	Type    string `json:"type"`
	OwnerID string `json:"ownerId"`
	Payload any    `json:"payload"`
}

// Event stream types.
const (
	EventTypeDeviceState = "device_state"
	EventTypeDiscovery   = "discovery"
	EventTypeAuthResult  = "auth_result"
	EventTypeCredential  = "credential"
)

// RegisterInfoResponse is the body of POST /api/credential/request.
type RegisterInfoResponse struct {
	Result
	RegisterInfo string `json:"registerInfo"`
}

// IdentityResponse carries one identity lookup result.
type IdentityResponse struct {
	Value string `json:"value"`
}

// OwnerRequest is the body of the endpoints that need only the owner id.
type OwnerRequest struct {
	OwnerID string `json:"ownerId"`
}

// OwnerHeader carries the caller's owner id on every service API request.
const OwnerHeader = "X-Owner-ID"

// StreamEvent is an event stream entry as a client reads it; Payload is
// decoded according to Type.
type StreamEvent struct {
	Type    string          `json:"type"`
	OwnerID string          `json:"ownerId"`
	Payload json.RawMessage `json:"payload"`
}
