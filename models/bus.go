// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NodeBasicInfo is pushed by the transport on online, offline and change
// events. NetworkID is session-local; it resolves to a stable udid and uuid
// through separate lookups.
type NodeBasicInfo struct {
	NetworkID    string `json:"networkId"`
	DeviceName   string `json:"deviceName"`
	DeviceTypeID int    `json:"deviceTypeId"`
}

// Session sides reported by the transport.
const (
	SessionSideServer = 0
	SessionSideClient = 1
)

// SessionOpenedEvent reports the outcome of opening an auth session.
type SessionOpenedEvent struct {
	SessionID int64 `json:"sessionId"`
	Side      int   `json:"side"`
	Result    int   `json:"result"`
}

// SessionClosedEvent reports a closed auth session.
type SessionClosedEvent struct {
	SessionID int64 `json:"sessionId"`
}

// SessionDataEvent carries one pairing message received on a session.
type SessionDataEvent struct {
	SessionID int64  `json:"sessionId"`
	Data      string `json:"data"`
}

// DeviceFoundEvent is pushed while a discovery is running.
type DeviceFoundEvent struct {
	Device DiscoveredDevice `json:"device"`
}

// DiscoveryResultEvent reports whether a subscription started.
type DiscoveryResultEvent struct {
	SubscribeID uint16 `json:"subscribeId"`
	Success     bool   `json:"success"`
	Reason      int    `json:"reason,omitempty"`
}

// PublishResultEvent reports the outcome of a publish call.
type PublishResultEvent struct {
	PublishID int32 `json:"publishId"`
	Code      int   `json:"code"`
}
