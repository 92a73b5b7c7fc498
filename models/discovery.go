// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DiscoverMode is active (probe) or passive (listen).
type DiscoverMode int

const (
	DiscoverModePassive DiscoverMode = 0x55
	DiscoverModeActive  DiscoverMode = 0xAA
)

// ExchangeMedium selects the physical medium used to discover or publish.
type ExchangeMedium int

const (
	MediumAuto ExchangeMedium = iota
	MediumBLE
	MediumCOAP
	MediumUSB
)

// ExchangeFreq is the discovery duty cycle.
type ExchangeFreq int

const (
	FreqLow ExchangeFreq = iota
	FreqMid
	FreqHigh
	FreqSuperHigh
)

// SubscribeInfo describes one discovery request.
type SubscribeInfo struct {
	SubscribeID   uint16         `json:"subscribeId"`
	Mode          DiscoverMode   `json:"mode"`
	Medium        ExchangeMedium `json:"medium"`
	Freq          ExchangeFreq   `json:"freq"`
	IsSameAccount bool           `json:"isSameAccount"`
	IsWakeRemote  bool           `json:"isWakeRemote"`
	Capability    string         `json:"capability"`
}

// PublishInfo describes one publish request.
type PublishInfo struct {
	PublishID  int32          `json:"publishId"`
	Mode       DiscoverMode   `json:"mode"`
	Freq       ExchangeFreq   `json:"freq"`
	Ranging    bool           `json:"ranging"`
	Medium     ExchangeMedium `json:"medium"`
	Capability string         `json:"capability"`
}

// DiscoveryContext occupies the process-wide discovery admission slot.
type DiscoveryContext struct {
	OwnerID          string        `json:"ownerId"`
	RequestParams    SubscribeInfo `json:"requestParams"`
	SessionID        string        `json:"sessionId"`
	FilterExpression string        `json:"filterExpression,omitempty"`
}

// PublishContext occupies the process-wide publish admission slot.
type PublishContext struct {
	OwnerID       string      `json:"ownerId"`
	RequestParams PublishInfo `json:"requestParams"`
	SessionID     string      `json:"sessionId"`
}

// DiscoveryEventKind tags events delivered to a discovery or publish owner.
type DiscoveryEventKind string

const (
	EventDeviceFound      DiscoveryEventKind = "device_found"
	EventDiscoverySuccess DiscoveryEventKind = "discovery_success"
	EventDiscoveryFailed  DiscoveryEventKind = "discovery_failed"
	EventDiscoveryStopped DiscoveryEventKind = "discovery_stopped"
	EventPublishResult    DiscoveryEventKind = "publish_result"
	EventPublishStopped   DiscoveryEventKind = "publish_stopped"
)

// Stop reasons attached to stopped events.
const (
	StopReasonRequested    = "requested"
	StopReasonForceStopped = "force_stopped"
	StopReasonTimeout      = "timeout"
	StopReasonFailed       = "failed"
)

// DiscoveryEvent is delivered to the owner holding a slot.
type DiscoveryEvent struct {
	Kind        DiscoveryEventKind `json:"kind"`
	OwnerID     string             `json:"ownerId"`
	SubscribeID uint16             `json:"subscribeId,omitempty"`
	PublishID   int32              `json:"publishId,omitempty"`
	Device      *DeviceInfo        `json:"device,omitempty"`
	Reason      string             `json:"reason,omitempty"`
	Code        int                `json:"code,omitempty"`
}
