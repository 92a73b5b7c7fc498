// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DeviceState is the transition reported to state listeners.
type DeviceState int

const (
	DeviceStateUnknown DeviceState = iota - 1
	DeviceStateOnline
	DeviceStateReady
	DeviceStateOffline
	DeviceStateInfoChanged
)

func (s DeviceState) String() string {
	switch s {
	case DeviceStateOnline:
		return "online"
	case DeviceStateReady:
		return "ready"
	case DeviceStateOffline:
		return "offline"
	case DeviceStateInfoChanged:
		return "info_changed"
	default:
		return "unknown"
	}
}

// AuthForm describes how a device is trusted by the local one.
type AuthForm int

const (
	AuthFormInvalid AuthForm = iota - 1
	AuthFormPeerToPeer
	AuthFormIdenticalAccount
	AuthFormAcrossAccount
)

// DeviceInfo is the transport-agnostic view of a peer handed to listeners.
type DeviceInfo struct {
	DeviceID     string   `json:"deviceId"`
	DeviceName   string   `json:"deviceName"`
	DeviceTypeID int      `json:"deviceTypeId"`
	NetworkID    string   `json:"networkId"`
	Range        int      `json:"range"`
	AuthForm     AuthForm `json:"authForm"`
	ExtraData    string   `json:"extraData,omitempty"`
}

// ConnectAddr is one way to reach a discovered device.
type ConnectAddr struct {
	Type ConnectionAddrType `json:"type"`
	Addr string             `json:"addr"`
	Port int                `json:"port,omitempty"`
}

// ConnectionAddrType enumerates physical transports in preference order.
type ConnectionAddrType int

const (
	ConnectionAddrWLAN ConnectionAddrType = iota
	ConnectionAddrBR
	ConnectionAddrBLE
	ConnectionAddrETH
)

func (t ConnectionAddrType) String() string {
	switch t {
	case ConnectionAddrWLAN:
		return "wlan"
	case ConnectionAddrBR:
		return "br"
	case ConnectionAddrBLE:
		return "ble"
	case ConnectionAddrETH:
		return "eth"
	default:
		return "unknown"
	}
}

// DiscoveredDevice is what the transport reports while discovering.
type DiscoveredDevice struct {
	DeviceID     string        `json:"devId"`
	DeviceName   string        `json:"devName"`
	DeviceTypeID int           `json:"devType"`
	Range        int           `json:"range"`
	Addrs        []ConnectAddr `json:"addr"`
	IsOnline     bool          `json:"isOnline"`
}

// DevicePresenceRecord is kept per online device.
type DevicePresenceRecord struct {
	UUID         string     `json:"uuid"`
	UDID         string     `json:"udid"`
	NetworkID    string     `json:"networkId"`
	LastSeenInfo DeviceInfo `json:"lastSeenInfo"`
	LastSeenAt   time.Time  `json:"lastSeenAt"`
}

// StateTimer is the eviction timer bookkeeping for one device. Generation
// grows each time the timer is armed.
type StateTimer struct {
	TimerName  string `json:"timerName"`
	NetworkID  string `json:"networkId"`
	Running    bool   `json:"running"`
	Generation uint64 `json:"generation"`
}

// DeviceStateEvent is delivered to a state listener.
type DeviceStateEvent struct {
	OwnerID string      `json:"ownerId"`
	State   DeviceState `json:"state"`
	Device  DeviceInfo  `json:"device"`
}

// LocalDeviceInfo identifies this node.
type LocalDeviceInfo struct {
	DeviceID     string `json:"deviceId"`
	UDID         string `json:"udid"`
	DeviceName   string `json:"deviceName"`
	DeviceTypeID int    `json:"deviceTypeId"`
	NetworkID    string `json:"networkId"`
}
