// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MsgType tags every message of the pairing dialogue.
type MsgType int32

const (
	MsgTypeUnknown          MsgType = 0
	MsgTypeNegotiate        MsgType = 80
	MsgTypeRespNegotiate    MsgType = 90
	MsgTypeReqAuth          MsgType = 100
	MsgTypeReqAuthTerminate MsgType = 104
	MsgTypeRespAuth         MsgType = 200
	MsgTypeSyncGroup        MsgType = 400
)

func (t MsgType) String() string {
	switch t {
	case MsgTypeNegotiate:
		return "negotiate"
	case MsgTypeRespNegotiate:
		return "resp_negotiate"
	case MsgTypeReqAuth:
		return "req_auth"
	case MsgTypeReqAuthTerminate:
		return "req_auth_terminate"
	case MsgTypeRespAuth:
		return "resp_auth"
	case MsgTypeSyncGroup:
		return "sync_group"
	default:
		return "unknown"
	}
}

// AuthType selects how the remote side proves possession of the pairing
// secret. Only PIN confirmation is implemented by the pairing manager.
const (
	AuthTypePin = 1
	AuthTypeMin = AuthTypePin
	AuthTypeMax = 4
)

// Reply codes carried in RespAuth and ReqAuthTerminate.
const (
	ReplyAccept  = 0
	ReplyReject  = 1
	ReplyBusy    = 2
	ReplyFailed  = 3
	ReplyTimeout = 4
)

// Visibility of the requesting application. A private request carries the
// host package so the sink can address the result to it.
const (
	VisibilityPrivate = 0
	VisibilityPublic  = 1
)

// AuthState enumerates pairing session states for both roles.
type AuthState int

const (
	AuthRequestInit AuthState = iota + 1
	AuthRequestNegotiate
	AuthRequestNegotiateDone
	AuthRequestReply
	AuthRequestInput
	AuthRequestJoin
	AuthRequestNetwork
	AuthRequestFinish
)

const (
	AuthResponseInit AuthState = iota + 20
	AuthResponseNegotiate
	AuthResponseConfirm
	AuthResponseGroup
	AuthResponseShow
	AuthResponseFinish
)

// AuthRequestContext is the source-side state of one pairing session.
type AuthRequestContext struct {
	SessionID       int64  `json:"session_id"`
	AuthType        int    `json:"auth_type"`
	DeviceID        string `json:"device_id"`
	DeviceType      int    `json:"device_type"`
	DeviceName      string `json:"device_name"`
	LocalDeviceID   string `json:"local_device_id"`
	HostPkgName     string `json:"host_pkg_name"`
	TargetPkgName   string `json:"target_pkg_name"`
	AppName         string `json:"app_name"`
	AppDesc         string `json:"app_desc"`
	AppIcon         string `json:"app_icon"`
	AppThumbnail    string `json:"app_thumbnail"`
	Token           string `json:"token"`
	Visibility      int    `json:"visibility"`
	GroupVisibility int    `json:"group_visibility"`
	Reason          int    `json:"reason"`
	Reply           int    `json:"reply"`

	// SyncGroupList is sent in SyncGroup so the peer can drop groups this
	// side no longer holds.
	SyncGroupList []string `json:"sync_group_list,omitempty"`

	CryptoSupport bool   `json:"crypto_support"`
	CryptoName    string `json:"crypto_name"`
	CryptoVersion string `json:"crypto_version"`
}

// AuthResponseContext is the state received from, or replied to, the peer.
type AuthResponseContext struct {
	SessionID          int64     `json:"session_id"`
	MsgType            MsgType   `json:"msg_type"`
	State              AuthState `json:"state"`
	AuthType           int       `json:"auth_type"`
	DeviceID           string    `json:"device_id"`
	LocalDeviceID      string    `json:"local_device_id"`
	DeviceType         int       `json:"device_type"`
	Requester          string    `json:"requester"`
	HostPkgName        string    `json:"host_pkg_name"`
	TargetPkgName      string    `json:"target_pkg_name"`
	AppName            string    `json:"app_name"`
	AppDesc            string    `json:"app_desc"`
	AppIcon            string    `json:"app_icon"`
	AppThumbnail       string    `json:"app_thumbnail"`
	Token              string    `json:"token"`
	AuthToken          string    `json:"auth_token"`
	NetworkID          string    `json:"network_id"`
	GroupID            string    `json:"group_id"`
	GroupName          string    `json:"group_name"`
	GroupIDList        []string  `json:"group_id_list"`
	RequestID          int64     `json:"request_id"`
	Reply              int       `json:"reply"`
	PinCode            int       `json:"pin_code"`
	IsIdenticalAccount bool      `json:"is_identical_account"`

	CryptoSupport bool   `json:"crypto_support"`
	CryptoName    string `json:"crypto_name"`
	CryptoVersion string `json:"crypto_version"`
}

// AuthResult is reported to the owner that started or received a pairing
// session once it finishes.
//
// Intermediate results are reported too: the source gets AuthRequestInput
// when the PIN must be entered and the sink gets AuthResponseShow with the
// PIN to display.
type AuthResult struct {
	OwnerID  string    `json:"ownerId"`
	DeviceID string    `json:"deviceId"`
	Token    string    `json:"token,omitempty"`
	State    AuthState `json:"state"`
	Code     int       `json:"code"`
	PinCode  int       `json:"pinCode,omitempty"`
}

// AuthenticateRequest is the service-layer input for starting a pairing.
type AuthenticateRequest struct {
	OwnerID  string `json:"ownerId"`
	AuthType int    `json:"authType"`
	DeviceID string `json:"deviceId"`
	Extra    string `json:"extra,omitempty"`
}
