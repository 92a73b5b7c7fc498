// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

// Version is written into every message under keyVersion.
const Version = "1.0"

// DefaultSliceSize is the largest thumbnail chunk carried by one ReqAuth
// message.
const DefaultSliceSize = 45 * 1024

// JSON keys of the pairing dialogue.
const (
	keyVersion            = "ver"
	keyMsgType            = "msgType"
	keySliceNum           = "sliceNum"
	keyIndex              = "index"
	keyRequester          = "requester"
	keyDeviceID           = "deviceId"
	keyDeviceType         = "deviceType"
	keyLocalDeviceID      = "localDeviceId"
	keyAuthType           = "authType"
	keyToken              = "token"
	keyVisibility         = "visibility"
	keyTarget             = "target"
	keyHost               = "host"
	keyAppName            = "appName"
	keyAppDesc            = "appDesc"
	keyAppIcon            = "appIcon"
	keyThumbSize          = "thumbSize"
	keyAppThumbnail       = "appThumbnail"
	keyCryptoSupport      = "cryptoSupport"
	keyCryptoName         = "cryptoName"
	keyCryptoVersion      = "cryptoVersion"
	keyReply              = "reply"
	keyNetworkID          = "networkId"
	keyRequestID          = "requestId"
	keyGroupID            = "groupId"
	keyGroupName          = "groupName"
	keyAuthToken          = "authToken"
	keyGroupIDList        = "groupIdList"
	keyIsIdenticalAccount = "isIdenticalAccount"
)
