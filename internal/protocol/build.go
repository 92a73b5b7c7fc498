// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-device-keeper/models"
)

// BuildAuthRequest encodes the request context as one primary ReqAuth
// message followed by one continuation message per thumbnail slice.
//
// The primary message carries every non-thumbnail field and
// sliceNum = ceil(len(thumbnail)/sliceSize) + 1. Continuations carry index,
// sliceNum, deviceId, thumbSize and up to sliceSize bytes of thumbnail,
// base64 encoded so a cut inside a multi-byte character survives transport.
// Output is deterministic for an identical context and slice size.
func (p *MessageProcessor) BuildAuthRequest() ([][]byte, error) {
	req := p.request
	thumbSize := len(req.AppThumbnail)
	slices := sliceCount(thumbSize, p.sliceSize)
	sliceNum := slices + 1

	primary := map[string]any{
		keyVersion:       Version,
		keyMsgType:       models.MsgTypeReqAuth,
		keySliceNum:      sliceNum,
		keyIndex:         0,
		keyRequester:     req.DeviceName,
		keyDeviceID:      req.DeviceID,
		keyDeviceType:    req.DeviceType,
		keyLocalDeviceID: req.LocalDeviceID,
		keyAuthType:      req.AuthType,
		keyToken:         req.Token,
		keyVisibility:    req.GroupVisibility,
		keyTarget:        req.TargetPkgName,
		keyAppName:       req.AppName,
		keyAppDesc:       req.AppDesc,
		keyAppIcon:       req.AppIcon,
		keyThumbSize:     thumbSize,
	}
	if req.GroupVisibility == int(models.GroupVisibilityPrivate) {
		primary[keyHost] = req.HostPkgName
	}

	out := make([][]byte, 0, sliceNum)
	msg, err := json.Marshal(primary)
	if err != nil {
		return nil, fmt.Errorf("marshal auth request: %w", err)
	}
	out = append(out, msg)

	for i := 0; i < slices; i++ {
		start := i * p.sliceSize
		end := min(start+p.sliceSize, thumbSize)

		cont := map[string]any{
			keyVersion:      Version,
			keyMsgType:      models.MsgTypeReqAuth,
			keySliceNum:     sliceNum,
			keyIndex:        i + 1,
			keyDeviceID:     req.DeviceID,
			keyThumbSize:    thumbSize,
			keyAppThumbnail: []byte(req.AppThumbnail[start:end]),
		}
		msg, err = json.Marshal(cont)
		if err != nil {
			return nil, fmt.Errorf("marshal auth request slice %d: %w", i+1, err)
		}
		out = append(out, msg)
	}

	p.log.Debug().
		Str("func", "MessageProcessor.BuildAuthRequest").
		Int("slice_num", sliceNum).
		Int("thumb_size", thumbSize).
		Msg("auth request built")

	return out, nil
}

// BuildSimpleMessage encodes a single-message kind. Kinds without a body
// produce only the version and message type.
func (p *MessageProcessor) BuildSimpleMessage(kind models.MsgType) ([]byte, error) {
	msg := map[string]any{
		keyVersion: Version,
		keyMsgType: kind,
	}

	switch kind {
	case models.MsgTypeNegotiate, models.MsgTypeRespNegotiate:
		p.buildNegotiate(msg, kind)
	case models.MsgTypeSyncGroup:
		p.buildSyncGroup(msg)
	case models.MsgTypeRespAuth:
		p.buildRespAuth(msg)
	case models.MsgTypeReqAuthTerminate:
		msg[keyReply] = p.response.Reply
	}

	b, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %s message: %w", kind, err)
	}
	return b, nil
}

func (p *MessageProcessor) buildNegotiate(msg map[string]any, kind models.MsgType) {
	resp := p.response
	if p.crypto == nil {
		msg[keyCryptoSupport] = false
	} else {
		msg[keyCryptoSupport] = true
		msg[keyCryptoName] = p.crypto.Name()
		msg[keyCryptoVersion] = p.crypto.Version()
		msg[keyDeviceID] = resp.DeviceID
	}
	msg[keyAuthType] = resp.AuthType
	msg[keyReply] = resp.Reply
	msg[keyLocalDeviceID] = resp.LocalDeviceID

	if kind == models.MsgTypeRespNegotiate {
		msg[keyIsIdenticalAccount] = resp.IsIdenticalAccount
	}
}

func (p *MessageProcessor) buildSyncGroup(msg map[string]any) {
	list := p.request.SyncGroupList
	if list == nil {
		list = []string{}
	}
	msg[keyDeviceID] = p.request.DeviceID
	msg[keyGroupIDList] = list
}

// buildRespAuth writes the group block only when the group id can be read
// from the creation payload stored in the response context. When it cannot,
// the reply still goes out without the block and the peer sees an accepted
// reply with no group.
func (p *MessageProcessor) buildRespAuth(msg map[string]any) {
	resp := p.response
	msg[keyReply] = resp.Reply
	msg[keyDeviceID] = resp.DeviceID
	msg[keyToken] = resp.Token

	if resp.Reply != models.ReplyAccept {
		return
	}

	groupID, err := GroupIDFromPayload(resp.GroupID)
	if err != nil {
		p.log.Err(err).
			Str("func", "MessageProcessor.buildRespAuth").
			Msg("cannot read group id from creation payload, group fields omitted")
		return
	}

	msg[keyNetworkID] = resp.NetworkID
	msg[keyRequestID] = resp.RequestID
	msg[keyGroupID] = groupID
	msg[keyGroupName] = resp.GroupName
	msg[keyAuthToken] = resp.AuthToken
}

// GroupIDFromPayload extracts groupId from the JSON object returned by the
// group subsystem when a group is created.
func GroupIDFromPayload(payload string) (string, error) {
	f, err := decodeFields([]byte(payload))
	if err != nil {
		return "", fmt.Errorf("decode group payload: %w", err)
	}
	id, ok := f.str(keyGroupID)
	if !ok {
		return "", fmt.Errorf("group payload has no %q string", keyGroupID)
	}
	return id, nil
}
