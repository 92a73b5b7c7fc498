// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"fmt"

	"github.com/MKhiriev/go-device-keeper/models"
)

// Parse decodes raw and applies it to the response context.
//
// It fails with [models.ErrMalformedMessage] when raw is not a JSON object or
// msgType is missing or not an integer. A ReqAuth slice that leaves the
// request unfinished returns [models.ErrIncomplete] together with the kind.
// Unknown kinds are returned without touching the context.
func (p *MessageProcessor) Parse(raw []byte) (models.MsgType, error) {
	f, err := decodeFields(raw)
	if err != nil {
		p.log.Err(err).Str("func", "MessageProcessor.Parse").Msg("message is not valid JSON")
		return models.MsgTypeUnknown, fmt.Errorf("%w: %w", models.ErrMalformedMessage, err)
	}

	t, ok := f.int32(keyMsgType)
	if !ok {
		p.log.Error().Str("func", "MessageProcessor.Parse").Msg("message type missing or not an integer")
		return models.MsgTypeUnknown, fmt.Errorf("%w: no integer %s", models.ErrMalformedMessage, keyMsgType)
	}
	kind := models.MsgType(t)
	p.response.MsgType = kind

	switch kind {
	case models.MsgTypeNegotiate:
		p.parseNegotiate(f)
	case models.MsgTypeRespNegotiate:
		p.parseRespNegotiate(f)
	case models.MsgTypeReqAuth:
		return kind, p.parseAuthRequest(f)
	case models.MsgTypeRespAuth:
		return kind, p.parseAuthResponse(f)
	case models.MsgTypeReqAuthTerminate:
		if v, ok := f.int32(keyReply); ok {
			p.response.Reply = int(v)
		}
	case models.MsgTypeSyncGroup:
		p.parseSyncGroup(f)
	default:
		p.log.Warn().
			Str("func", "MessageProcessor.Parse").
			Int32("msg_type", t).
			Msg("unknown message type ignored")
	}

	return kind, nil
}

func (p *MessageProcessor) parseAuthRequest(f fields) error {
	idx, okIdx := f.int32(keyIndex)
	num, okNum := f.int32(keySliceNum)
	if !okIdx || !okNum {
		return fmt.Errorf("%w: %s and %s must be integers", models.ErrMalformedMessage, keyIndex, keySliceNum)
	}
	if num < 1 || idx < 0 || idx >= num {
		return fmt.Errorf("%w: %w (index %d of %d)", models.ErrMalformedMessage, ErrInvalidSlicing, idx, num)
	}

	resp := p.response
	if idx == 0 {
		if err := p.applyAuthRequestPrimary(f); err != nil {
			return err
		}
		p.nextSlice = 1
		p.sliceNum = int(num)
	} else {
		if p.nextSlice < 0 || int(idx) != p.nextSlice || int(num) != p.sliceNum {
			p.log.Warn().
				Str("func", "MessageProcessor.parseAuthRequest").
				Int32("index", idx).
				Int("expected", p.nextSlice).
				Msg("out of order request slice ignored")
			return models.ErrIncomplete
		}
		chunk, ok, err := f.bytes(keyAppThumbnail)
		if ok && err != nil {
			return fmt.Errorf("%w: %s is not base64: %w", models.ErrMalformedMessage, keyAppThumbnail, err)
		}
		resp.AppThumbnail += string(chunk)
		p.nextSlice++
	}

	if int(idx) < p.sliceNum-1 {
		return models.ErrIncomplete
	}

	if p.thumbSize != len(resp.AppThumbnail) {
		p.log.Warn().
			Str("func", "MessageProcessor.parseAuthRequest").
			Int("announced", p.thumbSize).
			Int("received", len(resp.AppThumbnail)).
			Msg("thumbnail size mismatch")
	}
	p.nextSlice = -1
	return nil
}

// applyAuthRequestPrimary validates the required set of a primary ReqAuth
// and resets the thumbnail accumulator. Nothing is written unless every
// required field is present with the right type.
func (p *MessageProcessor) applyAuthRequestPrimary(f fields) error {
	deviceID, ok1 := f.str(keyDeviceID)
	authType, ok2 := f.int32(keyAuthType)
	appDesc, ok3 := f.str(keyAppDesc)
	token, ok4 := f.str(keyToken)
	target, ok5 := f.str(keyTarget)
	appName, ok6 := f.str(keyAppName)
	localDeviceID, ok7 := f.str(keyLocalDeviceID)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 || !ok7 {
		p.log.Error().Str("func", "MessageProcessor.applyAuthRequestPrimary").Msg("auth request is missing required fields")
		return fmt.Errorf("%w: auth request is missing required fields", models.ErrMalformedMessage)
	}

	resp := p.response
	resp.DeviceID = deviceID
	resp.AuthType = int(authType)
	resp.AppDesc = appDesc
	resp.Token = token
	resp.TargetPkgName = target
	resp.AppName = appName
	resp.LocalDeviceID = localDeviceID
	resp.AppThumbnail = ""

	if v, ok := f.str(keyRequester); ok {
		resp.Requester = v
	}
	if v, ok := f.int32(keyDeviceType); ok {
		resp.DeviceType = int(v)
	}
	if v, ok := f.str(keyHost); ok {
		resp.HostPkgName = v
	}
	if v, ok := f.str(keyAppIcon); ok {
		resp.AppIcon = v
	}
	p.thumbSize = 0
	if v, ok := f.int32(keyThumbSize); ok {
		p.thumbSize = int(v)
	}
	return nil
}

// parseAuthResponse reads the required block and, on an accepted reply, the
// group block. A gap in the group block stops reading it; values already
// stored stay in place.
func (p *MessageProcessor) parseAuthResponse(f fields) error {
	reply, ok1 := f.int32(keyReply)
	deviceID, ok2 := f.str(keyDeviceID)
	token, ok3 := f.str(keyToken)
	if !ok1 || !ok2 || !ok3 {
		p.log.Error().Str("func", "MessageProcessor.parseAuthResponse").Msg("auth response is missing required fields")
		return fmt.Errorf("%w: auth response is missing required fields", models.ErrMalformedMessage)
	}

	resp := p.response
	resp.Reply = int(reply)
	resp.DeviceID = deviceID
	resp.Token = token

	if resp.Reply != models.ReplyAccept {
		return nil
	}

	networkID, ok1 := f.str(keyNetworkID)
	requestID, ok2 := f.int64(keyRequestID)
	groupID, ok3 := f.str(keyGroupID)
	groupName, ok4 := f.str(keyGroupName)
	authToken, ok5 := f.str(keyAuthToken)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		p.log.Warn().Str("func", "MessageProcessor.parseAuthResponse").Msg("accepted auth response has no complete group block")
		return nil
	}

	resp.NetworkID = networkID
	resp.RequestID = requestID
	resp.GroupID = groupID
	resp.GroupName = groupName
	resp.AuthToken = authToken
	return nil
}

func (p *MessageProcessor) parseNegotiate(f fields) {
	resp := p.response
	if v, ok := f.boolean(keyCryptoSupport); ok {
		resp.CryptoSupport = v
	}
	if v, ok := f.str(keyCryptoName); ok {
		resp.CryptoName = v
	}
	if v, ok := f.str(keyCryptoVersion); ok {
		resp.CryptoVersion = v
	}
	if v, ok := f.str(keyDeviceID); ok {
		resp.DeviceID = v
	}
	if v, ok := f.str(keyLocalDeviceID); ok {
		resp.LocalDeviceID = v
	}
	if v, ok := f.int32(keyAuthType); ok {
		resp.AuthType = int(v)
	}
	if v, ok := f.int32(keyReply); ok {
		resp.Reply = int(v)
	}
}

func (p *MessageProcessor) parseRespNegotiate(f fields) {
	resp := p.response
	if v, ok := f.boolean(keyIsIdenticalAccount); ok {
		resp.IsIdenticalAccount = v
	}
	if v, ok := f.int32(keyReply); ok {
		resp.Reply = int(v)
	}
	if v, ok := f.str(keyLocalDeviceID); ok {
		resp.LocalDeviceID = v
	}
	if v, ok := f.boolean(keyCryptoSupport); ok {
		resp.CryptoSupport = v
	}
}

func (p *MessageProcessor) parseSyncGroup(f fields) {
	resp := p.response
	if v, ok := f.str(keyDeviceID); ok {
		resp.DeviceID = v
	}
	if v, ok := f.strings(keyGroupIDList); ok {
		resp.GroupIDList = v
	}
}
