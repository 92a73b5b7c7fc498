// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pairing

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-device-keeper/internal/crypto"
	"github.com/MKhiriev/go-device-keeper/internal/protocol"
	"github.com/MKhiriev/go-device-keeper/models"
)

const groupNamePrefix = "pin-"

func (m *Manager) handleSinkLocked(ctx context.Context, s *session, kind models.MsgType) {
	resp := s.proc.ResponseContext()

	switch kind {
	case models.MsgTypeNegotiate:
		if s.state != models.AuthResponseInit {
			return
		}
		s.peerID = resp.LocalDeviceID
		resp.Reply = models.ReplyAccept
		if resp.AuthType != models.AuthTypePin {
			resp.Reply = models.ReplyReject
		}
		resp.LocalDeviceID = m.local.UDID
		if err := m.sendKind(ctx, s, models.MsgTypeRespNegotiate); err != nil {
			m.log.Err(err).Str("func", "Manager.handleSinkLocked").Int64("session_id", s.id).Msg("send negotiate reply failed")
			m.finishLocked(s, models.CodeOf(err))
			return
		}
		if resp.Reply != models.ReplyAccept {
			m.finishLocked(s, models.CodeUnsupported)
			return
		}
		s.state = models.AuthResponseNegotiate

	case models.MsgTypeReqAuth:
		if s.state != models.AuthResponseNegotiate {
			return
		}
		m.acceptAuthRequestLocked(ctx, s)

	case models.MsgTypeReqAuthTerminate:
		m.completeSinkLocked(ctx, s, resp.Reply)

	default:
		m.log.Debug().
			Str("func", "Manager.handleSinkLocked").
			Str("msg_type", kind.String()).
			Int("state", int(s.state)).
			Msg("message ignored by sink")
	}
}

// acceptAuthRequestLocked creates the pairing group, picks the PIN and
// answers with the group and a commitment to the PIN.
func (m *Manager) acceptAuthRequestLocked(ctx context.Context, s *session) {
	resp := s.proc.ResponseContext()
	s.peerID = resp.LocalDeviceID
	s.token = resp.Token
	if resp.TargetPkgName != "" {
		s.ownerID = resp.TargetPkgName
	}
	s.requestID = m.nextRequestIDLocked()
	s.state = models.AuthResponseConfirm

	fail := func(code int) {
		resp.Reply = models.ReplyFailed
		if err := m.sendKind(ctx, s, models.MsgTypeRespAuth); err != nil {
			m.log.Err(err).Str("func", "Manager.acceptAuthRequestLocked").Msg("send failure reply failed")
		}
		m.finishLocked(s, code)
	}

	s.state = models.AuthResponseGroup
	groupName := groupNamePrefix + uuid.NewString()
	payload, err := m.groups.CreateGroupByName(ctx, s.requestID, groupName)
	if err != nil {
		m.log.Err(err).Str("func", "Manager.acceptAuthRequestLocked").Str("device_id", s.peerID).Msg("create pairing group failed")
		fail(models.CodeOf(err))
		return
	}
	groupID, err := protocol.GroupIDFromPayload(payload)
	if err != nil {
		m.log.Err(err).Str("func", "Manager.acceptAuthRequestLocked").Msg("group payload has no id")
		fail(models.CodeFailed)
		return
	}
	s.groupID = groupID
	s.groupName = groupName

	pin, err := crypto.GeneratePinCode()
	if err != nil {
		fail(models.CodeFailed)
		return
	}
	s.pinCode = pin

	resp.Reply = models.ReplyAccept
	resp.DeviceID = m.local.UDID
	resp.NetworkID = m.local.NetworkID
	resp.RequestID = s.requestID
	resp.GroupID = payload
	resp.GroupName = groupName
	resp.PinCode = pin
	resp.AuthToken = crypto.PinCommitment(s.token, pin)

	if err = m.sendKind(ctx, s, models.MsgTypeRespAuth); err != nil {
		m.log.Err(err).Str("func", "Manager.acceptAuthRequestLocked").Int64("session_id", s.id).Msg("send auth reply failed")
		m.finishLocked(s, models.CodeOf(err))
		return
	}

	s.state = models.AuthResponseShow
	m.notifyLocked(s, models.CodeOK)
}

// completeSinkLocked handles the source's final word. An accepted session
// adds the source to the group; anything else fails the session.
func (m *Manager) completeSinkLocked(ctx context.Context, s *session, reply int) {
	if reply != models.ReplyAccept || s.state != models.AuthResponseShow {
		code := replyCode(reply)
		if code == models.CodeOK {
			code = models.CodeFailed
		}
		m.finishLocked(s, code)
		return
	}

	err := m.groups.AddMember(ctx, s.requestID, s.groupID, s.peerID, strconv.Itoa(s.pinCode), connectInfo(s.groupName, m.local.UDID))
	if err != nil {
		m.log.Err(err).
			Str("func", "Manager.completeSinkLocked").
			Str("group_id", s.groupID).
			Str("device_id", s.peerID).
			Msg("add source to group failed")
		m.finishLocked(s, models.CodeOf(err))
		return
	}
	m.finishLocked(s, models.CodeOK)
}

func (m *Manager) dropGroupLocked(ctx context.Context, s *session) {
	if s.groupID == "" {
		return
	}
	if err := m.groups.DeleteGroup(ctx, s.groupID); err != nil {
		m.log.Err(err).Str("func", "Manager.dropGroupLocked").Str("group_id", s.groupID).Msg("delete unused pairing group failed")
	}
}
