// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pairing

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/MKhiriev/go-device-keeper/models"
)

func (m *Manager) startNegotiateLocked(s *session) {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	s.state = models.AuthRequestNegotiate
	if err := m.sendKind(ctx, s, models.MsgTypeNegotiate); err != nil {
		m.log.Err(err).Str("func", "Manager.startNegotiateLocked").Int64("session_id", s.id).Msg("send negotiate failed")
		m.finishLocked(s, models.CodeOf(err))
	}
}

func (m *Manager) handleSourceLocked(ctx context.Context, s *session, kind models.MsgType) {
	resp := s.proc.ResponseContext()

	switch kind {
	case models.MsgTypeRespNegotiate:
		if s.state != models.AuthRequestNegotiate {
			return
		}
		if resp.Reply != models.ReplyAccept {
			m.finishLocked(s, replyCode(resp.Reply))
			return
		}
		s.state = models.AuthRequestNegotiateDone
		m.sendAuthRequestLocked(ctx, s)

	case models.MsgTypeRespAuth:
		if s.state != models.AuthRequestReply {
			return
		}
		if resp.Reply != models.ReplyAccept {
			m.finishLocked(s, replyCode(resp.Reply))
			return
		}
		if resp.GroupID == "" || resp.AuthToken == "" {
			m.log.Error().
				Str("func", "Manager.handleSourceLocked").
				Int64("session_id", s.id).
				Msg("accepted reply carries no group, session failed")
			m.terminateLocked(ctx, s, models.ReplyFailed)
			m.finishLocked(s, models.CodeFailed)
			return
		}
		s.groupID = resp.GroupID
		s.groupName = resp.GroupName
		s.commitment = resp.AuthToken
		s.state = models.AuthRequestInput
		m.notifyLocked(s, models.CodeOK)

	case models.MsgTypeReqAuthTerminate:
		m.finishLocked(s, replyCode(resp.Reply))

	default:
		m.log.Debug().
			Str("func", "Manager.handleSourceLocked").
			Str("msg_type", kind.String()).
			Int("state", int(s.state)).
			Msg("message ignored by source")
	}
}

func (m *Manager) sendAuthRequestLocked(ctx context.Context, s *session) {
	req := s.proc.RequestContext()
	req.SessionID = s.id

	slices, err := s.proc.BuildAuthRequest()
	if err != nil {
		m.log.Err(err).Str("func", "Manager.sendAuthRequestLocked").Msg("build auth request failed")
		m.finishLocked(s, models.CodeFailed)
		return
	}
	for i, msg := range slices {
		if err = m.send(ctx, s, msg); err != nil {
			m.log.Err(err).
				Str("func", "Manager.sendAuthRequestLocked").
				Int64("session_id", s.id).
				Int("slice", i).
				Msg("send auth request failed")
			m.finishLocked(s, models.CodeOf(err))
			return
		}
	}
	s.state = models.AuthRequestReply
}

// joinLocked runs after a matching PIN: join the group, send the sync list,
// accept and finish.
func (m *Manager) joinLocked(ctx context.Context, s *session, pin int) error {
	s.state = models.AuthRequestJoin
	err := m.groups.AddMember(ctx, s.requestID, s.groupID, s.peerID, strconv.Itoa(pin), connectInfo(s.groupName, m.local.UDID))
	if err != nil {
		m.log.Err(err).
			Str("func", "Manager.joinLocked").
			Str("group_id", s.groupID).
			Str("device_id", s.peerID).
			Msg("join group failed")
		m.terminateLocked(ctx, s, models.ReplyFailed)
		m.finishLocked(s, models.CodeOf(err))
		return err
	}

	s.state = models.AuthRequestNetwork
	related, err := m.groups.GetRelatedGroups(ctx, s.peerID)
	if err != nil {
		m.log.Err(err).Str("func", "Manager.joinLocked").Str("device_id", s.peerID).Msg("list groups for sync failed")
	} else {
		req := s.proc.RequestContext()
		req.DeviceID = m.local.UDID
		req.SyncGroupList = m.groups.GetSyncGroupList(related)
		if err = m.sendKind(ctx, s, models.MsgTypeSyncGroup); err != nil {
			m.log.Err(err).Str("func", "Manager.joinLocked").Msg("send sync group failed")
		}
	}

	m.terminateLocked(ctx, s, models.ReplyAccept)
	m.finishLocked(s, models.CodeOK)
	return nil
}

// connectInfo tells the group registry how to name a group it learns about
// through a join.
func connectInfo(groupName, deviceID string) string {
	b, _ := json.Marshal(map[string]string{"groupName": groupName, "deviceId": deviceID})
	return string(b)
}
