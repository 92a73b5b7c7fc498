// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pairing runs PIN pairing sessions between two devices.
//
// One session is active at a time. The source side opens an auth session to
// a discovered device and drives the dialogue; the sink side answers a
// session opened by a peer, creates the trust group and shows the PIN. Both
// sides add the peer to the group before the session finishes, and the
// owner of the session receives an [models.AuthResult] on every visible
// state change.
package pairing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-device-keeper/internal/crypto"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/internal/protocol"
	"github.com/MKhiriev/go-device-keeper/internal/timer"
	"github.com/MKhiriev/go-device-keeper/models"
)

const (
	DefaultSessionTimeout = 60 * time.Second
	DefaultSinkOwner      = "go-device-keeper"
	MaxPinAttempts        = 3

	// callTimeout bounds the subsystem calls made from transport events,
	// which carry no caller context.
	callTimeout  = 10 * time.Second
	sessionTimer = "auth-session"
)

type role int

const (
	roleSource role = iota
	roleSink
)

func (r role) String() string {
	if r == roleSink {
		return "sink"
	}
	return "source"
}

type session struct {
	role      role
	id        int64
	ownerID   string
	peerID    string
	requestID int64
	token     string
	state     models.AuthState

	// source: commitment received in RespAuth; sink: the PIN it showed
	commitment string
	pinCode    int
	attempts   int

	groupID   string
	groupName string

	proc *protocol.MessageProcessor
}

// Manager owns the active pairing session. It implements
// bus.SessionHandler and trustgroup.PairingObserver.
type Manager struct {
	bus    SessionBus
	groups Groups
	local  models.LocalDeviceInfo
	log    *logger.Logger

	timeout   time.Duration
	sinkOwner string
	sliceSize int
	timers    *timer.Timers

	mu       sync.Mutex
	active   *session
	listener AuthListener
	seq      int64
}

type Option func(*Manager)

// WithSessionTimeout bounds a whole session, from open to finish.
func WithSessionTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithSinkOwner names the owner that receives sink-side results when the
// peer did not address a target package.
func WithSinkOwner(owner string) Option {
	return func(m *Manager) {
		if owner != "" {
			m.sinkOwner = owner
		}
	}
}

// WithSliceSize sets the thumbnail slice size of outgoing auth requests.
func WithSliceSize(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.sliceSize = n
		}
	}
}

func NewManager(bus SessionBus, groups Groups, local models.LocalDeviceInfo, log *logger.Logger, opts ...Option) *Manager {
	m := &Manager{
		bus:       bus,
		groups:    groups,
		local:     local,
		log:       log.WithComponent("pairing"),
		timeout:   DefaultSessionTimeout,
		sinkOwner: DefaultSinkOwner,
		sliceSize: protocol.DefaultSliceSize,
		timers:    timer.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RegisterListener sets the receiver of pairing results.
func (m *Manager) RegisterListener(l AuthListener) {
	m.mu.Lock()
	m.listener = l
	m.mu.Unlock()
}

// Active reports the role and state of the running session.
func (m *Manager) Active() (string, models.AuthState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil {
		return "", 0, false
	}
	return m.active.role.String(), m.active.state, true
}

// authExtra is the optional JSON accepted by AuthenticateDevice.
type authExtra struct {
	TargetPkgName   string `json:"targetPkgName"`
	AppName         string `json:"appName"`
	AppDescription  string `json:"appDescription"`
	AppIcon         string `json:"appIcon"`
	AppThumbnail    string `json:"appThumbnail"`
	GroupVisibility *int   `json:"groupVisibility"`
}

func parseExtra(extra string) (authExtra, error) {
	var e authExtra
	if extra == "" {
		return e, nil
	}
	if err := json.Unmarshal([]byte(extra), &e); err != nil {
		return e, fmt.Errorf("%w: extra is not a JSON object: %w", models.ErrInvalidParameter, err)
	}
	return e, nil
}

// verifyParam is the JSON accepted by VerifyAuthentication.
type verifyParam struct {
	AuthType int `json:"authType"`
	PinCode  int `json:"pinCode"`
}

func (m *Manager) newProcessor() *protocol.MessageProcessor {
	return protocol.NewMessageProcessor(m.log, protocol.WithSliceSize(m.sliceSize))
}

func (m *Manager) nextRequestIDLocked() int64 {
	m.seq++
	return m.seq
}

// ── Operations ──────────────────────────────────────────────────────────────

// AuthenticateDevice starts a source session to deviceID, which must be in
// the discovered-device cache. It returns once the auth session is open;
// the outcome is reported to ownerID through the listener.
func (m *Manager) AuthenticateDevice(ctx context.Context, ownerID string, authType int, deviceID, extra string) error {
	if ownerID == "" || deviceID == "" {
		return fmt.Errorf("%w: owner and device ids are required", models.ErrInvalidParameter)
	}
	if authType < models.AuthTypeMin || authType > models.AuthTypeMax {
		return fmt.Errorf("%w: auth type %d", models.ErrInvalidParameter, authType)
	}
	if authType != models.AuthTypePin {
		return fmt.Errorf("%w: auth type %d", models.ErrUnsupported, authType)
	}
	ext, err := parseExtra(extra)
	if err != nil {
		return err
	}
	if !m.bus.HaveDeviceInMap(deviceID) {
		return fmt.Errorf("%w: device %s was not discovered", models.ErrNotFound, deviceID)
	}

	token, err := crypto.GenerateToken()
	if err != nil {
		return err
	}

	m.mu.Lock()
	if m.active != nil {
		m.mu.Unlock()
		return models.ErrBusy
	}
	s := &session{
		role:      roleSource,
		ownerID:   ownerID,
		peerID:    deviceID,
		requestID: m.nextRequestIDLocked(),
		token:     token,
		state:     models.AuthRequestInit,
		proc:      m.newProcessor(),
	}
	visibility := int(models.GroupVisibilityPrivate)
	if ext.GroupVisibility != nil {
		visibility = *ext.GroupVisibility
	}
	s.proc.SetRequestContext(&models.AuthRequestContext{
		AuthType:        authType,
		DeviceID:        deviceID,
		DeviceType:      m.local.DeviceTypeID,
		DeviceName:      m.local.DeviceName,
		LocalDeviceID:   m.local.UDID,
		HostPkgName:     ownerID,
		TargetPkgName:   ext.TargetPkgName,
		AppName:         ext.AppName,
		AppDesc:         ext.AppDescription,
		AppIcon:         ext.AppIcon,
		AppThumbnail:    ext.AppThumbnail,
		Token:           token,
		GroupVisibility: visibility,
	})
	s.proc.SetResponseContext(&models.AuthResponseContext{
		AuthType:      authType,
		DeviceID:      deviceID,
		LocalDeviceID: m.local.UDID,
	})
	// the slot is held while the session opens; events for it may arrive
	// before OpenAuthSession returns
	m.active = s
	m.armTimeoutLocked()
	m.mu.Unlock()

	sessionID, err := m.bus.OpenAuthSession(ctx, deviceID)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		if m.active == s {
			m.timers.Stop(sessionTimer)
			m.active = nil
		}
		m.log.Err(err).
			Str("func", "Manager.AuthenticateDevice").
			Str("owner_id", ownerID).
			Str("device_id", deviceID).
			Msg("open auth session failed")
		return fmt.Errorf("authenticate device %s: %w", deviceID, err)
	}
	if m.active != s {
		// finished while opening, by timeout
		m.closeSession(sessionID)
		return fmt.Errorf("authenticate device %s: %w", deviceID, models.ErrTimedOut)
	}
	if s.id == 0 {
		s.id = sessionID
	}

	m.log.Info().
		Str("func", "Manager.AuthenticateDevice").
		Str("owner_id", ownerID).
		Str("device_id", deviceID).
		Int64("session_id", s.id).
		Msg("pairing session opened")
	return nil
}

// VerifyAuthentication checks the PIN entered on the source side against
// the sink's commitment and, when it matches, joins the peer's group and
// finishes the session. After MaxPinAttempts mismatches the session fails.
func (m *Manager) VerifyAuthentication(ctx context.Context, ownerID, authParam string) error {
	if ownerID == "" || authParam == "" {
		return fmt.Errorf("%w: owner id and auth param are required", models.ErrInvalidParameter)
	}
	var p verifyParam
	if err := json.Unmarshal([]byte(authParam), &p); err != nil {
		return fmt.Errorf("%w: auth param is not a JSON object: %w", models.ErrInvalidParameter, err)
	}
	if p.AuthType != models.AuthTypePin {
		return fmt.Errorf("%w: auth type %d", models.ErrUnsupported, p.AuthType)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.active
	if s == nil || s.role != roleSource || s.ownerID != ownerID {
		return fmt.Errorf("%w: no pairing session for %s", models.ErrNotFound, ownerID)
	}
	if s.state != models.AuthRequestInput {
		return fmt.Errorf("%w: session is not waiting for a pin", models.ErrInvalidParameter)
	}

	if !crypto.VerifyPinCommitment(s.token, p.PinCode, s.commitment) {
		s.attempts++
		m.log.Warn().
			Str("func", "Manager.VerifyAuthentication").
			Str("owner_id", ownerID).
			Int("attempt", s.attempts).
			Msg("pin code mismatch")
		if s.attempts >= MaxPinAttempts {
			m.terminateLocked(ctx, s, models.ReplyFailed)
			m.finishLocked(s, models.CodePinMismatch)
		}
		return models.ErrPinMismatch
	}

	return m.joinLocked(ctx, s, p.PinCode)
}

// UnauthenticateDevice deletes the first trust group deviceID belongs to.
func (m *Manager) UnauthenticateDevice(ctx context.Context, ownerID, deviceID string) error {
	if ownerID == "" || deviceID == "" {
		return fmt.Errorf("%w: owner and device ids are required", models.ErrInvalidParameter)
	}

	groups, err := m.groups.GetRelatedGroups(ctx, deviceID)
	if err != nil {
		m.log.Err(err).Str("func", "Manager.UnauthenticateDevice").Str("device_id", deviceID).Msg("get related groups failed")
		return fmt.Errorf("unauthenticate device %s: %w", deviceID, err)
	}
	if len(groups) == 0 {
		return fmt.Errorf("%w: device %s is in no group", models.ErrNotFound, deviceID)
	}

	if err = m.groups.DeleteGroup(ctx, groups[0].GroupID); err != nil {
		return fmt.Errorf("unauthenticate device %s: %w", deviceID, err)
	}

	m.log.Info().
		Str("func", "Manager.UnauthenticateDevice").
		Str("owner_id", ownerID).
		Str("device_id", deviceID).
		Str("group_id", groups[0].GroupID).
		Msg("device unauthenticated")
	return nil
}

// ── Session events ──────────────────────────────────────────────────────────

// OnSessionOpened implements bus.SessionHandler.
func (m *Manager) OnSessionOpened(sessionID int64, side, result int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if side == models.SessionSideClient {
		s := m.active
		if s == nil || s.role != roleSource || (s.id != 0 && s.id != sessionID) {
			m.log.Debug().Str("func", "Manager.OnSessionOpened").Int64("session_id", sessionID).Msg("no source session waiting")
			return
		}
		s.id = sessionID
		if result != 0 {
			m.log.Warn().Str("func", "Manager.OnSessionOpened").Int64("session_id", sessionID).Int("result", result).Msg("auth session did not open")
			m.finishLocked(s, models.CodeSubsystemCallFailed)
			return
		}
		m.startNegotiateLocked(s)
		return
	}

	if result != 0 {
		return
	}
	if m.active != nil {
		m.replyBusy(sessionID)
		return
	}

	s := &session{
		role:    roleSink,
		id:      sessionID,
		ownerID: m.sinkOwner,
		state:   models.AuthResponseInit,
		proc:    m.newProcessor(),
	}
	s.proc.SetResponseContext(&models.AuthResponseContext{SessionID: sessionID})
	m.active = s
	m.armTimeoutLocked()

	m.log.Info().Str("func", "Manager.OnSessionOpened").Int64("session_id", sessionID).Msg("peer opened pairing session")
}

// OnSessionClosed implements bus.SessionHandler. Closing an unfinished
// session fails it.
func (m *Manager) OnSessionClosed(sessionID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.active
	if s == nil || s.id != sessionID {
		return
	}
	m.log.Warn().
		Str("func", "Manager.OnSessionClosed").
		Int64("session_id", sessionID).
		Int("state", int(s.state)).
		Msg("session closed before finishing")
	s.id = 0
	m.finishLocked(s, models.CodeFailed)
}

// OnDataReceived implements bus.SessionHandler.
func (m *Manager) OnDataReceived(sessionID int64, data string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.active
	if s == nil || s.id != sessionID {
		m.log.Debug().Str("func", "Manager.OnDataReceived").Int64("session_id", sessionID).Msg("message for unknown session dropped")
		return
	}

	kind, err := s.proc.Parse([]byte(data))
	if errors.Is(err, models.ErrIncomplete) {
		return
	}
	if err != nil {
		m.log.Err(err).
			Str("func", "Manager.OnDataReceived").
			Int64("session_id", sessionID).
			Str("msg_type", kind.String()).
			Msg("bad pairing message, session aborted")
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()
		m.terminateLocked(ctx, s, models.ReplyFailed)
		m.finishLocked(s, models.CodeOf(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	if kind == models.MsgTypeSyncGroup {
		m.syncGroupsLocked(ctx, s)
		return
	}
	if s.role == roleSource {
		m.handleSourceLocked(ctx, s, kind)
	} else {
		m.handleSinkLocked(ctx, s, kind)
	}
}

// OnGroupCreated implements trustgroup.PairingObserver. It runs while the
// session lock is held by the call that created the group, so it only logs.
func (m *Manager) OnGroupCreated(requestID int64, code int, payload string) {
	m.log.Debug().
		Str("func", "Manager.OnGroupCreated").
		Int64("request_id", requestID).
		Int("code", code).
		Msg("pairing group created")
}

// OnMemberJoin implements trustgroup.PairingObserver.
func (m *Manager) OnMemberJoin(requestID int64, code int) {
	m.log.Debug().
		Str("func", "Manager.OnMemberJoin").
		Int64("request_id", requestID).
		Int("code", code).
		Msg("pairing member joined")
}

// ── Shared helpers ──────────────────────────────────────────────────────────

func (m *Manager) armTimeoutLocked() {
	m.timers.Restart(sessionTimer, m.timeout, m.onTimeout)
}

func (m *Manager) onTimeout(string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.active
	if s == nil {
		return
	}
	m.log.Warn().
		Str("func", "Manager.onTimeout").
		Str("role", s.role.String()).
		Int64("session_id", s.id).
		Int("state", int(s.state)).
		Msg("pairing session timed out")

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()
	m.terminateLocked(ctx, s, models.ReplyTimeout)
	m.finishLocked(s, models.CodeTimedOut)
}

func (m *Manager) send(ctx context.Context, s *session, msg []byte) error {
	if s.id == 0 {
		return fmt.Errorf("%w: session is not open", models.ErrSubsystemCallFailed)
	}
	return m.bus.SendSessionMessage(ctx, s.id, string(msg))
}

func (m *Manager) sendKind(ctx context.Context, s *session, kind models.MsgType) error {
	msg, err := s.proc.BuildSimpleMessage(kind)
	if err != nil {
		return err
	}
	return m.send(ctx, s, msg)
}

// terminateLocked tells the peer the session ends with reply. Errors are
// logged only; the session finishes anyway.
func (m *Manager) terminateLocked(ctx context.Context, s *session, reply int) {
	if s.id == 0 {
		return
	}
	s.proc.ResponseContext().Reply = reply
	if err := m.sendKind(ctx, s, models.MsgTypeReqAuthTerminate); err != nil {
		m.log.Err(err).Str("func", "Manager.terminateLocked").Int64("session_id", s.id).Msg("send terminate failed")
	}
}

func (m *Manager) replyBusy(sessionID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()

	proc := m.newProcessor()
	proc.SetResponseContext(&models.AuthResponseContext{SessionID: sessionID, Reply: models.ReplyBusy})
	msg, err := proc.BuildSimpleMessage(models.MsgTypeReqAuthTerminate)
	if err == nil {
		err = m.bus.SendSessionMessage(ctx, sessionID, string(msg))
	}
	if err != nil {
		m.log.Err(err).Str("func", "Manager.replyBusy").Int64("session_id", sessionID).Msg("send busy reply failed")
	}
	m.log.Info().Str("func", "Manager.replyBusy").Int64("session_id", sessionID).Msg("peer session refused, busy")
	m.closeSession(sessionID)
}

func (m *Manager) closeSession(sessionID int64) {
	if sessionID == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()
	if err := m.bus.CloseAuthSession(ctx, sessionID); err != nil {
		m.log.Debug().Err(err).Str("func", "Manager.closeSession").Int64("session_id", sessionID).Msg("close auth session failed")
	}
}

func (m *Manager) notifyLocked(s *session, code int) {
	if m.listener == nil {
		return
	}
	res := models.AuthResult{
		OwnerID:  s.ownerID,
		DeviceID: s.peerID,
		Token:    s.token,
		State:    s.state,
		Code:     code,
	}
	if s.role == roleSink && s.state == models.AuthResponseShow {
		res.PinCode = s.pinCode
	}
	m.listener.OnAuthResult(res)
}

// finishLocked releases the session slot, closes the transport session and
// reports the final state. A failed sink session drops the group it created.
func (m *Manager) finishLocked(s *session, code int) {
	if m.active != s {
		return
	}
	m.timers.Stop(sessionTimer)
	m.active = nil

	if s.role == roleSource {
		s.state = models.AuthRequestFinish
	} else {
		s.state = models.AuthResponseFinish
		if code != models.CodeOK {
			ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
			m.dropGroupLocked(ctx, s)
			cancel()
		}
	}
	m.closeSession(s.id)

	m.log.Info().
		Str("func", "Manager.finishLocked").
		Str("role", s.role.String()).
		Str("owner_id", s.ownerID).
		Str("device_id", s.peerID).
		Int("code", code).
		Msg("pairing session finished")
	m.notifyLocked(s, code)
}

// syncGroupsLocked drops local membership of the peer in groups the peer no
// longer lists.
func (m *Manager) syncGroupsLocked(ctx context.Context, s *session) {
	resp := s.proc.ResponseContext()
	peer := s.peerID
	if peer == "" {
		peer = resp.DeviceID
	}
	if err := m.groups.SyncGroups(ctx, peer, resp.GroupIDList); err != nil {
		m.log.Err(err).Str("func", "Manager.syncGroupsLocked").Str("device_id", peer).Msg("sync groups failed")
	}
}

func replyCode(reply int) int {
	switch reply {
	case models.ReplyAccept:
		return models.CodeOK
	case models.ReplyReject:
		return models.CodeRejected
	case models.ReplyBusy:
		return models.CodeBusy
	case models.ReplyTimeout:
		return models.CodeTimedOut
	default:
		return models.CodeFailed
	}
}
