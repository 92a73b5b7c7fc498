// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package credential imports and deletes account credentials as trust
// groups and reports group results to the owner that asked for them.
package credential

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/models"
)

// groupTypeForAuth maps a credential auth type to the group type it lives in.
func groupTypeForAuth(authType int) (models.GroupType, error) {
	switch authType {
	case models.CredentialAuthSameAccount:
		return models.GroupTypeIdenticalAccount, nil
	case models.CredentialAuthCrossAccount:
		return models.GroupTypeAcrossAccount, nil
	default:
		return models.GroupTypeInvalid, fmt.Errorf("%w: auth type %d", models.ErrInvalidParameter, authType)
	}
}

// Manager implements trustgroup.ResultListener.
type Manager struct {
	groups CredentialGroups
	log    *logger.Logger

	mu           sync.Mutex
	owners       map[string]struct{}
	listener     CredentialListener
	seq          int64
	pendingID    int64
	pendingOwner string
}

func NewManager(groups CredentialGroups, log *logger.Logger) *Manager {
	return &Manager{
		groups: groups,
		log:    log.WithComponent("credential"),
		owners: make(map[string]struct{}),
		seq:    time.Now().UnixNano(),
	}
}

// SetListener sets the receiver of credential results.
func (m *Manager) SetListener(l CredentialListener) {
	m.mu.Lock()
	m.listener = l
	m.mu.Unlock()
}

// RegisterCredentialCallback allows ownerID to import and delete
// credentials and to receive their results.
func (m *Manager) RegisterCredentialCallback(ownerID string) error {
	if ownerID == "" {
		return fmt.Errorf("%w: empty owner id", models.ErrInvalidParameter)
	}
	m.mu.Lock()
	m.owners[ownerID] = struct{}{}
	m.mu.Unlock()
	return nil
}

func (m *Manager) UnregisterCredentialCallback(ownerID string) error {
	if ownerID == "" {
		return fmt.Errorf("%w: empty owner id", models.ErrInvalidParameter)
	}
	m.mu.Lock()
	delete(m.owners, ownerID)
	if m.pendingOwner == ownerID {
		m.pendingID, m.pendingOwner = 0, ""
	}
	m.mu.Unlock()
	return nil
}

func (m *Manager) registered(ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.owners[ownerID]; !ok {
		return fmt.Errorf("%w: %s has no credential callback", models.ErrNotFound, ownerID)
	}
	return nil
}

// begin records the request whose group result is forwarded to ownerID.
func (m *Manager) begin(ownerID string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.pendingID, m.pendingOwner = m.seq, ownerID
	return m.seq
}

func (m *Manager) abort(requestID int64) {
	m.mu.Lock()
	if m.pendingID == requestID {
		m.pendingID, m.pendingOwner = 0, ""
	}
	m.mu.Unlock()
}

// RequestCredential returns the register info of this device, attested for
// the user and version in reqJSON, as JSON.
func (m *Manager) RequestCredential(ctx context.Context, reqJSON string) (string, error) {
	var params models.RequestCredentialParams
	if err := json.Unmarshal([]byte(reqJSON), &params); err != nil {
		return "", fmt.Errorf("%w: credential request is not a JSON object: %w", models.ErrInvalidParameter, err)
	}
	if params.UserID == "" || params.Version == "" {
		return "", fmt.Errorf("%w: userId and version are required", models.ErrInvalidParameter)
	}

	info, err := m.groups.GetRegisterInfo(ctx, params)
	if err != nil {
		m.log.Err(err).Str("func", "Manager.RequestCredential").Str("user_id", params.UserID).Msg("get register info failed")
		return "", fmt.Errorf("request credential: %w", err)
	}

	b, err := json.Marshal(info)
	if err != nil {
		return "", fmt.Errorf("marshal register info: %w", err)
	}
	return string(b), nil
}

// ImportCredential imports the credentials in credentialInfo. A local
// import creates the credential group and reports its result later; a
// remote import adds peer members synchronously.
func (m *Manager) ImportCredential(ctx context.Context, ownerID, credentialInfo string) error {
	req, err := m.parse(ownerID, credentialInfo)
	if err != nil {
		return err
	}

	switch req.ProcessType {
	case models.ProcessTypeLocal:
		return m.importLocal(ctx, ownerID, req)
	case models.ProcessTypeRemote:
		return m.changeRemote(ctx, req, true)
	default:
		return fmt.Errorf("%w: process type %d", models.ErrInvalidParameter, req.ProcessType)
	}
}

// DeleteCredential undoes ImportCredential for the same process type.
func (m *Manager) DeleteCredential(ctx context.Context, ownerID, deleteInfo string) error {
	req, err := m.parse(ownerID, deleteInfo)
	if err != nil {
		return err
	}

	switch req.ProcessType {
	case models.ProcessTypeLocal:
		if req.UserID == "" {
			return fmt.Errorf("%w: userId is required", models.ErrInvalidParameter)
		}
		groupType, _ := groupTypeForAuth(req.AuthType)
		requestID := m.begin(ownerID)
		if err = m.groups.DeleteGroupByUser(ctx, requestID, req.UserID, groupType); err != nil {
			m.abort(requestID)
			m.log.Err(err).Str("func", "Manager.DeleteCredential").Str("user_id", req.UserID).Msg("delete credential group failed")
			return fmt.Errorf("delete credential: %w", err)
		}
		return nil
	case models.ProcessTypeRemote:
		return m.changeRemote(ctx, req, false)
	default:
		return fmt.Errorf("%w: process type %d", models.ErrInvalidParameter, req.ProcessType)
	}
}

func (m *Manager) parse(ownerID, raw string) (models.CredentialRequest, error) {
	var req models.CredentialRequest
	if ownerID == "" || raw == "" {
		return req, fmt.Errorf("%w: owner id and credential info are required", models.ErrInvalidParameter)
	}
	if err := m.registered(ownerID); err != nil {
		return req, err
	}
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return req, fmt.Errorf("%w: credential info is not a JSON object: %w", models.ErrInvalidParameter, err)
	}
	if _, err := groupTypeForAuth(req.AuthType); err != nil {
		return req, err
	}
	return req, nil
}

func (m *Manager) importLocal(ctx context.Context, ownerID string, req models.CredentialRequest) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userId is required", models.ErrInvalidParameter)
	}
	if len(req.CredentialData) != 1 {
		return fmt.Errorf("%w: a local import carries exactly one credential", models.ErrInvalidParameter)
	}
	cd := req.CredentialData[0]
	if err := validateData(cd, true); err != nil {
		return err
	}

	credential, err := json.Marshal(cd)
	if err != nil {
		return fmt.Errorf("marshal credential: %w", err)
	}

	groupType, _ := groupTypeForAuth(req.AuthType)
	requestID := m.begin(ownerID)
	if err = m.groups.CreateGroup(ctx, requestID, groupType, req.UserID, string(credential)); err != nil {
		m.abort(requestID)
		m.log.Err(err).
			Str("func", "Manager.importLocal").
			Str("owner_id", ownerID).
			Str("user_id", req.UserID).
			Msg("create credential group failed")
		return fmt.Errorf("import credential: %w", err)
	}

	m.log.Info().
		Str("func", "Manager.importLocal").
		Str("owner_id", ownerID).
		Int64("request_id", requestID).
		Msg("local credential imported")
	return nil
}

// changeRemote adds or removes the peer devices of req. Same-account
// members belong to userId, cross-account members to peerUserId.
func (m *Manager) changeRemote(ctx context.Context, req models.CredentialRequest, add bool) error {
	groupType, _ := groupTypeForAuth(req.AuthType)
	userID := req.UserID
	if req.AuthType == models.CredentialAuthCrossAccount {
		userID = req.PeerUserID
	}
	if userID == "" {
		return fmt.Errorf("%w: member user id is required", models.ErrInvalidParameter)
	}
	if len(req.CredentialData) == 0 {
		return fmt.Errorf("%w: no credential data", models.ErrInvalidParameter)
	}

	devices := make([]models.GroupMember, 0, len(req.CredentialData))
	for _, cd := range req.CredentialData {
		if err := validateData(cd, add); err != nil {
			return err
		}
		if cd.PeerDeviceID == "" {
			return fmt.Errorf("%w: peerDeviceId is required", models.ErrInvalidParameter)
		}
		member := models.GroupMember{DeviceID: cd.PeerDeviceID, UserID: userID}
		if add {
			b, err := json.Marshal(cd)
			if err != nil {
				return fmt.Errorf("marshal credential: %w", err)
			}
			member.Credential = string(b)
		}
		devices = append(devices, member)
	}

	var err error
	if add {
		err = m.groups.AddMultiMembers(ctx, groupType, userID, devices)
	} else {
		err = m.groups.DelMultiMembers(ctx, groupType, userID, devices)
	}
	if err != nil {
		m.log.Err(err).
			Str("func", "Manager.changeRemote").
			Bool("add", add).
			Int("devices", len(devices)).
			Msg("remote credential change failed")
		return fmt.Errorf("remote credential: %w", err)
	}
	return nil
}

// validateData checks the key material for the credential type. Deletes
// only need the type.
func validateData(cd models.CredentialData, needKeys bool) error {
	switch cd.CredentialType {
	case models.CredentialTypeSymmetric:
		if needKeys && cd.AuthCode == "" {
			return fmt.Errorf("%w: symmetric credential needs authCode", models.ErrInvalidParameter)
		}
	case models.CredentialTypeAsymmetric:
		if needKeys && (cd.ServerPk == "" || cd.PkInfoSignature == "" || cd.PkInfo == "") {
			return fmt.Errorf("%w: asymmetric credential needs serverPk, pkInfoSignature and pkInfo", models.ErrInvalidParameter)
		}
	default:
		return fmt.Errorf("%w: credential type %d", models.ErrInvalidParameter, cd.CredentialType)
	}
	return nil
}

// OnGroupResult implements trustgroup.ResultListener. Results of requests
// other than the last local import or delete are dropped.
func (m *Manager) OnGroupResult(result models.GroupResult) {
	m.mu.Lock()
	if result.RequestID == 0 || result.RequestID != m.pendingID {
		m.mu.Unlock()
		m.log.Debug().
			Str("func", "Manager.OnGroupResult").
			Int64("request_id", result.RequestID).
			Msg("result for another request dropped")
		return
	}
	owner, listener := m.pendingOwner, m.listener
	m.pendingID, m.pendingOwner = 0, ""
	m.mu.Unlock()

	if listener == nil {
		return
	}

	payload := result.Payload
	if result.Code != models.CodeOK {
		b, _ := json.Marshal(map[string]int{"errorCode": result.Code})
		payload = string(b)
	}
	listener.OnCredentialResult(models.CredentialResult{
		OwnerID: owner,
		Action:  int(result.Operation),
		Result:  payload,
	})
}
