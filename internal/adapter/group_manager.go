// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-device-keeper/internal/crypto"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/internal/store"
	"github.com/MKhiriev/go-device-keeper/internal/trustgroup"
	"github.com/MKhiriev/go-device-keeper/models"
)

// Result codes reported through [trustgroup.Callback.OnError].
const (
	GroupCodeInvalidParams = -1
	GroupCodeNotFound      = -2
	GroupCodeExists        = -3
	GroupCodeStorage       = -4
)

// LocalGroupManager is the SQL-backed trust-group registry.
type LocalGroupManager struct {
	storages *store.Storages
	keys     crypto.KeyChain
	attestor crypto.Attestor
	owner    string
	localID  string

	mu       sync.RWMutex
	callback trustgroup.Callback

	wg     sync.WaitGroup
	logger *logger.Logger
}

var _ trustgroup.GroupManager = (*LocalGroupManager)(nil)

// NewLocalGroupManager constructs a [trustgroup.GroupManager] that keeps
// groups, members and credentials in storages. Credential auth codes are
// sealed with keys before they are written. Groups it creates belong to
// owner, and localID is the udid recorded as their first member.
func NewLocalGroupManager(storages *store.Storages, keys crypto.KeyChain, attestor crypto.Attestor, owner, localID string, log *logger.Logger) *LocalGroupManager {
	return &LocalGroupManager{
		storages: storages,
		keys:     keys,
		attestor: attestor,
		owner:    owner,
		localID:  localID,
		logger:   log.WithComponent("group-manager"),
	}
}

func (m *LocalGroupManager) RegisterCallback(cb trustgroup.Callback) {
	m.mu.Lock()
	m.callback = cb
	m.mu.Unlock()
}

// Wait blocks until every async operation started so far has reported.
func (m *LocalGroupManager) Wait() {
	m.wg.Wait()
}

func (m *LocalGroupManager) CreateGroup(ctx context.Context, requestID int64, params models.CreateGroupParams) error {
	if params.GroupName == "" || params.GroupType == models.GroupTypeInvalid || params.GroupType == models.GroupTypeAll {
		return fmt.Errorf("%w: group name and type are required", models.ErrInvalidParameter)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate group id: %w", err)
	}
	group := models.GroupInfo{
		GroupName:       params.GroupName,
		GroupID:         id.String(),
		GroupOwner:      m.owner,
		GroupType:       params.GroupType,
		GroupVisibility: params.GroupVisibility,
		UserID:          params.UserID,
	}

	m.async(ctx, requestID, models.OpGroupCreate, func(ctx context.Context) (string, error) {
		if err := m.createGroup(ctx, group, params); err != nil {
			return "", err
		}
		return groupPayload(group.GroupID), nil
	})
	return nil
}

func (m *LocalGroupManager) createGroup(ctx context.Context, group models.GroupInfo, params models.CreateGroupParams) error {
	if err := m.storages.Groups.CreateGroup(ctx, group); err != nil {
		return err
	}

	deviceID := params.DeviceID
	if deviceID == "" {
		deviceID = m.localID
	}
	member := models.GroupMember{GroupID: group.GroupID, DeviceID: deviceID, UserID: group.UserID}
	if err := m.storages.Members.AddMembers(ctx, []models.GroupMember{member}); err != nil {
		return err
	}

	if params.Credential == "" {
		return nil
	}
	var data models.CredentialData
	if err := json.Unmarshal([]byte(params.Credential), &data); err != nil {
		return fmt.Errorf("%w: credential: %w", models.ErrInvalidParameter, err)
	}
	if data.PeerDeviceID == "" {
		data.PeerDeviceID = deviceID
	}
	return m.saveCredential(ctx, group.GroupID, group.UserID, data)
}

func (m *LocalGroupManager) DeleteGroup(ctx context.Context, requestID int64, groupID string) error {
	if groupID == "" {
		return fmt.Errorf("%w: group id is required", models.ErrInvalidParameter)
	}

	m.async(ctx, requestID, models.OpGroupDisband, func(ctx context.Context) (string, error) {
		if err := m.storages.Groups.DeleteGroup(ctx, groupID); err != nil {
			return "", err
		}
		return groupPayload(groupID), nil
	})
	return nil
}

// connectInfo is the part of AddMemberParams.ConnectInfo the registry reads.
type connectInfo struct {
	GroupName string `json:"groupName"`
	UserID    string `json:"userId"`
}

func (m *LocalGroupManager) AddMember(ctx context.Context, requestID int64, params models.AddMemberParams) error {
	if params.GroupID == "" || params.DeviceID == "" {
		return fmt.Errorf("%w: group id and device id are required", models.ErrInvalidParameter)
	}

	var info connectInfo
	if params.ConnectInfo != "" {
		if err := json.Unmarshal([]byte(params.ConnectInfo), &info); err != nil {
			return fmt.Errorf("%w: connect info: %w", models.ErrInvalidParameter, err)
		}
	}

	m.async(ctx, requestID, models.OpMemberJoin, func(ctx context.Context) (string, error) {
		_, err := m.storages.Groups.GetGroup(ctx, params.GroupID)
		if errors.Is(err, store.ErrGroupNotFound) && info.GroupName != "" {
			// joining a group that lives on the peer: record it locally
			// under the peer's id with both sides as members
			err = m.joinRemoteGroup(ctx, params, info)
			return "", err
		}
		if err != nil {
			return "", err
		}

		err = m.storages.Members.AddMembers(ctx, []models.GroupMember{{
			GroupID:  params.GroupID,
			DeviceID: params.DeviceID,
			UserID:   info.UserID,
		}})
		if errors.Is(err, store.ErrMemberAlreadyExists) {
			return "", nil
		}
		return "", err
	})
	return nil
}

func (m *LocalGroupManager) joinRemoteGroup(ctx context.Context, params models.AddMemberParams, info connectInfo) error {
	groupType := params.GroupType
	if groupType == models.GroupTypeAll || groupType == models.GroupTypeInvalid {
		groupType = models.GroupTypePeerToPeer
	}
	group := models.GroupInfo{
		GroupName:  info.GroupName,
		GroupID:    params.GroupID,
		GroupOwner: m.owner,
		GroupType:  groupType,
		UserID:     info.UserID,
	}
	if err := m.storages.Groups.CreateGroup(ctx, group); err != nil && !errors.Is(err, store.ErrGroupAlreadyExists) {
		return err
	}

	members := []models.GroupMember{{GroupID: group.GroupID, DeviceID: params.DeviceID, UserID: info.UserID}}
	if params.DeviceID != m.localID {
		members = append(members, models.GroupMember{GroupID: group.GroupID, DeviceID: m.localID})
	}
	for _, member := range members {
		err := m.storages.Members.AddMembers(ctx, []models.GroupMember{member})
		if err != nil && !errors.Is(err, store.ErrMemberAlreadyExists) {
			return err
		}
	}
	return nil
}

func (m *LocalGroupManager) DeleteMember(ctx context.Context, requestID int64, groupID, deviceID string) error {
	if groupID == "" || deviceID == "" {
		return fmt.Errorf("%w: group id and device id are required", models.ErrInvalidParameter)
	}

	m.async(ctx, requestID, models.OpMemberDelete, func(ctx context.Context) (string, error) {
		n, err := m.storages.Members.DeleteMembers(ctx, groupID, []string{deviceID})
		if err != nil {
			return "", err
		}
		if n == 0 {
			return "", store.ErrMemberNotFound
		}
		return "", m.storages.Credentials.DeleteCredentials(ctx, groupID, deviceID)
	})
	return nil
}

// AddMultiMembers adds params.Devices to the oldest group of params.GroupType
// owned by params.UserID. A device carrying a credential also gets it stored.
func (m *LocalGroupManager) AddMultiMembers(ctx context.Context, params models.MultiMembersParams) error {
	group, err := m.findAccountGroup(ctx, params)
	if err != nil {
		return err
	}

	members := make([]models.GroupMember, 0, len(params.Devices))
	for _, d := range params.Devices {
		if d.DeviceID == "" {
			return fmt.Errorf("%w: device id is required", models.ErrInvalidParameter)
		}
		members = append(members, models.GroupMember{
			GroupID:    group.GroupID,
			DeviceID:   d.DeviceID,
			UserID:     params.UserID,
			Credential: d.Credential,
		})
	}
	if err = m.storages.Members.AddMembers(ctx, members); err != nil {
		m.logger.Err(err).Str("func", "*LocalGroupManager.AddMultiMembers").Str("group_id", group.GroupID).Msg("add members failed")
		return fmt.Errorf("%w: %w", models.ErrSubsystemCallFailed, err)
	}

	for _, d := range params.Devices {
		if d.Credential == "" {
			continue
		}
		var data models.CredentialData
		if err = json.Unmarshal([]byte(d.Credential), &data); err != nil {
			return fmt.Errorf("%w: credential of %s: %w", models.ErrInvalidParameter, d.DeviceID, err)
		}
		data.PeerDeviceID = d.DeviceID
		if err = m.saveCredential(ctx, group.GroupID, params.UserID, data); err != nil {
			return fmt.Errorf("%w: %w", models.ErrSubsystemCallFailed, err)
		}
	}
	return nil
}

func (m *LocalGroupManager) DelMultiMembers(ctx context.Context, params models.MultiMembersParams) error {
	group, err := m.findAccountGroup(ctx, params)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(params.Devices))
	for _, d := range params.Devices {
		ids = append(ids, d.DeviceID)
	}
	if _, err = m.storages.Members.DeleteMembers(ctx, group.GroupID, ids); err != nil {
		m.logger.Err(err).Str("func", "*LocalGroupManager.DelMultiMembers").Str("group_id", group.GroupID).Msg("delete members failed")
		return fmt.Errorf("%w: %w", models.ErrSubsystemCallFailed, err)
	}
	for _, id := range ids {
		if err = m.storages.Credentials.DeleteCredentials(ctx, group.GroupID, id); err != nil {
			return fmt.Errorf("%w: %w", models.ErrSubsystemCallFailed, err)
		}
	}
	return nil
}

func (m *LocalGroupManager) findAccountGroup(ctx context.Context, params models.MultiMembersParams) (models.GroupInfo, error) {
	if params.UserID == "" || len(params.Devices) == 0 {
		return models.GroupInfo{}, fmt.Errorf("%w: user id and devices are required", models.ErrInvalidParameter)
	}

	groups, err := m.storages.Groups.FindGroups(ctx, models.GroupQuery{GroupType: params.GroupType, UserID: params.UserID})
	if err != nil {
		return models.GroupInfo{}, fmt.Errorf("%w: %w", models.ErrSubsystemCallFailed, err)
	}
	if len(groups) == 0 {
		return models.GroupInfo{}, fmt.Errorf("%w: no %s group for user", models.ErrNotFound, params.GroupType)
	}
	return groups[0], nil
}

func (m *LocalGroupManager) GetGroupInfo(ctx context.Context, query models.GroupQuery) ([]models.GroupInfo, error) {
	groups, err := m.storages.Groups.FindGroups(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrSubsystemCallFailed, err)
	}
	return groups, nil
}

func (m *LocalGroupManager) GetRelatedGroups(ctx context.Context, deviceID string) ([]models.GroupInfo, error) {
	groups, err := m.storages.Groups.FindRelatedGroups(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrSubsystemCallFailed, err)
	}
	return groups, nil
}

func (m *LocalGroupManager) IsDeviceInGroup(ctx context.Context, groupID, deviceID string) (bool, error) {
	ok, err := m.storages.Members.IsMember(ctx, groupID, deviceID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", models.ErrSubsystemCallFailed, err)
	}
	return ok, nil
}

// GetRegisterInfo attests the local device key for params.UserID. The user
// id doubles as the attestation challenge.
func (m *LocalGroupManager) GetRegisterInfo(ctx context.Context, params models.RequestCredentialParams) (models.RegisterInfo, error) {
	chain, err := m.attestor.Attest(ctx, params.UserID, crypto.AttestClaims{
		UserID:   params.UserID,
		DeviceID: m.localID,
		Version:  params.Version,
	})
	if err != nil {
		return models.RegisterInfo{}, fmt.Errorf("%w: %w", models.ErrSubsystemCallFailed, err)
	}

	return models.RegisterInfo{
		Version:   params.Version,
		UserID:    params.UserID,
		DeviceID:  m.localID,
		DevicePk:  m.attestor.DevicePublicKey(),
		CertChain: chain,
	}, nil
}

func (m *LocalGroupManager) saveCredential(ctx context.Context, groupID, userID string, data models.CredentialData) error {
	var sealed []byte
	if data.AuthCode != "" {
		var err error
		if sealed, err = m.keys.Seal([]byte(data.AuthCode)); err != nil {
			return fmt.Errorf("seal auth code: %w", err)
		}
	}

	return m.storages.Credentials.SaveCredential(ctx, models.StoredCredential{
		CredentialID:   data.CredentialID,
		GroupID:        groupID,
		UserID:         userID,
		PeerDeviceID:   data.PeerDeviceID,
		CredentialType: data.CredentialType,
		PkInfo:         data.PkInfo,
		SealedAuthCode: sealed,
	})
}

// async runs op in the background and reports its outcome to the registered
// callback under requestID. The callback never fires before the call that
// started op returns.
func (m *LocalGroupManager) async(ctx context.Context, requestID int64, op models.GroupOperation, fn func(context.Context) (string, error)) {
	ctx = context.WithoutCancel(ctx)

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		payload, err := fn(ctx)

		m.mu.RLock()
		cb := m.callback
		m.mu.RUnlock()
		if cb == nil {
			return
		}

		if err != nil {
			m.logger.Err(err).Str("func", "*LocalGroupManager.async").
				Int64("request_id", requestID).Str("op", op.String()).Msg("group operation failed")
			cb.OnError(requestID, op, groupErrorCode(err), payload)
			return
		}
		cb.OnFinish(requestID, op, payload)
	}()
}

func groupPayload(groupID string) string {
	b, _ := json.Marshal(struct {
		GroupID string `json:"groupId"`
	}{groupID})
	return string(b)
}

func groupErrorCode(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidParameter):
		return GroupCodeInvalidParams
	case errors.Is(err, store.ErrGroupNotFound), errors.Is(err, store.ErrMemberNotFound):
		return GroupCodeNotFound
	case errors.Is(err, store.ErrGroupAlreadyExists), errors.Is(err, store.ErrMemberAlreadyExists):
		return GroupCodeExists
	default:
		return GroupCodeStorage
	}
}
