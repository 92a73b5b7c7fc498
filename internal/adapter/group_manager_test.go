// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-device-keeper/internal/config"
	"github.com/MKhiriev/go-device-keeper/internal/crypto"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/internal/store"
	"github.com/MKhiriev/go-device-keeper/models"
)

const (
	testOwner   = "device-keeper"
	testLocalID = "udid-local"
)

type groupReport struct {
	requestID int64
	op        models.GroupOperation
	code      int
	payload   string
	failed    bool
}

type recordingCallback struct {
	mu      sync.Mutex
	reports []groupReport
}

func (r *recordingCallback) OnFinish(requestID int64, op models.GroupOperation, payload string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, groupReport{requestID: requestID, op: op, payload: payload})
}

func (r *recordingCallback) OnError(requestID int64, op models.GroupOperation, code int, payload string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, groupReport{requestID: requestID, op: op, code: code, payload: payload, failed: true})
}

func (r *recordingCallback) only(t *testing.T) groupReport {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.Len(t, r.reports, 1)
	rep := r.reports[0]
	r.reports = nil
	return rep
}

type groupFixture struct {
	manager  *LocalGroupManager
	storages *store.Storages
	keys     crypto.KeyChain
	cb       *recordingCallback
}

func newGroupFixture(t *testing.T) *groupFixture {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.Storage{DB: config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "keeper.db"),
	}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	keys, err := crypto.NewKeyChain("node secret", bytes.Repeat([]byte{0x11}, crypto.SaltSize))
	require.NoError(t, err)
	attestor, err := crypto.NewJWTAttestor("device secret", "root secret", testLocalID)
	require.NoError(t, err)

	m := NewLocalGroupManager(storages, keys, attestor, testOwner, testLocalID, logger.Nop())
	cb := &recordingCallback{}
	m.RegisterCallback(cb)

	return &groupFixture{manager: m, storages: storages, keys: keys, cb: cb}
}

func (f *groupFixture) createGroup(t *testing.T, params models.CreateGroupParams) string {
	t.Helper()
	require.NoError(t, f.manager.CreateGroup(context.Background(), 1, params))
	f.manager.Wait()

	rep := f.cb.only(t)
	require.False(t, rep.failed, "create failed with code %d", rep.code)

	var out struct {
		GroupID string `json:"groupId"`
	}
	require.NoError(t, json.Unmarshal([]byte(rep.payload), &out))
	require.NotEmpty(t, out.GroupID)
	return out.GroupID
}

// ── CreateGroup ──────────────────────────────────────────────────────────────

func TestLocalGroupManager_CreateGroup(t *testing.T) {
	f := newGroupFixture(t)
	ctx := context.Background()

	groupID := f.createGroup(t, models.CreateGroupParams{
		GroupName: "pin-group",
		GroupType: models.GroupTypePeerToPeer,
	})

	group, err := f.storages.Groups.GetGroup(ctx, groupID)
	require.NoError(t, err)
	assert.Equal(t, "pin-group", group.GroupName)
	assert.Equal(t, testOwner, group.GroupOwner)

	ok, err := f.manager.IsDeviceInGroup(ctx, groupID, testLocalID)
	require.NoError(t, err)
	assert.True(t, ok, "local device is the first member")
}

func TestLocalGroupManager_CreateGroup_InvalidParams(t *testing.T) {
	f := newGroupFixture(t)

	tests := []struct {
		name   string
		params models.CreateGroupParams
	}{
		{name: "no name", params: models.CreateGroupParams{GroupType: models.GroupTypePeerToPeer}},
		{name: "invalid type", params: models.CreateGroupParams{GroupName: "g", GroupType: models.GroupTypeInvalid}},
		{name: "all type", params: models.CreateGroupParams{GroupName: "g", GroupType: models.GroupTypeAll}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.manager.CreateGroup(context.Background(), 7, tt.params)
			assert.ErrorIs(t, err, models.ErrInvalidParameter)
		})
	}

	f.manager.Wait()
	assert.Empty(t, f.cb.reports, "rejected calls never report")
}

func TestLocalGroupManager_CreateGroup_SealsCredential(t *testing.T) {
	f := newGroupFixture(t)
	ctx := context.Background()

	cred, err := json.Marshal(models.CredentialData{
		CredentialType: 1,
		CredentialID:   "cred-1",
		AuthCode:       "secret-code",
		PeerDeviceID:   "udid-peer",
	})
	require.NoError(t, err)

	groupID := f.createGroup(t, models.CreateGroupParams{
		GroupName:  "account",
		GroupType:  models.GroupTypeIdenticalAccount,
		UserID:     "user-1",
		DeviceID:   "udid-peer",
		Credential: string(cred),
	})

	stored, err := f.storages.Credentials.ListCredentials(ctx, groupID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "cred-1", stored[0].CredentialID)
	assert.NotContains(t, string(stored[0].SealedAuthCode), "secret-code")

	opened, err := f.keys.Open(stored[0].SealedAuthCode)
	require.NoError(t, err)
	assert.Equal(t, "secret-code", string(opened))
}

func TestLocalGroupManager_CreateGroup_BadCredential(t *testing.T) {
	f := newGroupFixture(t)

	require.NoError(t, f.manager.CreateGroup(context.Background(), 3, models.CreateGroupParams{
		GroupName:  "account",
		GroupType:  models.GroupTypeIdenticalAccount,
		Credential: "{not json",
	}))
	f.manager.Wait()

	rep := f.cb.only(t)
	assert.True(t, rep.failed)
	assert.Equal(t, int64(3), rep.requestID)
	assert.Equal(t, models.OpGroupCreate, rep.op)
	assert.Equal(t, GroupCodeInvalidParams, rep.code)
}

// ── DeleteGroup ──────────────────────────────────────────────────────────────

func TestLocalGroupManager_DeleteGroup(t *testing.T) {
	f := newGroupFixture(t)
	ctx := context.Background()

	groupID := f.createGroup(t, models.CreateGroupParams{GroupName: "g", GroupType: models.GroupTypePeerToPeer})

	require.NoError(t, f.manager.DeleteGroup(ctx, 2, groupID))
	f.manager.Wait()
	rep := f.cb.only(t)
	assert.False(t, rep.failed)
	assert.Equal(t, models.OpGroupDisband, rep.op)

	_, err := f.storages.Groups.GetGroup(ctx, groupID)
	assert.ErrorIs(t, err, store.ErrGroupNotFound)

	assert.ErrorIs(t, f.manager.DeleteGroup(ctx, 3, ""), models.ErrInvalidParameter)
}

// ── AddMember / DeleteMember ─────────────────────────────────────────────────

func TestLocalGroupManager_AddMember(t *testing.T) {
	f := newGroupFixture(t)
	ctx := context.Background()

	groupID := f.createGroup(t, models.CreateGroupParams{GroupName: "g", GroupType: models.GroupTypePeerToPeer})

	require.NoError(t, f.manager.AddMember(ctx, 4, models.AddMemberParams{GroupID: groupID, DeviceID: "udid-peer"}))
	f.manager.Wait()
	rep := f.cb.only(t)
	assert.False(t, rep.failed)
	assert.Equal(t, models.OpMemberJoin, rep.op)

	ok, err := f.manager.IsDeviceInGroup(ctx, groupID, "udid-peer")
	require.NoError(t, err)
	assert.True(t, ok)

	// joining twice is not an error
	require.NoError(t, f.manager.AddMember(ctx, 5, models.AddMemberParams{GroupID: groupID, DeviceID: "udid-peer"}))
	f.manager.Wait()
	assert.False(t, f.cb.only(t).failed)
}

func TestLocalGroupManager_AddMember_RemoteGroup(t *testing.T) {
	f := newGroupFixture(t)
	ctx := context.Background()

	connect, err := json.Marshal(connectInfo{GroupName: "peer-group", UserID: "user-2"})
	require.NoError(t, err)

	require.NoError(t, f.manager.AddMember(ctx, 6, models.AddMemberParams{
		GroupID:     "remote-group",
		DeviceID:    "udid-peer",
		ConnectInfo: string(connect),
	}))
	f.manager.Wait()
	assert.False(t, f.cb.only(t).failed)

	group, err := f.storages.Groups.GetGroup(ctx, "remote-group")
	require.NoError(t, err)
	assert.Equal(t, "peer-group", group.GroupName)
	assert.Equal(t, models.GroupTypePeerToPeer, group.GroupType)

	members, err := f.storages.Members.ListMembers(ctx, "remote-group")
	require.NoError(t, err)
	assert.Len(t, members, 2)
}

func TestLocalGroupManager_AddMember_UnknownGroup(t *testing.T) {
	f := newGroupFixture(t)

	require.NoError(t, f.manager.AddMember(context.Background(), 8, models.AddMemberParams{GroupID: "missing", DeviceID: "udid-peer"}))
	f.manager.Wait()

	rep := f.cb.only(t)
	assert.True(t, rep.failed)
	assert.Equal(t, GroupCodeNotFound, rep.code)
}

func TestLocalGroupManager_AddMember_InvalidParams(t *testing.T) {
	f := newGroupFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.manager.AddMember(ctx, 1, models.AddMemberParams{DeviceID: "d"}), models.ErrInvalidParameter)
	assert.ErrorIs(t, f.manager.AddMember(ctx, 1, models.AddMemberParams{GroupID: "g"}), models.ErrInvalidParameter)
	assert.ErrorIs(t, f.manager.AddMember(ctx, 1, models.AddMemberParams{GroupID: "g", DeviceID: "d", ConnectInfo: "{"}), models.ErrInvalidParameter)
}

func TestLocalGroupManager_DeleteMember(t *testing.T) {
	f := newGroupFixture(t)
	ctx := context.Background()

	groupID := f.createGroup(t, models.CreateGroupParams{GroupName: "g", GroupType: models.GroupTypePeerToPeer})

	require.NoError(t, f.manager.DeleteMember(ctx, 9, groupID, testLocalID))
	f.manager.Wait()
	rep := f.cb.only(t)
	assert.False(t, rep.failed)
	assert.Equal(t, models.OpMemberDelete, rep.op)

	require.NoError(t, f.manager.DeleteMember(ctx, 10, groupID, testLocalID))
	f.manager.Wait()
	rep = f.cb.only(t)
	assert.True(t, rep.failed)
	assert.Equal(t, GroupCodeNotFound, rep.code)
}

// ── Multi members ────────────────────────────────────────────────────────────

func TestLocalGroupManager_MultiMembers(t *testing.T) {
	f := newGroupFixture(t)
	ctx := context.Background()

	groupID := f.createGroup(t, models.CreateGroupParams{
		GroupName: "account",
		GroupType: models.GroupTypeIdenticalAccount,
		UserID:    "user-1",
	})

	cred, err := json.Marshal(models.CredentialData{CredentialID: "cred-b", PkInfo: "pk-b"})
	require.NoError(t, err)

	params := models.MultiMembersParams{
		GroupType: models.GroupTypeIdenticalAccount,
		UserID:    "user-1",
		Devices: []models.GroupMember{
			{DeviceID: "udid-a"},
			{DeviceID: "udid-b", Credential: string(cred)},
		},
	}
	require.NoError(t, f.manager.AddMultiMembers(ctx, params))

	members, err := f.storages.Members.ListMembers(ctx, groupID)
	require.NoError(t, err)
	assert.Len(t, members, 3)

	stored, err := f.storages.Credentials.ListCredentials(ctx, groupID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "udid-b", stored[0].PeerDeviceID)

	require.NoError(t, f.manager.DelMultiMembers(ctx, params))
	members, err = f.storages.Members.ListMembers(ctx, groupID)
	require.NoError(t, err)
	assert.Len(t, members, 1)

	stored, err = f.storages.Credentials.ListCredentials(ctx, groupID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestLocalGroupManager_MultiMembers_NoGroup(t *testing.T) {
	f := newGroupFixture(t)
	ctx := context.Background()

	params := models.MultiMembersParams{
		GroupType: models.GroupTypeIdenticalAccount,
		UserID:    "nobody",
		Devices:   []models.GroupMember{{DeviceID: "udid-a"}},
	}
	assert.ErrorIs(t, f.manager.AddMultiMembers(ctx, params), models.ErrNotFound)
	assert.ErrorIs(t, f.manager.DelMultiMembers(ctx, params), models.ErrNotFound)
	assert.ErrorIs(t, f.manager.AddMultiMembers(ctx, models.MultiMembersParams{UserID: "u"}), models.ErrInvalidParameter)
}

// ── Queries ──────────────────────────────────────────────────────────────────

func TestLocalGroupManager_Queries(t *testing.T) {
	f := newGroupFixture(t)
	ctx := context.Background()

	groupID := f.createGroup(t, models.CreateGroupParams{GroupName: "g", GroupType: models.GroupTypePeerToPeer})

	groups, err := f.manager.GetGroupInfo(ctx, models.GroupQuery{GroupID: groupID})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "g", groups[0].GroupName)

	related, err := f.manager.GetRelatedGroups(ctx, testLocalID)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, groupID, related[0].GroupID)

	ok, err := f.manager.IsDeviceInGroup(ctx, groupID, "stranger")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalGroupManager_GetRegisterInfo(t *testing.T) {
	f := newGroupFixture(t)

	info, err := f.manager.GetRegisterInfo(context.Background(), models.RequestCredentialParams{UserID: "user-1", Version: "1"})
	require.NoError(t, err)

	assert.Equal(t, "user-1", info.UserID)
	assert.Equal(t, testLocalID, info.DeviceID)
	assert.NotEmpty(t, info.DevicePk)
	require.NotEmpty(t, info.CertChain)

	claims, err := crypto.VerifyChain(info.CertChain, "root secret")
	require.NoError(t, err)
	assert.Equal(t, testLocalID, claims.DeviceID)
}

// ── groupErrorCode ───────────────────────────────────────────────────────────

func TestGroupErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: models.ErrInvalidParameter, want: GroupCodeInvalidParams},
		{err: store.ErrGroupNotFound, want: GroupCodeNotFound},
		{err: store.ErrMemberNotFound, want: GroupCodeNotFound},
		{err: store.ErrGroupAlreadyExists, want: GroupCodeExists},
		{err: store.ErrMemberAlreadyExists, want: GroupCodeExists},
		{err: assert.AnError, want: GroupCodeStorage},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, groupErrorCode(tt.err), tt.err.Error())
	}
}

// failingGroups fails every write so storage errors surface through OnError.
type failingGroups struct {
	store.GroupRepository
}

func (failingGroups) CreateGroup(context.Context, models.GroupInfo) error {
	return assert.AnError
}

func TestLocalGroupManager_CreateGroup_StorageFailure(t *testing.T) {
	f := newGroupFixture(t)
	broken := &store.Storages{
		Groups:      failingGroups{GroupRepository: f.storages.Groups},
		Members:     f.storages.Members,
		Credentials: f.storages.Credentials,
	}
	m := NewLocalGroupManager(broken, f.keys, nil, testOwner, testLocalID, logger.Nop())
	cb := &recordingCallback{}
	m.RegisterCallback(cb)

	require.NoError(t, m.CreateGroup(context.Background(), 9, models.CreateGroupParams{
		GroupName: "pin-group",
		GroupType: models.GroupTypePeerToPeer,
	}))
	m.Wait()

	rep := cb.only(t)
	assert.True(t, rep.failed)
	assert.Equal(t, int64(9), rep.requestID)
	assert.Equal(t, models.OpGroupCreate, rep.op)
	assert.Equal(t, GroupCodeStorage, rep.code)
}
