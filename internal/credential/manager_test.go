// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credential_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-device-keeper/internal/credential"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/internal/mock"
	"github.com/MKhiriev/go-device-keeper/models"
)

const owner = "com.example.account"

func newManager(t *testing.T) (*credential.Manager, *mock.MockCredentialGroups, *mock.MockCredentialListener) {
	t.Helper()
	ctrl := gomock.NewController(t)
	groups := mock.NewMockCredentialGroups(ctrl)
	listener := mock.NewMockCredentialListener(ctrl)

	m := credential.NewManager(groups, logger.Nop())
	m.SetListener(listener)
	require.NoError(t, m.RegisterCredentialCallback(owner))
	return m, groups, listener
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// ── Local import ────────────────────────────────────────────────────────────

func TestImportCredential_LocalForwardsMatchingResult(t *testing.T) {
	m, groups, listener := newManager(t)
	ctx := context.Background()

	info := mustJSON(t, models.CredentialRequest{
		ProcessType: models.ProcessTypeLocal,
		AuthType:    models.CredentialAuthSameAccount,
		UserID:      "user-1",
		CredentialData: []models.CredentialData{{
			CredentialType: models.CredentialTypeSymmetric,
			CredentialID:   "c1",
			AuthCode:       "secret-code",
		}},
	})

	groups.EXPECT().
		CreateGroup(ctx, gomock.Any(), models.GroupTypeIdenticalAccount, "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, requestID int64, _ models.GroupType, _, cred string) error {
			assert.Contains(t, cred, `"authCode":"secret-code"`)
			// the connector notifies before the call returns
			m.OnGroupResult(models.GroupResult{RequestID: requestID + 1, Operation: models.OpGroupCreate})
			m.OnGroupResult(models.GroupResult{RequestID: requestID, Operation: models.OpGroupCreate, Payload: `{"groupId":"g1"}`})
			return nil
		})
	listener.EXPECT().OnCredentialResult(models.CredentialResult{
		OwnerID: owner,
		Action:  int(models.OpGroupCreate),
		Result:  `{"groupId":"g1"}`,
	})

	require.NoError(t, m.ImportCredential(ctx, owner, info))
}

func TestImportCredential_LocalFailureCode(t *testing.T) {
	m, groups, listener := newManager(t)
	ctx := context.Background()

	info := mustJSON(t, models.CredentialRequest{
		ProcessType: models.ProcessTypeLocal,
		AuthType:    models.CredentialAuthCrossAccount,
		UserID:      "user-1",
		CredentialData: []models.CredentialData{{
			CredentialType:  models.CredentialTypeAsymmetric,
			ServerPk:        "pk",
			PkInfoSignature: "sig",
			PkInfo:          "info",
		}},
	})

	groups.EXPECT().
		CreateGroup(ctx, gomock.Any(), models.GroupTypeAcrossAccount, "user-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, requestID int64, _ models.GroupType, _, _ string) error {
			m.OnGroupResult(models.GroupResult{RequestID: requestID, Operation: models.OpGroupCreate, Code: models.CodeFailed})
			return nil
		})
	listener.EXPECT().OnCredentialResult(gomock.Any()).Do(func(res models.CredentialResult) {
		assert.JSONEq(t, `{"errorCode":-20000}`, res.Result)
	})

	require.NoError(t, m.ImportCredential(ctx, owner, info))
}

func TestImportCredential_LocalCallFailureDropsLateResult(t *testing.T) {
	m, groups, _ := newManager(t)
	ctx := context.Background()

	info := mustJSON(t, models.CredentialRequest{
		ProcessType:    models.ProcessTypeLocal,
		AuthType:       models.CredentialAuthSameAccount,
		UserID:         "user-1",
		CredentialData: []models.CredentialData{{CredentialType: models.CredentialTypeSymmetric, AuthCode: "x"}},
	})

	var seen int64
	groups.EXPECT().CreateGroup(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, requestID int64, _ models.GroupType, _, _ string) error {
			seen = requestID
			return models.ErrTimedOut
		})

	err := m.ImportCredential(ctx, owner, info)
	require.ErrorIs(t, err, models.ErrTimedOut)

	// no listener call expected
	m.OnGroupResult(models.GroupResult{RequestID: seen, Operation: models.OpGroupCreate})
}

func TestImportCredential_Validation(t *testing.T) {
	m, _, _ := newManager(t)
	ctx := context.Background()

	sym := []models.CredentialData{{CredentialType: models.CredentialTypeSymmetric, AuthCode: "x"}}
	tests := []struct {
		name  string
		owner string
		info  string
		want  error
	}{
		{"empty owner", "", `{}`, models.ErrInvalidParameter},
		{"empty info", owner, "", models.ErrInvalidParameter},
		{"unregistered owner", "com.other", `{}`, models.ErrNotFound},
		{"not json", owner, "{", models.ErrInvalidParameter},
		{"bad auth type", owner, mustJSON(t, models.CredentialRequest{ProcessType: 1, AuthType: 3, UserID: "u", CredentialData: sym}), models.ErrInvalidParameter},
		{"bad process type", owner, mustJSON(t, models.CredentialRequest{ProcessType: 3, AuthType: 1, UserID: "u", CredentialData: sym}), models.ErrInvalidParameter},
		{"no user", owner, mustJSON(t, models.CredentialRequest{ProcessType: 1, AuthType: 1, CredentialData: sym}), models.ErrInvalidParameter},
		{"two local credentials", owner, mustJSON(t, models.CredentialRequest{ProcessType: 1, AuthType: 1, UserID: "u", CredentialData: append(sym, sym...)}), models.ErrInvalidParameter},
		{"symmetric without code", owner, mustJSON(t, models.CredentialRequest{ProcessType: 1, AuthType: 1, UserID: "u",
			CredentialData: []models.CredentialData{{CredentialType: models.CredentialTypeSymmetric}}}), models.ErrInvalidParameter},
		{"asymmetric without pk", owner, mustJSON(t, models.CredentialRequest{ProcessType: 1, AuthType: 1, UserID: "u",
			CredentialData: []models.CredentialData{{CredentialType: models.CredentialTypeAsymmetric, PkInfo: "i"}}}), models.ErrInvalidParameter},
		{"unknown credential type", owner, mustJSON(t, models.CredentialRequest{ProcessType: 1, AuthType: 1, UserID: "u",
			CredentialData: []models.CredentialData{{CredentialType: 9}}}), models.ErrInvalidParameter},
		{"remote without peer device", owner, mustJSON(t, models.CredentialRequest{ProcessType: 2, AuthType: 1, UserID: "u", CredentialData: sym}), models.ErrInvalidParameter},
		{"cross account without peer user", owner, mustJSON(t, models.CredentialRequest{ProcessType: 2, AuthType: 2, UserID: "u", CredentialData: sym}), models.ErrInvalidParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, m.ImportCredential(ctx, tt.owner, tt.info), tt.want)
		})
	}
}

// ── Remote import and delete ────────────────────────────────────────────────

func TestImportCredential_RemoteCrossAccount(t *testing.T) {
	m, groups, _ := newManager(t)
	ctx := context.Background()

	info := mustJSON(t, models.CredentialRequest{
		ProcessType: models.ProcessTypeRemote,
		AuthType:    models.CredentialAuthCrossAccount,
		UserID:      "user-1",
		PeerUserID:  "user-2",
		CredentialData: []models.CredentialData{
			{CredentialType: models.CredentialTypeSymmetric, AuthCode: "a", PeerDeviceID: "d1"},
			{CredentialType: models.CredentialTypeSymmetric, AuthCode: "b", PeerDeviceID: "d2"},
		},
	})

	groups.EXPECT().AddMultiMembers(ctx, models.GroupTypeAcrossAccount, "user-2", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.GroupType, _ string, devices []models.GroupMember) error {
			require.Len(t, devices, 2)
			assert.Equal(t, "d1", devices[0].DeviceID)
			assert.Equal(t, "user-2", devices[0].UserID)
			assert.Contains(t, devices[1].Credential, `"authCode":"b"`)
			return nil
		})

	require.NoError(t, m.ImportCredential(ctx, owner, info))
}

func TestDeleteCredential(t *testing.T) {
	m, groups, listener := newManager(t)
	ctx := context.Background()

	local := mustJSON(t, models.CredentialRequest{ProcessType: models.ProcessTypeLocal, AuthType: 1, UserID: "user-1"})
	groups.EXPECT().DeleteGroupByUser(ctx, gomock.Any(), "user-1", models.GroupTypeIdenticalAccount).
		DoAndReturn(func(_ context.Context, requestID int64, _ string, _ models.GroupType) error {
			m.OnGroupResult(models.GroupResult{RequestID: requestID, Operation: models.OpGroupDisband})
			return nil
		})
	listener.EXPECT().OnCredentialResult(gomock.Any()).Do(func(res models.CredentialResult) {
		assert.Equal(t, int(models.OpGroupDisband), res.Action)
	})
	require.NoError(t, m.DeleteCredential(ctx, owner, local))

	remote := mustJSON(t, models.CredentialRequest{
		ProcessType:    models.ProcessTypeRemote,
		AuthType:       1,
		UserID:         "user-1",
		CredentialData: []models.CredentialData{{CredentialType: models.CredentialTypeSymmetric, PeerDeviceID: "d1"}},
	})
	groups.EXPECT().DelMultiMembers(ctx, models.GroupTypeIdenticalAccount, "user-1",
		[]models.GroupMember{{DeviceID: "d1", UserID: "user-1"}}).Return(nil)
	require.NoError(t, m.DeleteCredential(ctx, owner, remote))

	groups.EXPECT().DeleteGroupByUser(ctx, gomock.Any(), "user-9", models.GroupTypeIdenticalAccount).Return(models.ErrNotFound)
	err := m.DeleteCredential(ctx, owner, mustJSON(t, models.CredentialRequest{ProcessType: 1, AuthType: 1, UserID: "user-9"}))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUnregisterCredentialCallback(t *testing.T) {
	m, _, _ := newManager(t)

	require.NoError(t, m.UnregisterCredentialCallback(owner))
	err := m.ImportCredential(context.Background(), owner, `{}`)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, m.RegisterCredentialCallback(""), models.ErrInvalidParameter)
}

// ── RequestCredential ───────────────────────────────────────────────────────

func TestRequestCredential(t *testing.T) {
	m, groups, _ := newManager(t)
	ctx := context.Background()

	params := models.RequestCredentialParams{UserID: "user-1", Version: "1.0"}
	groups.EXPECT().GetRegisterInfo(ctx, params).Return(models.RegisterInfo{
		Version:   "1.0",
		UserID:    "user-1",
		DeviceID:  "udid-1",
		DevicePk:  "pk",
		CertChain: []string{"leaf", "root"},
	}, nil)

	out, err := m.RequestCredential(ctx, `{"userId":"user-1","version":"1.0"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.0","userId":"user-1","deviceId":"udid-1","devicePk":"pk","certChain":["leaf","root"]}`, out)

	_, err = m.RequestCredential(ctx, `{"userId":"user-1"}`)
	assert.ErrorIs(t, err, models.ErrInvalidParameter)

	groups.EXPECT().GetRegisterInfo(ctx, gomock.Any()).Return(models.RegisterInfo{}, errors.New("attestation down"))
	_, err = m.RequestCredential(ctx, `{"userId":"u","version":"1"}`)
	assert.Error(t, err)
}
