// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/models"
)

// ── members ───────────────────────────────────────────────────────────────────

func TestAddMembers_InsertsAllInOneStatement(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMemberRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO group_members \(group_id,device_id,user_id,credential\) VALUES \(\$1,\$2,\$3,\$4\),\(\$5,\$6,\$7,\$8\)`).
		WithArgs("g1", "dev-a", "u", "", "g1", "dev-b", "u", "{}").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.AddMembers(context.Background(), []models.GroupMember{
		{GroupID: "g1", DeviceID: "dev-a", UserID: "u"},
		{GroupID: "g1", DeviceID: "dev-b", UserID: "u", Credential: "{}"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddMembers_Duplicate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMemberRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO group_members").WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	err := repo.AddMembers(context.Background(), []models.GroupMember{{GroupID: "g1", DeviceID: "dev-a"}})
	assert.ErrorIs(t, err, ErrMemberAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddMembers_Empty(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMemberRepository(db, logger.Nop())

	require.NoError(t, repo.AddMembers(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMembers(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMemberRepository(db, logger.Nop())

	mock.ExpectExec(`DELETE FROM group_members WHERE device_id IN \(\$1,\$2\) AND group_id = \$3`).
		WithArgs("dev-a", "dev-b", "g1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.DeleteMembers(context.Background(), "g1", []string{"dev-a", "dev-b"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsMember(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMemberRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM group_members WHERE device_id = \$1 AND group_id = \$2`).
		WithArgs("dev-a", "g1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("dev-z", "g1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	ok, err := repo.IsMember(context.Background(), "g1", "dev-a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.IsMember(context.Background(), "g1", "dev-z")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListMembers(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMemberRepository(db, logger.Nop())

	mock.ExpectQuery("FROM group_members WHERE group_id").
		WithArgs("g1").
		WillReturnRows(sqlmock.NewRows([]string{"group_id", "device_id", "user_id", "credential"}).
			AddRow("g1", "dev-a", "", "").
			AddRow("g1", "dev-b", "u", `{"credentialType":1}`))

	members, err := repo.ListMembers(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "dev-b", members[1].DeviceID)
	assert.Equal(t, `{"credentialType":1}`, members[1].Credential)
}

// ── credentials ───────────────────────────────────────────────────────────────

func TestSaveCredential_EncodesSealedCode(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(db, logger.Nop())

	sealed := []byte{0x00, 0xff, 0x10}
	mock.ExpectExec("INSERT INTO credentials").
		WithArgs("c1", "g1", "u", "", 1, "", base64.StdEncoding.EncodeToString(sealed)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveCredential(context.Background(), models.StoredCredential{
		CredentialID: "c1", GroupID: "g1", UserID: "u", CredentialType: 1, SealedAuthCode: sealed,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCredentials_DecodesSealedCode(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(db, logger.Nop())

	cols := []string{"credential_id", "group_id", "user_id", "peer_device_id", "credential_type", "pk_info", "sealed_auth_code"}
	mock.ExpectQuery("FROM credentials WHERE group_id").
		WithArgs("g1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("c1", "g1", "u", "", 1, "", base64.StdEncoding.EncodeToString([]byte("sealed"))).
			AddRow("c2", "g1", "u", "dev-b", 2, "pk", ""))

	creds, err := repo.ListCredentials(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, creds, 2)
	assert.Equal(t, []byte("sealed"), creds[0].SealedAuthCode)
	assert.Equal(t, "pk", creds[1].PkInfo)
	assert.Empty(t, creds[1].SealedAuthCode)
}

func TestListCredentials_BadEncoding(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(db, logger.Nop())

	cols := []string{"credential_id", "group_id", "user_id", "peer_device_id", "credential_type", "pk_info", "sealed_auth_code"}
	mock.ExpectQuery("FROM credentials").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("c1", "g1", "u", "", 1, "", "***"))

	_, err := repo.ListCredentials(context.Background(), "g1")
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestDeleteCredentials_ByPeer(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(db, logger.Nop())

	mock.ExpectExec(`DELETE FROM credentials WHERE group_id = \$1 AND peer_device_id = \$2`).
		WithArgs("g1", "dev-b").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteCredentials(context.Background(), "g1", "dev-b"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
