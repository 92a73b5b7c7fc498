// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-device-keeper/internal/config"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/models"
)

// TestStorages_SQLiteRoundTrip runs the migrations on a real sqlite file
// and walks a group through its whole life.
func TestStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	cfg := config.Storage{DB: config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "keeper.db"),
	}}

	s, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.Ping(ctx))

	group := models.GroupInfo{
		GroupID:    "0190-group",
		GroupName:  "pin-1",
		GroupOwner: "keeper",
		GroupType:  models.GroupTypePeerToPeer,
	}
	require.NoError(t, s.Groups.CreateGroup(ctx, group))
	assert.ErrorIs(t, s.Groups.CreateGroup(ctx, group), ErrGroupAlreadyExists)

	require.NoError(t, s.Members.AddMembers(ctx, []models.GroupMember{
		{GroupID: group.GroupID, DeviceID: "dev-a"},
		{GroupID: group.GroupID, DeviceID: "dev-b"},
	}))
	assert.ErrorIs(t, s.Members.AddMembers(ctx, []models.GroupMember{{GroupID: group.GroupID, DeviceID: "dev-a"}}), ErrMemberAlreadyExists)

	ok, err := s.Members.IsMember(ctx, group.GroupID, "dev-b")
	require.NoError(t, err)
	assert.True(t, ok)

	related, err := s.Groups.FindRelatedGroups(ctx, "dev-b")
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, group, related[0])

	require.NoError(t, s.Credentials.SaveCredential(ctx, models.StoredCredential{
		CredentialID: "c1", GroupID: group.GroupID, UserID: "u", CredentialType: 1, SealedAuthCode: []byte{1, 2, 3},
	}))
	creds, err := s.Credentials.ListCredentials(ctx, group.GroupID)
	require.NoError(t, err)
	require.Len(t, creds, 1)
	assert.Equal(t, []byte{1, 2, 3}, creds[0].SealedAuthCode)

	n, err := s.Members.DeleteMembers(ctx, group.GroupID, []string{"dev-a", "dev-x"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, s.Groups.DeleteGroup(ctx, group.GroupID))
	assert.ErrorIs(t, s.Groups.DeleteGroup(ctx, group.GroupID), ErrGroupNotFound)

	members, err := s.Members.ListMembers(ctx, group.GroupID)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestNewDB_UnknownDriver(t *testing.T) {
	_, err := NewDB(context.Background(), config.DB{Driver: "mysql"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

// ── classifiers ───────────────────────────────────────────────────────────────

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.DeadlockDetected)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.ConnectionFailure)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	db := &DB{}
	assert.True(t, db.isUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.True(t, db.isUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}))
	assert.False(t, db.isUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}))
	assert.False(t, db.isUniqueViolation(errors.New("plain")))
}
