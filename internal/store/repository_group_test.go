// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{
		DB:                 conn,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var groupRowColumns = []string{"group_id", "group_name", "group_owner", "group_type", "group_visibility", "user_id"}

// ── CreateGroup ───────────────────────────────────────────────────────────────

func TestCreateGroup_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGroupRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO trust_groups").
		WithArgs("g1", "pin-1", "keeper", 256, 0, "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateGroup(context.Background(), models.GroupInfo{
		GroupID: "g1", GroupName: "pin-1", GroupOwner: "keeper", GroupType: models.GroupTypePeerToPeer,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGroup_Duplicate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGroupRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO trust_groups").WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.CreateGroup(context.Background(), models.GroupInfo{GroupID: "g1"})
	assert.ErrorIs(t, err, ErrGroupAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestCreateGroup_RetriesTransientError verifies that a serialization
// failure is retried and the second attempt's success is returned.
func TestCreateGroup_RetriesTransientError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGroupRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO trust_groups").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec("INSERT INTO trust_groups").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateGroup(context.Background(), models.GroupInfo{GroupID: "g1"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGroup_OtherError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGroupRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO trust_groups").WillReturnError(pgError(pgerrcode.SyntaxError))

	err := repo.CreateGroup(context.Background(), models.GroupInfo{GroupID: "g1"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── DeleteGroup ───────────────────────────────────────────────────────────────

func TestDeleteGroup_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGroupRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM credentials WHERE group_id").WithArgs("g1").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM group_members WHERE group_id").WithArgs("g1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM trust_groups WHERE group_id").WithArgs("g1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteGroup(context.Background(), "g1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGroup_NotFoundRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGroupRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM credentials").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM group_members").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM trust_groups").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.DeleteGroup(context.Background(), "g1"), ErrGroupNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGroup_BeginFails(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGroupRepository(db, logger.Nop())

	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	assert.ErrorIs(t, repo.DeleteGroup(context.Background(), "g1"), ErrBeginningTransaction)
}

// ── FindGroups / FindRelatedGroups ────────────────────────────────────────────

func TestFindGroups_FiltersAndScans(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGroupRepository(db, logger.Nop())

	rows := sqlmock.NewRows(groupRowColumns).
		AddRow("g1", "alice", "keeper", 1, -1, "alice-id")
	mock.ExpectQuery(`SELECT .* FROM trust_groups WHERE group_type = \$1 AND user_id = \$2`).
		WithArgs(1, "alice-id").
		WillReturnRows(rows)

	groups, err := repo.FindGroups(context.Background(), models.GroupQuery{
		GroupType: models.GroupTypeIdenticalAccount,
		UserID:    "alice-id",
	})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, models.GroupInfo{
		GroupID:         "g1",
		GroupName:       "alice",
		GroupOwner:      "keeper",
		GroupType:       models.GroupTypeIdenticalAccount,
		GroupVisibility: models.GroupVisibilityPublic,
		UserID:          "alice-id",
	}, groups[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindGroups_NoFilter(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGroupRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT .* FROM trust_groups ORDER BY`).WillReturnRows(sqlmock.NewRows(groupRowColumns))

	groups, err := repo.FindGroups(context.Background(), models.GroupQuery{})
	require.NoError(t, err)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestGetGroup_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGroupRepository(db, logger.Nop())

	mock.ExpectQuery("FROM trust_groups WHERE group_id").WithArgs("nope").WillReturnRows(sqlmock.NewRows(groupRowColumns))

	_, err := repo.GetGroup(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestFindRelatedGroups(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGroupRepository(db, logger.Nop())

	mock.ExpectQuery(`FROM trust_groups g JOIN group_members m ON m.group_id = g.group_id WHERE m.device_id = \$1`).
		WithArgs("dev-b").
		WillReturnRows(sqlmock.NewRows(groupRowColumns).
			AddRow("g1", "pin-1", "keeper", 256, 0, "").
			AddRow("g2", "pin-2", "keeper", 256, 0, ""))

	groups, err := repo.FindRelatedGroups(context.Background(), "dev-b")
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "g2", groups[1].GroupID)
	assert.Equal(t, models.GroupTypePeerToPeer, groups[0].GroupType)
}

func TestFindGroups_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewGroupRepository(db, logger.Nop())

	mock.ExpectQuery("FROM trust_groups").WillReturnError(sql.ErrConnDone)

	_, err := repo.FindGroups(context.Background(), models.GroupQuery{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
