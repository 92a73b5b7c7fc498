// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/models"
)

type memberRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewMemberRepository(db *DB, logger *logger.Logger) MemberRepository {
	logger.Debug().Msg("creating member repository")
	return &memberRepository{db: db, logger: logger}
}

func (r *memberRepository) AddMembers(ctx context.Context, members []models.GroupMember) error {
	if len(members) == 0 {
		return nil
	}

	b := r.db.builder.Insert(tableMembers).Columns("group_id", "device_id", "user_id", "credential")
	for _, m := range members {
		b = b.Values(m.GroupID, m.DeviceID, m.UserID, m.Credential)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		_, execErr := tx.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if r.db.isUniqueViolation(err) {
			return ErrMemberAlreadyExists
		}
		r.logger.Err(err).Str("func", "*memberRepository.AddMembers").Int("count", len(members)).Msg("insert members failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *memberRepository) DeleteMembers(ctx context.Context, groupID string, deviceIDs []string) (int64, error) {
	if len(deviceIDs) == 0 {
		return 0, nil
	}

	query, args, err := r.db.builder.
		Delete(tableMembers).
		Where(sq.Eq{"group_id": groupID, "device_id": deviceIDs}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.retry(ctx, func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		r.logger.Err(err).Str("func", "*memberRepository.DeleteMembers").Str("group_id", groupID).Msg("delete members failed")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected, nil
}

func (r *memberRepository) IsMember(ctx context.Context, groupID, deviceID string) (bool, error) {
	query, args, err := r.db.builder.
		Select("COUNT(*)").
		From(tableMembers).
		Where(sq.Eq{"group_id": groupID, "device_id": deviceID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		r.logger.Err(err).Str("func", "*memberRepository.IsMember").Msg("count member failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n > 0, nil
}

func (r *memberRepository) ListMembers(ctx context.Context, groupID string) ([]models.GroupMember, error) {
	query, args, err := r.db.builder.
		Select("group_id", "device_id", "user_id", "credential").
		From(tableMembers).
		Where(sq.Eq{"group_id": groupID}).
		OrderBy("joined_at", "device_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*memberRepository.ListMembers").Msg("select members failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	members := make([]models.GroupMember, 0)
	for rows.Next() {
		var m models.GroupMember
		if err = rows.Scan(&m.GroupID, &m.DeviceID, &m.UserID, &m.Credential); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		members = append(members, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return members, nil
}
