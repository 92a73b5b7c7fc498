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

const (
	tableGroups      = "trust_groups"
	tableMembers     = "group_members"
	tableCredentials = "credentials"
)

var groupColumns = []string{"group_id", "group_name", "group_owner", "group_type", "group_visibility", "user_id"}

// groupRepository is the SQL implementation of [GroupRepository].
type groupRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewGroupRepository constructs a [GroupRepository] over db.
func NewGroupRepository(db *DB, logger *logger.Logger) GroupRepository {
	logger.Debug().Msg("creating group repository")
	return &groupRepository{db: db, logger: logger}
}

// CreateGroup inserts group. A taken id yields [ErrGroupAlreadyExists].
func (r *groupRepository) CreateGroup(ctx context.Context, group models.GroupInfo) error {
	query, args, err := r.db.builder.
		Insert(tableGroups).
		Columns(groupColumns...).
		Values(group.GroupID, group.GroupName, group.GroupOwner, int(group.GroupType), int(group.GroupVisibility), group.UserID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.retry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if r.db.isUniqueViolation(err) {
			return ErrGroupAlreadyExists
		}
		r.logger.Err(err).Str("func", "*groupRepository.CreateGroup").Str("group_id", group.GroupID).Msg("insert group failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// DeleteGroup removes credentials, members and the group in one
// transaction.
func (r *groupRepository) DeleteGroup(ctx context.Context, groupID string) error {
	return r.db.inTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{tableCredentials, tableMembers} {
			query, args, err := r.db.builder.Delete(table).Where(sq.Eq{"group_id": groupID}).ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				r.logger.Err(err).Str("func", "*groupRepository.DeleteGroup").Str("table", table).Msg("delete group rows failed")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		query, args, err := r.db.builder.Delete(tableGroups).Where(sq.Eq{"group_id": groupID}).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			r.logger.Err(err).Str("func", "*groupRepository.DeleteGroup").Str("group_id", groupID).Msg("delete group failed")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrGroupNotFound
		}
		return nil
	})
}

// GetGroup returns the group with groupID or [ErrGroupNotFound].
func (r *groupRepository) GetGroup(ctx context.Context, groupID string) (models.GroupInfo, error) {
	groups, err := r.FindGroups(ctx, models.GroupQuery{GroupID: groupID})
	if err != nil {
		return models.GroupInfo{}, err
	}
	if len(groups) == 0 {
		return models.GroupInfo{}, ErrGroupNotFound
	}
	return groups[0], nil
}

// FindGroups returns the groups matching every non-zero field of query,
// oldest first.
func (r *groupRepository) FindGroups(ctx context.Context, query models.GroupQuery) ([]models.GroupInfo, error) {
	where := sq.Eq{}
	if query.GroupID != "" {
		where["group_id"] = query.GroupID
	}
	if query.GroupName != "" {
		where["group_name"] = query.GroupName
	}
	if query.GroupOwner != "" {
		where["group_owner"] = query.GroupOwner
	}
	if query.GroupType != models.GroupTypeAll {
		where["group_type"] = int(query.GroupType)
	}
	if query.UserID != "" {
		where["user_id"] = query.UserID
	}

	b := r.db.builder.Select(groupColumns...).From(tableGroups).OrderBy("created_at", "group_id")
	if len(where) > 0 {
		b = b.Where(where)
	}
	return r.selectGroups(ctx, b, "*groupRepository.FindGroups")
}

// FindRelatedGroups returns the groups deviceID belongs to.
func (r *groupRepository) FindRelatedGroups(ctx context.Context, deviceID string) ([]models.GroupInfo, error) {
	cols := make([]string, len(groupColumns))
	for i, c := range groupColumns {
		cols[i] = "g." + c
	}
	b := r.db.builder.
		Select(cols...).
		From(tableGroups + " g").
		Join(tableMembers + " m ON m.group_id = g.group_id").
		Where(sq.Eq{"m.device_id": deviceID}).
		OrderBy("g.created_at", "g.group_id")
	return r.selectGroups(ctx, b, "*groupRepository.FindRelatedGroups")
}

func (r *groupRepository) selectGroups(ctx context.Context, b sq.SelectBuilder, fn string) ([]models.GroupInfo, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", fn).Msg("select groups failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	groups := make([]models.GroupInfo, 0)
	for rows.Next() {
		var (
			g          models.GroupInfo
			groupType  int
			visibility int
		)
		if err = rows.Scan(&g.GroupID, &g.GroupName, &g.GroupOwner, &groupType, &visibility, &g.UserID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		g.GroupType = models.GroupType(groupType)
		g.GroupVisibility = models.GroupVisibility(visibility)
		groups = append(groups, g)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return groups, nil
}
