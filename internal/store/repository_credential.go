// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/base64"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/models"
)

// credentialRepository stores sealed auth codes base64-encoded so the same
// TEXT column works on both drivers.
type credentialRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{db: db, logger: logger}
}

func (r *credentialRepository) SaveCredential(ctx context.Context, c models.StoredCredential) error {
	query, args, err := r.db.builder.
		Insert(tableCredentials).
		Columns("credential_id", "group_id", "user_id", "peer_device_id", "credential_type", "pk_info", "sealed_auth_code").
		Values(c.CredentialID, c.GroupID, c.UserID, c.PeerDeviceID, c.CredentialType, c.PkInfo,
			base64.StdEncoding.EncodeToString(c.SealedAuthCode)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.retry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		r.logger.Err(err).
			Str("func", "*credentialRepository.SaveCredential").
			Str("group_id", c.GroupID).
			Str("credential_id", c.CredentialID).
			Msg("insert credential failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *credentialRepository) ListCredentials(ctx context.Context, groupID string) ([]models.StoredCredential, error) {
	query, args, err := r.db.builder.
		Select("credential_id", "group_id", "user_id", "peer_device_id", "credential_type", "pk_info", "sealed_auth_code").
		From(tableCredentials).
		Where(sq.Eq{"group_id": groupID}).
		OrderBy("created_at", "credential_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*credentialRepository.ListCredentials").Msg("select credentials failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	creds := make([]models.StoredCredential, 0)
	for rows.Next() {
		var (
			c      models.StoredCredential
			sealed string
		)
		if err = rows.Scan(&c.CredentialID, &c.GroupID, &c.UserID, &c.PeerDeviceID, &c.CredentialType, &c.PkInfo, &sealed); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if c.SealedAuthCode, err = base64.StdEncoding.DecodeString(sealed); err != nil {
			return nil, fmt.Errorf("%w: sealed auth code: %w", ErrScanningRows, err)
		}
		creds = append(creds, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return creds, nil
}

// DeleteCredentials removes the group's credentials of peerDeviceID, or all
// of them when peerDeviceID is empty.
func (r *credentialRepository) DeleteCredentials(ctx context.Context, groupID, peerDeviceID string) error {
	where := sq.Eq{"group_id": groupID}
	if peerDeviceID != "" {
		where["peer_device_id"] = peerDeviceID
	}
	query, args, err := r.db.builder.Delete(tableCredentials).Where(where).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.retry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		r.logger.Err(err).Str("func", "*credentialRepository.DeleteCredentials").Str("group_id", groupID).Msg("delete credentials failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
