// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package trustgroup

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-device-keeper/models"
)

// GetGroupInfo returns the groups matching q. An empty result is not an
// error.
func (c *Connector) GetGroupInfo(ctx context.Context, q models.GroupQuery) ([]models.GroupInfo, error) {
	groups, err := c.manager.GetGroupInfo(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: get group info: %w", models.ErrSubsystemCallFailed, err)
	}
	return groups, nil
}

// GetRelatedGroups returns every group deviceID belongs to.
func (c *Connector) GetRelatedGroups(ctx context.Context, deviceID string) ([]models.GroupInfo, error) {
	if deviceID == "" {
		return nil, fmt.Errorf("%w: empty device id", models.ErrInvalidParameter)
	}
	groups, err := c.manager.GetRelatedGroups(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: related groups of %s: %w", models.ErrSubsystemCallFailed, deviceID, err)
	}
	return groups, nil
}

// GetGroupID returns the id of the first group deviceID belongs to.
func (c *Connector) GetGroupID(ctx context.Context, deviceID string) (string, error) {
	groups, err := c.GetRelatedGroups(ctx, deviceID)
	if err != nil {
		return "", err
	}
	if len(groups) == 0 {
		return "", fmt.Errorf("%w: device %s is in no group", models.ErrNotFound, deviceID)
	}
	return groups[0].GroupID, nil
}

// IsDevicesInGroup reports whether host and peer share a group.
func (c *Connector) IsDevicesInGroup(ctx context.Context, hostID, peerID string) bool {
	hostGroups, err := c.GetRelatedGroups(ctx, hostID)
	if err != nil {
		return false
	}
	peerGroups, err := c.GetRelatedGroups(ctx, peerID)
	if err != nil {
		return false
	}

	for _, h := range hostGroups {
		for _, p := range peerGroups {
			if h.GroupID == p.GroupID && h.GroupName == p.GroupName {
				return true
			}
		}
	}
	return false
}

// IsGroupInfoInvalid reports whether g is outside automatic sync and
// cleanup: it belongs to another owner, is an identical-account group, or is
// public.
func (c *Connector) IsGroupInfoInvalid(g models.GroupInfo) bool {
	return g.GroupOwner != c.owner ||
		g.GroupType == models.GroupTypeIdenticalAccount ||
		g.GroupVisibility == models.GroupVisibilityPublic
}

// GetSyncGroupList returns the ids of the eligible groups in groups.
func (c *Connector) GetSyncGroupList(groups []models.GroupInfo) []string {
	ids := make([]string, 0, len(groups))
	for _, g := range groups {
		if c.IsGroupInfoInvalid(g) {
			continue
		}
		ids = append(ids, g.GroupID)
	}
	return ids
}

// SyncGroups removes deviceID from every eligible local group the peer no
// longer lists in remoteGroupIDs.
func (c *Connector) SyncGroups(ctx context.Context, deviceID string, remoteGroupIDs []string) error {
	groups, err := c.GetRelatedGroups(ctx, deviceID)
	if err != nil {
		return err
	}

	for _, g := range groups {
		if c.IsGroupInfoInvalid(g) || slices.Contains(remoteGroupIDs, g.GroupID) {
			continue
		}
		if err = c.DelMember(ctx, g.GroupID, deviceID); err != nil {
			c.log.Err(err).
				Str("func", "Connector.SyncGroups").
				Str("group_id", g.GroupID).
				Msg("failed to drop stale membership")
		}
	}
	return nil
}

// DeleteTimeOutGroup deletes every peer-to-peer group deviceID belongs to.
// It returns the number of deleted groups.
func (c *Connector) DeleteTimeOutGroup(ctx context.Context, deviceID string) (int, error) {
	groups, err := c.GetRelatedGroups(ctx, deviceID)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, g := range groups {
		if g.GroupType != models.GroupTypePeerToPeer {
			continue
		}
		if err = c.DeleteGroup(ctx, g.GroupID); err != nil {
			c.log.Err(err).
				Str("func", "Connector.DeleteTimeOutGroup").
				Str("group_id", g.GroupID).
				Msg("failed to delete timed out group")
			continue
		}
		deleted++
	}

	c.log.Info().
		Str("func", "Connector.DeleteTimeOutGroup").
		Str("device_id", deviceID).
		Int("deleted", deleted).
		Msg("timed out groups deleted")
	return deleted, nil
}

// GetRegisterInfo returns the attested register info for a credential
// request.
func (c *Connector) GetRegisterInfo(ctx context.Context, params models.RequestCredentialParams) (models.RegisterInfo, error) {
	info, err := c.manager.GetRegisterInfo(ctx, params)
	if err != nil {
		return models.RegisterInfo{}, fmt.Errorf("%w: register info: %w", models.ErrSubsystemCallFailed, err)
	}
	return info, nil
}
