// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package trustgroup

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-device-keeper/models"
)

// CreateGroup creates a credential-style group of groupType for userID after
// deleting every group of the same type owned by another user. The outcome
// is also forwarded to the ResultListener.
func (c *Connector) CreateGroup(ctx context.Context, requestID int64, groupType models.GroupType, userID, credential string) error {
	if !groupType.Concrete() {
		return fmt.Errorf("%w: group type %d", models.ErrInvalidParameter, groupType)
	}
	if userID == "" {
		return fmt.Errorf("%w: empty user id", models.ErrInvalidParameter)
	}

	c.DealWithRedundantGroups(ctx, userID, groupType)

	params := models.CreateGroupParams{
		GroupName:       fmt.Sprintf("%s-%s", groupType.String(), userID),
		GroupType:       groupType,
		GroupVisibility: models.GroupVisibilityPrivate,
		UserID:          userID,
		DeviceID:        c.localID,
		Credential:      credential,
	}

	rec := pendingOp{requestID: requestID, op: models.OpGroupCreate, notify: true}
	_, err := c.run(ctx, models.CredentialNetwork, rec, func(id int64) error {
		return c.manager.CreateGroup(ctx, id, params)
	})
	if err != nil {
		c.log.Err(err).
			Str("func", "Connector.CreateGroup").
			Int64("request_id", requestID).
			Str("user_id", userID).
			Msg("failed to create credential group")
		return fmt.Errorf("create group: %w", err)
	}
	return nil
}

// CreateGroupByName creates a PIN-style peer-to-peer group and returns the
// creation payload reported by the subsystem.
func (c *Connector) CreateGroupByName(ctx context.Context, requestID int64, groupName string) (string, error) {
	if groupName == "" {
		return "", fmt.Errorf("%w: empty group name", models.ErrInvalidParameter)
	}

	params := models.CreateGroupParams{
		GroupName:       groupName,
		GroupType:       models.GroupTypePeerToPeer,
		GroupVisibility: models.GroupVisibilityPrivate,
		DeviceID:        c.localID,
	}

	rec := pendingOp{requestID: requestID, op: models.OpGroupCreate}
	res, err := c.run(ctx, models.PinCodeNetwork, rec, func(id int64) error {
		return c.manager.CreateGroup(ctx, id, params)
	})
	if err != nil {
		return "", fmt.Errorf("create group %q: %w", groupName, err)
	}
	return res.payload, nil
}

// DealWithRedundantGroups deletes every group of groupType whose user is not
// userID. A failed lookup is treated as "no redundant groups" and failed
// deletes are logged and skipped.
func (c *Connector) DealWithRedundantGroups(ctx context.Context, userID string, groupType models.GroupType) {
	groups, err := c.manager.GetGroupInfo(ctx, models.GroupQuery{GroupType: groupType})
	if err != nil {
		c.log.Err(err).
			Str("func", "Connector.DealWithRedundantGroups").
			Int("group_type", int(groupType)).
			Msg("group lookup failed, assuming no redundant groups")
		return
	}

	for _, g := range groups {
		if g.GroupType != groupType || g.UserID == userID {
			continue
		}
		if err = c.deleteGroup(ctx, models.CredentialNetwork, 0, g.GroupID, false); err != nil {
			c.log.Err(err).
				Str("func", "Connector.DealWithRedundantGroups").
				Str("group_id", g.GroupID).
				Msg("failed to delete redundant group")
		}
	}
}

// DeleteGroup deletes groupID unconditionally.
func (c *Connector) DeleteGroup(ctx context.Context, groupID string) error {
	if groupID == "" {
		return fmt.Errorf("%w: empty group id", models.ErrInvalidParameter)
	}
	return c.deleteGroup(ctx, models.PinCodeNetwork, 0, groupID, false)
}

// DeleteGroupByUser deletes the group of groupType owned by userID. It
// returns [models.ErrNotFound] when no such group exists.
func (c *Connector) DeleteGroupByUser(ctx context.Context, requestID int64, userID string, groupType models.GroupType) error {
	if !groupType.Concrete() {
		return fmt.Errorf("%w: group type %d", models.ErrInvalidParameter, groupType)
	}

	groups, err := c.manager.GetGroupInfo(ctx, models.GroupQuery{GroupType: groupType})
	if err != nil {
		return fmt.Errorf("%w: group lookup: %w", models.ErrSubsystemCallFailed, err)
	}

	idx := slices.IndexFunc(groups, func(g models.GroupInfo) bool {
		return g.GroupType == groupType && g.UserID == userID
	})
	if idx < 0 {
		return fmt.Errorf("%w: no group of type %d for user %s", models.ErrNotFound, groupType, userID)
	}

	return c.deleteGroup(ctx, models.CredentialNetwork, requestID, groups[idx].GroupID, true)
}

func (c *Connector) deleteGroup(ctx context.Context, s models.NetworkStyle, requestID int64, groupID string, notify bool) error {
	rec := pendingOp{requestID: requestID, op: models.OpGroupDisband, notify: notify}
	_, err := c.run(ctx, s, rec, func(id int64) error {
		return c.manager.DeleteGroup(ctx, id, groupID)
	})
	if err != nil {
		return fmt.Errorf("delete group %s: %w", groupID, err)
	}
	return nil
}

// AddMember joins deviceID to groupID with a PIN code.
func (c *Connector) AddMember(ctx context.Context, requestID int64, groupID, deviceID, pinCode, connectInfo string) error {
	if groupID == "" || deviceID == "" {
		return fmt.Errorf("%w: group and device ids are required", models.ErrInvalidParameter)
	}

	params := models.AddMemberParams{
		GroupID:     groupID,
		GroupType:   models.GroupTypePeerToPeer,
		DeviceID:    deviceID,
		PinCode:     pinCode,
		ConnectInfo: connectInfo,
	}

	rec := pendingOp{requestID: requestID, op: models.OpMemberJoin}
	_, err := c.run(ctx, models.PinCodeNetwork, rec, func(id int64) error {
		return c.manager.AddMember(ctx, id, params)
	})
	if err != nil {
		return fmt.Errorf("add member %s to %s: %w", deviceID, groupID, err)
	}
	return nil
}

// DelMember removes deviceID from groupID.
func (c *Connector) DelMember(ctx context.Context, groupID, deviceID string) error {
	if groupID == "" || deviceID == "" {
		return fmt.Errorf("%w: group and device ids are required", models.ErrInvalidParameter)
	}

	rec := pendingOp{op: models.OpMemberDelete}
	_, err := c.run(ctx, models.PinCodeNetwork, rec, func(id int64) error {
		return c.manager.DeleteMember(ctx, id, groupID, deviceID)
	})
	if err != nil {
		return fmt.Errorf("delete member %s from %s: %w", deviceID, groupID, err)
	}
	return nil
}

// AddMultiMembers adds credential members of groupType for userID.
func (c *Connector) AddMultiMembers(ctx context.Context, groupType models.GroupType, userID string, devices []models.GroupMember) error {
	params := models.MultiMembersParams{GroupType: groupType, UserID: userID, Devices: devices}
	if err := c.manager.AddMultiMembers(ctx, params); err != nil {
		return fmt.Errorf("%w: add members: %w", models.ErrSubsystemCallFailed, err)
	}
	return nil
}

// DelMultiMembers removes credential members of groupType for userID.
func (c *Connector) DelMultiMembers(ctx context.Context, groupType models.GroupType, userID string, devices []models.GroupMember) error {
	params := models.MultiMembersParams{GroupType: groupType, UserID: userID, Devices: devices}
	if err := c.manager.DelMultiMembers(ctx, params); err != nil {
		return fmt.Errorf("%w: delete members: %w", models.ErrSubsystemCallFailed, err)
	}
	return nil
}
