// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package discovery admits at most one discovery and one publish operation
// per process. Starting an operation while a different owner holds the slot
// force-stops that owner first; every admitted operation is stopped by a
// timeout if its owner does not stop it.
package discovery

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/internal/timer"
	"github.com/MKhiriev/go-device-keeper/models"
)

const (
	DefaultDiscoveryTimeout = 2 * time.Minute
	DefaultPublishTimeout   = 2 * time.Minute

	discoveryTimerName = "discovery"
	publishTimerName   = "publish"
)

// DiscoveryManager is the discovery admission slot.
type DiscoveryManager struct {
	transport Bus
	listener  Listener
	timers    *timer.Timers
	timeout   time.Duration
	log       *logger.Logger

	mu      sync.Mutex
	current *models.DiscoveryContext
	filter  Filter
}

// NewDiscoveryManager returns an empty slot. A non-positive timeout selects
// DefaultDiscoveryTimeout.
func NewDiscoveryManager(transport Bus, listener Listener, timeout time.Duration, log *logger.Logger) *DiscoveryManager {
	if timeout <= 0 {
		timeout = DefaultDiscoveryTimeout
	}
	return &DiscoveryManager{
		transport: transport,
		listener:  listener,
		timers:    timer.New(),
		timeout:   timeout,
		log:       log.WithComponent("discovery"),
	}
}

// Start admits ownerID's discovery. The filter is validated before anything
// else happens.
func (m *DiscoveryManager) Start(ctx context.Context, ownerID string, info models.SubscribeInfo, filterExpr string) error {
	if ownerID == "" {
		return fmt.Errorf("%w: empty owner id", models.ErrInvalidParameter)
	}
	filter, err := ParseFilter(filterExpr)
	if err != nil {
		m.log.Err(err).Str("func", "DiscoveryManager.Start").Str("owner_id", ownerID).Msg("bad filter")
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		if m.current.OwnerID == ownerID {
			return fmt.Errorf("%w: discovery of %s", models.ErrAlreadyInProgress, ownerID)
		}
		m.log.Info().
			Str("func", "DiscoveryManager.Start").
			Str("owner_id", ownerID).
			Str("stopped_owner_id", m.current.OwnerID).
			Msg("force stopping running discovery")
		m.releaseLocked(ctx, models.StopReasonForceStopped)
	}

	m.current = &models.DiscoveryContext{
		OwnerID:          ownerID,
		RequestParams:    info,
		SessionID:        uuid.NewString(),
		FilterExpression: filterExpr,
	}
	m.filter = filter
	m.timers.Start(discoveryTimerName, m.timeout, m.onTimeout)

	if err = m.transport.StartDiscovery(ctx, ownerID, info); err != nil {
		m.log.Err(err).Str("func", "DiscoveryManager.Start").Str("owner_id", ownerID).Msg("start discovery failed")
		m.timers.Stop(discoveryTimerName)
		m.current = nil
		return fmt.Errorf("%w: start discovery: %w", models.ErrSubsystemCallFailed, err)
	}
	return nil
}

// Stop releases the slot if ownerID holds it and stops the subscription.
func (m *DiscoveryManager) Stop(ctx context.Context, ownerID string, subscribeID uint16) error {
	if ownerID == "" {
		return fmt.Errorf("%w: empty owner id", models.ErrInvalidParameter)
	}

	m.mu.Lock()
	held := m.current != nil && m.current.OwnerID == ownerID
	if held {
		m.timers.Stop(discoveryTimerName)
		m.current = nil
	}
	m.mu.Unlock()

	err := m.transport.StopDiscovery(ctx, ownerID, subscribeID)
	if held {
		m.notify(models.DiscoveryEvent{
			Kind:        models.EventDiscoveryStopped,
			OwnerID:     ownerID,
			SubscribeID: subscribeID,
			Reason:      models.StopReasonRequested,
		})
	}
	if err != nil {
		m.log.Err(err).Str("func", "DiscoveryManager.Stop").Str("owner_id", ownerID).Msg("stop discovery failed")
		return fmt.Errorf("%w: stop discovery: %w", models.ErrSubsystemCallFailed, err)
	}
	return nil
}

// Current returns the slot occupant.
func (m *DiscoveryManager) Current() (models.DiscoveryContext, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return models.DiscoveryContext{}, false
	}
	return *m.current, true
}

// releaseLocked stops the occupant and tells it why. m.mu must be held.
func (m *DiscoveryManager) releaseLocked(ctx context.Context, reason string) {
	cur := m.current
	m.current = nil
	m.timers.Stop(discoveryTimerName)

	subscribeID := cur.RequestParams.SubscribeID
	if err := m.transport.StopDiscovery(ctx, cur.OwnerID, subscribeID); err != nil {
		m.log.Err(err).
			Str("func", "DiscoveryManager.releaseLocked").
			Str("owner_id", cur.OwnerID).
			Str("reason", reason).
			Msg("stop discovery failed")
	}
	m.notify(models.DiscoveryEvent{
		Kind:        models.EventDiscoveryStopped,
		OwnerID:     cur.OwnerID,
		SubscribeID: subscribeID,
		Reason:      reason,
	})
}

func (m *DiscoveryManager) onTimeout(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return
	}
	m.log.Info().Str("func", "DiscoveryManager.onTimeout").Str("owner_id", m.current.OwnerID).Msg("discovery timed out")
	m.releaseLocked(context.Background(), models.StopReasonTimeout)
}

// ── Transport events ────────────────────────────────────────────────────────

// OnDeviceFound forwards device to the owner if the owner's filter holds.
func (m *DiscoveryManager) OnDeviceFound(device models.DiscoveredDevice) {
	m.mu.Lock()
	if m.current == nil {
		m.mu.Unlock()
		return
	}
	owner := m.current.OwnerID
	subscribeID := m.current.RequestParams.SubscribeID
	keep := m.filter.Match(device.IsOnline, device.Range)
	m.mu.Unlock()

	if !keep {
		m.log.Debug().Str("func", "DiscoveryManager.OnDeviceFound").Str("device_id", device.DeviceID).Msg("device filtered out")
		return
	}
	m.notify(models.DiscoveryEvent{
		Kind:        models.EventDeviceFound,
		OwnerID:     owner,
		SubscribeID: subscribeID,
		Device: &models.DeviceInfo{
			DeviceID:     device.DeviceID,
			DeviceName:   device.DeviceName,
			DeviceTypeID: device.DeviceTypeID,
			Range:        device.Range,
		},
	})
}

// OnDiscoverySuccess tells the owner its subscription is running.
func (m *DiscoveryManager) OnDiscoverySuccess(subscribeID uint16) {
	owner, ok := m.ownerOf(subscribeID)
	if !ok {
		return
	}
	m.notify(models.DiscoveryEvent{Kind: models.EventDiscoverySuccess, OwnerID: owner, SubscribeID: subscribeID})
}

// OnDiscoveryFailed releases the slot and tells the owner.
func (m *DiscoveryManager) OnDiscoveryFailed(subscribeID uint16, reason int) {
	m.mu.Lock()
	if m.current == nil || m.current.RequestParams.SubscribeID != subscribeID {
		m.mu.Unlock()
		m.log.Warn().Str("func", "DiscoveryManager.OnDiscoveryFailed").Uint16("subscribe_id", subscribeID).Msg("failure for unknown subscription")
		return
	}
	owner := m.current.OwnerID
	m.current = nil
	m.timers.Stop(discoveryTimerName)
	m.mu.Unlock()

	m.notify(models.DiscoveryEvent{
		Kind:        models.EventDiscoveryFailed,
		OwnerID:     owner,
		SubscribeID: subscribeID,
		Reason:      models.StopReasonFailed,
		Code:        reason,
	})
}

func (m *DiscoveryManager) ownerOf(subscribeID uint16) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil || m.current.RequestParams.SubscribeID != subscribeID {
		return "", false
	}
	return m.current.OwnerID, true
}

func (m *DiscoveryManager) notify(ev models.DiscoveryEvent) {
	if m.listener != nil {
		m.listener.OnDiscoveryEvent(ev)
	}
}
