// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// PublishManager is the publish admission slot.
type PublishManager struct {
	transport Bus
	listener  Listener
	timers    *timer.Timers
	timeout   time.Duration
	log       *logger.Logger

	mu      sync.Mutex
	current *models.PublishContext
}

// NewPublishManager returns an empty slot. A non-positive timeout selects
// DefaultPublishTimeout.
func NewPublishManager(transport Bus, listener Listener, timeout time.Duration, log *logger.Logger) *PublishManager {
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	return &PublishManager{
		transport: transport,
		listener:  listener,
		timers:    timer.New(),
		timeout:   timeout,
		log:       log.WithComponent("publish"),
	}
}

// Start admits ownerID's publish.
func (m *PublishManager) Start(ctx context.Context, ownerID string, info models.PublishInfo) error {
	if ownerID == "" {
		return fmt.Errorf("%w: empty owner id", models.ErrInvalidParameter)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		if m.current.OwnerID == ownerID {
			return fmt.Errorf("%w: publish of %s", models.ErrAlreadyInProgress, ownerID)
		}
		m.log.Info().
			Str("func", "PublishManager.Start").
			Str("owner_id", ownerID).
			Str("stopped_owner_id", m.current.OwnerID).
			Msg("force stopping running publish")
		m.releaseLocked(ctx, models.StopReasonForceStopped)
	}

	m.current = &models.PublishContext{OwnerID: ownerID, RequestParams: info, SessionID: uuid.NewString()}
	m.timers.Start(publishTimerName, m.timeout, m.onTimeout)

	if err := m.transport.PublishDiscovery(ctx, ownerID, info); err != nil {
		m.log.Err(err).Str("func", "PublishManager.Start").Str("owner_id", ownerID).Msg("publish failed")
		m.timers.Stop(publishTimerName)
		m.current = nil
		return fmt.Errorf("%w: publish: %w", models.ErrSubsystemCallFailed, err)
	}
	return nil
}

// Stop releases the slot if ownerID holds it and stops publishing.
func (m *PublishManager) Stop(ctx context.Context, ownerID string, publishID int32) error {
	if ownerID == "" {
		return fmt.Errorf("%w: empty owner id", models.ErrInvalidParameter)
	}

	m.mu.Lock()
	held := m.current != nil && m.current.OwnerID == ownerID
	if held {
		m.timers.Stop(publishTimerName)
		m.current = nil
	}
	m.mu.Unlock()

	err := m.transport.StopPublish(ctx, ownerID, publishID)
	if held {
		m.notify(models.DiscoveryEvent{
			Kind:      models.EventPublishStopped,
			OwnerID:   ownerID,
			PublishID: publishID,
			Reason:    models.StopReasonRequested,
		})
	}
	if err != nil {
		m.log.Err(err).Str("func", "PublishManager.Stop").Str("owner_id", ownerID).Msg("stop publish failed")
		return fmt.Errorf("%w: stop publish: %w", models.ErrSubsystemCallFailed, err)
	}
	return nil
}

// Current returns the slot occupant.
func (m *PublishManager) Current() (models.PublishContext, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return models.PublishContext{}, false
	}
	return *m.current, true
}

func (m *PublishManager) releaseLocked(ctx context.Context, reason string) {
	cur := m.current
	m.current = nil
	m.timers.Stop(publishTimerName)

	publishID := cur.RequestParams.PublishID
	if err := m.transport.StopPublish(ctx, cur.OwnerID, publishID); err != nil {
		m.log.Err(err).
			Str("func", "PublishManager.releaseLocked").
			Str("owner_id", cur.OwnerID).
			Str("reason", reason).
			Msg("stop publish failed")
	}
	m.notify(models.DiscoveryEvent{
		Kind:      models.EventPublishStopped,
		OwnerID:   cur.OwnerID,
		PublishID: publishID,
		Reason:    reason,
	})
}

func (m *PublishManager) onTimeout(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return
	}
	m.log.Info().Str("func", "PublishManager.onTimeout").Str("owner_id", m.current.OwnerID).Msg("publish timed out")
	m.releaseLocked(context.Background(), models.StopReasonTimeout)
}

// OnPublishResult forwards the result to the owner; a failure releases the
// slot.
func (m *PublishManager) OnPublishResult(publishID int32, code int) {
	m.mu.Lock()
	if m.current == nil || m.current.RequestParams.PublishID != publishID {
		m.mu.Unlock()
		m.log.Warn().Str("func", "PublishManager.OnPublishResult").Int32("publish_id", publishID).Msg("result for unknown publish")
		return
	}
	owner := m.current.OwnerID
	if code != models.CodeOK {
		m.current = nil
		m.timers.Stop(publishTimerName)
	}
	m.mu.Unlock()

	m.notify(models.DiscoveryEvent{Kind: models.EventPublishResult, OwnerID: owner, PublishID: publishID, Code: code})
}

func (m *PublishManager) notify(ev models.DiscoveryEvent) {
	if m.listener != nil {
		m.listener.OnDiscoveryEvent(ev)
	}
}
