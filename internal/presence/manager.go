// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package presence tracks which peers are reachable, tells registered owners
// about their state changes and revokes the trust of peers that stay offline
// past the offline timeout.
package presence

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-device-keeper/internal/decision"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/internal/timer"
	"github.com/MKhiriev/go-device-keeper/models"
)

const (
	DefaultOfflineTimeout = 2 * time.Minute
	DefaultQueueWake      = 2 * time.Second
	QueueCapacity         = 20

	lookupTimeout = 5 * time.Second
	timerPrefix   = "offline:"
)

// Manager is the device presence manager.
type Manager struct {
	resolver Resolver
	cleaner  GroupCleaner
	notifier Notifier
	filter   decision.Filter
	timers   *timer.Timers
	log      *logger.Logger

	offlineTimeout time.Duration
	queueWake      time.Duration

	mu          sync.Mutex
	records     map[string]models.DevicePresenceRecord
	stateTimers map[string]models.StateTimer

	listenersMu sync.RWMutex
	listeners   map[string]string

	queue   chan string
	runMu   sync.Mutex
	cancel  context.CancelFunc
	stopped chan struct{}
	wg      sync.WaitGroup
}

// Option configures a Manager.
type Option func(*Manager)

// WithOfflineTimeout sets how long a device may stay offline before its
// peer-to-peer groups are deleted.
func WithOfflineTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.offlineTimeout = d
		}
	}
}

// WithDecisionFilter applies f to every notification.
func WithDecisionFilter(f decision.Filter) Option {
	return func(m *Manager) { m.filter = f }
}

// WithQueueWake sets how often a producer blocked on a full queue wakes up.
func WithQueueWake(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.queueWake = d
		}
	}
}

// NewManager returns an idle manager; the ready-event worker runs after
// Start.
func NewManager(resolver Resolver, cleaner GroupCleaner, notifier Notifier, log *logger.Logger, opts ...Option) *Manager {
	stopped := make(chan struct{})
	close(stopped)

	m := &Manager{
		resolver:       resolver,
		cleaner:        cleaner,
		notifier:       notifier,
		timers:         timer.New(),
		log:            log.WithComponent("presence"),
		offlineTimeout: DefaultOfflineTimeout,
		queueWake:      DefaultQueueWake,
		records:        make(map[string]models.DevicePresenceRecord),
		stateTimers:    make(map[string]models.StateTimer),
		listeners:      make(map[string]string),
		queue:          make(chan string, QueueCapacity),
		stopped:        stopped,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ── Listener registry ───────────────────────────────────────────────────────

// RegisterDevStateCallback subscribes owner to state events. extra holds the
// filter params passed to the decision filter for this owner.
func (m *Manager) RegisterDevStateCallback(ownerID, extra string) error {
	if ownerID == "" {
		return fmt.Errorf("%w: empty owner id", models.ErrInvalidParameter)
	}
	m.listenersMu.Lock()
	m.listeners[ownerID] = extra
	m.listenersMu.Unlock()

	m.log.Info().Str("func", "Manager.RegisterDevStateCallback").Str("owner_id", ownerID).Msg("state listener registered")
	return nil
}

// UnregisterDevStateCallback removes owner's subscription.
func (m *Manager) UnregisterDevStateCallback(ownerID string) error {
	if ownerID == "" {
		return fmt.Errorf("%w: empty owner id", models.ErrInvalidParameter)
	}
	m.listenersMu.Lock()
	delete(m.listeners, ownerID)
	m.listenersMu.Unlock()
	return nil
}

// ── Transport events ────────────────────────────────────────────────────────

// HandleDeviceOnline records the device, cancels its pending eviction and
// notifies owners.
func (m *Manager) HandleDeviceOnline(info models.DeviceInfo) {
	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	udid, err := m.resolver.GetUdidByNetworkID(ctx, info.NetworkID)
	if err != nil {
		m.log.Err(err).
			Str("func", "Manager.HandleDeviceOnline").
			Str("network_id", info.NetworkID).
			Msg("cannot resolve udid, online event dropped")
		return
	}
	uuid, err := m.resolver.GetUuidByNetworkID(ctx, info.NetworkID)
	if err != nil {
		m.log.Warn().Err(err).Str("func", "Manager.HandleDeviceOnline").Str("network_id", info.NetworkID).Msg("cannot resolve uuid")
	}
	info.DeviceID = udid

	m.mu.Lock()
	m.records[udid] = models.DevicePresenceRecord{
		UUID:         uuid,
		UDID:         udid,
		NetworkID:    info.NetworkID,
		LastSeenInfo: info,
		LastSeenAt:   time.Now(),
	}
	st, ok := m.stateTimers[udid]
	if !ok {
		st = models.StateTimer{TimerName: timerPrefix + udid}
	}
	if st.Running && m.timers.Stop(st.TimerName) {
		m.log.Info().Str("func", "Manager.HandleDeviceOnline").Str("device_id", udid).Msg("eviction cancelled")
	}
	st.NetworkID = info.NetworkID
	st.Running = false
	m.stateTimers[udid] = st
	m.mu.Unlock()

	m.notify(models.DeviceStateOnline, info)
}

// HandleDeviceOffline drops the presence record, arms the eviction timer and
// notifies owners right away.
func (m *Manager) HandleDeviceOffline(info models.DeviceInfo) {
	udid, err := m.udidOf(info.NetworkID)
	if err != nil {
		m.log.Err(err).
			Str("func", "Manager.HandleDeviceOffline").
			Str("network_id", info.NetworkID).
			Msg("cannot resolve udid, offline event dropped")
		return
	}
	info.DeviceID = udid

	m.mu.Lock()
	delete(m.records, udid)
	st, ok := m.stateTimers[udid]
	if !ok {
		st = models.StateTimer{TimerName: timerPrefix + udid}
	}
	st.NetworkID = info.NetworkID
	gen := st.Generation + 1
	if m.timers.Start(st.TimerName, m.offlineTimeout, func(name string) { m.evict(name, gen) }) {
		st.Running = true
		st.Generation = gen
		m.log.Info().
			Str("func", "Manager.HandleDeviceOffline").
			Str("device_id", udid).
			Dur("timeout", m.offlineTimeout).
			Msg("eviction armed")
	}
	m.stateTimers[udid] = st
	m.mu.Unlock()

	m.notify(models.DeviceStateOffline, info)
}

// HandleDeviceChanged refreshes the cached info and notifies owners.
func (m *Manager) HandleDeviceChanged(info models.DeviceInfo) {
	udid, err := m.udidOf(info.NetworkID)
	if err != nil {
		m.log.Err(err).Str("func", "Manager.HandleDeviceChanged").Str("network_id", info.NetworkID).Msg("cannot resolve udid")
		return
	}
	info.DeviceID = udid

	m.mu.Lock()
	if rec, ok := m.records[udid]; ok {
		rec.LastSeenInfo = info
		rec.LastSeenAt = time.Now()
		m.records[udid] = rec
	}
	m.mu.Unlock()

	m.notify(models.DeviceStateInfoChanged, info)
}

// udidOf prefers the cached record, then the eviction bookkeeping kept for
// offline devices; an offline device may no longer resolve through the
// transport.
func (m *Manager) udidOf(networkID string) (string, error) {
	m.mu.Lock()
	for udid, rec := range m.records {
		if rec.NetworkID == networkID {
			m.mu.Unlock()
			return udid, nil
		}
	}
	for udid, st := range m.stateTimers {
		if st.NetworkID == networkID {
			m.mu.Unlock()
			return udid, nil
		}
	}
	m.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()
	return m.resolver.GetUdidByNetworkID(ctx, networkID)
}

// evict runs when the timer armed as generation gen fires.
func (m *Manager) evict(name string, gen uint64) {
	udid := strings.TrimPrefix(name, timerPrefix)

	m.mu.Lock()
	st, ok := m.stateTimers[udid]
	if !ok || !st.Running || st.Generation != gen {
		// came back online, and maybe went offline again, while the timer was firing
		m.mu.Unlock()
		return
	}
	delete(m.stateTimers, udid)
	delete(m.records, udid)
	m.mu.Unlock()

	deleted, err := m.cleaner.DeleteTimeOutGroup(context.Background(), udid)
	if err != nil {
		m.log.Err(err).Str("func", "Manager.evict").Str("device_id", udid).Msg("delete timed out groups failed")
		return
	}
	m.log.Info().Str("func", "Manager.evict").Str("device_id", udid).Int("deleted", deleted).Msg("device evicted")
}

// ── Queries ─────────────────────────────────────────────────────────────────

// Record returns the presence record of udid.
func (m *Manager) Record(udid string) (models.DevicePresenceRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[udid]
	return rec, ok
}

// StateTimer returns the eviction bookkeeping of udid.
func (m *Manager) StateTimer(udid string) (models.StateTimer, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.stateTimers[udid]
	return st, ok
}

// PendingEvictions is the number of armed eviction timers.
func (m *Manager) PendingEvictions() int {
	return m.timers.Len()
}

// Close disarms every eviction timer.
func (m *Manager) Close() {
	m.timers.StopAll()
}

// ── Notification ────────────────────────────────────────────────────────────

func (m *Manager) notify(state models.DeviceState, info models.DeviceInfo) {
	m.listenersMu.RLock()
	owners := maps.Clone(m.listeners)
	m.listenersMu.RUnlock()

	filtered := m.filter != nil && hasFilterParams(owners)
	for _, owner := range slices.Sorted(maps.Keys(owners)) {
		if filtered {
			devices, err := m.filter.FilterDevices(owners[owner], []models.DeviceInfo{info})
			if err != nil {
				m.log.Err(err).Str("func", "Manager.notify").Str("owner_id", owner).Msg("decision filter failed")
				continue
			}
			if len(devices) == 0 {
				continue
			}
		}
		m.notifier.NotifyDeviceState(models.DeviceStateEvent{OwnerID: owner, State: state, Device: info})
	}
}

func hasFilterParams(owners map[string]string) bool {
	for _, extra := range owners {
		if extra != "" {
			return true
		}
	}
	return false
}
