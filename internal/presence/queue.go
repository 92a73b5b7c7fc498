// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-device-keeper/models"
)

// ErrStopped is returned to producers when the manager stops while they wait
// for queue space.
var ErrStopped = errors.New("presence manager stopped")

// Start launches the ready-event worker. A running worker is stopped first.
// The worker exits when ctx is cancelled or Stop is called.
func (m *Manager) Start(ctx context.Context) {
	m.Stop()

	m.runMu.Lock()
	workerCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.stopped = make(chan struct{})
	stopped := m.stopped
	m.wg.Add(1)
	m.runMu.Unlock()

	go func() {
		defer m.wg.Done()
		defer close(stopped)

		for {
			select {
			case <-workerCtx.Done():
				return
			case deviceID := <-m.queue:
				m.handleReady(deviceID)
			}
		}
	}()
}

// Stop cancels the worker and waits for it to exit. Queued events stay
// queued for the next Start.
func (m *Manager) Stop() {
	m.runMu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.runMu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

// OnDBReady queues a device-ready event. When the queue is full the caller
// blocks, waking every queue-wake interval, until space frees or the manager
// stops.
func (m *Manager) OnDBReady(deviceID string) error {
	if deviceID == "" {
		return fmt.Errorf("%w: empty device id", models.ErrInvalidParameter)
	}

	select {
	case m.queue <- deviceID:
		return nil
	default:
	}

	m.runMu.Lock()
	stopped := m.stopped
	m.runMu.Unlock()

	wake := time.NewTicker(m.queueWake)
	defer wake.Stop()
	for {
		select {
		case m.queue <- deviceID:
			return nil
		case <-stopped:
			return ErrStopped
		case <-wake.C:
			m.log.Warn().Str("func", "Manager.OnDBReady").Str("device_id", deviceID).Msg("notification queue full, waiting")
		}
	}
}

// handleReady drops events for devices without a presence record.
func (m *Manager) handleReady(deviceID string) {
	m.mu.Lock()
	rec, ok := m.records[deviceID]
	if !ok {
		for _, r := range m.records {
			if r.NetworkID == deviceID {
				rec, ok = r, true
				break
			}
		}
	}
	m.mu.Unlock()

	if !ok {
		m.log.Debug().Str("func", "Manager.handleReady").Str("device_id", deviceID).Msg("no presence record, ready event dropped")
		return
	}
	m.notify(models.DeviceStateReady, rec.LastSeenInfo)
}
