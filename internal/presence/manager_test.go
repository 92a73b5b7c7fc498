// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presence_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-device-keeper/internal/decision"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/internal/mock"
	"github.com/MKhiriev/go-device-keeper/internal/presence"
	"github.com/MKhiriev/go-device-keeper/models"
)

// recorder collects delivered events.
type recorder struct {
	mu     sync.Mutex
	events []models.DeviceStateEvent
	ch     chan models.DeviceStateEvent
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan models.DeviceStateEvent, 64)}
}

func (r *recorder) NotifyDeviceState(ev models.DeviceStateEvent) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
	r.ch <- ev
}

func (r *recorder) all() []models.DeviceStateEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.DeviceStateEvent(nil), r.events...)
}

type fixture struct {
	m        *presence.Manager
	resolver *mock.MockResolver
	cleaner  *mock.MockGroupCleaner
	rec      *recorder
}

func newFixture(t *testing.T, opts ...presence.Option) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		resolver: mock.NewMockResolver(ctrl),
		cleaner:  mock.NewMockGroupCleaner(ctrl),
		rec:      newRecorder(),
	}
	f.m = presence.NewManager(f.resolver, f.cleaner, f.rec, logger.Nop(), opts...)
	t.Cleanup(f.m.Close)
	return f
}

func (f *fixture) resolves(networkID, udid string) {
	f.resolver.EXPECT().GetUdidByNetworkID(gomock.Any(), networkID).Return(udid, nil).AnyTimes()
	f.resolver.EXPECT().GetUuidByNetworkID(gomock.Any(), networkID).Return("uuid-"+udid, nil).AnyTimes()
}

var tv = models.DeviceInfo{DeviceID: "net-1", DeviceName: "tv", DeviceTypeID: 156, NetworkID: "net-1", Range: 30}

// ── Online / offline ────────────────────────────────────────────────────────

func TestManager_OnlineRecordsAndNotifies(t *testing.T) {
	f := newFixture(t)
	f.resolves("net-1", "udid-1")
	require.NoError(t, f.m.RegisterDevStateCallback("owner-a", ""))
	require.NoError(t, f.m.RegisterDevStateCallback("owner-b", ""))

	f.m.HandleDeviceOnline(tv)

	rec, ok := f.m.Record("udid-1")
	require.True(t, ok)
	assert.Equal(t, "uuid-udid-1", rec.UUID)
	assert.Equal(t, "net-1", rec.NetworkID)

	st, ok := f.m.StateTimer("udid-1")
	require.True(t, ok)
	assert.False(t, st.Running)

	events := f.rec.all()
	require.Len(t, events, 2)
	assert.Equal(t, "owner-a", events[0].OwnerID)
	assert.Equal(t, "owner-b", events[1].OwnerID)
	assert.Equal(t, models.DeviceStateOnline, events[0].State)
	assert.Equal(t, "udid-1", events[0].Device.DeviceID)
}

func TestManager_OnlineResolveFailureDropsEvent(t *testing.T) {
	f := newFixture(t)
	f.resolver.EXPECT().GetUdidByNetworkID(gomock.Any(), "net-x").Return("", errors.New("unknown node"))
	f.resolves("net-1", "udid-1")
	require.NoError(t, f.m.RegisterDevStateCallback("owner-a", ""))

	f.m.HandleDeviceOnline(models.DeviceInfo{NetworkID: "net-x"})
	assert.Empty(t, f.rec.all())

	f.m.HandleDeviceOnline(tv)
	assert.Len(t, f.rec.all(), 1)
}

func TestManager_OfflineNotifiesImmediately(t *testing.T) {
	f := newFixture(t, presence.WithOfflineTimeout(time.Hour))
	f.resolves("net-1", "udid-1")
	require.NoError(t, f.m.RegisterDevStateCallback("owner-a", ""))

	f.m.HandleDeviceOnline(tv)
	f.m.HandleDeviceOffline(tv)

	events := f.rec.all()
	require.Len(t, events, 2)
	assert.Equal(t, models.DeviceStateOffline, events[1].State)
	assert.Equal(t, 1, f.m.PendingEvictions())

	st, _ := f.m.StateTimer("udid-1")
	assert.True(t, st.Running)

	_, ok := f.m.Record("udid-1")
	assert.False(t, ok, "offline device keeps no presence record")
}

func TestManager_OfflineDeviceGetsNoReadyEvent(t *testing.T) {
	f := newFixture(t, presence.WithOfflineTimeout(time.Hour))
	f.resolves("net-1", "udid-1")
	require.NoError(t, f.m.RegisterDevStateCallback("owner-a", ""))

	f.m.HandleDeviceOnline(tv)
	f.m.HandleDeviceOffline(tv)
	<-f.rec.ch
	<-f.rec.ch

	f.m.Start(context.Background())
	defer f.m.Stop()

	require.NoError(t, f.m.OnDBReady("udid-1"))
	require.NoError(t, f.m.OnDBReady("net-1"))

	select {
	case ev := <-f.rec.ch:
		t.Fatalf("unexpected %s event for %s", ev.State, ev.Device.DeviceID)
	case <-time.After(100 * time.Millisecond):
	}
	assert.Len(t, f.rec.all(), 2)
}

func TestManager_OfflineDeviceResolvedFromTimer(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mock.NewMockResolver(ctrl)
	// the transport forgets the node once it is gone
	resolver.EXPECT().GetUdidByNetworkID(gomock.Any(), "net-1").Return("udid-1", nil).Times(1)
	resolver.EXPECT().GetUuidByNetworkID(gomock.Any(), "net-1").Return("uuid-1", nil).Times(1)

	rec := newRecorder()
	m := presence.NewManager(resolver, mock.NewMockGroupCleaner(ctrl), rec, logger.Nop(),
		presence.WithOfflineTimeout(time.Hour))
	t.Cleanup(m.Close)
	require.NoError(t, m.RegisterDevStateCallback("owner-a", ""))

	m.HandleDeviceOnline(tv)
	m.HandleDeviceOffline(tv)
	m.HandleDeviceChanged(tv)

	events := rec.all()
	require.Len(t, events, 3)
	assert.Equal(t, models.DeviceStateOffline, events[1].State)
	assert.Equal(t, models.DeviceStateInfoChanged, events[2].State)
	assert.Equal(t, "udid-1", events[2].Device.DeviceID)
}

func TestManager_ChangedNotifiesInfoChanged(t *testing.T) {
	f := newFixture(t)
	f.resolves("net-1", "udid-1")
	require.NoError(t, f.m.RegisterDevStateCallback("owner-a", ""))

	f.m.HandleDeviceOnline(tv)
	renamed := tv
	renamed.DeviceName = "living room tv"
	f.m.HandleDeviceChanged(renamed)

	events := f.rec.all()
	require.Len(t, events, 2)
	assert.Equal(t, models.DeviceStateInfoChanged, events[1].State)

	rec, _ := f.m.Record("udid-1")
	assert.Equal(t, "living room tv", rec.LastSeenInfo.DeviceName)
}

// ── Eviction ────────────────────────────────────────────────────────────────

func TestManager_EvictionDeletesTimedOutGroups(t *testing.T) {
	f := newFixture(t, presence.WithOfflineTimeout(20*time.Millisecond))
	f.resolves("net-1", "udid-1")

	done := make(chan struct{})
	f.cleaner.EXPECT().DeleteTimeOutGroup(gomock.Any(), "udid-1").DoAndReturn(
		func(context.Context, string) (int, error) {
			close(done)
			return 1, nil
		})

	f.m.HandleDeviceOnline(tv)
	f.m.HandleDeviceOffline(tv)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("eviction did not fire")
	}

	assert.Eventually(t, func() bool {
		_, ok := f.m.Record("udid-1")
		return !ok
	}, time.Second, 5*time.Millisecond)
	_, ok := f.m.StateTimer("udid-1")
	assert.False(t, ok)
}

func TestManager_ArmingTwiceFiresOnce(t *testing.T) {
	f := newFixture(t, presence.WithOfflineTimeout(30*time.Millisecond))
	f.resolves("net-1", "udid-1")

	calls := make(chan struct{}, 4)
	f.cleaner.EXPECT().DeleteTimeOutGroup(gomock.Any(), "udid-1").DoAndReturn(
		func(context.Context, string) (int, error) {
			calls <- struct{}{}
			return 0, nil
		}).Times(1)

	f.m.HandleDeviceOnline(tv)
	f.m.HandleDeviceOffline(tv)
	f.m.HandleDeviceOffline(tv)
	assert.Equal(t, 1, f.m.PendingEvictions())

	<-calls
	time.Sleep(60 * time.Millisecond)
	assert.Len(t, calls, 0)
}

func TestManager_OnlineOfflineOnlineNoDeletion(t *testing.T) {
	f := newFixture(t, presence.WithOfflineTimeout(30*time.Millisecond))
	f.resolves("net-1", "udid-1")
	// no DeleteTimeOutGroup expectation: any call fails the test

	f.m.HandleDeviceOnline(tv)
	f.m.HandleDeviceOffline(tv)
	f.m.HandleDeviceOnline(tv)

	assert.Equal(t, 0, f.m.PendingEvictions())
	time.Sleep(80 * time.Millisecond)

	_, ok := f.m.Record("udid-1")
	assert.True(t, ok)
}

func TestManager_EvictionErrorKeepsManagerUsable(t *testing.T) {
	f := newFixture(t, presence.WithOfflineTimeout(10*time.Millisecond))
	f.resolves("net-1", "udid-1")

	done := make(chan struct{})
	f.cleaner.EXPECT().DeleteTimeOutGroup(gomock.Any(), "udid-1").DoAndReturn(
		func(context.Context, string) (int, error) {
			close(done)
			return 0, models.ErrTimedOut
		})

	f.m.HandleDeviceOnline(tv)
	f.m.HandleDeviceOffline(tv)
	<-done

	require.NoError(t, f.m.RegisterDevStateCallback("owner-a", ""))
	f.m.HandleDeviceOnline(tv)
	assert.Len(t, f.rec.all(), 1)
}

// ── Decision filtering ──────────────────────────────────────────────────────

func TestManager_DecisionFilterPerOwner(t *testing.T) {
	f := newFixture(t, presence.WithDecisionFilter(decision.NewAttributeFilter()))
	f.resolves("net-1", "udid-1")

	require.NoError(t, f.m.RegisterDevStateCallback("near", `{"maxRange":50}`))
	require.NoError(t, f.m.RegisterDevStateCallback("phones", `{"deviceTypeIds":[14]}`))
	require.NoError(t, f.m.RegisterDevStateCallback("any", ""))
	require.NoError(t, f.m.RegisterDevStateCallback("broken", "{"))

	f.m.HandleDeviceOnline(tv)

	var owners []string
	for _, ev := range f.rec.all() {
		owners = append(owners, ev.OwnerID)
	}
	assert.Equal(t, []string{"any", "near"}, owners)
}

func TestManager_FilterSkippedWithoutParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	filter := mock.NewMockFilter(ctrl)
	// never consulted when no owner registered params
	f := newFixture(t, presence.WithDecisionFilter(filter))
	f.resolves("net-1", "udid-1")
	require.NoError(t, f.m.RegisterDevStateCallback("owner-a", ""))

	f.m.HandleDeviceOnline(tv)
	assert.Len(t, f.rec.all(), 1)
}

func TestManager_RegistryValidation(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, f.m.RegisterDevStateCallback("", ""), models.ErrInvalidParameter)
	assert.ErrorIs(t, f.m.UnregisterDevStateCallback(""), models.ErrInvalidParameter)

	f.resolves("net-1", "udid-1")
	require.NoError(t, f.m.RegisterDevStateCallback("owner-a", ""))
	require.NoError(t, f.m.UnregisterDevStateCallback("owner-a"))
	f.m.HandleDeviceOnline(tv)
	assert.Empty(t, f.rec.all())
}

// ── Ready queue ─────────────────────────────────────────────────────────────

func TestManager_ReadyEvents(t *testing.T) {
	f := newFixture(t)
	f.resolves("net-1", "udid-1")
	require.NoError(t, f.m.RegisterDevStateCallback("owner-a", ""))
	f.m.HandleDeviceOnline(tv)
	<-f.rec.ch

	f.m.Start(context.Background())
	defer f.m.Stop()

	require.NoError(t, f.m.OnDBReady("unknown"))
	require.NoError(t, f.m.OnDBReady("udid-1"))

	select {
	case ev := <-f.rec.ch:
		assert.Equal(t, models.DeviceStateReady, ev.State)
		assert.Equal(t, "udid-1", ev.Device.DeviceID)
	case <-time.After(2 * time.Second):
		t.Fatal("ready event not delivered")
	}
	assert.Len(t, f.rec.all(), 2)

	assert.ErrorIs(t, f.m.OnDBReady(""), models.ErrInvalidParameter)
}

// gateNotifier blocks every delivery until gate is closed.
type gateNotifier struct {
	entered chan struct{}
	gate    chan struct{}
	got     chan models.DeviceStateEvent
}

func (g *gateNotifier) NotifyDeviceState(ev models.DeviceStateEvent) {
	select {
	case g.entered <- struct{}{}:
	default:
	}
	<-g.gate
	g.got <- ev
}

func TestManager_FullQueueBlocksUntilSpace(t *testing.T) {
	ctrl := gomock.NewController(t)
	resolver := mock.NewMockResolver(ctrl)
	resolver.EXPECT().GetUdidByNetworkID(gomock.Any(), "net-1").Return("udid-1", nil)
	resolver.EXPECT().GetUuidByNetworkID(gomock.Any(), "net-1").Return("uuid-1", nil)
	notifier := &gateNotifier{
		entered: make(chan struct{}, 1),
		gate:    make(chan struct{}),
		got:     make(chan models.DeviceStateEvent, 2*presence.QueueCapacity),
	}

	m := presence.NewManager(resolver, mock.NewMockGroupCleaner(ctrl), notifier, logger.Nop(),
		presence.WithQueueWake(5*time.Millisecond))
	m.HandleDeviceOnline(tv)
	require.NoError(t, m.RegisterDevStateCallback("owner-a", ""))

	m.Start(context.Background())
	defer m.Stop()

	// the worker takes the first event and parks in the notifier
	require.NoError(t, m.OnDBReady("udid-1"))
	<-notifier.entered
	for i := 0; i < presence.QueueCapacity; i++ {
		require.NoError(t, m.OnDBReady("udid-1"))
	}

	errCh := make(chan error, 1)
	go func() { errCh <- m.OnDBReady("udid-1") }()

	select {
	case err := <-errCh:
		t.Fatalf("producer returned on a full queue: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	close(notifier.gate)
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("producer still blocked after the queue drained")
	}
}

func TestManager_FullQueueStoppedManager(t *testing.T) {
	f := newFixture(t, presence.WithQueueWake(5*time.Millisecond))

	for i := 0; i < presence.QueueCapacity; i++ {
		require.NoError(t, f.m.OnDBReady("dev"))
	}
	assert.ErrorIs(t, f.m.OnDBReady("dev"), presence.ErrStopped)

	f.m.Start(context.Background())
	defer f.m.Stop()
	for i := 0; i < 5; i++ {
		assert.NoError(t, f.m.OnDBReady("dev"))
	}
}

func TestManager_StopUnblocksProducers(t *testing.T) {
	f := newFixture(t, presence.WithQueueWake(5*time.Millisecond))
	f.m.Start(context.Background())
	f.m.Stop()

	for i := 0; i < presence.QueueCapacity; i++ {
		require.NoError(t, f.m.OnDBReady("dev"))
	}
	assert.ErrorIs(t, f.m.OnDBReady("dev"), presence.ErrStopped)
}
