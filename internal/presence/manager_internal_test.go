package presence

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/models"
)

type staticResolver struct{}

func (staticResolver) GetUdidByNetworkID(context.Context, string) (string, error) {
	return "udid-1", nil
}

func (staticResolver) GetUuidByNetworkID(context.Context, string) (string, error) {
	return "uuid-1", nil
}

type countingCleaner struct{ calls atomic.Int32 }

func (c *countingCleaner) DeleteTimeOutGroup(context.Context, string) (int, error) {
	c.calls.Add(1)
	return 0, nil
}

type discardNotifier struct{}

func (discardNotifier) NotifyDeviceState(models.DeviceStateEvent) {}

func TestEvict_StaleGenerationIgnored(t *testing.T) {
	cleaner := &countingCleaner{}
	m := NewManager(staticResolver{}, cleaner, discardNotifier{}, logger.Nop(), WithOfflineTimeout(time.Hour))
	t.Cleanup(m.Close)

	dev := models.DeviceInfo{NetworkID: "net-1"}
	m.HandleDeviceOnline(dev)
	m.HandleDeviceOffline(dev)
	first, ok := m.StateTimer("udid-1")
	require.True(t, ok)

	// back online and offline again before the first timer's callback ran
	m.HandleDeviceOnline(dev)
	m.HandleDeviceOffline(dev)
	second, _ := m.StateTimer("udid-1")
	require.Greater(t, second.Generation, first.Generation)

	m.evict(first.TimerName, first.Generation)

	assert.Zero(t, cleaner.calls.Load())
	st, ok := m.StateTimer("udid-1")
	require.True(t, ok)
	assert.True(t, st.Running)
	assert.Equal(t, 1, m.PendingEvictions())

	m.evict(second.TimerName, second.Generation)
	assert.EqualValues(t, 1, cleaner.calls.Load())
	_, ok = m.StateTimer("udid-1")
	assert.False(t, ok)
}
