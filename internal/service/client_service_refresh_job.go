package service

import (
	"context"
	"sync"
	"time"
)

const defaultRefreshInterval = 30 * time.Second

type clientRefreshJob struct {
	devices ClientDeviceService
	updates chan DeviceListUpdate

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a clientRefreshJob that reloads the trusted
// device list through devices on a ticker. The job is idle until Start is
// called.
func NewClientRefreshJob(devices ClientDeviceService) ClientRefreshJob {
	return &clientRefreshJob{
		devices: devices,
		updates: make(chan DeviceListUpdate, 1),
	}
}

// Start implements ClientRefreshJob. The first reload happens one interval
// after Start; the console loads the list itself on startup.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				devices, err := j.devices.TrustedDevices(jobCtx)
				if jobCtx.Err() != nil {
					return
				}
				j.publish(DeviceListUpdate{Devices: devices, Err: err})
			}
		}
	}()
}

// Stop implements ClientRefreshJob. Safe to call when the job is not running.
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *clientRefreshJob) Updates() <-chan DeviceListUpdate {
	return j.updates
}

// publish keeps only the newest result in the channel.
func (j *clientRefreshJob) publish(u DeviceListUpdate) {
	for {
		select {
		case j.updates <- u:
			return
		default:
		}
		select {
		case <-j.updates:
		default:
		}
	}
}
