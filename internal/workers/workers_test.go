// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-device-keeper/internal/logger"
)

// blockingWorker counts runs and blocks until its context is done.
type blockingWorker struct {
	runs atomic.Int32
}

func (b *blockingWorker) Run(ctx context.Context) error {
	b.runs.Add(1)
	<-ctx.Done()
	return nil
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ws := New(w1, w2, w3)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, ws.Run(ctx))
	for i, w := range []*blockingWorker{w1, w2, w3} {
		assert.EqualValues(t, 1, w.runs.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NoError(t, New().Run(context.Background()))
	assert.NoError(t, (&Workers{}).Run(context.Background()))
}

func TestWorkers_Run_FailureCancelsOthers(t *testing.T) {
	boom := errors.New("boom")
	blocker := &blockingWorker{}
	ws := New(blocker)
	ws.Add(Func(func(context.Context) error { return boom }))

	done := make(chan error, 1)
	go func() { done <- ws.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, boom)
	case <-time.After(time.Second):
		t.Fatal("failing worker did not stop the group")
	}
}

func TestPeriodic_RunsUntilCancelled(t *testing.T) {
	var calls atomic.Int32
	p := NewPeriodic("test", 10*time.Millisecond, true, func(context.Context) error {
		if calls.Add(1) == 2 {
			return errors.New("logged, not fatal")
		}
		return nil
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}

func TestPeriodic_Immediate(t *testing.T) {
	var calls atomic.Int32
	p := NewPeriodic("test", time.Hour, true, func(context.Context) error {
		calls.Add(1)
		return nil
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, p.Run(ctx))
	assert.EqualValues(t, 1, calls.Load())
}

func TestPeriodic_InvalidInterval(t *testing.T) {
	p := NewPeriodic("test", 0, false, func(context.Context) error { return nil }, logger.Nop())

	assert.Error(t, p.Run(context.Background()))
}
