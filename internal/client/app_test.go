package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-device-keeper/internal/config"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/internal/mock"
	"github.com/MKhiriev/go-device-keeper/internal/service"
	"github.com/MKhiriev/go-device-keeper/internal/tui"
)

type fakeUI struct {
	err   error
	calls int
}

func (f *fakeUI) Run(context.Context) error {
	f.calls++
	return f.err
}

func newTestApp(t *testing.T, ui UI) (*App, *mock.MockClientRefreshJob) {
	t.Helper()
	ctrl := gomock.NewController(t)
	job := mock.NewMockClientRefreshJob(ctrl)
	services := &service.ClientServices{Devices: mock.NewMockClientDeviceService(ctrl), RefreshJob: job}

	app, err := NewApp(services, ui, config.ClientWorkers{RefreshInterval: time.Minute}, logger.Nop())
	require.NoError(t, err)
	return app, job
}

// ── NewApp ────────────────────────────────────────────────────────────────────

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, config.ClientWorkers{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{}, &fakeUI{}, config.ClientWorkers{}, logger.Nop())
	assert.Error(t, err)
}

// ── Run ───────────────────────────────────────────────────────────────────────

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name    string
		uiErr   error
		wantErr bool
	}{
		{name: "clean exit", uiErr: nil},
		{name: "user quit", uiErr: tui.ErrUserQuit},
		{name: "ui failure", uiErr: errors.New("terminal gone"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &fakeUI{err: tt.uiErr}
			app, job := newTestApp(t, ui)
			gomock.InOrder(
				job.EXPECT().Start(gomock.Any(), time.Minute),
				job.EXPECT().Stop(),
			)

			err := app.Run(context.Background())
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.uiErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, ui.calls)
		})
	}
}

func TestApp_Run_CancelledContext(t *testing.T) {
	ui := &fakeUI{err: context.Canceled}
	app, job := newTestApp(t, ui)
	job.EXPECT().Start(gomock.Any(), time.Minute)
	job.EXPECT().Stop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, app.Run(ctx))
}
