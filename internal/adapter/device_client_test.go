package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-device-keeper/internal/config"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/models"
)

func newTestDeviceClient(t *testing.T, h http.Handler) DeviceManagerClient {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewHTTPDeviceManagerClient(
		config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: time.Second},
		config.ClientApp{OwnerID: "console"},
		logger.Nop(),
	)
	require.NoError(t, err)
	return c
}

func writeResult(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ── Constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPDeviceManagerClient(t *testing.T) {
	_, err := NewHTTPDeviceManagerClient(config.ClientAdapter{HTTPAddress: ""}, config.ClientApp{OwnerID: "o"}, logger.Nop())
	assert.Error(t, err)

	_, err = NewHTTPDeviceManagerClient(config.ClientAdapter{HTTPAddress: "localhost:8080"}, config.ClientApp{}, logger.Nop())
	assert.ErrorIs(t, err, models.ErrInvalidParameter)

	c, err := NewHTTPDeviceManagerClient(config.ClientAdapter{HTTPAddress: "localhost:8080"}, config.ClientApp{OwnerID: "o"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "o", c.OwnerID())
}

// ── Requests ─────────────────────────────────────────────────────────────────

func TestHTTPDeviceManagerClient_PostsCarryOwner(t *testing.T) {
	type seen struct {
		path   string
		header string
		body   map[string]any
	}
	requests := make(chan seen, 8)

	c := newTestDeviceClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := seen{path: r.URL.Path, header: r.Header.Get(models.OwnerHeader)}
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &s.body)
		requests <- s
		writeResult(w, http.StatusOK, models.Result{})
	}))
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		path string
		key  string
		want any
	}{
		{
			name: "start discovery",
			call: func() error { return c.StartDiscovery(ctx, models.SubscribeInfo{SubscribeID: 5}, `{"filter_op":"OR"}`) },
			path: "/api/discovery/start", key: "filterOptions", want: `{"filter_op":"OR"}`,
		},
		{
			name: "stop discovery",
			call: func() error { return c.StopDiscovery(ctx, 5) },
			path: "/api/discovery/stop", key: "subscribeId", want: float64(5),
		},
		{
			name: "authenticate",
			call: func() error { return c.Authenticate(ctx, "udid-peer", models.AuthTypePin, `{"targetPkgName":"pkg"}`) },
			path: "/api/auth/authenticate", key: "deviceId", want: "udid-peer",
		},
		{
			name: "verify pin",
			call: func() error { return c.VerifyPin(ctx, 123456) },
			path: "/api/auth/verify", key: "authParam", want: `{"authType":1,"pinCode":123456}`,
		},
		{
			name: "unauthenticate",
			call: func() error { return c.Unauthenticate(ctx, "udid-peer") },
			path: "/api/auth/unauthenticate", key: "deviceId", want: "udid-peer",
		},
		{
			name: "register state callback",
			call: func() error { return c.RegisterStateCallback(ctx, "") },
			path: "/api/state/register", key: "ownerId", want: "console",
		},
		{
			name: "unregister state callback",
			call: func() error { return c.UnregisterStateCallback(ctx) },
			path: "/api/state/unregister", key: "ownerId", want: "console",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.call())
			got := <-requests
			assert.Equal(t, tt.path, got.path)
			assert.Equal(t, "console", got.header)
			assert.Equal(t, "console", got.body["ownerId"])
			assert.Equal(t, tt.want, got.body[tt.key])
		})
	}
}

func TestHTTPDeviceManagerClient_Devices(t *testing.T) {
	c := newTestDeviceClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("ownerId") != "console" {
			writeResult(w, http.StatusBadRequest, models.Result{Code: models.CodeInvalidParameter})
			return
		}
		switch r.URL.Path {
		case "/api/devices/trusted":
			writeResult(w, http.StatusOK, []models.DeviceInfo{{DeviceID: "udid-1", DeviceName: "tablet"}})
		case "/api/devices/local":
			writeResult(w, http.StatusOK, models.LocalDeviceInfo{UDID: "udid-local"})
		default:
			http.NotFound(w, r)
		}
	}))
	ctx := context.Background()

	devices, err := c.TrustedDevices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "tablet", devices[0].DeviceName)

	local, err := c.LocalDevice(ctx)
	require.NoError(t, err)
	assert.Equal(t, "udid-local", local.UDID)
}

func TestHTTPDeviceManagerClient_ErrorResult(t *testing.T) {
	c := newTestDeviceClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeResult(w, http.StatusConflict, models.Result{Code: models.CodeAlreadyInProgress, Message: "busy"})
	}))

	err := c.Authenticate(context.Background(), "udid-peer", models.AuthTypePin, "")
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, models.ErrAlreadyInProgress)
}

// ── Events ───────────────────────────────────────────────────────────────────

func TestHTTPDeviceManagerClient_Events(t *testing.T) {
	c := newTestDeviceClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "console", r.URL.Query().Get("ownerId"))
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, ": ping\n\n")
		fmt.Fprint(w, "event: auth_result\ndata: {\"ownerId\":\"console\",\"payload\":{\"code\":0}}\n\n")
		fmt.Fprint(w, "event: discovery\ndata: {\"type\":\"discovery\",\"ownerId\":\"console\"}\n\n")
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	events, err := c.Events(ctx)
	require.NoError(t, err)

	var got []models.StreamEvent
	for ev := range events {
		got = append(got, ev)
	}
	require.Len(t, got, 2)
	assert.Equal(t, models.EventTypeAuthResult, got[0].Type)
	assert.JSONEq(t, `{"code":0}`, string(got[0].Payload))
	assert.Equal(t, models.EventTypeDiscovery, got[1].Type)
}

func TestHTTPDeviceManagerClient_EventsRejected(t *testing.T) {
	c := newTestDeviceClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "streaming unsupported", http.StatusNotImplemented)
	}))

	_, err := c.Events(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "501")
}

func TestReadEventStream(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr error
	}{
		{
			name:    "type from event line",
			input:   "event: device_state\ndata: {\"ownerId\":\"o\"}\n\n",
			want:    []string{models.EventTypeDeviceState},
			wantErr: ErrStreamClosed,
		},
		{
			name:    "comments and empty events skipped",
			input:   ": ping\n\nevent: credential\n\n",
			wantErr: ErrStreamClosed,
		},
		{
			name:    "multi line data",
			input:   "event: discovery\ndata: {\"ownerId\":\ndata: \"o\"}\n\n",
			want:    []string{models.EventTypeDiscovery},
			wantErr: ErrStreamClosed,
		},
		{
			name:    "malformed data",
			input:   "data: {broken\n\n",
			wantErr: models.ErrMalformedMessage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make(chan models.StreamEvent, 4)
			err := readEventStream(context.Background(), strings.NewReader(tt.input), out)
			close(out)
			assert.ErrorIs(t, err, tt.wantErr)

			var types []string
			for ev := range out {
				types = append(types, ev.Type)
			}
			assert.Equal(t, tt.want, types)
		})
	}
}

func TestReadEventStream_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := make(chan models.StreamEvent)
	err := readEventStream(ctx, strings.NewReader("data: {}\n\n"), out)
	assert.ErrorIs(t, err, context.Canceled)
}
