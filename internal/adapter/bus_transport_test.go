// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-device-keeper/internal/bus"
	"github.com/MKhiriev/go-device-keeper/internal/config"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/models"
)

type busCall struct {
	method string
	path   string
	body   map[string]any
}

// newBusServer starts a fake bus daemon that records every call and replies
// with the body reply returns for it.
func newBusServer(t *testing.T, reply func(r *http.Request) (int, any)) (bus.Transport, func() []busCall) {
	t.Helper()

	var mu sync.Mutex
	calls := make([]busCall, 0)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := busCall{method: r.Method, path: r.URL.Path}
		if data, _ := io.ReadAll(r.Body); len(data) > 0 {
			_ = json.Unmarshal(data, &call.body)
		}
		mu.Lock()
		calls = append(calls, call)
		mu.Unlock()

		status, body := http.StatusOK, any(nil)
		if reply != nil {
			status, body = reply(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if body != nil {
			_ = json.NewEncoder(w).Encode(body)
		}
	}))
	t.Cleanup(srv.Close)

	tr, err := NewHTTPBusTransport(config.Adapter{BusAddress: srv.URL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return tr, func() []busCall {
		mu.Lock()
		defer mu.Unlock()
		return append([]busCall(nil), calls...)
	}
}

// ── Constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPBusTransport_Address(t *testing.T) {
	_, err := NewHTTPBusTransport(config.Adapter{BusAddress: ""}, logger.Nop())
	assert.Error(t, err)

	_, err = NewHTTPBusTransport(config.Adapter{BusAddress: "localhost:7070"}, logger.Nop())
	assert.NoError(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:7070", want: "http://localhost:7070"},
		{in: " http://bus:7070/ ", want: "http://bus:7070"},
		{in: "https://bus.local", want: "https://bus.local"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Discovery and publish ────────────────────────────────────────────────────

func TestHTTPBusTransport_DiscoveryCalls(t *testing.T) {
	tr, calls := newBusServer(t, nil)
	ctx := context.Background()

	require.NoError(t, tr.StartDiscovery(ctx, "pkg", models.SubscribeInfo{SubscribeID: 7, Capability: "osdCapability"}))
	require.NoError(t, tr.StopDiscovery(ctx, "pkg", 7))
	require.NoError(t, tr.PublishDiscovery(ctx, "pkg", models.PublishInfo{PublishID: 3}))
	require.NoError(t, tr.StopPublish(ctx, "pkg", 3))

	got := calls()
	require.Len(t, got, 4)

	assert.Equal(t, "/v1/discovery/start", got[0].path)
	assert.Equal(t, "pkg", got[0].body["pkgName"])
	assert.EqualValues(t, 7, got[0].body["subscribeInfo"].(map[string]any)["subscribeId"])

	assert.Equal(t, "/v1/discovery/stop", got[1].path)
	assert.EqualValues(t, 7, got[1].body["subscribeId"])

	assert.Equal(t, "/v1/publish/start", got[2].path)
	assert.Equal(t, "/v1/publish/stop", got[3].path)
	assert.EqualValues(t, 3, got[3].body["publishId"])
}

// ── Nodes ────────────────────────────────────────────────────────────────────

func TestHTTPBusTransport_Nodes(t *testing.T) {
	tr, calls := newBusServer(t, func(r *http.Request) (int, any) {
		switch r.URL.Path {
		case "/v1/nodes/trusted":
			return http.StatusOK, []models.NodeBasicInfo{{NetworkID: "net-1", DeviceName: "tablet"}}
		case "/v1/nodes/local":
			return http.StatusOK, models.LocalDeviceInfo{UDID: "udid-local", NetworkID: "net-local"}
		case "/v1/nodes/net-1/udid":
			return http.StatusOK, models.IdentityResponse{Value: "udid-1"}
		case "/v1/nodes/net-1/uuid":
			return http.StatusOK, models.IdentityResponse{Value: "uuid-1"}
		}
		return http.StatusNotFound, models.Result{Code: models.CodeNotFound, Message: "no node"}
	})
	ctx := context.Background()

	nodes, err := tr.GetTrustedDevices(ctx)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "tablet", nodes[0].DeviceName)

	local, err := tr.GetLocalDevice(ctx)
	require.NoError(t, err)
	assert.Equal(t, "udid-local", local.UDID)

	udid, err := tr.GetUdidByNetworkID(ctx, "net-1")
	require.NoError(t, err)
	assert.Equal(t, "udid-1", udid)

	uuid, err := tr.GetUuidByNetworkID(ctx, "net-1")
	require.NoError(t, err)
	assert.Equal(t, "uuid-1", uuid)

	_, err = tr.GetUdidByNetworkID(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrSubsystemCallFailed)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = tr.GetUuidByNetworkID(ctx, "")
	assert.ErrorIs(t, err, models.ErrInvalidParameter)

	assert.Len(t, calls(), 5)
}

// ── Sessions ─────────────────────────────────────────────────────────────────

func TestHTTPBusTransport_Sessions(t *testing.T) {
	tr, calls := newBusServer(t, func(r *http.Request) (int, any) {
		if r.Method == http.MethodPost && r.URL.Path == "/v1/sessions" {
			return http.StatusOK, busSessionResponse{SessionID: 42}
		}
		return http.StatusOK, nil
	})
	ctx := context.Background()

	id, err := tr.OpenAuthSession(ctx, "udid-peer", models.ConnectAddr{Addr: "10.0.0.2", Port: 5000})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	require.NoError(t, tr.SendSessionMessage(ctx, id, `{"msgType":100}`))
	require.NoError(t, tr.CloseAuthSession(ctx, id))

	got := calls()
	require.Len(t, got, 3)
	assert.Equal(t, "udid-peer", got[0].body["deviceId"])
	assert.Equal(t, "/v1/sessions/42/messages", got[1].path)
	assert.Equal(t, `{"msgType":100}`, got[1].body["data"])
	assert.Equal(t, http.MethodDelete, got[2].method)
	assert.Equal(t, "/v1/sessions/42", got[2].path)
}

func TestHTTPBusTransport_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	tr, err := NewHTTPBusTransport(config.Adapter{BusAddress: addr, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	err = tr.StartDiscovery(context.Background(), "pkg", models.SubscribeInfo{})
	assert.ErrorIs(t, err, models.ErrSubsystemCallFailed)
	assert.ErrorIs(t, err, ErrBusUnavailable)

	err = tr.CloseAuthSession(context.Background(), 1)
	assert.ErrorIs(t, err, ErrBusUnavailable)
}

func TestHTTPBusTransport_ServerError(t *testing.T) {
	tr, _ := newBusServer(t, func(*http.Request) (int, any) {
		return http.StatusInternalServerError, nil
	})

	err := tr.PublishDiscovery(context.Background(), "pkg", models.PublishInfo{})
	assert.ErrorIs(t, err, models.ErrSubsystemCallFailed)
	assert.ErrorIs(t, err, ErrInternalServerError)
}
