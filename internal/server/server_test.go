package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-device-keeper/internal/config"
	"github.com/MKhiriev/go-device-keeper/internal/handler"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/internal/service"
)

// ─────────────────────────────────────────────
// NewServer
// ─────────────────────────────────────────────

func TestNewServer_NoAddresses(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoListeners)
	assert.Nil(t, s)
}

func TestNewServer_OnlyGRPC(t *testing.T) {
	cfg := config.Server{GRPCAddress: "127.0.0.1:0"}
	handlers, err := handler.NewHandlers(&service.Services{}, nil, cfg, "test", logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	srv := s.(*server)
	assert.Nil(t, srv.httpServer)
	assert.NotNil(t, srv.gRPCServer)
}

// ─────────────────────────────────────────────
// Lifecycle
// ─────────────────────────────────────────────

func TestRunServer_StopsOnContextCancel(t *testing.T) {
	cfg := config.Server{GRPCAddress: "127.0.0.1:0"}
	handlers, err := handler.NewHandlers(&service.Services{}, nil, cfg, "test", logger.Nop())
	require.NoError(t, err)
	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServer_ListenErrorReturned(t *testing.T) {
	cfg := config.Server{GRPCAddress: "256.0.0.1:bad"}
	handlers, err := handler.NewHandlers(&service.Services{}, nil, cfg, "test", logger.Nop())
	require.NoError(t, err)
	s, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)

	err = s.RunServer(context.Background())

	assert.Error(t, err)
}

func TestWithRequestTimeout(t *testing.T) {
	var deadlines []bool
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, ok := r.Context().Deadline()
		deadlines = append(deadlines, ok)
	})
	h := withRequestTimeout(next, time.Second)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/auth/verify", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/events", nil))

	assert.Equal(t, []bool{true, false}, deadlines)
}
