package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-device-keeper/internal/adapter"
	"github.com/MKhiriev/go-device-keeper/models"
)

func TestMapAdapterError(t *testing.T) {
	plain := errors.New("dial tcp: connection refused")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "pin mismatch", in: fmt.Errorf("%w: %w", adapter.ErrUnauthorized, models.ErrPinMismatch), want: ErrWrongPin},
		{name: "busy", in: fmt.Errorf("%w: %w", adapter.ErrConflict, models.ErrBusy), want: ErrPairingBusy},
		{name: "in progress", in: models.ErrAlreadyInProgress, want: ErrPairingBusy},
		{name: "not found", in: adapter.ErrNotFound, want: ErrDeviceNotFound},
		{name: "rate limited", in: adapter.ErrTooManyRequests, want: ErrRateLimited},
		{name: "bad gateway", in: adapter.ErrBadGateway, want: ErrServiceUnavailable},
		{name: "stream closed", in: adapter.ErrStreamClosed, want: ErrServiceUnavailable},
		{name: "bad request", in: adapter.ErrBadRequest, want: ErrRequestRejected},
		{name: "unmapped", in: plain, want: plain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.in, "original error stays in the chain")
		})
	}

	assert.NoError(t, mapAdapterError(nil))
}
