// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-device-keeper/internal/adapter"
	"github.com/MKhiriev/go-device-keeper/models"
)

// mapAdapterError translates the adapter's transport error into a client
// business error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, models.ErrPinMismatch):
		return fmt.Errorf("%w: %w", ErrWrongPin, err)
	case errors.Is(err, models.ErrBusy), errors.Is(err, models.ErrAlreadyInProgress):
		return fmt.Errorf("%w: %w", ErrPairingBusy, err)
	case errors.Is(err, models.ErrNotFound), errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrDeviceNotFound, err)
	case errors.Is(err, adapter.ErrTooManyRequests):
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	case errors.Is(err, adapter.ErrBadGateway), errors.Is(err, adapter.ErrStreamClosed):
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrForbidden), errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrRequestRejected, err)
	}

	return err
}
