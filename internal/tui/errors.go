// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-device-keeper/internal/service"
)

// ErrUserQuit is returned by Run when the user closed the console.
var ErrUserQuit = errors.New("user quit")

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") ||
		errors.Is(err, service.ErrServiceUnavailable) {
		return "No network or the device keeper service is unavailable"
	}

	for _, known := range []error{
		service.ErrWrongPin,
		service.ErrInvalidPinFormat,
		service.ErrPairingBusy,
		service.ErrDeviceNotFound,
		service.ErrRateLimited,
		service.ErrDiscoveryRunning,
		service.ErrNoDeviceSelected,
	} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return err.Error()
}
