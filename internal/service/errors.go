package service

import (
	"errors"

	"github.com/MKhiriev/go-device-keeper/internal/validators"
)

var (
	ErrNoOwnerID        = validators.ErrEmptyOwnerID
	ErrUnknownEvent     = validators.ErrUnknownEventID
	ErrEventHubClosed   = errors.New("event hub closed")
	ErrMalformedPayload = errors.New("malformed payload")
)

// Client-side errors.
var (
	ErrDiscoveryRunning   = errors.New("discovery is already running")
	ErrNoDeviceSelected   = errors.New("no device selected")
	ErrInvalidPinFormat   = errors.New("pin must be 6 digits")
	ErrUnknownEventType   = errors.New("unknown event type")
	ErrServiceUnavailable = errors.New("device keeper service unavailable")
	ErrRateLimited        = errors.New("too many requests, slow down")
	ErrWrongPin           = errors.New("wrong pin")
	ErrPairingBusy        = errors.New("another pairing is in progress")
	ErrDeviceNotFound     = errors.New("device not found")
	ErrRequestRejected    = errors.New("request rejected by service")
)
