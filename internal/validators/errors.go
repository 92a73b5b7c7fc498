package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyOwnerID   = errors.New("owner id is required")
	ErrEmptyDeviceID  = errors.New("device id is required")
	ErrEmptyAuthParam = errors.New("auth param is required")
	ErrEmptyPayload   = errors.New("payload is required")
	ErrUnknownEventID = errors.New("unknown event id")
)
