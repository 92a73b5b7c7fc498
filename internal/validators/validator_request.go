package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-device-keeper/models"
)

const (
	FieldOwnerID   = "owner_id"
	FieldDeviceID  = "device_id"
	FieldAuthParam = "auth_param"
	FieldPayload   = "payload"
	FieldEventID   = "event_id"
)

// RequestValidator validates the request bodies of the service API.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.OwnerRequest:
		return v.validateFields(value.OwnerID, request{}, orDefault(fields, FieldOwnerID))
	case models.StartDiscoveryRequest:
		return v.validateFields(value.OwnerID, request{}, orDefault(fields, FieldOwnerID))
	case models.StopDiscoveryRequest:
		return v.validateFields(value.OwnerID, request{}, orDefault(fields, FieldOwnerID))
	case models.PublishRequest:
		return v.validateFields(value.OwnerID, request{}, orDefault(fields, FieldOwnerID))
	case models.UnpublishRequest:
		return v.validateFields(value.OwnerID, request{}, orDefault(fields, FieldOwnerID))
	case models.AuthenticateRequest:
		return v.validateFields(value.OwnerID, request{deviceID: value.DeviceID}, orDefault(fields, FieldOwnerID, FieldDeviceID))
	case models.UnauthenticateRequest:
		return v.validateFields(value.OwnerID, request{deviceID: value.DeviceID}, orDefault(fields, FieldOwnerID, FieldDeviceID))
	case models.VerifyAuthRequest:
		return v.validateFields(value.OwnerID, request{authParam: value.AuthParam}, orDefault(fields, FieldOwnerID, FieldAuthParam))
	case models.StateCallbackRequest:
		return v.validateFields(value.OwnerID, request{}, orDefault(fields, FieldOwnerID))
	case models.CredentialPayloadRequest:
		return v.validateFields(value.OwnerID, request{payload: value.Payload}, orDefault(fields, FieldOwnerID, FieldPayload))
	case models.NotifyEventRequest:
		return v.validateFields(value.OwnerID, request{eventID: value.EventID}, orDefault(fields, FieldOwnerID, FieldEventID))
	default:
		return ErrUnsupportedType
	}
}

// request is the common view of the checked fields.
type request struct {
	deviceID  string
	authParam string
	payload   string
	eventID   int
}

func orDefault(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}

func (v *RequestValidator) validateFields(ownerID string, r request, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if strings.TrimSpace(ownerID) == "" {
				return ErrEmptyOwnerID
			}
		case FieldDeviceID:
			if strings.TrimSpace(r.deviceID) == "" {
				return ErrEmptyDeviceID
			}
		case FieldAuthParam:
			if r.authParam == "" {
				return ErrEmptyAuthParam
			}
		case FieldPayload:
			if r.payload == "" {
				return ErrEmptyPayload
			}
		case FieldEventID:
			if r.eventID != models.NotifyEventDeviceReady {
				return ErrUnknownEventID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
