package service

import (
	"github.com/MKhiriev/go-device-keeper/internal/logger"
)

// Components are the control-plane parts the service routes calls to.
type Components struct {
	Discovery   Discoverer
	Publish     Publisher
	Auth        Authenticator
	States      StateRegistry
	Credentials CredentialHandler
	Devices     DeviceDirectory
}

type Services struct {
	DeviceManager DeviceManagerService
	Events        *EventHub
}

// NewServices builds the device manager service with owner validation in
// front of it. events is the hub the components were given as listener.
func NewServices(components Components, events *EventHub, logger *logger.Logger) *Services {
	return &Services{
		DeviceManager: NewDeviceManagerValidationService().Wrap(NewDeviceManagerService(components, logger)),
		Events:        events,
	}
}
