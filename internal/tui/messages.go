package tui

import (
	"github.com/MKhiriev/go-device-keeper/internal/service"
	"github.com/MKhiriev/go-device-keeper/models"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload any
}

// Page names.
const (
	pageMenu     = "menu"
	pageTrusted  = "trusted"
	pageDiscover = "discover"
	pagePin      = "pin"
	pageLocal    = "local"
)

// pinRequest opens the PIN page for a pairing with DeviceID.
type pinRequest struct {
	DeviceID   string
	DeviceName string
}

type eventsOpenedMsg struct {
	events <-chan service.ClientEvent
}

type eventMsg struct {
	event  service.ClientEvent
	source <-chan service.ClientEvent
}

type streamClosedMsg struct {
	err error
}

type devicesLoadedMsg struct {
	devices []models.DeviceInfo
	err     error
}

type localLoadedMsg struct {
	local models.LocalDeviceInfo
	err   error
}

// actionDoneMsg reports the outcome of a one-shot service call started by
// a page.
type actionDoneMsg struct {
	page   string
	status string
	err    error
}

type discoveryStartedMsg struct {
	subscribeID uint16
	err         error
}
