package http

import "github.com/MKhiriev/go-device-keeper/models"

// BusEvents receives the events the bus daemon posts to the webhooks.
type BusEvents interface {
	OnDeviceOnline(node models.NodeBasicInfo)
	OnDeviceOffline(node models.NodeBasicInfo)
	OnDeviceInfoChanged(node models.NodeBasicInfo)
	OnDeviceFound(device models.DiscoveredDevice)
	OnDiscoveryResult(ev models.DiscoveryResultEvent)
	OnPublishResult(ev models.PublishResultEvent)
	OnSessionOpened(ev models.SessionOpenedEvent)
	OnSessionClosed(ev models.SessionClosedEvent)
	OnSessionData(ev models.SessionDataEvent)
}

// EventSource streams the events of one owner.
type EventSource interface {
	Subscribe(ownerID string) (<-chan models.Event, func(), error)
}
