package service

import (
	"errors"

	"github.com/MKhiriev/go-device-keeper/internal/adapter"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
)

// ClientServices groups the services the console runs on.
type ClientServices struct {
	Devices    ClientDeviceService
	RefreshJob ClientRefreshJob
}

func NewClientServices(client adapter.DeviceManagerClient, log *logger.Logger) (*ClientServices, error) {
	if client == nil {
		return nil, errors.New("nil device manager client")
	}

	devices := NewClientDeviceService(client, log)
	return &ClientServices{
		Devices:    devices,
		RefreshJob: NewClientRefreshJob(devices),
	}, nil
}
