// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decision

//go:generate mockgen -source=interfaces.go -destination=../mock/decision_mock.go -package=mock

import "github.com/MKhiriev/go-device-keeper/models"

// Filter narrows the device list a state listener is notified about.
// params is the opaque string the listener registered with; its format is
// strategy specific. An empty params keeps every device.
type Filter interface {
	Name() string
	FilterDevices(params string, devices []models.DeviceInfo) ([]models.DeviceInfo, error)
}
