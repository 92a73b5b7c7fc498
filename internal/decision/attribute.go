// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package decision

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-device-keeper/models"
)

// AttributeParams is the params format of the attribute strategy. Empty
// fields do not restrict.
type AttributeParams struct {
	DeviceTypeIDs []int             `json:"deviceTypeIds,omitempty"`
	AuthForms     []models.AuthForm `json:"authForms,omitempty"`
	MaxRange      int               `json:"maxRange,omitempty"`
}

// AttributeFilter keeps devices whose type, auth form and range match.
type AttributeFilter struct{}

// NewAttributeFilter returns the attribute strategy.
func NewAttributeFilter() *AttributeFilter {
	return &AttributeFilter{}
}

// Name implements Filter.
func (*AttributeFilter) Name() string {
	return StrategyAttribute
}

// FilterDevices implements Filter.
func (*AttributeFilter) FilterDevices(params string, devices []models.DeviceInfo) ([]models.DeviceInfo, error) {
	if params == "" {
		return devices, nil
	}

	var p AttributeParams
	if err := json.Unmarshal([]byte(params), &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadParams, err)
	}

	out := make([]models.DeviceInfo, 0, len(devices))
	for _, d := range devices {
		if len(p.DeviceTypeIDs) > 0 && !slices.Contains(p.DeviceTypeIDs, d.DeviceTypeID) {
			continue
		}
		if len(p.AuthForms) > 0 && !slices.Contains(p.AuthForms, d.AuthForm) {
			continue
		}
		if p.MaxRange > 0 && d.Range > p.MaxRange {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}
