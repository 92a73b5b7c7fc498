package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-device-keeper/internal/config"
	"github.com/MKhiriev/go-device-keeper/models"
)

func TestBusWebhooks_DeliverEvents(t *testing.T) {
	tests := []struct {
		path string
		body string
		want any
	}{
		{"/api/bus/nodes/online", `{"networkId":"n1","deviceName":"tv","deviceTypeId":156}`,
			models.NodeBasicInfo{NetworkID: "n1", DeviceName: "tv", DeviceTypeID: 156}},
		{"/api/bus/nodes/offline", `{"networkId":"n1"}`, models.NodeBasicInfo{NetworkID: "n1"}},
		{"/api/bus/nodes/changed", `{"networkId":"n1","deviceName":"tv2"}`, models.NodeBasicInfo{NetworkID: "n1", DeviceName: "tv2"}},
		{"/api/bus/discovery/found", `{"device":{"devId":"d1","isOnline":true}}`, models.DiscoveredDevice{DeviceID: "d1", IsOnline: true}},
		{"/api/bus/discovery/result", `{"subscribeId":3,"success":true}`, models.DiscoveryResultEvent{SubscribeID: 3, Success: true}},
		{"/api/bus/publish/result", `{"publishId":4,"code":0}`, models.PublishResultEvent{PublishID: 4}},
		{"/api/bus/sessions/opened", `{"sessionId":9,"side":1,"result":0}`, models.SessionOpenedEvent{SessionID: 9, Side: 1}},
		{"/api/bus/sessions/closed", `{"sessionId":9}`, models.SessionClosedEvent{SessionID: 9}},
		{"/api/bus/sessions/data", `{"sessionId":9,"data":"{}"}`, models.SessionDataEvent{SessionID: 9, Data: "{}"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f := newFixture(t, config.Server{})

			rec := f.do(http.MethodPost, tt.path, tt.body)

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, tt.want, f.bus.last())
		})
	}
}

func TestBusWebhooks_BadBody(t *testing.T) {
	f := newFixture(t, config.Server{})

	rec := f.do(http.MethodPost, "/api/bus/sessions/data", `not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, f.bus.last())
}

func TestBusWebhooks_NotMountedWithoutBus(t *testing.T) {
	f := newFixture(t, config.Server{})
	f.handler.bus = nil

	rec := httptestDo(f.handler.Init(), http.MethodPost, "/api/bus/nodes/online", `{}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
