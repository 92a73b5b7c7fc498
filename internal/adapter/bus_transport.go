// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-device-keeper/internal/bus"
	"github.com/MKhiriev/go-device-keeper/internal/config"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/internal/utils"
	"github.com/MKhiriev/go-device-keeper/models"
)

type busStartDiscoveryBody struct {
	PkgName       string               `json:"pkgName"`
	SubscribeInfo models.SubscribeInfo `json:"subscribeInfo"`
}

type busStopDiscoveryBody struct {
	PkgName     string `json:"pkgName"`
	SubscribeID uint16 `json:"subscribeId"`
}

type busPublishBody struct {
	PkgName     string             `json:"pkgName"`
	PublishInfo models.PublishInfo `json:"publishInfo"`
}

type busStopPublishBody struct {
	PkgName   string `json:"pkgName"`
	PublishID int32  `json:"publishId"`
}

type busOpenSessionBody struct {
	DeviceID string             `json:"deviceId"`
	Addr     models.ConnectAddr `json:"addr"`
}

type busSessionResponse struct {
	SessionID int64 `json:"sessionId"`
}

type busMessageBody struct {
	Data string `json:"data"`
}

type httpBusTransport struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPBusTransport constructs a [bus.Transport] that talks to the device
// bus daemon REST API at cfg.BusAddress. Events produced by the daemon come
// back through the service webhooks, not through this client.
func NewHTTPBusTransport(cfg config.Adapter, log *logger.Logger) (bus.Transport, error) {
	baseURL, err := normalizeBaseURL(cfg.BusAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid bus address: %w", err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(cfg.RequestTimeout),
		utils.WithHeader("Content-Type", "application/json"),
	)

	return &httpBusTransport{client: client, logger: log.WithComponent("bus-transport")}, nil
}

func (t *httpBusTransport) StartDiscovery(ctx context.Context, pkgName string, info models.SubscribeInfo) error {
	return t.post(ctx, "/v1/discovery/start", busStartDiscoveryBody{PkgName: pkgName, SubscribeInfo: info}, nil)
}

func (t *httpBusTransport) StopDiscovery(ctx context.Context, pkgName string, subscribeID uint16) error {
	return t.post(ctx, "/v1/discovery/stop", busStopDiscoveryBody{PkgName: pkgName, SubscribeID: subscribeID}, nil)
}

func (t *httpBusTransport) PublishDiscovery(ctx context.Context, pkgName string, info models.PublishInfo) error {
	return t.post(ctx, "/v1/publish/start", busPublishBody{PkgName: pkgName, PublishInfo: info}, nil)
}

func (t *httpBusTransport) StopPublish(ctx context.Context, pkgName string, publishID int32) error {
	return t.post(ctx, "/v1/publish/stop", busStopPublishBody{PkgName: pkgName, PublishID: publishID}, nil)
}

func (t *httpBusTransport) GetUdidByNetworkID(ctx context.Context, networkID string) (string, error) {
	return t.identity(ctx, networkID, "udid")
}

func (t *httpBusTransport) GetUuidByNetworkID(ctx context.Context, networkID string) (string, error) {
	return t.identity(ctx, networkID, "uuid")
}

func (t *httpBusTransport) identity(ctx context.Context, networkID, kind string) (string, error) {
	if networkID == "" {
		return "", fmt.Errorf("%w: empty network id", models.ErrInvalidParameter)
	}

	var out models.IdentityResponse
	if err := t.get(ctx, "/v1/nodes/"+url.PathEscape(networkID)+"/"+kind, &out); err != nil {
		return "", err
	}
	return out.Value, nil
}

func (t *httpBusTransport) GetTrustedDevices(ctx context.Context) ([]models.NodeBasicInfo, error) {
	nodes := make([]models.NodeBasicInfo, 0)
	if err := t.get(ctx, "/v1/nodes/trusted", &nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}

func (t *httpBusTransport) GetLocalDevice(ctx context.Context) (models.LocalDeviceInfo, error) {
	var local models.LocalDeviceInfo
	if err := t.get(ctx, "/v1/nodes/local", &local); err != nil {
		return models.LocalDeviceInfo{}, err
	}
	return local, nil
}

func (t *httpBusTransport) OpenAuthSession(ctx context.Context, deviceID string, addr models.ConnectAddr) (int64, error) {
	var out busSessionResponse
	if err := t.post(ctx, "/v1/sessions", busOpenSessionBody{DeviceID: deviceID, Addr: addr}, &out); err != nil {
		return 0, err
	}
	return out.SessionID, nil
}

func (t *httpBusTransport) CloseAuthSession(ctx context.Context, sessionID int64) error {
	resp, err := t.client.R().
		SetContext(ctx).
		Delete("/v1/sessions/" + strconv.FormatInt(sessionID, 10))
	if err != nil {
		return t.transportError("CloseAuthSession", err)
	}
	return busStatusError(resp)
}

func (t *httpBusTransport) SendSessionMessage(ctx context.Context, sessionID int64, data string) error {
	path := "/v1/sessions/" + strconv.FormatInt(sessionID, 10) + "/messages"
	return t.post(ctx, path, busMessageBody{Data: data}, nil)
}

func (t *httpBusTransport) post(ctx context.Context, path string, body, result any) error {
	req := t.client.R().SetContext(ctx).SetBody(body)
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Post(path)
	if err != nil {
		return t.transportError(path, err)
	}
	return busStatusError(resp)
}

func (t *httpBusTransport) get(ctx context.Context, path string, result any) error {
	resp, err := t.client.R().SetContext(ctx).SetResult(result).Get(path)
	if err != nil {
		return t.transportError(path, err)
	}
	return busStatusError(resp)
}

func (t *httpBusTransport) transportError(op string, err error) error {
	t.logger.Err(err).Str("func", "*httpBusTransport").Str("op", op).Msg("bus request failed")
	return fmt.Errorf("%w: %w: %s: %w", models.ErrSubsystemCallFailed, ErrBusUnavailable, op, err)
}

// busStatusError maps a daemon reply; every failure is a failed subsystem
// call for the components above.
func busStatusError(resp *resty.Response) error {
	if err := mapHTTPError(resp); err != nil {
		return fmt.Errorf("%w: %w", models.ErrSubsystemCallFailed, err)
	}
	return nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
