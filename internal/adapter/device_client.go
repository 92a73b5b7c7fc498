package adapter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-device-keeper/internal/config"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/internal/utils"
	"github.com/MKhiriev/go-device-keeper/models"
)

// eventBuffer is the capacity of the channel returned by Events.
const eventBuffer = 16

type httpDeviceManagerClient struct {
	client *utils.HTTPClient
	// stream has no timeout: an event stream lasts as long as the session.
	stream  *utils.HTTPClient
	ownerID string

	logger *logger.Logger
}

// NewHTTPDeviceManagerClient constructs a [DeviceManagerClient] for the
// service API at adapterCfg.HTTPAddress, acting as appCfg.OwnerID.
func NewHTTPDeviceManagerClient(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (DeviceManagerClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if appCfg.OwnerID == "" {
		return nil, fmt.Errorf("%w: empty owner id", models.ErrInvalidParameter)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(adapterCfg.RequestTimeout),
		utils.WithHeader("Content-Type", "application/json"),
		utils.WithHeader(models.OwnerHeader, appCfg.OwnerID),
	)
	stream := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithHeader("Accept", "text/event-stream"),
		utils.WithHeader(models.OwnerHeader, appCfg.OwnerID),
	)

	return &httpDeviceManagerClient{
		client:  client,
		stream:  stream,
		ownerID: appCfg.OwnerID,
		logger:  log,
	}, nil
}

func (c *httpDeviceManagerClient) OwnerID() string {
	return c.ownerID
}

func (c *httpDeviceManagerClient) TrustedDevices(ctx context.Context) ([]models.DeviceInfo, error) {
	devices := make([]models.DeviceInfo, 0)
	if err := c.get(ctx, "/api/devices/trusted", &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

func (c *httpDeviceManagerClient) LocalDevice(ctx context.Context) (models.LocalDeviceInfo, error) {
	var local models.LocalDeviceInfo
	if err := c.get(ctx, "/api/devices/local", &local); err != nil {
		return models.LocalDeviceInfo{}, err
	}
	return local, nil
}

func (c *httpDeviceManagerClient) StartDiscovery(ctx context.Context, info models.SubscribeInfo, filter string) error {
	return c.post(ctx, "/api/discovery/start", models.StartDiscoveryRequest{
		OwnerID:       c.ownerID,
		SubscribeInfo: info,
		Filter:        filter,
	})
}

func (c *httpDeviceManagerClient) StopDiscovery(ctx context.Context, subscribeID uint16) error {
	return c.post(ctx, "/api/discovery/stop", models.StopDiscoveryRequest{OwnerID: c.ownerID, SubscribeID: subscribeID})
}

func (c *httpDeviceManagerClient) Authenticate(ctx context.Context, deviceID string, authType int, extra string) error {
	return c.post(ctx, "/api/auth/authenticate", models.AuthenticateRequest{
		OwnerID:  c.ownerID,
		AuthType: authType,
		DeviceID: deviceID,
		Extra:    extra,
	})
}

func (c *httpDeviceManagerClient) VerifyPin(ctx context.Context, pinCode int) error {
	param, err := json.Marshal(struct {
		AuthType int `json:"authType"`
		PinCode  int `json:"pinCode"`
	}{AuthType: models.AuthTypePin, PinCode: pinCode})
	if err != nil {
		return fmt.Errorf("encode auth param: %w", err)
	}
	return c.post(ctx, "/api/auth/verify", models.VerifyAuthRequest{OwnerID: c.ownerID, AuthParam: string(param)})
}

func (c *httpDeviceManagerClient) Unauthenticate(ctx context.Context, deviceID string) error {
	return c.post(ctx, "/api/auth/unauthenticate", models.UnauthenticateRequest{OwnerID: c.ownerID, DeviceID: deviceID})
}

func (c *httpDeviceManagerClient) RegisterStateCallback(ctx context.Context, extra string) error {
	return c.post(ctx, "/api/state/register", models.StateCallbackRequest{OwnerID: c.ownerID, Extra: extra})
}

func (c *httpDeviceManagerClient) UnregisterStateCallback(ctx context.Context) error {
	return c.post(ctx, "/api/state/unregister", models.OwnerRequest{OwnerID: c.ownerID})
}

func (c *httpDeviceManagerClient) Events(ctx context.Context) (<-chan models.StreamEvent, error) {
	resp, err := c.stream.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetQueryParam("ownerId", c.ownerID).
		Get("/api/events")
	if err != nil {
		return nil, fmt.Errorf("events request: %w", err)
	}

	body := resp.RawBody()
	if resp.StatusCode() != http.StatusOK {
		defer body.Close()
		data, _ := io.ReadAll(body)
		return nil, fmt.Errorf("events request: http %d: %s", resp.StatusCode(), strings.TrimSpace(string(data)))
	}

	events := make(chan models.StreamEvent, eventBuffer)
	go func() {
		defer close(events)
		defer body.Close()

		if err := readEventStream(ctx, body, events); err != nil && ctx.Err() == nil {
			c.logger.Err(err).Str("func", "*httpDeviceManagerClient.Events").Msg("event stream ended")
		}
	}()
	return events, nil
}

// readEventStream parses server-sent events from r into out. Comment lines
// and events without data are skipped.
func readEventStream(ctx context.Context, r io.Reader, out chan<- models.StreamEvent) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var eventType, data string
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if data != "" {
				var ev models.StreamEvent
				if err := json.Unmarshal([]byte(data), &ev); err != nil {
					return fmt.Errorf("%w: %w", models.ErrMalformedMessage, err)
				}
				if ev.Type == "" {
					ev.Type = eventType
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			eventType, data = "", ""
		case strings.HasPrefix(line, ":"):
		case strings.HasPrefix(line, "event:"):
			eventType = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data += strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return ErrStreamClosed
}

func (c *httpDeviceManagerClient) post(ctx context.Context, path string, body any) error {
	resp, err := c.client.R().SetContext(ctx).SetBody(body).Post(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (c *httpDeviceManagerClient) get(ctx context.Context, path string, result any) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("ownerId", c.ownerID).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}
	return mapHTTPError(resp)
}

