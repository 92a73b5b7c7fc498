// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bus connects the device bus transport to the control plane. It
// fans transport events out to the presence, discovery, publish and pairing
// handlers and caches recently discovered devices so pairing can reach them.
package bus

import (
	"context"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/models"
)

// DiscoveredCacheSize is how many discovered devices are remembered.
const DiscoveredCacheSize = 20

// addrPreference is the order connect addresses are tried in.
var addrPreference = []models.ConnectionAddrType{
	models.ConnectionAddrETH,
	models.ConnectionAddrWLAN,
	models.ConnectionAddrBR,
	models.ConnectionAddrBLE,
}

// Connector owns the transport and routes its events.
type Connector struct {
	transport  Transport
	discovered *lru.Cache[string, models.DiscoveredDevice]
	log        *logger.Logger

	mu        sync.RWMutex
	state     StateHandler
	discovery DiscoveryHandler
	publish   PublishHandler
	session   SessionHandler
}

// NewConnector wraps transport.
func NewConnector(transport Transport, log *logger.Logger) (*Connector, error) {
	cache, err := lru.New[string, models.DiscoveredDevice](DiscoveredCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create discovered device cache: %w", err)
	}
	return &Connector{
		transport:  transport,
		discovered: cache,
		log:        log.WithComponent("bus"),
	}, nil
}

// Transport returns the wrapped transport.
func (c *Connector) Transport() Transport {
	return c.transport
}

// SetStateHandler installs the receiver of device state events.
func (c *Connector) SetStateHandler(h StateHandler) {
	c.mu.Lock()
	c.state = h
	c.mu.Unlock()
}

// SetDiscoveryHandler installs the receiver of discovery events.
func (c *Connector) SetDiscoveryHandler(h DiscoveryHandler) {
	c.mu.Lock()
	c.discovery = h
	c.mu.Unlock()
}

// SetPublishHandler installs the receiver of publish results.
func (c *Connector) SetPublishHandler(h PublishHandler) {
	c.mu.Lock()
	c.publish = h
	c.mu.Unlock()
}

// SetSessionHandler installs the receiver of auth session events.
func (c *Connector) SetSessionHandler(h SessionHandler) {
	c.mu.Lock()
	c.session = h
	c.mu.Unlock()
}

func (c *Connector) handlers() (StateHandler, DiscoveryHandler, PublishHandler, SessionHandler) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state, c.discovery, c.publish, c.session
}

// ── Device state events ─────────────────────────────────────────────────────

// OnDeviceOnline is called by the transport when a node comes online.
func (c *Connector) OnDeviceOnline(node models.NodeBasicInfo) {
	c.log.Info().Str("func", "Connector.OnDeviceOnline").Str("network_id", node.NetworkID).Msg("device online")
	if h, _, _, _ := c.handlers(); h != nil {
		h.HandleDeviceOnline(deviceFromNode(node))
	}
}

// OnDeviceOffline is called by the transport when a node goes offline.
func (c *Connector) OnDeviceOffline(node models.NodeBasicInfo) {
	c.log.Info().Str("func", "Connector.OnDeviceOffline").Str("network_id", node.NetworkID).Msg("device offline")
	if h, _, _, _ := c.handlers(); h != nil {
		h.HandleDeviceOffline(deviceFromNode(node))
	}
}

// OnDeviceInfoChanged is called by the transport when node info changes.
func (c *Connector) OnDeviceInfoChanged(node models.NodeBasicInfo) {
	if h, _, _, _ := c.handlers(); h != nil {
		h.HandleDeviceChanged(deviceFromNode(node))
	}
}

// ── Discovery and publish events ────────────────────────────────────────────

// OnDeviceFound caches the device and forwards it to the discovery handler.
func (c *Connector) OnDeviceFound(device models.DiscoveredDevice) {
	if device.DeviceID == "" {
		c.log.Warn().Str("func", "Connector.OnDeviceFound").Msg("found device without id dropped")
		return
	}
	c.discovered.Add(device.DeviceID, device)

	if _, h, _, _ := c.handlers(); h != nil {
		h.OnDeviceFound(device)
	}
}

// OnDiscoveryResult forwards a subscription outcome.
func (c *Connector) OnDiscoveryResult(ev models.DiscoveryResultEvent) {
	_, h, _, _ := c.handlers()
	if h == nil {
		return
	}
	if ev.Success {
		h.OnDiscoverySuccess(ev.SubscribeID)
		return
	}
	c.log.Warn().
		Str("func", "Connector.OnDiscoveryResult").
		Uint16("subscribe_id", ev.SubscribeID).
		Int("reason", ev.Reason).
		Msg("discovery failed")
	h.OnDiscoveryFailed(ev.SubscribeID, ev.Reason)
}

// OnPublishResult forwards a publish outcome.
func (c *Connector) OnPublishResult(ev models.PublishResultEvent) {
	if _, _, h, _ := c.handlers(); h != nil {
		h.OnPublishResult(ev.PublishID, ev.Code)
	}
}

// ── Session events ──────────────────────────────────────────────────────────

// OnSessionOpened forwards a session open outcome.
func (c *Connector) OnSessionOpened(ev models.SessionOpenedEvent) {
	if _, _, _, h := c.handlers(); h != nil {
		h.OnSessionOpened(ev.SessionID, ev.Side, ev.Result)
	}
}

// OnSessionClosed forwards a session close.
func (c *Connector) OnSessionClosed(ev models.SessionClosedEvent) {
	if _, _, _, h := c.handlers(); h != nil {
		h.OnSessionClosed(ev.SessionID)
	}
}

// OnSessionData forwards a received pairing message.
func (c *Connector) OnSessionData(ev models.SessionDataEvent) {
	if _, _, _, h := c.handlers(); h != nil {
		h.OnDataReceived(ev.SessionID, ev.Data)
	}
}

// ── Queries ─────────────────────────────────────────────────────────────────

// HaveDeviceInMap reports whether deviceID was discovered recently.
func (c *Connector) HaveDeviceInMap(deviceID string) bool {
	return c.discovered.Contains(deviceID)
}

// DiscoveredDevice returns the cached discovery record of deviceID.
func (c *Connector) DiscoveredDevice(deviceID string) (models.DiscoveredDevice, error) {
	d, ok := c.discovered.Peek(deviceID)
	if !ok {
		return models.DiscoveredDevice{}, fmt.Errorf("%w: device %s not discovered", models.ErrNotFound, deviceID)
	}
	return d, nil
}

// ConnectAddr picks the preferred address of a discovered device.
func (c *Connector) ConnectAddr(deviceID string) (models.ConnectAddr, error) {
	d, err := c.DiscoveredDevice(deviceID)
	if err != nil {
		return models.ConnectAddr{}, err
	}
	return preferredAddr(d.Addrs)
}

func preferredAddr(addrs []models.ConnectAddr) (models.ConnectAddr, error) {
	for _, t := range addrPreference {
		for _, a := range addrs {
			if a.Type == t {
				return a, nil
			}
		}
	}
	return models.ConnectAddr{}, fmt.Errorf("%w: no usable connect address", models.ErrNotFound)
}

// OpenAuthSession opens a pairing session to a discovered device.
func (c *Connector) OpenAuthSession(ctx context.Context, deviceID string) (int64, error) {
	addr, err := c.ConnectAddr(deviceID)
	if err != nil {
		c.log.Err(err).Str("func", "Connector.OpenAuthSession").Str("device_id", deviceID).Msg("no address to reach device")
		return 0, err
	}

	sessionID, err := c.transport.OpenAuthSession(ctx, deviceID, addr)
	if err != nil {
		c.log.Err(err).
			Str("func", "Connector.OpenAuthSession").
			Str("device_id", deviceID).
			Str("addr_type", addr.Type.String()).
			Msg("open auth session failed")
		return 0, fmt.Errorf("%w: open auth session: %w", models.ErrSubsystemCallFailed, err)
	}
	return sessionID, nil
}

// CloseAuthSession closes a pairing session.
func (c *Connector) CloseAuthSession(ctx context.Context, sessionID int64) error {
	if err := c.transport.CloseAuthSession(ctx, sessionID); err != nil {
		return fmt.Errorf("%w: close auth session: %w", models.ErrSubsystemCallFailed, err)
	}
	return nil
}

// SendSessionMessage writes one pairing message to a session.
func (c *Connector) SendSessionMessage(ctx context.Context, sessionID int64, data string) error {
	if err := c.transport.SendSessionMessage(ctx, sessionID, data); err != nil {
		c.log.Err(err).
			Str("func", "Connector.SendSessionMessage").
			Int64("session_id", sessionID).
			Msg("send session message failed")
		return fmt.Errorf("%w: send session message: %w", models.ErrSubsystemCallFailed, err)
	}
	return nil
}

// IsDeviceOnline reports whether networkID is among the trusted online
// nodes.
func (c *Connector) IsDeviceOnline(ctx context.Context, networkID string) bool {
	nodes, err := c.transport.GetTrustedDevices(ctx)
	if err != nil {
		c.log.Err(err).Str("func", "Connector.IsDeviceOnline").Msg("get trusted devices failed")
		return false
	}
	for _, n := range nodes {
		if n.NetworkID == networkID {
			return true
		}
	}
	return false
}

// GetTrustedDeviceList returns the trusted online devices.
func (c *Connector) GetTrustedDeviceList(ctx context.Context) ([]models.DeviceInfo, error) {
	nodes, err := c.transport.GetTrustedDevices(ctx)
	if err != nil {
		c.log.Err(err).Str("func", "Connector.GetTrustedDeviceList").Msg("get trusted devices failed")
		return nil, fmt.Errorf("%w: get trusted devices: %w", models.ErrSubsystemCallFailed, err)
	}

	out := make([]models.DeviceInfo, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, deviceFromNode(n))
	}
	return out, nil
}

// GetLocalDeviceInfo returns this node's identity.
func (c *Connector) GetLocalDeviceInfo(ctx context.Context) (models.LocalDeviceInfo, error) {
	info, err := c.transport.GetLocalDevice(ctx)
	if err != nil {
		c.log.Err(err).Str("func", "Connector.GetLocalDeviceInfo").Msg("get local device failed")
		return models.LocalDeviceInfo{}, fmt.Errorf("%w: get local device: %w", models.ErrSubsystemCallFailed, err)
	}
	return info, nil
}

// GetUdidByNetworkID resolves the stable device id behind networkID.
func (c *Connector) GetUdidByNetworkID(ctx context.Context, networkID string) (string, error) {
	if networkID == "" {
		return "", fmt.Errorf("%w: empty network id", models.ErrInvalidParameter)
	}
	udid, err := c.transport.GetUdidByNetworkID(ctx, networkID)
	if err != nil {
		return "", fmt.Errorf("%w: get udid: %w", models.ErrSubsystemCallFailed, err)
	}
	return udid, nil
}

// GetUuidByNetworkID resolves the uuid behind networkID.
func (c *Connector) GetUuidByNetworkID(ctx context.Context, networkID string) (string, error) {
	if networkID == "" {
		return "", fmt.Errorf("%w: empty network id", models.ErrInvalidParameter)
	}
	uuid, err := c.transport.GetUuidByNetworkID(ctx, networkID)
	if err != nil {
		return "", fmt.Errorf("%w: get uuid: %w", models.ErrSubsystemCallFailed, err)
	}
	return uuid, nil
}

// deviceFromNode uses the network id as device id until presence resolves
// the udid.
func deviceFromNode(n models.NodeBasicInfo) models.DeviceInfo {
	return models.DeviceInfo{
		DeviceID:     n.NetworkID,
		DeviceName:   n.DeviceName,
		DeviceTypeID: n.DeviceTypeID,
		NetworkID:    n.NetworkID,
	}
}
