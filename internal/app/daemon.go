// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the device keeper daemon from its configuration:
// the registry storage, the device bus connector, the trust-group connector,
// the presence, discovery, pairing and credential managers, and the
// transports in front of them.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-device-keeper/internal/adapter"
	"github.com/MKhiriev/go-device-keeper/internal/bus"
	"github.com/MKhiriev/go-device-keeper/internal/config"
	"github.com/MKhiriev/go-device-keeper/internal/credential"
	"github.com/MKhiriev/go-device-keeper/internal/crypto"
	"github.com/MKhiriev/go-device-keeper/internal/decision"
	"github.com/MKhiriev/go-device-keeper/internal/discovery"
	"github.com/MKhiriev/go-device-keeper/internal/handler"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/internal/pairing"
	"github.com/MKhiriev/go-device-keeper/internal/presence"
	"github.com/MKhiriev/go-device-keeper/internal/server"
	"github.com/MKhiriev/go-device-keeper/internal/service"
	"github.com/MKhiriev/go-device-keeper/internal/store"
	"github.com/MKhiriev/go-device-keeper/internal/trustgroup"
	"github.com/MKhiriev/go-device-keeper/internal/workers"
	"github.com/MKhiriev/go-device-keeper/models"
)

const (
	healthProbeInterval = 10 * time.Second
	healthProbeTimeout  = 3 * time.Second
)

// Daemon is the assembled device keeper.
type Daemon struct {
	storages *store.Storages
	groups   *adapter.LocalGroupManager
	hub      *service.EventHub
	presence *presence.Manager
	workers  *workers.Workers

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewDaemon wires every component. The bus daemon must be reachable: the
// local device identity is read from it once at startup.
func NewDaemon(ctx context.Context, cfg *config.StructuredConfig, build models.AppBuildInfo, log *logger.Logger) (*Daemon, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	d := &Daemon{
		storages:        storages,
		shutdownTimeout: cfg.Workers.ShutdownTimeout,
		logger:          log,
	}
	if err = d.wire(ctx, cfg, build); err != nil {
		_ = storages.Close()
		return nil, err
	}
	return d, nil
}

func (d *Daemon) wire(ctx context.Context, cfg *config.StructuredConfig, build models.AppBuildInfo) error {
	log := d.logger

	transport, err := adapter.NewHTTPBusTransport(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create bus transport: %w", err)
	}
	connector, err := bus.NewConnector(transport, log)
	if err != nil {
		return fmt.Errorf("create bus connector: %w", err)
	}

	local, err := connector.GetLocalDeviceInfo(ctx)
	if err != nil {
		return fmt.Errorf("read local device: %w", err)
	}
	log.Info().Str("udid", local.UDID).Str("network_id", local.NetworkID).Msg("local device resolved")

	salt, err := cfg.Crypto.Salt()
	if err != nil {
		return fmt.Errorf("seal salt: %w", err)
	}
	keys, err := crypto.NewKeyChain(cfg.Crypto.SealPassphrase, salt)
	if err != nil {
		return fmt.Errorf("create keychain: %w", err)
	}
	attestor, err := crypto.NewJWTAttestor(cfg.Crypto.DeviceSecret, cfg.Crypto.RootSecret, local.UDID)
	if err != nil {
		return fmt.Errorf("create attestor: %w", err)
	}

	owner := cfg.TrustGroup.GroupOwner
	if owner == "" {
		owner = trustgroup.DefaultGroupOwner
	}
	d.groups = adapter.NewLocalGroupManager(d.storages, keys, attestor, owner, local.UDID, log)
	groups := trustgroup.NewConnector(d.groups, log,
		trustgroup.WithWaitBudget(cfg.TrustGroup.WaitBudget),
		trustgroup.WithGroupOwner(owner),
		trustgroup.WithLocalDeviceID(local.UDID),
	)

	presenceOpts := []presence.Option{
		presence.WithOfflineTimeout(cfg.Presence.OfflineTimeout),
		presence.WithQueueWake(cfg.Presence.QueueWake),
	}
	if cfg.Decision.Strategy != "" {
		filter, filterErr := decisionFilter(cfg.Decision, log)
		if filterErr != nil {
			return filterErr
		}
		presenceOpts = append(presenceOpts, presence.WithDecisionFilter(filter))
	}

	d.hub = service.NewEventHub(service.DefaultEventBuffer, log)
	d.presence = presence.NewManager(connector, groups, d.hub, log, presenceOpts...)
	discoveries := discovery.NewDiscoveryManager(connector.Transport(), d.hub, cfg.Discovery.Timeout, log)
	publishes := discovery.NewPublishManager(connector.Transport(), d.hub, cfg.Discovery.PublishTimeout, log)
	pairings := pairing.NewManager(connector, groups, local, log,
		pairing.WithSessionTimeout(cfg.TrustGroup.SessionTimeout),
		pairing.WithSinkOwner(cfg.TrustGroup.SinkOwner),
	)
	credentials := credential.NewManager(groups, log)

	pairings.RegisterListener(d.hub)
	credentials.SetListener(d.hub)
	groups.RegisterPairingObserver(pairings)
	groups.RegisterResultListener(credentials)

	connector.SetStateHandler(d.presence)
	connector.SetDiscoveryHandler(discoveries)
	connector.SetPublishHandler(publishes)
	connector.SetSessionHandler(pairings)

	services := service.NewServices(service.Components{
		Discovery:   discoveries,
		Publish:     publishes,
		Auth:        pairings,
		States:      d.presence,
		Credentials: credentials,
		Devices:     connector,
	}, d.hub, log)

	version := cfg.App.Version
	if version == "" {
		version = build.BuildVersion()
	}
	handlers, err := handler.NewHandlers(services, connector, cfg.Server, version, log)
	if err != nil {
		return fmt.Errorf("create handlers: %w", err)
	}
	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	d.workers = workers.New(
		workers.Func(srv.RunServer),
		workers.Func(d.runPresence),
	)
	if handlers.GRPC != nil {
		probe := handlers.GRPC
		d.workers.Add(workers.NewPeriodic("health-probe", healthProbeInterval, true, func(ctx context.Context) error {
			probe.Probe(ctx, healthProbeTimeout)
			return nil
		}, log))
	}
	return nil
}

func decisionFilter(cfg config.Decision, log *logger.Logger) (decision.Filter, error) {
	rules, err := config.LoadDecisionRules(cfg.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("load decision rules: %w", err)
	}
	registry, err := decision.NewDefaultRegistry(rules, log)
	if err != nil {
		return nil, fmt.Errorf("create decision registry: %w", err)
	}
	filter, err := registry.Get(cfg.Strategy)
	if err != nil {
		return nil, fmt.Errorf("decision strategy: %w", err)
	}
	return filter, nil
}

func (d *Daemon) runPresence(ctx context.Context) error {
	d.presence.Start(ctx)
	<-ctx.Done()
	d.presence.Stop()
	return nil
}

// Run serves until ctx is done or a worker fails.
func (d *Daemon) Run(ctx context.Context) error {
	d.logger.Info().Msg("device keeper started")
	err := d.workers.Run(ctx)
	d.logger.Info().Msg("device keeper stopped")
	return err
}

// Close waits for in-flight group operations up to the shutdown timeout,
// then releases the presence timers, the event streams and the storage.
func (d *Daemon) Close() {
	if d.groups != nil {
		done := make(chan struct{})
		go func() {
			d.groups.Wait()
			close(done)
		}()

		timeout := d.shutdownTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		select {
		case <-done:
		case <-time.After(timeout):
			d.logger.Warn().Str("func", "*Daemon.Close").Msg("group operations still running at shutdown")
		}
	}
	if d.presence != nil {
		d.presence.Close()
	}
	if d.hub != nil {
		d.hub.Close()
	}
	if err := d.storages.Close(); err != nil {
		d.logger.Err(err).Str("func", "*Daemon.Close").Msg("close storage")
	}
}
