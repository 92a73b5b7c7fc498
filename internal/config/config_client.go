package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// OwnerID is the owner name the client uses on the service API.
	OwnerID string
	// LogLevel is the client log level.
	LogLevel string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the service API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the trusted device list is reloaded.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Workers ClientWorkers
}

// DefaultClientOwner is the owner id of the terminal client unless
// DEVICE_KEEPER_OWNER is set.
const DefaultClientOwner = "device-keeper-console"

// GetClientConfig builds and validates a client-specific config view.
// Server-only groups are not validated.
func GetClientConfig() (*ClientConfig, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON()
	if b.err != nil {
		return nil, fmt.Errorf("error get structured config: %w", b.err)
	}

	cfg := new(StructuredConfig)
	for _, c := range append(b.configs, defaultConfig()) {
		if err := mergeInto(cfg, c); err != nil {
			return nil, fmt.Errorf("error get structured config: %w", err)
		}
	}

	owner := os.Getenv("DEVICE_KEEPER_OWNER")
	if owner == "" {
		owner = DefaultClientOwner
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			OwnerID:  owner,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	return clientCfg, clientCfg.validate()
}
