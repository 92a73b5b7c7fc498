// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/hex"
	"fmt"
)

// minSaltBytes matches the sealing key derivation's minimum salt size.
const minSaltBytes = 16

// validate checks that the final merged [StructuredConfig] satisfies all
// daemon invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and request timeout are required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RateLimit <= 0 || cfg.Server.RateBurst <= 0 {
		return fmt.Errorf("%w: rate limit and burst must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.BusAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: bus address and request timeout are required", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.ShutdownTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	switch cfg.Decision.Strategy {
	case "", "attribute":
	case "cel":
		if cfg.Decision.RulesPath == "" {
			return fmt.Errorf("%w: cel strategy needs a rules file", ErrInvalidDecisionConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidDecisionConfigs, cfg.Decision.Strategy)
	}

	if cfg.Crypto.DeviceSecret == "" || cfg.Crypto.RootSecret == "" || cfg.Crypto.SealPassphrase == "" {
		return fmt.Errorf("%w: device, root and seal secrets are required", ErrInvalidCryptoConfigs)
	}
	if _, err := cfg.Crypto.Salt(); err != nil {
		return err
	}

	return nil
}

// Salt decodes the hex sealing salt.
func (c Crypto) Salt() ([]byte, error) {
	salt, err := hex.DecodeString(c.SealSalt)
	if err != nil {
		return nil, fmt.Errorf("%w: seal salt is not hex: %w", ErrInvalidCryptoConfigs, err)
	}
	if len(salt) < minSaltBytes {
		return nil, fmt.Errorf("%w: seal salt must be at least %d bytes", ErrInvalidCryptoConfigs, minSaltBytes)
	}
	return salt, nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.OwnerID == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
