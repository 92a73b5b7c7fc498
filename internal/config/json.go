package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON names and
// string durations.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
	} `json:"server,omitempty"`

	Adapter struct {
		BusAddress     string   `json:"bus_address"`
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`

	Presence struct {
		OfflineTimeout Duration `json:"offline_timeout"`
		QueueWake      Duration `json:"queue_wake"`
	} `json:"presence,omitempty"`

	Discovery struct {
		Timeout        Duration `json:"timeout"`
		PublishTimeout Duration `json:"publish_timeout"`
	} `json:"discovery,omitempty"`

	TrustGroup struct {
		WaitBudget     Duration `json:"wait_budget"`
		GroupOwner     string   `json:"owner"`
		SessionTimeout Duration `json:"session_timeout"`
		SinkOwner      string   `json:"sink_owner"`
	} `json:"trust_group,omitempty"`

	Decision struct {
		Strategy  string `json:"strategy"`
		RulesPath string `json:"rules_path"`
	} `json:"decision,omitempty"`

	Crypto struct {
		DeviceSecret   string `json:"device_secret"`
		RootSecret     string `json:"root_secret"`
		SealPassphrase string `json:"seal_passphrase"`
		SealSalt       string `json:"seal_salt"`
	} `json:"crypto,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  j.App.Version,
			LogLevel: j.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: j.Storage.DB.Driver,
				DSN:    j.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			GRPCAddress:    j.Server.GRPCAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
			RateLimit:      j.Server.RateLimit,
			RateBurst:      j.Server.RateBurst,
		},
		Adapter: Adapter{
			BusAddress:     j.Adapter.BusAddress,
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		Workers: Workers{
			ShutdownTimeout: time.Duration(j.Workers.ShutdownTimeout),
			RefreshInterval: time.Duration(j.Workers.RefreshInterval),
		},
		Presence: Presence{
			OfflineTimeout: time.Duration(j.Presence.OfflineTimeout),
			QueueWake:      time.Duration(j.Presence.QueueWake),
		},
		Discovery: Discovery{
			Timeout:        time.Duration(j.Discovery.Timeout),
			PublishTimeout: time.Duration(j.Discovery.PublishTimeout),
		},
		TrustGroup: TrustGroup{
			WaitBudget:     time.Duration(j.TrustGroup.WaitBudget),
			GroupOwner:     j.TrustGroup.GroupOwner,
			SessionTimeout: time.Duration(j.TrustGroup.SessionTimeout),
			SinkOwner:      j.TrustGroup.SinkOwner,
		},
		Decision: Decision{
			Strategy:  j.Decision.Strategy,
			RulesPath: j.Decision.RulesPath,
		},
		Crypto: Crypto{
			DeviceSecret:   j.Crypto.DeviceSecret,
			RootSecret:     j.Crypto.RootSecret,
			SealPassphrase: j.Crypto.SealPassphrase,
			SealSalt:       j.Crypto.SealSalt,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
