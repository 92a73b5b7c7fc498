package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {"version": "2.0.0", "log_level": "warn"},
		"server": {
			"http_address": "localhost:8080",
			"grpc_address": "localhost:9090",
			"request_timeout": "30s",
			"rate_limit": 10,
			"rate_burst": 20
		},
		"adapter": {"bus_address": "http://bus:7070", "request_timeout": "3s"},
		"storage": {"db": {"driver": "sqlite", "dsn": "/var/lib/keeper.db"}},
		"presence": {"offline_timeout": "5m", "queue_wake": "500ms"},
		"discovery": {"timeout": "1m", "publish_timeout": "90s"},
		"trust_group": {"wait_budget": "3s", "owner": "keeper", "session_timeout": "45s", "sink_owner": "console"},
		"decision": {"strategy": "attribute"},
		"crypto": {"device_secret": "d", "root_secret": "r", "seal_passphrase": "p", "seal_salt": "00112233445566778899aabbccddeeff"}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 20, cfg.Server.RateBurst)
	assert.Equal(t, "http://bus:7070", cfg.Adapter.BusAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/var/lib/keeper.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Presence.OfflineTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Presence.QueueWake)
	assert.Equal(t, time.Minute, cfg.Discovery.Timeout)
	assert.Equal(t, 90*time.Second, cfg.Discovery.PublishTimeout)
	assert.Equal(t, "keeper", cfg.TrustGroup.GroupOwner)
	assert.Equal(t, "console", cfg.TrustGroup.SinkOwner)
	assert.Equal(t, 45*time.Second, cfg.TrustGroup.SessionTimeout)
	assert.Equal(t, "attribute", cfg.Decision.Strategy)
	assert.Equal(t, "00112233445566778899aabbccddeeff", cfg.Crypto.SealSalt)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": `), 0o600))

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"presence": {"offline_timeout": "later"}}`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestDuration_NumericNanoseconds(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, time.Second, time.Duration(d))

	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"1s"`, string(b))
}
