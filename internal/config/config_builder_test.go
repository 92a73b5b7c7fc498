package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validConfig returns defaults plus the secrets validate requires.
func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Crypto = Crypto{
		DeviceSecret:   "device-secret",
		RootSecret:     "root-secret",
		SealPassphrase: "passphrase",
		SealSalt:       "00112233445566778899aabbccddeeff",
	}
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig without validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier
// source is not overwritten by later ones and that zero fields are filled.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:1000"}},
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:2000"}, App: App{Version: "1.0.0"}},
		validConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:1000", cfg.Server.HTTPAddress)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestBuild_ValidatesResult(t *testing.T) {
	b := newConfigBuilder().withDefaults()

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidCryptoConfigs)
}

// ── withEnv / withFlags / withJSON ────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_VERSION": "9.9.9"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "9.9.9", b.configs[0].App.Version)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "3.0.0"},
	})
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "3.0.0", b.configs[1].App.Version)
}

// TestWithJSON_UsesFirstPath verifies that the path of the earliest source
// is used, matching the merge priority.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first", b.configs[2].App.Version)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})

	b.withJSON()
	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "postgres", mutate: func(c *StructuredConfig) {
			c.Storage.DB = DB{Driver: DriverPostgres, DSN: "postgres://localhost/keeper"}
		}},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "zero rate", mutate: func(c *StructuredConfig) { c.Server.RateLimit = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "no bus", mutate: func(c *StructuredConfig) { c.Adapter.BusAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no shutdown timeout", mutate: func(c *StructuredConfig) { c.Workers.ShutdownTimeout = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "cel without rules", mutate: func(c *StructuredConfig) { c.Decision.Strategy = "cel" }, wantErr: ErrInvalidDecisionConfigs},
		{name: "cel with rules", mutate: func(c *StructuredConfig) {
			c.Decision = Decision{Strategy: "cel", RulesPath: "rules.yaml"}
		}},
		{name: "unknown strategy", mutate: func(c *StructuredConfig) { c.Decision.Strategy = "random" }, wantErr: ErrInvalidDecisionConfigs},
		{name: "no root secret", mutate: func(c *StructuredConfig) { c.Crypto.RootSecret = "" }, wantErr: ErrInvalidCryptoConfigs},
		{name: "short salt", mutate: func(c *StructuredConfig) { c.Crypto.SealSalt = "0011" }, wantErr: ErrInvalidCryptoConfigs},
		{name: "salt not hex", mutate: func(c *StructuredConfig) { c.Crypto.SealSalt = "zz112233445566778899aabbccddeeff" }, wantErr: ErrInvalidCryptoConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfigValidate(t *testing.T) {
	cfg := &ClientConfig{
		App:     ClientApp{OwnerID: DefaultClientOwner},
		Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: time.Second},
		Workers: ClientWorkers{RefreshInterval: time.Second},
	}
	require.NoError(t, cfg.validate())

	cfg.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg.Adapter.HTTPAddress = "http://localhost:8080"
	cfg.Workers.RefreshInterval = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}
