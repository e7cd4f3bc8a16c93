package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passvault/internal/network"
)

func TestLoadConfigDefaults(t *testing.T) {
	home := t.TempDir()
	cfg, err := LoadConfig(home)
	require.NoError(t, err)

	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.Server.Base)
	assert.Equal(t, "http://127.0.0.1:8080/api", cfg.Server.APIURL())
	assert.Equal(t, network.DefaultDeviceType, cfg.Client.DeviceType)
	assert.Equal(t, network.DefaultTimeout, cfg.HTTP.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Cache.ConfigTTL)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfigFile(t *testing.T) {
	home := t.TempDir()
	yml := `
server:
  base_url: https://vault.example.test
  events_url: https://events.example.test
client:
  version: 2025.1.0
http:
  timeout: 10s
cache:
  config_ttl: 1m
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(home, ConfigFilename), []byte(yml), 0o600))

	cfg, err := LoadConfig(home)
	require.NoError(t, err)
	assert.Equal(t, "https://vault.example.test/identity", cfg.Server.IdentityURL())
	assert.Equal(t, "https://events.example.test", cfg.Server.EventsURL())
	assert.Equal(t, "2025.1.0", cfg.ClientInfo().Version)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, time.Minute, cfg.Cache.ConfigTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "2025.1.0", cfg.Log.Version)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, ConfigFilename),
		[]byte("server:\n  base_url: https://file.example.test\n"), 0o600))
	t.Setenv("PASSVAULT_BASE_URL", "https://env.example.test")
	t.Setenv("PASSVAULT_DEVICE_TYPE", "9")

	cfg, err := LoadConfig(home)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.test", cfg.Server.Base)
	assert.Equal(t, "9", cfg.Client.DeviceType)
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(home, ConfigFilename), []byte("server: [\n"), 0o600))

	_, err := LoadConfig(home)
	require.Error(t, err)
}
