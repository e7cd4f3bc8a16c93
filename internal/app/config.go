package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"passvault/internal/network"
	"passvault/internal/observability/logger"
)

const (
	// EnvPrefix prefixes every environment override, e.g. PASSVAULT_BASE_URL.
	EnvPrefix = "PASSVAULT_"
	// ConfigFilename is read from the home directory when present.
	ConfigFilename = "config.yaml"

	defaultBaseURL = "http://127.0.0.1:8080"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home string `yaml:"-" env:"HOME"` // config directory, e.g. $HOME/.passvault

	Server network.Environment `yaml:"server"`

	Client struct {
		Version    string `yaml:"version" env:"CLIENT_VERSION"`
		BuildType  string `yaml:"build_type" env:"BUILD_TYPE"`
		Flavor     string `yaml:"flavor" env:"FLAVOR"`
		DeviceType string `yaml:"device_type" env:"DEVICE_TYPE"`
	} `yaml:"client"`

	TLS struct {
		CertFile string `yaml:"cert_file" env:"TLS_CERT_FILE"`
		KeyFile  string `yaml:"key_file" env:"TLS_KEY_FILE"`
	} `yaml:"tls"`

	HTTP struct {
		Timeout time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT"`
	} `yaml:"http"`

	Cache struct {
		ConfigTTL time.Duration `yaml:"config_ttl" env:"CONFIG_TTL"`
	} `yaml:"cache"`

	Log logger.Config `yaml:"log"`
}

// DefaultHome returns ~/.passvault.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".passvault"), nil
}

// LoadConfig reads home/config.yaml if it exists, applies PASSVAULT_*
// environment overrides and fills defaults. An empty home uses DefaultHome
// unless PASSVAULT_HOME is set.
func LoadConfig(home string) (*Config, error) {
	var c Config
	if home == "" {
		home = os.Getenv(EnvPrefix + "HOME")
	}
	if home == "" {
		h, err := DefaultHome()
		if err != nil {
			return nil, err
		}
		home = h
	}

	b, err := os.ReadFile(filepath.Join(home, ConfigFilename))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", ConfigFilename, err)
		}
	}

	if err := env.ParseWithOptions(&c, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	c.Home = home

	// sane defaults
	if c.Server.Base == "" {
		c.Server.Base = defaultBaseURL
	}
	if c.Client.Version == "" {
		c.Client.Version = "dev"
	}
	if c.Client.BuildType == "" {
		c.Client.BuildType = "release"
	}
	if c.Client.Flavor == "" {
		c.Client.Flavor = "standard"
	}
	if c.Client.DeviceType == "" {
		c.Client.DeviceType = network.DefaultDeviceType
	}
	if c.HTTP.Timeout <= 0 {
		c.HTTP.Timeout = network.DefaultTimeout
	}
	if c.Cache.ConfigTTL <= 0 {
		c.Cache.ConfigTTL = 5 * time.Minute
	}
	if c.Log.Env == "" {
		c.Log.Env = "prod"
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Version == "" {
		c.Log.Version = c.Client.Version
	}
	return &c, nil
}

// ClientInfo returns the identification sent with every request.
func (c *Config) ClientInfo() network.ClientInfo {
	return network.ClientInfo{
		Version:    c.Client.Version,
		BuildType:  c.Client.BuildType,
		Flavor:     c.Client.Flavor,
		DeviceType: c.Client.DeviceType,
	}
}
