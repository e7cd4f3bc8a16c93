package app

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"passvault/internal/domain"
	"passvault/internal/network"
	"passvault/internal/services/circumstance"
	configrepo "passvault/internal/services/config"
	"passvault/internal/services/settings"
	"passvault/internal/store"
)

// Wire bundles all stores, services, and repositories for the CLI. Each is
// built once per Wire.
type Wire struct {
	Config *Config
	AppID  domain.AppID

	SettingsDisk domain.SettingsDiskSource
	AuthDisk     domain.AuthDiskSource

	Registry *prometheus.Registry
	Clients  *network.Clients

	Devices   domain.DevicesService
	ConfigAPI domain.ConfigService
	Push      domain.PushService
	Events    domain.EventService

	Settings      domain.SettingsRepository
	ServerConfig  domain.ConfigRepository
	Circumstances domain.SpecialCircumstanceManager

	closers []func()
}

// Options are test hooks for NewWire.
type Options struct {
	// Transport replaces the TLS transport, e.g. an httptest server's.
	Transport http.RoundTripper
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg *Config, opts Options) (*Wire, error) {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	// File-based stores
	settingsDisk := store.NewSettingsFileStore(cfg.Home)
	authDisk := store.NewAuthFileStore(cfg.Home)

	appID, err := authDisk.UniqueAppID()
	if err != nil {
		return nil, fmt.Errorf("app id: %w", err)
	}

	reg := prometheus.NewRegistry()
	metrics, err := network.NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	environment := cfg.Server
	clients, err := network.NewClients(network.ClientsConfig{
		Environment: func() network.Environment { return environment },
		Info:        cfg.ClientInfo(),
		Auth:        authDisk,
		SSL: network.NewSSLManager(network.FileKeyManager{
			CertFile: cfg.TLS.CertFile,
			KeyFile:  cfg.TLS.KeyFile,
		}),
		Metrics:   metrics,
		Timeout:   cfg.HTTP.Timeout,
		Transport: opts.Transport,
	})
	if err != nil {
		return nil, err
	}

	// Network services
	configSvc := network.NewConfigService(clients.UnauthenticatedAPI)

	// Repositories
	settingsRepo := settings.New(settingsDisk, authDisk)

	return &Wire{
		Config:        cfg,
		AppID:         appID,
		SettingsDisk:  settingsDisk,
		AuthDisk:      authDisk,
		Registry:      reg,
		Clients:       clients,
		Devices:       network.NewDevicesService(clients.AuthenticatedAPI, clients.UnauthenticatedAPI),
		ConfigAPI:     configSvc,
		Push:          network.NewPushService(clients.AuthenticatedAPI, appID),
		Events:        network.NewEventService(clients.AuthenticatedEvents),
		Settings:      settingsRepo,
		ServerConfig:  configrepo.New(configSvc, cfg.Cache.ConfigTTL),
		Circumstances: circumstance.New(nil),
		closers:       []func(){settingsRepo.Close},
	}, nil
}

// Close releases background resources held by the repositories.
func (w *Wire) Close() {
	for _, c := range w.closers {
		c()
	}
}
