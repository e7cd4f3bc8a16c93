package network

import (
	"net/http"
	"time"

	"passvault/internal/domain"
)

// DefaultTimeout bounds each request when ClientsConfig.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// ClientsConfig holds what is needed to build the shared clients.
type ClientsConfig struct {
	Environment func() Environment
	Info        ClientInfo
	Auth        domain.AuthDiskSource
	SSL         *SSLManager
	Metrics     *Metrics
	Timeout     time.Duration

	// Transport replaces the default transport; tests use it.
	Transport http.RoundTripper
}

// Clients are the per-audience HTTP clients shared by every service.
type Clients struct {
	UnauthenticatedAPI      *Client
	UnauthenticatedIdentity *Client
	AuthenticatedAPI        *Client
	AuthenticatedEvents     *Client

	Refresher *TokenRefresher
}

// NewClients builds the interceptor chains and clients from cfg.
func NewClients(cfg ClientsConfig) (*Clients, error) {
	transport := cfg.Transport
	if transport == nil {
		tlsConfig, err := cfg.SSL.TLSConfig()
		if err != nil {
			return nil, err
		}
		t := http.DefaultTransport.(*http.Transport).Clone()
		t.TLSClientConfig = tlsConfig
		transport = t
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	apiURL := func() string { return cfg.Environment().APIURL() }
	identityURL := func() string { return cfg.Environment().IdentityURL() }
	eventsURL := func() string { return cfg.Environment().EventsURL() }
	headers := Headers(cfg.Info)

	identity := NewClient("identity", Chain(transport, BaseURL(identityURL), headers), timeout, cfg.Metrics)
	refresher := NewTokenRefresher(NewIdentityService(identity), cfg.Auth)

	authenticated := func(base func() string) http.RoundTripper {
		return Chain(transport,
			BaseURL(base),
			headers,
			RefreshAuthenticator(refresher),
			AuthToken(cfg.Auth),
		)
	}

	return &Clients{
		UnauthenticatedAPI:      NewClient("api", Chain(transport, BaseURL(apiURL), headers), timeout, cfg.Metrics),
		UnauthenticatedIdentity: identity,
		AuthenticatedAPI:        NewClient("api", authenticated(apiURL), timeout, cfg.Metrics),
		AuthenticatedEvents:     NewClient("events", authenticated(eventsURL), timeout, cfg.Metrics),
		Refresher:               refresher,
	}, nil
}
