package network

import "strings"

// Environment holds the server URLs. API, Identity and Events override the
// defaults derived from Base, following the self-hosted layout
// <base>/api, <base>/identity and <base>/events.
type Environment struct {
	Base     string `yaml:"base_url" env:"BASE_URL"`
	API      string `yaml:"api_url" env:"API_URL"`
	Identity string `yaml:"identity_url" env:"IDENTITY_URL"`
	Events   string `yaml:"events_url" env:"EVENTS_URL"`
}

// APIURL returns the API base URL.
func (e Environment) APIURL() string { return e.resolve(e.API, "/api") }

// IdentityURL returns the identity server base URL.
func (e Environment) IdentityURL() string { return e.resolve(e.Identity, "/identity") }

// EventsURL returns the events server base URL.
func (e Environment) EventsURL() string { return e.resolve(e.Events, "/events") }

func (e Environment) resolve(override, suffix string) string {
	if override != "" {
		return strings.TrimRight(override, "/")
	}
	return strings.TrimRight(e.Base, "/") + suffix
}
