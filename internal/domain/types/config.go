package types

// ServerConfig is the server's advertised configuration.
type ServerConfig struct {
	Version      string             `json:"version"`
	GitHash      string             `json:"gitHash"`
	Server       *ThirdPartyServer  `json:"server,omitempty"`
	Environment  *ServerEnvironment `json:"environment,omitempty"`
	FeatureFlags map[string]any     `json:"featureStates,omitempty"`
}

// ThirdPartyServer is set when the server is not the vendor's cloud.
type ThirdPartyServer struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ServerEnvironment lists the URLs the server reports for itself.
type ServerEnvironment struct {
	CloudRegion   string `json:"cloudRegion,omitempty"`
	Vault         string `json:"vault,omitempty"`
	API           string `json:"api,omitempty"`
	Identity      string `json:"identity,omitempty"`
	Notifications string `json:"notifications,omitempty"`
	SSO           string `json:"sso,omitempty"`
}

// FeatureFlag reports whether the boolean flag name is enabled.
func (c ServerConfig) FeatureFlag(name string) bool {
	v, ok := c.FeatureFlags[name].(bool)
	return ok && v
}
