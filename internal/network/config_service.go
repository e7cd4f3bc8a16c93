package network

import (
	"context"

	"passvault/internal/domain"
)

// ConfigService fetches the server configuration.
type ConfigService struct {
	api *Client
}

// NewConfigService returns a ConfigService over the unauthenticated API.
func NewConfigService(api *Client) *ConfigService { return &ConfigService{api: api} }

// GetConfig returns the server configuration.
func (s *ConfigService) GetConfig(ctx context.Context) (domain.ServerConfig, error) {
	var out domain.ServerConfig
	if err := s.api.getJSON(ctx, "/config", nil, &out); err != nil {
		return domain.ServerConfig{}, err
	}
	return out, nil
}

var _ domain.ConfigService = (*ConfigService)(nil)
