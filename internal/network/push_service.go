package network

import (
	"context"
	"net/url"

	"passvault/internal/domain"
)

// PushService registers this installation's push token.
type PushService struct {
	api   *Client
	appID domain.AppID
}

// NewPushService returns a PushService for appID.
func NewPushService(api *Client, appID domain.AppID) *PushService {
	return &PushService{api: api, appID: appID}
}

// PutDeviceToken associates pushToken with this installation.
func (s *PushService) PutDeviceToken(ctx context.Context, pushToken string) error {
	path := "/devices/identifier/" + url.PathEscape(s.appID.String()) + "/token"
	return s.api.putJSON(ctx, path, domain.PushTokenRequest{PushToken: pushToken}, nil)
}

var _ domain.PushService = (*PushService)(nil)
