package network

import (
	"context"
	"errors"
	"net/url"
	"time"

	"golang.org/x/sync/singleflight"

	"passvault/internal/domain"
	"passvault/internal/observability/logger"
)

// refreshTimeout bounds a shared token refresh.
const refreshTimeout = 30 * time.Second

// identityClientID is the OAuth client id this client family logs in as.
const identityClientID = "cli"

// ErrNoRefreshToken is returned when a refresh is needed but no account is
// logged in.
var ErrNoRefreshToken = errors.New("no refresh token")

// IdentityService talks to the identity server's token endpoint.
type IdentityService struct {
	identity *Client
}

// NewIdentityService returns an IdentityService over the identity client.
func NewIdentityService(identity *Client) *IdentityService {
	return &IdentityService{identity: identity}
}

// RefreshAccessToken exchanges refreshToken for a new token pair.
func (s *IdentityService) RefreshAccessToken(ctx context.Context, refreshToken string) (domain.TokenResponse, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"client_id":     {identityClientID},
		"refresh_token": {refreshToken},
	}
	var out domain.TokenResponse
	if err := s.identity.postForm(ctx, "/connect/token", form, &out); err != nil {
		return domain.TokenResponse{}, err
	}
	return out, nil
}

var _ domain.IdentityService = (*IdentityService)(nil)

// TokenRefresher refreshes and persists the access token. Concurrent callers
// share a single refresh.
type TokenRefresher struct {
	identity domain.IdentityService
	auth     domain.AuthDiskSource
	sf       singleflight.Group
}

// NewTokenRefresher returns a TokenRefresher.
func NewTokenRefresher(identity domain.IdentityService, auth domain.AuthDiskSource) *TokenRefresher {
	return &TokenRefresher{identity: identity, auth: auth}
}

// Refresh implements Refresher. The shared refresh is detached from the
// calling request's cancellation and bounded by refreshTimeout, so one
// abandoned request does not fail the others waiting on it.
func (r *TokenRefresher) Refresh(ctx context.Context) (string, error) {
	ch := r.sf.DoChan("refresh", func() (any, error) {
		return r.refresh(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (r *TokenRefresher) refresh(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	refreshToken := r.auth.RefreshToken()
	if refreshToken == "" {
		return "", ErrNoRefreshToken
	}
	tokens, err := r.identity.RefreshAccessToken(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	if tokens.RefreshToken == "" {
		tokens.RefreshToken = refreshToken
	}
	if err := r.auth.StoreTokens(tokens.AccessToken, tokens.RefreshToken); err != nil {
		return "", err
	}
	logger.From(ctx).Info("access token refreshed", logger.Component("identity"))
	return tokens.AccessToken, nil
}

var _ Refresher = (*TokenRefresher)(nil)
