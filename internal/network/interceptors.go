package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"passvault/internal/observability/logger"
)

// Interceptor wraps a RoundTripper.
type Interceptor func(next http.RoundTripper) http.RoundTripper

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

// Chain wraps rt so that the first interceptor sees the request first.
func Chain(rt http.RoundTripper, interceptors ...Interceptor) http.RoundTripper {
	for i := len(interceptors) - 1; i >= 0; i-- {
		rt = interceptors[i](rt)
	}
	return rt
}

// BaseURL resolves relative request URLs against the URL returned by base.
// base is consulted per request so environment changes apply immediately.
func BaseURL(base func() string) Interceptor {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.URL.Host != "" {
				return next.RoundTrip(req)
			}
			u, err := url.Parse(strings.TrimRight(base(), "/"))
			if err != nil {
				return nil, fmt.Errorf("invalid base url: %w", err)
			}
			req = req.Clone(req.Context())
			req.URL.Scheme = u.Scheme
			req.URL.Host = u.Host
			req.URL.Path = u.Path + req.URL.Path
			if req.URL.RawPath != "" {
				req.URL.RawPath = u.EscapedPath() + req.URL.RawPath
			}
			req.Host = ""
			return next.RoundTrip(req)
		})
	}
}

// TokenSource supplies the current access token; "" means logged out.
type TokenSource interface {
	AccessToken() string
}

// AuthToken attaches the bearer token from tokens when one is present.
func AuthToken(tokens TokenSource) Interceptor {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			token := tokens.AccessToken()
			if token == "" {
				return next.RoundTrip(req)
			}
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+token)
			return next.RoundTrip(req)
		})
	}
}

// Refresher obtains a new access token.
type Refresher interface {
	Refresh(ctx context.Context) (string, error)
}

// RefreshAuthenticator retries a request once after a 401, having asked
// refresher for a new token. If the refresh fails the original 401 response
// is returned. It must sit outside AuthToken so the retry picks up the new
// token.
func RefreshAuthenticator(refresher Refresher) Interceptor {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			resp, err := next.RoundTrip(req)
			if err != nil || resp.StatusCode != http.StatusUnauthorized {
				return resp, err
			}
			if req.Body != nil && req.GetBody == nil {
				return resp, nil
			}

			log := logger.From(req.Context())
			if _, rerr := refresher.Refresh(req.Context()); rerr != nil {
				log.Warn("token refresh failed", logger.Op("refresh"), logger.Err(rerr))
				return resp, nil
			}

			retry := req.Clone(req.Context())
			if req.GetBody != nil {
				body, berr := req.GetBody()
				if berr != nil {
					return resp, nil
				}
				retry.Body = body
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			log.Debug("retrying after token refresh", logger.URL(req.URL.Redacted()))
			return next.RoundTrip(retry)
		})
	}
}
