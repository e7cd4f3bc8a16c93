// Package network is passvault's HTTP layer: the interceptor chain, the
// per-audience clients built from it, and thin service wrappers over the
// server's JSON endpoints.
//
// Every request passes through, outermost first:
//   - base URL: resolves the relative request path against the environment
//   - headers: user agent and client identification headers
//   - refresh: on 401, refreshes the access token once and retries
//   - auth token: attaches the bearer token (authenticated clients only)
//
// Transport failures are reported as ErrNoNetwork, non-2xx statuses as
// *HTTPError. ToDataState folds either into a datastate.DataState. All calls
// accept a context for cancellation and deadlines.
package network
