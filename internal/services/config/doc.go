// Package config keeps the server configuration as observable load state.
//
// Refresh fetches /config through a domain.ConfigService. Concurrent refreshes
// share one request, and a successful response is reused for the cache TTL.
// Failures keep the last known configuration attached to the error state.
package config
