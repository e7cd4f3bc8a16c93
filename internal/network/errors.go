package network

import (
	"errors"
	"fmt"
	"net/http"

	"passvault/internal/datastate"
)

// ErrNoNetwork wraps transport failures: DNS, refused connections, TLS
// handshakes, timeouts.
var ErrNoNetwork = errors.New("no network")

// HTTPError is returned for non-2xx responses.
type HTTPError struct {
	Method string
	URL    string
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.URL, e.Status, http.StatusText(e.Status), e.Body)
}

// IsStatus reports whether err is an *HTTPError with the given status.
func IsStatus(err error, status int) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.Status == status
}

// ToDataState folds the outcome of a call into a load state. cached is the
// last known value, kept on failure; it may be nil.
func ToDataState[T any](data T, err error, cached *T) datastate.DataState[T] {
	switch {
	case err == nil:
		return datastate.Loaded(data)
	case errors.Is(err, ErrNoNetwork):
		return datastate.NoNetwork(cached)
	default:
		return datastate.Error(err, cached)
	}
}
