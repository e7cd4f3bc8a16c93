package network

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordTransport answers every request with the next queued status and keeps
// a copy of what it was sent.
type recordTransport struct {
	statuses []int
	seen     []*http.Request
	bodies   []string
}

func (t *recordTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.seen = append(t.seen, req)
	body := ""
	if req.Body != nil {
		b, _ := io.ReadAll(req.Body)
		body = string(b)
	}
	t.bodies = append(t.bodies, body)

	status := http.StatusOK
	if len(t.statuses) > 0 {
		status, t.statuses = t.statuses[0], t.statuses[1:]
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader("")),
		Header:     http.Header{},
		Request:    req,
	}, nil
}

type staticTokens string

func (s staticTokens) AccessToken() string { return string(s) }

type mutableTokens struct{ token string }

func (m *mutableTokens) AccessToken() string { return m.token }

type fakeRefresher struct {
	tokens *mutableTokens
	next   string
	err    error
	calls  int
}

func (f *fakeRefresher) Refresh(context.Context) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	f.tokens.token = f.next
	return f.next, nil
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) Interceptor {
		return func(next http.RoundTripper) http.RoundTripper {
			return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
				order = append(order, name)
				return next.RoundTrip(req)
			})
		}
	}
	rt := Chain(&recordTransport{}, mark("a"), mark("b"), mark("c"))

	req, err := http.NewRequest(http.MethodGet, "https://example.test/x", nil)
	require.NoError(t, err)
	_, err = rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestBaseURLResolvesRelativePaths(t *testing.T) {
	tr := &recordTransport{}
	rt := Chain(tr, BaseURL(func() string { return "https://vault.example.test/api/" }))

	req, err := http.NewRequest(http.MethodGet, "/devices/knowndevice", nil)
	require.NoError(t, err)
	_, err = rt.RoundTrip(req)
	require.NoError(t, err)

	require.Len(t, tr.seen, 1)
	assert.Equal(t, "https://vault.example.test/api/devices/knowndevice", tr.seen[0].URL.String())
	assert.Equal(t, "/devices/knowndevice", req.URL.Path, "caller's request must not be modified")
}

func TestBaseURLLeavesAbsoluteURLs(t *testing.T) {
	tr := &recordTransport{}
	rt := Chain(tr, BaseURL(func() string { return "https://other.test" }))

	req, err := http.NewRequest(http.MethodGet, "https://vault.example.test/config", nil)
	require.NoError(t, err)
	_, err = rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, "vault.example.test", tr.seen[0].URL.Host)
}

func TestBaseURLFollowsEnvironmentChanges(t *testing.T) {
	tr := &recordTransport{}
	base := "https://one.test"
	rt := Chain(tr, BaseURL(func() string { return base }))

	for _, want := range []string{"one.test", "two.test"} {
		base = "https://" + want
		req, err := http.NewRequest(http.MethodGet, "/config", nil)
		require.NoError(t, err)
		_, err = rt.RoundTrip(req)
		require.NoError(t, err)
		assert.Equal(t, want, tr.seen[len(tr.seen)-1].URL.Host)
	}
}

func TestAuthToken(t *testing.T) {
	tr := &recordTransport{}

	req, err := http.NewRequest(http.MethodGet, "https://vault.example.test/x", nil)
	require.NoError(t, err)

	_, err = Chain(tr, AuthToken(staticTokens("abc"))).RoundTrip(req)
	require.NoError(t, err)
	_, err = Chain(tr, AuthToken(staticTokens(""))).RoundTrip(req)
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc", tr.seen[0].Header.Get("Authorization"))
	assert.Empty(t, tr.seen[1].Header.Get("Authorization"))
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestHeaders(t *testing.T) {
	tr := &recordTransport{}
	info := ClientInfo{Version: "1.2.3", BuildType: "release", Flavor: "standard"}

	req, err := http.NewRequest(http.MethodGet, "https://vault.example.test/x", nil)
	require.NoError(t, err)
	_, err = Chain(tr, Headers(info)).RoundTrip(req)
	require.NoError(t, err)

	h := tr.seen[0].Header
	assert.Equal(t, HeaderValueClientName, h.Get(HeaderKeyClientName))
	assert.Equal(t, "1.2.3", h.Get(HeaderKeyClientVersion))
	assert.Equal(t, DefaultDeviceType, h.Get(HeaderKeyDeviceType))
	assert.True(t, strings.HasPrefix(h.Get(HeaderKeyUserAgent), "Passvault_CLI/1.2.3 (release/standard)"))
}

func TestRefreshAuthenticatorRetriesWithNewToken(t *testing.T) {
	tokens := &mutableTokens{token: "old"}
	refresher := &fakeRefresher{tokens: tokens, next: "new"}
	tr := &recordTransport{statuses: []int{http.StatusUnauthorized, http.StatusOK}}
	rt := Chain(tr, RefreshAuthenticator(refresher), AuthToken(tokens))

	req, err := http.NewRequest(http.MethodPut, "https://vault.example.test/x", strings.NewReader(`{"a":1}`))
	require.NoError(t, err)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, refresher.calls)
	require.Len(t, tr.seen, 2)
	assert.Equal(t, "Bearer old", tr.seen[0].Header.Get("Authorization"))
	assert.Equal(t, "Bearer new", tr.seen[1].Header.Get("Authorization"))
	assert.Equal(t, []string{`{"a":1}`, `{"a":1}`}, tr.bodies)
}

func TestRefreshAuthenticatorRetriesOnce(t *testing.T) {
	tokens := &mutableTokens{token: "old"}
	refresher := &fakeRefresher{tokens: tokens, next: "new"}
	tr := &recordTransport{statuses: []int{http.StatusUnauthorized, http.StatusUnauthorized}}
	rt := Chain(tr, RefreshAuthenticator(refresher), AuthToken(tokens))

	req, err := http.NewRequest(http.MethodGet, "https://vault.example.test/x", nil)
	require.NoError(t, err)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 1, refresher.calls)
	assert.Len(t, tr.seen, 2)
}

func TestRefreshAuthenticatorKeepsResponseWhenRefreshFails(t *testing.T) {
	tokens := &mutableTokens{token: "old"}
	refresher := &fakeRefresher{tokens: tokens, err: errors.New("identity down")}
	tr := &recordTransport{statuses: []int{http.StatusUnauthorized}}
	rt := Chain(tr, RefreshAuthenticator(refresher), AuthToken(tokens))

	req, err := http.NewRequest(http.MethodGet, "https://vault.example.test/x", nil)
	require.NoError(t, err)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Len(t, tr.seen, 1)
}
