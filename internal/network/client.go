package network

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"passvault/internal/observability/logger"
)

// maxErrorBody caps how much of an error response is kept in HTTPError.
const maxErrorBody = 4 << 10

// Client sends JSON requests through an interceptor chain. Paths are relative;
// the chain's BaseURL interceptor supplies scheme and host.
type Client struct {
	name    string
	http    *http.Client
	metrics *Metrics
}

// NewClient returns a Client named name (used for logs and metrics) that
// sends requests through rt.
func NewClient(name string, rt http.RoundTripper, timeout time.Duration, metrics *Metrics) *Client {
	return &Client{
		name:    name,
		http:    &http.Client{Transport: rt, Timeout: timeout},
		metrics: metrics,
	}
}

func (c *Client) getJSON(ctx context.Context, path string, header http.Header, out any) error {
	return c.do(ctx, http.MethodGet, path, header, nil, "", out)
}

func (c *Client) putJSON(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPut, path, in, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, in, out)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	body := []byte(form.Encode())
	return c.do(ctx, http.MethodPost, path, nil, body, "application/x-www-form-urlencoded", out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	return c.do(ctx, method, path, nil, buf.Bytes(), "application/json", out)
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	header http.Header,
	body []byte,
	contentType string,
	out any,
) error {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, path, rdr)
	if err != nil {
		return err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	log := logger.From(ctx).With(logger.Service(c.name), logger.Method(method), logger.URL(path))
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.observe(c.name, 0, time.Since(start))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		log.Debug("request failed", logger.Err(err))
		return fmt.Errorf("%w: %s %s: %w", ErrNoNetwork, method, path, unwrapURLError(err))
	}
	defer resp.Body.Close()
	c.metrics.observe(c.name, resp.StatusCode, time.Since(start))
	log.Debug("request done", logger.Status(resp.StatusCode), logger.Duration(time.Since(start)))

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		target := path
		if resp.Request != nil {
			target = resp.Request.URL.Redacted()
		}
		return &HTTPError{
			Method: method,
			URL:    target,
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(b)),
		}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// unwrapURLError drops the *url.Error wrapper, whose message repeats the
// method and URL already in ours.
func unwrapURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}
