package restokit

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Client is the concrete API implementation. All fields are fixed at New,
// which is what makes concurrent calls on one instance safe.
type Client struct {
	baseURL        string
	headers        map[string]string
	receiveTimeout time.Duration
	logger         log.Logger
	httpClient     Doer
}

var _ API = (*Client)(nil)

// New creates a Client for the given base URL (scheme + host + optional path
// prefix; a trailing slash is stripped). Options follow; invalid options
// return a *ConfigError.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &ConfigError{"base URL must include scheme and host"}
	}

	cfg := Config{
		ConnectTimeout: DefaultConnectTimeout,
		ReceiveTimeout: DefaultReceiveTimeout,
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Logger == nil {
		cfg.Logger = log.NewNopLogger()
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: cfg.ConnectTimeout,
				}).DialContext,
				TLSHandshakeTimeout: cfg.ConnectTimeout,
			},
		}
	}

	headers := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
		// Tunneled dev hosts (ngrok and friends) interpose an HTML warning
		// page unless this header is present.
		"ngrok-skip-browser-warning": "true",
	}
	for k, v := range cfg.Headers {
		headers[k] = v
	}

	return &Client{
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		headers:        headers,
		receiveTimeout: cfg.ReceiveTimeout,
		logger:         cfg.Logger,
		httpClient:     cfg.HTTPClient,
	}, nil
}

// callConfig carries the per-call knobs; the zero value means no query
// parameters and no authentication.
type callConfig struct {
	query url.Values
	token string
}

// CallOption customizes a single call.
type CallOption func(cc *callConfig)

// WithQuery attaches query parameters, encoded as a standard query string.
func WithQuery(query url.Values) CallOption {
	return func(cc *callConfig) {
		if cc.query == nil {
			cc.query = url.Values{}
		}
		for k, vs := range query {
			for _, v := range vs {
				cc.query.Add(k, v)
			}
		}
	}
}

// WithQueryParam attaches a single query parameter.
func WithQueryParam(key, value string) CallOption {
	return func(cc *callConfig) {
		if cc.query == nil {
			cc.query = url.Values{}
		}
		cc.query.Add(key, value)
	}
}

// WithToken sends the opaque bearer token as "Authorization: Bearer <token>".
// An empty token leaves the call unauthenticated.
func WithToken(token string) CallOption {
	return func(cc *callConfig) {
		cc.token = token
	}
}

// Get fetches a single JSON object.
func (c *Client) Get(ctx context.Context, endpoint string, opts ...CallOption) Result[Object] {
	return c.doObject(ctx, http.MethodGet, endpoint, nil, opts)
}

// GetList fetches a JSON array.
func (c *Client) GetList(ctx context.Context, endpoint string, opts ...CallOption) Result[[]any] {
	raw, failure := c.roundTrip(ctx, http.MethodGet, endpoint, nil, opts)
	if failure != nil {
		c.logFailure(http.MethodGet, endpoint, *failure)
		return Fail[[]any](*failure)
	}
	res := decodeList(raw)
	if f := res.FailureOrNil(); f != nil {
		c.logFailure(http.MethodGet, endpoint, *f)
	}
	return res
}

// Post creates a resource.
func (c *Client) Post(ctx context.Context, endpoint string, body any, opts ...CallOption) Result[Object] {
	return c.doObject(ctx, http.MethodPost, endpoint, body, opts)
}

// Put replaces a resource.
func (c *Client) Put(ctx context.Context, endpoint string, body any, opts ...CallOption) Result[Object] {
	return c.doObject(ctx, http.MethodPut, endpoint, body, opts)
}

// Patch partially updates a resource.
func (c *Client) Patch(ctx context.Context, endpoint string, body any, opts ...CallOption) Result[Object] {
	return c.doObject(ctx, http.MethodPatch, endpoint, body, opts)
}

// Delete removes a resource.
func (c *Client) Delete(ctx context.Context, endpoint string, opts ...CallOption) Result[Object] {
	return c.doObject(ctx, http.MethodDelete, endpoint, nil, opts)
}

func (c *Client) doObject(ctx context.Context, method, endpoint string, body any, opts []CallOption) Result[Object] {
	raw, failure := c.roundTrip(ctx, method, endpoint, body, opts)
	if failure != nil {
		c.logFailure(method, endpoint, *failure)
		return Fail[Object](*failure)
	}
	res := decodeObject(raw)
	if f := res.FailureOrNil(); f != nil {
		c.logFailure(method, endpoint, *f)
	}
	return res
}

// roundTrip performs one request/response cycle and returns the raw response,
// or the Failure that ended the call before a response was fully read. This
// is the single catch-all around the transport: no error crosses it.
func (c *Client) roundTrip(ctx context.Context, method, endpoint string, body any, opts []CallOption) (*rawResponse, *Failure) {
	var cc callConfig
	for _, opt := range opts {
		opt(&cc)
	}

	target := c.baseURL + endpoint
	if len(cc.query) > 0 {
		target += "?" + cc.query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			f := GenericFailure("Failed to encode request body: " + err.Error())
			return nil, &f
		}
		reqBody = bytes.NewReader(encoded)
	}

	ctx, cancel := context.WithTimeout(ctx, c.receiveTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		f := NetworkFailure(err.Error())
		return nil, &f
	}

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if cc.token != "" {
		req.Header.Set("Authorization", "Bearer "+cc.token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	level.Debug(c.logger).Log("msg", "request", "method", method, "endpoint", endpoint, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		f := NetworkFailure(err.Error())
		return nil, &f
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		f := NetworkFailure(err.Error())
		return nil, &f
	}

	return &rawResponse{
		status:      resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		body:        raw,
	}, nil
}

func (c *Client) logFailure(method, endpoint string, f Failure) {
	level.Error(c.logger).Log("msg", "call failed", "method", method, "endpoint", endpoint, "kind", f.Kind.String(), "err", f.Message)
}
