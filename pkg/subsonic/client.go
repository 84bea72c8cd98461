package subsonic

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultAPIVersion is sent as v= unless overridden.
	DefaultAPIVersion = "1.16.1"
	// DefaultClientName is sent as c= unless overridden.
	DefaultClientName = "sonar"
	defaultUserAgent  = "sonar/0.1"
)

// HTTPDoer describes the HTTP client used to reach the server.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to a Subsonic-compatible server. It is immutable after
// construction and safe for concurrent use.
type Client struct {
	baseURL  *url.URL
	identity requestIdentity
	settings settings
	http     HTTPDoer
}

type settings struct {
	clientName string
	apiVersion string
	userAgent  string
	doer       HTTPDoer
	logger     *slog.Logger
	timeout    time.Duration
	insecure   bool
	salt       func() string
}

// Option customizes the client.
type Option func(*settings)

// WithHTTPClient overrides the HTTP client. Timeout and TLS options are
// ignored when a client is supplied.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(s *settings) {
		if doer != nil {
			s.doer = doer
		}
	}
}

// WithLogger sets the logger used for per-request debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithClientName sets the c= parameter.
func WithClientName(name string) Option {
	return func(s *settings) {
		if name = strings.TrimSpace(name); name != "" {
			s.clientName = name
		}
	}
}

// WithAPIVersion sets the v= parameter.
func WithAPIVersion(version string) Option {
	return func(s *settings) {
		if version = strings.TrimSpace(version); version != "" {
			s.apiVersion = version
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(agent string) Option {
	return func(s *settings) {
		if agent = strings.TrimSpace(agent); agent != "" {
			s.userAgent = agent
		}
	}
}

// WithTimeout bounds each request made by the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.timeout = timeout
	}
}

// WithInsecureSkipVerify disables TLS certificate verification, for servers
// with self-signed certificates.
func WithInsecureSkipVerify() Option {
	return func(s *settings) {
		s.insecure = true
	}
}

// withFixedSalt makes every token signature use salt. Tests only.
func withFixedSalt(salt string) Option {
	return func(s *settings) {
		s.salt = func() string { return salt }
	}
}

// NewClient validates baseURL and builds a Client. A base URL without a
// scheme is treated as http.
func NewClient(baseURL, username string, auth Auth, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	s := settings{
		clientName: DefaultClientName,
		apiVersion: DefaultAPIVersion,
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return build(base, username, auth, s), nil
}

// With returns a copy of c with opts applied. The receiver is unchanged.
func (c *Client) With(opts ...Option) *Client {
	s := c.settings
	for _, opt := range opts {
		opt(&s)
	}
	base := *c.baseURL
	return build(&base, c.identity.username, c.identity.auth, s)
}

func build(base *url.URL, username string, auth Auth, s settings) *Client {
	if s.salt != nil {
		auth = auth.withSalt(s.salt)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	doer := s.doer
	if doer == nil {
		doer = newHTTPClient(s.timeout, s.insecure)
	}
	identity := requestIdentity{
		username:   username,
		auth:       auth,
		apiVersion: s.apiVersion,
		clientName: s.clientName,
	}
	return &Client{
		baseURL:  base,
		identity: identity,
		settings: s,
		http:     doer,
	}
}

func newHTTPClient(timeout time.Duration, insecure bool) *http.Client {
	client := &http.Client{Timeout: timeout}
	if insecure {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for self-signed servers
		client.Transport = transport
	}
	return client
}

// BaseURL returns the server root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Username returns the account name sent as u=.
func (c *Client) Username() string {
	return c.identity.username
}

// APIVersion returns the v= value.
func (c *Client) APIVersion() string {
	return c.identity.apiVersion
}

// ClientName returns the c= value.
func (c *Client) ClientName() string {
	return c.identity.clientName
}

// AuthKind reports how credentials are sent.
func (c *Client) AuthKind() AuthKind {
	return c.identity.auth.Kind()
}

// URL returns a fully signed URL for endpoint. Each call carries a fresh
// salt. Useful for handing stream or cover-art links to another program.
func (c *Client) URL(endpoint string, params ...Param) *url.URL {
	return buildURL(c.baseURL, c.identity, endpoint, params)
}

// Call performs a GET against any envelope endpoint and returns its payload.
func (c *Client) Call(ctx context.Context, endpoint string, params ...Param) (Payload, error) {
	return c.get(ctx, endpoint, params)
}

// CallBinary performs a GET against any media endpoint and returns its bytes.
func (c *Client) CallBinary(ctx context.Context, endpoint string, params ...Param) ([]byte, error) {
	return c.getBytes(ctx, endpoint, params)
}

func (c *Client) get(ctx context.Context, endpoint string, params []Param) (Payload, error) {
	env, err := c.getEnvelope(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	return env.Payload, nil
}

// fetch GETs endpoint and decodes its mandatory field.
func fetch[T any](ctx context.Context, c *Client, endpoint string, p []Param, field string) (T, error) {
	var out T
	payload, err := c.get(ctx, endpoint, p)
	if err != nil {
		return out, err
	}
	if err := payload.Decode(field, &out); err != nil {
		return out, withEndpoint(endpoint, err)
	}
	return out, nil
}

// fetchOptional is fetch for fields servers may leave out; absence yields
// the zero value.
func fetchOptional[T any](ctx context.Context, c *Client, endpoint string, p []Param, field string) (T, error) {
	var out T
	payload, err := c.get(ctx, endpoint, p)
	if err != nil {
		return out, err
	}
	if _, err := payload.DecodeOptional(field, &out); err != nil {
		return out, withEndpoint(endpoint, err)
	}
	return out, nil
}

// fetchList GETs endpoint and decodes the list at field.inner.
func fetchList[T any](ctx context.Context, c *Client, endpoint string, p []Param, field, inner string) ([]T, error) {
	payload, err := c.get(ctx, endpoint, p)
	if err != nil {
		return nil, err
	}
	out, err := DecodeList[T](payload, field, inner)
	if err != nil {
		return nil, withEndpoint(endpoint, err)
	}
	return out, nil
}

// exec GETs an endpoint whose success carries no payload.
func (c *Client) exec(ctx context.Context, endpoint string, p []Param) error {
	_, err := c.get(ctx, endpoint, p)
	return err
}

// getEnvelope is get for callers that need the server identity fields too.
func (c *Client) getEnvelope(ctx context.Context, endpoint string, params []Param) (*Envelope, error) {
	resp, err := c.send(ctx, http.MethodGet, endpoint, params, nil)
	if err != nil {
		return nil, err
	}
	env, err := decodeEnvelope(endpoint, resp.body)
	if err != nil {
		return nil, err
	}
	if _, err := env.Result(); err != nil {
		return nil, err
	}
	return env, nil
}

func (c *Client) postJSON(ctx context.Context, endpoint string, params []Param, body any) (Payload, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s body: %w", endpoint, err)
	}
	resp, err := c.send(ctx, http.MethodPost, endpoint, params, encoded)
	if err != nil {
		return nil, err
	}
	return decodePayload(endpoint, resp.body)
}

func (c *Client) getBytes(ctx context.Context, endpoint string, params []Param) ([]byte, error) {
	resp, err := c.send(ctx, http.MethodGet, endpoint, params, nil)
	if err != nil {
		return nil, err
	}
	return resolveBinary(endpoint, resp.contentType, resp.body)
}

func decodePayload(endpoint string, body []byte) (Payload, error) {
	env, err := decodeEnvelope(endpoint, body)
	if err != nil {
		return nil, err
	}
	return env.Result()
}

type response struct {
	contentType string
	body        []byte
}

func (c *Client) send(ctx context.Context, method, endpoint string, params []Param, body []byte) (response, error) {
	if c == nil {
		return response{}, fmt.Errorf("client is nil")
	}
	reqURL := c.URL(endpoint, params...)
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return response{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.settings.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	logger := c.settings.logger.With(
		"endpoint", endpoint,
		"method", method,
		"request_id", uuid.NewString(),
	)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Debug("subsonic request failed",
			"url", redactedURL(reqURL),
			"duration", time.Since(start),
			"error", err,
		)
		return response{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	logger.Debug("subsonic request",
		"url", redactedURL(reqURL),
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode >= 400 {
		return response{}, &HTTPStatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, fmt.Errorf("read %s response: %w", endpoint, err)
	}
	return response{contentType: resp.Header.Get("Content-Type"), body: data}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("base url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse base url %q: unsupported scheme %q", raw, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", raw)
	}
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.RawFragment = ""
	return u, nil
}
