package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/digital_khata_client/internal/apperrors"
	"github.com/SscSPs/digital_khata_client/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/digital_khata_client/internal/core/ports/services"
	"github.com/SscSPs/digital_khata_client/internal/metrics"
)

const (
	// DefaultBasePath prefixes every JSON endpoint.
	DefaultBasePath = "/api"
	// DefaultTimeout bounds a single backend request.
	DefaultTimeout = 30 * time.Second

	csrfCookieName = "csrftoken"
	csrfHeaderName = "X-CSRFToken"
)

// Config configures the backend client.
type Config struct {
	// BackendURL is the backend origin, e.g. "http://localhost:8000".
	BackendURL string
	// BasePath prefixes JSON endpoints. Empty selects DefaultBasePath.
	BasePath string
	Timeout  time.Duration
}

// RequestOptions customises a single request. Headers override the defaults.
type RequestOptions struct {
	Method  string
	Body    any
	Headers http.Header
	Query   url.Values
}

// Client talks to the Digital Khata backend. Cookies act as credentials and
// are sent with every request. Failed requests are never retried.
//
// Client instances are safe for concurrent use.
type Client struct {
	origin     *url.URL
	basePath   string
	httpClient *http.Client
	jar        *SessionJar
	logger     *slog.Logger
}

var _ portssvc.BackendAPI = (*Client)(nil)

// NewClient creates a backend client whose session cookies live in storage.
func NewClient(cfg Config, storage repositories.LocalStorageFacade, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("backend URL cannot be empty")
	}
	origin, err := url.Parse(strings.TrimRight(cfg.BackendURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid backend URL %q: %w", cfg.BackendURL, err)
	}
	if origin.Scheme == "" || origin.Host == "" {
		return nil, fmt.Errorf("backend URL %q must include scheme and host", cfg.BackendURL)
	}

	basePath := cfg.BasePath
	if basePath == "" {
		basePath = DefaultBasePath
	}
	basePath = "/" + strings.Trim(basePath, "/")
	if basePath == "/" {
		basePath = ""
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	jar, err := NewSessionJar(origin, storage, logger)
	if err != nil {
		return nil, err
	}

	return &Client{
		origin:   origin,
		basePath: basePath,
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		jar:    jar,
		logger: logger,
	}, nil
}

// Do sends a request to {origin}{basePath}{endpoint} and decodes a JSON reply into out.
// A non-2xx status yields *apperrors.RequestFailedError. An empty body leaves out untouched.
func (c *Client) Do(ctx context.Context, endpoint string, opts *RequestOptions, out any) error {
	if opts == nil {
		opts = &RequestOptions{}
	}
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if opts.Body != nil {
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL(endpoint, opts.Query), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, vs := range opts.Headers {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	return decodeResponse(resp, out)
}

// request is the typed form of Do.
func request[T any](ctx context.Context, c *Client, endpoint string, opts *RequestOptions) (T, error) {
	var out T
	err := c.Do(ctx, endpoint, opts, &out)
	return out, err
}

// Ping checks that the backend answers at all. Any HTTP status counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.origin.String()+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.send(req)
	if err != nil {
		return err
	}
	drain(resp)
	return nil
}

// send adds the CSRF header for unsafe methods, performs the request and records metrics.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	if !isSafeMethod(req.Method) {
		if token, ok := c.jar.Cookie(csrfCookieName); ok && req.Header.Get(csrfHeaderName) == "" {
			req.Header.Set(csrfHeaderName, token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		metrics.RecordBackendRequest(req.Method, req.URL.Path, 0, duration)
		c.logger.Debug("Backend request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	metrics.RecordBackendRequest(req.Method, req.URL.Path, resp.StatusCode, duration)
	c.logger.Debug("Backend request completed",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", duration),
	)
	return resp, nil
}

func (c *Client) apiURL(endpoint string, query url.Values) string {
	u := c.origin.String() + c.basePath + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) originURL(path string) string {
	return c.origin.String() + path
}

// decodeResponse maps non-2xx replies to RequestFailedError and decodes JSON bodies into target.
func decodeResponse(resp *http.Response, target any) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		status := resp.Status
		if status == "" {
			status = http.StatusText(resp.StatusCode)
		}
		return apperrors.NewRequestFailedError(resp.StatusCode, status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if target == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}
