package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
)

// Config holds the settings for the underlying net/http client.
type Config struct {
	Timeout         time.Duration
	UserAgent       string
	FollowRedirects bool
	EnableHTTP2     bool
}

// DefaultConfig returns the default HTTP client configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         15 * time.Second,
		FollowRedirects: true,
		EnableHTTP2:     true,
	}
}

// Client wraps net/http.Client with the request/response types used by
// the webhook client.
type Client struct {
	client *http.Client
	config Config
	logger zerolog.Logger
}

// NewClient creates an HTTP client from the given configuration.
func NewClient(config Config, logger zerolog.Logger) (*Client, error) {
	transport := &http.Transport{}

	if config.EnableHTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			logger.Warn().Err(err).Msg("Failed to configure HTTP/2, falling back to HTTP/1.1")
		}
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   config.Timeout,
	}

	if !config.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	logger.Debug().
		Dur("timeout", config.Timeout).
		Str("user_agent", config.UserAgent).
		Bool("http2_enabled", config.EnableHTTP2).
		Msg("HTTP client created")

	return &Client{
		client: client,
		config: config,
		logger: logger,
	}, nil
}

// Request describes a single HTTP request.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
	Context context.Context
}

// Response is a fully-read HTTP response.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// Do performs a single HTTP request and reads the full response body.
// Transport-level failures are returned as a NetworkError.
func (c *Client) Do(req *Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequest(req.Method, req.URL, body)
	if err != nil {
		return nil, WrapError(err, "failed to create HTTP request")
	}
	if req.Context != nil {
		httpReq = httpReq.WithContext(req.Context)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
	if c.config.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.config.UserAgent)
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "application/json")
	}
	if req.Body != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, NewNetworkError(req.URL, "request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError(req.URL, "failed to read response body", err)
	}

	headers := make(map[string]string, len(resp.Header))
	for key, values := range resp.Header {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL).
		Int("status_code", resp.StatusCode).
		Int("body_size", len(respBody)).
		Msg("HTTP request completed")

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       respBody,
	}, nil
}
