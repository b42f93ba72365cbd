package httpclient

import (
	"time"

	"github.com/rs/zerolog"
)

// ClientBuilder builds HTTP clients with a fluent interface.
type ClientBuilder struct {
	config Config
	logger zerolog.Logger
}

// NewClientBuilder creates a new ClientBuilder with default configuration.
func NewClientBuilder(logger zerolog.Logger) *ClientBuilder {
	return &ClientBuilder{
		config: DefaultConfig(),
		logger: logger,
	}
}

// WithTimeout sets the request timeout.
func (b *ClientBuilder) WithTimeout(timeout time.Duration) *ClientBuilder {
	b.config.Timeout = timeout
	return b
}

// WithUserAgent sets the User-Agent header.
func (b *ClientBuilder) WithUserAgent(userAgent string) *ClientBuilder {
	b.config.UserAgent = userAgent
	return b
}

// WithFollowRedirects sets whether to follow redirects.
func (b *ClientBuilder) WithFollowRedirects(follow bool) *ClientBuilder {
	b.config.FollowRedirects = follow
	return b
}

// WithHTTP2 enables or disables HTTP/2 support.
func (b *ClientBuilder) WithHTTP2(enabled bool) *ClientBuilder {
	b.config.EnableHTTP2 = enabled
	return b
}

// Build creates and returns a new Client.
func (b *ClientBuilder) Build() (*Client, error) {
	return NewClient(b.config, b.logger)
}
