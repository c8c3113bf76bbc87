package ai

import (
	"net/http"

	"github.com/codegen-labs/codegen/internal/branding"
	"go.uber.org/zap"
)

// Client sends prompts to the generation proxy.
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing or timeouts).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithEndpoint overrides the proxy URL.
func WithEndpoint(url string) Option {
	return func(cl *Client) {
		if url != "" {
			cl.endpoint = url
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.logger = l
		}
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(cl *Client) {
		cl.userAgent = ua
	}
}

// New creates a Client pointed at the branded default endpoint.
func New(opts ...Option) *Client {
	c := &Client{
		endpoint:   branding.Endpoint(),
		userAgent:  branding.CLIName(),
		httpClient: http.DefaultClient,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}
