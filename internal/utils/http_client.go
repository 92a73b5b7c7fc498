package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent by every client built with [NewHTTPClient].
const UserAgent = "go-device-keeper"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
//	client := utils.NewHTTPClient(utils.WithBaseURL("http://127.0.0.1:8080"))
//	resp, err := client.R().Get("/api/devices/trusted")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption configures an [HTTPClient] at construction.
type HTTPClientOption func(c *resty.Client)

// WithBaseURL prefixes relative request paths with url.
func WithBaseURL(url string) HTTPClientOption {
	return func(c *resty.Client) { c.SetBaseURL(url) }
}

// WithTimeout bounds every request. A zero timeout leaves requests
// unbounded, which event streams rely on.
func WithTimeout(d time.Duration) HTTPClientOption {
	return func(c *resty.Client) {
		if d > 0 {
			c.SetTimeout(d)
		}
	}
}

// WithHeader sets a header on every request.
func WithHeader(name, value string) HTTPClientOption {
	return func(c *resty.Client) { c.SetHeader(name, value) }
}

// NewHTTPClient creates a new HTTPClient with its own connection pool. The
// options are applied in order.
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New().SetHeader("User-Agent", UserAgent)
	for _, opt := range opts {
		opt(client)
	}
	return &HTTPClient{Client: client}
}
