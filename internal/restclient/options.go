package restclient

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Option customises a Client during New.
type Option func(*Client)

// WithHTTPClient uses a copy of hc for requests. The configured timeout, when
// set, still overrides hc.Timeout, and a transport given with WithTransport
// replaces hc.Transport regardless of option order. A nil hc is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc == nil {
			return
		}
		cp := *hc
		c.http = &cp
	}
}

// WithTransport sets the round tripper under the client's own transports.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = rt
	}
}

// WithLogger sets the logger used for debug events. Defaults to the global
// zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}
