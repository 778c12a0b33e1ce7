package restclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yosida95/uritemplate/v3"
)

// Config is the resolved configuration of a Client.
type Config struct {
	BaseURL string            `json:"baseUrl"`
	Headers map[string]string `json:"headers"`
	Tags    []string          `json:"tags"`
	Timeout time.Duration     `json:"timeout"`
	Debug   bool              `json:"debug"`
}

func (c Config) clone() Config {
	out := c
	if c.Headers != nil {
		out.Headers = make(map[string]string, len(c.Headers))
		for k, v := range c.Headers {
			out.Headers[k] = v
		}
	}
	if c.Tags != nil {
		out.Tags = append([]string(nil), c.Tags...)
	}
	return out
}

// RequestOptions carries the per-request inputs.
type RequestOptions struct {
	// Path holds values for the placeholders of the path template.
	Path    map[string]string
	Query   url.Values
	Headers map[string]string
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

// Client issues requests against a single base URL.
type Client struct {
	cfg       Config
	http      *http.Client
	transport http.RoundTripper
	logger    zerolog.Logger
}

// New creates a Client from cfg. It never fails; cfg is copied so later
// changes by the caller have no effect.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:    cfg.clone(),
		http:   &http.Client{},
		logger: log.Logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cfg.Timeout > 0 {
		c.http.Timeout = c.cfg.Timeout
	}

	transport := c.transport
	if transport == nil {
		transport = c.http.Transport
	}
	if transport == nil {
		transport = http.DefaultTransport
	}
	transport = &metricsTransport{base: transport, client: c.metricsLabel()}
	if c.cfg.Debug {
		transport = &debugTransport{base: transport, logger: c.logger, tags: c.cfg.Tags}
	}
	c.http.Transport = transport

	return c
}

// Config returns a copy of the client's configuration.
func (c *Client) Config() Config {
	return c.cfg.clone()
}

// Tags returns a copy of the client's tags.
func (c *Client) Tags() []string {
	return append([]string(nil), c.cfg.Tags...)
}

// Get issues a GET request. See Do.
func (c *Client) Get(ctx context.Context, path string, opts RequestOptions) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, opts)
}

// Do issues a single request. path is a URI template relative to the base
// URL. On a transport failure the response is nil. On a non-2xx status both
// the response and an *Error are returned.
func (c *Client) Do(ctx context.Context, method, path string, opts RequestOptions) (*Response, error) {
	target, err := c.buildURL(path, opts)
	if err != nil {
		return nil, &Error{Method: method, URL: path, Message: err.Error(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, &Error{Method: method, URL: target, Message: err.Error(), Err: err}
	}
	for k, v := range c.cfg.Headers {
		req.Header.Set(k, v)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Method: method, URL: target, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			Method:     method,
			URL:        target,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("reading response: %v", err),
			Err:        err,
		}
	}

	res := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return res, newStatusError(method, target, res)
	}
	return res, nil
}

func (c *Client) buildURL(path string, opts RequestOptions) (string, error) {
	tmpl, err := uritemplate.New(path)
	if err != nil {
		return "", fmt.Errorf("parsing path template %q: %w", path, err)
	}
	values := uritemplate.Values{}
	for k, v := range opts.Path {
		values.Set(k, uritemplate.String(v))
	}
	expanded, err := tmpl.Expand(values)
	if err != nil {
		return "", fmt.Errorf("expanding path template %q: %w", path, err)
	}

	target := strings.TrimRight(c.cfg.BaseURL, "/") + expanded
	if len(opts.Query) > 0 {
		target += "?" + opts.Query.Encode()
	}
	return target, nil
}

func (c *Client) metricsLabel() string {
	if len(c.cfg.Tags) == 0 {
		return "default"
	}
	return c.cfg.Tags[0]
}
