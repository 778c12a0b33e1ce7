package github

import (
	"net/http"
	"time"

	"github.com/dshills/ghgists/internal/restclient"
	"github.com/dshills/ghgists/internal/version"
)

const (
	// DefaultBaseURL is the public GitHub API endpoint.
	DefaultBaseURL = "https://api.github.com"
	// DefaultAccept selects the v3 JSON media type.
	DefaultAccept = "application/vnd.github.v3+json"
	// DefaultTimeout bounds each request.
	DefaultTimeout = 60 * time.Second
	// DefaultUserAgent identifies this client to the API.
	DefaultUserAgent = "ghgists/" + version.Version
	// Tag always leads the tag list of a GitHub client.
	Tag = "github"
)

// NewConfig fills every unset field of opts with its GitHub default and
// returns the result. Headers are merged key by key, so headers the caller
// set are kept and only missing ones are defaulted; header names are
// canonicalised. Tags are prefixed with Tag rather than replaced. opts is
// not modified.
func NewConfig(opts restclient.Config) restclient.Config {
	cfg := restclient.Config{
		BaseURL: opts.BaseURL,
		Timeout: opts.Timeout,
		Debug:   opts.Debug,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	cfg.Headers = make(map[string]string, len(opts.Headers)+2)
	for k, v := range opts.Headers {
		cfg.Headers[http.CanonicalHeaderKey(k)] = v
	}
	if cfg.Headers["Accept"] == "" {
		cfg.Headers["Accept"] = DefaultAccept
	}
	if cfg.Headers["User-Agent"] == "" {
		cfg.Headers["User-Agent"] = DefaultUserAgent
	}

	cfg.Tags = make([]string, 0, len(opts.Tags)+1)
	cfg.Tags = append(cfg.Tags, Tag)
	cfg.Tags = append(cfg.Tags, opts.Tags...)

	return cfg
}
