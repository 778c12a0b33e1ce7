package restclient

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dshills/ghgists/internal/redact"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// debugTransport logs every round trip at debug level. Credentials in URLs
// and headers are masked.
type debugTransport struct {
	base   http.RoundTripper
	logger zerolog.Logger
	tags   []string
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := uuid.NewString()
	target := redact.URL(req.URL)
	dt.logger.Debug().
		Str("request_id", id).
		Strs("tags", dt.tags).
		Str("method", req.Method).
		Str("url", target).
		Interface("headers", redact.Headers(req.Header)).
		Msg("HTTP request")

	start := time.Now()
	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		dt.logger.Debug().
			Err(err).
			Str("request_id", id).
			Strs("tags", dt.tags).
			Str("method", req.Method).
			Str("url", target).
			Dur("duration", time.Since(start)).
			Msg("HTTP request failed")
		return nil, err
	}

	dt.logger.Debug().
		Str("request_id", id).
		Strs("tags", dt.tags).
		Str("method", req.Method).
		Str("url", target).
		Int("status_code", resp.StatusCode).
		Interface("headers", redact.Headers(resp.Header)).
		Dur("duration", time.Since(start)).
		Msg("HTTP response")
	return resp, nil
}

// metricsTransport records request counts and latency.
type metricsTransport struct {
	base   http.RoundTripper
	client string
}

func (mt *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := mt.base.RoundTrip(req)
	requestDuration.WithLabelValues(mt.client, req.Method).Observe(time.Since(start).Seconds())

	code := "error"
	if err == nil {
		code = strconv.Itoa(resp.StatusCode)
	}
	requestsTotal.WithLabelValues(mt.client, req.Method, code).Inc()
	return resp, err
}
