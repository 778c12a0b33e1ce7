package github

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"testing/iotest"
	"time"

	"github.com/dshills/ghgists/internal/restclient"
	"github.com/dshills/ghgists/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

const gistsBody = `[{"id":"1","description":"first gist","public":true,"files":{"a.go":{"filename":"a.go","language":"Go"}}},{"id":"2","description":null,"extra":{"nested":[1,2]}}]`

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig(restclient.Config{})

	assert.Equal(t, "https://api.github.com", cfg.BaseURL)
	assert.Equal(t, map[string]string{
		"Accept":     "application/vnd.github.v3+json",
		"User-Agent": DefaultUserAgent,
	}, cfg.Headers)
	assert.Equal(t, []string{"github"}, cfg.Tags)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "ghgists/"+version.Version, DefaultUserAgent)
}

func TestNewConfig_PreservesCallerValues(t *testing.T) {
	headers := map[string]string{"accept": "application/json", "X-Trace": "on"}
	tags := []string{"gists", "demo"}
	opts := restclient.Config{
		BaseURL: "https://ghe.example.com/api/v3",
		Headers: headers,
		Tags:    tags,
		Timeout: 5 * time.Second,
		Debug:   true,
	}

	cfg := NewConfig(opts)

	assert.Equal(t, "https://ghe.example.com/api/v3", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "application/json", cfg.Headers["Accept"])
	assert.Equal(t, DefaultUserAgent, cfg.Headers["User-Agent"])
	assert.Equal(t, "on", cfg.Headers["X-Trace"])
	assert.Equal(t, []string{"github", "gists", "demo"}, cfg.Tags)

	// Caller inputs are left alone.
	assert.Equal(t, map[string]string{"accept": "application/json", "X-Trace": "on"}, headers)
	assert.Equal(t, []string{"gists", "demo"}, tags)
}

func TestNewConfig_EmptyValuesAreDefaulted(t *testing.T) {
	cfg := NewConfig(restclient.Config{
		Headers: map[string]string{"User-Agent": ""},
		Tags:    []string{},
		Timeout: -1,
	})
	assert.Equal(t, DefaultUserAgent, cfg.Headers["User-Agent"])
	assert.Equal(t, []string{"github"}, cfg.Tags)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
}

func TestNew_AppliesDefaults(t *testing.T) {
	c := New(restclient.Config{Tags: []string{"x"}})
	cfg := c.Config()
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, []string{"github", "x"}, c.Tags())
}

func TestGists(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/silas/gists", r.URL.Path)
		assert.Equal(t, DefaultAccept, r.Header.Get("Accept"))
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(gistsBody))
	}))
	defer server.Close()

	c := New(restclient.Config{BaseURL: server.URL})
	gists, err := c.Gists(context.Background(), "silas")
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())

	require.Len(t, gists, 2)
	assert.Equal(t, "1", gists[0].ID)
	assert.Equal(t, "first gist", gists[0].Description)
	assert.True(t, gists[0].Public)
	assert.Equal(t, "Go", gists[0].Files["a.go"].Language)
	assert.Empty(t, gists[1].Description)

	// The body comes back untouched.
	var want []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(gistsBody), &want))
	for i := range want {
		assert.JSONEq(t, string(want[i]), string(gists[i].Raw))
	}
	out, err := json.Marshal(gists)
	require.NoError(t, err)
	assert.JSONEq(t, gistsBody, string(out))
}

func TestGists_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/nonexistent-user/gists", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Not Found"}`))
	}))
	defer server.Close()

	c := New(restclient.Config{BaseURL: server.URL})
	gists, err := c.Gists(context.Background(), "nonexistent-user")
	require.Error(t, err)
	assert.Nil(t, gists)
	assert.Equal(t, `User "nonexistent-user" not found`, err.Error())
	assert.True(t, IsNotFound(err))

	var rerr *restclient.Error
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, http.StatusNotFound, rerr.StatusCode)
	assert.Equal(t, http.MethodGet, rerr.Method)
	assert.Equal(t, server.URL+"/users/nonexistent-user/gists", rerr.URL)
	assert.Equal(t, `{"message":"Not Found"}`, string(rerr.Body))
}

func TestGists_NotFoundWithTruncatedBody(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Header:     http.Header{"Content-Length": []string{"100"}},
			Body:       io.NopCloser(iotest.ErrReader(io.ErrUnexpectedEOF)),
			Request:    r,
		}, nil
	})

	c := New(restclient.Config{BaseURL: "http://gists.invalid"}, restclient.WithTransport(rt))
	_, err := c.Gists(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, `User "ghost" not found`, err.Error())
	assert.True(t, IsNotFound(err))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestGists_OtherStatusPassedThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"API rate limit exceeded"}`))
	}))
	defer server.Close()

	c := New(restclient.Config{BaseURL: server.URL})
	_, err := c.Gists(context.Background(), "silas")
	require.Error(t, err)
	assert.Equal(t, "API rate limit exceeded", err.Error())
	assert.False(t, IsNotFound(err))
	assert.Equal(t, http.StatusForbidden, restclient.StatusCode(err))
}

func TestGists_TransportErrorPassedThrough(t *testing.T) {
	errTimeout := errors.New("i/o timeout")
	rt := roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, errTimeout
	})

	c := New(restclient.Config{BaseURL: "http://gists.invalid"}, restclient.WithTransport(rt))
	_, gistsErr := c.Gists(context.Background(), "silas")
	require.Error(t, gistsErr)

	_, directErr := c.Get(context.Background(), GistsPath, restclient.RequestOptions{
		Path: map[string]string{"username": "silas"},
	})
	assert.Equal(t, directErr.Error(), gistsErr.Error())
	assert.ErrorIs(t, gistsErr, errTimeout)
	assert.False(t, IsNotFound(gistsErr))
}

func TestGists_ParseErrorPassedThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	c := New(restclient.Config{BaseURL: server.URL})
	gists, err := c.Gists(context.Background(), "silas")
	require.Error(t, err)
	assert.Nil(t, gists)
	assert.Contains(t, err.Error(), "decoding response body")
}

func TestGists_EmptyUsernameIsNotValidated(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := New(restclient.Config{BaseURL: server.URL})
	_, err := c.Gists(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, "/users//gists", path)
	assert.Equal(t, `User "" not found`, err.Error())
}

func TestGistsAsync(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(gistsBody))
	}))
	defer server.Close()

	c := New(restclient.Config{BaseURL: server.URL})
	ch := c.GistsAsync(context.Background(), "silas")

	res, ok := <-ch
	require.True(t, ok)
	require.NoError(t, res.Err)
	assert.Len(t, res.Gists, 2)

	_, ok = <-ch
	assert.False(t, ok, "channel should be closed after one result")
}

func TestGistsAsync_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := New(restclient.Config{BaseURL: server.URL})
	var results []GistsResult
	for res := range c.GistsAsync(context.Background(), "ghost") {
		results = append(results, res)
	}
	require.Len(t, results, 1)
	assert.Nil(t, results[0].Gists)
	assert.EqualError(t, results[0].Err, `User "ghost" not found`)
}
