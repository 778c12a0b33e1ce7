package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dshills/ghgists/internal/restclient"
)

// GistsPath lists the public gists of a user.
const GistsPath = "/users/{username}/gists"

// Client provides access to the GitHub REST API.
type Client struct {
	*restclient.Client
}

// New creates a GitHub client from a partial configuration. Unset fields
// get the defaults described on NewConfig. It never fails.
func New(opts restclient.Config, options ...restclient.Option) *Client {
	return &Client{Client: restclient.New(NewConfig(opts), options...)}
}

// Gist is a gist summary as returned by the API. Raw holds the element
// exactly as received.
type Gist struct {
	ID          string              `json:"id"`
	Description string              `json:"description"`
	HTMLURL     string              `json:"html_url"`
	Public      bool                `json:"public"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Files       map[string]GistFile `json:"files"`
	Raw         json.RawMessage     `json:"-"`
}

// GistFile describes one file of a gist.
type GistFile struct {
	Filename string `json:"filename"`
	Language string `json:"language"`
	RawURL   string `json:"raw_url"`
	Size     int    `json:"size"`
}

// UnmarshalJSON decodes the known fields and keeps a copy of data in Raw.
func (g *Gist) UnmarshalJSON(data []byte) error {
	type plain Gist
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*g = Gist(p)
	g.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON emits Raw when present so a decoded gist round-trips
// unchanged.
func (g Gist) MarshalJSON() ([]byte, error) {
	if len(g.Raw) > 0 {
		return g.Raw, nil
	}
	type plain Gist
	return json.Marshal(plain(g))
}

// Gists fetches the gists of username with a single GET request. The
// username is passed to the API as is. A 404 is returned as a
// *restclient.Error whose message reads `User "<username>" not found`; every
// other error is returned unmodified.
func (c *Client) Gists(ctx context.Context, username string) ([]Gist, error) {
	res, err := c.Get(ctx, GistsPath, restclient.RequestOptions{
		Path: map[string]string{"username": username},
	})
	if err != nil {
		if IsNotFound(err) {
			return nil, userNotFound(username, err)
		}
		return nil, err
	}

	var gists []Gist
	if err := res.JSON(&gists); err != nil {
		return nil, err
	}
	return gists, nil
}

// GistsResult is the outcome of one GistsAsync call. Exactly one of Gists
// and Err is meaningful.
type GistsResult struct {
	Gists []Gist
	Err   error
}

// GistsAsync runs Gists in a goroutine. The returned channel yields exactly
// one result and is then closed.
func (c *Client) GistsAsync(ctx context.Context, username string) <-chan GistsResult {
	ch := make(chan GistsResult, 1)
	go func() {
		defer close(ch)
		gists, err := c.Gists(ctx, username)
		if err != nil {
			ch <- GistsResult{Err: err}
			return
		}
		ch <- GistsResult{Gists: gists}
	}()
	return ch
}

// IsNotFound reports whether err carries an HTTP 404.
func IsNotFound(err error) bool {
	return restclient.StatusCode(err) == http.StatusNotFound
}

func userNotFound(username string, err error) error {
	var rerr *restclient.Error
	if !errors.As(err, &rerr) {
		return fmt.Errorf(`User "%s" not found: %w`, username, err)
	}
	cp := *rerr
	cp.Message = fmt.Sprintf(`User "%s" not found`, username)
	return &cp
}
