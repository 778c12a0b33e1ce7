package restclient

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Error describes a failed request. StatusCode is zero when no response was
// received.
type Error struct {
	Method     string
	URL        string
	StatusCode int
	Message    string
	Body       []byte
	Err        error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.StatusCode != 0 {
		return http.StatusText(e.StatusCode)
	}
	return "request failed"
}

func (e *Error) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

func newStatusError(method, url string, res *Response) *Error {
	msg := http.StatusText(res.StatusCode)
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(res.Body, &payload); err == nil && payload.Message != "" {
		msg = payload.Message
	}
	if msg == "" {
		msg = "unexpected status"
	}
	return &Error{
		Method:     method,
		URL:        url,
		StatusCode: res.StatusCode,
		Message:    msg,
		Body:       res.Body,
	}
}
