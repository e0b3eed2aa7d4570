package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Error is a non-2xx backend response. Detail carries the server's own
// explanation when it sent one, preferring the `detail` field over `message`.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend: %s (%d)", e.Detail, e.Status)
	}
	return fmt.Sprintf("backend: %s", http.StatusText(e.Status))
}

func newError(resp *http.Response) *Error {
	e := &Error{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return e
	}

	var body struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &body) == nil {
		switch {
		case body.Detail != "":
			e.Detail = body.Detail
		case body.Message != "":
			e.Detail = body.Message
		}
	}

	return e
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
