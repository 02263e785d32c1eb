package api

import (
	"errors"
	"fmt"
)

// RequestError is returned when the backend answers with a non-2xx status.
// Message is the response body text, or "Error: <status>" when the body is
// empty.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

func newRequestError(status int, body string) *RequestError {
	msg := body
	if msg == "" {
		msg = fmt.Sprintf("Error: %d", status)
	}
	return &RequestError{StatusCode: status, Message: msg}
}

// AsRequestError unwraps err into a *RequestError if it holds one.
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}
