package apiclient

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RequestError is an HTTP error response from the remote API, already
// mapped to a user-facing message. Status is kept for callers that need
// to branch (tests, mostly); views only render Message.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string { return e.Message }

// NetworkError means the request went out but no response came back
// (connection refused, timeout, DNS failure).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network connection error, please check your connectivity"
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError means the remote API answered with a body that does not
// match the expected shape for the operation.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "unexpected response format from server" }

func (e *ParseError) Unwrap() error { return e.Err }

// UnknownError covers failures before a request could be constructed.
type UnknownError struct {
	Err error
}

func (e *UnknownError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "an unexpected error occurred"
}

func (e *UnknownError) Unwrap() error { return e.Err }

// errScope carries the per-entity wording used when the server gives us
// nothing better. Classification happens here and nowhere else; callers
// never inspect raw HTTP statuses.
type errScope struct {
	entity      string
	conflictMsg string
}

func (s errScope) classify(status int, body []byte) error {
	msg := serverMessage(body)
	switch status {
	case 400:
		if msg == "" {
			msg = "invalid request data"
		}
	case 401:
		msg = "authentication required"
	case 403:
		msg = "access forbidden"
	case 404:
		msg = s.entity + " not found"
	case 409:
		if msg == "" {
			msg = s.conflictMsg
		}
	case 500:
		msg = "server error occurred, please try again later"
	default:
		if msg == "" {
			msg = fmt.Sprintf("server error: %d", status)
		}
	}
	return &RequestError{Status: status, Message: msg}
}

// serverMessage pulls the optional {"message": ...} field out of an
// error body. Anything unparsable is treated as absent.
func serverMessage(body []byte) string {
	var eb struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	return strings.TrimSpace(eb.Message)
}
