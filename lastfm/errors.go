package lastfm

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid lastfm configuration")
	// ErrMissingParameter is matched by every MissingParameterError
	ErrMissingParameter = errors.New("missing required parameter")
	// ErrTransport is matched by every TransportError
	ErrTransport = errors.New("lastfm transport failure")
	// ErrUnexpectedResponse indicates a decoded body without the expected payload field
	ErrUnexpectedResponse = errors.New("unexpected response from lastfm")
)

// Last.fm API error codes.
const (
	CodeInvalidService    = 2
	CodeInvalidMethod     = 3
	CodeAuthFailed        = 4
	CodeInvalidParameters = 6
	CodeInvalidAPIKey     = 10
	CodeServiceOffline    = 11
	CodeTemporaryError    = 16
	CodeSuspendedAPIKey   = 26
	CodeRateLimited       = 29
)

// MissingParameterError is returned before any request is made when a
// caller omits an identifying field.
type MissingParameterError struct {
	Method Method
	Params []string
}

// Error implements the error interface
func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: missing required parameter(s): %s", e.Method, strings.Join(e.Params, ", "))
}

// Is reports ErrMissingParameter as a match
func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

// TransportError wraps a network, timeout or decoding failure. The
// underlying error is kept intact and reachable through errors.Unwrap.
type TransportError struct {
	Method     Method
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Method, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports ErrTransport as a match
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// APIError is a failure reported by Last.fm in the response body
type APIError struct {
	Method  Method
	Code    int
	Message string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("lastfm API error %d (%s): %s", e.Code, e.Method, e.Message)
}

// IsNotFound checks if the error indicates an unknown artist, album, track or tag
func (e *APIError) IsNotFound() bool {
	return e.Code == CodeInvalidParameters
}

// IsInvalidAPIKey checks if the key was rejected or suspended
func (e *APIError) IsInvalidAPIKey() bool {
	return e.Code == CodeInvalidAPIKey || e.Code == CodeSuspendedAPIKey
}

// IsRateLimited checks if the key exceeded its request quota
func (e *APIError) IsRateLimited() bool {
	return e.Code == CodeRateLimited
}

// IsTemporary checks if the same request may succeed later
func (e *APIError) IsTemporary() bool {
	switch e.Code {
	case CodeServiceOffline, CodeTemporaryError, CodeRateLimited:
		return true
	default:
		return false
	}
}
