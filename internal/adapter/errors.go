package adapter

import "errors"

// ErrRequestFailure is the single failure kind surfaced to the UI. Every
// error below is reported wrapped in it.
var ErrRequestFailure = errors.New("request failed")

var (
	// ErrBaseURLNotSet is returned when no backend base URL is configured.
	ErrBaseURLNotSet = errors.New("backend base url is not set")
	// ErrUnexpectedStatus is returned for any non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrInvalidResponse is returned when the body is not the expected JSON.
	ErrInvalidResponse = errors.New("invalid response body")
	// ErrBackendReported is returned when a 2xx body carries an "error" field.
	ErrBackendReported = errors.New("backend reported an error")
)
