package apiclient

import (
	"encoding/json"
	"fmt"
)

// ErrorKind classifies a failed backend call.
type ErrorKind int

const (
	// KindTransport means the request never produced an HTTP response
	// (connection refused, DNS failure, timeout, canceled context).
	KindTransport ErrorKind = iota

	// KindBackendDetail means the backend returned a non-success status
	// with a decodable {"detail": "..."} body; the message is the backend's
	// detail string verbatim.
	KindBackendDetail

	// KindUndecodable means the error body could not be parsed as JSON.
	KindUndecodable

	// KindStatusOnly means the error body parsed as JSON but carried no
	// detail field; the message is derived from the HTTP status code.
	KindStatusOnly
)

// genericFailureMessage is surfaced when an error body cannot be decoded.
const genericFailureMessage = "Request failed"

// APIError is the single error contract for all failed backend calls.
// Every non-success response yields exactly one *APIError; a call never
// returns both a value and an error.
type APIError struct {
	// StatusCode is the HTTP status of the failed response, or 0 for
	// transport failures.
	StatusCode int

	// Kind classifies how the error message was derived.
	Kind ErrorKind

	// Message is the normalized human-readable error message.
	Message string

	// err holds the underlying cause for transport failures.
	err error
}

// Error returns the normalized message exactly as derived, so callers can
// present it to the analyst unchanged.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying transport error, if any.
func (e *APIError) Unwrap() error {
	return e.err
}

// newTransportError wraps a failure that occurred before any HTTP response
// was received.
func newTransportError(err error) *APIError {
	return &APIError{
		Kind:    KindTransport,
		Message: fmt.Sprintf("request failed: %v", err),
		err:     err,
	}
}

// normalizeError converts a non-success HTTP response into an APIError.
//
// Normalization rules:
//   - body decodes as JSON with a non-empty "detail" field -> that detail
//     string verbatim
//   - body does not decode as JSON at all -> "Request failed"
//   - body decodes but has no detail -> "HTTP {status}"
func normalizeError(statusCode int, body []byte) *APIError {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return &APIError{
			StatusCode: statusCode,
			Kind:       KindUndecodable,
			Message:    genericFailureMessage,
		}
	}
	if payload.Detail != "" {
		return &APIError{
			StatusCode: statusCode,
			Kind:       KindBackendDetail,
			Message:    payload.Detail,
		}
	}
	return &APIError{
		StatusCode: statusCode,
		Kind:       KindStatusOnly,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
	}
}
