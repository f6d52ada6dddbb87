package glapi

import (
	"encoding/json"
	"errors"
	"fmt"
)

// fallbackMessage is used when neither the backend body nor the transport
// error yields anything human-readable
const fallbackMessage = "unexpected error from the backend"

// APIError is the uniform shape of every failure surfaced by the client.
// Callers never see a raw transport error or backend body; they branch on
// Status if they care, or show Message.
type APIError struct {
	// Status is the HTTP status code, or 0 if no response was received
	// (network failure, timeout, request construction error)
	Status int
	// Message is always non-empty, resolved in priority order from the
	// backend's message field, its error field, the underlying error, and
	// finally a generic fallback
	Message string
	// Body is the raw backend response body, if any
	Body []byte
	// Err is the original underlying failure, kept for diagnostics
	Err error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// AsAPIError unwraps err into an *APIError if it is one
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// errorBody is the subset of a backend error payload the client understands.
// The error field is sometimes a bare string and sometimes an object with
// its own message/code, so it is decoded leniently.
type errorBody struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

type errorDetail struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// newTransportError normalizes a failure where no response was received
func newTransportError(err error) *APIError {
	msg := fallbackMessage
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	return &APIError{Status: 0, Message: msg, Err: err}
}

// newStatusError normalizes a non-2xx response into an APIError, extracting
// the most specific message the body offers
func newStatusError(status int, body []byte) *APIError {
	return &APIError{
		Status:  status,
		Message: extractMessage(body),
		Body:    body,
	}
}

func extractMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Message != "" {
			return eb.Message
		}
		if len(eb.Error) > 0 {
			var s string
			if err := json.Unmarshal(eb.Error, &s); err == nil && s != "" {
				return s
			}
			var detail errorDetail
			if err := json.Unmarshal(eb.Error, &detail); err == nil {
				if detail.Message != "" {
					return detail.Message
				}
				if detail.Code != "" {
					return detail.Code
				}
			}
		}
	}
	return fallbackMessage
}
