package apiclient

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// ErrUnauthorized matches any *APIError with status 401.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
	Stack      string
	// StatusOnly is set when the body carried no message and Message is the
	// HTTP status text.
	StatusOnly bool
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

type errorBody struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
	Stack   string          `json:"stack"`
}

func newAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: status}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Message = strings.TrimSpace(body.Message)
		apiErr.Stack = body.Stack
		if apiErr.Message == "" && len(body.Error) > 0 {
			var s string
			if json.Unmarshal(body.Error, &s) == nil {
				apiErr.Message = s
			} else {
				var nested struct {
					Message string `json:"message"`
				}
				if json.Unmarshal(body.Error, &nested) == nil {
					apiErr.Message = nested.Message
				}
			}
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
		apiErr.StatusOnly = true
	}
	return apiErr
}

// Message returns the server's message carried by err, or fallback when err
// did not come from the API.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
