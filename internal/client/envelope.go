package client

import (
	"bytes"
	"encoding/json"
)

// envelope matches the backend's wrapped response shape. Some endpoints
// answer flat bodies instead, and the auth endpoints may return a bare JSON
// string; unwrap handles all three through one decode step.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// unwrap extracts the payload from a 2xx response body.
//
//   - wrapped `{success, message, data}` → the inner data field
//   - wrapped with success == false      → a normalized request error
//   - flat object / array / bare string  → the body unchanged
func unwrap(body []byte) (json.RawMessage, *APIError) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] != '{' {
		// Bare strings (auth token responses) and arrays pass through.
		return trimmed, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		// Not an object we understand; let the caller's decode decide.
		return trimmed, nil
	}
	if env.Success != nil && !*env.Success {
		msg := env.Message
		if msg == "" {
			msg = "Request failed. Please try again."
		}
		return nil, &APIError{Kind: KindRequest, Message: msg}
	}
	if env.Data != nil {
		return env.Data, nil
	}
	return trimmed, nil
}

// backendMessage pulls a human-readable message out of an error body,
// accepting both the `{message}` and `{error}` envelopes.
func backendMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(bytes.TrimSpace(body), &env); err != nil {
		return ""
	}
	if env.Message != "" {
		return env.Message
	}
	return env.Error
}
