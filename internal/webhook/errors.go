package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Error type discriminators the Stoat API is known to return.
const (
	errTypeNotAuthenticated = "NotAuthenticated"
	errTypeNotFound         = "NotFound"
	errTypeFailedValidation = "FailedValidation"
)

// APIErrorBody is the structured error object returned by the API on
// non-success statuses.
type APIErrorBody struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// APIError is a non-success response from the API. Decoded reports
// whether the response body was a valid APIErrorBody; when it is false,
// only StatusCode and Raw are meaningful.
type APIError struct {
	StatusCode int
	Body       APIErrorBody
	Raw        []byte
	Decoded    bool
}

func (e *APIError) Error() string {
	return e.FriendlyMessage()
}

// FriendlyMessage classifies the error body's type discriminator into a
// user-facing message. Unknown types fall back to a generic HTTP status
// line.
func (e *APIError) FriendlyMessage() string {
	if !e.Decoded {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, strings.TrimSpace(string(e.Raw)))
	}
	switch e.Body.Type {
	case errTypeNotAuthenticated:
		return "Invalid webhook token"
	case errTypeNotFound:
		return "Webhook not found - check if it exists and if the ID is correct"
	case errTypeFailedValidation:
		detail := e.Body.Error
		if detail == "" {
			detail = "unknown reason"
		}
		return fmt.Sprintf("Validation failed: %s.", detail)
	default:
		reason := e.Body.Type
		if reason == "" {
			reason = http.StatusText(e.StatusCode)
		}
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, reason)
	}
}

// classifyResponse turns a non-success HTTP response body into an
// APIError, decoding the structured error body when possible.
func classifyResponse(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Raw: body}
	var decoded APIErrorBody
	if err := json.Unmarshal(body, &decoded); err == nil {
		apiErr.Body = decoded
		apiErr.Decoded = true
	}
	return apiErr
}

// PrettyJSON renders a JSON document indented with sorted keys, falling
// back to the raw text when the input is not valid JSON.
func PrettyJSON(data []byte) string {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return strings.TrimSpace(string(data))
	}
	pretty, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return strings.TrimSpace(string(data))
	}
	return string(bytes.TrimSpace(pretty))
}
