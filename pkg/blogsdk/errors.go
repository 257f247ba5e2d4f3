package blogsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is the typed error returned by the client for non-2xx responses.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Code is the machine-readable error code from the body, when present.
	Code string

	// Description is the human-readable message from the body, when present.
	Description string

	// Fields holds field-keyed validation errors for validation failures.
	Fields map[string]string
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("blogsdk: %d %s: %s", e.StatusCode, e.Code, e.Description)
	}
	return fmt.Sprintf("blogsdk: unexpected status %d", e.StatusCode)
}

// parseErrorResponse builds an APIError from a response body, accepting both
// the plain error shape and the validation shape.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var validation ValidationErrorResponse
	if err := json.Unmarshal(body, &validation); err == nil && validation.Code != "" {
		apiErr.Code = validation.Code
		apiErr.Description = validation.Message
		apiErr.Fields = validation.Details
		return apiErr
	}

	var plain ErrorResponse
	if err := json.Unmarshal(body, &plain); err == nil && plain.Error != "" {
		apiErr.Code = plain.Error
		apiErr.Description = plain.ErrorDescription
	}

	return apiErr
}
