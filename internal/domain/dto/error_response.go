package dto

import "time"

// ErrorResponse is the standardized JSON body returned for fatal request
// failures (storage faults, panics). Validation problems never use this
// envelope; they travel inside the info.error field of a 200 response.
type ErrorResponse struct {
	Message      string    `json:"message"`                 // Human-readable summary
	ErrorDetails string    `json:"error_details,omitempty"` // Underlying error text, if any
	Timestamp    time.Time `json:"timestamp"`               // When the error was produced
}

// NewErrorResponse builds an ErrorResponse from a message and an optional
// underlying error.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

// Error implements the error interface so an ErrorResponse can be passed
// where an error is expected (e.g., gin's error list).
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}
