// Package types provides type definitions for the records and tool payloads
// used throughout the job portal server.
package types

// Failure codes returned in error envelopes.
const (
	CodeValidationError     = "VALIDATION_ERROR"
	CodeCreateProfileFailed = "CREATE_PROFILE_FAILED"
	CodeCreateJobFailed     = "CREATE_JOB_FAILED"
	CodeProfileNotFound     = "PROFILE_NOT_FOUND"
	CodeJobNotFound         = "JOB_NOT_FOUND"
	CodeDatabaseError       = "DATABASE_ERROR"
	CodeInternalError       = "INTERNAL_ERROR"
)

// ErrorObject describes why a tool call failed.
type ErrorObject struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ToolResponse is the uniform envelope every tool returns. Exactly one of
// Data and Error is set; build values only through Success and Failure so
// that invariant holds by construction.
type ToolResponse struct {
	Success bool         `json:"success"`
	Data    any          `json:"data"`
	Error   *ErrorObject `json:"error"`
}

// Success wraps a payload in a success envelope.
func Success(data any) ToolResponse {
	return ToolResponse{Success: true, Data: data}
}

// Failure builds an error envelope. At most one details value is honored.
func Failure(code, message string, details ...any) ToolResponse {
	errObj := &ErrorObject{Code: code, Message: message}
	if len(details) > 0 && details[0] != nil {
		errObj.Details = details[0]
	}
	return ToolResponse{Success: false, Error: errObj}
}
