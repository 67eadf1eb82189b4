// Package dto defines Data Transfer Objects for HTTP response handling.
//
// The products endpoint returns a bare JSON array for compatibility with
// existing clients; DTOs here cover the descriptor and error surfaces.
package dto

import (
	"net/http"
	"time"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
)

// ServiceInfo is the API descriptor returned by the root endpoint.
// @Description Service descriptor with available endpoints
type ServiceInfo struct {
	Message         string            `json:"message" example:"Renart Case Backend API"`
	Version         string            `json:"version" example:"1.0.0"`
	Endpoints       map[string]string `json:"endpoints"`
	GoldPriceSource string            `json:"goldPriceSource" example:"MetalpriceAPI (primary) → GoldAPI (secondary) → Fallback ($75/g)"`
	Status          string            `json:"status" example:"running"`
}

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string    `json:"error" example:"internal_error"`
	Message   string    `json:"message,omitempty" example:"An unexpected error occurred"`
	RequestID string    `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
}

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	default:
		return ErrCodeInternal
	}
}
