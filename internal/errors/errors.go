package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a shopmate error code.
type ErrorCode string

const (
	ErrInvalidRequest  ErrorCode = "INVALID_REQUEST"   // 400
	ErrUnsupportedFile ErrorCode = "UNSUPPORTED_FILE"  // 400
	ErrEmptyDocument   ErrorCode = "EMPTY_DOCUMENT"    // 400
	ErrPayloadTooLarge ErrorCode = "PAYLOAD_TOO_LARGE" // 400 (mirrors the upload size gate)
	ErrNotFound        ErrorCode = "NOT_FOUND"         // 404
	ErrInternal        ErrorCode = "INTERNAL"          // 500
)

// ShopError represents a structured error with code, status, and details.
type ShopError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *ShopError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *ShopError {
	return &ShopError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewUnsupportedFile creates a 400 error for an upload with an unsupported content type.
func NewUnsupportedFile(contentType string) *ShopError {
	return &ShopError{
		Code:    ErrUnsupportedFile,
		Status:  400,
		Message: fmt.Sprintf("unsupported file type: %s", contentType),
		Details: map[string]any{"content_type": contentType},
	}
}

// NewEmptyDocument creates a 400 error when an uploaded document yields no text.
func NewEmptyDocument() *ShopError {
	return &ShopError{
		Code:    ErrEmptyDocument,
		Status:  400,
		Message: "no text found in document",
	}
}

// NewPayloadTooLarge creates a 400 error when an upload exceeds the size limit.
func NewPayloadTooLarge(maxBytes int64) *ShopError {
	return &ShopError{
		Code:    ErrPayloadTooLarge,
		Status:  400,
		Message: fmt.Sprintf("uploaded file exceeds maximum size of %d bytes", maxBytes),
		Details: map[string]any{"max_bytes": maxBytes},
	}
}

// NewNotFound creates a 404 error for a missing product or cart item.
func NewNotFound(kind string, id int64) *ShopError {
	return &ShopError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("%s not found: %d", kind, id),
		Details: map[string]any{"kind": kind, "id": id},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *ShopError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &ShopError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a ShopError with the given code.
// Wrapped ShopErrors are unwrapped first.
func Is(err error, code ErrorCode) bool {
	var sErr *ShopError
	if stderrors.As(err, &sErr) {
		return sErr.Code == code
	}
	return false
}
