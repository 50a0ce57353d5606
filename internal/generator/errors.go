package generator

import "errors"

var (
	// message absent or empty
	ErrMissingMessage = errors.New("message is required")

	// chat session ID present without a function ID
	ErrFunctionIDRequired = errors.New("function ID is required for follow-ups")

	// follow-up target missing or not owned by the caller; deliberately
	// indistinguishable so existence does not leak
	ErrFunctionNotFound = errors.New("function not found")
)
