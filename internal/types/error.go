package types

import "fmt"

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NewValidationError builds a client-fault error for rejected input.
func NewValidationError(message string) *CustomError {
	return &CustomError{Code: 400, Message: message, Type: "validation"}
}

// NewConflictError builds an error for restrict-on-delete and duplicate
// identifier conflicts.
func NewConflictError(message string) *CustomError {
	return &CustomError{Code: 409, Message: message, Type: "conflict"}
}
