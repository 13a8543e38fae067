package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound         = NewDomainError("NOT_FOUND", "Resource not found")
	ErrValidation       = NewDomainError("VALIDATION_FAILED", "Invalid input provided")
	ErrInvalidReference = NewDomainError("INVALID_REFERENCE", "Referenced resource does not exist")
	ErrInvalidState     = NewDomainError("INVALID_STATE", "Required supporting data is missing")
	ErrLocked           = NewDomainError("PRODUCT_LOCKED", "Product has sale movements and cannot be modified")
	ErrInvalidHierarchy = NewDomainError("INVALID_HIERARCHY", "Agent user hierarchy could not be resolved")
)

// Is reports whether target carries the same domain error code.
// This lets errors.Is match a detailed DomainError against its sentinel.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// CodeOf returns the domain error code for err, unwrapping as needed, or
// the empty string if no DomainError is in the chain.
func CodeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
