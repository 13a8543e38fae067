package dto

import "net/http"

// Boundary error codes for failures that originate in the HTTP layer
// rather than the domain
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps domain and boundary error codes to HTTP status
// codes. PRODUCT_LOCKED is a 409: the product exists but its irreversible
// sale history forbids the requested change.
var ErrorCodeHTTPStatus = map[string]int{
	"NOT_FOUND":         http.StatusNotFound,
	"VALIDATION_FAILED": http.StatusBadRequest,
	"INVALID_REFERENCE": http.StatusUnprocessableEntity,
	"INVALID_STATE":     http.StatusUnprocessableEntity,
	"PRODUCT_LOCKED":    http.StatusConflict,
	"INVALID_HIERARCHY": http.StatusUnprocessableEntity,

	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeInternal:     http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting to
// 500 for unknown codes
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
