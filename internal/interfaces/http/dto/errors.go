package dto

import "net/http"

// Error code constants
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeValidation is used when request validation fails
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// Resource and contract error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeInvalidSnapshot is used when the transaction snapshot is missing
	ErrCodeInvalidSnapshot = "INVALID_SNAPSHOT"
	// ErrCodeInvalidSale is used when a sale references no items
	ErrCodeInvalidSale = "INVALID_SALE"
	// ErrCodeInvalidAsOfDate is used when the valuation cutoff cannot be parsed
	ErrCodeInvalidAsOfDate = "INVALID_AS_OF_DATE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes. Domain error
// codes pass through unchanged so clients see the engine's taxonomy.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeValidation:  http.StatusBadRequest,
	ErrCodeInvalidJSON: http.StatusBadRequest,

	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeInvalidSnapshot: http.StatusBadRequest,
	ErrCodeInvalidSale:     http.StatusBadRequest,
	ErrCodeInvalidAsOfDate: http.StatusBadRequest,
}

// StatusForCode resolves the HTTP status for an error code, defaulting to 500
func StatusForCode(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
