// Package dto defines the request and response shapes of the HTTP API.
package dto

import "github.com/ageumenezesDev19/DesPensa/internal/domain/catalog"

// APIError represents a structured error response.
// All error responses from the API use this format for consistency.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Common error codes
const (
	ErrCodeNotFound        = "not_found"
	ErrCodeBadRequest      = "bad_request"
	ErrCodeInvalidQuantity = "invalid_quantity"
	ErrCodeSearchTooLarge  = "search_too_large"
	ErrCodeInternalError   = "internal_error"
)

// NewAPIError creates a new APIError with the given code and message.
func NewAPIError(code, message string) APIError {
	return APIError{
		Code:    code,
		Message: message,
	}
}

// ImportRequest carries an already-parsed catalog to replace the
// current one.
type ImportRequest struct {
	Products []catalog.Product `json:"products"`
}

// CombinationRequest asks for a multi-item price match.
type CombinationRequest struct {
	TargetPrice float64  `json:"target_price"`
	UsedCodes   []string `json:"used_codes,omitempty"`
}

// CombinationResponse reports a successful combination match.
type CombinationResponse struct {
	Combination []catalog.Product `json:"combination"`
	Total       float64           `json:"total"`
	Diff        float64           `json:"diff"`
}

// WithdrawRequest asks to take quantity units of a product out of stock.
type WithdrawRequest struct {
	Code     string  `json:"code"`
	Quantity float64 `json:"quantity"`
}

// ExclusionRequest adds one exclusion term.
type ExclusionRequest struct {
	Term string `json:"term"`
}

// ExclusionsResponse lists the exclusion terms in insertion order.
type ExclusionsResponse struct {
	Terms []string `json:"terms"`
}
