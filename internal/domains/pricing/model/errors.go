package model

import (
	"errors"
	"fmt"
	"net/http"
)

// PricingError is the base error of the pricing domain
type PricingError struct {
	Code    string
	Message string
	Err     error
}

func (e *PricingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *PricingError) Unwrap() error {
	return e.Err
}

const (
	CodeTierNotFound      = "PRICING_TIER_NOT_FOUND"
	CodeTierAlreadyExists = "PRICING_TIER_ALREADY_EXISTS"
	CodeInvalidTier       = "INVALID_PRICING_TIER"
	CodeListTiers         = "LIST_PRICING_TIERS_ERROR"
	CodeSaveTier          = "SAVE_PRICING_TIER_ERROR"
	CodeDeleteTier        = "DELETE_PRICING_TIER_ERROR"
)

func NewTierNotFound(id string) *PricingError {
	return &PricingError{
		Code:    CodeTierNotFound,
		Message: fmt.Sprintf("Pricing tier '%s' not found", id),
	}
}

func NewTierAlreadyExists(id string) *PricingError {
	return &PricingError{
		Code:    CodeTierAlreadyExists,
		Message: fmt.Sprintf("Pricing tier '%s' already exists", id),
	}
}

func NewInvalidTier(err error) *PricingError {
	return &PricingError{
		Code:    CodeInvalidTier,
		Message: "Pricing tier is invalid",
		Err:     err,
	}
}

func NewListTiersError(err error) *PricingError {
	return &PricingError{Code: CodeListTiers, Message: "Failed to list pricing tiers", Err: err}
}

func NewSaveTierError(err error) *PricingError {
	return &PricingError{Code: CodeSaveTier, Message: "Failed to save pricing tier", Err: err}
}

func NewDeleteTierError(err error) *PricingError {
	return &PricingError{Code: CodeDeleteTier, Message: "Failed to delete pricing tier", Err: err}
}

func IsTierNotFound(err error) bool {
	var pErr *PricingError
	return errors.As(err, &pErr) && pErr.Code == CodeTierNotFound
}

func IsTierAlreadyExists(err error) bool {
	var pErr *PricingError
	return errors.As(err, &pErr) && pErr.Code == CodeTierAlreadyExists
}

// GetErrorResponse maps an error to status, message, code and details
func GetErrorResponse(err error) (int, string, string, interface{}) {
	var pErr *PricingError
	if !errors.As(err, &pErr) {
		return http.StatusInternalServerError, "Internal server error", "INTERNAL_ERROR", nil
	}

	switch pErr.Code {
	case CodeTierNotFound:
		return http.StatusNotFound, pErr.Message, pErr.Code, nil
	case CodeTierAlreadyExists:
		return http.StatusConflict, pErr.Message, pErr.Code, nil
	case CodeInvalidTier:
		var details interface{}
		if pErr.Err != nil {
			details = pErr.Err
		}
		return http.StatusBadRequest, pErr.Message, pErr.Code, details
	default:
		return http.StatusInternalServerError, pErr.Message, pErr.Code, nil
	}
}
