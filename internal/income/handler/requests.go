package handler

import (
	"strings"

	"verigate/internal/income"
	dErrors "verigate/pkg/domain-errors"
)

// EstimateRequest is the HTTP request body for POST /income/estimate.
// Amounts are integer cents.
type EstimateRequest struct {
	AccountRef           string `json:"account_ref"`
	DeclaredMonthlyCents int64  `json:"declared_monthly_cents"`
}

// Validate validates the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *EstimateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.AccountRef = strings.TrimSpace(r.AccountRef)
	if r.AccountRef == "" {
		return dErrors.New(dErrors.CodeValidation, "account_ref is required")
	}
	if r.DeclaredMonthlyCents <= 0 {
		return dErrors.New(dErrors.CodeValidation, "declared_monthly_cents must be positive")
	}

	return nil
}

// ToDomain converts the validated request to a domain request.
func (r *EstimateRequest) ToDomain() income.EstimateRequest {
	return income.EstimateRequest{
		AccountRef:           r.AccountRef,
		DeclaredMonthlyCents: r.DeclaredMonthlyCents,
	}
}
