package handler

import (
	"time"

	"verigate/internal/income"
)

// EstimateResponse is the HTTP response for POST /income/estimate.
type EstimateResponse struct {
	MonthlyMinCents int64     `json:"monthly_min_cents"`
	MonthlyMaxCents int64     `json:"monthly_max_cents"`
	PayFrequency    string    `json:"pay_frequency"`
	EmploymentType  string    `json:"employment_type"`
	Consistency     string    `json:"consistency"`
	EvaluatedAt     time.Time `json:"evaluated_at"`
}

// FromResult converts a domain EstimateResult to an HTTP response.
func FromResult(result *income.EstimateResult) *EstimateResponse {
	return &EstimateResponse{
		MonthlyMinCents: result.Estimate.MonthlyMinCents,
		MonthlyMaxCents: result.Estimate.MonthlyMaxCents,
		PayFrequency:    result.Estimate.PayFrequency,
		EmploymentType:  result.Estimate.EmploymentType,
		Consistency:     string(result.Consistency),
		EvaluatedAt:     result.EvaluatedAt,
	}
}
