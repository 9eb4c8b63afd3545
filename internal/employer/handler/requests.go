package handler

import (
	"strings"

	"verigate/internal/employer"
	"verigate/internal/employer/engine"
	dErrors "verigate/pkg/domain-errors"
)

// VerifyRequest is the HTTP request body for POST /employer/verify.
//
// BankDescriptor and AccountRef are both optional: a caller that already
// holds a payroll transaction description supplies it directly, otherwise
// the service pulls the linked account's feed. Neither being present is
// allowed — the linkage gate then reports REVIEW for lack of evidence.
type VerifyRequest struct {
	EmployerName         string `json:"employer_name"`
	EmployerAddress      string `json:"employer_address"`
	EmployerPhone        string `json:"employer_phone"`
	ApplicantHomeAddress string `json:"applicant_home_address"`
	JobTitle             string `json:"job_title"`
	IsRemote             bool   `json:"is_remote"`
	BankDescriptor       string `json:"bank_descriptor,omitempty"`
	AccountRef           string `json:"account_ref,omitempty"`
}

// Validate validates the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *VerifyRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	// Size validation (fail fast)
	if len(r.EmployerName) > 200 {
		return dErrors.New(dErrors.CodeValidation, "employer_name must be at most 200 characters")
	}
	if len(r.EmployerAddress) > 300 {
		return dErrors.New(dErrors.CodeValidation, "employer_address must be at most 300 characters")
	}
	if len(r.BankDescriptor) > 300 {
		return dErrors.New(dErrors.CodeValidation, "bank_descriptor must be at most 300 characters")
	}

	// Required fields. Phone, title, and addresses degrade into gate
	// verdicts rather than validation errors; only the name is mandatory.
	r.EmployerName = strings.TrimSpace(r.EmployerName)
	if r.EmployerName == "" {
		return dErrors.New(dErrors.CodeValidation, "employer_name is required")
	}

	r.EmployerAddress = strings.TrimSpace(r.EmployerAddress)
	r.EmployerPhone = strings.TrimSpace(r.EmployerPhone)
	r.ApplicantHomeAddress = strings.TrimSpace(r.ApplicantHomeAddress)
	r.JobTitle = strings.TrimSpace(r.JobTitle)
	r.BankDescriptor = strings.TrimSpace(r.BankDescriptor)
	r.AccountRef = strings.TrimSpace(r.AccountRef)

	return nil
}

// ToDomain converts the validated request to a domain request.
func (r *VerifyRequest) ToDomain() employer.VerifyRequest {
	return employer.VerifyRequest{
		Record: engine.EmployerRecord{
			EmployerName:         r.EmployerName,
			EmployerAddress:      r.EmployerAddress,
			EmployerPhone:        r.EmployerPhone,
			ApplicantHomeAddress: r.ApplicantHomeAddress,
			JobTitle:             r.JobTitle,
			IsRemote:             r.IsRemote,
		},
		BankDescriptor: r.BankDescriptor,
		AccountRef:     r.AccountRef,
	}
}
