package handler

import (
	"strings"

	"verigate/internal/identity/models"
	id "verigate/pkg/domain"
	dErrors "verigate/pkg/domain-errors"
)

// profileRef is embedded by every request that targets an existing profile.
type profileRef struct {
	ProfileID string `json:"profile_id"`

	parsedProfileID id.ProfileID
}

func (p *profileRef) validateProfileID() error {
	p.ProfileID = strings.TrimSpace(p.ProfileID)
	if p.ProfileID == "" {
		return dErrors.New(dErrors.CodeValidation, "profile_id is required")
	}
	parsed, err := id.ParseProfileID(p.ProfileID)
	if err != nil {
		return err
	}
	p.parsedProfileID = parsed
	return nil
}

// ParsedProfileID returns the validated profile ID.
func (p *profileRef) ParsedProfileID() id.ProfileID {
	return p.parsedProfileID
}

// PersonalInfoRequest is the HTTP request body for POST /identity/personal-info.
type PersonalInfoRequest struct {
	FullLegalName string `json:"full_legal_name"`
	DateOfBirth   string `json:"date_of_birth"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	Province      string `json:"province"`
	PostalCode    string `json:"postal_code"`
	PhoneNumber   string `json:"phone_number"`
	Email         string `json:"email"`
}

// Validate validates the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *PersonalInfoRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.FullLegalName = strings.TrimSpace(r.FullLegalName)
	r.DateOfBirth = strings.TrimSpace(r.DateOfBirth)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	r.Email = strings.TrimSpace(r.Email)

	if r.FullLegalName == "" {
		return dErrors.New(dErrors.CodeValidation, "full_legal_name is required")
	}
	if len(r.FullLegalName) > 200 {
		return dErrors.New(dErrors.CodeValidation, "full_legal_name must be at most 200 characters")
	}
	if r.DateOfBirth == "" {
		return dErrors.New(dErrors.CodeValidation, "date_of_birth is required")
	}
	if r.PhoneNumber == "" {
		return dErrors.New(dErrors.CodeValidation, "phone_number is required")
	}
	if r.Email != "" && !strings.Contains(r.Email, "@") {
		return dErrors.New(dErrors.CodeValidation, "email is malformed")
	}

	return nil
}

// ToDomain converts the validated request to domain personal info.
func (r *PersonalInfoRequest) ToDomain() models.PersonalInfo {
	return models.PersonalInfo{
		FullLegalName: r.FullLegalName,
		DateOfBirth:   r.DateOfBirth,
		StreetAddress: strings.TrimSpace(r.StreetAddress),
		City:          strings.TrimSpace(r.City),
		Province:      strings.TrimSpace(r.Province),
		PostalCode:    strings.TrimSpace(r.PostalCode),
		PhoneNumber:   r.PhoneNumber,
		Email:         r.Email,
	}
}

// SendOTPRequest is the HTTP request body for POST /identity/phone/otp/send.
type SendOTPRequest struct {
	profileRef
}

func (r *SendOTPRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return r.validateProfileID()
}

// VerifyOTPRequest is the HTTP request body for POST /identity/phone/otp/verify.
type VerifyOTPRequest struct {
	profileRef
	Code string `json:"code"`
}

func (r *VerifyOTPRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if err := r.validateProfileID(); err != nil {
		return err
	}
	r.Code = strings.TrimSpace(r.Code)
	if r.Code == "" {
		return dErrors.New(dErrors.CodeValidation, "code is required")
	}
	return nil
}

// DocumentTypeRequest is the HTTP request body for POST /identity/document/type.
type DocumentTypeRequest struct {
	profileRef
	DocumentType string `json:"document_type"`

	parsedDocumentType models.DocumentType
}

func (r *DocumentTypeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if err := r.validateProfileID(); err != nil {
		return err
	}

	parsed, ok := models.ParseDocumentType(strings.TrimSpace(r.DocumentType))
	if !ok {
		return dErrors.New(dErrors.CodeValidation, "document_type is not a supported document")
	}
	r.parsedDocumentType = parsed
	return nil
}

// ParsedDocumentType returns the validated document type.
func (r *DocumentTypeRequest) ParsedDocumentType() models.DocumentType {
	return r.parsedDocumentType
}

// DocumentUploadRequest is the HTTP request body for POST /identity/document/upload.
type DocumentUploadRequest struct {
	profileRef
	Side string `json:"side"`
}

func (r *DocumentUploadRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if err := r.validateProfileID(); err != nil {
		return err
	}

	r.Side = strings.TrimSpace(r.Side)
	if r.Side != string(models.SideFront) && r.Side != string(models.SideBack) {
		return dErrors.New(dErrors.CodeValidation, "side must be front or back")
	}
	return nil
}

// BiometricRequest is the HTTP request body for POST /identity/biometric/verify.
type BiometricRequest struct {
	profileRef
	CaptureRef string `json:"capture_ref"`
}

func (r *BiometricRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if err := r.validateProfileID(); err != nil {
		return err
	}
	r.CaptureRef = strings.TrimSpace(r.CaptureRef)
	if r.CaptureRef == "" {
		return dErrors.New(dErrors.CodeValidation, "capture_ref is required")
	}
	return nil
}
