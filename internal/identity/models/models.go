// Package models defines the identity verification domain model: the
// applicant profile and the evidence collected across the KYC steps.
package models

import (
	"time"

	id "verigate/pkg/domain"
)

// DocumentType enumerates the accepted identity documents.
type DocumentType string

const (
	DocumentPassport        DocumentType = "passport"
	DocumentDriversLicense  DocumentType = "drivers-license"
	DocumentPRCard          DocumentType = "pr-card"
	DocumentProvincialID    DocumentType = "provincial-id"
	DocumentCitizenshipCard DocumentType = "citizenship-card"
)

// ParseDocumentType validates a wire-level document type.
func ParseDocumentType(s string) (DocumentType, bool) {
	switch DocumentType(s) {
	case DocumentPassport, DocumentDriversLicense, DocumentPRCard,
		DocumentProvincialID, DocumentCitizenshipCard:
		return DocumentType(s), true
	}
	return "", false
}

// RequiresBack reports whether the document has a back side to capture.
// Passports are single-sided.
func (d DocumentType) RequiresBack() bool {
	return d != DocumentPassport
}

// DocumentSide identifies which face of a document a capture shows.
type DocumentSide string

const (
	SideFront DocumentSide = "front"
	SideBack  DocumentSide = "back"
)

// VerificationResult is the terminal outcome of the identity flow.
type VerificationResult string

const (
	ResultVerified    VerificationResult = "verified"
	ResultStepUp      VerificationResult = "step-up"
	ResultUnderReview VerificationResult = "under-review"
	ResultFailed      VerificationResult = "failed"
)

// PersonalInfo is the applicant-declared portion of the profile.
type PersonalInfo struct {
	FullLegalName string
	DateOfBirth   string
	StreetAddress string
	City          string
	Province      string
	PostalCode    string
	PhoneNumber   string
	Email         string
}

// Profile accumulates one applicant's evidence as they move through the
// wizard. Steps write into it; finalization reads the whole thing.
type Profile struct {
	ID        id.ProfileID
	SessionID id.SessionID
	Personal  PersonalInfo

	PhoneVerified bool

	DocumentType DocumentType
	DocumentID   string
	FrontFileID  string
	BackFileID   string

	BiometricCaptureRef string

	Result      VerificationResult
	ReferenceID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasDocumentCaptures reports whether every required side has been uploaded.
func (p *Profile) HasDocumentCaptures() bool {
	if p.DocumentType == "" || p.FrontFileID == "" {
		return false
	}
	if p.DocumentType.RequiresBack() && p.BackFileID == "" {
		return false
	}
	return true
}
