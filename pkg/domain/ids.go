// Package domain holds typed identifiers shared across modules. Distinct
// types per entity make it a compile error to pass a session ID where a
// profile ID is expected.
package domain

import (
	"github.com/google/uuid"

	dErrors "verigate/pkg/domain-errors"
)

// SessionID identifies one wizard session (one applicant walking one flow).
type SessionID uuid.UUID

// ProfileID identifies a KYC applicant profile within a session.
type ProfileID uuid.UUID

// VerificationID identifies a single employer verification attempt.
type VerificationID uuid.UUID

func (id SessionID) String() string      { return uuid.UUID(id).String() }
func (id ProfileID) String() string      { return uuid.UUID(id).String() }
func (id VerificationID) String() string { return uuid.UUID(id).String() }

// NewSessionID mints a random session ID.
func NewSessionID() SessionID { return SessionID(uuid.New()) }

// NewProfileID mints a random profile ID.
func NewProfileID() ProfileID { return ProfileID(uuid.New()) }

// NewVerificationID mints a random verification ID.
func NewVerificationID() VerificationID { return VerificationID(uuid.New()) }

// ParseSessionID parses s, enforcing the invariant that IDs are valid,
// non-nil UUIDs at trust boundaries.
func ParseSessionID(s string) (SessionID, error) {
	parsed, err := parseUUID(s, "session_id")
	return SessionID(parsed), err
}

// ParseProfileID parses s into a ProfileID.
func ParseProfileID(s string) (ProfileID, error) {
	parsed, err := parseUUID(s, "profile_id")
	return ProfileID(parsed), err
}

// ParseVerificationID parses s into a VerificationID.
func ParseVerificationID(s string) (VerificationID, error) {
	parsed, err := parseUUID(s, "verification_id")
	return VerificationID(parsed), err
}

func parseUUID(s, field string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeValidation, field+" is required")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeValidation, field+" must be a valid UUID")
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeValidation, field+" must not be the nil UUID")
	}
	return parsed, nil
}
