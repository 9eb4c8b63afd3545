package identity

import (
	"context"

	"verigate/internal/identity/models"
	id "verigate/pkg/domain"
)

// Store persists applicant profiles across wizard steps.
//
// Implementations return sentinel.ErrNotFound for missing profiles; services
// wrap that into domain errors.
type Store interface {
	Create(ctx context.Context, profile *models.Profile) error
	Get(ctx context.Context, profileID id.ProfileID) (*models.Profile, error)
	GetBySession(ctx context.Context, sessionID id.SessionID) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
}
