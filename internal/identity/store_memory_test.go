package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"verigate/internal/identity/models"
	id "verigate/pkg/domain"
	"verigate/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	ctx   context.Context
	store *InMemoryStore
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewInMemoryStore()
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) newProfile() *models.Profile {
	return &models.Profile{
		ID:        id.NewProfileID(),
		SessionID: id.NewSessionID(),
		Personal:  models.PersonalInfo{FullLegalName: "Jordan Wells"},
	}
}

func (s *InMemoryStoreSuite) TestCreateAndGet() {
	profile := s.newProfile()
	s.Require().NoError(s.store.Create(s.ctx, profile))

	got, err := s.store.Get(s.ctx, profile.ID)
	s.Require().NoError(err)
	s.Equal(profile.ID, got.ID)
	s.Equal("Jordan Wells", got.Personal.FullLegalName)

	// The store hands back copies.
	got.Personal.FullLegalName = "tampered"
	again, err := s.store.Get(s.ctx, profile.ID)
	s.Require().NoError(err)
	s.Equal("Jordan Wells", again.Personal.FullLegalName)
}

func (s *InMemoryStoreSuite) TestCreateConflict() {
	profile := s.newProfile()
	s.Require().NoError(s.store.Create(s.ctx, profile))
	s.ErrorIs(s.store.Create(s.ctx, profile), sentinel.ErrConflict)
}

func (s *InMemoryStoreSuite) TestGetBySession() {
	profile := s.newProfile()
	s.Require().NoError(s.store.Create(s.ctx, profile))

	got, err := s.store.GetBySession(s.ctx, profile.SessionID)
	s.Require().NoError(err)
	s.Equal(profile.ID, got.ID)

	_, err = s.store.GetBySession(s.ctx, id.NewSessionID())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestResubmitReplacesSessionIndex() {
	first := s.newProfile()
	s.Require().NoError(s.store.Create(s.ctx, first))

	second := s.newProfile()
	second.SessionID = first.SessionID
	s.Require().NoError(s.store.Create(s.ctx, second))

	got, err := s.store.GetBySession(s.ctx, first.SessionID)
	s.Require().NoError(err)
	s.Equal(second.ID, got.ID)

	// The first profile is still reachable by ID.
	_, err = s.store.Get(s.ctx, first.ID)
	s.NoError(err)
}

func (s *InMemoryStoreSuite) TestUpdate() {
	profile := s.newProfile()
	s.Require().NoError(s.store.Create(s.ctx, profile))

	profile.PhoneVerified = true
	s.Require().NoError(s.store.Update(s.ctx, profile))

	got, err := s.store.Get(s.ctx, profile.ID)
	s.Require().NoError(err)
	s.True(got.PhoneVerified)

	missing := s.newProfile()
	s.ErrorIs(s.store.Update(s.ctx, missing), sentinel.ErrNotFound)
}
