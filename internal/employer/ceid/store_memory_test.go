package ceid

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"verigate/pkg/platform/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	ctx   context.Context
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.ctx = context.Background()
}

func (s *MemoryStoreSuite) TestGetMissingKey() {
	_, err := s.store.Get(s.ctx, "ceid-unknown")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestPutAndGet() {
	entry := Entry{CEID: "id-1", Address: "100 King St, Toronto"}
	s.Require().NoError(s.store.Put(s.ctx, "ceid-acme", entry))

	found, err := s.store.Get(s.ctx, "ceid-acme")
	s.Require().NoError(err)
	s.Equal(entry, found)
}

func (s *MemoryStoreSuite) TestPutOverwrites() {
	s.Require().NoError(s.store.Put(s.ctx, "ceid-acme", Entry{CEID: "id-1", Address: "a"}))
	s.Require().NoError(s.store.Put(s.ctx, "ceid-acme", Entry{CEID: "id-2", Address: "b"}))

	found, err := s.store.Get(s.ctx, "ceid-acme")
	s.Require().NoError(err)
	s.Equal("id-2", found.CEID)
	s.Equal("b", found.Address)
}
