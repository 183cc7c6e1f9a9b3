package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/marketplace_client/internal/apperrors"
	"github.com/SscSPs/marketplace_client/internal/core/domain"
	"github.com/SscSPs/marketplace_client/internal/repositories/memory"
	"github.com/stretchr/testify/suite"
)

type SearchProviderRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *memory.SearchProviderRepository
}

func (s *SearchProviderRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = memory.NewSearchProviderRepository()
}

func TestSearchProviderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SearchProviderRepositoryTestSuite))
}

func provider(id string, createdAt time.Time) domain.SearchProvider {
	return domain.SearchProvider{
		ID:          id,
		Name:        id,
		Listings:    "https://" + id + ".example.com/listings",
		AuditFields: domain.AuditFields{CreatedAt: createdAt, LastUpdatedAt: createdAt},
	}
}

func (s *SearchProviderRepositoryTestSuite) TestListOrdersByCreation() {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Require().NoError(s.repo.SaveSearchProvider(s.ctx, provider("b", t0.Add(time.Hour))))
	s.Require().NoError(s.repo.SaveSearchProvider(s.ctx, provider("a", t0.Add(2*time.Hour))))
	s.Require().NoError(s.repo.SaveSearchProvider(s.ctx, provider("c", t0)))

	list, err := s.repo.ListSearchProviders(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal("c", list[0].ID)
	s.Equal("b", list[1].ID)
	s.Equal("a", list[2].ID)
}

func (s *SearchProviderRepositoryTestSuite) TestSaveKeepsCreationTime() {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Require().NoError(s.repo.SaveSearchProvider(s.ctx, provider("a", t0)))

	updated := provider("a", t0.Add(time.Hour))
	updated.Name = "Renamed"
	s.Require().NoError(s.repo.SaveSearchProvider(s.ctx, updated))

	got, err := s.repo.FindSearchProviderByID(s.ctx, "a")
	s.Require().NoError(err)
	s.Equal("Renamed", got.Name)
	s.Equal(t0, got.CreatedAt)
}

func (s *SearchProviderRepositoryTestSuite) TestDeleteClearsDefaults() {
	s.Require().NoError(s.repo.SaveSearchProvider(s.ctx, provider("a", time.Now())))
	s.Require().NoError(s.repo.SetDefaultSearchProvider(s.ctx, domain.URLTypeListings, "a"))
	s.Require().NoError(s.repo.SetDefaultSearchProvider(s.ctx, domain.URLTypeTorListings, "ob1"))

	s.Require().NoError(s.repo.DeleteSearchProvider(s.ctx, "a"))

	_, err := s.repo.FindDefaultSearchProviderID(s.ctx, domain.URLTypeListings)
	s.ErrorIs(err, apperrors.ErrNotFound)
	id, err := s.repo.FindDefaultSearchProviderID(s.ctx, domain.URLTypeTorListings)
	s.Require().NoError(err)
	s.Equal("ob1", id)

	_, err = s.repo.FindSearchProviderByID(s.ctx, "a")
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ErrorIs(s.repo.DeleteSearchProvider(s.ctx, "a"), apperrors.ErrNotFound)
}

func (s *SearchProviderRepositoryTestSuite) TestUpdateMetadataNeverInserts() {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.ErrorIs(s.repo.UpdateSearchProviderMetadata(s.ctx, provider("ghost", t0)), apperrors.ErrNotFound)
	_, err := s.repo.FindSearchProviderByID(s.ctx, "ghost")
	s.ErrorIs(err, apperrors.ErrNotFound)

	stored := provider("a", t0)
	stored.Locked = true
	s.Require().NoError(s.repo.SaveSearchProvider(s.ctx, stored))

	update := provider("a", t0.Add(time.Hour))
	update.Name = "Renamed"
	update.Logo = "https://a.example.com/logo.png"
	s.Require().NoError(s.repo.UpdateSearchProviderMetadata(s.ctx, update))

	got, err := s.repo.FindSearchProviderByID(s.ctx, "a")
	s.Require().NoError(err)
	s.Equal("Renamed", got.Name)
	s.Equal("https://a.example.com/logo.png", got.Logo)
	s.True(got.Locked)
	s.Equal(t0, got.CreatedAt)
	s.Equal(t0.Add(time.Hour), got.LastUpdatedAt)
}
