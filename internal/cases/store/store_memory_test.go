package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"ethub/internal/cases/models"
	hubmodels "ethub/internal/hub/models"
	"ethub/pkg/platform/sentinel"
	"ethub/pkg/requestcontext"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) TestFindByID() {
	s.Run("returns ErrNotFound when case does not exist", func() {
		_, err := s.store.FindByID(context.Background(), "missing")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("returns saved case with request time as last modified", func() {
		now := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
		ctx := requestcontext.WithTime(context.Background(), now)
		c := &models.Case{
			ID:               "1700000000000001",
			RespondentName:   "Acme Ltd",
			UserIDs:          []string{"user-1"},
			HubLinksStatuses: hubmodels.Statuses{hubmodels.LinkDocuments: hubmodels.StatusReadyToView},
		}
		s.Require().NoError(s.store.Save(ctx, c))

		found, err := s.store.FindByID(ctx, c.ID)
		s.Require().NoError(err)
		s.Equal("Acme Ltd", found.RespondentName)
		s.Equal(hubmodels.StatusReadyToView, found.HubLinksStatuses[hubmodels.LinkDocuments])
		s.True(found.LastModified.Equal(now))
	})
}

func (s *InMemoryStoreSuite) TestReturnedCasesAreIndependent() {
	ctx := context.Background()
	c := &models.Case{ID: "2", HubLinksStatuses: hubmodels.Statuses{hubmodels.LinkDocuments: hubmodels.StatusReadyToView}}
	s.Require().NoError(s.store.Save(ctx, c))

	first, err := s.store.FindByID(ctx, "2")
	s.Require().NoError(err)
	first.HubLinksStatuses[hubmodels.LinkDocuments] = hubmodels.StatusViewed
	c.HubLinksStatuses[hubmodels.LinkDocuments] = hubmodels.StatusCompleted

	second, err := s.store.FindByID(ctx, "2")
	s.Require().NoError(err)
	s.Equal(hubmodels.StatusReadyToView, second.HubLinksStatuses[hubmodels.LinkDocuments])
}
