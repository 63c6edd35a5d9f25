package services_test

import (
	"context"
	"testing"

	"podhub/internal/models"
	"podhub/internal/repositories"
	"podhub/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchService_Search(t *testing.T) {
	ctx := context.Background()
	shows := new(MockShowRepository)
	episodes := new(MockEpisodeRepository)
	service := services.NewSearchService(shows, episodes)

	foundShows := []models.Show{{ID: "s1", Category: "Technology"}}
	foundEpisodes := []models.Episode{{ID: "e1", Title: "Tech news"}}
	shows.On("Search", ctx, "tech", repositories.MaxSearchResults).Return(foundShows, nil).Once()
	episodes.On("Search", ctx, "tech", repositories.MaxSearchResults).Return(foundEpisodes, nil).Once()

	result, err := service.Search(ctx, "tech")
	assert.NoError(t, err)
	assert.Equal(t, foundShows, result.Shows)
	assert.Equal(t, foundEpisodes, result.Episodes)
	shows.AssertExpectations(t)
	episodes.AssertExpectations(t)
}

func TestSearchService_EmptyQuery(t *testing.T) {
	shows := new(MockShowRepository)
	episodes := new(MockEpisodeRepository)
	service := services.NewSearchService(shows, episodes)

	_, err := service.Search(context.Background(), "")
	assert.ErrorIs(t, err, services.ErrValidation)
	shows.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchService_WhitespaceQuery(t *testing.T) {
	ctx := context.Background()
	shows := new(MockShowRepository)
	episodes := new(MockEpisodeRepository)
	shows.On("Search", ctx, " ", repositories.MaxSearchResults).Return([]models.Show{{ID: "s1", Title: "Two words"}}, nil).Once()
	episodes.On("Search", ctx, " ", repositories.MaxSearchResults).Return([]models.Episode{}, nil).Once()
	service := services.NewSearchService(shows, episodes)

	result, err := service.Search(ctx, " ")
	require.NoError(t, err)
	assert.Len(t, result.Shows, 1)
	shows.AssertExpectations(t)
	episodes.AssertExpectations(t)
}
