package services

import (
	"context"
	"fmt"

	"podhub/internal/models"
	"podhub/internal/repositories"
)

// SearchService matches shows and episodes by plain substring.
type SearchService struct {
	shows    repositories.ShowRepository
	episodes repositories.EpisodeRepository
}

// NewSearchService creates a new SearchService.
func NewSearchService(shows repositories.ShowRepository, episodes repositories.EpisodeRepository) *SearchService {
	return &SearchService{
		shows:    shows,
		episodes: episodes,
	}
}

// Search returns shows and episodes containing query, case-insensitively,
// at most repositories.MaxSearchResults of each.
func (s *SearchService) Search(ctx context.Context, query string) (*models.SearchResult, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query must not be empty", ErrValidation)
	}

	shows, err := s.shows.Search(ctx, query, repositories.MaxSearchResults)
	if err != nil {
		return nil, err
	}
	episodes, err := s.episodes.Search(ctx, query, repositories.MaxSearchResults)
	if err != nil {
		return nil, err
	}
	return &models.SearchResult{Shows: shows, Episodes: episodes}, nil
}
