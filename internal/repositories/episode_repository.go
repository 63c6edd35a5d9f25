package repositories

import (
	"context"

	"podhub/internal/models"
)

// EpisodeRepository defines the interface for episode data access.
type EpisodeRepository interface {
	Create(ctx context.Context, episode *models.Episode) error
	GetByID(ctx context.Context, id string) (*models.Episode, error)
	List(ctx context.Context, limit int) ([]models.Episode, error)
	ListByShow(ctx context.Context, showID string, limit int) ([]models.Episode, error)
	Search(ctx context.Context, query string, limit int) ([]models.Episode, error)
}
