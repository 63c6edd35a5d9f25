package repositories

import (
	"context"

	"podhub/internal/models"
)

// ShowRepository defines the interface for show data access.
type ShowRepository interface {
	Create(ctx context.Context, show *models.Show) error
	GetByID(ctx context.Context, id string) (*models.Show, error)
	// GetOwned returns the show only if it exists and belongs to creatorID.
	GetOwned(ctx context.Context, id, creatorID string) (*models.Show, error)
	List(ctx context.Context, limit int) ([]models.Show, error)
	ListByCreator(ctx context.Context, creatorID string, limit int) ([]models.Show, error)
	Search(ctx context.Context, query string, limit int) ([]models.Show, error)
}
