package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"podhub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMEpisodeRepository is a GORM implementation of EpisodeRepository.
type GORMEpisodeRepository struct {
	db *gorm.DB
}

// NewGORMEpisodeRepository creates a new instance of GORMEpisodeRepository.
func NewGORMEpisodeRepository(db *gorm.DB) *GORMEpisodeRepository {
	return &GORMEpisodeRepository{
		db: db,
	}
}

// Create creates a new episode in the database.
func (r *GORMEpisodeRepository) Create(ctx context.Context, episode *models.Episode) error {
	if episode.ID == "" {
		episode.ID = uuid.New().String()
	}
	if episode.CreatedAt.IsZero() {
		episode.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(episode).Error; err != nil {
		return fmt.Errorf("failed to create episode: %w", err)
	}
	return nil
}

// GetByID retrieves a single episode by its ID.
func (r *GORMEpisodeRepository) GetByID(ctx context.Context, id string) (*models.Episode, error) {
	var episode models.Episode
	if err := r.db.WithContext(ctx).First(&episode, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("episode with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get episode by ID %s: %w", id, err)
	}
	return &episode, nil
}

// List retrieves up to limit episodes across all shows.
func (r *GORMEpisodeRepository) List(ctx context.Context, limit int) ([]models.Episode, error) {
	episodes := []models.Episode{}
	if err := r.db.WithContext(ctx).Limit(limit).Find(&episodes).Error; err != nil {
		return nil, fmt.Errorf("failed to list episodes: %w", err)
	}
	return episodes, nil
}

// ListByShow retrieves up to limit episodes of a show.
func (r *GORMEpisodeRepository) ListByShow(ctx context.Context, showID string, limit int) ([]models.Episode, error) {
	episodes := []models.Episode{}
	err := r.db.WithContext(ctx).
		Where("show_id = ?", showID).
		Limit(limit).
		Find(&episodes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list episodes of show %s: %w", showID, err)
	}
	return episodes, nil
}

// Search matches query as a case-insensitive substring of title or
// description.
func (r *GORMEpisodeRepository) Search(ctx context.Context, query string, limit int) ([]models.Episode, error) {
	where, args := containsAny(r.db, query, "title", "description")
	episodes := []models.Episode{}
	err := r.db.WithContext(ctx).
		Where(where, args...).
		Limit(limit).
		Find(&episodes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search episodes: %w", err)
	}
	return episodes, nil
}
