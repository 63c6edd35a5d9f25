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

// GORMShowRepository is a GORM implementation of ShowRepository.
type GORMShowRepository struct {
	db *gorm.DB
}

// NewGORMShowRepository creates a new instance of GORMShowRepository.
func NewGORMShowRepository(db *gorm.DB) *GORMShowRepository {
	return &GORMShowRepository{
		db: db,
	}
}

// Create creates a new show in the database.
func (r *GORMShowRepository) Create(ctx context.Context, show *models.Show) error {
	if show.ID == "" {
		show.ID = uuid.New().String()
	}
	if show.CreatedAt.IsZero() {
		show.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(show).Error; err != nil {
		return fmt.Errorf("failed to create show: %w", err)
	}
	return nil
}

// GetByID retrieves a single show by its ID.
func (r *GORMShowRepository) GetByID(ctx context.Context, id string) (*models.Show, error) {
	var show models.Show
	if err := r.db.WithContext(ctx).First(&show, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("show with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get show by ID %s: %w", id, err)
	}
	return &show, nil
}

// GetOwned checks existence and ownership in one query so that callers
// cannot tell a foreign show from a missing one.
func (r *GORMShowRepository) GetOwned(ctx context.Context, id, creatorID string) (*models.Show, error) {
	var show models.Show
	err := r.db.WithContext(ctx).
		Where("id = ? AND creator_id = ?", id, creatorID).
		First(&show).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("show with ID %s owned by %s: %w", id, creatorID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get owned show %s: %w", id, err)
	}
	return &show, nil
}

// List retrieves up to limit shows.
func (r *GORMShowRepository) List(ctx context.Context, limit int) ([]models.Show, error) {
	shows := []models.Show{}
	if err := r.db.WithContext(ctx).Limit(limit).Find(&shows).Error; err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}
	return shows, nil
}

// ListByCreator retrieves up to limit shows created by creatorID.
func (r *GORMShowRepository) ListByCreator(ctx context.Context, creatorID string, limit int) ([]models.Show, error) {
	shows := []models.Show{}
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Limit(limit).
		Find(&shows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shows of creator %s: %w", creatorID, err)
	}
	return shows, nil
}

// Search matches query as a case-insensitive substring of title,
// description or category.
func (r *GORMShowRepository) Search(ctx context.Context, query string, limit int) ([]models.Show, error) {
	where, args := containsAny(r.db, query, "title", "description", "category")
	shows := []models.Show{}
	err := r.db.WithContext(ctx).
		Where(where, args...).
		Limit(limit).
		Find(&shows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search shows: %w", err)
	}
	return shows, nil
}
