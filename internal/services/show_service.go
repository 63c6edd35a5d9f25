package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"podhub/internal/models"
	"podhub/internal/repositories"

	"go.uber.org/zap"
)

// ShowService handles business logic related to shows.
type ShowService struct {
	repo   repositories.ShowRepository
	events EventPublisher
	log    *zap.Logger
}

// NewShowService creates a new ShowService. events may be nil.
func NewShowService(repo repositories.ShowRepository, events EventPublisher, log *zap.Logger) *ShowService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ShowService{
		repo:   repo,
		events: events,
		log:    log,
	}
}

// CreateShow creates a show owned by user. Only podcasters may create shows.
func (s *ShowService) CreateShow(ctx context.Context, user *models.User, input models.ShowInput) (*models.Show, error) {
	if err := RequireRole(user, models.RolePodcaster); err != nil {
		return nil, err
	}

	show := &models.Show{
		Title:       input.Title,
		Description: input.Description,
		CreatorID:   user.ID,
		Category:    input.Category,
	}
	if err := s.repo.Create(ctx, show); err != nil {
		return nil, fmt.Errorf("failed to create show: %w", err)
	}

	publishEvent(s.events, s.log, ContentEvent{
		Type:       EventShowCreated,
		ShowID:     show.ID,
		OwnerID:    user.ID,
		Title:      show.Title,
		OccurredAt: time.Now().UTC(),
	})
	return show, nil
}

// ListShows returns up to repositories.MaxListResults shows.
func (s *ShowService) ListShows(ctx context.Context) ([]models.Show, error) {
	return s.repo.List(ctx, repositories.MaxListResults)
}

// ListOwnedShows returns the shows created by user.
func (s *ShowService) ListOwnedShows(ctx context.Context, user *models.User) ([]models.Show, error) {
	if err := RequireRole(user, models.RolePodcaster); err != nil {
		return nil, err
	}
	return s.repo.ListByCreator(ctx, user.ID, repositories.MaxListResults)
}

// GetShow retrieves a single show by its ID.
func (s *ShowService) GetShow(ctx context.Context, id string) (*models.Show, error) {
	show, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("show: %w", ErrNotFound)
		}
		return nil, err
	}
	return show, nil
}
