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

// AudioStore persists uploaded audio and hands back an opaque reference.
type AudioStore interface {
	Store(ctx context.Context, filename string, data []byte) (string, error)
	Delete(ctx context.Context, ref string) error
}

// EpisodeService handles business logic related to episodes. Authority over
// an episode is derived from ownership of its show.
type EpisodeService struct {
	episodes repositories.EpisodeRepository
	shows    repositories.ShowRepository
	audio    AudioStore
	events   EventPublisher
	log      *zap.Logger
}

// NewEpisodeService creates a new EpisodeService. events may be nil.
func NewEpisodeService(episodes repositories.EpisodeRepository, shows repositories.ShowRepository, audio AudioStore, events EventPublisher, log *zap.Logger) *EpisodeService {
	if log == nil {
		log = zap.NewNop()
	}
	return &EpisodeService{
		episodes: episodes,
		shows:    shows,
		audio:    audio,
		events:   events,
		log:      log,
	}
}

// ownedShow reports a foreign show exactly like a missing one.
func (s *EpisodeService) ownedShow(ctx context.Context, user *models.User, showID string) (*models.Show, error) {
	if err := RequireRole(user, models.RolePodcaster); err != nil {
		return nil, err
	}
	show, err := s.shows.GetOwned(ctx, showID, user.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("show not found or not owned by user: %w", ErrNotFound)
		}
		return nil, err
	}
	return show, nil
}

// CreateEpisode attaches an episode referencing already stored audio to a
// show owned by user.
func (s *EpisodeService) CreateEpisode(ctx context.Context, user *models.User, showID string, input models.EpisodeInput, audioRef string) (*models.Episode, error) {
	show, err := s.ownedShow(ctx, user, showID)
	if err != nil {
		return nil, err
	}
	return s.insert(ctx, user, show, input, audioRef)
}

// PublishEpisode checks ownership, stores the uploaded audio and creates the
// episode. The stored audio is removed again if the episode cannot be saved.
func (s *EpisodeService) PublishEpisode(ctx context.Context, user *models.User, showID string, input models.EpisodeInput, filename string, data []byte) (*models.Episode, error) {
	show, err := s.ownedShow(ctx, user, showID)
	if err != nil {
		return nil, err
	}

	ref, err := s.audio.Store(ctx, filename, data)
	if err != nil {
		return nil, err
	}

	episode, err := s.insert(ctx, user, show, input, ref)
	if err != nil {
		if delErr := s.audio.Delete(ctx, ref); delErr != nil {
			s.log.Warn("failed to remove orphaned audio", zap.String("ref", ref), zap.Error(delErr))
		}
		return nil, err
	}
	return episode, nil
}

func (s *EpisodeService) insert(ctx context.Context, user *models.User, show *models.Show, input models.EpisodeInput, audioRef string) (*models.Episode, error) {
	episode := &models.Episode{
		ShowID:      show.ID,
		Title:       input.Title,
		Description: input.Description,
		AudioFile:   audioRef,
	}
	if err := s.episodes.Create(ctx, episode); err != nil {
		return nil, fmt.Errorf("failed to create episode: %w", err)
	}

	publishEvent(s.events, s.log, ContentEvent{
		Type:       EventEpisodePublished,
		ShowID:     show.ID,
		EpisodeID:  episode.ID,
		OwnerID:    user.ID,
		Title:      episode.Title,
		OccurredAt: time.Now().UTC(),
	})
	return episode, nil
}

// ListEpisodes returns the episodes of a show.
func (s *EpisodeService) ListEpisodes(ctx context.Context, showID string) ([]models.Episode, error) {
	return s.episodes.ListByShow(ctx, showID, repositories.MaxListResults)
}

// ListAllEpisodes returns up to repositories.MaxListResults episodes.
func (s *EpisodeService) ListAllEpisodes(ctx context.Context) ([]models.Episode, error) {
	return s.episodes.List(ctx, repositories.MaxListResults)
}

// GetEpisode retrieves a single episode by its ID.
func (s *EpisodeService) GetEpisode(ctx context.Context, id string) (*models.Episode, error) {
	episode, err := s.episodes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("episode: %w", ErrNotFound)
		}
		return nil, err
	}
	return episode, nil
}
