package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"podhub/internal/models"
	"podhub/internal/repositories"
	"podhub/internal/services"
	"podhub/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type episodeFixture struct {
	episodes  *MockEpisodeRepository
	shows     *MockShowRepository
	audio     *MockAudioStore
	publisher *MockPublisher
	service   *services.EpisodeService
}

func newEpisodeFixture() *episodeFixture {
	f := &episodeFixture{
		episodes:  new(MockEpisodeRepository),
		shows:     new(MockShowRepository),
		audio:     new(MockAudioStore),
		publisher: new(MockPublisher),
	}
	f.service = services.NewEpisodeService(f.episodes, f.shows, f.audio, f.publisher, nil)
	return f
}

func TestEpisodeService_PublishEpisode(t *testing.T) {
	ctx := context.Background()
	f := newEpisodeFixture()

	show := &models.Show{ID: "show-1", CreatorID: podcaster.ID}
	input := models.EpisodeInput{Title: "E1", Description: "first"}
	data := []byte("RIFF")

	f.shows.On("GetOwned", ctx, show.ID, podcaster.ID).Return(show, nil).Once()
	f.audio.On("Store", ctx, "e1.wav", data).Return("0b7c9a52-3d38-4a4e-9f0c-4f0f3c1e2d11.wav", nil).Once()
	f.episodes.On("Create", ctx, mock.MatchedBy(func(e *models.Episode) bool {
		return e.ShowID == show.ID && e.AudioFile == "0b7c9a52-3d38-4a4e-9f0c-4f0f3c1e2d11.wav" && e.Title == "E1"
	})).Return(nil).Once()
	f.publisher.On("Publish", services.EventEpisodePublished, mock.Anything).Return(nil).Once()

	episode, err := f.service.PublishEpisode(ctx, podcaster, show.ID, input, "e1.wav", data)
	assert.NoError(t, err)
	require.NotNil(t, episode)
	assert.Nil(t, episode.Duration)
	f.shows.AssertExpectations(t)
	f.audio.AssertExpectations(t)
	f.episodes.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestEpisodeService_PublishEpisode_ListenerForbidden(t *testing.T) {
	f := newEpisodeFixture()

	_, err := f.service.PublishEpisode(context.Background(), listener, "show-1", models.EpisodeInput{Title: "E"}, "a.mp3", []byte("x"))
	assert.ErrorIs(t, err, services.ErrForbidden)
	f.shows.AssertNotCalled(t, "GetOwned", mock.Anything, mock.Anything, mock.Anything)
	f.audio.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
}

func TestEpisodeService_ForeignShowIsNotFound(t *testing.T) {
	ctx := context.Background()
	f := newEpisodeFixture()

	f.shows.On("GetOwned", ctx, "show-2", podcaster.ID).
		Return(nil, fmt.Errorf("show with ID show-2 owned by %s: %w", podcaster.ID, repositories.ErrNotFound)).Twice()

	_, err := f.service.PublishEpisode(ctx, podcaster, "show-2", models.EpisodeInput{Title: "E"}, "a.mp3", []byte("x"))
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.NotErrorIs(t, err, services.ErrForbidden)

	_, err = f.service.CreateEpisode(ctx, podcaster, "show-2", models.EpisodeInput{Title: "E"}, "ref.mp3")
	assert.ErrorIs(t, err, services.ErrNotFound)

	f.audio.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
	f.shows.AssertExpectations(t)
}

func TestEpisodeService_PublishEpisode_UnsupportedType(t *testing.T) {
	ctx := context.Background()
	f := newEpisodeFixture()

	show := &models.Show{ID: "show-1", CreatorID: podcaster.ID}
	f.shows.On("GetOwned", ctx, show.ID, podcaster.ID).Return(show, nil).Once()
	f.audio.On("Store", ctx, "track.exe", mock.Anything).Return("", storage.ErrUnsupportedType).Once()

	_, err := f.service.PublishEpisode(ctx, podcaster, show.ID, models.EpisodeInput{Title: "E"}, "track.exe", []byte("MZ"))
	assert.ErrorIs(t, err, storage.ErrUnsupportedType)
	f.episodes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEpisodeService_PublishEpisode_RemovesAudioOnInsertFailure(t *testing.T) {
	ctx := context.Background()
	f := newEpisodeFixture()

	show := &models.Show{ID: "show-1", CreatorID: podcaster.ID}
	f.shows.On("GetOwned", ctx, show.ID, podcaster.ID).Return(show, nil).Once()
	f.audio.On("Store", ctx, "a.ogg", mock.Anything).Return("ref.ogg", nil).Once()
	f.episodes.On("Create", ctx, mock.AnythingOfType("*models.Episode")).Return(errors.New("database error")).Once()
	f.audio.On("Delete", ctx, "ref.ogg").Return(nil).Once()

	_, err := f.service.PublishEpisode(ctx, podcaster, show.ID, models.EpisodeInput{Title: "E"}, "a.ogg", []byte("x"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	f.audio.AssertExpectations(t)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestEpisodeService_Queries(t *testing.T) {
	ctx := context.Background()
	f := newEpisodeFixture()

	byShow := []models.Episode{{ID: "e1", ShowID: "show-1"}}
	all := []models.Episode{{ID: "e1"}, {ID: "e2"}}
	f.episodes.On("ListByShow", ctx, "show-1", repositories.MaxListResults).Return(byShow, nil).Once()
	f.episodes.On("List", ctx, repositories.MaxListResults).Return(all, nil).Once()
	f.episodes.On("GetByID", ctx, "e1").Return(&all[0], nil).Once()
	f.episodes.On("GetByID", ctx, "missing").Return(nil, fmt.Errorf("episode with ID missing: %w", repositories.ErrNotFound)).Once()

	got, err := f.service.ListEpisodes(ctx, "show-1")
	assert.NoError(t, err)
	assert.Equal(t, byShow, got)

	got, err = f.service.ListAllEpisodes(ctx)
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	episode, err := f.service.GetEpisode(ctx, "e1")
	assert.NoError(t, err)
	assert.Equal(t, "e1", episode.ID)

	_, err = f.service.GetEpisode(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
	f.episodes.AssertExpectations(t)
}
