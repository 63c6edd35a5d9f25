package services_test

import (
	"context"
	"io"
	"log"
	"os"
	"testing"

	"podhub/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockShowRepository is a mock implementation of repositories.ShowRepository
type MockShowRepository struct {
	mock.Mock
}

func (m *MockShowRepository) Create(ctx context.Context, show *models.Show) error {
	args := m.Called(ctx, show)
	return args.Error(0)
}

func (m *MockShowRepository) GetByID(ctx context.Context, id string) (*models.Show, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Show), args.Error(1)
}

func (m *MockShowRepository) GetOwned(ctx context.Context, id, creatorID string) (*models.Show, error) {
	args := m.Called(ctx, id, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Show), args.Error(1)
}

func (m *MockShowRepository) List(ctx context.Context, limit int) ([]models.Show, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Show), args.Error(1)
}

func (m *MockShowRepository) ListByCreator(ctx context.Context, creatorID string, limit int) ([]models.Show, error) {
	args := m.Called(ctx, creatorID, limit)
	return args.Get(0).([]models.Show), args.Error(1)
}

func (m *MockShowRepository) Search(ctx context.Context, query string, limit int) ([]models.Show, error) {
	args := m.Called(ctx, query, limit)
	return args.Get(0).([]models.Show), args.Error(1)
}

// MockEpisodeRepository is a mock implementation of repositories.EpisodeRepository
type MockEpisodeRepository struct {
	mock.Mock
}

func (m *MockEpisodeRepository) Create(ctx context.Context, episode *models.Episode) error {
	args := m.Called(ctx, episode)
	return args.Error(0)
}

func (m *MockEpisodeRepository) GetByID(ctx context.Context, id string) (*models.Episode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Episode), args.Error(1)
}

func (m *MockEpisodeRepository) List(ctx context.Context, limit int) ([]models.Episode, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Episode), args.Error(1)
}

func (m *MockEpisodeRepository) ListByShow(ctx context.Context, showID string, limit int) ([]models.Episode, error) {
	args := m.Called(ctx, showID, limit)
	return args.Get(0).([]models.Episode), args.Error(1)
}

func (m *MockEpisodeRepository) Search(ctx context.Context, query string, limit int) ([]models.Episode, error) {
	args := m.Called(ctx, query, limit)
	return args.Get(0).([]models.Episode), args.Error(1)
}

// MockAudioStore is a mock implementation of services.AudioStore
type MockAudioStore struct {
	mock.Mock
}

func (m *MockAudioStore) Store(ctx context.Context, filename string, data []byte) (string, error) {
	args := m.Called(ctx, filename, data)
	return args.String(0), args.Error(1)
}

func (m *MockAudioStore) Delete(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}
