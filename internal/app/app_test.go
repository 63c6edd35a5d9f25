package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"podhub/internal/config"
	"podhub/internal/repositories"
	"podhub/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDeps(t *testing.T) Dependencies {
	t.Helper()
	db, err := repositories.OpenDatabase(repositories.DriverSQLite,
		fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	blobs, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return Dependencies{
		Config: &config.Config{
			CORSOrigins:    "*",
			JWTSecret:      "test_jwt_secret",
			TokenTTL:       time.Minute,
			BcryptCost:     4,
			MaxUploadBytes: 1 << 20,
		},
		DB:    db,
		Blobs: blobs,
	}
}

func TestNewServerRequiresDependencies(t *testing.T) {
	deps := testDeps(t)

	missingDB := deps
	missingDB.DB = nil
	_, err := NewServer(missingDB)
	assert.Error(t, err)

	missingBlobs := deps
	missingBlobs.Blobs = nil
	_, err = NewServer(missingBlobs)
	assert.Error(t, err)

	emptySecret := deps
	emptySecret.Config = &config.Config{TokenTTL: time.Minute, MaxUploadBytes: 1}
	_, err = NewServer(emptySecret)
	assert.Error(t, err)
}

func TestHealthReportsClosedDatabase(t *testing.T) {
	deps := testDeps(t)
	server, err := NewServer(deps)
	require.NoError(t, err)

	resp, err := server.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	closeDB(t, deps.DB)

	resp, err = server.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "unhealthy", body["status"])
}

func TestCORSAllowsConfiguredOrigins(t *testing.T) {
	server, err := NewServer(testDeps(t))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://listener.example")
	resp, err := server.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func closeDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}
