package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atinyakov/go-deeplink-shortener/internal/models"
	"github.com/atinyakov/go-deeplink-shortener/internal/storage"
)

var recordCols = []string{
	"id", "random_key", "ios_deep_link", "ios_fallback_url",
	"android_deep_link", "android_fallback_url", "default_fallback_url",
	"hashed_value", "webhook_url", "og_title", "og_description", "og_image_url",
	"is_active", "created_at", "updated_at", "deleted_at",
}

// Helper to set up a mock DB and repository
func setupMockDB(t *testing.T) (sqlmock.Sqlmock, *URLRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := CreateURLRepository(db, zap.NewNop())
	return mock, repo
}

func fullRow(id int64, hash string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(recordCols).AddRow(
		id, "AbXy", "app://ios", "https://apps.apple.com",
		"app://android", "https://play.google.com", "https://example.com",
		hash, "https://webhook.example.com", "Title", "Description",
		"https://example.com/image.png", true, now, now, nil,
	)
}

func newRecord(hash string) models.NewURLRecord {
	return models.NewURLRecord{
		RandomKey:          "AbXy",
		IOSDeepLink:        "app://ios",
		IOSFallbackURL:     "https://apps.apple.com",
		AndroidDeepLink:    "app://android",
		AndroidFallbackURL: "https://play.google.com",
		DefaultFallbackURL: "https://example.com",
		HashedValue:        hash,
		WebhookURL:         "https://webhook.example.com",
		OGTitle:            "Title",
		OGDescription:      "Description",
		OGImageURL:         "https://example.com/image.png",
		IsActive:           true,
	}
}

func TestCreateOrFindInserts(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(`INSERT INTO urls`).
		WillReturnRows(fullRow(1, "hash-1"))

	rec, created, err := repo.CreateOrFind(context.Background(), newRecord("hash-1"))

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(1), rec.ID)
	assert.Equal(t, "hash-1", rec.HashedValue)
	assert.True(t, rec.IsLive())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrFindReturnsExistingOnConflict(t *testing.T) {
	mock, repo := setupMockDB(t)

	// ON CONFLICT DO NOTHING returns no row, then the existing row is read back
	mock.ExpectQuery(`INSERT INTO urls`).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`(?s)SELECT .+ FROM urls.+WHERE hashed_value = \$1 AND deleted_at IS NULL`).
		WithArgs("hash-1").
		WillReturnRows(fullRow(7, "hash-1"))

	rec, created, err := repo.CreateOrFind(context.Background(), newRecord("hash-1"))

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(7), rec.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrFindHandlesUniqueViolation(t *testing.T) {
	mock, repo := setupMockDB(t)

	pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	mock.ExpectQuery(`INSERT INTO urls`).
		WillReturnError(pgErr)
	mock.ExpectQuery(`(?s)SELECT .+ FROM urls.+WHERE hashed_value = \$1 AND deleted_at IS NULL`).
		WithArgs("hash-1").
		WillReturnRows(fullRow(9, "hash-1"))

	rec, created, err := repo.CreateOrFind(context.Background(), newRecord("hash-1"))

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(9), rec.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrFindSurfacesStoreErrors(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(`INSERT INTO urls`).
		WillReturnError(errors.New("connection refused"))

	_, _, err := repo.CreateOrFind(context.Background(), newRecord("hash-1"))

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(`(?s)SELECT .+ FROM urls.+WHERE id = \$1 AND deleted_at IS NULL`).
		WithArgs(int64(42)).
		WillReturnRows(fullRow(42, "hash-42"))

	rec, err := repo.FindByID(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), rec.ID)
	assert.Equal(t, "https://example.com", rec.DefaultFallbackURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDNotFound(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(`(?s)SELECT .+ FROM urls.+WHERE id = \$1 AND deleted_at IS NULL`).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 42)

	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDForCache(t *testing.T) {
	mock, repo := setupMockDB(t)

	cacheCols := []string{
		"id", "random_key", "ios_deep_link", "ios_fallback_url",
		"android_deep_link", "android_fallback_url", "default_fallback_url",
		"webhook_url", "og_title", "og_description", "og_image_url", "is_active",
	}
	mock.ExpectQuery(`(?s)SELECT .+ FROM urls.+WHERE id = \$1 AND deleted_at IS NULL AND is_active = TRUE`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(cacheCols).AddRow(
			42, "AbXy", "app://ios", "", "", "", "https://example.com",
			"", "", "", "", true,
		))

	rec, err := repo.FindByIDForCache(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), rec.ID)
	assert.Equal(t, "AbXy", rec.RandomKey)
	assert.Equal(t, "app://ios", rec.IOSDeepLink)
	assert.Empty(t, rec.WebhookURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDForCacheNotFound(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(`SELECT (.+) FROM urls`).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByIDForCache(context.Background(), 42)

	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteBatch(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`(?s)UPDATE urls.+SET deleted_at = NOW\(\), updated_at = NOW\(\)`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`(?s)UPDATE urls.+SET deleted_at = NOW\(\), updated_at = NOW\(\)`).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.SoftDeleteBatch(context.Background(), []int64{1, 2})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteBatchRollsBackOnError(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE urls`).
		WithArgs(int64(1)).
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := repo.SoftDeleteBatch(context.Background(), []int64{1})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteBatchEmpty(t *testing.T) {
	mock, repo := setupMockDB(t)

	err := repo.SoftDeleteBatch(context.Background(), nil)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCount(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM urls WHERE deleted_at IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	n, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
