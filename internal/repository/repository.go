// Package repository implements the Store contract on top of PostgreSQL.
//
// The live-hash uniqueness invariant lives here, enforced by a partial unique
// index on hashed_value for rows that are not soft-deleted. CreateOrFind
// relies on it to stay race-free under concurrent duplicate submissions.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/atinyakov/go-deeplink-shortener/internal/models"
	"github.com/atinyakov/go-deeplink-shortener/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const recordColumns = `id, random_key, ios_deep_link, ios_fallback_url,
	android_deep_link, android_fallback_url, default_fallback_url,
	hashed_value, webhook_url, og_title, og_description, og_image_url,
	is_active, created_at, updated_at, deleted_at`

// InitDB opens the connection pool and bootstraps the schema.
func InitDB(dsn string, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS urls (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			random_key VARCHAR(4) NOT NULL,
			ios_deep_link TEXT NOT NULL DEFAULT '',
			ios_fallback_url TEXT NOT NULL DEFAULT '',
			android_deep_link TEXT NOT NULL DEFAULT '',
			android_fallback_url TEXT NOT NULL DEFAULT '',
			default_fallback_url TEXT NOT NULL,
			hashed_value VARCHAR(32) NOT NULL,
			webhook_url TEXT NOT NULL DEFAULT '',
			og_title TEXT NOT NULL DEFAULT '',
			og_description TEXT NOT NULL DEFAULT '',
			og_image_url TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);`,
		// One live row per hash; soft-deleted rows do not participate.
		`CREATE UNIQUE INDEX IF NOT EXISTS urls_hashed_value_live_idx
			ON urls (hashed_value) WHERE deleted_at IS NULL;`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("bootstrap schema: %w", err)
		}
	}

	logger.Info("database connected and schema ready")
	return db, nil
}

// URLRepository is the PostgreSQL-backed Store.
type URLRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func CreateURLRepository(db *sql.DB, logger *zap.Logger) *URLRepository {
	return &URLRepository{db: db, logger: logger}
}

// CreateOrFind inserts the record, or returns the live record that already
// carries the same hashed value. Under concurrent duplicate submissions
// exactly one caller observes created == true.
func (r *URLRepository) CreateOrFind(ctx context.Context, rec models.NewURLRecord) (*models.URLRecord, bool, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO urls (
			random_key, ios_deep_link, ios_fallback_url,
			android_deep_link, android_fallback_url, default_fallback_url,
			hashed_value, webhook_url, og_title, og_description,
			og_image_url, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (hashed_value) WHERE deleted_at IS NULL
		DO NOTHING
		RETURNING `+recordColumns+`;`,
		rec.RandomKey, rec.IOSDeepLink, rec.IOSFallbackURL,
		rec.AndroidDeepLink, rec.AndroidFallbackURL, rec.DefaultFallbackURL,
		rec.HashedValue, rec.WebhookURL, rec.OGTitle, rec.OGDescription,
		rec.OGImageURL, rec.IsActive,
	)

	inserted, err := scanRecord(row)
	if err == nil {
		return inserted, true, nil
	}

	if !errors.Is(err, sql.ErrNoRows) && !isUniqueViolation(err) {
		return nil, false, fmt.Errorf("insert url record: %w", err)
	}

	// The insert lost the race or hit an existing hash: return the survivor.
	existing, err := r.FindByHashedValue(ctx, rec.HashedValue)
	if err != nil {
		return nil, false, fmt.Errorf("read back url record after conflict: %w", err)
	}

	return existing, false, nil
}

func (r *URLRepository) FindByID(ctx context.Context, id int64) (*models.URLRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+`
		FROM urls
		WHERE id = $1 AND deleted_at IS NULL
		LIMIT 1;`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find url by id: %w", err)
	}

	return rec, nil
}

func (r *URLRepository) FindByHashedValue(ctx context.Context, hash string) (*models.URLRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+`
		FROM urls
		WHERE hashed_value = $1 AND deleted_at IS NULL
		LIMIT 1;`, hash)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find url by hash: %w", err)
	}

	return rec, nil
}

// FindByIDForCache selects only the redirect projection, skipping the hash
// and timestamps the cache never needs.
func (r *URLRepository) FindByIDForCache(ctx context.Context, id int64) (*models.CacheRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, random_key, ios_deep_link, ios_fallback_url,
			android_deep_link, android_fallback_url, default_fallback_url,
			webhook_url, og_title, og_description, og_image_url, is_active
		FROM urls
		WHERE id = $1 AND deleted_at IS NULL AND is_active = TRUE
		LIMIT 1;`, id)

	var rec models.CacheRecord
	err := row.Scan(
		&rec.ID, &rec.RandomKey, &rec.IOSDeepLink, &rec.IOSFallbackURL,
		&rec.AndroidDeepLink, &rec.AndroidFallbackURL, &rec.DefaultFallbackURL,
		&rec.WebhookURL, &rec.OGTitle, &rec.OGDescription, &rec.OGImageURL,
		&rec.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find url for cache: %w", err)
	}

	return &rec, nil
}

// SoftDeleteBatch marks the ids as deleted in a single transaction.
// A soft-deleted row never comes back; repeated deletes are no-ops.
func (r *URLRepository) SoftDeleteBatch(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete tx: %w", err)
	}

	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, `
			UPDATE urls
			SET deleted_at = NOW(), updated_at = NOW()
			WHERE id = $1 AND deleted_at IS NULL;`, id); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.logger.Error("rollback failed", zap.Error(rbErr))
			}
			return fmt.Errorf("soft delete url %d: %w", id, err)
		}
	}

	return tx.Commit()
}

func (r *URLRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM urls WHERE deleted_at IS NULL;`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count urls: %w", err)
	}

	return n, nil
}

func (r *URLRepository) PingContext(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.URLRecord, error) {
	var rec models.URLRecord
	var deletedAt sql.NullTime

	err := row.Scan(
		&rec.ID, &rec.RandomKey, &rec.IOSDeepLink, &rec.IOSFallbackURL,
		&rec.AndroidDeepLink, &rec.AndroidFallbackURL, &rec.DefaultFallbackURL,
		&rec.HashedValue, &rec.WebhookURL, &rec.OGTitle, &rec.OGDescription,
		&rec.OGImageURL, &rec.IsActive, &rec.CreatedAt, &rec.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return nil, err
	}

	if deletedAt.Valid {
		rec.DeletedAt = &deletedAt.Time
	}

	return &rec, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
