package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/go-deeplink-shortener/internal/models"
)

// journalEntry is one line of the append-only journal. Deletes are recorded
// as entries with a DeletedAt timestamp so the full state can be replayed.
type journalEntry struct {
	ID                 int64      `json:"id"`
	RandomKey          string     `json:"random_key"`
	IOSDeepLink        string     `json:"ios_deep_link,omitempty"`
	IOSFallbackURL     string     `json:"ios_fallback_url,omitempty"`
	AndroidDeepLink    string     `json:"android_deep_link,omitempty"`
	AndroidFallbackURL string     `json:"android_fallback_url,omitempty"`
	DefaultFallbackURL string     `json:"default_fallback_url"`
	HashedValue        string     `json:"hashed_value"`
	WebhookURL         string     `json:"webhook_url,omitempty"`
	OGTitle            string     `json:"og_title,omitempty"`
	OGDescription      string     `json:"og_description,omitempty"`
	OGImageURL         string     `json:"og_image_url,omitempty"`
	IsActive           bool       `json:"is_active"`
	DeletedAt          *time.Time `json:"deleted_at,omitempty"`
}

// FileStorage is a MemoryStorage that journals every mutation to a file and
// replays the journal on startup. Meant for single-instance deployments
// without a database.
type FileStorage struct {
	*MemoryStorage

	mu     sync.Mutex
	file   *os.File
	logger *zap.Logger
}

// NewFileStorage opens (or creates) the journal at path and replays it.
func NewFileStorage(path string, logger *zap.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o770); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o660)
	if err != nil {
		return nil, fmt.Errorf("open storage file: %w", err)
	}

	mem, _ := CreateMemoryStorage()
	fs := &FileStorage{
		MemoryStorage: mem,
		file:          file,
		logger:        logger,
	}

	if err := fs.replay(); err != nil {
		file.Close()
		return nil, err
	}

	return fs, nil
}

func (fs *FileStorage) replay() error {
	scanner := bufio.NewScanner(fs.file)
	for scanner.Scan() {
		var entry journalEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			return fmt.Errorf("parse journal line: %w", err)
		}

		fs.apply(entry)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read journal: %w", err)
	}

	return nil
}

// apply installs a replayed entry directly into the in-memory state.
func (fs *FileStorage) apply(entry journalEntry) {
	mem := fs.MemoryStorage
	mem.mu.Lock()
	defer mem.mu.Unlock()

	if entry.DeletedAt != nil {
		if rec, exists := mem.records[entry.ID]; exists && rec.DeletedAt == nil {
			rec.DeletedAt = entry.DeletedAt
			delete(mem.byHash, rec.HashedValue)
		}
		return
	}

	rec := &models.URLRecord{
		ID:                 entry.ID,
		RandomKey:          entry.RandomKey,
		IOSDeepLink:        entry.IOSDeepLink,
		IOSFallbackURL:     entry.IOSFallbackURL,
		AndroidDeepLink:    entry.AndroidDeepLink,
		AndroidFallbackURL: entry.AndroidFallbackURL,
		DefaultFallbackURL: entry.DefaultFallbackURL,
		HashedValue:        entry.HashedValue,
		WebhookURL:         entry.WebhookURL,
		OGTitle:            entry.OGTitle,
		OGDescription:      entry.OGDescription,
		OGImageURL:         entry.OGImageURL,
		IsActive:           entry.IsActive,
	}

	mem.records[rec.ID] = rec
	mem.byHash[rec.HashedValue] = rec.ID
	if rec.ID >= mem.nextID {
		mem.nextID = rec.ID + 1
	}
}

func (fs *FileStorage) CreateOrFind(ctx context.Context, rec models.NewURLRecord) (*models.URLRecord, bool, error) {
	stored, created, err := fs.MemoryStorage.CreateOrFind(ctx, rec)
	if err != nil || !created {
		return stored, created, err
	}

	fs.journal(journalEntry{
		ID:                 stored.ID,
		RandomKey:          stored.RandomKey,
		IOSDeepLink:        stored.IOSDeepLink,
		IOSFallbackURL:     stored.IOSFallbackURL,
		AndroidDeepLink:    stored.AndroidDeepLink,
		AndroidFallbackURL: stored.AndroidFallbackURL,
		DefaultFallbackURL: stored.DefaultFallbackURL,
		HashedValue:        stored.HashedValue,
		WebhookURL:         stored.WebhookURL,
		OGTitle:            stored.OGTitle,
		OGDescription:      stored.OGDescription,
		OGImageURL:         stored.OGImageURL,
		IsActive:           stored.IsActive,
	})

	return stored, created, nil
}

func (fs *FileStorage) SoftDeleteBatch(ctx context.Context, ids []int64) error {
	if err := fs.MemoryStorage.SoftDeleteBatch(ctx, ids); err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, id := range ids {
		fs.journal(journalEntry{ID: id, DeletedAt: &now})
	}

	return nil
}

// journal appends an entry; a write failure is logged but does not fail the
// request, matching the best-effort role of the file backend.
func (fs *FileStorage) journal(entry journalEntry) {
	b, err := json.Marshal(entry)
	if err != nil {
		fs.logger.Error("cannot marshal journal entry", zap.Error(err))
		return
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if _, err := fs.file.Write(append(b, '\n')); err != nil {
		fs.logger.Error("cannot append journal entry", zap.Error(err))
	}
}

// Close flushes and closes the journal file.
func (fs *FileStorage) Close() error {
	return fs.file.Close()
}
