package store

import (
	"context"
	"fmt"

	"github.com/cryptbox/cryptbox/internal/logger"
	"github.com/cryptbox/cryptbox/models"
)

type fileIndexRepository struct {
	*DB
	logger *logger.Logger
}

// NewFileIndexRepository constructs the SQLite-backed [FileIndexRepository].
func NewFileIndexRepository(db *DB, logger *logger.Logger) FileIndexRepository {
	return &fileIndexRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *fileIndexRepository) UpsertIndexEntry(ctx context.Context, userID int64, listing models.FileListing) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, upsertFileIndexEntry,
		listing.FileID,
		userID,
		listing.Filename,
		listing.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "fileIndexRepository.UpsertIndexEntry").
			Int64("user_id", userID).
			Str("file_id", listing.FileID).
			Msg("failed to upsert file index entry")
		return fmt.Errorf("failed to upsert file index entry (file_id=%s): %w", listing.FileID, err)
	}

	return nil
}

func (r *fileIndexRepository) ListIndex(ctx context.Context, userID int64) ([]models.FileListing, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listFileIndex, userID)
	if err != nil {
		log.Err(err).
			Str("func", "fileIndexRepository.ListIndex").
			Int64("user_id", userID).
			Msg("failed to query file index")
		return nil, fmt.Errorf("failed to query file index: %w", err)
	}
	defer rows.Close()

	var listings []models.FileListing
	for rows.Next() {
		var listing models.FileListing
		if err := rows.Scan(&listing.FileID, &listing.Filename, &listing.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan file index entry: %w", err)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate file index: %w", err)
	}

	return listings, nil
}

func (r *fileIndexRepository) DeleteIndexEntry(ctx context.Context, userID int64, fileID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteFileIndexEntry, userID, fileID); err != nil {
		log.Err(err).
			Str("func", "fileIndexRepository.DeleteIndexEntry").
			Int64("user_id", userID).
			Str("file_id", fileID).
			Msg("failed to delete file index entry")
		return fmt.Errorf("failed to delete file index entry (file_id=%s): %w", fileID, err)
	}

	return nil
}
