package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/cryptbox/cryptbox/internal/logger"
	"github.com/cryptbox/cryptbox/models"
	"github.com/jackc/pgerrcode"
)

// fileRepository is the PostgreSQL-backed implementation of
// [FileRepository]. The stored columns are opaque encoded ciphertext; the
// repository moves them between rows and models without interpretation.
type fileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFileRepository constructs a [FileRepository] backed by the provided
// database connection and logger.
func NewFileRepository(db *DB, logger *logger.Logger) FileRepository {
	logger.Debug().Msg("creating file repository")
	return &fileRepository{
		db:     db,
		logger: logger,
	}
}

func (r *fileRepository) SaveFile(ctx context.Context, file models.EncryptedFile) (models.EncryptedFile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, saveFile,
		file.FileID,
		file.UserID,
		file.Body,
		file.Filename,
		file.Metadata,
	)

	if err := row.Scan(&file.CreatedAt, &file.UpdatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.EncryptedFile{}, ErrFileAlreadyExists
		}

		log.Err(err).
			Str("func", "*fileRepository.SaveFile").
			Str("file_id", file.FileID).
			Int64("user_id", file.UserID).
			Msg("error: saving file failed")
		return models.EncryptedFile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return file, nil
}

func (r *fileRepository) GetFile(ctx context.Context, userID int64, fileID string) (models.EncryptedFile, error) {
	log := logger.FromContext(ctx)

	var file models.EncryptedFile
	row := r.db.QueryRowContext(ctx, getFile, userID, fileID)

	err := row.Scan(
		&file.FileID,
		&file.UserID,
		&file.Body,
		&file.Filename,
		&file.Metadata,
		&file.CreatedAt,
		&file.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.EncryptedFile{}, ErrFileNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*fileRepository.GetFile").
			Str("file_id", fileID).
			Int64("user_id", userID).
			Msg("error: file lookup failed")
		return models.EncryptedFile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return file, nil
}

// ListFiles builds the listing query with squirrel: the WHERE clause
// varies with the deleted filter and the dollar placeholders must stay in
// sync with it.
func (r *fileRepository) ListFiles(ctx context.Context, userID int64) ([]models.FileListing, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("file_id", "filename", "created_at").
		From("files").
		Where(sq.Eq{"user_id": userID, "deleted": false}).
		OrderBy("created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*fileRepository.ListFiles").
			Int64("user_id", userID).
			Msg("error: listing files failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var listings []models.FileListing
	for rows.Next() {
		var listing models.FileListing
		if err := rows.Scan(&listing.FileID, &listing.Filename, &listing.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan file listing: %w", err)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate file listings: %w", err)
	}

	return listings, nil
}

func (r *fileRepository) SoftDeleteFile(ctx context.Context, userID int64, fileID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, softDeleteFile, userID, fileID)
	if err != nil {
		log.Err(err).
			Str("func", "*fileRepository.SoftDeleteFile").
			Str("file_id", fileID).
			Int64("user_id", userID).
			Msg("error: soft delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrFileNotFound
	}

	return nil
}

func (r *fileRepository) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, purgeDeletedFiles, before)
	if err != nil {
		log.Err(err).
			Str("func", "*fileRepository.PurgeDeleted").
			Time("before", before).
			Msg("error: purge failed")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	return purged, nil
}
