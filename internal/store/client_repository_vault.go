package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cryptbox/cryptbox/internal/logger"
	"github.com/cryptbox/cryptbox/models"
)

type vaultEntryRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultEntryRepository constructs the SQLite-backed [VaultEntryRepository].
func NewVaultEntryRepository(db *DB, logger *logger.Logger) VaultEntryRepository {
	return &vaultEntryRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *vaultEntryRepository) SaveEntry(ctx context.Context, entry models.VaultEntry) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, saveVaultEntry,
		entry.UserID,
		entry.StorageSalt,
		entry.Nonce,
		entry.WrappedKey,
		entry.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "vaultEntryRepository.SaveEntry").
			Int64("user_id", entry.UserID).
			Msg("failed to execute upsert for vault entry")
		return fmt.Errorf("failed to save vault entry: %w", err)
	}

	return nil
}

func (r *vaultEntryRepository) GetEntry(ctx context.Context, userID int64) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	var entry models.VaultEntry
	row := r.DB.QueryRowContext(ctx, getVaultEntry, userID)
	err := row.Scan(
		&entry.UserID,
		&entry.StorageSalt,
		&entry.Nonce,
		&entry.WrappedKey,
		&entry.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultEntry{}, ErrVaultEntryNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "vaultEntryRepository.GetEntry").
			Int64("user_id", userID).
			Msg("failed to scan vault entry")
		return models.VaultEntry{}, fmt.Errorf("failed to query vault entry: %w", err)
	}

	return entry, nil
}

func (r *vaultEntryRepository) DeleteEntry(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteVaultEntry, userID); err != nil {
		log.Err(err).
			Str("func", "vaultEntryRepository.DeleteEntry").
			Int64("user_id", userID).
			Msg("failed to delete vault entry")
		return fmt.Errorf("failed to delete vault entry: %w", err)
	}

	return nil
}

func (r *vaultEntryRepository) EntryExists(ctx context.Context, userID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	row := r.DB.QueryRowContext(ctx, vaultEntryExists, userID)
	if err := row.Scan(&exists); err != nil {
		log.Err(err).
			Str("func", "vaultEntryRepository.EntryExists").
			Int64("user_id", userID).
			Msg("failed to check vault entry existence")
		return false, fmt.Errorf("failed to check vault entry existence: %w", err)
	}

	return exists, nil
}

func (r *vaultEntryRepository) ClearEntries(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, clearVaultEntries); err != nil {
		log.Err(err).
			Str("func", "vaultEntryRepository.ClearEntries").
			Msg("failed to clear vault entries")
		return fmt.Errorf("failed to clear vault entries: %w", err)
	}

	return nil
}
