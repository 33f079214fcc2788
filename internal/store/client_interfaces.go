package store

import (
	"context"

	"github.com/cryptbox/cryptbox/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// VaultEntryRepository is the low-level persistence for wrapped Master
// Keys on the client device. One record per user; create/read/delete
// only, no partial updates.
type VaultEntryRepository interface {
	// SaveEntry stores (or replaces) the user's wrapped-key record.
	SaveEntry(ctx context.Context, entry models.VaultEntry) error

	// GetEntry returns the user's record, or [ErrVaultEntryNotFound].
	GetEntry(ctx context.Context, userID int64) (models.VaultEntry, error)

	// DeleteEntry removes the user's record. Deleting a missing record is
	// not an error.
	DeleteEntry(ctx context.Context, userID int64) error

	// EntryExists reports whether a record exists for the user.
	EntryExists(ctx context.Context, userID int64) (bool, error)

	// ClearEntries removes every record in the vault table.
	ClearEntries(ctx context.Context) error
}

// FileIndexRepository is the client-side index of uploaded files: the
// file identifier and the still-encrypted filename, enough to render a
// listing without a metadata round-trip to the server.
type FileIndexRepository interface {
	UpsertIndexEntry(ctx context.Context, userID int64, listing models.FileListing) error
	ListIndex(ctx context.Context, userID int64) ([]models.FileListing, error)
	DeleteIndexEntry(ctx context.Context, userID int64, fileID string) error
}
