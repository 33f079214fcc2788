package store

import (
	"context"
	"time"

	"github.com/cryptbox/cryptbox/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts on the server side. The server
// stores only the login, the per-user encryption salt, and a bcrypt hash
// of the client's auth digest — never passwords or key material.
type UserRepository interface {
	// CreateUser persists a new account and returns it with the
	// server-assigned UserID and CreatedAt. Returns
	// [ErrLoginAlreadyExists] when the login is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the account with the given login, or
	// [ErrNoUserWasFound].
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// FileRepository persists encrypted blobs on the server side. The three
// opaque values are stored verbatim; the repository has no notion of
// their contents.
type FileRepository interface {
	// SaveFile stores a new blob and returns it with server timestamps.
	// Returns [ErrFileAlreadyExists] if the file identifier is taken.
	SaveFile(ctx context.Context, file models.EncryptedFile) (models.EncryptedFile, error)

	// GetFile returns the live (non-deleted) blob owned by userID, or
	// [ErrFileNotFound].
	GetFile(ctx context.Context, userID int64, fileID string) (models.EncryptedFile, error)

	// ListFiles returns lightweight descriptors for the user's live blobs
	// in creation order.
	ListFiles(ctx context.Context, userID int64) ([]models.FileListing, error)

	// SoftDeleteFile marks the blob deleted. Returns [ErrFileNotFound] if
	// no live blob matched.
	SoftDeleteFile(ctx context.Context, userID int64, fileID string) error

	// PurgeDeleted permanently removes blobs soft-deleted before the
	// cutoff and reports how many were removed.
	PurgeDeleted(ctx context.Context, before time.Time) (int64, error)
}
