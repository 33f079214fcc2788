package service

import (
	"context"
	"time"

	"github.com/cryptbox/cryptbox/internal/session"
	"github.com/cryptbox/cryptbox/models"
)

// ClientAuthService defines the client-side contract for account lifecycle
// and session establishment. All flows end in an unlocked [session.Session]
// holding the Master Key; the password itself never outlives the call.
type ClientAuthService interface {
	// Register creates a new account on the server. It generates a fresh
	// encryption salt, derives the Master Key from the password, computes
	// the auth digest, and sends only the salt and the digest over the
	// wire. Returns the unlocked session for the new account.
	Register(ctx context.Context, login, password string) (*session.Session, error)

	// Login authenticates against the server: it fetches the account's
	// encryption salt, re-derives the Master Key, computes the auth
	// digest, and exchanges it for a bearer token. Returns the unlocked
	// session.
	Login(ctx context.Context, login, password string) (*session.Session, error)

	// SaveToVault wraps the session's Master Key under sessionSecret and
	// persists it in the local vault, so the next unlock does not need
	// the account password.
	SaveToVault(ctx context.Context, sess *session.Session, sessionSecret string) error

	// UnlockFromVault recovers the Master Key from the local vault.
	// Returns vault.ErrWrongSecret for a bad secret and
	// store.ErrVaultEntryNotFound when no entry exists; callers fall back
	// to Login in the latter case.
	UnlockFromVault(ctx context.Context, userID int64, sessionSecret string) (*session.Session, error)

	// Logout closes the session, zeroing the Master Key. The vault entry,
	// if any, is left in place.
	Logout(sess *session.Session)
}

// TransferState is the lifecycle position of one item inside a batch.
type TransferState string

const (
	StatePending     TransferState = "pending"
	StateEncrypting  TransferState = "encrypting"
	StateUploading   TransferState = "uploading"
	StateDownloading TransferState = "downloading"
	StateComplete    TransferState = "complete"
	StateFailed      TransferState = "failed"
)

// TransferProgress is delivered to the progress callback on every state
// change of every item.
type TransferProgress struct {
	// FileID identifies the item. Empty during the Pending→Encrypting
	// span of an upload, before an identifier has been assigned.
	FileID string

	// Filename is the plaintext name when known (uploads), or empty for
	// downloads until the metadata has been decrypted.
	Filename string

	// State is the item's new state.
	State TransferState

	// Err is set only when State is StateFailed.
	Err error
}

// ProgressFunc receives transfer progress events. A nil ProgressFunc is
// valid and disables reporting.
type ProgressFunc func(TransferProgress)

// FileUpload is one plaintext file handed to the orchestrator.
type FileUpload struct {
	Filename string
	MIMEType string
	Body     []byte
}

// UploadResult is the outcome of one uploaded item.
type UploadResult struct {
	FileID   string
	Filename string
	Err      error
}

// DownloadResult is the outcome of one downloaded item. On success
// Metadata carries the decrypted record and Body the plaintext; on an
// undecryptable item Metadata degrades to the fallback record and Err
// reports the failure.
type DownloadResult struct {
	FileID   string
	Metadata models.FileMetadata
	Body     []byte
	Err      error
}

// RemoteFile is one entry of the decrypted remote listing.
type RemoteFile struct {
	FileID    string
	Filename  string
	CreatedAt time.Time
}

// TransferService is the upload/download orchestrator. Batches run
// strictly sequentially; cancellation is honoured between items, never
// mid-item, so completed items stay committed. A failed item is reported
// and the batch moves on.
type TransferService interface {
	Upload(ctx context.Context, sess *session.Session, files []FileUpload, progress ProgressFunc) ([]UploadResult, error)
	Download(ctx context.Context, sess *session.Session, fileIDs []string, progress ProgressFunc) ([]DownloadResult, error)

	// List fetches the remote listing, decrypts the filenames with the
	// session's Master Key, and refreshes the local file index.
	List(ctx context.Context, sess *session.Session) ([]RemoteFile, error)

	// ListLocal renders the listing from the local file index alone. No
	// server round-trip, so it works with a vault-unlocked offline
	// session; the index is only as fresh as the last List or Upload.
	ListLocal(ctx context.Context, sess *session.Session) ([]RemoteFile, error)

	// Delete removes the remote file and drops it from the local index.
	Delete(ctx context.Context, sess *session.Session, fileID string) error
}
