package models

import "time"

// EncryptedFile is the three-opaque-values wire and storage form of an
// uploaded file. Every string field is produced by the client's blob
// encoding over ciphertext; the server stores and returns these values
// without ever being able to interpret them.
type EncryptedFile struct {
	// FileID is the client-generated unique identifier of the file
	// (UUID v7). It is the only lookup key the server needs.
	FileID string `json:"file_id"`

	// UserID is the owner of the file. Populated server-side from the
	// authenticated request; never trusted from the client body.
	UserID int64 `json:"-"`

	// Body is the encoded ciphertext of the file contents, encrypted with
	// the one-time File Key.
	Body string `json:"body"`

	// Filename is the encoded ciphertext of the bare filename, encrypted
	// under the Master Key. Kept separate from Metadata so listings can
	// show names without a full metadata fetch.
	Filename string `json:"filename"`

	// Metadata is the encoded ciphertext of the serialized
	// [FileMetadata] record, encrypted under the Master Key.
	Metadata string `json:"metadata"`

	// CreatedAt is set by the server when the blob is first stored.
	CreatedAt time.Time `json:"created_at,omitzero"`

	// UpdatedAt is bumped by the server on every write.
	UpdatedAt time.Time `json:"updated_at,omitzero"`

	// Deleted marks the blob as soft-deleted. Soft-deleted blobs are
	// invisible to reads and are hard-deleted by the purge worker.
	Deleted bool `json:"-"`
}

// TableName returns the name of the database table
// associated with the EncryptedFile model.
func (f EncryptedFile) TableName() string {
	return "files"
}

// FileListing is the lightweight descriptor returned by the list endpoint:
// enough for the client to render a file list (after decrypting Filename)
// without downloading bodies or metadata.
type FileListing struct {
	// FileID identifies the file for a subsequent download or delete.
	FileID string `json:"file_id"`

	// Filename is the encoded encrypted filename, as stored.
	Filename string `json:"filename"`

	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}
