package models

// FileMetadata is the plaintext form of the per-file metadata record. It is
// serialized to JSON and encrypted as a single opaque blob under the Master
// Key before it leaves the client; the server only ever sees the encrypted
// form carried by [EncryptedFile.Metadata].
type FileMetadata struct {
	// Filename is the original name of the uploaded file.
	Filename string `json:"filename"`

	// Size is the plaintext length of the file body in bytes.
	Size int64 `json:"size"`

	// MIMEType is the content type reported by the caller at upload time.
	MIMEType string `json:"mime_type"`

	// WrappedFileKey is the one-time File Key encrypted under the Master
	// Key. Carried inside the metadata record so a single metadata
	// decrypt yields everything needed to decrypt the body.
	WrappedFileKey []byte `json:"wrapped_file_key"`

	// BodyNonce is the AEAD nonce used to encrypt the file body with the
	// File Key. Distinct from KeyNonce; the two encryptions are
	// independent operations.
	BodyNonce []byte `json:"body_nonce"`

	// KeyNonce is the AEAD nonce used to wrap the File Key with the
	// Master Key.
	KeyNonce []byte `json:"key_nonce"`
}
