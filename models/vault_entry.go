package models

import "time"

// VaultEntry is the per-user persisted record that keeps the Master Key
// available across sessions. The key is stored wrapped: it is encrypted
// with a storage key derived from a short-lived session secret, so the
// entry on its own is useless without that secret.
//
// StorageSalt and Nonce are deliberately separate fields: the salt feeds
// the key-derivation function, the nonce feeds the AEAD. They are
// unrelated random values and must never be conflated.
type VaultEntry struct {
	// UserID keys the entry; one entry per user.
	UserID int64

	// StorageSalt is the random salt used to derive the storage key from
	// the session secret at retrieval time.
	StorageSalt []byte

	// Nonce is the AEAD nonce used when wrapping the Master Key.
	Nonce []byte

	// WrappedKey is the Master Key encrypted under the derived storage key.
	WrappedKey []byte

	// CreatedAt records when the entry was stored.
	CreatedAt time.Time
}

// TableName returns the name of the database table
// associated with the VaultEntry model.
func (v VaultEntry) TableName() string {
	return "vault_entries"
}
