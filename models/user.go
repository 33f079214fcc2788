package models

import "time"

// User represents an account entity used for authentication and key
// derivation. Sensitive fields must never be exposed outside trusted
// boundaries: the server only ever receives the encryption salt and the
// auth digest, never the password and never any key material.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier.
	// Typically used during authentication.
	Login string `json:"login"`

	// EncryptionSalt is the per-user key-derivation salt, encoded with the
	// blob encoding. Generated once at registration, stored server-side in
	// the clear (it is not a secret), and fetched at login so the client
	// can re-derive the Master Key.
	EncryptionSalt string `json:"encryption_salt,omitempty"`

	// AuthDigest is the bounded-length digest of the password the server
	// verifies at login. It is structurally unrelated to the Master Key
	// and is the only password-derived value that ever leaves the client.
	AuthDigest string `json:"auth_digest,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
