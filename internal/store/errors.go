package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a user lookup by login matches no
	// record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrFileNotFound is returned when a blob lookup or delete matches no
	// live record for the requesting user.
	ErrFileNotFound = errors.New("file not found")

	// ErrFileAlreadyExists is returned when an upload reuses a file
	// identifier that is already stored.
	ErrFileAlreadyExists = errors.New("file already exists")

	// ErrVaultEntryNotFound is returned when no wrapped-key record exists
	// for the requested user.
	ErrVaultEntryNotFound = errors.New("vault entry not found")
)
