// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cryptbox Authors

// Package vault persists wrapped Master Keys on the client device so a
// user can unlock a session without re-entering the account password.
//
// The Master Key never touches disk in the clear: each stored entry
// wraps it under a storage key derived from a caller-supplied session
// secret and a fresh random salt. Retrieval with the wrong secret fails
// authentication and is reported as [ErrWrongSecret]; a missing entry is
// reported as [store.ErrVaultEntryNotFound]. Callers depend on that
// distinction to decide between re-prompting for the secret and falling
// back to a full password login.
package vault

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cryptbox/cryptbox/internal/crypto"
	"github.com/cryptbox/cryptbox/internal/logger"
	"github.com/cryptbox/cryptbox/internal/store"
	"github.com/cryptbox/cryptbox/models"
)

// ErrWrongSecret is returned by Retrieve when the vault entry exists but
// the session secret fails to unwrap it.
var ErrWrongSecret = errors.New("vault: wrong session secret")

//go:generate mockgen -source=vault.go -destination=../mock/vault_mock.go -package=mock

// Vault stores and recovers wrapped Master Keys keyed by user.
type Vault interface {
	Store(ctx context.Context, userID int64, sessionSecret string, master *crypto.MasterKey) error
	Retrieve(ctx context.Context, userID int64, sessionSecret string) (*crypto.MasterKey, error)
	Delete(ctx context.Context, userID int64) error
	Exists(ctx context.Context, userID int64) (bool, error)
	ClearAll(ctx context.Context) error
}

type vault struct {
	entries store.VaultEntryRepository
	logger  *logger.Logger
}

// New wires a Vault over the client-side entry repository.
func New(entries store.VaultEntryRepository, logger *logger.Logger) Vault {
	return &vault{
		entries: entries,
		logger:  logger,
	}
}

// Store wraps the Master Key under a key derived from the session secret
// and a fresh salt, then upserts the record. An existing entry for the
// user is replaced; the salt and nonce are never reused across writes.
func (v *vault) Store(ctx context.Context, userID int64, sessionSecret string, master *crypto.MasterKey) error {
	salt, err := crypto.GenerateSalt()
	if err != nil {
		return fmt.Errorf("vault: generate storage salt: %w", err)
	}

	storageKey, err := crypto.DeriveStorageKey(sessionSecret, salt)
	if err != nil {
		return fmt.Errorf("vault: derive storage key: %w", err)
	}
	defer storageKey.Zero()

	nonce, err := crypto.NewNonce()
	if err != nil {
		return fmt.Errorf("vault: generate nonce: %w", err)
	}

	wrapped, err := crypto.Seal(storageKey, nonce, master.ExportBytes())
	if err != nil {
		return fmt.Errorf("vault: wrap master key: %w", err)
	}

	entry := models.VaultEntry{
		UserID:      userID,
		StorageSalt: salt,
		Nonce:       nonce,
		WrappedKey:  wrapped,
		CreatedAt:   time.Now(),
	}

	if err := v.entries.SaveEntry(ctx, entry); err != nil {
		return fmt.Errorf("vault: persist entry: %w", err)
	}

	return nil
}

// Retrieve re-derives the storage key from the stored salt and unwraps
// the Master Key. A failed unwrap means the secret is wrong (or the
// record was tampered with); both collapse to [ErrWrongSecret].
func (v *vault) Retrieve(ctx context.Context, userID int64, sessionSecret string) (*crypto.MasterKey, error) {
	entry, err := v.entries.GetEntry(ctx, userID)
	if err != nil {
		return nil, err
	}

	storageKey, err := crypto.DeriveStorageKey(sessionSecret, entry.StorageSalt)
	if err != nil {
		return nil, fmt.Errorf("vault: derive storage key: %w", err)
	}
	defer storageKey.Zero()

	raw, err := crypto.Open(storageKey, entry.Nonce, entry.WrappedKey)
	if err != nil {
		if errors.Is(err, crypto.ErrAuthentication) {
			return nil, ErrWrongSecret
		}
		return nil, fmt.Errorf("vault: unwrap master key: %w", err)
	}

	master, err := crypto.MasterKeyFromBytes(raw)
	for i := range raw {
		raw[i] = 0
	}
	if err != nil {
		return nil, fmt.Errorf("vault: rebuild master key: %w", err)
	}

	return master, nil
}

func (v *vault) Delete(ctx context.Context, userID int64) error {
	return v.entries.DeleteEntry(ctx, userID)
}

func (v *vault) Exists(ctx context.Context, userID int64) (bool, error) {
	return v.entries.EntryExists(ctx, userID)
}

// ClearAll wipes every vault entry on the device. Used on logout-all and
// device handover; files on the server stay recoverable via password
// login.
func (v *vault) ClearAll(ctx context.Context) error {
	return v.entries.ClearEntries(ctx)
}
