// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cryptbox Authors

package store

const (
	saveVaultEntry = `
		INSERT INTO vault_entries (
			user_id,
			storage_salt,
			nonce,
			wrapped_key,
			created_at
		) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			storage_salt = excluded.storage_salt,
			nonce        = excluded.nonce,
			wrapped_key  = excluded.wrapped_key,
			created_at   = excluded.created_at;`

	getVaultEntry = `
		SELECT
			user_id,
			storage_salt,
			nonce,
			wrapped_key,
			created_at
		FROM vault_entries
		WHERE user_id = $1;`

	deleteVaultEntry = `
		DELETE FROM vault_entries
		WHERE user_id = $1;`

	vaultEntryExists = `
		SELECT EXISTS (
			SELECT 1 FROM vault_entries WHERE user_id = $1
		);`

	clearVaultEntries = `
		DELETE FROM vault_entries;`

	upsertFileIndexEntry = `
		INSERT INTO file_index (
			file_id,
			user_id,
			filename,
			created_at
		) VALUES ($1, $2, $3, $4)
		ON CONFLICT (file_id) DO UPDATE SET
			filename   = excluded.filename,
			created_at = excluded.created_at;`

	listFileIndex = `
		SELECT
			file_id,
			filename,
			created_at
		FROM file_index
		WHERE user_id = $1
		ORDER BY created_at;`

	deleteFileIndexEntry = `
		DELETE FROM file_index
		WHERE user_id = $1 AND file_id = $2;`
)
