// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cryptbox Authors

package store

const (
	createUser = `INSERT INTO users (login, auth_digest, encryption_salt)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, auth_digest, encryption_salt, created_at;`

	findUserByLogin = `SELECT user_id, login, auth_digest, encryption_salt, created_at
    FROM users
    WHERE login = $1;`

	saveFile = `INSERT INTO files (
			file_id,
			user_id,
			body,
			filename,
			metadata
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at;`

	getFile = `SELECT
			file_id,
			user_id,
			body,
			filename,
			metadata,
			created_at,
			updated_at
		FROM files
		WHERE user_id = $1 AND file_id = $2 AND deleted = false;`

	softDeleteFile = `UPDATE files SET
			deleted    = true,
			updated_at = NOW()
		WHERE user_id = $1 AND file_id = $2 AND deleted = false;`

	purgeDeletedFiles = `DELETE FROM files
		WHERE deleted = true AND updated_at < $1;`
)
