// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cryptbox Authors

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptbox/cryptbox/models"
)

const testHashKey = "test-secret-key"

func TestHash_MatchesDirectHMAC(t *testing.T) {
	InitHasherPool(testHashKey)

	data := []byte("test-data")

	sum1 := Hash(data)
	sum2 := Hash(data)

	require.NotEmpty(t, sum1)
	assert.Equal(t, sum1, sum2, "hash must be deterministic for the same input")

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(data)
	assert.Equal(t, mac.Sum(nil), sum1)
}

func TestHash_UploadPayload(t *testing.T) {
	InitHasherPool(testHashKey)

	req := models.UploadRequest{
		FileID:   "a1b2c3",
		Body:     "encoded-encrypted-body",
		Filename: "encoded-encrypted-filename",
		Metadata: "encoded-encrypted-metadata",
	}

	payload, err := json.Marshal(req.PayloadFields())
	require.NoError(t, err)

	got := hex.EncodeToString(Hash(payload))

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(payload)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), got)
}

func TestHash_DifferentPayloadsDiffer(t *testing.T) {
	InitHasherPool(testHashKey)

	p1, _ := json.Marshal(models.UploadRequest{FileID: "f-1", Body: "blob-1"}.PayloadFields())
	p2, _ := json.Marshal(models.UploadRequest{FileID: "f-2", Body: "blob-2"}.PayloadFields())

	assert.NotEqual(t, hex.EncodeToString(Hash(p1)), hex.EncodeToString(Hash(p2)))
}

func TestHash_DifferentKeysDiffer(t *testing.T) {
	payload, _ := json.Marshal(models.UploadRequest{FileID: "f-1", Body: "blob"}.PayloadFields())

	InitHasherPool("key-one")
	hash1 := hex.EncodeToString(Hash(payload))

	InitHasherPool("key-two")
	hash2 := hex.EncodeToString(Hash(payload))

	assert.NotEqual(t, hash1, hash2)
}

// Clients on other platforms may emit JSON fields in a different order.
// The integrity middleware therefore never hashes the raw request bytes:
// it decodes into UploadRequest and re-marshals PayloadFields, which
// normalizes field order. This test pins that normalization down.
func TestHash_FieldOrderNormalizedByRemarshal(t *testing.T) {
	InitHasherPool(testHashKey)

	json1 := []byte(`{"file_id":"f-1","body":"blob","filename":"n","metadata":"m"}`)
	json2 := []byte(`{"metadata":"m","body":"blob","filename":"n","file_id":"f-1"}`)

	var req1, req2 models.UploadRequest
	require.NoError(t, json.Unmarshal(json1, &req1))
	require.NoError(t, json.Unmarshal(json2, &req2))

	payload1, err := json.Marshal(req1.PayloadFields())
	require.NoError(t, err)
	payload2, err := json.Marshal(req2.PayloadFields())
	require.NoError(t, err)

	assert.Equal(t,
		hex.EncodeToString(Hash(payload1)),
		hex.EncodeToString(Hash(payload2)),
		"hashes must be equal after decode -> re-marshal normalization")
}
