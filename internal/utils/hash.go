// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cryptbox Authors

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"hash"
	"sync"
)

// hasherPool holds reusable keyed HMAC-SHA256 instances so the hot
// upload path does not allocate a hasher per request. InitHasherPool
// must run before the first Hash call.
var hasherPool sync.Pool

// InitHasherPool configures the pool with the shared integrity key.
// Client and server must be initialized with the same key or every
// upload fails its integrity check.
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes the HMAC-SHA256 digest of data with the pooled key.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}
