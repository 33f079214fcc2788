// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cryptbox Authors

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCtxKeyString(t *testing.T) {
	assert.Equal(t, "testKey", ctxKey("testKey").String())
	assert.Equal(t, "userID", UserIDCtxKey.String())
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name       string
		ctx        context.Context
		wantUserID int64
		wantOK     bool
	}{
		{
			name:       "value present",
			ctx:        context.WithValue(context.Background(), UserIDCtxKey, int64(42)),
			wantUserID: 42,
			wantOK:     true,
		},
		{
			name:   "value missing",
			ctx:    context.Background(),
			wantOK: false,
		},
		{
			name:   "wrong type",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, "not-an-int64"),
			wantOK: false,
		},
		{
			name:       "zero id is still a value",
			ctx:        context.WithValue(context.Background(), UserIDCtxKey, int64(0)),
			wantUserID: 0,
			wantOK:     true,
		},
		{
			name:   "different key of same underlying string",
			ctx:    context.WithValue(context.Background(), ctxKey("otherKey"), int64(99)),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, ok := GetUserIDFromContext(tt.ctx)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantUserID, userID)
		})
	}
}
