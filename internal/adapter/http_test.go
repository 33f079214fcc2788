// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cryptbox Authors

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cryptbox/cryptbox/internal/config"
	"github.com/cryptbox/cryptbox/internal/logger"
	"github.com/cryptbox/cryptbox/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	log := logger.NewLogger("test")
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}
	appCfg := config.ClientApp{HashKey: "testhashkey"}

	a, err := NewHTTPServerAdapter(adapterCfg, appCfg, log)
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func makeToken(t *testing.T, userID int64) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: strconv.FormatInt(userID, 10),
	})
	signed, err := token.SignedString([]byte("test-sign-key"))
	require.NoError(t, err)
	return signed
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	user := models.User{Login: "alice", AuthDigest: "digest", EncryptionSalt: "c2FsdA=="}
	token := makeToken(t, 42)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var got models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, user.Login, got.Login)
		assert.Equal(t, user.AuthDigest, got.AuthDigest)

		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, user.Login, got.Login)
	assert.Equal(t, int64(42), got.UserID)
	assert.Equal(t, token, a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("login already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Login: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

// ── RequestSalt ─────────────────────────────────────────────────────────────

func TestRequestSalt_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/auth/salt", r.URL.Path)
		assert.Equal(t, "alice", r.URL.Query().Get("login"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{Login: "alice", EncryptionSalt: "c29tZXNhbHQ="})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.RequestSalt(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", got.Login)
	assert.Equal(t, "c29tZXNhbHQ=", got.EncryptionSalt)
}

func TestRequestSalt_UnknownLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no such user"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.RequestSalt(context.Background(), "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	token := makeToken(t, 7)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer "+token)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.User{Login: "alice", AuthDigest: "digest"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, token, a.Token())
}

func TestLogin_WrongDigest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Login: "alice", AuthDigest: "bad"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

// ── Upload / Download / List / Delete ───────────────────────────────────────

func TestUpload_SetsHashAndBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/files", r.URL.Path)
		assert.Equal(t, "Bearer sometoken", r.Header.Get("Authorization"))

		var req models.UploadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.Hash)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.EncryptedFile{
			FileID:    req.FileID,
			Body:      req.Body,
			Filename:  req.Filename,
			Metadata:  req.Metadata,
			CreatedAt: time.Now(),
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	stored, err := a.Upload(context.Background(), models.UploadRequest{
		FileID:   "f-1",
		Body:     "Ym9keQ==",
		Filename: "bmFtZQ==",
		Metadata: "bWV0YQ==",
	})

	require.NoError(t, err)
	assert.Equal(t, "f-1", stored.FileID)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestUpload_DuplicateID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("file already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	_, err := a.Upload(context.Background(), models.UploadRequest{FileID: "dup"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestDownload_Success(t *testing.T) {
	want := models.EncryptedFile{FileID: "f-1", Body: "Ym9keQ==", Filename: "bmFtZQ==", Metadata: "bWV0YQ=="}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/files/f-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	got, err := a.Download(context.Background(), "f-1")

	require.NoError(t, err)
	assert.Equal(t, want.Body, got.Body)
	assert.Equal(t, want.Metadata, got.Metadata)
}

func TestDownload_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	_, err := a.Download(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/files", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ListResponse{Files: []models.FileListing{
			{FileID: "f-1", Filename: "bmFtZS0x"},
			{FileID: "f-2", Filename: "bmFtZS0y"},
		}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	listings, err := a.List(context.Background())

	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "f-1", listings[0].FileID)
}

func TestDelete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/files/f-1", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	require.NoError(t, a.Delete(context.Background(), "f-1"))
}

// ── Retries ─────────────────────────────────────────────────────────────────

func TestSend_RetriesOnServerError(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ListResponse{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	_, err := a.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestSend_NoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("sometoken")

	_, err := a.List(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, int32(1), calls.Load())
}

// ── Base URL normalisation ──────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "http://localhost:8080/", want: "http://localhost:8080"},
		{in: "https://cryptbox.example.com", want: "https://cryptbox.example.com"},
		{in: "   ", wantErr: true},
		{in: "://nohost", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
