package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cryptbox/cryptbox/internal/logger"
	"github.com/cryptbox/cryptbox/models"
	"github.com/jackc/pgerrcode"
)

func newTestFileRepo(t *testing.T) (*fileRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &fileRepository{
		db:     &DB{DB: db, dialect: "pgx", logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSaveFile_Success(t *testing.T) {
	repo, mock, db := newTestFileRepo(t)
	defer db.Close()

	ctx := context.Background()
	file := models.EncryptedFile{
		FileID:   "0191b2c4-0000-7000-8000-000000000001",
		UserID:   3,
		Body:     "bm9uY2UtYW5kLWNpcGhlcnRleHQ=",
		Filename: "ZW5jcnlwdGVkLW5hbWU=",
		Metadata: "ZW5jcnlwdGVkLW1ldGE=",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"created_at", "updated_at"}).
		AddRow(now, now)

	mock.ExpectQuery("INSERT INTO files").
		WithArgs(file.FileID, file.UserID, file.Body, file.Filename, file.Metadata).
		WillReturnRows(rows)

	saved, err := repo.SaveFile(ctx, file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.FileID != file.FileID {
		t.Errorf("expected file id %s, got %s", file.FileID, saved.FileID)
	}
	if saved.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be populated from the returning clause")
	}
}

func TestSaveFile_DuplicateID(t *testing.T) {
	repo, mock, db := newTestFileRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO files").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.SaveFile(ctx, models.EncryptedFile{FileID: "dup"})
	if !errors.Is(err, ErrFileAlreadyExists) {
		t.Fatalf("expected ErrFileAlreadyExists, got %v", err)
	}
}

func TestGetFile_Success(t *testing.T) {
	repo, mock, db := newTestFileRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"file_id", "user_id", "body", "filename", "metadata", "created_at", "updated_at"}).
		AddRow("f-1", int64(3), "body", "name", "meta", now, now)

	mock.ExpectQuery("SELECT (.+) FROM files").
		WithArgs(int64(3), "f-1").
		WillReturnRows(rows)

	file, err := repo.GetFile(ctx, 3, "f-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if file.Body != "body" {
		t.Errorf("expected opaque body to round-trip, got %q", file.Body)
	}
}

func TestGetFile_NotFound(t *testing.T) {
	repo, mock, db := newTestFileRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM files").
		WithArgs(int64(3), "missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetFile(ctx, 3, "missing")
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestListFiles_Success(t *testing.T) {
	repo, mock, db := newTestFileRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"file_id", "filename", "created_at"}).
		AddRow("f-1", "bmFtZS0x", now).
		AddRow("f-2", "bmFtZS0y", now.Add(time.Second))

	mock.ExpectQuery("SELECT file_id, filename, created_at FROM files").
		WithArgs(int64(3), false).
		WillReturnRows(rows)

	listings, err := repo.ListFiles(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(listings))
	}
	if listings[0].FileID != "f-1" || listings[1].FileID != "f-2" {
		t.Errorf("unexpected listing order: %v", listings)
	}
}

func TestListFiles_Empty(t *testing.T) {
	repo, mock, db := newTestFileRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT file_id, filename, created_at FROM files").
		WithArgs(int64(3), false).
		WillReturnRows(sqlmock.NewRows([]string{"file_id", "filename", "created_at"}))

	listings, err := repo.ListFiles(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 0 {
		t.Fatalf("expected empty listing, got %d entries", len(listings))
	}
}

func TestSoftDeleteFile_Success(t *testing.T) {
	repo, mock, db := newTestFileRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE files SET").
		WithArgs(int64(3), "f-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SoftDeleteFile(ctx, 3, "f-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSoftDeleteFile_NotFound(t *testing.T) {
	repo, mock, db := newTestFileRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE files SET").
		WithArgs(int64(3), "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SoftDeleteFile(ctx, 3, "missing")
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestPurgeDeleted(t *testing.T) {
	repo, mock, db := newTestFileRepo(t)
	defer db.Close()

	ctx := context.Background()
	cutoff := time.Now().Add(-24 * time.Hour)

	mock.ExpectExec("DELETE FROM files").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 4))

	purged, err := repo.PurgeDeleted(ctx, cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if purged != 4 {
		t.Errorf("expected 4 purged rows, got %d", purged)
	}
}
