package service

import (
	"context"
	"fmt"
	"time"

	"github.com/cryptbox/cryptbox/internal/logger"
	"github.com/cryptbox/cryptbox/internal/store"
	"github.com/cryptbox/cryptbox/models"
)

// fileService is the concrete implementation of FileService. Bodies,
// filenames and metadata are already ciphertext when they arrive here;
// the service checks structure and ownership, never content.
type fileService struct {
	fileRepository store.FileRepository

	logger *logger.Logger
}

// NewFileService constructs a FileService over the given repository.
func NewFileService(fileRepository store.FileRepository, logger *logger.Logger) FileService {
	return &fileService{
		fileRepository: fileRepository,
		logger:         logger,
	}
}

// UploadFile persists one encrypted blob. All four client-supplied
// fields must be present; UserID is taken from the authenticated
// request by the handler before the call.
//
// Returns the stored record with server-side timestamps, or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - A wrapped storage error (see store.ErrFileAlreadyExists).
func (s *fileService) UploadFile(ctx context.Context, file models.EncryptedFile) (models.EncryptedFile, error) {
	log := logger.FromContext(ctx)

	if file.FileID == "" || file.Body == "" || file.Filename == "" || file.Metadata == "" || file.UserID == 0 {
		log.Error().Str("file_id", file.FileID).Int64("user_id", file.UserID).Msg("invalid file data provided")
		return models.EncryptedFile{}, ErrInvalidDataProvided
	}

	stored, err := s.fileRepository.SaveFile(ctx, file)
	if err != nil {
		return models.EncryptedFile{}, fmt.Errorf("file save ended with error: %w", err)
	}

	return stored, nil
}

// DownloadFile returns the encrypted blob identified by fileID, scoped to
// userID. Another user's file is indistinguishable from a missing one.
func (s *fileService) DownloadFile(ctx context.Context, userID int64, fileID string) (models.EncryptedFile, error) {
	if userID == 0 || fileID == "" {
		return models.EncryptedFile{}, ErrInvalidDataProvided
	}

	file, err := s.fileRepository.GetFile(ctx, userID, fileID)
	if err != nil {
		return models.EncryptedFile{}, fmt.Errorf("file lookup ended with error: %w", err)
	}

	return file, nil
}

// ListFiles returns lightweight descriptors of the user's non-deleted
// files, oldest first.
func (s *fileService) ListFiles(ctx context.Context, userID int64) ([]models.FileListing, error) {
	if userID == 0 {
		return nil, ErrInvalidDataProvided
	}

	listings, err := s.fileRepository.ListFiles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("file listing ended with error: %w", err)
	}

	return listings, nil
}

// DeleteFile soft-deletes the blob; the purge worker hard-deletes it
// after the retention window.
func (s *fileService) DeleteFile(ctx context.Context, userID int64, fileID string) error {
	if userID == 0 || fileID == "" {
		return ErrInvalidDataProvided
	}

	if err := s.fileRepository.SoftDeleteFile(ctx, userID, fileID); err != nil {
		return fmt.Errorf("file delete ended with error: %w", err)
	}

	return nil
}

// PurgeDeletedFiles hard-deletes blobs soft-deleted longer than
// olderThan ago and reports how many rows were removed.
func (s *fileService) PurgeDeletedFiles(ctx context.Context, olderThan time.Duration) (int64, error) {
	log := logger.FromContext(ctx)

	purged, err := s.fileRepository.PurgeDeleted(ctx, time.Now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("purge ended with error: %w", err)
	}

	if purged > 0 {
		log.Info().Int64("purged", purged).Msg("hard-deleted expired files")
	}
	return purged, nil
}
