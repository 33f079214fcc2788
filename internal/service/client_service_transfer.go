package service

import (
	"context"
	"fmt"

	"github.com/cryptbox/cryptbox/internal/adapter"
	"github.com/cryptbox/cryptbox/internal/crypto"
	"github.com/cryptbox/cryptbox/internal/logger"
	"github.com/cryptbox/cryptbox/internal/session"
	"github.com/cryptbox/cryptbox/internal/store"
	"github.com/cryptbox/cryptbox/internal/utils"
	"github.com/cryptbox/cryptbox/models"
)

// transferService is the sequential upload/download orchestrator. Items
// are processed one at a time in input order; the context is consulted
// between items only, so an item that reached the server stays there.
type transferService struct {
	adapter   adapter.ServerAdapter
	keyChain  crypto.KeyChain
	fileIndex store.FileIndexRepository
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

// NewTransferService wires the orchestrator over the server adapter, the
// key chain and the local file index.
func NewTransferService(serverAdapter adapter.ServerAdapter, keyChain crypto.KeyChain, fileIndex store.FileIndexRepository, logger *logger.Logger) TransferService {
	return &transferService{
		adapter:   serverAdapter,
		keyChain:  keyChain,
		fileIndex: fileIndex,
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// Upload implements [TransferService]. Each file is encrypted and sent
// before the next one is touched. A per-item failure is recorded in the
// result and reported through progress as StateFailed; the batch
// continues. Cancellation between items returns ctx.Err with the results
// accumulated so far.
func (t *transferService) Upload(ctx context.Context, sess *session.Session, files []FileUpload, progress ProgressFunc) ([]UploadResult, error) {
	master, err := sess.MasterKey()
	if err != nil {
		return nil, err
	}

	results := make([]UploadResult, 0, len(files))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := t.uploadOne(ctx, sess.UserID(), master, file, progress)
		results = append(results, result)
	}

	return results, nil
}

func (t *transferService) uploadOne(ctx context.Context, userID int64, master *crypto.MasterKey, file FileUpload, progress ProgressFunc) UploadResult {
	log := logger.FromContext(ctx)

	report := func(p TransferProgress) {
		if progress != nil {
			progress(p)
		}
	}

	report(TransferProgress{Filename: file.Filename, State: StatePending})

	report(TransferProgress{Filename: file.Filename, State: StateEncrypting})

	seal, err := t.keyChain.EncryptFile(master, file.Body)
	if err != nil {
		report(TransferProgress{Filename: file.Filename, State: StateFailed, Err: err})
		return UploadResult{Filename: file.Filename, Err: fmt.Errorf("encrypt file: %w", err)}
	}

	record := models.FileMetadata{
		Filename:       file.Filename,
		Size:           int64(len(file.Body)),
		MIMEType:       file.MIMEType,
		WrappedFileKey: seal.WrappedFileKey,
		BodyNonce:      seal.BodyNonce,
		KeyNonce:       seal.KeyNonce,
	}

	encryptedMetadata, err := t.keyChain.EncryptMetadata(master, record)
	if err != nil {
		report(TransferProgress{Filename: file.Filename, State: StateFailed, Err: err})
		return UploadResult{Filename: file.Filename, Err: fmt.Errorf("encrypt metadata: %w", err)}
	}

	encryptedFilename, err := t.keyChain.EncryptFilename(master, file.Filename)
	if err != nil {
		report(TransferProgress{Filename: file.Filename, State: StateFailed, Err: err})
		return UploadResult{Filename: file.Filename, Err: fmt.Errorf("encrypt filename: %w", err)}
	}

	fileID := t.ids.Generate()
	req := models.UploadRequest{
		FileID:   fileID,
		Body:     crypto.EncodeBlob(seal.Ciphertext),
		Filename: encryptedFilename,
		Metadata: encryptedMetadata,
	}

	report(TransferProgress{FileID: fileID, Filename: file.Filename, State: StateUploading})

	stored, err := t.adapter.Upload(ctx, req)
	if err != nil {
		report(TransferProgress{FileID: fileID, Filename: file.Filename, State: StateFailed, Err: err})
		return UploadResult{FileID: fileID, Filename: file.Filename, Err: fmt.Errorf("upload file: %w", err)}
	}

	if err := t.fileIndex.UpsertIndexEntry(ctx, userID, models.FileListing{
		FileID:    stored.FileID,
		Filename:  stored.Filename,
		CreatedAt: stored.CreatedAt,
	}); err != nil {
		// the server accepted the file; an index miss only degrades the
		// next offline listing
		log.Err(err).Str("file_id", stored.FileID).Msg("failed to update local file index")
	}

	report(TransferProgress{FileID: fileID, Filename: file.Filename, State: StateComplete})
	return UploadResult{FileID: fileID, Filename: file.Filename}
}

// Download implements [TransferService]. For each identifier the blob is
// fetched, its metadata opened, and the body decrypted with the unwrapped
// File Key. An undecryptable item carries the fallback metadata record
// and an error; the batch continues.
func (t *transferService) Download(ctx context.Context, sess *session.Session, fileIDs []string, progress ProgressFunc) ([]DownloadResult, error) {
	master, err := sess.MasterKey()
	if err != nil {
		return nil, err
	}

	results := make([]DownloadResult, 0, len(fileIDs))

	for _, fileID := range fileIDs {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := t.downloadOne(ctx, master, fileID, progress)
		results = append(results, result)
	}

	return results, nil
}

func (t *transferService) downloadOne(ctx context.Context, master *crypto.MasterKey, fileID string, progress ProgressFunc) DownloadResult {
	report := func(p TransferProgress) {
		if progress != nil {
			progress(p)
		}
	}

	report(TransferProgress{FileID: fileID, State: StatePending})
	report(TransferProgress{FileID: fileID, State: StateDownloading})

	file, err := t.adapter.Download(ctx, fileID)
	if err != nil {
		report(TransferProgress{FileID: fileID, State: StateFailed, Err: err})
		return DownloadResult{FileID: fileID, Err: fmt.Errorf("download file: %w", err)}
	}

	// metadata decryption cannot fail: a foreign or corrupted blob
	// degrades to the fallback record, and the body decrypt below is what
	// actually rejects it
	record := t.keyChain.DecryptMetadata(master, file.Metadata)

	ciphertext, err := crypto.DecodeBlob(file.Body)
	if err != nil {
		report(TransferProgress{FileID: fileID, Filename: record.Filename, State: StateFailed, Err: err})
		return DownloadResult{FileID: fileID, Metadata: record, Err: fmt.Errorf("decode file body: %w", err)}
	}

	plaintext, err := t.keyChain.DecryptFile(master, crypto.FileSeal{
		Ciphertext:     ciphertext,
		WrappedFileKey: record.WrappedFileKey,
		BodyNonce:      record.BodyNonce,
		KeyNonce:       record.KeyNonce,
	})
	if err != nil {
		report(TransferProgress{FileID: fileID, Filename: record.Filename, State: StateFailed, Err: err})
		return DownloadResult{FileID: fileID, Metadata: record, Err: fmt.Errorf("decrypt file: %w", err)}
	}

	report(TransferProgress{FileID: fileID, Filename: record.Filename, State: StateComplete})
	return DownloadResult{FileID: fileID, Metadata: record, Body: plaintext}
}

// List implements [TransferService].
func (t *transferService) List(ctx context.Context, sess *session.Session) ([]RemoteFile, error) {
	log := logger.FromContext(ctx)

	master, err := sess.MasterKey()
	if err != nil {
		return nil, err
	}

	listings, err := t.adapter.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	remote := make([]RemoteFile, 0, len(listings))
	for _, listing := range listings {
		remote = append(remote, RemoteFile{
			FileID:    listing.FileID,
			Filename:  t.keyChain.DecryptFilename(master, listing.Filename),
			CreatedAt: listing.CreatedAt,
		})

		if err := t.fileIndex.UpsertIndexEntry(ctx, sess.UserID(), listing); err != nil {
			log.Err(err).Str("file_id", listing.FileID).Msg("failed to refresh local file index")
		}
	}

	return remote, nil
}

// ListLocal implements [TransferService].
func (t *transferService) ListLocal(ctx context.Context, sess *session.Session) ([]RemoteFile, error) {
	master, err := sess.MasterKey()
	if err != nil {
		return nil, err
	}

	listings, err := t.fileIndex.ListIndex(ctx, sess.UserID())
	if err != nil {
		return nil, fmt.Errorf("list local file index: %w", err)
	}

	local := make([]RemoteFile, 0, len(listings))
	for _, listing := range listings {
		local = append(local, RemoteFile{
			FileID:    listing.FileID,
			Filename:  t.keyChain.DecryptFilename(master, listing.Filename),
			CreatedAt: listing.CreatedAt,
		})
	}

	return local, nil
}

// Delete implements [TransferService].
func (t *transferService) Delete(ctx context.Context, sess *session.Session, fileID string) error {
	log := logger.FromContext(ctx)

	if fileID == "" {
		return ErrInvalidDataProvided
	}

	if err := t.adapter.Delete(ctx, fileID); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}

	if err := t.fileIndex.DeleteIndexEntry(ctx, sess.UserID(), fileID); err != nil {
		log.Err(err).Str("file_id", fileID).Msg("failed to drop file from local index")
	}

	return nil
}
