package service

import (
	"context"
	"time"

	"github.com/cryptbox/cryptbox/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// FileService is the server-side contract for opaque blob storage. The
// service never interprets Body, Filename or Metadata; it enforces
// ownership and lifecycle only.
type FileService interface {
	UploadFile(ctx context.Context, file models.EncryptedFile) (models.EncryptedFile, error)

	DownloadFile(ctx context.Context, userID int64, fileID string) (models.EncryptedFile, error)
	ListFiles(ctx context.Context, userID int64) ([]models.FileListing, error)

	DeleteFile(ctx context.Context, userID int64, fileID string) error
	PurgeDeletedFiles(ctx context.Context, olderThan time.Duration) (int64, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	Salt(ctx context.Context, login string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
