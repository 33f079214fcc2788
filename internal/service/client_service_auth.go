package service

import (
	"context"
	"fmt"

	"github.com/cryptbox/cryptbox/internal/adapter"
	"github.com/cryptbox/cryptbox/internal/crypto"
	"github.com/cryptbox/cryptbox/internal/logger"
	"github.com/cryptbox/cryptbox/internal/session"
	"github.com/cryptbox/cryptbox/internal/vault"
	"github.com/cryptbox/cryptbox/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	vault   vault.Vault

	logger *logger.Logger
}

// NewClientAuthService wires the client auth flows over the server adapter
// and the local vault.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, keyVault vault.Vault, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, vault: keyVault, logger: logger}
}

// Register implements [ClientAuthService].
//
// The wire payload contains exactly two derived values: the fresh
// encryption salt (public) and the auth digest (bounded hash, unusable as
// a key). The Master Key produced here goes straight into the returned
// session and never leaves the process.
func (a *clientAuthService) Register(ctx context.Context, login, password string) (*session.Session, error) {
	if login == "" || password == "" {
		return nil, ErrInvalidDataProvided
	}

	salt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate encryption salt: %w", err)
	}

	master, err := crypto.DeriveMasterKey(password, salt)
	if err != nil {
		return nil, fmt.Errorf("derive master key: %w", err)
	}

	user := models.User{
		Login:          login,
		EncryptionSalt: crypto.EncodeBlob(salt),
		AuthDigest:     crypto.AuthDigest(password, salt),
	}

	registered, err := a.adapter.Register(ctx, user)
	if err != nil {
		master.Zero()
		return nil, fmt.Errorf("%w: %v", ErrRegisterOnServer, err)
	}

	return session.New(registered.UserID, master), nil
}

// Login implements [ClientAuthService]. The sequence is fixed: fetch the
// salt, derive the Master Key, compute the digest, exchange it for a
// token. The digest depends on the salt, so the round-trip cannot be
// collapsed.
func (a *clientAuthService) Login(ctx context.Context, login, password string) (*session.Session, error) {
	if login == "" || password == "" {
		return nil, ErrInvalidDataProvided
	}

	withSalt, err := a.adapter.RequestSalt(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	salt, err := crypto.DecodeBlob(withSalt.EncryptionSalt)
	if err != nil {
		return nil, fmt.Errorf("decode encryption salt: %w", err)
	}

	master, err := crypto.DeriveMasterKey(password, salt)
	if err != nil {
		return nil, fmt.Errorf("derive master key: %w", err)
	}

	user := models.User{
		Login:      login,
		AuthDigest: crypto.AuthDigest(password, salt),
	}

	authenticated, err := a.adapter.Login(ctx, user)
	if err != nil {
		master.Zero()
		return nil, fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	return session.New(authenticated.UserID, master), nil
}

// SaveToVault implements [ClientAuthService].
func (a *clientAuthService) SaveToVault(ctx context.Context, sess *session.Session, sessionSecret string) error {
	if sessionSecret == "" {
		return ErrInvalidDataProvided
	}

	master, err := sess.MasterKey()
	if err != nil {
		return err
	}

	return a.vault.Store(ctx, sess.UserID(), sessionSecret, master)
}

// UnlockFromVault implements [ClientAuthService]. The recovered session
// has no bearer token attached; callers doing server work after an
// offline unlock must still authenticate.
func (a *clientAuthService) UnlockFromVault(ctx context.Context, userID int64, sessionSecret string) (*session.Session, error) {
	master, err := a.vault.Retrieve(ctx, userID, sessionSecret)
	if err != nil {
		return nil, err
	}

	return session.New(userID, master), nil
}

// Logout implements [ClientAuthService].
func (a *clientAuthService) Logout(sess *session.Session) {
	if sess != nil {
		sess.Close()
	}
}
