package service

import (
	"github.com/cryptbox/cryptbox/internal/adapter"
	"github.com/cryptbox/cryptbox/internal/crypto"
	"github.com/cryptbox/cryptbox/internal/logger"
	"github.com/cryptbox/cryptbox/internal/store"
	"github.com/cryptbox/cryptbox/internal/vault"
)

type ClientServices struct {
	AuthService     ClientAuthService
	TransferService TransferService
	Vault           vault.Vault
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	keyChain := crypto.NewKeyChain()
	keyVault := vault.New(localStore.VaultEntries, logger)

	return &ClientServices{
		AuthService:     NewClientAuthService(serverAdapter, keyVault, logger),
		TransferService: NewTransferService(serverAdapter, keyChain, localStore.FileIndex, logger),
		Vault:           keyVault,
	}
}
