package crypto

import "github.com/cryptbox/cryptbox/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain отвечает за всю клиентскую криптографию файлов в схеме
// Zero-Knowledge. Он не знает ничего о сети, базе данных или
// пользователях — только ключи и байты.
//
// Схема работы при загрузке файла:
//
//	FileKey            = случайный одноразовый ключ      (Шаг 1)
//	Ciphertext         = AES-GCM(FileKey, body)          (Шаг 2)
//	WrappedFileKey     = AES-GCM(MasterKey, FileKey)     (Шаг 3)
//	EncryptedMetadata  = AES-GCM(MasterKey, metadata)    (Шаг 4)
type KeyChain interface {
	// EncryptFile generates a fresh File Key, encrypts plaintext with it,
	// wraps the File Key under master, and returns all four artifacts.
	// The plaintext File Key is zeroed before returning.
	EncryptFile(master *MasterKey, plaintext []byte) (FileSeal, error)

	// DecryptFile unwraps the File Key with master and decrypts the body.
	// Either failure matches ErrCannotDecrypt via errors.Is.
	DecryptFile(master *MasterKey, seal FileSeal) ([]byte, error)

	// EncryptMetadata serializes record and encrypts it under master with
	// a fresh nonce, returning one opaque encoded blob (nonce ‖ ciphertext).
	EncryptMetadata(master *MasterKey, record models.FileMetadata) (string, error)

	// DecryptMetadata reverses EncryptMetadata. It never fails: any
	// undecryptable blob — legacy format or genuine corruption — degrades
	// to the fallback record.
	DecryptMetadata(master *MasterKey, blob string) models.FileMetadata

	// EncryptFilename encrypts a bare filename with the same blob layout
	// as EncryptMetadata, for flows that need the name independently of
	// the rest of the metadata.
	EncryptFilename(master *MasterKey, filename string) (string, error)

	// DecryptFilename reverses EncryptFilename, degrading to the fallback
	// placeholder name on any failure.
	DecryptFilename(master *MasterKey, blob string) string
}

// keyChain is the private implementation of [KeyChain].
type keyChain struct{}

// NewKeyChain constructs the production [KeyChain].
func NewKeyChain() KeyChain {
	return &keyChain{}
}
