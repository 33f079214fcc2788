package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncryptDecryptFile_RoundTrip(t *testing.T) {
	kc := NewKeyChain()

	master, err := GenerateMasterKey()
	if err != nil {
		t.Fatalf("GenerateMasterKey error: %v", err)
	}

	plaintext := []byte("hello world")
	seal, err := kc.EncryptFile(master, plaintext)
	if err != nil {
		t.Fatalf("EncryptFile error: %v", err)
	}

	if len(seal.BodyNonce) != NonceSize || len(seal.KeyNonce) != NonceSize {
		t.Fatalf("nonce lengths = %d/%d, want %d", len(seal.BodyNonce), len(seal.KeyNonce), NonceSize)
	}
	if bytes.Equal(seal.BodyNonce, seal.KeyNonce) {
		t.Fatalf("body nonce and key nonce must be independent")
	}
	if bytes.Contains(seal.Ciphertext, plaintext) {
		t.Fatalf("ciphertext contains plaintext")
	}

	got, err := kc.DecryptFile(master, seal)
	if err != nil {
		t.Fatalf("DecryptFile error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip mismatch: got %q, want %q", got, plaintext)
	}
}

func TestEncryptFile_FreshKeyPerFile(t *testing.T) {
	kc := NewKeyChain()

	master, err := GenerateMasterKey()
	if err != nil {
		t.Fatalf("GenerateMasterKey error: %v", err)
	}

	s1, err := kc.EncryptFile(master, []byte("same bytes"))
	if err != nil {
		t.Fatalf("EncryptFile error: %v", err)
	}
	s2, err := kc.EncryptFile(master, []byte("same bytes"))
	if err != nil {
		t.Fatalf("EncryptFile error: %v", err)
	}

	if bytes.Equal(s1.Ciphertext, s2.Ciphertext) {
		t.Fatalf("two uploads of identical bytes must not share ciphertext")
	}
	if bytes.Equal(s1.WrappedFileKey, s2.WrappedFileKey) {
		t.Fatalf("two uploads must not share a file key")
	}
}

func TestDecryptFile_WrongMasterKey(t *testing.T) {
	kc := NewKeyChain()

	master, err := GenerateMasterKey()
	if err != nil {
		t.Fatalf("GenerateMasterKey error: %v", err)
	}
	other, err := GenerateMasterKey()
	if err != nil {
		t.Fatalf("GenerateMasterKey error: %v", err)
	}

	seal, err := kc.EncryptFile(master, []byte("payload"))
	if err != nil {
		t.Fatalf("EncryptFile error: %v", err)
	}

	got, err := kc.DecryptFile(other, seal)
	if !errors.Is(err, ErrCannotDecrypt) {
		t.Fatalf("got %v, want ErrCannotDecrypt", err)
	}
	if got != nil {
		t.Fatalf("plaintext returned despite wrong master key")
	}
}

func TestDecryptFile_CorruptedBody(t *testing.T) {
	kc := NewKeyChain()

	master, err := GenerateMasterKey()
	if err != nil {
		t.Fatalf("GenerateMasterKey error: %v", err)
	}

	seal, err := kc.EncryptFile(master, []byte("payload"))
	if err != nil {
		t.Fatalf("EncryptFile error: %v", err)
	}
	seal.Ciphertext[0] ^= 0x80

	if _, err := kc.DecryptFile(master, seal); !errors.Is(err, ErrCannotDecrypt) {
		t.Fatalf("got %v, want ErrCannotDecrypt", err)
	}
}
