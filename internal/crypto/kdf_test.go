package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	s1, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != SaltSize {
		t.Fatalf("salt length = %d, want %d", len(s1), SaltSize)
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestDeriveMasterKey_Deterministic(t *testing.T) {
	password := "correct horse battery staple"
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	m1, err := DeriveMasterKey(password, salt)
	if err != nil {
		t.Fatalf("DeriveMasterKey error: %v", err)
	}
	m2, err := DeriveMasterKey(password, salt)
	if err != nil {
		t.Fatalf("DeriveMasterKey error: %v", err)
	}

	if !bytes.Equal(m1.ExportBytes(), m2.ExportBytes()) {
		t.Fatalf("expected identical keys for identical (password, salt)")
	}
}

func TestDeriveMasterKey_InputSensitivity(t *testing.T) {
	salt1 := bytes.Repeat([]byte{0x01}, SaltSize)
	salt2 := bytes.Repeat([]byte{0x02}, SaltSize)

	base, err := DeriveMasterKey("password", salt1)
	if err != nil {
		t.Fatalf("DeriveMasterKey error: %v", err)
	}
	otherSalt, err := DeriveMasterKey("password", salt2)
	if err != nil {
		t.Fatalf("DeriveMasterKey error: %v", err)
	}
	otherPassword, err := DeriveMasterKey("Password", salt1)
	if err != nil {
		t.Fatalf("DeriveMasterKey error: %v", err)
	}

	if bytes.Equal(base.ExportBytes(), otherSalt.ExportBytes()) {
		t.Fatalf("expected different keys for different salts")
	}
	if bytes.Equal(base.ExportBytes(), otherPassword.ExportBytes()) {
		t.Fatalf("expected different keys for different passwords")
	}
}

func TestDeriveMasterKey_MalformedSalt(t *testing.T) {
	for _, size := range []int{0, 8, 15, 17, 32} {
		_, err := DeriveMasterKey("pw", make([]byte, size))
		if !errors.Is(err, ErrInvalidSalt) {
			t.Fatalf("salt size %d: got %v, want ErrInvalidSalt", size, err)
		}
	}
}

func TestGenerateMasterKey_Randomness(t *testing.T) {
	m1, err := GenerateMasterKey()
	if err != nil {
		t.Fatalf("GenerateMasterKey error: %v", err)
	}
	m2, err := GenerateMasterKey()
	if err != nil {
		t.Fatalf("GenerateMasterKey error: %v", err)
	}

	if bytes.Equal(m1.ExportBytes(), m2.ExportBytes()) {
		t.Fatalf("expected random master keys to differ")
	}
}

func TestDeriveStorageKey_SeparateFromMasterPath(t *testing.T) {
	salt := bytes.Repeat([]byte{0x5A}, SaltSize)

	storage, err := DeriveStorageKey("secret", salt)
	if err != nil {
		t.Fatalf("DeriveStorageKey error: %v", err)
	}
	master, err := DeriveMasterKey("secret", salt)
	if err != nil {
		t.Fatalf("DeriveMasterKey error: %v", err)
	}

	// Same inputs through the two paths must not produce the same key.
	if bytes.Equal(storage.ExportBytes(), master.ExportBytes()) {
		t.Fatalf("storage key must differ from master key for identical inputs")
	}
}

func TestAuthDigest_BoundedAndDeterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{0x07}, SaltSize)

	d1 := AuthDigest("password", salt)
	d2 := AuthDigest("password", salt)
	if d1 != d2 {
		t.Fatalf("expected deterministic auth digest")
	}
	if len(d1) > authDigestMaxLen {
		t.Fatalf("digest length = %d, exceeds ceiling %d", len(d1), authDigestMaxLen)
	}

	// Legacy mode: password alone.
	legacy := AuthDigest("password", nil)
	if legacy == d1 {
		t.Fatalf("expected salted and unsalted digests to differ")
	}
}

func TestAuthDigest_UnrelatedToMasterKey(t *testing.T) {
	salt := bytes.Repeat([]byte{0x07}, SaltSize)

	master, err := DeriveMasterKey("password", salt)
	if err != nil {
		t.Fatalf("DeriveMasterKey error: %v", err)
	}

	digest := AuthDigest("password", salt)
	if bytes.Contains([]byte(digest), master.ExportBytes()) {
		t.Fatalf("auth digest must not embed master key material")
	}
}

func TestKey_ZeroScrubsBackingMemory(t *testing.T) {
	master, err := GenerateMasterKey()
	if err != nil {
		t.Fatalf("GenerateMasterKey error: %v", err)
	}

	exported := master.ExportBytes()
	master.Zero()

	if bytes.Equal(master.secret, exported) {
		t.Fatalf("Zero did not scrub the backing memory")
	}
	if !bytes.Equal(master.secret, make([]byte, KeySize)) {
		t.Fatalf("backing memory not zeroed")
	}
}
