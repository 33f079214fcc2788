package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"math/rand"
	"testing"
)

func TestEncodeDecodeBlob_RoundTrip(t *testing.T) {
	// Sizes chosen to span the 32 KiB window boundary in both directions.
	sizes := []int{0, 1, 2, 3, 4, encodingChunkSize - 1, encodingChunkSize, encodingChunkSize + 1, 1 << 20}

	rng := rand.New(rand.NewSource(1))
	for _, size := range sizes {
		raw := make([]byte, size)
		rng.Read(raw)

		encoded := EncodeBlob(raw)
		decoded, err := DecodeBlob(encoded)
		if err != nil {
			t.Fatalf("size %d: DecodeBlob error: %v", size, err)
		}
		if !bytes.Equal(decoded, raw) {
			t.Fatalf("size %d: round trip mismatch", size)
		}
	}
}

func TestEncodeBlob_MatchesSinglePassEncoding(t *testing.T) {
	// Chunked output must be indistinguishable from one-shot encoding,
	// including for sizes not divisible by the base64 quantum.
	raw := make([]byte, encodingChunkSize*2+5)
	rand.New(rand.NewSource(2)).Read(raw)

	if got, want := EncodeBlob(raw), base64.StdEncoding.EncodeToString(raw); got != want {
		t.Fatalf("chunked encoding diverges from single-pass encoding")
	}
}

func TestDecodeBlob_MalformedInput(t *testing.T) {
	for _, input := range []string{"%%%", "abc\x00def", "====", "AAA!"} {
		if _, err := DecodeBlob(input); !errors.Is(err, ErrMalformedBlob) {
			t.Fatalf("input %q: got %v, want ErrMalformedBlob", input, err)
		}
	}
}
