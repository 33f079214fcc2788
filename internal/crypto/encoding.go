package crypto

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// encodingChunkSize bounds how much of a blob is pushed through the
// encoder or decoder in one call. Encrypted file bodies can be arbitrarily
// large; fixed 32 KiB windows keep peak memory flat regardless of input
// size.
const encodingChunkSize = 32 * 1024

// EncodeBlob converts raw bytes to the transport-safe text form used for
// every binary value that crosses into the wire or storage layers
// (standard base64). The input is streamed in 32 KiB windows; output is
// identical to a single-pass encoding.
func EncodeBlob(raw []byte) string {
	var sb strings.Builder
	sb.Grow(base64.StdEncoding.EncodedLen(len(raw)))

	enc := base64.NewEncoder(base64.StdEncoding, &sb)
	for off := 0; off < len(raw); off += encodingChunkSize {
		end := min(off+encodingChunkSize, len(raw))
		// Writes to a strings.Builder cannot fail.
		enc.Write(raw[off:end])
	}
	enc.Close()

	return sb.String()
}

// DecodeBlob reverses [EncodeBlob]. Malformed input is reported as
// [ErrMalformedBlob] before any of it reaches a cryptographic call.
func DecodeBlob(encoded string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(base64.StdEncoding.DecodedLen(len(encoded)))

	dec := base64.NewDecoder(base64.StdEncoding, strings.NewReader(encoded))
	window := make([]byte, encodingChunkSize)
	for {
		n, err := dec.Read(window)
		buf.Write(window[:n])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedBlob, err)
		}
	}

	return buf.Bytes(), nil
}
