package http

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/cryptbox/cryptbox/internal/app"
	"github.com/cryptbox/cryptbox/internal/utils"
	"github.com/cryptbox/cryptbox/models"
)

// uploadHashing verifies the transport integrity HMAC of an upload before
// the handler touches it. The hash covers the payload fields only; the
// client and server marshal the same [models.UploadRequest.PayloadFields]
// value, so any in-flight mutation of the opaque blobs breaks the match.
func (h *Handler) uploadHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.logger.Debug().Str("func", "*Handler.uploadHashing").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.uploadHashing").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		var req models.UploadRequest
		if err := json.NewDecoder(bytes.NewReader(body)).Decode(&req); err != nil {
			h.logger.Err(err).Str("func", "*Handler.uploadHashing").Msg("failed to decode JSON")
			http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
			return
		}

		payloadBytes, err := json.Marshal(req.PayloadFields())
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.uploadHashing").Msg("failed to marshal payload")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}

		hashedBody := hex.EncodeToString(utils.Hash(payloadBytes))
		if hashedBody != req.Hash {
			h.logger.Error().Str("func", "*Handler.uploadHashing").
				Str("hash from request", req.Hash).
				Str("hashed body", hashedBody).
				Msg("hashes are not equal")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		h.logger.Debug().Str("func", "*Handler.uploadHashing").Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
