// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cryptbox Authors

package http

import (
	"net/http"
)

// getServerVersion reports the running build version as plain text. The
// client compares it against its own build to warn about drift.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte(version)); err != nil {
		h.logger.Error().Err(err).Str("func", "*Handler.getServerVersion").Msg("write response")
	}
}
