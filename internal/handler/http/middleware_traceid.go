// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Cryptbox Authors

package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/cryptbox/cryptbox/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

var traceIDs = utils.NewUUIDGenerator()

// withTraceID tags every request with a trace id: reused from the
// incoming X-Trace-ID header when the caller supplied one, freshly
// generated otherwise. The id is attached to the request-scoped logger
// and echoed back in the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
