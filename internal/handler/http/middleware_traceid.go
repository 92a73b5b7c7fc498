package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-device-keeper/internal/utils"
	"github.com/MKhiriev/go-device-keeper/models"
)

const traceIDHeader = "X-Trace-ID"

var traceIDs = utils.NewUUIDGenerator()

// withTraceID attaches a request logger carrying trace_id and, when the
// caller sent one, owner_id. The owner id is also stored in the request
// context. The trace id is echoed in the response.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = traceIDs.Generate()
		}
		ownerID := r.Header.Get(models.OwnerHeader)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			c = c.Str("trace_id", traceID)
			if ownerID != "" {
				c = c.Str("owner_id", ownerID)
			}
			return c
		})
		ctx := l.WithContext(r.Context())
		if ownerID != "" {
			ctx = utils.WithOwnerID(ctx, ownerID)
		}
		r = r.WithContext(ctx)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
