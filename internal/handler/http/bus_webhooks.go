package http

import (
	"net/http"

	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/models"
)

// busHook decodes a daemon event of type T and hands it to deliver. The
// daemon only needs to know the event was accepted.
func busHook[T any](deliver func(T)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ev T
		if err := decodeJSON(r, &ev); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "busHook").Msg("bad bus event")
			writeResult(w, r, err)
			return
		}
		deliver(ev)
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) onDeviceFound(ev models.DeviceFoundEvent) {
	h.bus.OnDeviceFound(ev.Device)
}
