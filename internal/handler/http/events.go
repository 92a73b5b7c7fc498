package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/models"
)

// heartbeatInterval keeps idle event streams open through proxies.
const heartbeatInterval = 15 * time.Second

// streamEvents serves the owner's events as server-sent events until the
// client goes away or the hub closes the stream.
func (h *Handler) streamEvents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	owner := ownerFromRequest(r)
	if owner == "" {
		writeResult(w, r, fmt.Errorf("%w: owner id is required", models.ErrInvalidParameter))
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok || h.events == nil {
		writeResult(w, r, fmt.Errorf("%w: %w", models.ErrUnsupported, ErrStreamingUnsupported))
		return
	}

	events, cancel, err := h.events.Subscribe(owner)
	if err != nil {
		writeResult(w, r, fmt.Errorf("%w: %w", models.ErrSubsystemCallFailed, err))
		return
	}
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			if _, err = fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case ev, open := <-events:
			if !open {
				return
			}
			data, marshalErr := json.Marshal(ev)
			if marshalErr != nil {
				log.Err(marshalErr).Str("func", "*Handler.streamEvents").Str("type", ev.Type).Msg("encode event failed")
				continue
			}
			if _, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
