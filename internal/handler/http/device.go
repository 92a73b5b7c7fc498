package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/internal/utils"
	"github.com/MKhiriev/go-device-keeper/models"
)

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w: %w", models.ErrInvalidParameter, ErrInvalidJSON, err)
	}
	return nil
}

// handle decodes a T body, runs call and answers with its result.
func handle[T any](call func(ctx context.Context, req T) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req T
		if err := decodeJSON(r, &req); err != nil {
			logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
			writeResult(w, r, err)
			return
		}
		writeResult(w, r, call(r.Context(), req))
	}
}

// ownerFromRequest reads the owner id of a GET request from the ownerId
// query parameter, falling back to the owner the trace middleware put in the
// context and then to the owner header.
func ownerFromRequest(r *http.Request) string {
	if owner := r.URL.Query().Get("ownerId"); owner != "" {
		return owner
	}
	if owner, ok := utils.GetOwnerIDFromContext(r.Context()); ok {
		return owner
	}
	return r.Header.Get(models.OwnerHeader)
}

func writeData(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeData").Msg("write response failed")
	}
}

func (h *Handler) unregisterDevStateCallback(ctx context.Context, req models.OwnerRequest) error {
	return h.devices.UnregisterDevStateCallback(ctx, req.OwnerID)
}

func (h *Handler) registerCredentialCallback(ctx context.Context, req models.OwnerRequest) error {
	return h.devices.RegisterCredentialCallback(ctx, req.OwnerID)
}

func (h *Handler) unregisterCredentialCallback(ctx context.Context, req models.OwnerRequest) error {
	return h.devices.UnregisterCredentialCallback(ctx, req.OwnerID)
}

func (h *Handler) requestCredential(w http.ResponseWriter, r *http.Request) {
	var req models.CredentialPayloadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeResult(w, r, err)
		return
	}

	info, err := h.devices.RequestCredential(r.Context(), req)
	if err != nil {
		writeResult(w, r, err)
		return
	}
	writeData(w, r, models.RegisterInfoResponse{RegisterInfo: info})
}

func (h *Handler) trustedDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := h.devices.GetTrustedDeviceList(r.Context(), ownerFromRequest(r))
	if err != nil {
		writeResult(w, r, err)
		return
	}
	writeData(w, r, devices)
}

func (h *Handler) localDevice(w http.ResponseWriter, r *http.Request) {
	local, err := h.devices.GetLocalDeviceInfo(r.Context(), ownerFromRequest(r))
	if err != nil {
		writeResult(w, r, err)
		return
	}
	writeData(w, r, local)
}

func (h *Handler) deviceUdid(w http.ResponseWriter, r *http.Request) {
	udid, err := h.devices.GetUdidByNetworkID(r.Context(), ownerFromRequest(r), chi.URLParam(r, "networkID"))
	if err != nil {
		writeResult(w, r, err)
		return
	}
	writeData(w, r, models.IdentityResponse{Value: udid})
}

func (h *Handler) deviceUuid(w http.ResponseWriter, r *http.Request) {
	uuid, err := h.devices.GetUuidByNetworkID(r.Context(), ownerFromRequest(r), chi.URLParam(r, "networkID"))
	if err != nil {
		writeResult(w, r, err)
		return
	}
	writeData(w, r, models.IdentityResponse{Value: uuid})
}
