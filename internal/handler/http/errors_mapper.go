package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/internal/utils"
	"github.com/MKhiriev/go-device-keeper/models"
)

// errorStatusMap maps the stable result codes to HTTP statuses.
var errorStatusMap = map[int]int{
	models.CodeOK:                  http.StatusOK,
	models.CodeInvalidParameter:    http.StatusBadRequest,
	models.CodeMalformedMessage:    http.StatusBadRequest,
	models.CodeIncomplete:          http.StatusAccepted,
	models.CodeAlreadyInProgress:   http.StatusConflict,
	models.CodeSubsystemCallFailed: http.StatusBadGateway,
	models.CodeTimedOut:            http.StatusGatewayTimeout,
	models.CodeNotFound:            http.StatusNotFound,
	models.CodeBusy:                http.StatusConflict,
	models.CodeUnsupported:         http.StatusNotImplemented,
	models.CodeRejected:            http.StatusConflict,
	models.CodePinMismatch:         http.StatusUnprocessableEntity,
}

func statusFromError(err error) int {
	if errors.Is(err, ErrRateLimited) {
		return http.StatusTooManyRequests
	}
	if status, ok := errorStatusMap[models.CodeOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// writeResult writes err as a [models.Result]. A nil err is code 0.
func writeResult(w http.ResponseWriter, r *http.Request, err error) {
	result := models.Result{Code: models.CodeOf(err)}
	status := statusFromError(err)
	if err != nil {
		result.Message = err.Error()
		if status >= http.StatusInternalServerError {
			logger.FromRequest(r).Err(err).Str("func", "writeResult").Int("status", status).Msg("request failed")
		}
	}

	if _, writeErr := utils.WriteJSON(w, result, status); writeErr != nil {
		logger.FromRequest(r).Err(writeErr).Str("func", "writeResult").Msg("write response failed")
	}
}
