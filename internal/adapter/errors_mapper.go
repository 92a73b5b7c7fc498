package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-device-keeper/models"
)

// mapHTTPError returns nil for 2xx replies. Otherwise it wraps the status
// sentinel and, when the body is a [models.Result] with a non-zero code, the
// error kind that code stands for.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var statusErr error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		statusErr = ErrBadRequest
	case http.StatusUnauthorized:
		statusErr = ErrUnauthorized
	case http.StatusForbidden:
		statusErr = ErrForbidden
	case http.StatusNotFound:
		statusErr = ErrNotFound
	case http.StatusConflict:
		statusErr = ErrConflict
	case http.StatusTooManyRequests:
		statusErr = ErrTooManyRequests
	case http.StatusBadGateway:
		statusErr = ErrBadGateway
	case http.StatusInternalServerError:
		statusErr = ErrInternalServerError
	default:
		statusErr = fmt.Errorf("%w: http %d", ErrUnexpectedStatus, resp.StatusCode())
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
	}

	var result models.Result
	if json.Unmarshal(resp.Body(), &result) == nil && result.Code != models.CodeOK {
		return fmt.Errorf("%w: %w: %s", statusErr, models.ErrorOf(result.Code), result.Message)
	}
	return fmt.Errorf("%w: %s", statusErr, body)
}
