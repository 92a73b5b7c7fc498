package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	type device struct {
		DeviceID string `json:"deviceId"`
		Range    int    `json:"range"`
	}

	tests := []struct {
		name       string
		data       any
		status     int
		wantStatus int
		wantBody   string
		wantErr    bool
	}{
		{name: "struct", data: device{DeviceID: "dev-1", Range: 10}, status: http.StatusOK, wantStatus: http.StatusOK, wantBody: `{"deviceId":"dev-1","range":10}`},
		{name: "custom status", data: map[string]int{"code": -20001}, status: http.StatusBadRequest, wantStatus: http.StatusBadRequest, wantBody: `{"code":-20001}`},
		{name: "nil", data: nil, status: http.StatusOK, wantStatus: http.StatusOK, wantBody: `null`},
		{name: "empty slice", data: []device{}, status: http.StatusOK, wantStatus: http.StatusOK, wantBody: `[]`},
		{name: "unmarshalable", data: make(chan int), status: http.StatusOK, wantStatus: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			n, err := WriteJSON(rec, tt.data, tt.status)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantErr {
				require.Error(t, err)
				assert.Zero(t, n)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}
