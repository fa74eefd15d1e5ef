package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code           string
		expectedStatus int
	}{
		{ErrInvalidRequest, http.StatusBadRequest},
		{ErrNotFound, http.StatusNotFound},
		{ErrJobRunning, http.StatusConflict},
		{ErrDatabaseOperation, http.StatusInternalServerError},
		{ErrRequestCanceled, http.StatusGatewayTimeout},
		{"XYZ_999", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string]any{"operation": "stats"})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}
