package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/retail-insights-api/pkg/log"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	tests := []struct {
		name           string
		method         string
		origin         string
		expectedOrigin string
		expectedStatus int
	}{
		{"origem liberada", http.MethodGet, "http://localhost:3000", "http://localhost:3000", http.StatusNoContent},
		{"origem desconhecida", http.MethodGet, "http://evil.test", "", http.StatusNoContent},
		{"preflight", http.MethodOptions, "http://localhost:3000", "http://localhost:3000", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/dashboard/stats", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLoggingMiddleware_SetsCorrelationID(t *testing.T) {
	log.SetupTestLogger()

	var correlationID string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, rec.Header().Get(CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/filters", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
