package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/retail-insights-api/internal/config"
	"github.com/vfg2006/retail-insights-api/internal/domain"
	"github.com/vfg2006/retail-insights-api/internal/usecases/dashboard/mocks"
	"github.com/vfg2006/retail-insights-api/pkg/log"
	"github.com/vfg2006/retail-insights-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.Server{
			Host:           "localhost",
			Port:           "0",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
	}
}

func TestNew_RequiresAnalytics(t *testing.T) {
	_, err := New(testConfig(), nil, nil, nil)
	assert.Error(t, err)
}

func TestServer_Handler(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	analytics := mocks.NewMockAnalytics(ctrl)

	srv, err := New(testConfig(), nil, analytics, nil)
	require.NoError(t, err)

	t.Run("origem liberada recebe cabeçalhos de CORS", func(t *testing.T) {
		analytics.EXPECT().GetFilterOptions(gomock.Any()).Return(&domain.FilterOptions{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/filters", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))
	})

	t.Run("preflight responde sem chamar o serviço", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/dashboard/stats", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("origem desconhecida não recebe cabeçalhos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
