package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/AIMastersDoJo/citclocationsdashboard/internal/config"
	"github.com/AIMastersDoJo/citclocationsdashboard/internal/usecases/dashboarding/mocks"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/log"
)

func TestServer_Handler(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	dashboardService := mocks.NewMockDashboardService(ctrl)

	cfg := &config.Config{
		Server: config.Server{Host: "127.0.0.1", Port: "0", AllowedOrigins: []string{"http://localhost:3000"}},
	}

	srv, err := New(cfg, dashboardService, nil)
	assert.NoError(t, err)

	t.Run("Healthcheck com CORS", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		srv.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("Status das crons sem agendador", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{}`, rec.Body.String())
	})
}
