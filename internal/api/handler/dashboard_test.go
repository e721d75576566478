package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/AIMastersDoJo/citclocationsdashboard/internal/api/handler/router"
	"github.com/AIMastersDoJo/citclocationsdashboard/internal/domain"
	"github.com/AIMastersDoJo/citclocationsdashboard/internal/usecases/dashboarding"
	"github.com/AIMastersDoJo/citclocationsdashboard/internal/usecases/dashboarding/mocks"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/apiErrors"
)

func serveDashboard(service dashboarding.DashboardService, target string) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(Dashboard(service)...))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGetDashboard(t *testing.T) {
	updated := time.Date(2024, 4, 22, 9, 0, 0, 0, time.UTC)
	capacity := 10
	startDate := "2024-04-22"

	t.Run("Sucesso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboardService(ctrl)

		expected := domain.SyncQuery{
			Start:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			End:         time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
			Locations:   []string{"Brisbane", "Sydney", "Perth"},
			RevenueMode: domain.RevenueModeInvoice,
		}

		service.EXPECT().
			Sync(gomock.Any(), expected).
			DoAndReturn(func(ctx context.Context, query domain.SyncQuery) (*domain.SyncResult, error) {
				assert.Nil(t, ctx.Done(), "sincronização não deve ser cancelada junto com a requisição")
				return &domain.SyncResult{
					Cached:  true,
					Updated: updated,
					Range:   domain.DateRange{Start: "2024-04-01", End: "2024-04-30"},
					Data: domain.LocationCards{
						"Brisbane": {{InstanceID: "12345", TrainingCategory: "Forklift", StartDate: &startDate, Numbers: 8, Capacity: &capacity, Revenue: 14360}},
						"Sydney":   {},
						"Perth":    {},
					},
				}, nil
			})

		rec := serveDashboard(service, "/v1/dashboard?start=2024-04-01&end=2024-04-30&locations=Brisbane,Sydney&locations=Perth&revenueMode=invoice")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["cached"])
		assert.Equal(t, "2024-04-22T09:00:00Z", body["updated"])
		assert.Equal(t, map[string]any{"start": "2024-04-01", "end": "2024-04-30"}, body["range"])

		data := body["data"].(map[string]any)
		assert.Equal(t, []any{}, data["Sydney"])
		card := data["Brisbane"].([]any)[0].(map[string]any)
		assert.Equal(t, map[string]any{
			"instanceID":       "12345",
			"trainingCategory": "Forklift",
			"startDate":        "2024-04-22",
			"endDate":          nil,
			"numbers":          float64(8),
			"capacity":         float64(10),
			"revenue":          float64(14360),
		}, card)
	})

	t.Run("Parâmetros inválidos não chegam ao serviço", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboardService(ctrl)

		rec := serveDashboard(service, "/v1/dashboard?start=2024-04-31&end=2024-04-30&locations=Brisbane&revenueMode=profit")

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, apiErrors.ErrInvalidFormat, body.Code)
		details := body.Details.(map[string]any)
		assert.Contains(t, details, "start")
		assert.Contains(t, details, "revenueMode")
	})

	t.Run("Sem localidades", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboardService(ctrl)

		rec := serveDashboard(service, "/v1/dashboard?start=2024-04-01&end=2024-04-30")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrMissingRequiredData)
	})

	t.Run("Falha operacional não expõe detalhes do upstream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockDashboardService(ctrl)

		upstreamErr := dashboarding.NewOperationalError(assert.AnError, apiErrors.ErrExternalService, "Brisbane")
		service.EXPECT().Sync(gomock.Any(), gomock.Any()).Return(nil, upstreamErr)

		rec := serveDashboard(service, "/v1/dashboard?start=2024-04-01&end=2024-04-30&locations=Brisbane")

		require.Equal(t, http.StatusBadGateway, rec.Code)

		var body apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, apiErrors.ErrExternalService, body.Code)
		assert.Nil(t, body.Details)
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
		assert.NotContains(t, rec.Body.String(), "Brisbane")
	})
}

func TestRouter_NotFound(t *testing.T) {
	rt := router.New(router.WithRoutes(Healthcheck()...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/nada", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrRouteNotFound)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
