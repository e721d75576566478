package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/AIMastersDoJo/citclocationsdashboard/internal/usecases/dashboarding"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/apiErrors"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/log"
)

// GetDashboard retorna os cards por localidade para a janela de datas pedida.
// Aceita locations separado por vírgula ou repetido na query string.
func GetDashboard(service dashboarding.DashboardService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		params := r.URL.Query()

		request := dashboarding.DashboardRequest{
			Start:       params.Get("start"),
			End:         params.Get("end"),
			Locations:   dashboarding.SplitLocations(strings.Join(params["locations"], ",")),
			RevenueMode: params.Get("revenueMode"),
		}

		query, err := dashboarding.ParseSyncQuery(request)
		if err != nil {
			var validationErr *dashboarding.ValidationError
			if errors.As(err, &validationErr) {
				logger.WithField("error", validationErr.Error()).Warn("dashboard: parâmetros inválidos")
				apiErrors.WriteError(w, validationErr.Code, "Parâmetros inválidos", validationErr.Fields)
				return
			}

			logger.WithError(err).Warn("dashboard: erro ao validar parâmetros")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetros inválidos", nil)
			return
		}

		// A sincronização segue até o fim mesmo se o cliente desconectar,
		// para que o resultado ainda seja gravado no cache
		result, err := service.Sync(context.WithoutCancel(r.Context()), query)
		if err != nil {
			logger.WithError(err).WithField("cache_key", query.CacheKey()).Error("dashboard: erro ao sincronizar")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Não foi possível carregar o dashboard. Tente novamente em instantes.", nil)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
