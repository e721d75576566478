package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/apiErrors"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDashboardWarmup = "dashboard-warmup"
	CronJobTypeAll             = "all"
)

// CronJob é o contrato dos agendadores que podem ser disparados manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DashboardWarmupService CronJob
}

func (s CronJobServices) jobs() map[string]CronJob {
	jobs := make(map[string]CronJob)
	if s.DashboardWarmupService != nil {
		jobs[CronJobTypeDashboardWarmup] = s.DashboardWarmupService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logger := log.ForContext(r.Context()).WithField("cron_type", cronType)
		logger.Info("cron: execução manual solicitada")

		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.jobs()

		switch cronType {
		case CronJobTypeAll:
			for _, job := range jobs {
				job.TriggerManualSync()
			}
		default:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dashboard-warmup, all", nil)
				return
			}
			job.TriggerManualSync()
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
