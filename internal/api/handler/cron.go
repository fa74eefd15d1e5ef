package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/retail-insights-api/internal/scheduler"
	"github.com/vfg2006/retail-insights-api/pkg/apiErrors"
	"github.com/vfg2006/retail-insights-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeStrategicDigest = "strategic-digest"
	CronJobTypeAll             = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	StrategicDigestService *scheduler.StrategicDigestService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeStrategicDigest, CronJobTypeAll:
			if services.StrategicDigestService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de resumo estratégico não disponível", nil)
				return
			}
			if !services.StrategicDigestService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrJobRunning, "Resumo estratégico já está em execução", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Tipo de cron job inválido. Valores aceitos: strategic-digest, all", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.StrategicDigestService != nil {
			status[CronJobTypeStrategicDigest] = services.StrategicDigestService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
