package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/fee-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/fee-tracker-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCompliance = "compliance"
	CronJobTypeAll        = "all"
)

type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	ComplianceSweep CronJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeCompliance, CronJobTypeAll:
			if services.ComplianceSweep == nil {
				apiErrors.WriteError(w, apiErrors.ErrUnavailable, "Varredura de conformidade não disponível", nil)
				return
			}
			services.ComplianceSweep.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: compliance, all", nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status de uma cron job ou de todas ("all")
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		status := map[string]any{}
		switch cronType {
		case CronJobTypeCompliance, CronJobTypeAll:
			if services.ComplianceSweep != nil {
				status[CronJobTypeCompliance] = services.ComplianceSweep.GetStatus()
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: compliance, all", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
