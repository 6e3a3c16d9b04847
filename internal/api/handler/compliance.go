package handler

import (
	"net/http"

	"github.com/vfg2006/fee-tracker-api/internal/domain"
	"github.com/vfg2006/fee-tracker-api/pkg/apiErrors"
)

type OutstandingReporter interface {
	LastReport() *domain.OutstandingReport
}

// GetOutstandingReport expõe o relatório da última varredura de conformidade
func GetOutstandingReport(reporter OutstandingReporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if reporter == nil {
			apiErrors.WriteError(w, apiErrors.ErrUnavailable, "Varredura de conformidade não disponível", nil)
			return
		}

		report := reporter.LastReport()
		if report == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Nenhuma varredura de conformidade concluída", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	})
}
