package handler

import (
	"net/http"

	"github.com/vfg2006/fee-tracker-api/internal/usecases/periods"
	"github.com/vfg2006/fee-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/fee-tracker-api/pkg/utils"
)

// GetAvailablePeriods lista os períodos em aberto de um contrato para o formulário de pagamento
func GetAvailablePeriods(service periods.PeriodService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		clientID, err := utils.QueryInt(query, "client_id", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		contractID, err := utils.QueryInt(query, "contract_id", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		resp, err := service.AvailablePeriods(r.Context(), clientID, contractID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular períodos disponíveis")
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}
