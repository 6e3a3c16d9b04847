package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/dashboard"
	"github.com/vfg2006/fee-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/fee-tracker-api/pkg/utils"
)

func GetDashboard(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID, err := utils.PathID(httprouter.ParamsFromContext(r.Context()).ByName("client_id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
			return
		}

		resp, err := service.GetDashboard(r.Context(), clientID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar dashboard")
			return
		}

		writeJSON(w, r, http.StatusOK, resp)
	})
}
