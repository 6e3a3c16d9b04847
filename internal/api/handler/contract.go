package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/fee-tracker-api/internal/domain"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/contract"
	"github.com/vfg2006/fee-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/fee-tracker-api/pkg/utils"
)

func ListContracts(service contract.ContractService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := domain.ContractFilter{Provider: r.URL.Query().Get("provider")}

		contracts, err := service.ListContracts(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar contratos")
			return
		}

		writeJSON(w, r, http.StatusOK, contracts)
	})
}

func GetContract(service contract.ContractService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.PathID(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do contrato inválido", nil)
			return
		}

		c, err := service.GetContract(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar contrato")
			return
		}

		writeJSON(w, r, http.StatusOK, c)
	})
}

// GetClientContract devolve o contrato ativo de um cliente
func GetClientContract(service contract.ContractService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID, err := utils.PathID(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
			return
		}

		c, err := service.GetClientContract(r.Context(), clientID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar contrato do cliente")
			return
		}

		writeJSON(w, r, http.StatusOK, c)
	})
}

func CreateContract(service contract.ContractService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateContractRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		created, err := service.CreateContract(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar contrato")
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	})
}

func UpdateContract(service contract.ContractService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.PathID(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do contrato inválido", nil)
			return
		}

		var req domain.UpdateContractRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}
		req.ID = id

		if err := service.UpdateContract(r.Context(), &req); err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar contrato")
			return
		}

		writeJSON(w, r, http.StatusOK, messageResponse{Message: "Contract updated successfully"})
	})
}

func DeleteContract(service contract.ContractService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.PathID(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do contrato inválido", nil)
			return
		}

		if err := service.DeleteContract(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover contrato")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
