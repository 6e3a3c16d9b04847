package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/fee-tracker-api/internal/domain"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/client"
	"github.com/vfg2006/fee-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/fee-tracker-api/pkg/utils"
)

func ListClients(service client.ClientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter := domain.ClientFilter{Provider: r.URL.Query().Get("provider")}

		clients, err := service.ListClients(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar clientes")
			return
		}

		writeJSON(w, r, http.StatusOK, clients)
	})
}

func GetClient(service client.ClientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.PathID(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
			return
		}

		c, err := service.GetClient(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar cliente")
			return
		}

		writeJSON(w, r, http.StatusOK, c)
	})
}

func CreateClient(service client.ClientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateClientRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		created, err := service.CreateClient(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar cliente")
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	})
}

func UpdateClient(service client.ClientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.PathID(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
			return
		}

		var req domain.UpdateClientRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		req.ID = id

		if err := service.UpdateClient(r.Context(), &req); err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar cliente")
			return
		}

		writeJSON(w, r, http.StatusOK, messageResponse{Message: "Client updated successfully"})
	})
}

func DeleteClient(service client.ClientService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.PathID(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
			return
		}

		if err := service.DeleteClient(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover cliente")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
