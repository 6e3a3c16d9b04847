package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/fee-tracker-api/internal/domain"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/payment"
	"github.com/vfg2006/fee-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/fee-tracker-api/pkg/utils"
)

const (
	defaultPage         = 1
	defaultPaymentLimit = 50
)

func ListPayments(service payment.PaymentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		clientID, err := utils.QueryInt(query, "client_id", 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		year, err := utils.QueryOptionalInt(query, "year")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		page, err := utils.QueryInt(query, "page", defaultPage)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		limit, err := utils.QueryInt(query, "limit", defaultPaymentLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		payments, err := service.ListPayments(r.Context(), domain.PaymentFilter{
			ClientID: clientID,
			Year:     year,
			Page:     page,
			Limit:    limit,
		})
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar pagamentos")
			return
		}

		writeJSON(w, r, http.StatusOK, payments)
	})
}

func GetPayment(service payment.PaymentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.PathID(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do pagamento inválido", nil)
			return
		}

		p, err := service.GetPayment(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar pagamento")
			return
		}

		writeJSON(w, r, http.StatusOK, p)
	})
}

func CreatePayment(service payment.PaymentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreatePaymentRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		created, err := service.CreatePayment(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar pagamento")
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	})
}

func UpdatePayment(service payment.PaymentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.PathID(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do pagamento inválido", nil)
			return
		}

		var req domain.UpdatePaymentRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}
		req.ID = id

		if err := service.UpdatePayment(r.Context(), &req); err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar pagamento")
			return
		}

		writeJSON(w, r, http.StatusOK, messageResponse{Message: "Payment updated successfully"})
	})
}

func DeletePayment(service payment.PaymentService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := utils.PathID(httprouter.ParamsFromContext(r.Context()).ByName("id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do pagamento inválido", nil)
			return
		}

		if err := service.DeletePayment(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover pagamento")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
