package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/client"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/contract"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/dashboard"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/payment"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/periods"
	"github.com/vfg2006/fee-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/fee-tracker-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

func decodeBody(r *http.Request, dest any) error {
	return json.NewDecoder(r.Body).Decode(dest)
}

// writeServiceError traduz os erros dos casos de uso para o formato padrão da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		clientErr    *client.ClientError
		contractErr  *contract.ContractError
		paymentErr   *payment.PaymentError
		periodErr    *periods.PeriodError
		dashboardErr *dashboard.DashboardError
	)

	switch {
	case errors.As(err, &clientErr):
		apiErrors.WriteError(w, clientErr.Code, clientErr.Error(), structuredDetails(clientErr.Details))
	case errors.As(err, &contractErr):
		apiErrors.WriteError(w, contractErr.Code, contractErr.Error(), structuredDetails(contractErr.Details))
	case errors.As(err, &paymentErr):
		apiErrors.WriteError(w, paymentErr.Code, paymentErr.Error(), structuredDetails(paymentErr.Details))
	case errors.As(err, &periodErr):
		apiErrors.WriteError(w, periodErr.Code, periodErr.Error(), nil)
	case errors.As(err, &dashboardErr):
		apiErrors.WriteError(w, dashboardErr.Code, dashboardErr.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

// structuredDetails descarta detalhes textuais, que já fazem parte da mensagem
func structuredDetails(details any) any {
	if _, ok := details.(string); ok {
		return nil
	}
	return details
}
