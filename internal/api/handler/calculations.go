package handler

import (
	"net/http"

	"github.com/vfg2006/fee-tracker-api/internal/domain"
	"github.com/vfg2006/fee-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/fee-tracker-api/pkg/utils"
)

const invalidFeeAmounts = "Invalid fee amounts"

// CalculateVariance classifica a diferença entre a taxa recebida e a esperada
func CalculateVariance() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		actual, err := utils.QueryDecimal(query, "actual_fee")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, invalidFeeAmounts, nil)
			return
		}

		expected, err := utils.QueryDecimal(query, "expected_fee")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, invalidFeeAmounts, nil)
			return
		}

		writeJSON(w, r, http.StatusOK, domain.ClassifyVariance(actual, expected))
	})
}
