package domain

import "github.com/shopspring/decimal"

func init() {
	// valores monetários saem como número no JSON, não como string
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	FeeTypePercentage = "percentage"
	FeeTypeFlat       = "flat"
)

// ExpectedFee calcula a taxa esperada a partir da estrutura do contrato.
// Percentual: ativos * percent_rate. Fixa: flat_rate. Sem dados suficientes o resultado é nulo.
func ExpectedFee(feeType *string, percentRate, flatRate, totalAssets decimal.NullDecimal) decimal.NullDecimal {
	if feeType == nil {
		return decimal.NullDecimal{}
	}

	switch *feeType {
	case FeeTypePercentage:
		if percentRate.Valid && !percentRate.Decimal.IsZero() && totalAssets.Valid && !totalAssets.Decimal.IsZero() {
			return decimal.NewNullDecimal(totalAssets.Decimal.Mul(percentRate.Decimal))
		}
	case FeeTypeFlat:
		if flatRate.Valid && !flatRate.Decimal.IsZero() {
			return decimal.NewNullDecimal(flatRate.Decimal)
		}
	}

	return decimal.NullDecimal{}
}
