package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// VarianceStatus classifica a diferença entre a taxa recebida e a esperada
type VarianceStatus int

const (
	VarianceUnknown VarianceStatus = iota
	VarianceExact
	VarianceAcceptable
	VarianceWarning
	VarianceAlert
)

var varianceStatusNames = map[VarianceStatus]string{
	VarianceUnknown:    "unknown",
	VarianceExact:      "exact",
	VarianceAcceptable: "acceptable",
	VarianceWarning:    "warning",
	VarianceAlert:      "alert",
}

func (s VarianceStatus) String() string {
	if name, ok := varianceStatusNames[s]; ok {
		return name
	}
	return varianceStatusNames[VarianceUnknown]
}

func (s VarianceStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

const (
	VarianceMessageUnknown = "N/A"
	VarianceMessageExact   = "Exact Match"
)

var (
	exactTolerance  = decimal.RequireFromString("0.01")
	acceptableLimit = decimal.NewFromInt(5)
	warningLimit    = decimal.NewFromInt(15)
	oneHundred      = decimal.NewFromInt(100)

	amountPrinter = message.NewPrinter(language.English)
)

// VarianceResult é calculado por requisição e nunca persistido
type VarianceResult struct {
	Status            VarianceStatus   `json:"status"`
	Message           string           `json:"message"`
	Difference        *decimal.Decimal `json:"difference"`
	PercentDifference *decimal.Decimal `json:"percent_difference"`
}

// ClassifyVariance compara a taxa recebida com a esperada. As regras são avaliadas em ordem:
// esperado zero, diferença abaixo de um centavo e então as faixas percentuais (5% e 15%, inclusivas).
func ClassifyVariance(actual, expected decimal.Decimal) VarianceResult {
	if expected.IsZero() {
		return VarianceResult{
			Status:  VarianceUnknown,
			Message: VarianceMessageUnknown,
		}
	}

	difference := actual.Sub(expected)
	percent := difference.Div(expected).Mul(oneHundred)

	result := VarianceResult{
		Difference:        &difference,
		PercentDifference: decimalPtr(percent),
	}

	if difference.Abs().LessThan(exactTolerance) {
		result.Status = VarianceExact
		result.Message = VarianceMessageExact
		return result
	}

	absPercent := percent.Abs()
	switch {
	case absPercent.LessThanOrEqual(acceptableLimit):
		result.Status = VarianceAcceptable
	case absPercent.LessThanOrEqual(warningLimit):
		result.Status = VarianceWarning
	default:
		result.Status = VarianceAlert
	}

	result.Message = formatVarianceMessage(difference, percent)

	return result
}

// formatVarianceMessage gera "-$1,234.50 (-8.3%)". Só o valor em dólares leva separador de milhar.
func formatVarianceMessage(difference, percent decimal.Decimal) string {
	sign := ""
	if difference.IsNegative() {
		sign = "-"
	}

	pct := percent.StringFixed(1)
	if percent.IsNegative() && !strings.HasPrefix(pct, "-") {
		pct = "-" + pct
	}

	return sign + "$" + formatAmount(difference.Abs()) + " (" + pct + "%)"
}

// formatAmount agrupa a parte inteira em milhares sem passar por float64
func formatAmount(amount decimal.Decimal) string {
	amount = amount.Round(2)
	whole, cents, _ := strings.Cut(amount.StringFixed(2), ".")

	integer := amount.Truncate(0).BigInt()
	if integer.IsInt64() {
		return amountPrinter.Sprintf("%d", integer.Int64()) + "." + cents
	}

	// Acima de int64 o agrupamento é feito sobre os dígitos
	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return b.String() + "." + cents
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
