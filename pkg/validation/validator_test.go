package validation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fee-tracker-api/internal/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int { return &i }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var validationErr *Error
	require.True(t, errors.As(err, &validationErr), "expected *validation.Error, got %v", err)

	names := make([]string, 0, len(validationErr.Fields))
	for _, f := range validationErr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		payload    any
		wantFields []string
		wantMsg    string
	}{
		{
			name:    "valid client",
			payload: &domain.CreateClientRequest{DisplayName: "AirSea America", FullName: strPtr("AirSea America 401k Plan")},
		},
		{
			name:       "client without display name",
			payload:    &domain.CreateClientRequest{},
			wantFields: []string{"display_name"},
		},
		{
			name: "contract percent rate above one",
			payload: &domain.CreateContractRequest{
				ClientID:    1,
				FeeType:     strPtr("percentage"),
				PercentRate: decPtr("1.5"),
			},
			wantFields: []string{"percent_rate"},
		},
		{
			name:       "contract negative flat rate",
			payload:    &domain.CreateContractRequest{ClientID: 1, FeeType: strPtr("flat"), FlatRate: decPtr("-1")},
			wantFields: []string{"flat_rate"},
		},
		{
			name:    "contract percentage without rate",
			payload: &domain.CreateContractRequest{ClientID: 1, FeeType: strPtr("percentage")},
			wantMsg: domain.ErrPercentRateRequired.Error(),
		},
		{
			name: "schedule is case insensitive",
			payload: &domain.CreateContractRequest{
				ClientID:        1,
				FeeType:         strPtr("flat"),
				FlatRate:        decPtr("250"),
				PaymentSchedule: strPtr("Quarterly"),
			},
		},
		{
			name:       "unknown schedule",
			payload:    &domain.CreateContractRequest{ClientID: 1, PaymentSchedule: strPtr("weekly")},
			wantFields: []string{"payment_schedule"},
		},
		{
			name: "payment period outside month range",
			payload: &domain.CreatePaymentRequest{
				ContractID:        1,
				ClientID:          1,
				AppliedPeriodType: strPtr("monthly"),
				AppliedPeriod:     intPtr(13),
				AppliedYear:       intPtr(2025),
			},
			wantFields: []string{"applied_period"},
		},
		{
			name: "quarterly payment period above four",
			payload: &domain.CreatePaymentRequest{
				ContractID:        1,
				ClientID:          1,
				AppliedPeriodType: strPtr("quarterly"),
				AppliedPeriod:     intPtr(5),
				AppliedYear:       intPtr(2025),
			},
			wantMsg: domain.ErrQuarterlyPeriodRange.Error(),
		},
		{
			name: "negative payment amount and bad year",
			payload: &domain.CreatePaymentRequest{
				ContractID:  1,
				ClientID:    1,
				ActualFee:   decPtr("-10"),
				AppliedYear: intPtr(1999),
			},
			wantFields: []string{"actual_fee", "applied_year"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.payload)

			switch {
			case len(tt.wantFields) > 0:
				assert.ElementsMatch(t, tt.wantFields, fieldNames(t, err))
			case tt.wantMsg != "":
				require.Error(t, err)
				assert.Equal(t, tt.wantMsg, err.Error())
			default:
				assert.NoError(t, err)
			}
		})
	}
}
