package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestClassifyVariance(t *testing.T) {
	tests := []struct {
		name        string
		actual      string
		expected    string
		wantStatus  VarianceStatus
		wantMessage string
		wantDiff    string
		wantPercent string
	}{
		{name: "exact match", actual: "1000", expected: "1000", wantStatus: VarianceExact, wantMessage: "Exact Match", wantDiff: "0", wantPercent: "0"},
		{name: "below one cent is exact", actual: "1000.005", expected: "1000", wantStatus: VarianceExact, wantMessage: "Exact Match", wantDiff: "0.005", wantPercent: "0.0005"},
		{name: "acceptable overpayment", actual: "1025", expected: "1000", wantStatus: VarianceAcceptable, wantMessage: "$25.00 (2.5%)", wantDiff: "25", wantPercent: "2.5"},
		{name: "five percent is acceptable", actual: "950", expected: "1000", wantStatus: VarianceAcceptable, wantMessage: "-$50.00 (-5.0%)", wantDiff: "-50", wantPercent: "-5"},
		{name: "fifteen percent is warning", actual: "1150", expected: "1000", wantStatus: VarianceWarning, wantMessage: "$150.00 (15.0%)", wantDiff: "150", wantPercent: "15"},
		{name: "underpayment warning", actual: "1329.50", expected: "1450", wantStatus: VarianceWarning, wantMessage: "-$120.50 (-8.3%)", wantDiff: "-120.5", wantPercent: "-8.31034482758621"},
		{name: "alert above fifteen percent", actual: "1200", expected: "1000", wantStatus: VarianceAlert, wantMessage: "$200.00 (20.0%)", wantDiff: "200", wantPercent: "20"},
		{name: "thousands separator", actual: "12500", expected: "10000", wantStatus: VarianceAlert, wantMessage: "$2,500.00 (25.0%)", wantDiff: "2500", wantPercent: "25"},
		{name: "percent above a thousand has no separator", actual: "2234567.891", expected: "1000", wantStatus: VarianceAlert, wantMessage: "$2,233,567.89 (223356.8%)", wantDiff: "2233567.891", wantPercent: "223356.7891"},
		{name: "amounts beyond float precision keep every digit", actual: "100000000000000000000", expected: "3", wantStatus: VarianceAlert, wantMessage: "$99,999,999,999,999,999,997.00 (3333333333333333333233.3%)", wantDiff: "99999999999999999997", wantPercent: "3333333333333333333233.33333333333333"},
		{name: "cents round up into the next thousand", actual: "10999.995", expected: "10000", wantStatus: VarianceWarning, wantMessage: "$1,000.00 (10.0%)", wantDiff: "999.995", wantPercent: "9.99995"},
		{name: "negative percent rounding to zero keeps the sign", actual: "999999.5", expected: "1000000", wantStatus: VarianceAcceptable, wantMessage: "-$0.50 (-0.0%)", wantDiff: "-0.5", wantPercent: "-0.00005"},
		{name: "thirds are not rounded", actual: "1", expected: "3", wantStatus: VarianceAlert, wantMessage: "-$2.00 (-66.7%)", wantDiff: "-2", wantPercent: "-66.66666666666667"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyVariance(dec(tt.actual), dec(tt.expected))

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantMessage, got.Message)
			require.NotNil(t, got.Difference)
			require.NotNil(t, got.PercentDifference)
			assert.True(t, dec(tt.wantDiff).Equal(*got.Difference), "difference %s", got.Difference)
			assert.True(t, dec(tt.wantPercent).Equal(*got.PercentDifference), "percent %s", got.PercentDifference)
		})
	}
}

func TestClassifyVariance_ZeroExpectedIsUnknown(t *testing.T) {
	for _, actual := range []string{"0", "500", "-10"} {
		got := ClassifyVariance(dec(actual), decimal.Zero)

		assert.Equal(t, VarianceUnknown, got.Status)
		assert.Equal(t, "N/A", got.Message)
		assert.Nil(t, got.Difference)
		assert.Nil(t, got.PercentDifference)
	}
}

func TestVarianceResult_JSON(t *testing.T) {
	body, err := json.Marshal(ClassifyVariance(dec("1025"), dec("1000")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"acceptable","message":"$25.00 (2.5%)","difference":25,"percent_difference":2.5}`, string(body))

	body, err = json.Marshal(ClassifyVariance(dec("10"), decimal.Zero))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"unknown","message":"N/A","difference":null,"percent_difference":null}`, string(body))
}

func TestVarianceStatus_String(t *testing.T) {
	assert.Equal(t, "exact", VarianceExact.String())
	assert.Equal(t, "acceptable", VarianceAcceptable.String())
	assert.Equal(t, "warning", VarianceWarning.String())
	assert.Equal(t, "alert", VarianceAlert.String())
	assert.Equal(t, "unknown", VarianceUnknown.String())
	assert.Equal(t, "unknown", VarianceStatus(42).String())
}

func TestExpectedFee(t *testing.T) {
	percentage := FeeTypePercentage
	flat := FeeTypeFlat

	got := ExpectedFee(&percentage, decimal.NewNullDecimal(dec("0.0025")), decimal.NullDecimal{}, decimal.NewNullDecimal(dec("400000")))
	require.True(t, got.Valid)
	assert.True(t, dec("1000").Equal(got.Decimal))

	got = ExpectedFee(&flat, decimal.NullDecimal{}, decimal.NewNullDecimal(dec("750")), decimal.NullDecimal{})
	require.True(t, got.Valid)
	assert.True(t, dec("750").Equal(got.Decimal))

	got = ExpectedFee(&percentage, decimal.NewNullDecimal(dec("0.0025")), decimal.NullDecimal{}, decimal.NullDecimal{})
	assert.False(t, got.Valid)

	got = ExpectedFee(nil, decimal.NullDecimal{}, decimal.NewNullDecimal(dec("750")), decimal.NullDecimal{})
	assert.False(t, got.Valid)
}
