package utils

import (
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryInt(t *testing.T) {
	values := url.Values{"page": {"3"}, "limit": {"abc"}}

	page, err := QueryInt(values, "page", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, page)

	fallback, err := QueryInt(values, "missing", 50)
	require.NoError(t, err)
	assert.Equal(t, 50, fallback)

	_, err = QueryInt(values, "limit", 50)
	assert.EqualError(t, err, "limit must be an integer")
}

func TestQueryOptionalInt(t *testing.T) {
	year, err := QueryOptionalInt(url.Values{"year": {"2024"}}, "year")
	require.NoError(t, err)
	require.NotNil(t, year)
	assert.Equal(t, 2024, *year)

	year, err = QueryOptionalInt(url.Values{}, "year")
	require.NoError(t, err)
	assert.Nil(t, year)
}

func TestQueryDecimal(t *testing.T) {
	value, err := QueryDecimal(url.Values{"actual_fee": {"1025.50"}}, "actual_fee")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1025.50").Equal(value))

	value, err = QueryDecimal(url.Values{}, "expected_fee")
	require.NoError(t, err)
	assert.True(t, value.IsZero())

	_, err = QueryDecimal(url.Values{"actual_fee": {"abc"}}, "actual_fee")
	assert.Error(t, err)
}

func TestPathID(t *testing.T) {
	id, err := PathID("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, raw := range []string{"", "0", "-3", "abc"} {
		_, err := PathID(raw)
		assert.Error(t, err, raw)
	}
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 10)
}
