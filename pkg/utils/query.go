package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// QueryInt lê um inteiro da query string, usando fallback quando ausente
func QueryInt(values url.Values, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return value, nil
}

// QueryOptionalInt devolve nil quando o parâmetro não foi informado
func QueryOptionalInt(values url.Values, key string) (*int, error) {
	if strings.TrimSpace(values.Get(key)) == "" {
		return nil, nil
	}

	value, err := QueryInt(values, key, 0)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// QueryDecimal lê um valor decimal da query string; ausente vale zero
func QueryDecimal(values url.Values, key string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return decimal.Zero, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s must be numeric", key)
	}
	return value, nil
}

// PathID converte o parâmetro de rota em um ID positivo
func PathID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
