package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Cadence representa a frequência de cobrança de um contrato (payment_schedule)
type Cadence int

const (
	CadenceMonthly Cadence = iota + 1
	CadenceQuarterly
)

var ErrInvalidCadence = errors.New("invalid payment schedule")

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ParseCadence aceita "monthly" ou "quarterly" sem diferenciar maiúsculas
func ParseCadence(value string) (Cadence, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "monthly":
		return CadenceMonthly, nil
	case "quarterly":
		return CadenceQuarterly, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidCadence, value)
}

func (c Cadence) IsValid() bool {
	return c == CadenceMonthly || c == CadenceQuarterly
}

func (c Cadence) String() string {
	switch c {
	case CadenceMonthly:
		return "monthly"
	case CadenceQuarterly:
		return "quarterly"
	}
	return ""
}

// PeriodsPerYear retorna 12 para mensal e 4 para trimestral
func (c Cadence) PeriodsPerYear() int {
	switch c {
	case CadenceMonthly:
		return 12
	case CadenceQuarterly:
		return 4
	}
	return 0
}

// PeriodName devolve o nome do período (mês por extenso ou Q1..Q4)
func (c Cadence) PeriodName(number int) string {
	if c == CadenceMonthly && number >= 1 && number <= len(monthNames) {
		return monthNames[number-1]
	}
	return fmt.Sprintf("Q%d", number)
}

func (c Cadence) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, ErrInvalidCadence
	}
	return []byte(c.String()), nil
}

func (c *Cadence) UnmarshalText(text []byte) error {
	parsed, err := ParseCadence(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// FormatPeriodLabel monta o rótulo exibido para um período aplicado a partir dos valores gravados
// no banco. Tipos diferentes de "monthly" são exibidos como trimestre.
func FormatPeriodLabel(periodType string, number, year int) string {
	cadence, err := ParseCadence(periodType)
	if err != nil {
		cadence = CadenceQuarterly
	}
	return fmt.Sprintf("%s %d", cadence.PeriodName(number), year)
}
