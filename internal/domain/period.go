package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var ErrInvalidPeriod = errors.New("invalid period")

// Period identifica um período de cobrança (número, ano) dentro de uma cadência.
// É um valor imutável; a ordem é por ano e depois pelo número do período.
type Period struct {
	cadence Cadence
	number  int
	year    int
}

func NewPeriod(cadence Cadence, number, year int) (Period, error) {
	if !cadence.IsValid() {
		return Period{}, ErrInvalidCadence
	}
	if number < 1 || number > cadence.PeriodsPerYear() {
		return Period{}, fmt.Errorf("%w: %d for %s schedule", ErrInvalidPeriod, number, cadence)
	}
	return Period{cadence: cadence, number: number, year: year}, nil
}

func (p Period) Cadence() Cadence { return p.cadence }
func (p Period) Number() int { return p.number }
func (p Period) Year() int { return p.year }

func (p Period) IsZero() bool {
	return p == Period{}
}

// Compare retorna -1, 0 ou 1 comparando (ano, número)
func (p Period) Compare(other Period) int {
	switch {
	case p.year < other.year:
		return -1
	case p.year > other.year:
		return 1
	case p.number < other.number:
		return -1
	case p.number > other.number:
		return 1
	}
	return 0
}

func (p Period) Before(other Period) bool {
	return p.Compare(other) < 0
}

// Next avança um período, virando o ano após o último período
func (p Period) Next() Period {
	if p.number >= p.cadence.PeriodsPerYear() {
		return Period{cadence: p.cadence, number: 1, year: p.year + 1}
	}
	return Period{cadence: p.cadence, number: p.number + 1, year: p.year}
}

// Value é o identificador usado pelo frontend: "<período>-<ano>"
func (p Period) Value() string {
	return fmt.Sprintf("%d-%d", p.number, p.year)
}

// Label é o rótulo legível: "January 2025" ou "Q1 2025"
func (p Period) Label() string {
	return fmt.Sprintf("%s %d", p.cadence.PeriodName(p.number), p.year)
}

func (p Period) String() string {
	return p.Label()
}

// CollectionPeriod retorna o período que está sendo cobrado em "today".
// Os pagamentos são feitos em atraso: cobra-se o último período completo.
func CollectionPeriod(cadence Cadence, today time.Time) Period {
	month := int(today.Month())
	year := today.Year()

	if cadence == CadenceQuarterly {
		quarter := (month-1)/3 + 1
		if quarter == 1 {
			return Period{cadence: cadence, number: 4, year: year - 1}
		}
		return Period{cadence: cadence, number: quarter - 1, year: year}
	}

	if month == 1 {
		return Period{cadence: CadenceMonthly, number: 12, year: year - 1}
	}
	return Period{cadence: CadenceMonthly, number: month - 1, year: year}
}

// DefaultEarliestPeriod é usado quando o cliente não tem histórico de pagamentos
func DefaultEarliestPeriod(cadence Cadence, today time.Time) Period {
	return Period{cadence: cadence, number: 1, year: today.Year()}
}

// PaidPeriodSet guarda os períodos já pagos de um cliente
type PaidPeriodSet map[Period]struct{}

func NewPaidPeriodSet(periods ...Period) PaidPeriodSet {
	set := make(PaidPeriodSet, len(periods))
	for _, p := range periods {
		set.Add(p)
	}
	return set
}

func (s PaidPeriodSet) Add(p Period) {
	s[p] = struct{}{}
}

func (s PaidPeriodSet) Contains(p Period) bool {
	_, ok := s[p]
	return ok
}

// EnumerateOutstandingPeriods lista os períodos entre earliest e o período de cobrança atual
// que ainda não foram pagos, do mais recente para o mais antigo.
// Um earliest zerado ou de outra cadência é substituído pelo período 1 do ano corrente.
func EnumerateOutstandingPeriods(cadence Cadence, paid PaidPeriodSet, earliest Period, today time.Time) []Period {
	if !cadence.IsValid() {
		return nil
	}

	current := CollectionPeriod(cadence, today)

	cursor := earliest
	if cursor.IsZero() || cursor.cadence != cadence {
		cursor = DefaultEarliestPeriod(cadence, today)
	}

	// O teto de ano só corta a iteração se Next deixar de avançar o cursor
	outstanding := make([]Period, 0)
	for ; !current.Before(cursor) && cursor.year <= current.year+1; cursor = cursor.Next() {
		if !paid.Contains(cursor) {
			outstanding = append(outstanding, cursor)
		}
	}

	sort.Slice(outstanding, func(i, j int) bool {
		return outstanding[j].Before(outstanding[i])
	})

	return outstanding
}
