package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPeriod(t *testing.T, cadence Cadence, number, year int) Period {
	t.Helper()
	p, err := NewPeriod(cadence, number, year)
	require.NoError(t, err)
	return p
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 10, 0, 0, 0, time.UTC)
}

func TestParseCadence(t *testing.T) {
	tests := []struct {
		input   string
		want    Cadence
		wantErr bool
	}{
		{input: "monthly", want: CadenceMonthly},
		{input: "Monthly", want: CadenceMonthly},
		{input: " QUARTERLY ", want: CadenceQuarterly},
		{input: "weekly", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCadence(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCadence)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPeriod_RejectsOutOfRange(t *testing.T) {
	_, err := NewPeriod(CadenceQuarterly, 5, 2025)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = NewPeriod(CadenceMonthly, 0, 2025)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = NewPeriod(Cadence(0), 1, 2025)
	assert.ErrorIs(t, err, ErrInvalidCadence)
}

func TestPeriod_NextRollsOverYear(t *testing.T) {
	assert.Equal(t, mustPeriod(t, CadenceMonthly, 1, 2025), mustPeriod(t, CadenceMonthly, 12, 2024).Next())
	assert.Equal(t, mustPeriod(t, CadenceQuarterly, 1, 2025), mustPeriod(t, CadenceQuarterly, 4, 2024).Next())
	assert.Equal(t, mustPeriod(t, CadenceQuarterly, 3, 2024), mustPeriod(t, CadenceQuarterly, 2, 2024).Next())
}

func TestPeriod_LabelAndValue(t *testing.T) {
	p := mustPeriod(t, CadenceMonthly, 3, 2025)
	assert.Equal(t, "March 2025", p.Label())
	assert.Equal(t, "3-2025", p.Value())

	q := mustPeriod(t, CadenceQuarterly, 2, 2024)
	assert.Equal(t, "Q2 2024", q.Label())
	assert.Equal(t, "2-2024", q.Value())
}

func TestCollectionPeriod(t *testing.T) {
	tests := []struct {
		name    string
		cadence Cadence
		today   time.Time
		want    [2]int
	}{
		{name: "monthly january goes to previous december", cadence: CadenceMonthly, today: day(2025, time.January, 15), want: [2]int{12, 2024}},
		{name: "monthly march collects february", cadence: CadenceMonthly, today: day(2025, time.March, 1), want: [2]int{2, 2025}},
		{name: "quarterly in Q1 collects Q4 of previous year", cadence: CadenceQuarterly, today: day(2025, time.February, 20), want: [2]int{4, 2024}},
		{name: "quarterly in Q2 collects Q1", cadence: CadenceQuarterly, today: day(2025, time.May, 2), want: [2]int{1, 2025}},
		{name: "quarterly in december collects Q3", cadence: CadenceQuarterly, today: day(2025, time.December, 31), want: [2]int{3, 2025}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollectionPeriod(tt.cadence, tt.today)
			assert.Equal(t, tt.want[0], got.Number())
			assert.Equal(t, tt.want[1], got.Year())
			assert.Equal(t, tt.cadence, got.Cadence())
		})
	}
}

func TestEnumerateOutstandingPeriods(t *testing.T) {
	tests := []struct {
		name     string
		cadence  Cadence
		paid     func(t *testing.T) PaidPeriodSet
		earliest func(t *testing.T) Period
		today    time.Time
		want     []string
	}{
		{
			name:    "monthly with one paid period",
			cadence: CadenceMonthly,
			paid: func(t *testing.T) PaidPeriodSet {
				return NewPaidPeriodSet(mustPeriod(t, CadenceMonthly, 1, 2025))
			},
			earliest: func(t *testing.T) Period { return mustPeriod(t, CadenceMonthly, 1, 2025) },
			today:    day(2025, time.April, 10),
			want:     []string{"March 2025", "February 2025"},
		},
		{
			name:     "monthly across year boundary",
			cadence:  CadenceMonthly,
			paid:     func(t *testing.T) PaidPeriodSet { return NewPaidPeriodSet() },
			earliest: func(t *testing.T) Period { return mustPeriod(t, CadenceMonthly, 11, 2024) },
			today:    day(2025, time.February, 5),
			want:     []string{"January 2025", "December 2024", "November 2024"},
		},
		{
			name:    "fully paid range is empty",
			cadence: CadenceMonthly,
			paid: func(t *testing.T) PaidPeriodSet {
				return NewPaidPeriodSet(
					mustPeriod(t, CadenceMonthly, 1, 2025),
					mustPeriod(t, CadenceMonthly, 2, 2025),
				)
			},
			earliest: func(t *testing.T) Period { return mustPeriod(t, CadenceMonthly, 1, 2025) },
			today:    day(2025, time.March, 3),
			want:     []string{},
		},
		{
			name:     "earliest after collection period is empty",
			cadence:  CadenceMonthly,
			paid:     func(t *testing.T) PaidPeriodSet { return NewPaidPeriodSet() },
			earliest: func(t *testing.T) Period { return mustPeriod(t, CadenceMonthly, 6, 2025) },
			today:    day(2025, time.March, 3),
			want:     []string{},
		},
		{
			name:     "no history in january yields nothing",
			cadence:  CadenceMonthly,
			paid:     func(t *testing.T) PaidPeriodSet { return NewPaidPeriodSet() },
			earliest: func(t *testing.T) Period { return Period{} },
			today:    day(2025, time.January, 20),
			want:     []string{},
		},
		{
			name:     "no history defaults to first period of the year",
			cadence:  CadenceMonthly,
			paid:     func(t *testing.T) PaidPeriodSet { return NewPaidPeriodSet() },
			earliest: func(t *testing.T) Period { return Period{} },
			today:    day(2025, time.March, 20),
			want:     []string{"February 2025", "January 2025"},
		},
		{
			name:    "quarterly skips paid quarter",
			cadence: CadenceQuarterly,
			paid: func(t *testing.T) PaidPeriodSet {
				return NewPaidPeriodSet(mustPeriod(t, CadenceQuarterly, 4, 2024))
			},
			earliest: func(t *testing.T) Period { return mustPeriod(t, CadenceQuarterly, 3, 2024) },
			today:    day(2025, time.August, 1),
			want:     []string{"Q2 2025", "Q1 2025", "Q3 2024"},
		},
		{
			name:     "quarterly in Q1 includes Q4 of previous year",
			cadence:  CadenceQuarterly,
			paid:     func(t *testing.T) PaidPeriodSet { return NewPaidPeriodSet() },
			earliest: func(t *testing.T) Period { return mustPeriod(t, CadenceQuarterly, 4, 2024) },
			today:    day(2025, time.January, 7),
			want:     []string{"Q4 2024"},
		},
		{
			name:    "paid periods from another cadence are ignored",
			cadence: CadenceQuarterly,
			paid: func(t *testing.T) PaidPeriodSet {
				return NewPaidPeriodSet(mustPeriod(t, CadenceMonthly, 1, 2025))
			},
			earliest: func(t *testing.T) Period { return mustPeriod(t, CadenceQuarterly, 1, 2025) },
			today:    day(2025, time.April, 2),
			want:     []string{"Q1 2025"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnumerateOutstandingPeriods(tt.cadence, tt.paid(t), tt.earliest(t), tt.today)

			labels := make([]string, 0, len(got))
			for _, p := range got {
				labels = append(labels, p.Label())
			}
			assert.Equal(t, tt.want, labels)
		})
	}
}

func TestEnumerateOutstandingPeriods_IsIdempotent(t *testing.T) {
	paid := NewPaidPeriodSet(mustPeriod(t, CadenceMonthly, 5, 2024))
	earliest := mustPeriod(t, CadenceMonthly, 1, 2024)
	today := day(2025, time.June, 30)

	first := EnumerateOutstandingPeriods(CadenceMonthly, paid, earliest, today)
	second := EnumerateOutstandingPeriods(CadenceMonthly, paid, earliest, today)

	assert.Equal(t, first, second)
	assert.Len(t, first, 16)
	assert.Equal(t, "May 2025", first[0].Label())
	assert.Equal(t, "January 2024", first[len(first)-1].Label())
}

func TestEnumerateOutstandingPeriods_WalksEveryYearSinceEarliest(t *testing.T) {
	earliest := mustPeriod(t, CadenceQuarterly, 1, 2019)
	today := day(2025, time.August, 1)

	got := EnumerateOutstandingPeriods(CadenceQuarterly, NewPaidPeriodSet(), earliest, today)

	require.Len(t, got, 26)
	assert.Equal(t, "Q2 2025", got[0].Label())
	assert.Equal(t, "Q1 2019", got[len(got)-1].Label())
}

func TestNewAvailablePeriods(t *testing.T) {
	periods := []Period{mustPeriod(t, CadenceQuarterly, 1, 2025)}

	got := NewAvailablePeriods(CadenceQuarterly, periods)

	require.Len(t, got.Periods, 1)
	assert.Equal(t, AvailablePeriod{
		Value:      "1-2025",
		Label:      "Q1 2025",
		Period:     1,
		Year:       2025,
		PeriodType: CadenceQuarterly,
	}, got.Periods[0])
	assert.Equal(t, CadenceQuarterly, got.PaymentSchedule)
}
