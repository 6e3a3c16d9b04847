package domain

// AvailablePeriod representa um período em aberto que pode receber um pagamento
type AvailablePeriod struct {
	Value      string  `json:"value"` // formato "<período>-<ano>"
	Label      string  `json:"label"`
	Period     int     `json:"period"`
	Year       int     `json:"year"`
	PeriodType Cadence `json:"period_type"`
}

// AvailablePeriods é a resposta do endpoint de períodos disponíveis de um contrato
type AvailablePeriods struct {
	Periods         []AvailablePeriod `json:"periods"`
	PaymentSchedule Cadence           `json:"payment_schedule"`
}

func NewAvailablePeriod(p Period) AvailablePeriod {
	return AvailablePeriod{
		Value:      p.Value(),
		Label:      p.Label(),
		Period:     p.Number(),
		Year:       p.Year(),
		PeriodType: p.Cadence(),
	}
}

func NewAvailablePeriods(cadence Cadence, periods []Period) *AvailablePeriods {
	items := make([]AvailablePeriod, 0, len(periods))
	for _, p := range periods {
		items = append(items, NewAvailablePeriod(p))
	}

	return &AvailablePeriods{
		Periods:         items,
		PaymentSchedule: cadence,
	}
}
