package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrQuarterlyPeriodRange = errors.New("quarterly period must be between 1 and 4")

const (
	DefaultPaymentsPage  = 1
	DefaultPaymentsLimit = 50
)

type Payment struct {
	ID                int                 `json:"payment_id"`
	ContractID        int                 `json:"contract_id"`
	ClientID          int                 `json:"client_id"`
	ReceivedDate      *string             `json:"received_date"`
	TotalAssets       decimal.NullDecimal `json:"total_assets"`
	ExpectedFee       decimal.NullDecimal `json:"expected_fee"`
	ActualFee         decimal.NullDecimal `json:"actual_fee"`
	Method            *string             `json:"method"`
	Notes             *string             `json:"notes"`
	AppliedPeriodType *string             `json:"applied_period_type"`
	AppliedPeriod     *int                `json:"applied_period"`
	AppliedYear       *int                `json:"applied_year"`
	ValidFrom         *time.Time          `json:"valid_from,omitempty"`
	ValidTo           *time.Time          `json:"valid_to,omitempty"`
}

// PaymentDetail é o pagamento com os dados do cliente e do contrato usados na listagem
type PaymentDetail struct {
	Payment
	ClientName      *string             `json:"client_name"`
	ProviderName    *string             `json:"provider_name"`
	FeeType         *string             `json:"fee_type"`
	PercentRate     decimal.NullDecimal `json:"percent_rate"`
	FlatRate        decimal.NullDecimal `json:"flat_rate"`
	PaymentSchedule *string             `json:"payment_schedule"`
	HasFiles        bool                `json:"has_files"`
}

// FillExpectedFee completa a taxa esperada a partir do contrato quando ela não foi gravada
func (p *PaymentDetail) FillExpectedFee() {
	if p.ExpectedFee.Valid {
		return
	}
	p.ExpectedFee = ExpectedFee(p.FeeType, p.PercentRate, p.FlatRate, p.TotalAssets)
}

type PaymentFilter struct {
	ClientID int
	Year     *int
	Page     int
	Limit    int
}

func (f PaymentFilter) Offset() uint64 {
	if f.Page <= 1 {
		return 0
	}
	return uint64((f.Page - 1) * f.Limit)
}

type CreatePaymentRequest struct {
	ContractID        int              `json:"contract_id" validate:"required,gt=0"`
	ClientID          int              `json:"client_id" validate:"required,gt=0"`
	ReceivedDate      *string          `json:"received_date" validate:"omitnil,max=50"`
	TotalAssets       *decimal.Decimal `json:"total_assets" validate:"omitnil,gte=0"`
	ExpectedFee       *decimal.Decimal `json:"expected_fee" validate:"omitnil,gte=0"`
	ActualFee         *decimal.Decimal `json:"actual_fee" validate:"omitnil,gte=0"`
	Method            *string          `json:"method" validate:"omitnil,max=50"`
	Notes             *string          `json:"notes"`
	AppliedPeriodType *string          `json:"applied_period_type" validate:"omitnil,oneofci=monthly quarterly"`
	AppliedPeriod     *int             `json:"applied_period" validate:"omitnil,gte=1,lte=12"`
	AppliedYear       *int             `json:"applied_year" validate:"omitnil,gte=2000,lte=2100"`
}

func (r *CreatePaymentRequest) Validate() error {
	return validateAppliedPeriod(r.AppliedPeriodType, r.AppliedPeriod)
}

func (r *CreatePaymentRequest) Normalize() {
	r.AppliedPeriodType = lowerPtr(r.AppliedPeriodType)
}

type UpdatePaymentRequest struct {
	ID                int              `json:"-"`
	ReceivedDate      *string          `json:"received_date" validate:"omitnil,max=50"`
	TotalAssets       *decimal.Decimal `json:"total_assets" validate:"omitnil,gte=0"`
	ExpectedFee       *decimal.Decimal `json:"expected_fee" validate:"omitnil,gte=0"`
	ActualFee         *decimal.Decimal `json:"actual_fee" validate:"omitnil,gte=0"`
	Method            *string          `json:"method" validate:"omitnil,max=50"`
	Notes             *string          `json:"notes"`
	AppliedPeriodType *string          `json:"applied_period_type" validate:"omitnil,oneofci=monthly quarterly"`
	AppliedPeriod     *int             `json:"applied_period" validate:"omitnil,gte=1,lte=12"`
	AppliedYear       *int             `json:"applied_year" validate:"omitnil,gte=2000,lte=2100"`
}

func (r *UpdatePaymentRequest) Validate() error {
	return validateAppliedPeriod(r.AppliedPeriodType, r.AppliedPeriod)
}

func (r *UpdatePaymentRequest) Normalize() {
	r.AppliedPeriodType = lowerPtr(r.AppliedPeriodType)
}

func (r UpdatePaymentRequest) Fields() map[string]any {
	fields := make(map[string]any)
	setIfPresent(fields, "received_date", r.ReceivedDate)
	setIfPresent(fields, "total_assets", r.TotalAssets)
	setIfPresent(fields, "expected_fee", r.ExpectedFee)
	setIfPresent(fields, "actual_fee", r.ActualFee)
	setIfPresent(fields, "method", r.Method)
	setIfPresent(fields, "notes", r.Notes)
	setIfPresent(fields, "applied_period_type", r.AppliedPeriodType)
	setIfPresent(fields, "applied_period", r.AppliedPeriod)
	setIfPresent(fields, "applied_year", r.AppliedYear)
	return fields
}

func validateAppliedPeriod(periodType *string, period *int) error {
	if periodType == nil || period == nil {
		return nil
	}
	cadence, err := ParseCadence(*periodType)
	if err != nil {
		return err
	}
	if cadence == CadenceQuarterly && *period > cadence.PeriodsPerYear() {
		return ErrQuarterlyPeriodRange
	}
	return nil
}
