package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrPercentRateRequired = errors.New("percent_rate is required for percentage fee type")
	ErrFlatRateRequired    = errors.New("flat_rate is required for flat fee type")
)

type Contract struct {
	ID                int                 `json:"contract_id"`
	ClientID          int                 `json:"client_id"`
	ContractNumber    *string             `json:"contract_number"`
	ProviderName      *string             `json:"provider_name"`
	ContractStartDate *string             `json:"contract_start_date"`
	FeeType           *string             `json:"fee_type"`
	PercentRate       decimal.NullDecimal `json:"percent_rate"`
	FlatRate          decimal.NullDecimal `json:"flat_rate"`
	PaymentSchedule   *string             `json:"payment_schedule"`
	NumPeople         *int                `json:"num_people"`
	Notes             *string             `json:"notes"`
	ValidFrom         *time.Time          `json:"valid_from,omitempty"`
	ValidTo           *time.Time          `json:"valid_to,omitempty"`
	ClientName        *string             `json:"client_name,omitempty"`
}

// Cadence interpreta o payment_schedule gravado; valores ausentes ou desconhecidos são erro
func (c Contract) Cadence() (Cadence, error) {
	if c.PaymentSchedule == nil {
		return 0, ErrInvalidCadence
	}
	return ParseCadence(*c.PaymentSchedule)
}

type ContractFilter struct {
	Provider string
}

type CreateContractRequest struct {
	ClientID          int              `json:"client_id" validate:"required,gt=0"`
	ContractNumber    *string          `json:"contract_number" validate:"omitnil,max=100"`
	ProviderName      *string          `json:"provider_name" validate:"omitnil,max=255"`
	ContractStartDate *string          `json:"contract_start_date" validate:"omitnil,max=50"`
	FeeType           *string          `json:"fee_type" validate:"omitnil,oneof=percentage flat"`
	PercentRate       *decimal.Decimal `json:"percent_rate" validate:"omitnil,gte=0,lte=1"`
	FlatRate          *decimal.Decimal `json:"flat_rate" validate:"omitnil,gte=0"`
	PaymentSchedule   *string          `json:"payment_schedule" validate:"omitnil,oneofci=monthly quarterly"`
	NumPeople         *int             `json:"num_people" validate:"omitnil,gte=0"`
	Notes             *string          `json:"notes"`
}

// Validate confere a consistência entre o tipo de taxa e a taxa informada
func (r *CreateContractRequest) Validate() error {
	if r.FeeType == nil {
		return nil
	}
	switch *r.FeeType {
	case FeeTypePercentage:
		if r.PercentRate == nil {
			return ErrPercentRateRequired
		}
	case FeeTypeFlat:
		if r.FlatRate == nil {
			return ErrFlatRateRequired
		}
	}
	return nil
}

// Normalize grava o payment_schedule sempre em minúsculas
func (r *CreateContractRequest) Normalize() {
	r.PaymentSchedule = lowerPtr(r.PaymentSchedule)
}

type UpdateContractRequest struct {
	ID                int              `json:"-"`
	ContractNumber    *string          `json:"contract_number" validate:"omitnil,max=100"`
	ProviderName      *string          `json:"provider_name" validate:"omitnil,max=255"`
	ContractStartDate *string          `json:"contract_start_date" validate:"omitnil,max=50"`
	FeeType           *string          `json:"fee_type" validate:"omitnil,oneof=percentage flat"`
	PercentRate       *decimal.Decimal `json:"percent_rate" validate:"omitnil,gte=0,lte=1"`
	FlatRate          *decimal.Decimal `json:"flat_rate" validate:"omitnil,gte=0"`
	PaymentSchedule   *string          `json:"payment_schedule" validate:"omitnil,oneofci=monthly quarterly"`
	NumPeople         *int             `json:"num_people" validate:"omitnil,gte=0"`
	Notes             *string          `json:"notes"`
}

func (r *UpdateContractRequest) Normalize() {
	r.PaymentSchedule = lowerPtr(r.PaymentSchedule)
}

func (r UpdateContractRequest) Fields() map[string]any {
	fields := make(map[string]any)
	setIfPresent(fields, "contract_number", r.ContractNumber)
	setIfPresent(fields, "provider_name", r.ProviderName)
	setIfPresent(fields, "contract_start_date", r.ContractStartDate)
	setIfPresent(fields, "fee_type", r.FeeType)
	setIfPresent(fields, "percent_rate", r.PercentRate)
	setIfPresent(fields, "flat_rate", r.FlatRate)
	setIfPresent(fields, "payment_schedule", r.PaymentSchedule)
	setIfPresent(fields, "num_people", r.NumPeople)
	setIfPresent(fields, "notes", r.Notes)
	return fields
}

func setIfPresent[T any](fields map[string]any, column string, value *T) {
	if value != nil {
		fields[column] = *value
	}
}

func lowerPtr(value *string) *string {
	if value == nil {
		return nil
	}
	lowered := strings.ToLower(strings.TrimSpace(*value))
	return &lowered
}
