package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Client struct {
	ID                 int        `json:"client_id"`
	DisplayName        string     `json:"display_name"`
	FullName           *string    `json:"full_name"`
	IMASignedDate      *string    `json:"ima_signed_date"`
	OnedriveFolderPath *string    `json:"onedrive_folder_path"`
	ValidFrom          *time.Time `json:"valid_from,omitempty"`
	ValidTo            *time.Time `json:"valid_to,omitempty"`
}

// ClientSummary é a linha da listagem de clientes, com o provedor do contrato ativo e métricas
type ClientSummary struct {
	Client
	ProviderName       *string             `json:"provider_name"`
	LastPaymentDate    *string             `json:"last_payment_date"`
	LastPaymentAmount  decimal.NullDecimal `json:"last_payment_amount"`
	LastRecordedAssets decimal.NullDecimal `json:"last_recorded_assets"`
	TotalYTDPayments   decimal.NullDecimal `json:"total_ytd_payments"`
}

type ClientDetail struct {
	ClientSummary
	FeeType             *string             `json:"fee_type"`
	PaymentSchedule     *string             `json:"payment_schedule"`
	AvgQuarterlyPayment decimal.NullDecimal `json:"avg_quarterly_payment"`
	NextPaymentDue      *string             `json:"next_payment_due"`
}

type ClientFilter struct {
	Provider string
}

type CreateClientRequest struct {
	DisplayName        string  `json:"display_name" validate:"required,max=255"`
	FullName           *string `json:"full_name" validate:"omitnil,max=255"`
	IMASignedDate      *string `json:"ima_signed_date" validate:"omitnil,max=50"`
	OnedriveFolderPath *string `json:"onedrive_folder_path" validate:"omitnil,max=500"`
}

type UpdateClientRequest struct {
	ID                 int     `json:"-"`
	DisplayName        *string `json:"display_name" validate:"omitnil,min=1,max=255"`
	FullName           *string `json:"full_name" validate:"omitnil,max=255"`
	IMASignedDate      *string `json:"ima_signed_date" validate:"omitnil,max=50"`
	OnedriveFolderPath *string `json:"onedrive_folder_path" validate:"omitnil,max=500"`
}

// Fields devolve apenas as colunas informadas na requisição
func (r UpdateClientRequest) Fields() map[string]any {
	fields := make(map[string]any)
	setIfPresent(fields, "display_name", r.DisplayName)
	setIfPresent(fields, "full_name", r.FullName)
	setIfPresent(fields, "ima_signed_date", r.IMASignedDate)
	setIfPresent(fields, "onedrive_folder_path", r.OnedriveFolderPath)
	return fields
}
