package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status gravados pela view client_payment_status
const (
	PaymentStatusPaid    = "Paid"
	PaymentStatusDue     = "Due"
	PaymentStatusOverdue = "Overdue"
)

type Dashboard struct {
	Client             DashboardClient    `json:"client"`
	Contract           *DashboardContract `json:"contract"`
	PaymentStatus      DashboardPayment   `json:"payment_status"`
	Compliance         Compliance         `json:"compliance"`
	RecentPayments     []RecentPayment    `json:"recent_payments"`
	Metrics            DashboardMetrics   `json:"metrics"`
	QuarterlySummaries []QuarterlySummary `json:"quarterly_summaries"`
}

type DashboardClient struct {
	ID                 int     `json:"client_id"`
	DisplayName        string  `json:"display_name"`
	FullName           *string `json:"full_name"`
	IMASignedDate      *string `json:"ima_signed_date"`
	OnedriveFolderPath *string `json:"onedrive_folder_path"`
}

type DashboardContract struct {
	ID              int                 `json:"contract_id"`
	ProviderName    *string             `json:"provider_name"`
	FeeType         *string             `json:"fee_type"`
	PercentRate     decimal.NullDecimal `json:"percent_rate"`
	FlatRate        decimal.NullDecimal `json:"flat_rate"`
	PaymentSchedule *string             `json:"payment_schedule"`
}

type DashboardMetrics struct {
	TotalYTDPayments    decimal.NullDecimal `json:"total_ytd_payments"`
	AvgQuarterlyPayment decimal.NullDecimal `json:"avg_quarterly_payment"`
	LastRecordedAssets  decimal.NullDecimal `json:"last_recorded_assets"`
	NextPaymentDue      *string             `json:"next_payment_due"`
}

// DashboardOverview é a linha única com cliente, contrato ativo e métricas
type DashboardOverview struct {
	Client   DashboardClient
	Contract *DashboardContract
	Metrics  DashboardMetrics
}

// ClientPaymentStatus é a linha da view client_payment_status
type ClientPaymentStatus struct {
	ClientID          int
	PaymentSchedule   *string
	LastPaymentDate   *string
	LastPaymentAmount decimal.NullDecimal
	AppliedPeriodType *string
	CurrentPeriod     int
	CurrentYear       int
	ExpectedFee       decimal.NullDecimal
	PaymentStatus     string
}

type DashboardPayment struct {
	Status              string              `json:"status"`
	CurrentPeriod       *string             `json:"current_period"`
	CurrentPeriodNumber *int                `json:"current_period_number,omitempty"`
	CurrentYear         *int                `json:"current_year,omitempty"`
	LastPaymentDate     *string             `json:"last_payment_date,omitempty"`
	LastPaymentAmount   decimal.NullDecimal `json:"last_payment_amount"`
	ExpectedFee         decimal.NullDecimal `json:"expected_fee"`
	Reason              string              `json:"reason,omitempty"`
}

type Compliance struct {
	Status string `json:"status"`
	Color  string `json:"color"`
	Reason string `json:"reason"`
}

const noPaymentHistory = "No payment history"

// NewDashboardPayment monta o bloco payment_status; sem linha na view o cliente é tratado como Due
func NewDashboardPayment(status *ClientPaymentStatus) DashboardPayment {
	if status == nil {
		return DashboardPayment{
			Status: PaymentStatusDue,
			Reason: noPaymentHistory,
		}
	}

	periodType := ""
	if status.AppliedPeriodType != nil {
		periodType = *status.AppliedPeriodType
	}
	label := FormatPeriodLabel(periodType, status.CurrentPeriod, status.CurrentYear)
	number := status.CurrentPeriod
	year := status.CurrentYear

	return DashboardPayment{
		Status:              status.PaymentStatus,
		CurrentPeriod:       &label,
		CurrentPeriodNumber: &number,
		CurrentYear:         &year,
		LastPaymentDate:     status.LastPaymentDate,
		LastPaymentAmount:   status.LastPaymentAmount,
		ExpectedFee:         status.ExpectedFee,
	}
}

// NewCompliance traduz o status de pagamento em conformidade e cor para o dashboard
func NewCompliance(status *ClientPaymentStatus) Compliance {
	if status == nil {
		return Compliance{Status: "compliant", Color: "yellow", Reason: noPaymentHistory}
	}

	switch status.PaymentStatus {
	case PaymentStatusOverdue:
		return Compliance{Status: "non_compliant", Color: "red", Reason: "Payment overdue"}
	case PaymentStatusDue:
		return Compliance{Status: "compliant", Color: "yellow", Reason: "Payment due for current period"}
	default:
		return Compliance{Status: "compliant", Color: "green", Reason: "All payments up to date"}
	}
}

type RecentPayment struct {
	ID                int                 `json:"payment_id"`
	ReceivedDate      *string             `json:"received_date"`
	ActualFee         decimal.NullDecimal `json:"actual_fee"`
	TotalAssets       decimal.NullDecimal `json:"total_assets"`
	AppliedPeriod     *int                `json:"applied_period"`
	AppliedYear       *int                `json:"applied_year"`
	AppliedPeriodType *string             `json:"applied_period_type"`
	HasFiles          bool                `json:"has_files"`
	PeriodDisplay     string              `json:"period_display"`
}

func (p *RecentPayment) FillPeriodDisplay() {
	if p.AppliedPeriod == nil || p.AppliedYear == nil {
		return
	}
	periodType := ""
	if p.AppliedPeriodType != nil {
		periodType = *p.AppliedPeriodType
	}
	p.PeriodDisplay = FormatPeriodLabel(periodType, *p.AppliedPeriod, *p.AppliedYear)
}

type QuarterlySummary struct {
	Quarter       int                 `json:"quarter"`
	TotalPayments decimal.NullDecimal `json:"total_payments"`
	PaymentCount  int                 `json:"payment_count"`
	AvgPayment    decimal.NullDecimal `json:"avg_payment"`
	ExpectedTotal decimal.NullDecimal `json:"expected_total"`
}

// OutstandingReport é o resultado da última varredura de conformidade
type OutstandingReport struct {
	RunID       string                `json:"run_id"`
	GeneratedAt time.Time             `json:"generated_at"`
	Contracts   []ContractOutstanding `json:"contracts"`
	Failures    int                   `json:"failures"`
}

type ContractOutstanding struct {
	ClientID        int               `json:"client_id"`
	ClientName      *string           `json:"client_name"`
	ContractID      int               `json:"contract_id"`
	PaymentSchedule Cadence           `json:"payment_schedule"`
	Outstanding     []AvailablePeriod `json:"outstanding"`
}
