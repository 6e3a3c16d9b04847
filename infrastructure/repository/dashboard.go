package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/fee-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/fee-tracker-api/internal/domain"
)

//go:generate mockgen -source=dashboard.go -destination=mocks/dashboard_mock.go -package=mocks

const recentPaymentsLimit = 5

type DashboardRepository interface {
	Overview(ctx context.Context, clientID int) (*domain.DashboardOverview, error)
	PaymentStatus(ctx context.Context, clientID int) (*domain.ClientPaymentStatus, error)
	RecentPayments(ctx context.Context, clientID int) ([]domain.RecentPayment, error)
	QuarterlySummaries(ctx context.Context, clientID, year int) ([]domain.QuarterlySummary, error)
}

type dashboardRepository struct {
	conn postgres.Queryer
}

func NewDashboardRepository(conn postgres.Queryer) DashboardRepository {
	return &dashboardRepository{
		conn: conn,
	}
}

func (r *dashboardRepository) Overview(ctx context.Context, clientID int) (*domain.DashboardOverview, error) {
	query, args, err := squirrel.
		Select(
			"c.client_id", "c.display_name", "c.full_name", "c.ima_signed_date",
			"c.onedrive_folder_path",
			"co.contract_id", "co.provider_name", "co.fee_type",
			"co.percent_rate", "co.flat_rate", "co.payment_schedule",
			"m.total_ytd_payments", "m.avg_quarterly_payment",
			"m.last_recorded_assets", "m.next_payment_due::text",
		).
		From(clientsTable).
		LeftJoin(activeContractJoin).
		LeftJoin(clientMetricsJoin).
		Where(squirrel.Eq{"c.client_id": clientID}).
		Where("c.valid_to IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando query do dashboard")
	}

	var (
		overview   domain.DashboardOverview
		contractID sql.NullInt64
		contract   domain.DashboardContract
	)

	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&overview.Client.ID,
		&overview.Client.DisplayName,
		&overview.Client.FullName,
		&overview.Client.IMASignedDate,
		&overview.Client.OnedriveFolderPath,
		&contractID,
		&contract.ProviderName,
		&contract.FeeType,
		&contract.PercentRate,
		&contract.FlatRate,
		&contract.PaymentSchedule,
		&overview.Metrics.TotalYTDPayments,
		&overview.Metrics.AvgQuarterlyPayment,
		&overview.Metrics.LastRecordedAssets,
		&overview.Metrics.NextPaymentDue,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "buscando dashboard do cliente %d", clientID)
	}

	if contractID.Valid {
		contract.ID = int(contractID.Int64)
		overview.Contract = &contract
	}

	return &overview, nil
}

func (r *dashboardRepository) PaymentStatus(ctx context.Context, clientID int) (*domain.ClientPaymentStatus, error) {
	query, args, err := squirrel.
		Select(
			"client_id", "payment_schedule", "last_payment_date::text", "last_payment_amount",
			"applied_period_type", "current_period", "current_year",
			"expected_fee", "payment_status",
		).
		From("client_payment_status").
		Where(squirrel.Eq{"client_id": clientID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando query de status de pagamento")
	}

	status := &domain.ClientPaymentStatus{}
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&status.ClientID,
		&status.PaymentSchedule,
		&status.LastPaymentDate,
		&status.LastPaymentAmount,
		&status.AppliedPeriodType,
		&status.CurrentPeriod,
		&status.CurrentYear,
		&status.ExpectedFee,
		&status.PaymentStatus,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "buscando status de pagamento do cliente %d", clientID)
	}

	return status, nil
}

func (r *dashboardRepository) RecentPayments(ctx context.Context, clientID int) ([]domain.RecentPayment, error) {
	query, args, err := squirrel.
		Select(
			"p.payment_id", "p.received_date::text", "p.actual_fee", "p.total_assets",
			"p.applied_period", "p.applied_year", "p.applied_period_type",
			hasFilesExpr,
		).
		From(paymentsTable).
		Where(squirrel.Eq{"p.client_id": clientID}).
		Where("p.valid_to IS NULL").
		OrderBy("p.received_date DESC NULLS LAST", "p.payment_id DESC").
		Limit(recentPaymentsLimit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando query de pagamentos recentes")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "buscando pagamentos recentes do cliente %d", clientID)
	}
	defer rows.Close()

	payments := make([]domain.RecentPayment, 0, recentPaymentsLimit)
	for rows.Next() {
		var p domain.RecentPayment
		if err := rows.Scan(
			&p.ID,
			&p.ReceivedDate,
			&p.ActualFee,
			&p.TotalAssets,
			&p.AppliedPeriod,
			&p.AppliedYear,
			&p.AppliedPeriodType,
			&p.HasFiles,
		); err != nil {
			return nil, errors.Wrap(err, "lendo pagamento recente")
		}
		p.FillPeriodDisplay()
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

func (r *dashboardRepository) QuarterlySummaries(ctx context.Context, clientID, year int) ([]domain.QuarterlySummary, error) {
	query, args, err := squirrel.
		Select("quarter", "total_payments", "payment_count", "avg_payment", "expected_total").
		From("quarterly_summaries").
		Where(squirrel.Eq{"client_id": clientID, "year": year}).
		OrderBy("quarter").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando query de resumos trimestrais")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "buscando resumos trimestrais do cliente %d", clientID)
	}
	defer rows.Close()

	summaries := make([]domain.QuarterlySummary, 0, 4)
	for rows.Next() {
		var (
			s     domain.QuarterlySummary
			count sql.NullInt64
		)
		if err := rows.Scan(&s.Quarter, &s.TotalPayments, &count, &s.AvgPayment, &s.ExpectedTotal); err != nil {
			return nil, errors.Wrap(err, "lendo resumo trimestral")
		}
		s.PaymentCount = int(count.Int64)
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}
