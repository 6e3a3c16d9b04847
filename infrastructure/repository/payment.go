package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/fee-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/fee-tracker-api/internal/domain"
)

//go:generate mockgen -source=payment.go -destination=mocks/payment_mock.go -package=mocks

const (
	paymentsTable = "payments p"
	hasFilesExpr  = "EXISTS (SELECT 1 FROM payment_files pf WHERE pf.payment_id = p.payment_id) AS has_files"
)

var paymentColumns = []string{
	"p.payment_id", "p.contract_id", "p.client_id", "p.received_date::text",
	"p.total_assets", "p.expected_fee", "p.actual_fee", "p.method", "p.notes",
	"p.applied_period_type", "p.applied_period", "p.applied_year",
	"p.valid_from", "p.valid_to",
	"c.display_name", "co.provider_name", "co.fee_type", "co.percent_rate",
	"co.flat_rate", "co.payment_schedule",
	hasFilesExpr,
}

type PaymentRepository interface {
	List(ctx context.Context, filter domain.PaymentFilter) ([]domain.PaymentDetail, error)
	Get(ctx context.Context, paymentID int) (*domain.PaymentDetail, error)
	Create(ctx context.Context, req *domain.CreatePaymentRequest) (int, error)
	// Update e SoftDelete devolvem o client_id do pagamento afetado; 0 quando não encontrado
	Update(ctx context.Context, paymentID int, fields map[string]any) (int, error)
	SoftDelete(ctx context.Context, paymentID int) (int, error)
	PaidPeriods(ctx context.Context, clientID int, cadence domain.Cadence) (domain.PaidPeriodSet, error)
	EarliestPeriod(ctx context.Context, clientID int, cadence domain.Cadence) (domain.Period, error)
}

type paymentRepository struct {
	conn postgres.Queryer
}

func NewPaymentRepository(conn postgres.Queryer) PaymentRepository {
	return &paymentRepository{
		conn: conn,
	}
}

func (r *paymentRepository) baseSelect() squirrel.SelectBuilder {
	return squirrel.
		Select(paymentColumns...).
		From(paymentsTable).
		Join("clients c ON p.client_id = c.client_id").
		LeftJoin("contracts co ON p.contract_id = co.contract_id").
		Where("p.valid_to IS NULL").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *paymentRepository) List(ctx context.Context, filter domain.PaymentFilter) ([]domain.PaymentDetail, error) {
	queryBuilder := r.baseSelect().
		Where(squirrel.Eq{"p.client_id": filter.ClientID}).
		OrderBy("p.received_date DESC NULLS LAST", "p.payment_id DESC").
		Offset(filter.Offset()).
		Limit(uint64(filter.Limit))

	if filter.Year != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"p.applied_year": *filter.Year})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando query de pagamentos")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "listando pagamentos do cliente %d", filter.ClientID)
	}
	defer rows.Close()

	payments := make([]domain.PaymentDetail, 0)
	for rows.Next() {
		p, err := r.deserializePayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}

	return payments, rows.Err()
}

func (r *paymentRepository) Get(ctx context.Context, paymentID int) (*domain.PaymentDetail, error) {
	query, args, err := r.baseSelect().
		Where(squirrel.Eq{"p.payment_id": paymentID}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando query de pagamento")
	}

	p, err := r.deserializePayment(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return p, nil
}

func (r *paymentRepository) deserializePayment(row scanner) (*domain.PaymentDetail, error) {
	p := &domain.PaymentDetail{}

	if err := row.Scan(
		&p.ID,
		&p.ContractID,
		&p.ClientID,
		&p.ReceivedDate,
		&p.TotalAssets,
		&p.ExpectedFee,
		&p.ActualFee,
		&p.Method,
		&p.Notes,
		&p.AppliedPeriodType,
		&p.AppliedPeriod,
		&p.AppliedYear,
		&p.ValidFrom,
		&p.ValidTo,
		&p.ClientName,
		&p.ProviderName,
		&p.FeeType,
		&p.PercentRate,
		&p.FlatRate,
		&p.PaymentSchedule,
		&p.HasFiles,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, errors.Wrap(err, "lendo pagamento")
	}

	p.FillExpectedFee()

	return p, nil
}

func (r *paymentRepository) Create(ctx context.Context, req *domain.CreatePaymentRequest) (int, error) {
	query, args, err := squirrel.
		Insert("payments").
		Columns(
			"contract_id", "client_id", "received_date", "total_assets",
			"expected_fee", "actual_fee", "method", "notes",
			"applied_period_type", "applied_period", "applied_year",
		).
		Values(
			req.ContractID, req.ClientID, req.ReceivedDate, req.TotalAssets,
			req.ExpectedFee, req.ActualFee, req.Method, req.Notes,
			req.AppliedPeriodType, req.AppliedPeriod, req.AppliedYear,
		).
		Suffix("RETURNING payment_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "montando insert de pagamento")
	}

	var id int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, errors.Wrap(err, "inserindo pagamento")
	}

	return id, nil
}

func (r *paymentRepository) Update(ctx context.Context, paymentID int, fields map[string]any) (int, error) {
	return r.updateReturningClient(ctx, paymentID, squirrel.Update("payments").SetMap(fields))
}

func (r *paymentRepository) SoftDelete(ctx context.Context, paymentID int) (int, error) {
	return r.updateReturningClient(ctx, paymentID, squirrel.Update("payments").Set("valid_to", squirrel.Expr("NOW()")))
}

func (r *paymentRepository) updateReturningClient(ctx context.Context, paymentID int, builder squirrel.UpdateBuilder) (int, error) {
	query, args, err := builder.
		Where(squirrel.Eq{"payment_id": paymentID}).
		Where("valid_to IS NULL").
		Suffix("RETURNING client_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "montando update de pagamento")
	}

	var clientID int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&clientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, errors.Wrapf(err, "atualizando pagamento %d", paymentID)
	}

	return clientID, nil
}

func (r *paymentRepository) PaidPeriods(ctx context.Context, clientID int, cadence domain.Cadence) (domain.PaidPeriodSet, error) {
	query, args, err := squirrel.
		Select("DISTINCT applied_period", "applied_year").
		From("payments").
		Where(squirrel.Eq{
			"client_id":           clientID,
			"applied_period_type": cadence.String(),
		}).
		Where("valid_to IS NULL").
		Where("applied_period IS NOT NULL AND applied_year IS NOT NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando query de períodos pagos")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "buscando períodos pagos do cliente %d", clientID)
	}
	defer rows.Close()

	paid := domain.NewPaidPeriodSet()
	for rows.Next() {
		var number, year int
		if err := rows.Scan(&number, &year); err != nil {
			return nil, errors.Wrap(err, "lendo período pago")
		}

		// Períodos fora da faixa da cadência não podem coincidir com nenhum período enumerado
		period, err := domain.NewPeriod(cadence, number, year)
		if err != nil {
			continue
		}
		paid.Add(period)
	}

	return paid, rows.Err()
}

// EarliestPeriod devolve o primeiro período pago na cadência; zero quando não há pagamentos
func (r *paymentRepository) EarliestPeriod(ctx context.Context, clientID int, cadence domain.Cadence) (domain.Period, error) {
	query, args, err := squirrel.
		Select("applied_period", "applied_year").
		From("payments").
		Where(squirrel.Eq{
			"client_id":           clientID,
			"applied_period_type": cadence.String(),
		}).
		Where("valid_to IS NULL").
		Where("applied_period IS NOT NULL AND applied_year IS NOT NULL").
		OrderBy("applied_year ASC", "applied_period ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return domain.Period{}, errors.Wrap(err, "montando query do primeiro período")
	}

	var number, year int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&number, &year); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Period{}, nil
		}
		return domain.Period{}, errors.Wrapf(err, "buscando primeiro período do cliente %d", clientID)
	}

	period, err := domain.NewPeriod(cadence, number, year)
	if err != nil {
		return domain.Period{}, nil
	}

	return period, nil
}
