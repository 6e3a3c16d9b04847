package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/fee-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/fee-tracker-api/internal/domain"
)

//go:generate mockgen -source=contract.go -destination=mocks/contract_mock.go -package=mocks

const contractsTable = "contracts co"

var contractColumns = []string{
	"co.contract_id", "co.client_id", "co.contract_number", "co.provider_name",
	"co.contract_start_date", "co.fee_type", "co.percent_rate", "co.flat_rate",
	"co.payment_schedule", "co.num_people", "co.notes", "co.valid_from", "co.valid_to",
	"c.display_name",
}

type ContractRepository interface {
	List(ctx context.Context, filter domain.ContractFilter) ([]domain.Contract, error)
	Get(ctx context.Context, contractID int) (*domain.Contract, error)
	GetActiveByClient(ctx context.Context, clientID int) (*domain.Contract, error)
	GetForClient(ctx context.Context, contractID, clientID int) (*domain.Contract, error)
	Create(ctx context.Context, req *domain.CreateContractRequest) (int, error)
	Update(ctx context.Context, contractID int, fields map[string]any) (bool, error)
	SoftDelete(ctx context.Context, contractID int) (bool, error)
}

type contractRepository struct {
	conn postgres.Queryer
}

func NewContractRepository(conn postgres.Queryer) ContractRepository {
	return &contractRepository{
		conn: conn,
	}
}

func (r *contractRepository) baseSelect() squirrel.SelectBuilder {
	return squirrel.
		Select(contractColumns...).
		From(contractsTable).
		Join("clients c ON co.client_id = c.client_id").
		Where("co.valid_to IS NULL").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *contractRepository) List(ctx context.Context, filter domain.ContractFilter) ([]domain.Contract, error) {
	queryBuilder := r.baseSelect().OrderBy("c.display_name")

	if filter.Provider != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"co.provider_name": filter.Provider})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando query de contratos")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listando contratos")
	}
	defer rows.Close()

	contracts := make([]domain.Contract, 0)
	for rows.Next() {
		c, err := r.deserializeContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, *c)
	}

	return contracts, rows.Err()
}

func (r *contractRepository) Get(ctx context.Context, contractID int) (*domain.Contract, error) {
	return r.getOne(ctx, squirrel.Eq{"co.contract_id": contractID})
}

func (r *contractRepository) GetActiveByClient(ctx context.Context, clientID int) (*domain.Contract, error) {
	return r.getOne(ctx, squirrel.Eq{"co.client_id": clientID})
}

func (r *contractRepository) GetForClient(ctx context.Context, contractID, clientID int) (*domain.Contract, error) {
	return r.getOne(ctx, squirrel.Eq{"co.contract_id": contractID, "co.client_id": clientID})
}

func (r *contractRepository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Contract, error) {
	query, args, err := r.baseSelect().
		Where(where).
		OrderBy("co.contract_id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando query de contrato")
	}

	c, err := r.deserializeContract(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return c, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *contractRepository) deserializeContract(row scanner) (*domain.Contract, error) {
	c := &domain.Contract{}

	if err := row.Scan(
		&c.ID,
		&c.ClientID,
		&c.ContractNumber,
		&c.ProviderName,
		&c.ContractStartDate,
		&c.FeeType,
		&c.PercentRate,
		&c.FlatRate,
		&c.PaymentSchedule,
		&c.NumPeople,
		&c.Notes,
		&c.ValidFrom,
		&c.ValidTo,
		&c.ClientName,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, errors.Wrap(err, "lendo contrato")
	}

	return c, nil
}

func (r *contractRepository) Create(ctx context.Context, req *domain.CreateContractRequest) (int, error) {
	query, args, err := squirrel.
		Insert("contracts").
		Columns(
			"client_id", "contract_number", "provider_name", "contract_start_date",
			"fee_type", "percent_rate", "flat_rate", "payment_schedule", "num_people", "notes",
		).
		Values(
			req.ClientID, req.ContractNumber, req.ProviderName, req.ContractStartDate,
			req.FeeType, req.PercentRate, req.FlatRate, req.PaymentSchedule, req.NumPeople, req.Notes,
		).
		Suffix("RETURNING contract_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "montando insert de contrato")
	}

	var id int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, errors.Wrap(err, "inserindo contrato")
	}

	return id, nil
}

func (r *contractRepository) Update(ctx context.Context, contractID int, fields map[string]any) (bool, error) {
	return updateActive(ctx, r.conn, "contracts", "contract_id", contractID, fields)
}

func (r *contractRepository) SoftDelete(ctx context.Context, contractID int) (bool, error) {
	return softDelete(ctx, r.conn, "contracts", "contract_id", contractID)
}
