package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/fee-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/fee-tracker-api/internal/domain"
)

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

const (
	clientsTable       = "clients c"
	activeContractJoin = "contracts co ON c.client_id = co.client_id AND co.valid_to IS NULL"
	clientMetricsJoin  = "client_metrics m ON c.client_id = m.client_id"
)

type ClientRepository interface {
	List(ctx context.Context, filter domain.ClientFilter) ([]domain.ClientSummary, error)
	Get(ctx context.Context, clientID int) (*domain.ClientDetail, error)
	Create(ctx context.Context, req *domain.CreateClientRequest) (int, error)
	Update(ctx context.Context, clientID int, fields map[string]any) (bool, error)
	SoftDelete(ctx context.Context, clientID int) (bool, error)
}

type clientRepository struct {
	conn postgres.Queryer
}

func NewClientRepository(conn postgres.Queryer) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) List(ctx context.Context, filter domain.ClientFilter) ([]domain.ClientSummary, error) {
	queryBuilder := squirrel.
		Select(
			"c.client_id", "c.display_name", "c.full_name",
			"c.ima_signed_date", "c.onedrive_folder_path",
			"c.valid_from", "c.valid_to",
			"co.provider_name",
			"m.last_payment_date::text", "m.last_payment_amount",
			"m.last_recorded_assets", "m.total_ytd_payments",
		).
		From(clientsTable).
		LeftJoin(activeContractJoin).
		LeftJoin(clientMetricsJoin).
		Where("c.valid_to IS NULL").
		OrderBy("c.display_name").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Provider != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"co.provider_name": filter.Provider})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "montando query de clientes")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "listando clientes")
	}
	defer rows.Close()

	clients := make([]domain.ClientSummary, 0)
	for rows.Next() {
		var c domain.ClientSummary
		if err := rows.Scan(
			&c.ID,
			&c.DisplayName,
			&c.FullName,
			&c.IMASignedDate,
			&c.OnedriveFolderPath,
			&c.ValidFrom,
			&c.ValidTo,
			&c.ProviderName,
			&c.LastPaymentDate,
			&c.LastPaymentAmount,
			&c.LastRecordedAssets,
			&c.TotalYTDPayments,
		); err != nil {
			return nil, errors.Wrap(err, "lendo cliente")
		}
		clients = append(clients, c)
	}

	return clients, rows.Err()
}

func (r *clientRepository) Get(ctx context.Context, clientID int) (*domain.ClientDetail, error) {
	query, args, err := squirrel.
		Select(
			"c.client_id", "c.display_name", "c.full_name",
			"c.ima_signed_date", "c.onedrive_folder_path",
			"c.valid_from", "c.valid_to",
			"co.provider_name", "co.fee_type", "co.payment_schedule",
			"m.last_payment_date::text", "m.last_payment_amount",
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
		return nil, errors.Wrap(err, "montando query de cliente")
	}

	c := &domain.ClientDetail{}
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&c.ID,
		&c.DisplayName,
		&c.FullName,
		&c.IMASignedDate,
		&c.OnedriveFolderPath,
		&c.ValidFrom,
		&c.ValidTo,
		&c.ProviderName,
		&c.FeeType,
		&c.PaymentSchedule,
		&c.LastPaymentDate,
		&c.LastPaymentAmount,
		&c.TotalYTDPayments,
		&c.AvgQuarterlyPayment,
		&c.LastRecordedAssets,
		&c.NextPaymentDue,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "buscando cliente %d", clientID)
	}

	return c, nil
}

func (r *clientRepository) Create(ctx context.Context, req *domain.CreateClientRequest) (int, error) {
	query, args, err := squirrel.
		Insert("clients").
		Columns("display_name", "full_name", "ima_signed_date", "onedrive_folder_path").
		Values(req.DisplayName, req.FullName, req.IMASignedDate, req.OnedriveFolderPath).
		Suffix("RETURNING client_id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "montando insert de cliente")
	}

	var id int
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, errors.Wrap(err, "inserindo cliente")
	}

	return id, nil
}

func (r *clientRepository) Update(ctx context.Context, clientID int, fields map[string]any) (bool, error) {
	return updateActive(ctx, r.conn, "clients", "client_id", clientID, fields)
}

func (r *clientRepository) SoftDelete(ctx context.Context, clientID int) (bool, error) {
	return softDelete(ctx, r.conn, "clients", "client_id", clientID)
}

// updateActive aplica um UPDATE parcial somente em linhas ainda vigentes (valid_to IS NULL)
func updateActive(ctx context.Context, conn postgres.Queryer, table, idColumn string, id int, fields map[string]any) (bool, error) {
	query, args, err := squirrel.
		Update(table).
		SetMap(fields).
		Where(squirrel.Eq{idColumn: id}).
		Where("valid_to IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, errors.Wrapf(err, "montando update em %s", table)
	}

	result, err := conn.Exec(ctx, query, args...)
	if err != nil {
		return false, errors.Wrapf(err, "atualizando %s %d", table, id)
	}

	return affected(result)
}

func softDelete(ctx context.Context, conn postgres.Queryer, table, idColumn string, id int) (bool, error) {
	query, args, err := squirrel.
		Update(table).
		Set("valid_to", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{idColumn: id}).
		Where("valid_to IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, errors.Wrapf(err, "montando soft delete em %s", table)
	}

	result, err := conn.Exec(ctx, query, args...)
	if err != nil {
		return false, errors.Wrapf(err, "removendo %s %d", table, id)
	}

	return affected(result)
}

func affected(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "lendo linhas afetadas")
	}
	return n > 0, nil
}
