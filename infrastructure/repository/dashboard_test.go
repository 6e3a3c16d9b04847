package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardRepository_Overview(t *testing.T) {
	columns := []string{
		"client_id", "display_name", "full_name", "ima_signed_date", "onedrive_folder_path",
		"contract_id", "provider_name", "fee_type", "percent_rate", "flat_rate", "payment_schedule",
		"total_ytd_payments", "avg_quarterly_payment", "last_recorded_assets", "next_payment_due",
	}

	t.Run("client with active contract", func(t *testing.T) {
		conn, mock := newMock(t)
		repo := NewDashboardRepository(conn)

		mock.ExpectQuery(`SELECT (.+) FROM clients c LEFT JOIN contracts co (.+) WHERE c.client_id = \$1 AND c.valid_to IS NULL`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				1, "AirSea America", nil, "2019-05-01", nil,
				5, "John Hancock", "percentage", "0.0007", nil, "quarterly",
				"1300.00", "650.00", "1000000", "2025-07-15",
			))

		overview, err := repo.Overview(context.Background(), 1)

		require.NoError(t, err)
		require.NotNil(t, overview)
		require.NotNil(t, overview.Contract)
		assert.Equal(t, 5, overview.Contract.ID)
		assert.Equal(t, "2025-07-15", *overview.Metrics.NextPaymentDue)
	})

	t.Run("client without contract", func(t *testing.T) {
		conn, mock := newMock(t)
		repo := NewDashboardRepository(conn)

		mock.ExpectQuery(`SELECT (.+) FROM clients c`).
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(
				2, "Bumgardner", nil, nil, nil,
				nil, nil, nil, nil, nil, nil,
				nil, nil, nil, nil,
			))

		overview, err := repo.Overview(context.Background(), 2)

		require.NoError(t, err)
		assert.Nil(t, overview.Contract)
	})
}

func TestDashboardRepository_RecentPayments(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewDashboardRepository(conn)

	rows := sqlmock.NewRows([]string{
		"payment_id", "received_date", "actual_fee", "total_assets",
		"applied_period", "applied_year", "applied_period_type", "has_files",
	}).
		AddRow(20, "2025-02-10", "350", nil, 1, 2025, "monthly", false).
		AddRow(19, "2025-01-05", "1200", nil, 4, 2024, "quarterly", true)

	mock.ExpectQuery(`SELECT (.+) FROM payments p WHERE p.client_id = \$1 AND p.valid_to IS NULL ORDER BY (.+) LIMIT 5`).
		WithArgs(1).
		WillReturnRows(rows)

	payments, err := repo.RecentPayments(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "January 2025", payments[0].PeriodDisplay)
	assert.Equal(t, "Q4 2024", payments[1].PeriodDisplay)
	assert.True(t, payments[1].HasFiles)
}

func TestDashboardRepository_PaymentStatus_Missing(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewDashboardRepository(conn)

	mock.ExpectQuery(`SELECT (.+) FROM client_payment_status WHERE client_id = \$1`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"client_id"}))

	status, err := repo.PaymentStatus(context.Background(), 3)

	require.NoError(t, err)
	assert.Nil(t, status)
}

func TestDashboardRepository_QuarterlySummaries(t *testing.T) {
	conn, mock := newMock(t)
	repo := NewDashboardRepository(conn)

	mock.ExpectQuery(`SELECT quarter, total_payments, payment_count, avg_payment, expected_total FROM quarterly_summaries WHERE client_id = \$1 AND year = \$2 ORDER BY quarter`).
		WithArgs(1, 2025).
		WillReturnRows(sqlmock.NewRows([]string{"quarter", "total_payments", "payment_count", "avg_payment", "expected_total"}).
			AddRow(1, "650.00", 1, "650.00", "700.00").
			AddRow(2, nil, nil, nil, nil))

	summaries, err := repo.QuarterlySummaries(context.Background(), 1, 2025)

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, 1, summaries[0].PaymentCount)
	assert.Zero(t, summaries[1].PaymentCount)
	assert.False(t, summaries[1].TotalPayments.Valid)
}
