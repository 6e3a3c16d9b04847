package periods

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fee-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/fee-tracker-api/internal/domain"
	"github.com/vfg2006/fee-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/fee-tracker-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func mustPeriod(t *testing.T, cadence domain.Cadence, number, year int) domain.Period {
	t.Helper()
	p, err := domain.NewPeriod(cadence, number, year)
	require.NoError(t, err)
	return p
}

func fixedClock(year int, month time.Month, day int) Option {
	return WithClock(func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	})
}

func TestService_AvailablePeriods(t *testing.T) {
	log.SetupTestLogger()
	ctx := context.Background()

	t.Run("quarterly client with one quarter paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		contracts := mocks.NewMockContractRepository(ctrl)
		payments := mocks.NewMockPaymentRepository(ctrl)

		contracts.EXPECT().GetForClient(ctx, 5, 1).
			Return(&domain.Contract{ID: 5, ClientID: 1, PaymentSchedule: strPtr("quarterly")}, nil)
		payments.EXPECT().PaidPeriods(ctx, 1, domain.CadenceQuarterly).
			Return(domain.NewPaidPeriodSet(mustPeriod(t, domain.CadenceQuarterly, 2, 2024)), nil)
		payments.EXPECT().EarliestPeriod(ctx, 1, domain.CadenceQuarterly).
			Return(mustPeriod(t, domain.CadenceQuarterly, 1, 2024), nil)

		svc := NewService(contracts, payments, fixedClock(2025, time.May, 20))
		available, err := svc.AvailablePeriods(ctx, 1, 5)

		require.NoError(t, err)
		assert.Equal(t, domain.CadenceQuarterly, available.PaymentSchedule)

		values := make([]string, 0, len(available.Periods))
		for _, p := range available.Periods {
			values = append(values, p.Value)
		}
		assert.Equal(t, []string{"1-2025", "4-2024", "3-2024", "1-2024"}, values)
		assert.Equal(t, "Q1 2025", available.Periods[0].Label)
	})

	t.Run("monthly client without history starts in January", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		contracts := mocks.NewMockContractRepository(ctrl)
		payments := mocks.NewMockPaymentRepository(ctrl)

		contracts.EXPECT().GetForClient(ctx, 9, 3).
			Return(&domain.Contract{ID: 9, ClientID: 3, PaymentSchedule: strPtr("Monthly")}, nil)
		payments.EXPECT().PaidPeriods(ctx, 3, domain.CadenceMonthly).Return(domain.NewPaidPeriodSet(), nil)
		payments.EXPECT().EarliestPeriod(ctx, 3, domain.CadenceMonthly).Return(domain.Period{}, nil)

		svc := NewService(contracts, payments, fixedClock(2025, time.April, 2))
		available, err := svc.AvailablePeriods(ctx, 3, 9)

		require.NoError(t, err)
		require.Len(t, available.Periods, 3)
		assert.Equal(t, "March 2025", available.Periods[0].Label)
		assert.Equal(t, "January 2025", available.Periods[2].Label)
	})

	t.Run("missing ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewService(mocks.NewMockContractRepository(ctrl), mocks.NewMockPaymentRepository(ctrl))

		_, err := svc.AvailablePeriods(ctx, 0, 5)

		var periodErr *PeriodError
		require.True(t, errors.As(err, &periodErr))
		assert.Equal(t, apiErrors.ErrMissingRequiredData, periodErr.Code)
	})

	t.Run("contract of another client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		contracts := mocks.NewMockContractRepository(ctrl)
		contracts.EXPECT().GetForClient(ctx, 5, 2).Return(nil, nil)

		_, err := NewService(contracts, mocks.NewMockPaymentRepository(ctrl)).AvailablePeriods(ctx, 2, 5)

		assert.ErrorIs(t, err, ErrContractNotFound)
	})

	t.Run("contract without schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		contracts := mocks.NewMockContractRepository(ctrl)
		contracts.EXPECT().GetForClient(ctx, 5, 1).Return(&domain.Contract{ID: 5, ClientID: 1}, nil)

		_, err := NewService(contracts, mocks.NewMockPaymentRepository(ctrl)).AvailablePeriods(ctx, 1, 5)

		var periodErr *PeriodError
		require.True(t, errors.As(err, &periodErr))
		assert.ErrorIs(t, err, ErrInvalidSchedule)
		assert.Equal(t, apiErrors.ErrValidationFailed, periodErr.Code)
	})

	t.Run("paid periods lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		contracts := mocks.NewMockContractRepository(ctrl)
		payments := mocks.NewMockPaymentRepository(ctrl)

		contracts.EXPECT().GetForClient(ctx, 5, 1).
			Return(&domain.Contract{ID: 5, ClientID: 1, PaymentSchedule: strPtr("monthly")}, nil)
		payments.EXPECT().PaidPeriods(ctx, 1, domain.CadenceMonthly).Return(nil, errors.New("boom"))

		_, err := NewService(contracts, payments).AvailablePeriods(ctx, 1, 5)

		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}
