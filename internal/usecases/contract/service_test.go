package contract

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cachemocks "github.com/vfg2006/fee-tracker-api/infrastructure/cache/mocks"
	"github.com/vfg2006/fee-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/fee-tracker-api/internal/domain"
	"github.com/vfg2006/fee-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/fee-tracker-api/pkg/log"
	"github.com/vfg2006/fee-tracker-api/pkg/validation"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func requireContractError(t *testing.T, err error, target error, code string) *ContractError {
	t.Helper()
	var contractErr *ContractError
	require.True(t, errors.As(err, &contractErr), "expected *ContractError, got %v", err)
	assert.ErrorIs(t, err, target)
	assert.Equal(t, code, contractErr.Code)
	return contractErr
}

func TestService_GetClientContract(t *testing.T) {
	log.SetupTestLogger()
	ctx := context.Background()

	t.Run("no active contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockContractRepository(ctrl)
		repo.EXPECT().GetActiveByClient(ctx, 8).Return(nil, nil)

		_, err := NewService(repo, validation.New(), nil).GetClientContract(ctx, 8)

		requireContractError(t, err, ErrClientContractNotFound, apiErrors.ErrResourceNotFound)
		assert.Equal(t, "contract not found for this client", err.Error())
	})

	t.Run("active contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockContractRepository(ctrl)
		repo.EXPECT().GetActiveByClient(ctx, 8).Return(&domain.Contract{ID: 2, ClientID: 8}, nil)

		contract, err := NewService(repo, validation.New(), nil).GetClientContract(ctx, 8)

		require.NoError(t, err)
		assert.Equal(t, 2, contract.ID)
	})
}

func TestService_CreateContract(t *testing.T) {
	log.SetupTestLogger()
	ctx := context.Background()

	t.Run("normalizes the schedule before storing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockContractRepository(ctrl)

		rate := decimal.RequireFromString("0.0007")
		req := &domain.CreateContractRequest{
			ClientID:        1,
			FeeType:         strPtr("percentage"),
			PercentRate:     &rate,
			PaymentSchedule: strPtr("Quarterly"),
		}

		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, stored *domain.CreateContractRequest) (int, error) {
				assert.Equal(t, "quarterly", *stored.PaymentSchedule)
				return 12, nil
			})
		repo.EXPECT().Get(ctx, 12).Return(&domain.Contract{ID: 12, ClientID: 1, PaymentSchedule: strPtr("quarterly")}, nil)

		contract, err := NewService(repo, validation.New(), nil).CreateContract(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, 12, contract.ID)
	})

	t.Run("percentage without rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockContractRepository(ctrl)

		_, err := NewService(repo, validation.New(), nil).CreateContract(ctx, &domain.CreateContractRequest{
			ClientID: 1,
			FeeType:  strPtr("percentage"),
		})

		requireContractError(t, err, ErrInvalidPayload, apiErrors.ErrValidationFailed)
	})

	t.Run("unknown client is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockContractRepository(ctrl)

		repo.EXPECT().Create(ctx, gomock.Any()).Return(0, &pq.Error{Code: "23503", Constraint: "contracts_client_id_fkey"})

		_, err := NewService(repo, validation.New(), nil).CreateContract(ctx, &domain.CreateContractRequest{ClientID: 999})

		requireContractError(t, err, ErrConstraint, apiErrors.ErrResourceConflict)
	})
}

func TestService_UpdateContract(t *testing.T) {
	log.SetupTestLogger()
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockContractRepository(ctrl)
	dashboardCache := cachemocks.NewMockDashboardCache(ctrl)

	gomock.InOrder(
		repo.EXPECT().Get(ctx, 5).Return(&domain.Contract{ID: 5, ClientID: 1}, nil),
		repo.EXPECT().Update(ctx, 5, map[string]any{"payment_schedule": "monthly"}).Return(true, nil),
		dashboardCache.EXPECT().Invalidate(ctx, 1).Return(nil),
	)

	err := NewService(repo, validation.New(), dashboardCache).UpdateContract(ctx, &domain.UpdateContractRequest{
		ID:              5,
		PaymentSchedule: strPtr("MONTHLY"),
	})

	require.NoError(t, err)
}

func TestService_DeleteContract_NotFound(t *testing.T) {
	log.SetupTestLogger()
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockContractRepository(ctrl)
	repo.EXPECT().Get(ctx, 5).Return(nil, nil)

	err := NewService(repo, validation.New(), nil).DeleteContract(ctx, 5)

	requireContractError(t, err, ErrContractNotFound, apiErrors.ErrResourceNotFound)
}
