package client

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
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

func requireClientError(t *testing.T, err error, target error, code string) *ClientError {
	t.Helper()
	var clientErr *ClientError
	require.True(t, errors.As(err, &clientErr), "expected *ClientError, got %v", err)
	assert.ErrorIs(t, err, target)
	assert.Equal(t, code, clientErr.Code)
	return clientErr
}

func TestService_GetClient(t *testing.T) {
	log.SetupTestLogger()
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func(repo *mocks.MockClientRepository)
		wantErr  error
		wantCode string
	}{
		{
			name: "found",
			setup: func(repo *mocks.MockClientRepository) {
				repo.EXPECT().Get(ctx, 1).Return(&domain.ClientDetail{
					ClientSummary: domain.ClientSummary{Client: domain.Client{ID: 1, DisplayName: "AirSea America"}},
				}, nil)
			},
		},
		{
			name: "missing client",
			setup: func(repo *mocks.MockClientRepository) {
				repo.EXPECT().Get(ctx, 1).Return(nil, nil)
			},
			wantErr:  ErrClientNotFound,
			wantCode: apiErrors.ErrResourceNotFound,
		},
		{
			name: "database failure",
			setup: func(repo *mocks.MockClientRepository) {
				repo.EXPECT().Get(ctx, 1).Return(nil, errors.New("connection refused"))
			},
			wantErr:  ErrDatabaseOperation,
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockClientRepository(ctrl)
			tt.setup(repo)

			svc := NewService(repo, validation.New(), nil)
			client, err := svc.GetClient(ctx, 1)

			if tt.wantErr != nil {
				clientErr := requireClientError(t, err, tt.wantErr, tt.wantCode)
				assert.Equal(t, 1, clientErr.ClientID)
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "AirSea America", client.DisplayName)
		})
	}
}

func TestService_CreateClient(t *testing.T) {
	log.SetupTestLogger()
	ctx := context.Background()

	t.Run("creates and returns the stored client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockClientRepository(ctrl)

		req := &domain.CreateClientRequest{DisplayName: "Marquis"}
		repo.EXPECT().Create(ctx, req).Return(31, nil)
		repo.EXPECT().Get(ctx, 31).Return(&domain.ClientDetail{
			ClientSummary: domain.ClientSummary{Client: domain.Client{ID: 31, DisplayName: "Marquis"}},
		}, nil)

		client, err := NewService(repo, validation.New(), nil).CreateClient(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, 31, client.ID)
	})

	t.Run("invalid payload never reaches the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockClientRepository(ctrl)

		_, err := NewService(repo, validation.New(), nil).CreateClient(ctx, &domain.CreateClientRequest{})

		clientErr := requireClientError(t, err, ErrInvalidPayload, apiErrors.ErrValidationFailed)
		var validationErr *validation.Error
		require.True(t, errors.As(clientErr.Details.(error), &validationErr))
		assert.Equal(t, "display_name", validationErr.Fields[0].Field)
	})

	t.Run("constraint violation is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockClientRepository(ctrl)

		repo.EXPECT().Create(ctx, gomock.Any()).Return(0, &pq.Error{Code: "23505", Constraint: "clients_display_name_key"})

		_, err := NewService(repo, validation.New(), nil).CreateClient(ctx, &domain.CreateClientRequest{DisplayName: "Dup"})

		clientErr := requireClientError(t, err, ErrConstraint, apiErrors.ErrResourceConflict)
		assert.Equal(t, "clients_display_name_key", clientErr.Details)
	})
}

func TestService_UpdateClient(t *testing.T) {
	log.SetupTestLogger()
	ctx := context.Background()

	t.Run("no fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockClientRepository(ctrl)

		err := NewService(repo, validation.New(), nil).UpdateClient(ctx, &domain.UpdateClientRequest{ID: 3})

		requireClientError(t, err, ErrNoFieldsToUpdate, apiErrors.ErrNoFieldsToUpdate)
	})

	t.Run("updates and invalidates the dashboard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockClientRepository(ctrl)
		dashboardCache := cachemocks.NewMockDashboardCache(ctrl)

		repo.EXPECT().Update(ctx, 3, map[string]any{"full_name": "Marquis Companies"}).Return(true, nil)
		dashboardCache.EXPECT().Invalidate(ctx, 3).Return(nil)

		err := NewService(repo, validation.New(), dashboardCache).
			UpdateClient(ctx, &domain.UpdateClientRequest{ID: 3, FullName: strPtr("Marquis Companies")})

		require.NoError(t, err)
	})

	t.Run("missing client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockClientRepository(ctrl)

		repo.EXPECT().Update(ctx, 3, gomock.Any()).Return(false, nil)

		err := NewService(repo, validation.New(), nil).
			UpdateClient(ctx, &domain.UpdateClientRequest{ID: 3, DisplayName: strPtr("X")})

		requireClientError(t, err, ErrClientNotFound, apiErrors.ErrResourceNotFound)
	})
}

func TestService_DeleteClient(t *testing.T) {
	log.SetupTestLogger()
	ctx := context.Background()

	t.Run("cache failure does not fail the delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockClientRepository(ctrl)
		dashboardCache := cachemocks.NewMockDashboardCache(ctrl)

		repo.EXPECT().SoftDelete(ctx, 4).Return(true, nil)
		dashboardCache.EXPECT().Invalidate(ctx, 4).Return(errors.New("redis down"))

		err := NewService(repo, validation.New(), dashboardCache).DeleteClient(ctx, 4)

		assert.NoError(t, err)
	})

	t.Run("already deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockClientRepository(ctrl)

		repo.EXPECT().SoftDelete(ctx, 4).Return(false, nil)

		err := NewService(repo, validation.New(), nil).DeleteClient(ctx, 4)

		requireClientError(t, err, ErrClientNotFound, apiErrors.ErrResourceNotFound)
	})
}
