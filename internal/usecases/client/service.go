package client

import (
	"context"
	"errors"

	"github.com/vfg2006/fee-tracker-api/infrastructure/cache"
	"github.com/vfg2006/fee-tracker-api/infrastructure/repository"
	"github.com/vfg2006/fee-tracker-api/internal/domain"
	"github.com/vfg2006/fee-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/fee-tracker-api/pkg/log"
	"github.com/vfg2006/fee-tracker-api/pkg/validation"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type ClientService interface {
	ListClients(ctx context.Context, filter domain.ClientFilter) ([]domain.ClientSummary, error)
	GetClient(ctx context.Context, clientID int) (*domain.ClientDetail, error)
	CreateClient(ctx context.Context, req *domain.CreateClientRequest) (*domain.ClientDetail, error)
	UpdateClient(ctx context.Context, req *domain.UpdateClientRequest) error
	DeleteClient(ctx context.Context, clientID int) error
}

type Service struct {
	clientRepository repository.ClientRepository
	validator        *validation.Validator
	dashboardCache   cache.DashboardCache
}

// NewService cria o serviço de clientes; dashboardCache pode ser nil
func NewService(
	clientRepository repository.ClientRepository,
	validator *validation.Validator,
	dashboardCache cache.DashboardCache,
) ClientService {
	return &Service{
		clientRepository: clientRepository,
		validator:        validator,
		dashboardCache:   dashboardCache,
	}
}

func (s *Service) ListClients(ctx context.Context, filter domain.ClientFilter) ([]domain.ClientSummary, error) {
	clients, err := s.clientRepository.List(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar clientes")
		return nil, NewClientError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar clientes")
	}

	return clients, nil
}

func (s *Service) GetClient(ctx context.Context, clientID int) (*domain.ClientDetail, error) {
	client, err := s.clientRepository.Get(ctx, clientID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("client_id", clientID).Error("Erro ao buscar cliente")
		return nil, NewClientErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, clientID, "Falha ao buscar cliente")
	}

	if client == nil {
		return nil, NewClientErrorWithID(ErrClientNotFound, apiErrors.ErrResourceNotFound, clientID, nil)
	}

	return client, nil
}

func (s *Service) CreateClient(ctx context.Context, req *domain.CreateClientRequest) (*domain.ClientDetail, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	clientID, err := s.clientRepository.Create(ctx, req)
	if err != nil {
		return nil, s.writeError(ctx, err, 0, "Falha ao criar cliente")
	}

	log.ForContext(ctx).WithField("client_id", clientID).Info("Cliente criado")

	return s.GetClient(ctx, clientID)
}

func (s *Service) UpdateClient(ctx context.Context, req *domain.UpdateClientRequest) error {
	if err := s.validate(req); err != nil {
		return err
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return NewClientErrorWithID(ErrNoFieldsToUpdate, apiErrors.ErrNoFieldsToUpdate, req.ID, nil)
	}

	found, err := s.clientRepository.Update(ctx, req.ID, fields)
	if err != nil {
		return s.writeError(ctx, err, req.ID, "Falha ao atualizar cliente")
	}
	if !found {
		return NewClientErrorWithID(ErrClientNotFound, apiErrors.ErrResourceNotFound, req.ID, nil)
	}

	cache.InvalidateQuietly(ctx, s.dashboardCache, req.ID)

	return nil
}

func (s *Service) DeleteClient(ctx context.Context, clientID int) error {
	found, err := s.clientRepository.SoftDelete(ctx, clientID)
	if err != nil {
		return s.writeError(ctx, err, clientID, "Falha ao remover cliente")
	}
	if !found {
		return NewClientErrorWithID(ErrClientNotFound, apiErrors.ErrResourceNotFound, clientID, nil)
	}

	cache.InvalidateQuietly(ctx, s.dashboardCache, clientID)
	log.ForContext(ctx).WithField("client_id", clientID).Info("Cliente removido")

	return nil
}

func (s *Service) validate(payload any) error {
	if err := s.validator.Struct(payload); err != nil {
		var validationErr *validation.Error
		if errors.As(err, &validationErr) {
			return NewClientError(ErrInvalidPayload, apiErrors.ErrValidationFailed, validationErr)
		}
		return NewClientError(ErrInvalidPayload, apiErrors.ErrValidationFailed, err.Error())
	}
	return nil
}

func (s *Service) writeError(ctx context.Context, err error, clientID int, details string) error {
	log.ForContext(ctx).WithError(err).WithField("client_id", clientID).Error(details)

	if repository.IsConstraintViolation(err) {
		return NewClientErrorWithID(ErrConstraint, apiErrors.ErrResourceConflict, clientID, repository.ConstraintName(err))
	}
	return NewClientErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, clientID, details)
}
