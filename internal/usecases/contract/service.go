package contract

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

type ContractService interface {
	ListContracts(ctx context.Context, filter domain.ContractFilter) ([]domain.Contract, error)
	GetContract(ctx context.Context, contractID int) (*domain.Contract, error)
	GetClientContract(ctx context.Context, clientID int) (*domain.Contract, error)
	CreateContract(ctx context.Context, req *domain.CreateContractRequest) (*domain.Contract, error)
	UpdateContract(ctx context.Context, req *domain.UpdateContractRequest) error
	DeleteContract(ctx context.Context, contractID int) error
}

type Service struct {
	contractRepository repository.ContractRepository
	validator          *validation.Validator
	dashboardCache     cache.DashboardCache
}

func NewService(
	contractRepository repository.ContractRepository,
	validator *validation.Validator,
	dashboardCache cache.DashboardCache,
) ContractService {
	return &Service{
		contractRepository: contractRepository,
		validator:          validator,
		dashboardCache:     dashboardCache,
	}
}

func (s *Service) ListContracts(ctx context.Context, filter domain.ContractFilter) ([]domain.Contract, error) {
	contracts, err := s.contractRepository.List(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar contratos")
		return nil, NewContractError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar contratos")
	}

	return contracts, nil
}

func (s *Service) GetContract(ctx context.Context, contractID int) (*domain.Contract, error) {
	contract, err := s.contractRepository.Get(ctx, contractID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("contract_id", contractID).Error("Erro ao buscar contrato")
		return nil, NewContractErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, contractID, "Falha ao buscar contrato")
	}

	if contract == nil {
		return nil, NewContractErrorWithID(ErrContractNotFound, apiErrors.ErrResourceNotFound, contractID, nil)
	}

	return contract, nil
}

func (s *Service) GetClientContract(ctx context.Context, clientID int) (*domain.Contract, error) {
	contract, err := s.contractRepository.GetActiveByClient(ctx, clientID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("client_id", clientID).Error("Erro ao buscar contrato do cliente")
		return nil, NewContractError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar contrato do cliente")
	}

	if contract == nil {
		return nil, NewContractError(ErrClientContractNotFound, apiErrors.ErrResourceNotFound, nil)
	}

	return contract, nil
}

func (s *Service) CreateContract(ctx context.Context, req *domain.CreateContractRequest) (*domain.Contract, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	req.Normalize()

	contractID, err := s.contractRepository.Create(ctx, req)
	if err != nil {
		return nil, s.writeError(ctx, err, 0, "Falha ao criar contrato")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"contract_id": contractID,
		"client_id":   req.ClientID,
	}).Info("Contrato criado")

	cache.InvalidateQuietly(ctx, s.dashboardCache, req.ClientID)

	return s.GetContract(ctx, contractID)
}

func (s *Service) UpdateContract(ctx context.Context, req *domain.UpdateContractRequest) error {
	if err := s.validate(req); err != nil {
		return err
	}
	req.Normalize()

	fields := req.Fields()
	if len(fields) == 0 {
		return NewContractErrorWithID(ErrNoFieldsToUpdate, apiErrors.ErrNoFieldsToUpdate, req.ID, nil)
	}

	current, err := s.GetContract(ctx, req.ID)
	if err != nil {
		return err
	}

	found, err := s.contractRepository.Update(ctx, req.ID, fields)
	if err != nil {
		return s.writeError(ctx, err, req.ID, "Falha ao atualizar contrato")
	}
	if !found {
		return NewContractErrorWithID(ErrContractNotFound, apiErrors.ErrResourceNotFound, req.ID, nil)
	}

	cache.InvalidateQuietly(ctx, s.dashboardCache, current.ClientID)

	return nil
}

func (s *Service) DeleteContract(ctx context.Context, contractID int) error {
	current, err := s.GetContract(ctx, contractID)
	if err != nil {
		return err
	}

	found, err := s.contractRepository.SoftDelete(ctx, contractID)
	if err != nil {
		return s.writeError(ctx, err, contractID, "Falha ao remover contrato")
	}
	if !found {
		return NewContractErrorWithID(ErrContractNotFound, apiErrors.ErrResourceNotFound, contractID, nil)
	}

	cache.InvalidateQuietly(ctx, s.dashboardCache, current.ClientID)
	log.ForContext(ctx).WithField("contract_id", contractID).Info("Contrato removido")

	return nil
}

func (s *Service) validate(payload any) error {
	if err := s.validator.Struct(payload); err != nil {
		var validationErr *validation.Error
		if errors.As(err, &validationErr) {
			return NewContractError(ErrInvalidPayload, apiErrors.ErrValidationFailed, validationErr)
		}
		return NewContractError(ErrInvalidPayload, apiErrors.ErrValidationFailed, err.Error())
	}
	return nil
}

func (s *Service) writeError(ctx context.Context, err error, contractID int, details string) error {
	log.ForContext(ctx).WithError(err).WithField("contract_id", contractID).Error(details)

	if repository.IsConstraintViolation(err) {
		return NewContractErrorWithID(ErrConstraint, apiErrors.ErrResourceConflict, contractID, repository.ConstraintName(err))
	}
	return NewContractErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, contractID, details)
}
