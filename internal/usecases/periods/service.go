package periods

import (
	"context"
	"time"

	"github.com/vfg2006/fee-tracker-api/infrastructure/repository"
	"github.com/vfg2006/fee-tracker-api/internal/domain"
	"github.com/vfg2006/fee-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/fee-tracker-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type PeriodService interface {
	// AvailablePeriods lista os períodos ainda não pagos do contrato ativo do cliente
	AvailablePeriods(ctx context.Context, clientID, contractID int) (*domain.AvailablePeriods, error)
	// OutstandingForContract faz o mesmo cálculo para um contrato já carregado
	OutstandingForContract(ctx context.Context, contract domain.Contract) ([]domain.Period, error)
}

type Service struct {
	contractRepository repository.ContractRepository
	paymentRepository  repository.PaymentRepository
	now                func() time.Time
}

type Option func(*Service)

// WithClock fixa o relógio usado para achar o período de cobrança
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	contractRepository repository.ContractRepository,
	paymentRepository repository.PaymentRepository,
	opts ...Option,
) PeriodService {
	s := &Service{
		contractRepository: contractRepository,
		paymentRepository:  paymentRepository,
		now:                time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) AvailablePeriods(ctx context.Context, clientID, contractID int) (*domain.AvailablePeriods, error) {
	if clientID <= 0 || contractID <= 0 {
		return nil, NewPeriodError(ErrIDsRequired, apiErrors.ErrMissingRequiredData, contractID, "")
	}

	contract, err := s.contractRepository.GetForClient(ctx, contractID, clientID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"client_id":   clientID,
			"contract_id": contractID,
		}).Error("Erro ao buscar contrato")
		return nil, NewPeriodError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, contractID, "Falha ao buscar contrato")
	}
	if contract == nil {
		return nil, NewPeriodError(ErrContractNotFound, apiErrors.ErrResourceNotFound, contractID, "")
	}

	outstanding, err := s.OutstandingForContract(ctx, *contract)
	if err != nil {
		return nil, err
	}

	cadence, _ := contract.Cadence()
	return domain.NewAvailablePeriods(cadence, outstanding), nil
}

func (s *Service) OutstandingForContract(ctx context.Context, contract domain.Contract) ([]domain.Period, error) {
	cadence, err := contract.Cadence()
	if err != nil {
		return nil, NewPeriodError(ErrInvalidSchedule, apiErrors.ErrValidationFailed, contract.ID, "")
	}

	paid, err := s.paymentRepository.PaidPeriods(ctx, contract.ClientID, cadence)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("client_id", contract.ClientID).Error("Erro ao buscar períodos pagos")
		return nil, NewPeriodError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, contract.ID, "Falha ao buscar períodos pagos")
	}

	earliest, err := s.paymentRepository.EarliestPeriod(ctx, contract.ClientID, cadence)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("client_id", contract.ClientID).Error("Erro ao buscar primeiro período")
		return nil, NewPeriodError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, contract.ID, "Falha ao buscar primeiro período")
	}

	return domain.EnumerateOutstandingPeriods(cadence, paid, earliest, s.now()), nil
}
