package payment

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

type PaymentService interface {
	ListPayments(ctx context.Context, filter domain.PaymentFilter) ([]domain.PaymentDetail, error)
	GetPayment(ctx context.Context, paymentID int) (*domain.PaymentDetail, error)
	CreatePayment(ctx context.Context, req *domain.CreatePaymentRequest) (*domain.PaymentDetail, error)
	UpdatePayment(ctx context.Context, req *domain.UpdatePaymentRequest) error
	DeletePayment(ctx context.Context, paymentID int) error
}

type Service struct {
	paymentRepository repository.PaymentRepository
	validator         *validation.Validator
	dashboardCache    cache.DashboardCache
	pageLimitMax      int
}

func NewService(
	paymentRepository repository.PaymentRepository,
	validator *validation.Validator,
	dashboardCache cache.DashboardCache,
	pageLimitMax int,
) PaymentService {
	if pageLimitMax <= 0 {
		pageLimitMax = domain.DefaultPaymentsLimit
	}
	return &Service{
		paymentRepository: paymentRepository,
		validator:         validator,
		dashboardCache:    dashboardCache,
		pageLimitMax:      pageLimitMax,
	}
}

func (s *Service) ListPayments(ctx context.Context, filter domain.PaymentFilter) ([]domain.PaymentDetail, error) {
	if filter.ClientID <= 0 {
		return nil, NewPaymentError(ErrClientIDRequired, apiErrors.ErrMissingRequiredData, nil)
	}
	if filter.Page < 1 || filter.Limit < 1 {
		return nil, NewPaymentError(ErrInvalidPagination, apiErrors.ErrInvalidRequest, nil)
	}
	if filter.Limit > s.pageLimitMax {
		filter.Limit = s.pageLimitMax
	}

	payments, err := s.paymentRepository.List(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("client_id", filter.ClientID).Error("Erro ao listar pagamentos")
		return nil, NewPaymentError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar pagamentos")
	}

	return payments, nil
}

func (s *Service) GetPayment(ctx context.Context, paymentID int) (*domain.PaymentDetail, error) {
	payment, err := s.paymentRepository.Get(ctx, paymentID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("payment_id", paymentID).Error("Erro ao buscar pagamento")
		return nil, NewPaymentErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, paymentID, "Falha ao buscar pagamento")
	}

	if payment == nil {
		return nil, NewPaymentErrorWithID(ErrPaymentNotFound, apiErrors.ErrResourceNotFound, paymentID, nil)
	}

	return payment, nil
}

func (s *Service) CreatePayment(ctx context.Context, req *domain.CreatePaymentRequest) (*domain.PaymentDetail, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	req.Normalize()

	paymentID, err := s.paymentRepository.Create(ctx, req)
	if err != nil {
		return nil, s.writeError(ctx, err, 0, "Falha ao criar pagamento")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"payment_id":  paymentID,
		"client_id":   req.ClientID,
		"contract_id": req.ContractID,
	}).Info("Pagamento registrado")

	// Os agregados do cliente são recalculados por trigger; o dashboard em cache fica obsoleto
	cache.InvalidateQuietly(ctx, s.dashboardCache, req.ClientID)

	return s.GetPayment(ctx, paymentID)
}

func (s *Service) UpdatePayment(ctx context.Context, req *domain.UpdatePaymentRequest) error {
	if err := s.validate(req); err != nil {
		return err
	}
	req.Normalize()

	fields := req.Fields()
	if len(fields) == 0 {
		return NewPaymentErrorWithID(ErrNoFieldsToUpdate, apiErrors.ErrNoFieldsToUpdate, req.ID, nil)
	}

	clientID, err := s.paymentRepository.Update(ctx, req.ID, fields)
	if err != nil {
		return s.writeError(ctx, err, req.ID, "Falha ao atualizar pagamento")
	}
	if clientID == 0 {
		return NewPaymentErrorWithID(ErrPaymentNotFound, apiErrors.ErrResourceNotFound, req.ID, nil)
	}

	cache.InvalidateQuietly(ctx, s.dashboardCache, clientID)

	return nil
}

func (s *Service) DeletePayment(ctx context.Context, paymentID int) error {
	clientID, err := s.paymentRepository.SoftDelete(ctx, paymentID)
	if err != nil {
		return s.writeError(ctx, err, paymentID, "Falha ao remover pagamento")
	}
	if clientID == 0 {
		return NewPaymentErrorWithID(ErrPaymentNotFound, apiErrors.ErrResourceNotFound, paymentID, nil)
	}

	cache.InvalidateQuietly(ctx, s.dashboardCache, clientID)
	log.ForContext(ctx).WithFields(log.Fields{
		"payment_id": paymentID,
		"client_id":  clientID,
	}).Info("Pagamento removido")

	return nil
}

func (s *Service) validate(payload any) error {
	if err := s.validator.Struct(payload); err != nil {
		var validationErr *validation.Error
		if errors.As(err, &validationErr) {
			return NewPaymentError(ErrInvalidPayload, apiErrors.ErrValidationFailed, validationErr)
		}
		return NewPaymentError(ErrInvalidPayload, apiErrors.ErrValidationFailed, err.Error())
	}
	return nil
}

func (s *Service) writeError(ctx context.Context, err error, paymentID int, details string) error {
	log.ForContext(ctx).WithError(err).WithField("payment_id", paymentID).Error(details)

	if repository.IsConstraintViolation(err) {
		return NewPaymentErrorWithID(ErrConstraint, apiErrors.ErrResourceConflict, paymentID, repository.ConstraintName(err))
	}
	return NewPaymentErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, paymentID, details)
}
