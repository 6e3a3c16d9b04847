package dashboard

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/fee-tracker-api/infrastructure/cache"
	"github.com/vfg2006/fee-tracker-api/infrastructure/repository"
	"github.com/vfg2006/fee-tracker-api/internal/domain"
	"github.com/vfg2006/fee-tracker-api/pkg/apiErrors"
	"github.com/vfg2006/fee-tracker-api/pkg/log"
	"github.com/vfg2006/fee-tracker-api/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type DashboardService interface {
	GetDashboard(ctx context.Context, clientID int) (*domain.Dashboard, error)
}

type Service struct {
	dashboardRepository repository.DashboardRepository
	cache               cache.DashboardCache
	metrics             *metrics.Metrics
	now                 func() time.Time
}

type Option func(*Service)

// WithCache ativa o cache do dashboard; sem ele toda requisição vai ao banco
func WithCache(c cache.DashboardCache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(dashboardRepository repository.DashboardRepository, opts ...Option) DashboardService {
	s := &Service{
		dashboardRepository: dashboardRepository,
		now:                 time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) GetDashboard(ctx context.Context, clientID int) (*domain.Dashboard, error) {
	logger := log.ForContext(ctx).WithField("client_id", clientID)

	if cached := s.fromCache(ctx, clientID); cached != nil {
		return cached, nil
	}

	overview, err := s.dashboardRepository.Overview(ctx, clientID)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar dados do dashboard")
		return nil, NewDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, clientID, "Falha ao buscar dashboard")
	}
	if overview == nil {
		return nil, NewDashboardError(ErrClientNotFound, apiErrors.ErrResourceNotFound, clientID, "")
	}

	var (
		status    *domain.ClientPaymentStatus
		recent    []domain.RecentPayment
		summaries []domain.QuarterlySummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		status, err = s.dashboardRepository.PaymentStatus(gctx, clientID)
		return errors.Wrap(err, "status de pagamento")
	})
	g.Go(func() error {
		var err error
		recent, err = s.dashboardRepository.RecentPayments(gctx, clientID)
		return errors.Wrap(err, "pagamentos recentes")
	})
	g.Go(func() error {
		var err error
		summaries, err = s.dashboardRepository.QuarterlySummaries(gctx, clientID, s.now().Year())
		return errors.Wrap(err, "resumos trimestrais")
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("Erro ao montar dashboard")
		return nil, NewDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, clientID, "Falha ao buscar dashboard")
	}

	if recent == nil {
		recent = []domain.RecentPayment{}
	}
	if summaries == nil {
		summaries = []domain.QuarterlySummary{}
	}

	dashboard := &domain.Dashboard{
		Client:             overview.Client,
		Contract:           overview.Contract,
		PaymentStatus:      domain.NewDashboardPayment(status),
		Compliance:         domain.NewCompliance(status),
		RecentPayments:     recent,
		Metrics:            overview.Metrics,
		QuarterlySummaries: summaries,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, clientID, dashboard); err != nil {
			logger.WithError(err).Warn("Erro ao gravar dashboard no cache")
		}
	}

	return dashboard, nil
}

// fromCache devolve nil em miss ou falha; o cache nunca impede a resposta
func (s *Service) fromCache(ctx context.Context, clientID int) *domain.Dashboard {
	if s.cache == nil {
		return nil
	}

	cached, err := s.cache.Get(ctx, clientID)
	switch {
	case err != nil:
		s.metrics.CacheResult("error")
		log.ForContext(ctx).WithError(err).WithField("client_id", clientID).Warn("Erro ao ler dashboard do cache")
		return nil
	case cached == nil:
		s.metrics.CacheResult("miss")
		return nil
	}

	s.metrics.CacheResult("hit")
	return cached
}
