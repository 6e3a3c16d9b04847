package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fee-tracker-api/infrastructure/repository"
	"github.com/vfg2006/fee-tracker-api/internal/config"
	"github.com/vfg2006/fee-tracker-api/internal/domain"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/periods"
	"github.com/vfg2006/fee-tracker-api/pkg/metrics"
	"github.com/vfg2006/fee-tracker-api/pkg/utils"
)

const (
	sweepStatusSuccess = "success"
	sweepStatusFailure = "failure"
)

// ComplianceSweepService varre os contratos ativos procurando períodos sem pagamento
type ComplianceSweepService struct {
	scheduler     *gocron.Scheduler
	config        config.ComplianceSweep
	contractRepo  repository.ContractRepository
	periodService periods.PeriodService
	metrics       *metrics.Metrics

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.OutstandingReport
}

func NewComplianceSweepService(
	contractRepo repository.ContractRepository,
	periodService periods.PeriodService,
	m *metrics.Metrics,
	appConfig *config.Config,
) *ComplianceSweepService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.ComplianceSweep.CronSchedule,
		"sync_enabled":  appConfig.ComplianceSweep.Enabled,
	}).Info("Configuração da varredura de conformidade carregada")

	return &ComplianceSweepService{
		scheduler:     gocron.NewScheduler(time.Local),
		config:        appConfig.ComplianceSweep,
		contractRepo:  contractRepo,
		periodService: periodService,
		metrics:       m,
	}
}

// Start agenda a varredura; com a varredura desabilitada não faz nada
func (s *ComplianceSweepService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Varredura de conformidade desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da varredura de conformidade")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sweep(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de conformidade: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da varredura de conformidade")
		s.scheduler.Stop()
	}()

	return nil
}

// sweep executa uma varredura completa; execuções concorrentes são descartadas
func (s *ComplianceSweepService) sweep(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de conformidade já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Não foi possível gerar o id da varredura")
	}
	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando varredura de conformidade")

	contracts, err := s.contractRepo.List(ctx, domain.ContractFilter{})
	if err != nil {
		logger.WithError(err).Error("Erro ao listar contratos para a varredura de conformidade")
		s.metrics.SweepCompleted(sweepStatusFailure, 0, time.Since(startTime))
		return
	}

	report := &domain.OutstandingReport{
		RunID:     runID,
		Contracts: make([]domain.ContractOutstanding, 0),
	}
	total := 0

	for _, contract := range contracts {
		outstanding, err := s.periodService.OutstandingForContract(ctx, contract)
		if err != nil {
			report.Failures++
			logger.WithError(err).WithFields(logrus.Fields{
				"client_id":   contract.ClientID,
				"contract_id": contract.ID,
			}).Warn("Não foi possível calcular períodos em aberto do contrato")
			continue
		}

		if len(outstanding) == 0 {
			continue
		}

		cadence, _ := contract.Cadence()
		report.Contracts = append(report.Contracts, domain.ContractOutstanding{
			ClientID:        contract.ClientID,
			ClientName:      contract.ClientName,
			ContractID:      contract.ID,
			PaymentSchedule: cadence,
			Outstanding:     domain.NewAvailablePeriods(cadence, outstanding).Periods,
		})
		total += len(outstanding)
	}

	completedAt := time.Now()
	report.GeneratedAt = completedAt

	s.syncMutex.Lock()
	s.lastReport = report
	s.lastSyncCompletedAt = completedAt
	s.syncMutex.Unlock()

	duration := completedAt.Sub(startTime)
	s.metrics.SweepCompleted(sweepStatusSuccess, total, duration)

	logger.WithFields(logrus.Fields{
		"duration":            duration.String(),
		"contracts":           len(contracts),
		"contracts_with_debt": len(report.Contracts),
		"outstanding_periods": total,
		"failures":            report.Failures,
	}).Info("Varredura de conformidade concluída")
}

// TriggerManualSync dispara uma varredura em background
func (s *ComplianceSweepService) TriggerManualSync() {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Varredura de conformidade já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando varredura de conformidade manual")
	go s.sweep(context.Background())
}

// LastReport devolve o relatório da última varredura concluída; nil antes da primeira
func (s *ComplianceSweepService) LastReport() *domain.OutstandingReport {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.lastReport
}

func (s *ComplianceSweepService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
