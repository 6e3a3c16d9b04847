package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fee-tracker-api/internal/api/handler"
	"github.com/vfg2006/fee-tracker-api/internal/api/handler/router"
	"github.com/vfg2006/fee-tracker-api/internal/config"
	"github.com/vfg2006/fee-tracker-api/internal/scheduler"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/client"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/contract"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/dashboard"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/payment"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/periods"
	"github.com/vfg2006/fee-tracker-api/pkg/metrics"
	"github.com/vfg2006/fee-tracker-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services agrupa as dependências expostas pela API
type Services struct {
	DB              handler.Pinger
	Client          client.ClientService
	Contract        contract.ContractService
	Payment         payment.PaymentService
	Dashboard       dashboard.DashboardService
	Periods         periods.PeriodService
	ComplianceSweep *scheduler.ComplianceSweepService
	Metrics         *metrics.Metrics
}

func New(config *config.Config, services Services) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(config *config.Config, services Services) http.Handler {
	cronServices := handler.CronJobServices{}
	var reporter handler.OutstandingReporter
	if services.ComplianceSweep != nil {
		cronServices.ComplianceSweep = services.ComplianceSweep
		reporter = services.ComplianceSweep
	}

	configs := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck(services.DB)...),
		router.WithRoutes(handler.Clients(services.Client, services.Contract)...),
		router.WithRoutes(handler.Contracts(services.Contract)...),
		router.WithRoutes(handler.Payments(services.Payment)...),
		router.WithRoutes(handler.Dashboard(services.Dashboard)...),
		router.WithRoutes(handler.Periods(services.Periods)...),
		router.WithRoutes(handler.Calculations()...),
		router.WithRoutes(handler.Compliance(reporter)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	}

	if services.Metrics != nil && config.Metrics.Enabled {
		configs = append(configs,
			router.WithRoutes(handler.Metrics(services.Metrics.Handler())...),
			router.WithInstrumentation(services.Metrics.InstrumentRoute),
		)
	}

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(router.New(configs...))
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
