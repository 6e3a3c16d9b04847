package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fee-tracker-api/infrastructure/cache"
	"github.com/vfg2006/fee-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/fee-tracker-api/infrastructure/repository"
	"github.com/vfg2006/fee-tracker-api/internal/api"
	"github.com/vfg2006/fee-tracker-api/internal/config"
	"github.com/vfg2006/fee-tracker-api/internal/scheduler"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/client"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/contract"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/dashboard"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/payment"
	"github.com/vfg2006/fee-tracker-api/internal/usecases/periods"
	"github.com/vfg2006/fee-tracker-api/pkg/metrics"
	"github.com/vfg2006/fee-tracker-api/pkg/validation"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	var dashboardCache cache.DashboardCache
	if cfg.DashboardCache.Enabled {
		if redisClient := redisconn(ctx, cfg.Redis); redisClient != nil {
			defer redisClient.Close()
			dashboardCache = cache.NewDashboardCache(redisClient, cfg.DashboardCache.TTL)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)

	clientRepo := repository.NewClientRepository(pgConn)
	contractRepo := repository.NewContractRepository(pgConn)
	paymentRepo := repository.NewPaymentRepository(pgConn)
	dashboardRepo := repository.NewDashboardRepository(pgConn)

	validator := validation.New()

	clientService := client.NewService(clientRepo, validator, dashboardCache)
	contractService := contract.NewService(contractRepo, validator, dashboardCache)
	paymentService := payment.NewService(paymentRepo, validator, dashboardCache, cfg.Payments.PageLimitMax)
	periodService := periods.NewService(contractRepo, paymentRepo)

	dashboardOpts := []dashboard.Option{dashboard.WithMetrics(appMetrics)}
	if dashboardCache != nil {
		dashboardOpts = append(dashboardOpts, dashboard.WithCache(dashboardCache))
	}
	dashboardService := dashboard.NewService(dashboardRepo, dashboardOpts...)

	complianceSweepService := scheduler.NewComplianceSweepService(contractRepo, periodService, appMetrics, cfg)

	if err := complianceSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da varredura de conformidade")
	} else {
		logrus.Info("Agendador da varredura de conformidade iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		DB:              pgConn,
		Client:          clientService,
		Contract:        contractService,
		Payment:         paymentService,
		Dashboard:       dashboardService,
		Periods:         periodService,
		ComplianceSweep: complianceSweepService,
		Metrics:         appMetrics,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	_ = os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// redisconn conecta ao Redis; sem Redis a API segue funcionando sem cache
func redisconn(ctx context.Context, redisConfig config.Redis) *redis.Client {
	client, err := cache.NewRedisClient(ctx, redisConfig)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, cache do dashboard desativado")
		return nil
	}

	logrus.WithField("addr", redisConfig.Addr).Info("Conexão com Redis estabelecida com sucesso")
	return client
}
