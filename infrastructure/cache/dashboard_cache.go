package cache

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fee-tracker-api/internal/config"
	"github.com/vfg2006/fee-tracker-api/internal/domain"
)

//go:generate mockgen -source=dashboard_cache.go -destination=mocks/dashboard_cache_mock.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultDashboardTTL = 5 * time.Minute

type DashboardCache interface {
	// Get devolve nil, nil quando não há entrada para o cliente
	Get(ctx context.Context, clientID int) (*domain.Dashboard, error)
	Set(ctx context.Context, clientID int, dashboard *domain.Dashboard) error
	Invalidate(ctx context.Context, clientID int) error
}

type redisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "conectando ao redis")
	}

	return client, nil
}

func NewDashboardCache(client *redis.Client, ttl time.Duration) DashboardCache {
	if ttl <= 0 {
		ttl = defaultDashboardTTL
	}
	return &redisDashboardCache{
		client: client,
		ttl:    ttl,
	}
}

func dashboardKey(clientID int) string {
	return fmt.Sprintf("dashboard:client:%d", clientID)
}

func (c *redisDashboardCache) Get(ctx context.Context, clientID int) (*domain.Dashboard, error) {
	key := dashboardKey(clientID)

	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "lendo %s", key)
	}

	var dashboard domain.Dashboard
	if err := json.Unmarshal(data, &dashboard); err != nil {
		// Entrada corrompida é descartada e tratada como miss
		logrus.WithError(err).WithField("cache_key", key).Warn("Entrada de cache inválida, removendo")
		_ = c.client.Del(ctx, key).Err()
		return nil, nil
	}

	return &dashboard, nil
}

func (c *redisDashboardCache) Set(ctx context.Context, clientID int, dashboard *domain.Dashboard) error {
	if dashboard == nil {
		return nil
	}

	data, err := json.Marshal(dashboard)
	if err != nil {
		return errors.Wrap(err, "serializando dashboard")
	}

	key := dashboardKey(clientID)
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return errors.Wrapf(err, "gravando %s", key)
	}

	return nil
}

func (c *redisDashboardCache) Invalidate(ctx context.Context, clientID int) error {
	key := dashboardKey(clientID)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrapf(err, "removendo %s", key)
	}
	return nil
}

// InvalidateQuietly remove o dashboard do cliente sem propagar falhas; cache nulo é ignorado
func InvalidateQuietly(ctx context.Context, c DashboardCache, clientID int) {
	if c == nil || clientID <= 0 {
		return
	}
	if err := c.Invalidate(ctx, clientID); err != nil {
		logrus.WithError(err).WithField("client_id", clientID).Warn("Falha ao invalidar cache do dashboard")
	}
}
