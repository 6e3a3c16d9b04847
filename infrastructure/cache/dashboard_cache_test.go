package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fee-tracker-api/internal/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (DashboardCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewDashboardCache(client, ttl), mr
}

func sampleDashboard() *domain.Dashboard {
	provider := "John Hancock"
	return &domain.Dashboard{
		Client:   domain.DashboardClient{ID: 1, DisplayName: "AirSea America"},
		Contract: &domain.DashboardContract{ID: 5, ProviderName: &provider},
		PaymentStatus: domain.DashboardPayment{
			Status:      domain.PaymentStatusPaid,
			ExpectedFee: decimal.NewNullDecimal(decimal.RequireFromString("700.00")),
		},
		Compliance:         domain.Compliance{Status: "compliant", Color: "green", Reason: "All payments up to date"},
		RecentPayments:     []domain.RecentPayment{},
		QuarterlySummaries: []domain.QuarterlySummary{},
	}
}

func TestDashboardCache_Miss(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	dashboard, err := c.Get(context.Background(), 1)

	require.NoError(t, err)
	assert.Nil(t, dashboard)
}

func TestDashboardCache_SetGet(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 1, sampleDashboard()))
	assert.True(t, mr.Exists("dashboard:client:1"))
	assert.Equal(t, time.Minute, mr.TTL("dashboard:client:1"))

	cached, err := c.Get(ctx, 1)

	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, "AirSea America", cached.Client.DisplayName)
	assert.Equal(t, "John Hancock", *cached.Contract.ProviderName)
	assert.True(t, cached.PaymentStatus.ExpectedFee.Decimal.Equal(decimal.NewFromInt(700)))
}

func TestDashboardCache_Expires(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 1, sampleDashboard()))
	mr.FastForward(2 * time.Minute)

	cached, err := c.Get(ctx, 1)

	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestDashboardCache_Invalidate(t *testing.T) {
	c, mr := newTestCache(t, 0)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, 2, sampleDashboard()))
	assert.Equal(t, defaultDashboardTTL, mr.TTL("dashboard:client:2"))

	require.NoError(t, c.Invalidate(ctx, 2))
	assert.False(t, mr.Exists("dashboard:client:2"))
}

func TestDashboardCache_CorruptEntryIsDropped(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	require.NoError(t, mr.Set("dashboard:client:3", "{not json"))

	cached, err := c.Get(context.Background(), 3)

	require.NoError(t, err)
	assert.Nil(t, cached)
	assert.False(t, mr.Exists("dashboard:client:3"))
}

func TestDashboardCache_ServerDown(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	mr.Close()

	_, err := c.Get(context.Background(), 1)

	assert.Error(t, err)
}
