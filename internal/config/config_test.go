package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/feequote/internal/config"
	"github.com/davidbz/feequote/internal/domain"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 30, cfg.Server.WriteTimeout)
		require.Equal(t, config.StoreMemory, cfg.Store.Backend)
		require.Equal(t, "localhost:6379", cfg.Redis.Addr)
		require.Equal(t, 15*time.Minute, cfg.Quote.Validity)
		require.Empty(t, cfg.Quote.SigningSecret)
		require.Contains(t, cfg.CORS.AllowedHeaders, "X-Requester-Id")
		require.Empty(t, cfg.Admin.Token)
		require.Equal(t, "info", cfg.Log.Level)
		require.False(t, cfg.Log.Development)

		require.True(t, decimal.RequireFromString("5000").Equal(cfg.Fee.Tier1Max))
		require.True(t, decimal.RequireFromString("0.04").Equal(cfg.Fee.Tier4Rate))
		require.True(t, cfg.Fee.ComplexityEnterprise.IsZero())
		require.Equal(t, 3, cfg.Fee.OracleIncludedKPIs)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("QUOTE_SIGNING_SECRET", "s3cret")
		t.Setenv("QUOTE_VALIDITY", "5m")
		t.Setenv("STORE_BACKEND", "redis")
		t.Setenv("REDIS_ADDR", "redis:6380")
		t.Setenv("FEE_TIER1_RATE", "0.12")
		t.Setenv("FEE_COMPLEXITY_ENTERPRISE", "2.0")
		t.Setenv("FEE_ORACLE_INCLUDED_KPIS", "5")
		t.Setenv("ADMIN_TOKEN", "op-token")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_DEVELOPMENT", "true")

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, "s3cret", cfg.Quote.SigningSecret)
		require.Equal(t, 5*time.Minute, cfg.Quote.Validity)
		require.Equal(t, config.StoreRedis, cfg.Store.Backend)
		require.Equal(t, "redis:6380", cfg.Redis.Addr)
		require.True(t, decimal.RequireFromString("0.12").Equal(cfg.Fee.Tier1Rate))
		require.True(t, decimal.RequireFromString("2.0").Equal(cfg.Fee.ComplexityEnterprise))
		require.Equal(t, 5, cfg.Fee.OracleIncludedKPIs)
		require.Equal(t, "op-token", cfg.Admin.Token)
		require.Equal(t, "debug", cfg.Log.Level)
		require.True(t, cfg.Log.Development)
	})

	t.Run("should panic on malformed amounts", func(t *testing.T) {
		t.Setenv("FEE_TIER2_RATE", "eight percent")

		require.Panics(t, func() { config.Load() })
	})
}

func TestConfig_FeeSchedule(t *testing.T) {
	t.Run("should match the default schedule with defaults", func(t *testing.T) {
		os.Clearenv()

		schedule := config.Load().FeeSchedule()

		require.NoError(t, schedule.Validate())
		require.Equal(t, domain.DefaultFeeSchedule().Version(), schedule.Version())
		require.True(t, decimal.RequireFromString("1.5").Equal(schedule.Multiplier(domain.ComplexityEnterprise)))
	})

	t.Run("should carry overrides into the schedule", func(t *testing.T) {
		t.Setenv("FEE_TIER1_RATE", "0.12")
		t.Setenv("FEE_COMPLEXITY_ENTERPRISE", "2.0")
		t.Setenv("FEE_BUFFER_RATE", "0.05")
		t.Setenv("QUOTE_VALIDITY", "5m")

		schedule := config.Load().FeeSchedule()

		require.NoError(t, schedule.Validate())
		require.True(t, decimal.RequireFromString("0.12").Equal(schedule.BaseRate(decimal.NewFromInt(1000))))
		require.True(t, decimal.RequireFromString("2.0").Equal(schedule.Multiplier(domain.ComplexityEnterprise)))
		require.True(t, decimal.RequireFromString("5").Equal(schedule.BufferPercentage()))
		require.Equal(t, 5*time.Minute, schedule.QuoteValidity)
	})
}

func TestParseDependenciesConfig(t *testing.T) {
	os.Clearenv()
	cfg := config.Load()

	deps := config.ParseDependenciesConfig(cfg)

	require.Same(t, &cfg.Server, deps.ServerConfig)
	require.Same(t, &cfg.Quote, deps.QuoteConfig)
	require.Same(t, &cfg.Store, deps.StoreConfig)
	require.Same(t, &cfg.Redis, deps.RedisConfig)
	require.Same(t, &cfg.Admin, deps.AdminConfig)
	require.Same(t, &cfg.Log, deps.LogConfig)
}
