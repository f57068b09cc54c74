package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT", "")
	t.Setenv("DEFAULT_OVERHEAD_MULTIPLIER", "")
	t.Setenv("DEFAULT_ANNUAL_HOURS", "")
	t.Setenv("ANALYTICS_TOP_N", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, defaultRateLimit, cfg.RateLimit)
	assert.True(t, decimal.RequireFromString("1.15").Equal(cfg.DefaultOverheadMultiplier))
	assert.True(t, decimal.NewFromInt(2080).Equal(cfg.DefaultAnnualHours))
	assert.Equal(t, defaultAnalyticsTopN, cfg.AnalyticsTopN)
}

func TestLoadConfigInvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT", "lots")
	t.Setenv("DEFAULT_OVERHEAD_MULTIPLIER", "-2")
	t.Setenv("DEFAULT_ANNUAL_HOURS", "abc")
	t.Setenv("ANALYTICS_TOP_N", "0")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, defaultRateLimit, cfg.RateLimit)
	assert.True(t, decimal.RequireFromString("1.15").Equal(cfg.DefaultOverheadMultiplier))
	assert.True(t, decimal.NewFromInt(2080).Equal(cfg.DefaultAnnualHours))
	assert.Equal(t, defaultAnalyticsTopN, cfg.AnalyticsTopN)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT", "10-S")
	t.Setenv("DEFAULT_ANNUAL_HOURS", "1800")
	t.Setenv("ANALYTICS_TOP_N", "8")
	t.Setenv("JWT_ISSUER", "treeops-idp")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.True(t, decimal.NewFromInt(1800).Equal(cfg.DefaultAnnualHours))
	assert.Equal(t, 8, cfg.AnalyticsTopN)
	assert.Equal(t, "treeops-idp", cfg.JWTIssuer)
}
