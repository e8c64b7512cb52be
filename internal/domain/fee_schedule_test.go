package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/feequote/internal/domain"
)

func TestFeeSchedule_Validate(t *testing.T) {
	require.NoError(t, domain.DefaultFeeSchedule().Validate())

	tests := []struct {
		name   string
		mutate func(s *domain.FeeSchedule)
	}{
		{name: "no brackets", mutate: func(s *domain.FeeSchedule) { s.Brackets = nil }},
		{name: "negative bracket rate", mutate: func(s *domain.FeeSchedule) { s.Brackets[0].Rate = dec("-0.1") }},
		{name: "zero simple multiplier", mutate: func(s *domain.FeeSchedule) { s.SimpleMultiplier = decimal.Zero }},
		{name: "negative enterprise multiplier", mutate: func(s *domain.FeeSchedule) { s.EnterpriseMultiplier = dec("-1") }},
		{name: "spend tiers out of order", mutate: func(s *domain.FeeSchedule) { s.SpendTiers[2].MinSpend = dec("5000") }},
		{name: "discount cap above one", mutate: func(s *domain.FeeSchedule) { s.MaxDiscountRate = dec("1.5") }},
		{name: "negative oracle fee", mutate: func(s *domain.FeeSchedule) { s.OracleBaseFee = dec("-50") }},
		{name: "negative included kpis", mutate: func(s *domain.FeeSchedule) { s.OracleIncludedKPIs = -1 }},
		{name: "buffer above one", mutate: func(s *domain.FeeSchedule) { s.BufferRate = dec("2") }},
		{name: "zero validity", mutate: func(s *domain.FeeSchedule) { s.QuoteValidity = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := domain.DefaultFeeSchedule()
			tt.mutate(&schedule)
			require.Error(t, schedule.Validate())
		})
	}
}

func TestFeeSchedule_SpendTierFor(t *testing.T) {
	schedule := domain.DefaultFeeSchedule()
	schedule.SpendTiers = schedule.SpendTiers[1:]

	tier := schedule.SpendTierFor(dec("500"))
	require.Equal(t, "none", tier.Name)
	require.True(t, tier.Rate.IsZero())

	tier = schedule.SpendTierFor(dec("10000"))
	require.Equal(t, "silver", tier.Name)
}

func TestFeeSchedule_Items(t *testing.T) {
	items := domain.DefaultFeeSchedule().Items()

	values := make(map[string]decimal.Decimal, len(items))
	for _, item := range items {
		require.NotEmpty(t, item.Description, item.Key)
		_, duplicate := values[item.Key]
		require.False(t, duplicate, "duplicate key %s", item.Key)
		values[item.Key] = item.Value
	}

	expected := map[string]string{
		"tier1Max":             "5000",
		"tier1Rate":            "0.10",
		"tier2Max":             "20000",
		"tier3Max":             "50000",
		"tier4Rate":            "0.04",
		"complexitySimple":     "0.8",
		"complexityEnterprise": "1.5",
		"goldMinSpend":         "50000",
		"platinumDiscountRate": "0.25",
		"maxDiscountRate":      "0.40",
		"tokenDiscountRate":    "0.20",
		"oracleBaseFee":        "50",
		"oraclePerKpiFee":      "10",
		"oracleIncludedKpis":   "3",
		"oraclePremiumRate":    "0.40",
		"bufferPercentage":     "10",
		"quoteValiditySeconds": "900",
	}
	for key, value := range expected {
		got, ok := values[key]
		require.True(t, ok, "missing key %s", key)
		require.True(t, dec(value).Equal(got), "key %s: expected %s, got %s", key, value, got)
	}
}

func TestFeeSchedule_Version(t *testing.T) {
	base := domain.DefaultFeeSchedule()
	require.Equal(t, base.Version(), domain.DefaultFeeSchedule().Version())
	require.Regexp(t, `^v-[0-9a-f]{8}$`, base.Version())

	changed := domain.DefaultFeeSchedule()
	changed.TokenDiscountRate = dec("0.25")
	require.NotEqual(t, base.Version(), changed.Version())

	longer := domain.DefaultFeeSchedule()
	longer.QuoteValidity = 30 * time.Minute
	require.NotEqual(t, base.Version(), longer.Version())
}
