package rates_test

import (
	"testing"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/utils/rates"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ratesMap(pairs map[string]int64) domain.RateMap {
	m := domain.RateMap{}
	for k, v := range pairs {
		m[k] = decimal.NewFromInt(v)
	}
	return m
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2026-02", rates.MonthKey(2026, 2))
	assert.Equal(t, "2026-12", rates.MonthKey(2026, 12))
	assert.Equal(t, "0999-01", rates.MonthKey(999, 1))
}

func TestResolve_ExactMatch(t *testing.T) {
	m := ratesMap(map[string]int64{"2026-02": 1450, "2026-01": 1200})
	assert.True(t, rates.Resolve("2026-02", m).Equal(decimal.NewFromInt(1450)))
}

func TestResolve_FallsBackToLatestPrior(t *testing.T) {
	m := ratesMap(map[string]int64{"2026-01": 1200})
	assert.True(t, rates.Resolve("2026-02", m).Equal(decimal.NewFromInt(1200)))

	// Latest prior wins when several exist, including across years.
	m = ratesMap(map[string]int64{"2025-11": 900, "2025-12": 950, "2026-01": 1200})
	assert.True(t, rates.Resolve("2026-03", m).Equal(decimal.NewFromInt(1200)))
	assert.True(t, rates.Resolve("2025-12", m).Equal(decimal.NewFromInt(950)))
}

func TestResolve_IgnoresLaterMonths(t *testing.T) {
	m := ratesMap(map[string]int64{"2026-05": 1600})
	assert.True(t, rates.Resolve("2026-02", m).Equal(rates.DefaultRate))
}

func TestResolve_EmptyMapReturnsDefault(t *testing.T) {
	assert.True(t, rates.Resolve("2026-02", domain.RateMap{}).Equal(decimal.NewFromInt(1000)))
	assert.True(t, rates.Resolve("2026-02", nil).Equal(rates.DefaultRate))
}

func TestHasOverride(t *testing.T) {
	m := ratesMap(map[string]int64{"2026-01": 1200})
	assert.True(t, rates.HasOverride("2026-01", m))
	assert.False(t, rates.HasOverride("2026-02", m))
}
