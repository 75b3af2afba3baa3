package moneyfmt_test

import (
	"testing"

	"github.com/SscSPs/expense_tracker_app/internal/utils/moneyfmt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	assert.Equal(t, "$1.2M", moneyfmt.Short(decimal.NewFromInt(1_200_000)))
	assert.Equal(t, "$15K", moneyfmt.Short(decimal.NewFromInt(15_005)))
	assert.Equal(t, "$950", moneyfmt.Short(decimal.NewFromInt(950)))
	assert.Equal(t, "$0", moneyfmt.Short(decimal.Zero))
}

func TestUSD(t *testing.T) {
	assert.Equal(t, "$1,500.50", moneyfmt.USD(decimal.RequireFromString("1500.50")))
}

func TestARS_RoundTripsCents(t *testing.T) {
	// Exact cent amounts survive the shift to minor units.
	got := moneyfmt.ARS(decimal.RequireFromString("0.05"))
	assert.Contains(t, got, "0,05")
}
