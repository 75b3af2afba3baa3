// Package moneyfmt renders decimal amounts as localized currency strings for
// API responses, backed by go-money's per-currency formatting tables.
package moneyfmt

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ARS formats an amount in Argentine pesos, e.g. "ARS$ 1.500,50".
func ARS(amount decimal.Decimal) string {
	return display(amount, money.ARS)
}

// USD formats an amount in US dollars, e.g. "$1,500.50".
func USD(amount decimal.Decimal) string {
	return display(amount, money.USD)
}

func display(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}

// Short renders a compact magnitude label for chart axes: "$1.2M", "$15K",
// "$950".
func Short(amount decimal.Decimal) string {
	million := decimal.NewFromInt(1_000_000)
	thousand := decimal.NewFromInt(1_000)
	switch {
	case amount.GreaterThanOrEqual(million):
		return fmt.Sprintf("$%sM", amount.Div(million).Round(1))
	case amount.GreaterThanOrEqual(thousand):
		return fmt.Sprintf("$%sK", amount.Div(thousand).Round(0))
	default:
		return fmt.Sprintf("$%s", amount.Round(0))
	}
}
