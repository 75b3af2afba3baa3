package dto

import (
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/utils/moneyfmt"
	"github.com/shopspring/decimal"
)

// DimensionTotalResponse is one breakdown row with a display-ready total.
type DimensionTotalResponse struct {
	Label        string          `json:"label"`
	Count        int             `json:"count"`
	Total        decimal.Decimal `json:"total"`
	TotalDisplay string          `json:"totalDisplay"`
	Pct          float64         `json:"pct"`
}

// CategoryDeltaResponse mirrors domain.CategoryDelta for the API.
type CategoryDeltaResponse struct {
	Category string          `json:"category"`
	Current  decimal.Decimal `json:"current"`
	Previous decimal.Decimal `json:"previous"`
	Delta    decimal.Decimal `json:"delta"`
	Pct      float64         `json:"pct"`
	HasBoth  bool            `json:"hasBoth"`
}

// MonthComparisonResponse carries the headline totals and category deltas.
type MonthComparisonResponse struct {
	CurrentTotal  decimal.Decimal         `json:"currentTotal"`
	PreviousTotal decimal.Decimal         `json:"previousTotal"`
	TotalDelta    decimal.Decimal         `json:"totalDelta"`
	TotalPct      float64                 `json:"totalPct"`
	Categories    []CategoryDeltaResponse `json:"categories"`
}

// RankedExpenseResponse is one top-N entry.
type RankedExpenseResponse struct {
	Expense ExpenseResponse `json:"expense"`
	Pct     float64         `json:"pct"`
}

// MonthlyAnalyticsResponse is everything the month view renders: breakdowns
// by both dimensions, the month-over-month comparison and the top-10.
type MonthlyAnalyticsResponse struct {
	Year                    int                      `json:"year"`
	Month                   int                      `json:"month"`
	HeadlineTotal           decimal.Decimal          `json:"headlineTotal"`
	HeadlineTotalDisplay    string                   `json:"headlineTotalDisplay"`
	ByCategory              []DimensionTotalResponse `json:"byCategory"`
	ByPaymentMethod         []DimensionTotalResponse `json:"byPaymentMethod"`
	Comparison              MonthComparisonResponse  `json:"comparison"`
	Top                     []RankedExpenseResponse  `json:"top"`
	Rate                    decimal.Decimal          `json:"rate"`
	RateHasOverride         bool                     `json:"rateHasOverride"`
	HeadlineTotalUSD        decimal.Decimal          `json:"headlineTotalUSD"`
	HeadlineTotalUSDDisplay string                   `json:"headlineTotalUSDDisplay"`
}

// MonthTotalResponse is one slot of the year summary.
type MonthTotalResponse struct {
	Month         int             `json:"month"`
	Total         decimal.Decimal `json:"total"`
	TotalDisplay  string          `json:"totalDisplay"`
	TotalShort    string          `json:"totalShort"`
	Count         int             `json:"count"`
	Rate          decimal.Decimal `json:"rate"`
	HasCustomRate bool            `json:"hasCustomRate"`
	TotalUSD      decimal.Decimal `json:"totalUSD"`
	USDDisplay    string          `json:"usdDisplay"`
}

// RecurringGroupResponse is one recurring cluster row.
type RecurringGroupResponse struct {
	Note       string          `json:"note"`
	Category   string          `json:"category"`
	MonthCount int             `json:"monthCount"`
	Count      int             `json:"count"`
	Total      decimal.Decimal `json:"total"`
	Avg        decimal.Decimal `json:"avg"`
	Min        decimal.Decimal `json:"min"`
	Max        decimal.Decimal `json:"max"`
}

// YearAnalyticsResponse is the annual view.
type YearAnalyticsResponse struct {
	Year            int                      `json:"year"`
	Months          []MonthTotalResponse     `json:"months"`
	Total           decimal.Decimal          `json:"total"`
	TotalDisplay    string                   `json:"totalDisplay"`
	TotalUSD        decimal.Decimal          `json:"totalUSD"`
	TotalUSDDisplay string                   `json:"totalUSDDisplay"`
	MonthsWithData  int                      `json:"monthsWithData"`
	AverageMonthly  decimal.Decimal          `json:"averageMonthly"`
	MaxMonth        *MonthTotalResponse      `json:"maxMonth,omitempty"`
	MinMonth        *MonthTotalResponse      `json:"minMonth,omitempty"`
	Recurring       []RecurringGroupResponse `json:"recurring"`
}

// ToDimensionTotalResponses converts breakdown rows, attaching display
// strings.
func ToDimensionTotalResponses(rows []domain.DimensionTotal) []DimensionTotalResponse {
	out := make([]DimensionTotalResponse, len(rows))
	for i, r := range rows {
		out[i] = DimensionTotalResponse{
			Label:        r.Label,
			Count:        r.Count,
			Total:        r.Total,
			TotalDisplay: moneyfmt.ARS(r.Total),
			Pct:          r.Pct,
		}
	}
	return out
}

// ToMonthComparisonResponse converts a domain MonthComparison.
func ToMonthComparisonResponse(c domain.MonthComparison) MonthComparisonResponse {
	rows := make([]CategoryDeltaResponse, len(c.Categories))
	for i, d := range c.Categories {
		rows[i] = CategoryDeltaResponse(d)
	}
	return MonthComparisonResponse{
		CurrentTotal:  c.CurrentTotal,
		PreviousTotal: c.PreviousTotal,
		TotalDelta:    c.TotalDelta,
		TotalPct:      c.TotalPct,
		Categories:    rows,
	}
}

// ToRankedExpenseResponses converts top-N entries.
func ToRankedExpenseResponses(rows []domain.RankedExpense) []RankedExpenseResponse {
	out := make([]RankedExpenseResponse, len(rows))
	for i, r := range rows {
		out[i] = RankedExpenseResponse{
			Expense: ToExpenseResponse(&r.Expense),
			Pct:     r.Pct,
		}
	}
	return out
}

// ToMonthlyAnalyticsResponse converts the domain month view, attaching
// display strings to the headline totals.
func ToMonthlyAnalyticsResponse(a domain.MonthlyAnalytics) MonthlyAnalyticsResponse {
	return MonthlyAnalyticsResponse{
		Year:                    a.Year,
		Month:                   a.Month,
		HeadlineTotal:           a.HeadlineTotal,
		HeadlineTotalDisplay:    moneyfmt.ARS(a.HeadlineTotal),
		ByCategory:              ToDimensionTotalResponses(a.ByCategory),
		ByPaymentMethod:         ToDimensionTotalResponses(a.ByPaymentMethod),
		Comparison:              ToMonthComparisonResponse(a.Comparison),
		Top:                     ToRankedExpenseResponses(a.Top),
		Rate:                    a.Rate,
		RateHasOverride:         a.RateHasOverride,
		HeadlineTotalUSD:        a.HeadlineTotalUSD,
		HeadlineTotalUSDDisplay: moneyfmt.USD(a.HeadlineTotalUSD),
	}
}

func toMonthTotalResponse(m domain.MonthTotal) MonthTotalResponse {
	return MonthTotalResponse{
		Month:         m.Month,
		Total:         m.Total,
		TotalDisplay:  moneyfmt.ARS(m.Total),
		TotalShort:    moneyfmt.Short(m.Total),
		Count:         m.Count,
		Rate:          m.Rate,
		HasCustomRate: m.HasCustomRate,
		TotalUSD:      m.TotalUSD,
		USDDisplay:    moneyfmt.USD(m.TotalUSD),
	}
}

// ToYearAnalyticsResponse converts a domain YearSummary.
func ToYearAnalyticsResponse(s domain.YearSummary) YearAnalyticsResponse {
	months := make([]MonthTotalResponse, len(s.Months))
	for i, m := range s.Months {
		months[i] = toMonthTotalResponse(m)
	}
	recurring := make([]RecurringGroupResponse, len(s.Recurring))
	for i, g := range s.Recurring {
		recurring[i] = RecurringGroupResponse(g)
	}
	resp := YearAnalyticsResponse{
		Year:            s.Year,
		Months:          months,
		Total:           s.Total,
		TotalDisplay:    moneyfmt.ARS(s.Total),
		TotalUSD:        s.TotalUSD,
		TotalUSDDisplay: moneyfmt.USD(s.TotalUSD),
		MonthsWithData:  s.MonthsWithData,
		AverageMonthly:  s.AverageMonthly,
		Recurring:       recurring,
	}
	if s.MaxMonth != nil {
		m := toMonthTotalResponse(*s.MaxMonth)
		resp.MaxMonth = &m
	}
	if s.MinMonth != nil {
		m := toMonthTotalResponse(*s.MinMonth)
		resp.MinMonth = &m
	}
	return resp
}
