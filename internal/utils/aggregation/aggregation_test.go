package aggregation_test

import (
	"fmt"
	"testing"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/utils/aggregation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exp(id, date, category string, amount int64) domain.Expense {
	return domain.Expense{
		ExpenseID: id,
		Date:      date,
		Category:  category,
		Amount:    decimal.NewFromInt(amount),
	}
}

func expNote(id, date, category, note string, amount int64) domain.Expense {
	e := exp(id, date, category, amount)
	e.Note = note
	return e
}

var testCategories = []string{"Groceries", "Transport", domain.InvestmentsCategory, "Other"}

// --- Totals ---

func TestHeadlineTotal_ExcludesInvestments(t *testing.T) {
	records := []domain.Expense{
		exp("a", "2026-01-10", "Groceries", 500),
		exp("b", "2026-01-11", domain.InvestmentsCategory, 2000),
		exp("c", "2026-01-12", "Transport", 300),
	}
	assert.True(t, aggregation.HeadlineTotal(records).Equal(decimal.NewFromInt(800)))
	assert.True(t, aggregation.SliceTotal(records).Equal(decimal.NewFromInt(2800)))
}

func TestSliceTotal_Empty(t *testing.T) {
	assert.True(t, aggregation.SliceTotal(nil).IsZero())
	assert.True(t, aggregation.HeadlineTotal(nil).IsZero())
}

// --- GroupByDimension ---

func TestGroupByDimension_SumsMatchSliceTotal(t *testing.T) {
	records := []domain.Expense{
		exp("a", "2026-01-10", "Groceries", 600),
		exp("b", "2026-01-11", "Groceries", 400),
		exp("c", "2026-01-12", "Transport", 1000),
		exp("d", "2026-01-13", domain.InvestmentsCategory, 500),
	}

	rows := aggregation.GroupByDimension(records, testCategories, aggregation.ByCategory)
	require.Len(t, rows, len(testCategories))

	sum := decimal.Zero
	pctSum := 0.0
	for _, r := range rows {
		sum = sum.Add(r.Total)
		pctSum += r.Pct
		assert.GreaterOrEqual(t, r.Pct, 0.0)
		assert.LessOrEqual(t, r.Pct, 100.0)
	}
	// Group sums cover the whole slice, Investments included.
	assert.True(t, sum.Equal(aggregation.SliceTotal(records)))
	assert.InDelta(t, 100.0, pctSum, 0.001)
}

func TestGroupByDimension_OrderFollowsLabelSet(t *testing.T) {
	records := []domain.Expense{
		exp("a", "2026-01-10", "Other", 100),
		exp("b", "2026-01-11", "Groceries", 900),
	}
	rows := aggregation.GroupByDimension(records, testCategories, aggregation.ByCategory)
	require.Len(t, rows, 4)
	assert.Equal(t, "Groceries", rows[0].Label)
	assert.Equal(t, 1, rows[0].Count)
	// Zero-match labels are still computable.
	assert.Equal(t, "Transport", rows[1].Label)
	assert.Zero(t, rows[1].Count)
	assert.True(t, rows[1].Total.IsZero())
	assert.Zero(t, rows[1].Pct)
}

func TestGroupByDimension_ByPaymentMethod(t *testing.T) {
	records := []domain.Expense{
		{ExpenseID: "a", Date: "2026-01-10", PaymentMethod: "Cash", Amount: decimal.NewFromInt(250)},
		{ExpenseID: "b", Date: "2026-01-11", PaymentMethod: "Cash", Amount: decimal.NewFromInt(750)},
	}
	rows := aggregation.GroupByDimension(records, []string{"Cash", "Credit Card"}, aggregation.ByPaymentMethod)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Count)
	assert.InDelta(t, 100.0, rows[0].Pct, 0.001)
	assert.Zero(t, rows[1].Count)
}

func TestGroupByDimension_EmptySlice(t *testing.T) {
	rows := aggregation.GroupByDimension(nil, testCategories, aggregation.ByCategory)
	require.Len(t, rows, len(testCategories))
	for _, r := range rows {
		assert.True(t, r.Total.IsZero())
		assert.Zero(t, r.Pct)
	}
}

// --- MonthOverMonth ---

func TestMonthOverMonth_DeltaAndPct(t *testing.T) {
	current := []domain.Expense{exp("a", "2026-02-10", "Groceries", 600)}
	previous := []domain.Expense{exp("b", "2026-01-10", "Groceries", 500)}

	cmp := aggregation.MonthOverMonth(current, previous, testCategories)
	require.Len(t, cmp.Categories, 1)
	row := cmp.Categories[0]
	assert.True(t, row.Delta.Equal(decimal.NewFromInt(100)))
	assert.InDelta(t, 20.0, row.Pct, 0.001)
	assert.True(t, row.HasBoth)
}

func TestMonthOverMonth_ZeroDenominatorFallbacks(t *testing.T) {
	// current=0, previous=500 -> delta=-500, pct=-100, placeholder row
	cmp := aggregation.MonthOverMonth(nil, []domain.Expense{exp("a", "2026-01-10", "Groceries", 500)}, testCategories)
	require.Len(t, cmp.Categories, 1)
	assert.True(t, cmp.Categories[0].Delta.Equal(decimal.NewFromInt(-500)))
	assert.InDelta(t, -100.0, cmp.Categories[0].Pct, 0.001)
	assert.False(t, cmp.Categories[0].HasBoth)

	// current=500, previous=0 -> delta=500, pct=100 by the defined fallback
	cmp = aggregation.MonthOverMonth([]domain.Expense{exp("a", "2026-02-10", "Groceries", 500)}, nil, testCategories)
	require.Len(t, cmp.Categories, 1)
	assert.True(t, cmp.Categories[0].Delta.Equal(decimal.NewFromInt(500)))
	assert.InDelta(t, 100.0, cmp.Categories[0].Pct, 0.001)
	assert.False(t, cmp.Categories[0].HasBoth)
}

func TestMonthOverMonth_BothZeroDropped(t *testing.T) {
	current := []domain.Expense{exp("a", "2026-02-10", "Groceries", 500)}
	previous := []domain.Expense{exp("b", "2026-01-10", "Groceries", 500)}
	cmp := aggregation.MonthOverMonth(current, previous, testCategories)
	// Transport/Investments/Other have no activity at all: dropped.
	require.Len(t, cmp.Categories, 1)
	assert.Equal(t, "Groceries", cmp.Categories[0].Category)
}

func TestMonthOverMonth_HeadlineExcludesInvestments(t *testing.T) {
	current := []domain.Expense{
		exp("a", "2026-02-10", "Groceries", 500),
		exp("b", "2026-02-11", domain.InvestmentsCategory, 9000),
	}
	previous := []domain.Expense{exp("c", "2026-01-10", "Groceries", 1000)}

	cmp := aggregation.MonthOverMonth(current, previous, testCategories)
	assert.True(t, cmp.CurrentTotal.Equal(decimal.NewFromInt(500)))
	assert.True(t, cmp.PreviousTotal.Equal(decimal.NewFromInt(1000)))
	assert.True(t, cmp.TotalDelta.Equal(decimal.NewFromInt(-500)))
	assert.InDelta(t, -50.0, cmp.TotalPct, 0.001)

	// The Investments category still shows up as a breakdown row.
	var foundInv bool
	for _, r := range cmp.Categories {
		if r.Category == domain.InvestmentsCategory {
			foundInv = true
		}
	}
	assert.True(t, foundInv)
}

func TestMonthOverMonth_Empty(t *testing.T) {
	cmp := aggregation.MonthOverMonth(nil, nil, testCategories)
	assert.Empty(t, cmp.Categories)
	assert.True(t, cmp.TotalDelta.IsZero())
	assert.Zero(t, cmp.TotalPct)
}

// --- TopN ---

func TestTopN_FifteenInTenOut(t *testing.T) {
	var records []domain.Expense
	for i := 0; i < 15; i++ {
		records = append(records, exp(fmt.Sprintf("e%d", i), "2026-01-10", "Other", int64(100+i)))
	}
	top := aggregation.TopN(records, aggregation.TopNDefault)
	require.Len(t, top, 10)
	for i := 1; i < len(top); i++ {
		assert.False(t, top[i].Expense.Amount.GreaterThan(top[i-1].Expense.Amount),
			"amounts must be non-increasing")
	}
	for _, r := range top {
		assert.GreaterOrEqual(t, r.Pct, 0.0)
		assert.LessOrEqual(t, r.Pct, 100.0)
	}
}

func TestTopN_TiesKeepOriginalOrder(t *testing.T) {
	records := []domain.Expense{
		exp("first", "2026-01-10", "Other", 500),
		exp("second", "2026-01-11", "Other", 500),
		exp("big", "2026-01-12", "Other", 900),
		exp("third", "2026-01-13", "Other", 500),
	}
	top := aggregation.TopN(records, 10)
	require.Len(t, top, 4)
	assert.Equal(t, "big", top[0].Expense.ExpenseID)
	assert.Equal(t, "first", top[1].Expense.ExpenseID)
	assert.Equal(t, "second", top[2].Expense.ExpenseID)
	assert.Equal(t, "third", top[3].Expense.ExpenseID)
}

func TestTopN_Empty(t *testing.T) {
	assert.Empty(t, aggregation.TopN(nil, 10))
}

// --- Recurring ---

func TestRecurring_TwoMonthsDetected(t *testing.T) {
	records := []domain.Expense{
		expNote("a", "2026-01-05", "Rent & Bills", "Netflix", 5000),
		expNote("b", "2026-03-05", "Rent & Bills", "netflix ", 5500),
		expNote("c", "2026-01-20", "Groceries", "one-off", 900),
	}
	groups := aggregation.Recurring(records)
	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, "Netflix", g.Note)
	assert.Equal(t, 2, g.MonthCount)
	assert.Equal(t, 2, g.Count)
	assert.True(t, g.Total.Equal(decimal.NewFromInt(10500)))
	assert.True(t, g.Avg.Equal(decimal.NewFromInt(5250)))
	assert.True(t, g.Min.Equal(decimal.NewFromInt(5000)))
	assert.True(t, g.Max.Equal(decimal.NewFromInt(5500)))
}

func TestRecurring_SingleMonthNotAGroup(t *testing.T) {
	records := []domain.Expense{
		expNote("a", "2026-01-05", "Rent & Bills", "Netflix", 5000),
		expNote("b", "2026-01-25", "Rent & Bills", "Netflix", 5000),
	}
	assert.Empty(t, aggregation.Recurring(records))
}

func TestRecurring_EmptyNoteFallsBackToCategory(t *testing.T) {
	records := []domain.Expense{
		exp("a", "2026-01-05", "Transport", 700),
		exp("b", "2026-02-05", "Transport", 800),
	}
	groups := aggregation.Recurring(records)
	require.Len(t, groups, 1)
	assert.Equal(t, "Transport", groups[0].Note)
	assert.Equal(t, "Transport", groups[0].Category)
}

func TestRecurring_FirstSeenCategoryWins(t *testing.T) {
	records := []domain.Expense{
		expNote("a", "2026-01-05", "Rent & Bills", "gym", 3000),
		expNote("b", "2026-02-05", "Health", "Gym", 3000),
	}
	groups := aggregation.Recurring(records)
	require.Len(t, groups, 1)
	assert.Equal(t, "Rent & Bills", groups[0].Category)
	assert.Equal(t, "gym", groups[0].Note)
}

func TestRecurring_SortAndCap(t *testing.T) {
	var records []domain.Expense
	// 20 distinct notes each spanning 2 months; one spanning 3 months.
	for i := 0; i < 20; i++ {
		note := fmt.Sprintf("sub-%02d", i)
		records = append(records,
			expNote(fmt.Sprintf("a%d", i), "2026-01-05", "Other", note, int64(100+i)),
			expNote(fmt.Sprintf("b%d", i), "2026-02-05", "Other", note, int64(100+i)),
		)
	}
	records = append(records,
		expNote("x1", "2026-01-05", "Other", "spotify", 10),
		expNote("x2", "2026-02-05", "Other", "spotify", 10),
		expNote("x3", "2026-03-05", "Other", "spotify", 10),
	)

	groups := aggregation.Recurring(records)
	require.Len(t, groups, 15)
	assert.Equal(t, "spotify", groups[0].Note, "higher month count sorts first despite lower total")
	for i := 2; i < len(groups); i++ {
		if groups[i-1].MonthCount == groups[i].MonthCount {
			assert.False(t, groups[i].Total.GreaterThan(groups[i-1].Total))
		}
	}
}

// --- Year summary ---

func TestBuildYearSummary(t *testing.T) {
	overrides := domain.RateMap{"2026-01": decimal.NewFromInt(1200)}
	records := []domain.Expense{
		exp("a", "2026-01-10", "Groceries", 12000),
		exp("b", "2026-02-10", "Groceries", 2400),
		exp("c", "2025-12-10", "Groceries", 9999), // different year, ignored
	}

	s := aggregation.BuildYearSummary(records, 2026, overrides)
	require.Len(t, s.Months, 12)

	jan, feb := s.Months[0], s.Months[1]
	assert.True(t, jan.HasCustomRate)
	assert.True(t, jan.TotalUSD.Equal(decimal.NewFromInt(10))) // 12000/1200
	assert.False(t, feb.HasCustomRate)
	assert.True(t, feb.Rate.Equal(decimal.NewFromInt(1200))) // falls back to January
	assert.True(t, feb.TotalUSD.Equal(decimal.NewFromInt(2)))

	assert.True(t, s.Total.Equal(decimal.NewFromInt(14400)))
	assert.True(t, s.TotalUSD.Equal(decimal.NewFromInt(12)))
	assert.Equal(t, 2, s.MonthsWithData)
	assert.True(t, s.AverageMonthly.Equal(decimal.NewFromInt(7200)))
	require.NotNil(t, s.MaxMonth)
	require.NotNil(t, s.MinMonth)
	assert.Equal(t, 1, s.MaxMonth.Month)
	assert.Equal(t, 2, s.MinMonth.Month)
}

func TestBuildYearSummary_Empty(t *testing.T) {
	s := aggregation.BuildYearSummary(nil, 2026, nil)
	require.Len(t, s.Months, 12)
	assert.True(t, s.Total.IsZero())
	assert.True(t, s.AverageMonthly.IsZero())
	assert.Zero(t, s.MonthsWithData)
	assert.Nil(t, s.MaxMonth)
	assert.Nil(t, s.MinMonth)
	assert.Empty(t, s.Recurring)
}
