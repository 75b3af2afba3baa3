// Package aggregation contains the pure computations behind every analytics
// view: group-by breakdowns, month-over-month deltas, top-N rankings,
// recurring-expense detection and year summaries. All functions are pure
// over their inputs and degrade to empty/zero outputs on empty slices.
package aggregation

import (
	"sort"
	"strings"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/utils/period"
	"github.com/SscSPs/expense_tracker_app/internal/utils/rates"
	"github.com/shopspring/decimal"
)

// Dimension selects which expense field a breakdown groups on.
type Dimension int

const (
	ByCategory Dimension = iota
	ByPaymentMethod
)

// TopNDefault is how many entries the ranked listing returns.
const TopNDefault = 10

// recurringCap bounds the recurring listing.
const recurringCap = 15

func (d Dimension) key(e domain.Expense) string {
	if d == ByPaymentMethod {
		return e.PaymentMethod
	}
	return e.Category
}

// SliceTotal sums every record's amount, Investments included.
func SliceTotal(records []domain.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}

// HeadlineTotal sums amounts excluding the Investments category. It is the
// figure shown as "total spent" and used for period comparisons; Investments
// records still count toward category breakdowns.
func HeadlineTotal(records []domain.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if r.Category == domain.InvestmentsCategory {
			continue
		}
		total = total.Add(r.Amount)
	}
	return total
}

func pctOf(part, total decimal.Decimal) float64 {
	if !total.IsPositive() {
		return 0
	}
	return part.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// GroupByDimension produces one row per label, in label-set order, with the
// count, sum and share of the slice total. Labels with no matching records
// are included with zero values; display layers may filter them. Records
// whose label is not in the set are not represented (the set is the user's
// source of truth for ordering).
func GroupByDimension(records []domain.Expense, labels []string, dim Dimension) []domain.DimensionTotal {
	total := SliceTotal(records)

	sums := make(map[string]decimal.Decimal, len(labels))
	counts := make(map[string]int, len(labels))
	for _, r := range records {
		k := dim.key(r)
		sums[k] = sums[k].Add(r.Amount)
		counts[k]++
	}

	out := make([]domain.DimensionTotal, 0, len(labels))
	for _, label := range labels {
		sum := sums[label]
		out = append(out, domain.DimensionTotal{
			Label: label,
			Count: counts[label],
			Total: sum,
			Pct:   pctOf(sum, total),
		})
	}
	return out
}

// MonthOverMonth compares current against previous per category and on the
// headline totals. Categories with no activity in either period are dropped;
// rows active in only one period carry HasBoth=false so the caller shows a
// placeholder instead of a misleading ±100%.
func MonthOverMonth(current, previous []domain.Expense, categories []string) domain.MonthComparison {
	currByCat := make(map[string]decimal.Decimal, len(categories))
	prevByCat := make(map[string]decimal.Decimal, len(categories))
	for _, r := range current {
		currByCat[r.Category] = currByCat[r.Category].Add(r.Amount)
	}
	for _, r := range previous {
		prevByCat[r.Category] = prevByCat[r.Category].Add(r.Amount)
	}

	var rows []domain.CategoryDelta
	for _, c := range categories {
		curr, prev := currByCat[c], prevByCat[c]
		if curr.IsZero() && prev.IsZero() {
			continue
		}
		delta := curr.Sub(prev)
		var pct float64
		switch {
		case prev.IsPositive():
			pct = delta.Div(prev).Mul(decimal.NewFromInt(100)).InexactFloat64()
		case curr.IsPositive():
			pct = 100
		}
		rows = append(rows, domain.CategoryDelta{
			Category: c,
			Current:  curr,
			Previous: prev,
			Delta:    delta,
			Pct:      pct,
			HasBoth:  curr.IsPositive() && prev.IsPositive(),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Current.GreaterThan(rows[j].Current)
	})

	currTotal := HeadlineTotal(current)
	prevTotal := HeadlineTotal(previous)
	totalDelta := currTotal.Sub(prevTotal)
	var totalPct float64
	if prevTotal.IsPositive() {
		totalPct = totalDelta.Div(prevTotal).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	return domain.MonthComparison{
		CurrentTotal:  currTotal,
		PreviousTotal: prevTotal,
		TotalDelta:    totalDelta,
		TotalPct:      totalPct,
		Categories:    rows,
	}
}

// TopN ranks records by amount descending (stable, so ties keep their
// original relative order) and returns the first n, each with its share of
// the slice total.
func TopN(records []domain.Expense, n int) []domain.RankedExpense {
	total := SliceTotal(records)

	sorted := make([]domain.Expense, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.GreaterThan(sorted[j].Amount)
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	out := make([]domain.RankedExpense, 0, n)
	for _, r := range sorted[:n] {
		pct := pctOf(r.Amount, total)
		if pct > 100 {
			pct = 100
		}
		out = append(out, domain.RankedExpense{Expense: r, Pct: pct})
	}
	return out
}

type recurringAcc struct {
	note     string
	category string
	months   map[int]struct{}
	amounts  []decimal.Decimal
	total    decimal.Decimal
}

// Recurring clusters a year's records by normalized note (lowercased,
// trimmed; category stands in when the note is empty) and keeps clusters
// spanning two or more distinct months. The heuristic is deliberately
// coarse: identical notes merge even when they mean different expenses, and
// typos split what is really one expense. The group's category is whichever
// member was seen first.
func Recurring(yearRecords []domain.Expense) []domain.RecurringGroup {
	groups := make(map[string]*recurringAcc)
	var order []string

	for _, r := range yearRecords {
		y, m := period.YearMonth(r.Date)
		if y == 0 {
			continue
		}
		display := r.Note
		if display == "" {
			display = r.Category
		}
		key := strings.ToLower(strings.TrimSpace(display))
		acc, ok := groups[key]
		if !ok {
			acc = &recurringAcc{note: display, category: r.Category, months: map[int]struct{}{}}
			groups[key] = acc
			order = append(order, key)
		}
		acc.months[m] = struct{}{}
		acc.amounts = append(acc.amounts, r.Amount)
		acc.total = acc.total.Add(r.Amount)
	}

	var out []domain.RecurringGroup
	for _, key := range order {
		acc := groups[key]
		if len(acc.months) < 2 {
			continue
		}
		minAmt, maxAmt := acc.amounts[0], acc.amounts[0]
		for _, a := range acc.amounts[1:] {
			if a.LessThan(minAmt) {
				minAmt = a
			}
			if a.GreaterThan(maxAmt) {
				maxAmt = a
			}
		}
		out = append(out, domain.RecurringGroup{
			Note:       acc.note,
			Category:   acc.category,
			MonthCount: len(acc.months),
			Count:      len(acc.amounts),
			Total:      acc.total,
			Avg:        acc.total.Div(decimal.NewFromInt(int64(len(acc.amounts)))),
			Min:        minAmt,
			Max:        maxAmt,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MonthCount != out[j].MonthCount {
			return out[i].MonthCount > out[j].MonthCount
		}
		return out[i].Total.GreaterThan(out[j].Total)
	})
	if len(out) > recurringCap {
		out = out[:recurringCap]
	}
	return out
}

// BuildYearSummary computes the annual view over the records of one year:
// twelve month slots with resolved USD rates, the annual totals in both
// currencies, the monthly average over months with data, the most and least
// expensive months and the recurring clusters. Year totals include the
// Investments category, matching the annual statistics view.
func BuildYearSummary(yearRecords []domain.Expense, year int, overrides domain.RateMap) domain.YearSummary {
	byMonth := make(map[int][]domain.Expense)
	for _, r := range yearRecords {
		y, m := period.YearMonth(r.Date)
		if y != year {
			continue
		}
		byMonth[m] = append(byMonth[m], r)
	}

	summary := domain.YearSummary{
		Year:   year,
		Months: make([]domain.MonthTotal, 0, 12),
	}

	for m := 1; m <= 12; m++ {
		items := byMonth[m]
		total := SliceTotal(items)
		key := rates.MonthKey(year, m)
		rate := rates.Resolve(key, overrides)

		usd := decimal.Zero
		if rate.IsPositive() {
			usd = total.Div(rate)
		}

		mt := domain.MonthTotal{
			Month:         m,
			Total:         total,
			Count:         len(items),
			Rate:          rate,
			HasCustomRate: rates.HasOverride(key, overrides),
			TotalUSD:      usd,
		}
		summary.Months = append(summary.Months, mt)
		summary.Total = summary.Total.Add(total)
		summary.TotalUSD = summary.TotalUSD.Add(usd)

		if total.IsPositive() {
			summary.MonthsWithData++
			if summary.MaxMonth == nil || total.GreaterThan(summary.MaxMonth.Total) {
				cp := mt
				summary.MaxMonth = &cp
			}
			if summary.MinMonth == nil || total.LessThan(summary.MinMonth.Total) {
				cp := mt
				summary.MinMonth = &cp
			}
		}
	}

	if summary.MonthsWithData > 0 {
		summary.AverageMonthly = summary.Total.Div(decimal.NewFromInt(int64(summary.MonthsWithData)))
	}

	summary.Recurring = Recurring(yearRecords)
	return summary
}
