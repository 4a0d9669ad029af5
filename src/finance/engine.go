// Package finance folds classified, carbon-annotated transaction batches into
// the derived views the dashboard and advisor consume. Every function is a
// pure transformation of the snapshot passed in: no shared state, safe to
// call concurrently, same input always yields the same output.
package finance

import (
	"math"
	"sort"
	"strings"
	"time"

	"ecofinance-server/src/carbon"
	"ecofinance-server/src/models"
)

// Default trailing windows used by the summary views.
const (
	SpendingWindowDays = 30
	OverviewWindowDays = 180
)

// maxOverviewMonths caps the monthly overview at the most recent entries.
const maxOverviewMonths = 6

var monthOrder = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Engine aggregates transactions using a fixed factor table and carbon
// exclusion set. It carries no mutable state.
type Engine struct {
	factors    *carbon.FactorTable
	exclusions carbon.ExclusionSet
}

func NewEngine(factors *carbon.FactorTable, exclusions carbon.ExclusionSet) *Engine {
	return &Engine{factors: factors, exclusions: exclusions}
}

// Window returns the transactions dated within [start, end], inclusive on
// both ends. Time-of-day is ignored; only the calendar date matters.
func Window(txs []models.Transaction, start, end time.Time) []models.Transaction {
	startDay := truncateDay(start)
	endDay := truncateDay(end)

	var out []models.Transaction
	for _, tx := range txs {
		day := truncateDay(tx.Date)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// TrailingWindow filters to the days-long lookback window ending at now,
// inclusive of both boundary dates.
func TrailingWindow(txs []models.Transaction, now time.Time, days int) []models.Transaction {
	return Window(txs, now.AddDate(0, 0, -days), now)
}

// ByCategory folds transactions into per-category aggregates keyed by the
// normalized category. Categories in the carbon exclusion set are omitted
// entirely; they belong to income/spending accounting, not carbon accounting.
// An empty batch yields an empty map.
func (e *Engine) ByCategory(txs []models.Transaction) map[string]models.CategoryAggregate {
	out := make(map[string]models.CategoryAggregate)
	for _, tx := range txs {
		key := carbon.Classify(tx.Category)
		if e.exclusions.Excluded(key) {
			continue
		}

		agg := out[key]
		agg.Category = key
		agg.DisplayName = DisplayCategory(key)
		agg.TotalCarbonKg = round1(agg.TotalCarbonKg + e.factors.EstimateAmount(tx.Amount, tx.Category))
		agg.TotalSpend = round2(agg.TotalSpend + math.Abs(tx.Amount))
		agg.Count++
		out[key] = agg
	}
	return out
}

// ByMonth folds transactions into one income/spending/saving entry per
// calendar month, labeled by short month name, in calendar order, truncated
// to the most recent 6 months. Months are bucketed by name only, so the same
// month across different years collapses into a single entry; see the
// aggregation tests, which pin this behavior.
func (e *Engine) ByMonth(txs []models.Transaction) []models.MonthlyAggregate {
	type bucket struct {
		income   float64
		spending float64
	}
	months := make(map[string]*bucket)

	for _, tx := range txs {
		name := tx.Date.Format("Jan")
		b := months[name]
		if b == nil {
			b = &bucket{}
			months[name] = b
		}
		if tx.Amount < 0 {
			b.spending += math.Abs(tx.Amount)
		} else {
			b.income += tx.Amount
		}
	}

	out := make([]models.MonthlyAggregate, 0, len(months))
	for name, b := range months {
		out = append(out, models.MonthlyAggregate{
			Name:     name,
			Spending: round2(b.spending),
			Income:   round2(b.income),
			// Saving is floored at zero by policy: overspending a month
			// reports zero saving, not negative.
			Saving: round2(math.Max(0, b.income-b.spending)),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return monthIndex(out[i].Name) < monthIndex(out[j].Name)
	})

	if len(out) > maxOverviewMonths {
		out = out[len(out)-maxOverviewMonths:]
	}
	return out
}

// DisplayCategory turns a category key into its human-readable form:
// underscores become spaces and each word is title-cased.
func DisplayCategory(key string) string {
	words := strings.Split(strings.ToLower(strings.ReplaceAll(key, "_", " ")), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func monthIndex(name string) int {
	for i, m := range monthOrder {
		if m == name {
			return i
		}
	}
	return len(monthOrder)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
