package finance

import (
	"sort"
	"time"

	"ecofinance-server/src/models"
	"ecofinance-server/src/util"
)

// chartColors are the stable pie-chart colors per category key. Unlisted
// categories fall back to gray.
var chartColors = map[string]string{
	"TRANSPORTATION":      "#ef4444",
	"FOOD_AND_DRINK":      "#f97316",
	"RENT_AND_UTILITIES":  "#3b82f6",
	"GENERAL_MERCHANDISE": "#8b5cf6",
	"GENERAL_SERVICES":    "#10b981",
	"TRAVEL":              "#ec4899",
	"HOME_IMPROVEMENT":    "#14b8a6",
}

const fallbackColor = "#6b7280"

// CarbonChart shapes per-category carbon totals for the pie chart: display
// name, footprint in tons (one decimal), stable color. Sorted by category key
// so repeated calls produce identical output.
func (e *Engine) CarbonChart(txs []models.Transaction) []models.CarbonSlice {
	byCat := e.ByCategory(txs)

	keys := make([]string, 0, len(byCat))
	for key := range byCat {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]models.CarbonSlice, 0, len(keys))
	for _, key := range keys {
		agg := byCat[key]
		color, ok := chartColors[key]
		if !ok {
			color = fallbackColor
		}
		out = append(out, models.CarbonSlice{
			Name:  agg.DisplayName,
			Value: round1(agg.TotalCarbonKg / 1000),
			Color: color,
		})
	}
	return out
}

// TransactionViews shapes a window of transactions for the list view, newest
// first, with each row annotated with its carbon estimate and impact tier.
func (e *Engine) TransactionViews(txs []models.Transaction) []models.TransactionView {
	sorted := make([]models.Transaction, len(txs))
	copy(sorted, txs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	out := make([]models.TransactionView, 0, len(sorted))
	for _, tx := range sorted {
		est := e.factors.EstimateTransaction(tx)
		out = append(out, models.TransactionView{
			ID:       tx.ID,
			Name:     tx.DisplayName(),
			Amount:   util.FormatUSD(tx.Amount),
			Date:     tx.Date.Format("Jan 02, 2006"),
			Category: tx.Category,
			Carbon:   util.FormatKg(est.KgCO2e),
			Impact:   e.factors.Lookup(tx.Category).Impact,
		})
	}
	return out
}

// BuildAccountSummary combines current balances with trailing 30-day spending
// and carbon totals. Change fields compare against the preceding 30-day
// period; the balance change is reported as "n/a" because a point-in-time
// balance snapshot has no prior value to compare against. With no linked
// data it returns ZeroSummary, never an error.
func (e *Engine) BuildAccountSummary(accounts []models.Account, txs []models.Transaction, now time.Time) models.AccountSummary {
	if len(accounts) == 0 && len(txs) == 0 {
		return ZeroSummary()
	}

	totalBalance := 0.0
	for _, a := range accounts {
		totalBalance += a.CurrentBalance
	}

	curStart := now.AddDate(0, 0, -SpendingWindowDays)
	current := Window(txs, curStart, now)
	prior := Window(txs, curStart.AddDate(0, 0, -SpendingWindowDays-1), curStart.AddDate(0, 0, -1))

	curSpending, curCarbon := e.spendingAndCarbon(current)
	priorSpending, priorCarbon := e.spendingAndCarbon(prior)

	return models.AccountSummary{
		TotalBalance:    util.FormatUSD(totalBalance),
		MonthlySpending: util.FormatUSD(curSpending),
		CarbonFootprint: util.FormatTons(curCarbon),
		BalanceChange:   "n/a",
		SpendingChange:  util.FormatPercentChange(curSpending, priorSpending),
		CarbonChange:    util.FormatPercentChange(curCarbon, priorCarbon),
	}
}

// ZeroSummary is the documented "not yet connected" summary.
func ZeroSummary() models.AccountSummary {
	return models.AccountSummary{
		TotalBalance:    "$0.00",
		MonthlySpending: "$0.00",
		CarbonFootprint: "0 tons CO₂",
		BalanceChange:   "0%",
		SpendingChange:  "0%",
		CarbonChange:    "0%",
	}
}

// spendingAndCarbon totals absolute expense amounts and the carbon cost of
// non-excluded transactions over an already-windowed batch.
func (e *Engine) spendingAndCarbon(txs []models.Transaction) (spending, carbonKg float64) {
	for _, agg := range e.ByCategory(txs) {
		carbonKg += agg.TotalCarbonKg
	}
	for _, tx := range txs {
		if tx.Amount < 0 {
			spending -= tx.Amount
		}
	}
	return round2(spending), round1(carbonKg)
}
