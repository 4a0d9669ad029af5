package carbon

import (
	"testing"

	"ecofinance-server/src/models"
)

func TestEstimateAmount(t *testing.T) {
	table := DefaultFactorTable()

	tests := []struct {
		name     string
		amount   float64
		category string
		want     float64
	}{
		{name: "expense uses absolute value", amount: -100, category: "TRANSPORTATION", want: 30},
		{name: "positive amount works too", amount: 100, category: "TRANSPORTATION", want: 30},
		{name: "food and drink", amount: -50, category: "FOOD_AND_DRINK", want: 10},
		{name: "zero amount is zero carbon", amount: 0, category: "TRAVEL", want: 0},
		{name: "unknown category uses fallback factor", amount: -100, category: "MYSTERY", want: 5},
		{name: "fractional amounts round to one decimal", amount: -12.34, category: "RENT_AND_UTILITIES", want: 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.EstimateAmount(tt.amount, tt.category); got != tt.want {
				t.Errorf("EstimateAmount(%v, %q) = %v, want %v", tt.amount, tt.category, got, tt.want)
			}
		})
	}
}

// Rounding is half away from zero; exercised with products exactly
// representable in binary so the boundary is actually hit.
func TestEstimateAmount_RoundsHalfAwayFromZero(t *testing.T) {
	table := NewFactorTable([]CategoryImpact{
		{Category: "TEST", Impact: ImpactMedium, Factor: 0.5},
	}, DefaultFallback)

	tests := []struct {
		amount float64
		want   float64
	}{
		{amount: 0.5, want: 0.3},  // 0.25 rounds up, not to even 0.2
		{amount: -0.5, want: 0.3}, // sign is stripped before rounding
		{amount: 1.5, want: 0.8},  // 0.75 rounds up
		{amount: 2.5, want: 1.3},  // 1.25 rounds up, not to even 1.2
	}

	for _, tt := range tests {
		if got := table.EstimateAmount(tt.amount, "TEST"); got != tt.want {
			t.Errorf("EstimateAmount(%v, TEST) = %v, want %v", tt.amount, got, tt.want)
		}
	}
}

func TestEstimateTransaction(t *testing.T) {
	table := DefaultFactorTable()

	tx := models.Transaction{ID: "tx-1", Amount: -100, Category: "TRAVEL"}
	got := table.EstimateTransaction(tx)

	if got.TransactionID != "tx-1" {
		t.Errorf("TransactionID = %q, want tx-1", got.TransactionID)
	}
	if got.KgCO2e != 40 {
		t.Errorf("KgCO2e = %v, want 40", got.KgCO2e)
	}
}
