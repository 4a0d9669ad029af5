package carbon

import (
	"math"

	"ecofinance-server/src/models"
)

// Estimate is the carbon cost attributed to a single transaction.
type Estimate struct {
	TransactionID string  `json:"transaction_id"`
	KgCO2e        float64 `json:"kg_co2e"`
}

// EstimateAmount converts a transaction amount into estimated kg CO2e:
// abs(amount) * factor, rounded to one decimal place, half away from zero.
// Total over any input: zero amounts estimate to 0.0 and unknown categories
// use the fallback factor.
func (t *FactorTable) EstimateAmount(amount float64, rawCategory string) float64 {
	impact := t.Lookup(rawCategory)
	return round1(math.Abs(amount) * impact.Factor)
}

// EstimateTransaction annotates one transaction with its carbon cost.
func (t *FactorTable) EstimateTransaction(tx models.Transaction) Estimate {
	return Estimate{
		TransactionID: tx.ID,
		KgCO2e:        t.EstimateAmount(tx.Amount, tx.Category),
	}
}

// round1 rounds to one decimal place, halves away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
