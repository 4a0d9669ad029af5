// Package insights is the advisor collaborator: it formats aggregated
// financial data into a stable handoff representation, sends it to the
// language model with the right prompt, and parses the model's output
// tolerantly. Malformed model output is "no result", never a caller-visible
// parse failure.
package insights

import (
	"encoding/json"
	"fmt"
	"sort"

	"ecofinance-server/src/models"
)

// SummaryPayload is the documented handoff shape given to the model. Maps
// marshal with sorted keys, so the JSON form is stable for identical input.
type SummaryPayload struct {
	TotalSpending      float64                   `json:"total_spending"`
	TransactionCount   int                       `json:"transaction_count"`
	SpendingByCategory map[string]float64        `json:"spending_by_category"`
	CarbonByCategoryKg map[string]float64        `json:"carbon_by_category_kg"`
	MonthlyOverview    []models.MonthlyAggregate `json:"monthly_overview,omitempty"`
}

// BuildSummaryPayload assembles the handoff from aggregation output. Category
// keys are the display names the model should echo back.
func BuildSummaryPayload(byCategory map[string]models.CategoryAggregate, monthly []models.MonthlyAggregate) SummaryPayload {
	payload := SummaryPayload{
		SpendingByCategory: make(map[string]float64, len(byCategory)),
		CarbonByCategoryKg: make(map[string]float64, len(byCategory)),
		MonthlyOverview:    monthly,
	}

	keys := make([]string, 0, len(byCategory))
	for key := range byCategory {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		agg := byCategory[key]
		payload.SpendingByCategory[agg.DisplayName] = agg.TotalSpend
		payload.CarbonByCategoryKg[agg.DisplayName] = agg.TotalCarbonKg
		payload.TotalSpending += agg.TotalSpend
		payload.TransactionCount += agg.Count
	}
	return payload
}

// JSON renders the payload for the prompt.
func (p SummaryPayload) JSON() (string, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal summary payload: %w", err)
	}
	return string(data), nil
}
