// Package carbon estimates the emissions impact of spending. It maps provider
// spending categories onto an impact tier and an emission factor (kg CO2e per
// currency unit spent) and turns transaction amounts into carbon estimates.
package carbon

import (
	"encoding/json"
	"fmt"
	"os"
)

// Impact tiers.
const (
	ImpactLow    = "low"
	ImpactMedium = "medium"
	ImpactHigh   = "high"
)

// CategoryImpact is one row of the emission factor table: the normalized
// category key, its impact tier, and the factor in kg CO2e per currency unit.
type CategoryImpact struct {
	Category string  `json:"category"`
	Impact   string  `json:"impact"`
	Factor   float64 `json:"factor"`
}

// FactorTable is the process-wide emission factor configuration. Lookup is
// total: every input resolves to a CategoryImpact, unknown categories to the
// table's default. The table is immutable after construction.
type FactorTable struct {
	factors  map[string]CategoryImpact
	fallback CategoryImpact
}

// defaultFactors are calibrated against published spend-based emission
// coefficients. Factor values are revised externally; override them with a
// JSON file via LoadFactorTable rather than editing this table.
var defaultFactors = []CategoryImpact{
	{Category: "TRANSPORTATION", Impact: ImpactHigh, Factor: 0.3},
	{Category: "TRAVEL", Impact: ImpactHigh, Factor: 0.4},
	{Category: "FOOD_AND_DRINK", Impact: ImpactMedium, Factor: 0.2},
	{Category: "GENERAL_MERCHANDISE", Impact: ImpactMedium, Factor: 0.15},
	{Category: "HOME_IMPROVEMENT", Impact: ImpactMedium, Factor: 0.15},
	{Category: "RENT_AND_UTILITIES", Impact: ImpactMedium, Factor: 0.1},
	{Category: "GENERAL_SERVICES", Impact: ImpactLow, Factor: 0.05},
}

// DefaultFallback is applied to any category outside the configured set.
var DefaultFallback = CategoryImpact{Impact: ImpactLow, Factor: 0.05}

// NewFactorTable builds a table from explicit rows. Category keys are
// normalized with Classify before insertion.
func NewFactorTable(rows []CategoryImpact, fallback CategoryImpact) *FactorTable {
	t := &FactorTable{
		factors:  make(map[string]CategoryImpact, len(rows)),
		fallback: fallback,
	}
	for _, row := range rows {
		row.Category = Classify(row.Category)
		t.factors[row.Category] = row
	}
	return t
}

// DefaultFactorTable returns the built-in table.
func DefaultFactorTable() *FactorTable {
	return NewFactorTable(defaultFactors, DefaultFallback)
}

// LoadFactorTable reads a JSON array of CategoryImpact rows from path. Rows
// missing an impact tier get ImpactLow; rows with a non-positive factor are
// rejected.
func LoadFactorTable(path string) (*FactorTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read emission factors: %w", err)
	}

	var rows []CategoryImpact
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse emission factors %s: %w", path, err)
	}

	for i, row := range rows {
		if row.Factor <= 0 {
			return nil, fmt.Errorf("emission factor for %q must be positive, got %v", row.Category, row.Factor)
		}
		if row.Impact == "" {
			rows[i].Impact = ImpactLow
		}
	}

	return NewFactorTable(rows, DefaultFallback), nil
}

// Lookup resolves a raw category to its impact row. It never fails: inputs
// outside the configured set resolve to the fallback tier and factor.
func (t *FactorTable) Lookup(rawCategory string) CategoryImpact {
	key := Classify(rawCategory)
	if row, ok := t.factors[key]; ok {
		return row
	}
	out := t.fallback
	out.Category = key
	return out
}
