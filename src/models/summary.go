package models

// CategoryAggregate is the per-category rollup over a time window. Carbon
// totals cover only carbon-accounted categories; spend and count cover every
// transaction classified into the category.
type CategoryAggregate struct {
	Category      string  `json:"category"`
	DisplayName   string  `json:"display_name"`
	TotalCarbonKg float64 `json:"total_carbon_kg"`
	TotalSpend    float64 `json:"total_spend"`
	Count         int     `json:"transaction_count"`
}

// MonthlyAggregate is one bar of the income/spending/saving overview chart.
// JSON keys match what the frontend chart component expects.
type MonthlyAggregate struct {
	Name     string  `json:"name"`
	Spending float64 `json:"Spending"`
	Saving   float64 `json:"Saving"`
	Income   float64 `json:"Income"`
}

// CarbonSlice is one wedge of the carbon-by-category pie chart, with the
// category's display name, its footprint in tons, and a stable chart color.
type CarbonSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// AccountSummary is the whole-portfolio dashboard card. All fields are
// preformatted strings; a caller with no linked account receives the
// zero-valued summary rather than an error.
type AccountSummary struct {
	TotalBalance    string `json:"totalBalance"`
	MonthlySpending string `json:"monthlySpending"`
	CarbonFootprint string `json:"carbonFootprint"`
	BalanceChange   string `json:"balanceChange"`
	SpendingChange  string `json:"spendingChange"`
	CarbonChange    string `json:"carbonChange"`
}
