package models

import "time"

// Transaction is a single bank transaction as reported by the data provider.
// Sign convention: negative amounts are outflows (spending), positive amounts
// are inflows (income). Amounts are in the account's native currency.
type Transaction struct {
	ID           string    `json:"id"`
	AccountID    string    `json:"account_id"`
	Amount       float64   `json:"amount"`
	Name         string    `json:"name"`
	MerchantName string    `json:"merchant_name,omitempty"`
	Date         time.Time `json:"date"`
	Category     string    `json:"category"`
}

// DisplayName prefers the merchant name, falling back to the provider's
// transaction name when no merchant is attached.
func (t Transaction) DisplayName() string {
	if t.MerchantName != "" {
		return t.MerchantName
	}
	return t.Name
}

// TransactionView is the display shape served to the frontend transaction
// list: formatted amount and date plus the carbon annotation for the row.
type TransactionView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Carbon   string `json:"carbon"`
	Impact   string `json:"impact"`
}
