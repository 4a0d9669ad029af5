package finance

import (
	"testing"
	"time"

	"ecofinance-server/src/models"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBuildAccountSummary_NotLinked(t *testing.T) {
	got := testEngine().BuildAccountSummary(nil, nil, time.Now())

	if got.TotalBalance != "$0.00" {
		t.Errorf("TotalBalance = %q, want $0.00", got.TotalBalance)
	}
	if got.MonthlySpending != "$0.00" {
		t.Errorf("MonthlySpending = %q, want $0.00", got.MonthlySpending)
	}
	if got.CarbonFootprint != "0 tons CO₂" {
		t.Errorf("CarbonFootprint = %q, want 0 tons CO₂", got.CarbonFootprint)
	}
	for name, change := range map[string]string{
		"BalanceChange":  got.BalanceChange,
		"SpendingChange": got.SpendingChange,
		"CarbonChange":   got.CarbonChange,
	} {
		if change != "0%" {
			t.Errorf("%s = %q, want 0%%", name, change)
		}
	}
}

func TestBuildAccountSummary(t *testing.T) {
	now := date("2024-06-30")
	accounts := []models.Account{
		{AccountID: "a1", CurrentBalance: 1000.50},
		{AccountID: "a2", CurrentBalance: 2000},
	}
	txs := []models.Transaction{
		// Current 30-day window.
		tx("1", "2024-06-25", -200, "TRANSPORTATION"), // 60 kg
		tx("2", "2024-06-20", 500, "INCOME"),
		// Prior 30-day window.
		tx("3", "2024-05-20", -100, "TRANSPORTATION"), // 30 kg
	}

	got := testEngine().BuildAccountSummary(accounts, txs, now)

	if got.TotalBalance != "$3,000.50" {
		t.Errorf("TotalBalance = %q, want $3,000.50", got.TotalBalance)
	}
	if got.MonthlySpending != "$200.00" {
		t.Errorf("MonthlySpending = %q, want $200.00", got.MonthlySpending)
	}
	if got.CarbonFootprint != "0.1 tons CO₂" {
		t.Errorf("CarbonFootprint = %q, want 0.1 tons CO₂", got.CarbonFootprint)
	}
	// Spending went 100 -> 200 against the prior period.
	if got.SpendingChange != "+100.0%" {
		t.Errorf("SpendingChange = %q, want +100.0%%", got.SpendingChange)
	}
	if got.CarbonChange != "+100.0%" {
		t.Errorf("CarbonChange = %q, want +100.0%%", got.CarbonChange)
	}
	// A balance snapshot has no prior value; the change is never invented.
	if got.BalanceChange != "n/a" {
		t.Errorf("BalanceChange = %q, want n/a", got.BalanceChange)
	}
}

func TestBuildAccountSummary_NoPriorPeriod(t *testing.T) {
	now := date("2024-06-30")
	txs := []models.Transaction{
		tx("1", "2024-06-25", -200, "TRANSPORTATION"),
	}

	got := testEngine().BuildAccountSummary(nil, txs, now)

	if got.SpendingChange != "0%" {
		t.Errorf("SpendingChange with empty prior period = %q, want 0%%", got.SpendingChange)
	}
	if got.CarbonChange != "0%" {
		t.Errorf("CarbonChange with empty prior period = %q, want 0%%", got.CarbonChange)
	}
}

func TestCarbonChart(t *testing.T) {
	txs := []models.Transaction{
		tx("1", "2024-06-01", -10000, "TRANSPORTATION"), // 3000 kg -> 3 tons
		tx("2", "2024-06-02", -100, "SOMETHING_ODD"),    // fallback category
		tx("3", "2024-06-03", 2000, "INCOME"),           // excluded
	}

	got := testEngine().CarbonChart(txs)
	if len(got) != 2 {
		t.Fatalf("CarbonChart returned %d slices, want 2", len(got))
	}

	// Sorted by category key: SOMETHING_ODD before TRANSPORTATION.
	if got[0].Name != "Something Odd" || got[0].Color != "#6b7280" {
		t.Errorf("fallback slice = %+v, want gray Something Odd", got[0])
	}
	if got[1].Name != "Transportation" || got[1].Value != 3 || got[1].Color != "#ef4444" {
		t.Errorf("transportation slice = %+v, want value 3 and #ef4444", got[1])
	}
}

func TestTransactionViews(t *testing.T) {
	txs := []models.Transaction{
		{ID: "old", Amount: -45.5, Date: date("2024-06-01"), Category: "FOOD_AND_DRINK", Name: "POS DEBIT 1234"},
		{ID: "new", Amount: -100, Date: date("2024-06-15"), Category: "TRANSPORTATION", Name: "Fallback Name", MerchantName: "Metro Transit"},
	}

	got := testEngine().TransactionViews(txs)
	if len(got) != 2 {
		t.Fatalf("TransactionViews returned %d rows, want 2", len(got))
	}

	// Newest first.
	if got[0].ID != "new" {
		t.Fatalf("first row = %q, want the newest transaction", got[0].ID)
	}
	if got[0].Name != "Metro Transit" {
		t.Errorf("Name = %q, want merchant name", got[0].Name)
	}
	if got[0].Amount != "-$100.00" {
		t.Errorf("Amount = %q, want -$100.00", got[0].Amount)
	}
	if got[0].Date != "Jun 15, 2024" {
		t.Errorf("Date = %q, want Jun 15, 2024", got[0].Date)
	}
	if got[0].Carbon != "30 kg" {
		t.Errorf("Carbon = %q, want 30 kg", got[0].Carbon)
	}
	if got[0].Impact != "high" {
		t.Errorf("Impact = %q, want high", got[0].Impact)
	}

	if got[1].Name != "POS DEBIT 1234" {
		t.Errorf("Name = %q, want fallback to transaction name", got[1].Name)
	}
	if got[1].Carbon != "9.1 kg" {
		t.Errorf("Carbon = %q, want 9.1 kg", got[1].Carbon)
	}
}
