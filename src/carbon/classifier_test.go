package carbon

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "TRANSPORTATION", want: "TRANSPORTATION"},
		{raw: "food and drink", want: "FOOD_AND_DRINK"},
		{raw: "  Travel  ", want: "TRAVEL"},
		{raw: "rent-and-utilities", want: "RENT_AND_UTILITIES"},
		{raw: "", want: Uncategorized},
		{raw: "   ", want: Uncategorized},
	}

	for _, tt := range tests {
		if got := Classify(tt.raw); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestDefaultExclusions(t *testing.T) {
	set := DefaultExclusions()

	for _, key := range []string{"INCOME", "LOAN_PAYMENTS", "TRANSFER_IN", "TRANSFER_OUT"} {
		if !set.Excluded(key) {
			t.Errorf("expected %s to be excluded by default", key)
		}
	}
	if set.Excluded("TRANSPORTATION") {
		t.Error("TRANSPORTATION must not be excluded by default")
	}
}

func TestParseExclusions(t *testing.T) {
	set := ParseExclusions("income, transfer in ,TRANSFER_OUT")

	for _, key := range []string{"INCOME", "TRANSFER_IN", "TRANSFER_OUT"} {
		if !set.Excluded(key) {
			t.Errorf("expected %s in parsed set", key)
		}
	}
	if set.Excluded("LOAN_PAYMENTS") {
		t.Error("LOAN_PAYMENTS was not configured, must not be excluded")
	}

	if got := len(ParseExclusions("")); got != 0 {
		t.Errorf("empty input should yield empty set, got %d entries", got)
	}
}
