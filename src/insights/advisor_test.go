package insights

import (
	"reflect"
	"testing"

	"ecofinance-server/src/models"
)

func TestParseRecommendations(t *testing.T) {
	valid := `[
		{
			"title": "Reduce Transportation Emissions",
			"description": "Take the bus twice a week.",
			"savingsAmount": "Save $120/month",
			"carbonReduction": "Reduce CO₂ by 30%",
			"category": "Transportation"
		}
	]`

	tests := []struct {
		name string
		raw  string
		want []models.Recommendation
	}{
		{
			name: "plain json array",
			raw:  valid,
			want: []models.Recommendation{{
				Title:           "Reduce Transportation Emissions",
				Description:     "Take the bus twice a week.",
				SavingsAmount:   "Save $120/month",
				CarbonReduction: "Reduce CO₂ by 30%",
				Category:        "Transportation",
			}},
		},
		{
			name: "json fenced in markdown",
			raw:  "```json\n" + valid + "\n```",
			want: []models.Recommendation{{
				Title:           "Reduce Transportation Emissions",
				Description:     "Take the bus twice a week.",
				SavingsAmount:   "Save $120/month",
				CarbonReduction: "Reduce CO₂ by 30%",
				Category:        "Transportation",
			}},
		},
		{
			name: "json surrounded by prose",
			raw:  "Here are your recommendations:\n" + valid + "\nHope that helps!",
			want: []models.Recommendation{{
				Title:           "Reduce Transportation Emissions",
				Description:     "Take the bus twice a week.",
				SavingsAmount:   "Save $120/month",
				CarbonReduction: "Reduce CO₂ by 30%",
				Category:        "Transportation",
			}},
		},
		{name: "empty response", raw: "", want: nil},
		{name: "whitespace only", raw: "   \n  ", want: nil},
		{name: "free text, no json", raw: "I cannot help with that.", want: nil},
		{name: "broken json", raw: `[{"title": "Oops"`, want: nil},
		{name: "json object instead of array", raw: `{"title": "Oops"}`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRecommendations(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseRecommendations(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}
