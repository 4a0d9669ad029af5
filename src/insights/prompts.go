package insights

import "fmt"

// DefaultModelName is the Gemini model used when GEMINI_MODEL is unset.
const DefaultModelName = "gemini-2.5-flash"

const advisorPersona = "You are GreenWealth AI, a financial advisor focused on sustainable and eco-friendly financial decisions."

// chatPreamble is the system instruction for the assistant. The financial
// block is appended only when the caller has linked account data.
func chatPreamble(summaryJSON string) string {
	preamble := advisorPersona
	if summaryJSON != "" {
		preamble += fmt.Sprintf("\n\nHere's the user's financial data for the last 30 days:\n%s\n\n"+
			"Use this data to provide personalized advice about their spending patterns and suggest eco-friendly alternatives.",
			summaryJSON)
	}
	return preamble
}

// recommendationPrompt instructs the model to return a strict JSON array of
// three recommendations in the shape models.Recommendation unmarshals.
func recommendationPrompt(summaryJSON string) string {
	return fmt.Sprintf(`Based on the following user account data, provide three personalized recommendations to help the user save money wisely, reduce carbon emissions, and adopt eco-friendly practices.
Do not add any other information to the response other than requested.
Each recommendation should be 1-2 sentences long and should provide feedback in one of these categories:
- Transportation
- Travel
- Food and drinks
- General merchandise
- Home improvement
- Rent and utilities
- General services

Output STRICT JSON only (no comments, no trailing commas, no extra text).
Do NOT wrap the response in code fences.
Output must begin with "[" and end with "]".

Response format example (strictly follow this format):
[
  {
    "title": "Reduce Transportation Emissions",
    "description": "Switching to public transport twice a week could save you $120/month and reduce your carbon footprint by 30%%.",
    "savingsAmount": "Save $120/month",
    "carbonReduction": "Reduce CO₂ by 30%%",
    "category": "Transportation"
  }
]

Here is the user data:
%s`, summaryJSON)
}
