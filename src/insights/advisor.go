package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"ecofinance-server/src/models"
)

// Advisor talks to the Gemini model on behalf of the chat and
// recommendations routes.
type Advisor struct {
	client *genai.Client
	model  string
}

func NewAdvisor(ctx context.Context, apiKey, model string) (*Advisor, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	if model == "" {
		model = DefaultModelName
	}
	return &Advisor{client: client, model: model}, nil
}

// Chat sends one user message with the prior conversation and, when the
// caller is linked, a 30-day financial context block. Returns the model's
// reply text.
func (a *Advisor) Chat(ctx context.Context, message string, history []models.ChatMessage, summaryJSON string) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, msg := range history {
		contents = append(contents, &genai.Content{
			Role:  msg.Role,
			Parts: []*genai.Part{{Text: msg.Content}},
		})
	}
	contents = append(contents, &genai.Content{
		Role:  "user",
		Parts: []*genai.Part{{Text: message}},
	})

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: chatPreamble(summaryJSON)}},
		},
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("chat generate content: %w", err)
	}

	reply := resp.Text()
	if reply == "" {
		return "", fmt.Errorf("chat: empty response from model")
	}
	return reply, nil
}

// Recommendations asks the model for three structured suggestions based on
// the summary handoff. Output the model got wrong (non-JSON, empty, fenced
// junk) degrades to an empty list, never an error.
func (a *Advisor) Recommendations(ctx context.Context, summaryJSON string) ([]models.Recommendation, error) {
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: recommendationPrompt(summaryJSON)}},
		},
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("recommendations generate content: %w", err)
	}

	return ParseRecommendations(resp.Text()), nil
}

// ParseRecommendations extracts recommendation records from raw model output.
// It strips Markdown fences and surrounding junk first; anything still
// unparseable yields nil (no recommendations available).
func ParseRecommendations(raw string) []models.Recommendation {
	clean := cleanModelJSON(raw)
	if clean == "" {
		return nil
	}

	var recs []models.Recommendation
	if err := json.Unmarshal([]byte(clean), &recs); err != nil {
		return nil
	}
	return recs
}

// cleanModelJSON strips ```json fences and keeps only the outermost JSON
// array when the model ignores the raw-JSON instruction.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	if start := strings.Index(s, "["); start != -1 {
		if end := strings.LastIndex(s, "]"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
