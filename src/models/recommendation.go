package models

import "time"

// Recommendation is one structured suggestion from the advisor model. Field
// names mirror the JSON shape the model is instructed to produce.
type Recommendation struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	SavingsAmount   string `json:"savingsAmount"`
	CarbonReduction string `json:"carbonReduction"`
	Category        string `json:"category"`
}

// ChatMessage is one turn of an assistant conversation. Role is either
// "user" or "model".
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
