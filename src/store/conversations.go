package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"ecofinance-server/src/models"
)

// maxHistory caps the retained turns per conversation; older turns are
// dropped so the assistant context stays bounded.
const maxHistory = 20

// ConversationStore keeps per-caller assistant history for the lifetime of
// the process. History is lost on restart.
type ConversationStore struct {
	mu       sync.RWMutex
	messages map[string][]models.ChatMessage
}

func NewConversationStore() *ConversationStore {
	return &ConversationStore{messages: make(map[string][]models.ChatMessage)}
}

// Append records one turn and returns the stored message.
func (s *ConversationStore) Append(clientID, role, content string) models.ChatMessage {
	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	history := append(s.messages[clientID], msg)
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	s.messages[clientID] = history
	return msg
}

// History returns a copy of the caller's conversation, oldest first.
func (s *ConversationStore) History(clientID string) []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history := s.messages[clientID]
	out := make([]models.ChatMessage, len(history))
	copy(out, history)
	return out
}

// Clear drops the caller's conversation.
func (s *ConversationStore) Clear(clientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.messages, clientID)
}
