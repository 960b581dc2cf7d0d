package repository

import (
	"sync"
	"time"

	"github.com/okhramov/llm-telegram-bot/pkg/domain"
)

type sessionEntry struct {
	chat       domain.Chat
	lastUpdate time.Time
}

// sessionsRepository holds per-chat conversation state in memory. A
// non-zero TTL expires idle conversations on the next read; zero keeps
// them for the process lifetime.
type sessionsRepository struct {
	mu       sync.RWMutex
	sessions map[int64]sessionEntry
	ttl      time.Duration
}

func NewSessionsRepository(ttl time.Duration) *sessionsRepository {
	return &sessionsRepository{
		sessions: make(map[int64]sessionEntry),
		ttl:      ttl,
	}
}

func (s *sessionsRepository) Save(chat domain.Chat) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[chat.ID] = sessionEntry{
		chat:       chat,
		lastUpdate: time.Now(),
	}
}

func (s *sessionsRepository) GetByID(chatID int64) (domain.Chat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.sessions[chatID]
	if !ok {
		return domain.Chat{}, false
	}

	if s.ttl > 0 && time.Since(entry.lastUpdate) > s.ttl {
		return domain.Chat{}, false
	}

	return entry.chat, true
}

func (s *sessionsRepository) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, chatID)
}
