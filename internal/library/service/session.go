package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// ============================================================
// Session Manager
// ============================================================

type session struct {
	userID   string
	lastSeen time.Time
}

// SessionManager хранит bearer-токены в памяти. Сессия истекает после
// idle без обращений; idle <= 0 отключает истечение.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]session
	idle     time.Duration
	now      func() time.Time
}

func NewSessionManager(idle time.Duration) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]session),
		idle:     idle,
		now:      time.Now,
	}
}

func (m *SessionManager) Issue(userID string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	token := uuid.NewString()
	m.sessions[token] = session{userID: userID, lastSeen: m.now()}
	return token
}

// Resolve возвращает владельца токена и продлевает сессию.
func (m *SessionManager) Resolve(token string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return "", false
	}
	now := m.now()
	if m.expired(s, now) {
		delete(m.sessions, token)
		return "", false
	}
	s.lastSeen = now
	m.sessions[token] = s
	return s.userID, true
}

// Revoke завершает сессию; неизвестный токен игнорируется.
func (m *SessionManager) Revoke(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
}

// Sweep удаляет истёкшие сессии и возвращает их число.
func (m *SessionManager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for token, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, token)
			removed++
		}
	}
	return removed
}

func (m *SessionManager) expired(s session, now time.Time) bool {
	return m.idle > 0 && now.Sub(s.lastSeen) > m.idle
}
