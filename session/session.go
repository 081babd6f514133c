// session/session.go
package session

import (
	"sort"
	"sync"
	"time"

	"github.com/wfunc/hangman/game"
	"github.com/wfunc/hangman/network"
	"github.com/wfunc/hangman/render"
	"github.com/wfunc/hangman/words"
)

// Session is one connected player. It owns its own round controller whose
// notifications go back over Conn.
type Session struct {
	ID         string
	Conn       network.Connection
	CreatedAt  time.Time
	lastActive time.Time
	controller *game.Controller
	mutex      sync.Mutex
}

func NewSession(id string, conn network.Connection, catalog *words.Catalog, source words.IndexSource) *Session {
	now := time.Now()
	s := &Session{
		ID:         id,
		Conn:       conn,
		CreatedAt:  now,
		lastActive: now,
	}
	s.controller = game.NewController(catalog, source, render.NewPacketPresenter(s))
	return s
}

// Play runs fn with exclusive access to the session's controller.
func (s *Session) Play(fn func(c *game.Controller)) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.lastActive = time.Now()
	fn(s.controller)
}

// Snapshot returns a copy of the current round.
func (s *Session) Snapshot() game.Round {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.controller.Snapshot()
}

func (s *Session) Touch() {
	s.mutex.Lock()
	s.lastActive = time.Now()
	s.mutex.Unlock()
}

func (s *Session) LastActive() time.Time {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.lastActive
}

// Send writes straight to the connection; callers inside Play already hold the lock.
func (s *Session) Send(msgID uint16, data []byte) error {
	return s.Conn.Send(msgID, data)
}

func (s *Session) GetID() string {
	return s.ID
}

func (s *Session) Close() error {
	return s.Conn.Close()
}

// Session管理器
type Manager struct {
	sessions map[string]*Session
	mutex    sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

func (m *Manager) Add(session *Session) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.sessions[session.ID] = session
}

func (m *Manager) Remove(sessionID string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.sessions, sessionID)
}

func (m *Manager) Get(sessionID string) (*Session, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	session, exists := m.sessions[sessionID]
	return session, exists
}

func (m *Manager) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.sessions)
}

// IDs returns the ids of all sessions in sorted order.
func (m *Manager) IDs() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IdleSince returns sessions with no activity after cutoff.
func (m *Manager) IdleSince(cutoff time.Time) []*Session {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var result []*Session
	for _, session := range m.sessions {
		if session.LastActive().Before(cutoff) {
			result = append(result, session)
		}
	}
	return result
}
