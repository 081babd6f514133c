package session

import (
	"net"
	"sync"
	"testing"
	"time"

	"github.com/wfunc/hangman/game"
	"github.com/wfunc/hangman/network"
	"github.com/wfunc/hangman/words"
)

// MockConnection is a test double for the network.Connection interface.
type MockConnection struct {
	mutex  sync.Mutex
	sent   []uint16
	closed bool
}

func (m *MockConnection) Send(msgID uint16, data []byte) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.sent = append(m.sent, msgID)
	return nil
}
func (m *MockConnection) Close() error                         { m.closed = true; return nil }
func (m *MockConnection) RemoteAddr() net.Addr                 { return &net.TCPAddr{} }
func (m *MockConnection) SetHeartbeat(interval time.Duration)  {}
func (m *MockConnection) ReadPacket() (*network.Packet, error) { return nil, nil }

type firstSource struct{}

func (firstSource) Intn(int) int { return 0 }

func newTestSession(t *testing.T, id string) (*Session, *MockConnection) {
	t.Helper()
	catalog, err := words.NewCatalog([]words.Entry{{Word: "CAT", Hint: "pet"}})
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	conn := &MockConnection{}
	return NewSession(id, conn, catalog, firstSource{}), conn
}

func TestNewManager(t *testing.T) {
	manager := NewManager()
	if manager == nil {
		t.Fatal("NewManager should not return nil")
	}
	if manager.sessions == nil {
		t.Fatal("NewManager should initialize the sessions map")
	}
}

func TestManager_Add_Get_Remove(t *testing.T) {
	manager := NewManager()
	sessionID := "test_session_1"
	sess, _ := newTestSession(t, sessionID)

	// Test Add
	manager.Add(sess)
	if manager.Count() != 1 {
		t.Fatalf("Expected session count to be 1, got %d", manager.Count())
	}

	// Test Get
	retrievedSess, exists := manager.Get(sessionID)
	if !exists {
		t.Fatal("Get should find the added session")
	}
	if retrievedSess != sess {
		t.Fatal("Get should return the same session instance")
	}

	// Test Remove
	manager.Remove(sessionID)
	if manager.Count() != 0 {
		t.Fatalf("Expected session count to be 0 after removal, got %d", manager.Count())
	}

	_, exists = manager.Get(sessionID)
	if exists {
		t.Fatal("Get should not find the removed session")
	}
}

func TestManager_IdleSince(t *testing.T) {
	manager := NewManager()

	idle, _ := newTestSession(t, "idle")
	idle.lastActive = time.Now().Add(-time.Hour)
	active, _ := newTestSession(t, "active")

	manager.Add(idle)
	manager.Add(active)

	got := manager.IdleSince(time.Now().Add(-time.Minute))
	if len(got) != 1 || got[0] != idle {
		t.Fatalf("Expected only the idle session, got %d sessions", len(got))
	}

	idle.Touch()
	if got := manager.IdleSince(time.Now().Add(-time.Minute)); len(got) != 0 {
		t.Errorf("Expected no idle sessions after Touch, got %d", len(got))
	}
}

func TestSession_PlaySendsNotifications(t *testing.T) {
	sess, conn := newTestSession(t, "player")

	sess.Play(func(c *game.Controller) {
		c.StartRound()
		c.Guess('C')
	})

	want := []uint16{
		network.MsgTypeRoundReset, network.MsgTypeStatusUpdated, network.MsgTypeMessageShown,
		network.MsgTypeKeyMarked, network.MsgTypeLetterRevealed, network.MsgTypeStatusUpdated,
	}
	if len(conn.sent) != len(want) {
		t.Fatalf("Expected %d packets, got %d: %v", len(want), len(conn.sent), conn.sent)
	}
	for i := range want {
		if conn.sent[i] != want[i] {
			t.Errorf("Packet %d: expected %d, got %d", i, want[i], conn.sent[i])
		}
	}

	snap := sess.Snapshot()
	if snap.Answer != "CAT" || string(snap.Guessed) != "C" {
		t.Errorf("Unexpected snapshot %+v", snap)
	}
}

func TestSession_IndependentRounds(t *testing.T) {
	a, _ := newTestSession(t, "a")
	b, _ := newTestSession(t, "b")

	a.Play(func(c *game.Controller) { c.StartRound(); c.Guess('Z') })
	b.Play(func(c *game.Controller) { c.StartRound() })

	if a.Snapshot().Misses != 1 || b.Snapshot().Misses != 0 {
		t.Error("Sessions should not share round state")
	}
}
