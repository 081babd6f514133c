package rpc

import (
	"errors"
	"net"
	"net/rpc"
	"strings"
	"testing"
	"time"

	"github.com/wfunc/hangman/game"
	"github.com/wfunc/hangman/network"
	"github.com/wfunc/hangman/session"
	"github.com/wfunc/hangman/words"
)

// MockConnection is a test double for the network.Connection interface.
type MockConnection struct{}

func (m *MockConnection) Send(msgID uint16, data []byte) error { return nil }
func (m *MockConnection) Close() error                         { return nil }
func (m *MockConnection) RemoteAddr() net.Addr                 { return &net.TCPAddr{} }
func (m *MockConnection) SetHeartbeat(interval time.Duration)  {}
func (m *MockConnection) ReadPacket() (*network.Packet, error) { return nil, nil }

type firstSource struct{}

func (firstSource) Intn(int) int { return 0 }

func newTestManager(t *testing.T) *session.Manager {
	t.Helper()
	catalog, err := words.NewCatalog([]words.Entry{{Word: "DOG", Hint: "barks"}})
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	manager := session.NewManager()
	sess := session.NewSession("s1", &MockConnection{}, catalog, firstSource{})
	sess.Play(func(c *game.Controller) {
		c.StartRound()
		c.Guess('O')
	})
	manager.Add(sess)
	return manager
}

func TestHangmanService_Direct(t *testing.T) {
	svc := NewHangmanService(newTestManager(t))

	var count SessionsReply
	if err := svc.Sessions(&SessionsArgs{}, &count); err != nil || count.Count != 1 {
		t.Errorf("Expected 1 session, got %d (%v)", count.Count, err)
	}
	if len(count.IDs) != 1 || count.IDs[0] != "s1" {
		t.Errorf("Expected ids [s1], got %v", count.IDs)
	}
	if len(count.Sessions) != 1 || count.Sessions[0].ID != "s1" || count.Sessions[0].CreatedAt.IsZero() {
		t.Errorf("Expected session info for s1, got %+v", count.Sessions)
	}
	if count.Sessions[0].LastActive.Before(count.Sessions[0].CreatedAt) {
		t.Errorf("Expected last active after creation, got %+v", count.Sessions[0])
	}

	var snap SnapshotReply
	if err := svc.Snapshot(&SnapshotArgs{SessionID: "s1"}, &snap); err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if snap.Round.Answer != "DOG" || string(snap.Round.Guessed) != "O" || snap.Round.Phase != game.PhaseInProgress {
		t.Errorf("Unexpected round %+v", snap.Round)
	}

	if err := svc.Snapshot(&SnapshotArgs{SessionID: "missing"}, &snap); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestServer_OverTCP(t *testing.T) {
	srv, err := NewServer("127.0.0.1:0", NewHangmanService(newTestManager(t)))
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	go srv.Start()
	defer srv.Stop()

	client, err := rpc.Dial("tcp", srv.Addr().String())
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer client.Close()

	var list SessionsReply
	if err := client.Call("HangmanService.Sessions", &SessionsArgs{Limit: 10}, &list); err != nil {
		t.Fatalf("Sessions call failed: %v", err)
	}
	if list.Count != 1 {
		t.Errorf("Expected 1 session, got %d", list.Count)
	}
	if len(list.Sessions) != 1 || list.Sessions[0].CreatedAt.IsZero() {
		t.Errorf("Expected creation time over the wire, got %+v", list.Sessions)
	}

	var snap SnapshotReply
	if err := client.Call("HangmanService.Snapshot", &SnapshotArgs{SessionID: "s1"}, &snap); err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if snap.Round.Answer != "DOG" {
		t.Errorf("Expected DOG, got %q", snap.Round.Answer)
	}

	err = client.Call("HangmanService.Snapshot", &SnapshotArgs{SessionID: "nope"}, &snap)
	if err == nil || !strings.Contains(err.Error(), "session not found") {
		t.Errorf("Expected remote session not found error, got %v", err)
	}
}
