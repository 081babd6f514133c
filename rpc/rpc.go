package rpc

import (
	"errors"
	"fmt"
	"net"
	"net/rpc"
	"time"

	"github.com/wfunc/hangman/game"
	"github.com/wfunc/hangman/logger"
	"github.com/wfunc/hangman/session"
)

var ErrSessionNotFound = errors.New("session not found")

// Server manages the RPC listener.
type Server struct {
	listener net.Listener
	address  string
	rpc      *rpc.Server
}

// NewServer listens on addr and registers the admin service.
func NewServer(addr string, service *HangmanService) (*Server, error) {
	srv := rpc.NewServer()
	if err := srv.Register(service); err != nil {
		return nil, fmt.Errorf("register rpc service: %w", err)
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Server{
		listener: listener,
		address:  addr,
		rpc:      srv,
	}, nil
}

// Addr returns the bound listener address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Start begins listening for RPC requests.
func (s *Server) Start() {
	logger.Log.Infof("RPC server listening on %s", s.address)
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				logger.Log.Info("RPC server listener closed.")
				return
			}
			logger.Log.Errorf("RPC server accept error: %v", err)
			continue
		}
		go s.rpc.ServeConn(conn)
	}
}

// Stop closes the RPC listener.
func (s *Server) Stop() {
	if s.listener != nil {
		logger.Log.Info("Stopping RPC server.")
		s.listener.Close()
	}
}

// HangmanService exposes read-only views of live sessions.
type HangmanService struct {
	sessions *session.Manager
}

func NewHangmanService(sessions *session.Manager) *HangmanService {
	return &HangmanService{sessions: sessions}
}

// Methods follow the net/rpc signature: exported method, exported arguments,
// second argument is a pointer, return type is error.

// SessionsArgs limits how many ids are listed; zero lists all.
type SessionsArgs struct {
	Limit int
}

type SessionInfo struct {
	ID         string
	CreatedAt  time.Time
	LastActive time.Time
}

type SessionsReply struct {
	Count    int
	IDs      []string
	Sessions []SessionInfo
}

func (hs *HangmanService) Sessions(args *SessionsArgs, reply *SessionsReply) error {
	ids := hs.sessions.IDs()
	reply.Count = len(ids)
	if args.Limit > 0 && len(ids) > args.Limit {
		ids = ids[:args.Limit]
	}
	reply.IDs = ids
	for _, id := range ids {
		// may have disconnected since IDs()
		if sess, ok := hs.sessions.Get(id); ok {
			reply.Sessions = append(reply.Sessions, SessionInfo{
				ID:         id,
				CreatedAt:  sess.CreatedAt,
				LastActive: sess.LastActive(),
			})
		}
	}
	return nil
}

type SnapshotArgs struct {
	SessionID string
}

type SnapshotReply struct {
	Round game.Round
}

func (hs *HangmanService) Snapshot(args *SnapshotArgs, reply *SnapshotReply) error {
	sess, ok := hs.sessions.Get(args.SessionID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, args.SessionID)
	}
	reply.Round = sess.Snapshot()
	return nil
}
