package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/wfunc/hangman/game"
	"github.com/wfunc/hangman/input"
	"github.com/wfunc/hangman/logger"
	"github.com/wfunc/hangman/monitor"
	"github.com/wfunc/hangman/network"
	hangman_rpc "github.com/wfunc/hangman/rpc"
	"github.com/wfunc/hangman/session"
	"github.com/wfunc/hangman/timer"
	"github.com/wfunc/hangman/words"
)

type Options struct {
	HTTPAddress   string
	RPCAddress    string // empty disables the admin RPC listener
	IdleTimeout   time.Duration
	SweepInterval time.Duration
	Heartbeat     time.Duration // zero disables the read deadline
	Catalog       *words.Catalog
	// NewSource supplies each session's random source. Defaults to words.NewRandomSource.
	NewSource func() words.IndexSource
}

type GameServer struct {
	addr           string
	upgrader       websocket.Upgrader
	sessionManager *session.Manager
	catalog        *words.Catalog
	newSource      func() words.IndexSource
	monitor        *monitor.Monitor
	rpcServer      *hangman_rpc.Server
	timers         *timer.TimerManager
	idleTimeout    time.Duration
	sweepInterval  time.Duration
	heartbeat      time.Duration
	httpServer     *http.Server
	shutdownChan   chan struct{}
	shutdownOnce   sync.Once
}

func NewGameServer(opts Options, mon *monitor.Monitor) (*GameServer, error) {
	if opts.Catalog == nil {
		opts.Catalog = words.Default()
	}
	if opts.NewSource == nil {
		opts.NewSource = words.NewRandomSource
	}

	s := &GameServer{
		addr:           opts.HTTPAddress,
		sessionManager: session.NewManager(),
		catalog:        opts.Catalog,
		newSource:      opts.NewSource,
		monitor:        mon,
		idleTimeout:    opts.IdleTimeout,
		sweepInterval:  opts.SweepInterval,
		heartbeat:      opts.Heartbeat,
		shutdownChan:   make(chan struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // 允许所有跨域请求
			},
		},
	}

	if opts.RPCAddress != "" {
		rpcServer, err := hangman_rpc.NewServer(opts.RPCAddress, hangman_rpc.NewHangmanService(s.sessionManager))
		if err != nil {
			return nil, err
		}
		s.rpcServer = rpcServer
	}

	s.httpServer = &http.Server{Addr: s.addr, Handler: s.Handler()}
	return s, nil
}

// Handler exposes the websocket endpoint at /ws.
func (s *GameServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// Sessions returns the live session manager.
func (s *GameServer) Sessions() *session.Manager {
	return s.sessionManager
}

// Start blocks serving websocket connections until Shutdown.
func (s *GameServer) Start() error {
	if s.rpcServer != nil {
		go s.rpcServer.Start()
	}
	if s.idleTimeout > 0 && s.sweepInterval > 0 {
		s.timers = timer.NewTimerManager(100 * time.Millisecond)
		s.timers.AddTimer(s.sweepInterval, s.sweepInterval, s.sweepIdle)
	}

	logger.Log.Infof("Game server listening on %s", s.addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the listeners and closes every session. Safe to call more than once.
func (s *GameServer) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		close(s.shutdownChan)
		if s.timers != nil {
			s.timers.Stop()
		}
		if s.rpcServer != nil {
			s.rpcServer.Stop()
		}
		for _, id := range s.sessionManager.IDs() {
			if sess, ok := s.sessionManager.Get(id); ok {
				sess.Close()
			}
		}
	})
	return s.httpServer.Shutdown(ctx)
}

func (s *GameServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Infof("Failed to upgrade connection: %v", err)
		return
	}
	s.handleConnection(network.NewWSConnection(conn))
}

func (s *GameServer) handleConnection(conn network.Connection) {
	if s.heartbeat > 0 {
		conn.SetHeartbeat(s.heartbeat)
	}
	sess := session.NewSession(uuid.New().String(), conn, s.catalog, s.newSource())
	s.sessionManager.Add(sess)
	s.monitor.IncOnlineSessions()

	logger.Log.Infof("New connection from %s, session ID: %s", conn.RemoteAddr(), sess.GetID())

	defer func() {
		logger.Log.Infof("Connection closed from %s, session ID: %s", conn.RemoteAddr(), sess.GetID())
		s.sessionManager.Remove(sess.GetID())
		s.monitor.DecOnlineSessions()
		conn.Close()
	}()

	s.startRound(sess)

	for {
		select {
		case <-s.shutdownChan:
			return
		default:
			packet, err := conn.ReadPacket()
			if err != nil {
				return
			}
			s.handlePacket(sess, packet)
		}
	}
}

func (s *GameServer) handlePacket(sess *session.Session, packet *network.Packet) {
	start := time.Now()
	s.monitor.IncMessagesReceived()
	defer func() { s.monitor.ObserveMessageLatency(time.Since(start)) }()

	switch packet.MsgID {
	case network.MsgTypeHeartbeat:
		sess.Touch()
	case network.MsgTypeNewRound:
		s.startRound(sess)
	case network.MsgTypeGuess:
		s.handleGuess(sess, packet)
	case network.MsgTypeReveal:
		s.handleReveal(sess)
	default:
		logger.Log.Infof("Unknown message type: %d", packet.MsgID)
		s.sendError(sess, "unknown message type")
	}
}

func (s *GameServer) startRound(sess *session.Session) {
	sess.Play(func(c *game.Controller) {
		c.StartRound()
	})
	s.monitor.IncRoundsStarted()
}

// handleGuess rejects anything that is not a single letter before it reaches the controller.
func (s *GameServer) handleGuess(sess *session.Session, packet *network.Packet) {
	var req network.GuessPayload
	if err := json.Unmarshal(packet.Data, &req); err != nil {
		logger.Log.Warnf("Session %s sent a malformed guess: %v", sess.GetID(), err)
		s.sendError(sess, "malformed guess")
		return
	}
	letter, ok := input.Letter(req.Letter)
	if !ok {
		logger.Log.Warnf("Session %s sent an invalid letter %q", sess.GetID(), req.Letter)
		s.sendError(sess, "guess must be a single letter A-Z")
		return
	}

	var (
		result        game.Result
		before, after game.Phase
	)
	sess.Play(func(c *game.Controller) {
		before = c.Phase()
		result = c.Guess(letter)
		after = c.Phase()
	})

	s.monitor.IncGuesses(result.String())
	if after != before && after.Terminal() {
		logger.Log.Infof("Session %s finished a round: %s", sess.GetID(), after)
		s.monitor.IncRoundsFinished(string(after))
	}
}

func (s *GameServer) handleReveal(sess *session.Session) {
	var (
		before game.Phase
		err    error
	)
	sess.Play(func(c *game.Controller) {
		before = c.Phase()
		err = c.Reveal()
	})
	if err != nil {
		s.sendError(sess, err.Error())
		return
	}
	if before == game.PhaseInProgress {
		s.monitor.IncRoundsFinished(string(game.PhaseRevealed))
	}
}

func (s *GameServer) sendError(sess *session.Session, message string) {
	data, _ := json.Marshal(network.ErrorPayload{Message: message})
	if err := sess.Send(network.MsgTypeError, data); err != nil {
		logger.Log.Warnf("Error sending to session %s: %v", sess.GetID(), err)
	}
}

func (s *GameServer) sweepIdle() {
	cutoff := time.Now().Add(-s.idleTimeout)
	for _, sess := range s.sessionManager.IdleSince(cutoff) {
		logger.Log.Infof("Closing idle session %s", sess.GetID())
		sess.Close()
	}
}
