// Package server exposes a running game over WebSocket. Each connection
// owns one session: the server streams render frames, the client streams
// intents, and the blocking prompts (level-up menu, spell targeting) ride
// the same socket.
package server

import (
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/crypto/bcrypt"

	"github.com/babysitterd/chasm/internal/fov"
	"github.com/babysitterd/chasm/internal/game"
	"github.com/babysitterd/chasm/internal/logger"
	"github.com/babysitterd/chasm/internal/save"
)

// Server accepts WebSocket connections and runs one game session per
// client.
type Server struct {
	config     Config
	gameConfig game.Config
	store      save.Store
	seed       int64
	upgrader   websocket.Upgrader
}

// New creates a server. A zero seed means every session gets a
// time-derived one.
func New(config Config, gameConfig game.Config, store save.Store, seed int64) *Server {
	config = config.withDefaults()
	s := &Server{
		config:     config,
		gameConfig: gameConfig,
		store:      store,
		seed:       seed,
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return config.IsOriginAllowed(r.Header.Get("Origin"), r.Host)
		},
	}
	return s
}

// Start blocks serving WebSocket connections on the configured address.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	logger.Info("server listening", "addr", s.config.ListenAddr)
	return http.ListenAndServe(s.config.ListenAddr, mux)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warning("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	c := newClient(conn, s.config.MaxMessageSize)
	defer c.Close()

	sessionID := uuid.NewString()
	logger.Info("client connected", "session", sessionID, "remote", c.RemoteAddr())
	defer logger.Info("client disconnected", "session", sessionID)

	if !s.authenticate(c) {
		return
	}

	sess, err := s.startSession(c)
	if err != nil {
		logger.Warning("session start failed", "session", sessionID, "error", err)
		return
	}

	s.run(c, sess, sessionID)
}

// authenticate gates the connection behind the configured password hash.
// No hash configured means open access.
func (s *Server) authenticate(c *client) bool {
	if s.config.PasswordHash == "" {
		return true
	}

	msg, err := c.read()
	if err != nil || msg.Type != "auth" {
		c.sendError("Authentication required.")
		return false
	}
	if bcrypt.CompareHashAndPassword([]byte(s.config.PasswordHash), []byte(msg.Password)) != nil {
		c.sendError("Invalid password.")
		return false
	}
	return true
}

// startSession waits for the client's start message and builds either a
// fresh session or one restored from the save store. A continue request
// with no save on disk falls back to a new game.
func (s *Server) startSession(c *client) (*game.Session, error) {
	msg, err := c.read()
	if err != nil {
		return nil, err
	}
	if msg.Type != "start" {
		c.sendError("Expected a start message.")
		return nil, errors.New("protocol: first message was not start")
	}

	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	cb := newCollaborators(c)
	collab := game.Collaborators{
		Vision:   fov.New(),
		Chooser:  cb,
		Targeter: cb,
	}

	if msg.Mode == "continue" {
		snap, err := s.store.Load()
		switch {
		case err == nil:
			sess, err := game.Restore(snap, s.gameConfig, rng, collab)
			if err != nil {
				return nil, err
			}
			cb.bind(sess)
			return sess, nil
		case errors.Is(err, save.ErrNoSave):
			c.sendNotice("No saved game found, starting a new one.")
		default:
			return nil, err
		}
	}

	sess, err := game.NewSession(s.gameConfig, rng, collab)
	if err != nil {
		return nil, err
	}
	cb.bind(sess)
	return sess, nil
}

// run drives the frame/intent loop until the client exits or drops. Both
// paths persist the session, so a lost connection resumes where it left
// off.
func (s *Server) run(c *client, sess *game.Session, sessionID string) {
	for {
		if err := c.send(serverMessage{Type: "frame", Frame: sess.Render(s.config.MaxMessages)}); err != nil {
			s.persist(sess, sessionID)
			return
		}

		msg, err := c.read()
		if err != nil {
			s.persist(sess, sessionID)
			return
		}
		if msg.Type != "intent" {
			continue
		}

		outcome, err := sess.Step(decodeIntent(msg))
		if err != nil {
			logger.Error("session step failed", "session", sessionID, "error", err)
			c.sendError("Internal error, closing session.")
			return
		}
		if outcome == game.Exit {
			s.persist(sess, sessionID)
			c.sendNotice("Game saved. Goodbye.")
			return
		}
	}
}

func (s *Server) persist(sess *game.Session, sessionID string) {
	if err := s.store.Save(sess.Snapshot()); err != nil {
		logger.Error("saving session failed", "session", sessionID, "error", err)
		return
	}
	logger.Info("session saved", "session", sessionID)
}
