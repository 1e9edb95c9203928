package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/TangilJ/litama/internal/hub"
	"github.com/TangilJ/litama/internal/logging"
	"github.com/TangilJ/litama/internal/match"
	"github.com/TangilJ/litama/internal/protocol"
)

const writeWait = 10 * time.Second

const indexBody = "This is a WebSocket server. Connect to this address using the ws or wss protocol."

// Server speaks the line-command protocol over websocket connections.
type Server struct {
	coord    *match.Coordinator
	reg      *hub.Registry
	upgrader websocket.Upgrader
}

// New creates a server around a coordinator and a broadcast registry.
func New(coord *match.Coordinator, reg *hub.Registry) *Server {
	return &Server{
		coord: coord,
		reg:   reg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleSocket upgrades the connection and serves its command loop. Plain
// HTTP requests get a short informational page instead.
func (s *Server) HandleSocket(w http.ResponseWriter, r *http.Request) {
	if !websocket.IsWebSocketUpgrade(r) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(indexBody))
		return
	}
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}
	conn := &wsConn{ws: ws}
	s.reg.Connect(conn)
	defer func() {
		s.reg.Disconnect(conn)
		_ = ws.Close()
	}()
	logging.Debugf("client %s connected", r.RemoteAddr)

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			logging.Debugf("client %s disconnected: %v", r.RemoteAddr, err)
			return
		}
		s.dispatch(r.Context(), conn, string(data))
	}
}

// dispatch parses one request line and runs the matching coordinator
// operation. Every rejection goes back to the sender only.
func (s *Server) dispatch(ctx context.Context, conn *wsConn, line string) {
	logging.Debugf("received: %q", line)
	cmd, err := protocol.Parse(line)
	if err != nil {
		s.send(conn, protocol.ErrorMessage{
			MessageType: "error",
			Error:       "Invalid query sent",
			Command:     line,
		})
		return
	}

	switch c := cmd.(type) {
	case protocol.Create:
		res, err := s.coord.Create(ctx, c.Username)
		if err != nil {
			s.sendError(conn, cmd, err)
			return
		}
		s.send(conn, protocol.SeatMessage{MessageType: "create", MatchID: res.MatchID, Token: res.Token, Index: res.Index})

	case protocol.CreateCustom:
		res, err := s.coord.CreateCustom(ctx, c.Color, c.Cards, c.Username)
		if err != nil {
			s.sendError(conn, cmd, err)
			return
		}
		s.send(conn, protocol.SeatMessage{MessageType: "create_custom", MatchID: res.MatchID, Token: res.Token, Index: res.Index})

	case protocol.Join:
		res, err := s.coord.Join(ctx, c.MatchID, c.Username, conn)
		if err != nil {
			s.sendError(conn, cmd, err)
			return
		}
		s.send(conn, protocol.SeatMessage{MessageType: "join", MatchID: res.MatchID, Token: res.Token, Index: res.Index})

	case protocol.State:
		m, err := s.coord.State(ctx, c.MatchID)
		if err != nil {
			s.sendError(conn, cmd, err)
			return
		}
		s.send(conn, protocol.NewStateMessage(m))

	case protocol.Move:
		if err := s.coord.Move(ctx, c.MatchID, c.Token, c.Card, c.Move); err != nil {
			s.sendError(conn, cmd, err)
			return
		}
		s.send(conn, protocol.AckMessage{MessageType: "move", MatchID: c.MatchID})

	case protocol.Spectate:
		if err := s.coord.Spectate(ctx, c.MatchID, conn); err != nil {
			s.sendError(conn, cmd, err)
			return
		}
		s.send(conn, protocol.AckMessage{MessageType: "spectate", MatchID: c.MatchID})
	}
}

func (s *Server) sendError(conn *wsConn, cmd protocol.Command, err error) {
	var merr *match.Error
	if errors.As(err, &merr) {
		s.send(conn, protocol.ErrorMessage{
			MessageType: "error",
			MatchID:     merr.MatchID,
			Error:       merr.Reason,
			Command:     merr.Command,
		})
		return
	}
	log.Printf("%s failed: %v", cmd.Verb(), err)
	s.send(conn, protocol.ErrorMessage{
		MessageType: "error",
		Error:       "Internal error",
		Command:     cmd.Verb(),
	})
}

func (s *Server) send(conn *wsConn, msg any) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("marshal reply: %v", err)
		return
	}
	if err := conn.Send(payload); err != nil {
		logging.Debugf("reply failed: %v", err)
	}
}

// wsConn wraps a gorilla connection with a write lock; the broadcast registry
// and the command loop may both write to it.
type wsConn struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func (c *wsConn) Send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteMessage(websocket.TextMessage, payload)
}

func (c *wsConn) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteControl(websocket.PingMessage, []byte("0"), time.Now().Add(writeWait))
}
