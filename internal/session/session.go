package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pixil98/go-haunt/internal/messaging"
)

const (
	writeWait  = 10 * time.Second
	sendBuffer = 16
)

// Subscriber is the inbound half of the message bus.
type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (unsubscribe func(), err error)
}

// Session is one connected websocket peer. It forwards bus frames to the
// socket and dispatches inbound frames to the SimHandle. Player identity is
// the peer's remote address, matching what Join records in the roster.
type Session struct {
	id     string
	remote string
	conn   *websocket.Conn
	handle *SimHandle
	bus    Subscriber

	send chan []byte
}

func NewSession(conn *websocket.Conn, handle *SimHandle, bus Subscriber) *Session {
	return &Session{
		id:     uuid.NewString(),
		remote: conn.RemoteAddr().String(),
		conn:   conn,
		handle: handle,
		bus:    bus,
		send:   make(chan []byte, sendBuffer),
	}
}

// Run services the peer until it disconnects or the context is canceled.
func (s *Session) Run(ctx context.Context) error {
	forward := func(data []byte) {
		select {
		case s.send <- data:
		default:
			// A peer that cannot keep up misses a frame; the next broadcast
			// carries complete state anyway.
			slog.Warn("dropping frame for slow peer", "peer", s.remote)
		}
	}

	unsubBroadcast, err := s.bus.Subscribe(messaging.SubjectGameUpdate, forward)
	if err != nil {
		return fmt.Errorf("subscribing to broadcasts: %w", err)
	}
	defer unsubBroadcast()

	unsubPeer, err := s.bus.Subscribe(messaging.PeerSubject(s.id), forward)
	if err != nil {
		return fmt.Errorf("subscribing to peer subject: %w", err)
	}
	defer unsubPeer()

	done := make(chan struct{})
	defer close(done)
	go s.writeLoop(done)
	go func() {
		select {
		case <-ctx.Done():
			// Unblocks the read loop below.
			_ = s.conn.Close()
		case <-done:
		}
	}()

	slog.InfoContext(ctx, "peer connected", "peer", s.remote, "session", s.id)

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && ctx.Err() == nil {
				return fmt.Errorf("reading from peer: %w", err)
			}
			slog.InfoContext(ctx, "peer disconnected", "peer", s.remote)
			return nil
		}

		if err := s.dispatch(ctx, data); err != nil {
			// Player-driven errors never take the session down.
			slog.WarnContext(ctx, "handling peer message", "peer", s.remote, "error", err)
		}
	}
}

func (s *Session) dispatch(ctx context.Context, data []byte) error {
	msg, err := ParseMessage(data)
	if err != nil {
		return err
	}

	switch msg.Type {
	case TypeJoinLobby:
		return s.handle.Join(ctx, s.remote, msg.Name)
	case TypeConnectAsAdmin:
		return s.handle.SendSnapshot(s.id)
	case TypeStartSim:
		return s.handle.Start(ctx)
	case TypeLocationUpdate:
		return s.handle.UpdateLocation(ctx, msg.Name, *msg.Location)
	default:
		// ParseMessage already rejected unknown types.
		return nil
	}
}

func (s *Session) writeLoop(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case data := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				slog.Warn("writing to peer", "peer", s.remote, "error", err)
				return
			}
		}
	}
}
