package listener

import (
	"context"
	"log/slog"

	"github.com/gorilla/websocket"
	"github.com/pixil98/go-haunt/internal/session"
)

// ConnectionManager turns accepted websocket connections into peer sessions.
type ConnectionManager struct {
	handle *session.SimHandle
	bus    session.Subscriber
}

func NewConnectionManager(handle *session.SimHandle, bus session.Subscriber) *ConnectionManager {
	return &ConnectionManager{
		handle: handle,
		bus:    bus,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn *websocket.Conn) {
	if err := session.NewSession(conn, m.handle, m.bus).Run(ctx); err != nil {
		slog.WarnContext(ctx, "peer session", "error", err)
	}
}
