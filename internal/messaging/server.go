package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

// Bus is an embedded NATS server plus an internal client connection. Game
// updates fan out through it: the tick driver publishes, each peer session
// subscribes and forwards to its own socket.
type Bus struct {
	ns   *server.Server
	conn *nats.Conn

	startupTimeout time.Duration
	host           string
	port           int
}

func NewBus(opts ...BusOpt) (*Bus, error) {
	b := &Bus{
		startupTimeout: 10 * time.Second,
		host:           "127.0.0.1",
	}

	for _, opt := range opts {
		opt(b)
	}

	ns, err := server.NewServer(&server.Options{
		Host:   b.host,
		Port:   b.port,
		NoSigs: true, // Let the application handle signals
	})
	if err != nil {
		return nil, err
	}
	b.ns = ns

	return b, nil
}

// Start runs the embedded server until the context is canceled.
func (b *Bus) Start(ctx context.Context) error {
	b.ns.Start()

	if !b.ns.ReadyForConnections(b.startupTimeout) {
		return fmt.Errorf("nats server not ready for connections")
	}

	conn, err := nats.Connect(b.ns.ClientURL())
	if err != nil {
		return fmt.Errorf("creating nats client connection: %w", err)
	}
	b.conn = conn

	slog.InfoContext(ctx, "message bus listening", "addr", b.ns.Addr())

	<-ctx.Done()
	b.conn.Close()
	b.ns.Shutdown()
	b.ns.WaitForShutdown()

	return nil
}

// Subscribe registers a handler for a subject and returns an unsubscribe
// function.
func (b *Bus) Subscribe(subject string, handler func(data []byte)) (func(), error) {
	if b.conn == nil {
		return nil, fmt.Errorf("message bus not started")
	}
	sub, err := b.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Data)
	})
	if err != nil {
		return nil, err
	}
	return func() { sub.Unsubscribe() }, nil
}

// Publish sends a message to the given subject.
func (b *Bus) Publish(subject string, data []byte) error {
	if b.conn == nil {
		return fmt.Errorf("message bus not started")
	}
	return b.conn.Publish(subject, data)
}
