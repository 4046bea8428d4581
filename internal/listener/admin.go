package listener

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"syscall"

	"github.com/iammegalith/telnet"
	"github.com/pixil98/go-log"
	"github.com/sirupsen/logrus"

	"github.com/pixil98/go-haunt/internal/session"
)

// AdminListener serves a plain-text console for operating the session from
// the host machine: inspecting state and starting the simulation without a
// game client.
type AdminListener struct {
	port   uint16
	handle *session.SimHandle
}

func NewAdminListener(port uint16, handle *session.SimHandle) *AdminListener {
	return &AdminListener{
		port:   port,
		handle: handle,
	}
}

func (l *AdminListener) Start(ctx context.Context) error {
	// Create a cancelable context for all connections
	connCtx, cancelConns := context.WithCancel(context.Background())

	handler := &adminHandler{
		console:     &console{handle: l.handle},
		logger:      log.GetLogger(ctx),
		connCtx:     connCtx,
		cancelConns: cancelConns,
	}

	svr := telnet.NewServer(fmt.Sprintf(":%d", l.port), handler)

	// done signals that Start is returning (either success or failure)
	done := make(chan struct{})
	defer close(done)

	// When parent context is canceled, stop accepting and cancel all connections
	go func() {
		select {
		case <-ctx.Done():
			svr.Stop()
			handler.Stop()
		case <-done:
		}
	}()

	err := svr.ListenAndServe()
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("port %d is already in use (another server running?)", l.port)
		}
		return fmt.Errorf("serving admin console on port %d: %w", l.port, err)
	}

	return nil
}

type adminHandler struct {
	wg          sync.WaitGroup
	console     *console
	logger      logrus.FieldLogger
	connCtx     context.Context
	cancelConns context.CancelFunc
}

func (h *adminHandler) HandleTelnet(conn *telnet.Connection) {
	h.wg.Add(1)
	defer h.wg.Done()
	defer func() {
		err := conn.Close()
		if err != nil {
			h.logger.Errorf("closing admin connection: %s", err)
		}
	}()

	// Use the shared context so all connections are canceled together
	ctx := log.SetLogger(h.connCtx, h.logger)

	h.console.Serve(ctx, newCRLFReadWriter(conn))
}

func (h *adminHandler) Stop() {
	h.cancelConns()
	h.wg.Wait()
}
