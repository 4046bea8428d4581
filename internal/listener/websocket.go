package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
)

const shutdownGrace = 5 * time.Second

// WebsocketListener accepts the game clients. Each upgraded connection runs
// as its own peer session until the client leaves or the listener stops.
type WebsocketListener struct {
	port     uint16
	certPath string
	keyPath  string
	cm       *ConnectionManager
}

// NewWebsocketListener serves plain websockets; pass cert and key paths to
// serve over TLS instead.
func NewWebsocketListener(port uint16, cm *ConnectionManager, certPath, keyPath string) *WebsocketListener {
	return &WebsocketListener{
		port:     port,
		certPath: certPath,
		keyPath:  keyPath,
		cm:       cm,
	}
}

func (l *WebsocketListener) Start(ctx context.Context) error {
	// Shared context so all peer sessions are canceled together on shutdown.
	connCtx, cancelConns := context.WithCancel(context.Background())
	defer cancelConns()

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		// Clients are LAN tools, not browsers; skip origin checks.
		CheckOrigin: func(*http.Request) bool { return true },
	}

	var wg sync.WaitGroup
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Warn("upgrading connection", "remote", r.RemoteAddr, "error", err)
			return
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer conn.Close()
			l.cm.AcceptConnection(connCtx, conn)
		}()
	})

	svr := &http.Server{
		Addr:    fmt.Sprintf(":%d", l.port),
		Handler: mux,
	}

	// done signals that Start is returning (either success or failure)
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
			defer cancel()
			_ = svr.Shutdown(shutdownCtx)
			cancelConns()
		case <-done:
		}
	}()

	slog.InfoContext(ctx, "listening for websockets", "port", l.port, "tls", l.certPath != "")

	var err error
	if l.certPath != "" {
		err = svr.ListenAndServeTLS(l.certPath, l.keyPath)
	} else {
		err = svr.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("port %d is already in use (another server running?)", l.port)
		}
		return fmt.Errorf("serving websocket on port %d: %w", l.port, err)
	}

	wg.Wait()
	return nil
}
