package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/pixil98/go-haunt/internal/driver"
	"github.com/pixil98/go-haunt/internal/game"
	"github.com/pixil98/go-haunt/internal/house"
	"github.com/pixil98/go-haunt/internal/messaging"
)

// Publisher is the outbound half of the message bus.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// SimHandle fronts the one Simulation of this process: peer sessions and the
// tick driver both go through it. It owns the broadcast path, including the
// notification acknowledgement that keeps interaction messages at-most-once.
type SimHandle struct {
	sim *game.Simulation
	pub Publisher
	dt  time.Duration
}

// NewSimHandle wraps sim. dt is the fixed timestep passed to every Update,
// matching the driver's tick length.
func NewSimHandle(sim *game.Simulation, pub Publisher, dt time.Duration) *SimHandle {
	return &SimHandle{
		sim: sim,
		pub: pub,
		dt:  dt,
	}
}

var _ driver.Manager = (*SimHandle)(nil)

// Tick advances the simulation one fixed timestep and broadcasts when the
// tick changed anything broadcast-worthy. Before the session starts the
// clock does not run.
func (h *SimHandle) Tick(ctx context.Context) error {
	if !h.sim.Started() {
		return nil
	}
	if h.sim.Update(h.dt) {
		return h.Broadcast(ctx)
	}
	return nil
}

// Broadcast publishes a snapshot to every peer and acknowledges the pending
// notifications. Notifications are only cleared after a successful publish.
func (h *SimHandle) Broadcast(ctx context.Context) error {
	data, err := json.Marshal(h.sim.Snapshot())
	if err != nil {
		return fmt.Errorf("marshalling game update: %w", err)
	}
	if err := h.pub.Publish(messaging.SubjectGameUpdate, data); err != nil {
		return fmt.Errorf("publishing game update: %w", err)
	}

	h.sim.ClearNotifications()
	return nil
}

// SendSnapshot publishes the current snapshot to a single peer session,
// without acknowledging notifications; those still belong to the next
// broadcast.
func (h *SimHandle) SendSnapshot(sessionID string) error {
	data, err := json.Marshal(h.sim.Snapshot())
	if err != nil {
		return fmt.Errorf("marshalling game update: %w", err)
	}
	return h.pub.Publish(messaging.PeerSubject(sessionID), data)
}

// Join registers a player and, on success, broadcasts the grown lobby. A
// rejected join is returned to the caller and nothing is sent.
func (h *SimHandle) Join(ctx context.Context, identity, name string) error {
	if err := h.sim.AddPlayer(identity, name); err != nil {
		return err
	}

	slog.InfoContext(ctx, "player joined", "name", name, "identity", identity)
	return h.Broadcast(ctx)
}

// Start moves the session out of the lobby and announces it.
func (h *SimHandle) Start(ctx context.Context) error {
	h.sim.Start()
	return h.Broadcast(ctx)
}

// UpdateLocation records a self-reported player location and rebroadcasts.
func (h *SimHandle) UpdateLocation(ctx context.Context, name string, room house.RoomLabel) error {
	h.sim.SetPlayerLocation(name, room)
	return h.Broadcast(ctx)
}

// Started reports whether the session has left the lobby.
func (h *SimHandle) Started() bool {
	return h.sim.Started()
}

// Snapshot returns the current game update without acknowledging anything.
func (h *SimHandle) Snapshot() game.GameUpdate {
	return h.sim.Snapshot()
}
